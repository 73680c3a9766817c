// file: pkg/diskimg/diskcheck.go

package diskimg

import (
	"fmt"
)

// DiskCheck performs a consistency check of the DOS 3.3 structures on
// the image. It is a diagnostic pass: the first inconsistency found is
// returned, nothing is repaired.
func (di *DiskImage) DiskCheck() error {
	if err := di.checkVTOC(); err != nil {
		return fmt.Errorf("VTOC check failed: %w", err)
	}
	if err := di.checkCatalogChain(); err != nil {
		return fmt.Errorf("catalog chain check failed: %w", err)
	}
	if err := di.checkCatalogEntries(); err != nil {
		return fmt.Errorf("catalog entry check failed: %w", err)
	}
	return nil
}

// checkVTOC validates the volume geometry fields.
func (di *DiskImage) checkVTOC() error {
	vtoc, err := di.ReadVTOC()
	if err != nil {
		return err
	}

	if vtoc.TrackCount() != TracksPerDisk {
		return fmt.Errorf("%w: track count %d", ErrCorruptVolume, vtoc.TrackCount())
	}
	if vtoc.SectorCount() != SectorsPerTrack {
		return fmt.Errorf("%w: sectors per track %d", ErrCorruptVolume, vtoc.SectorCount())
	}
	if vtoc.SectorSize() != BytesPerSector {
		return fmt.Errorf("%w: sector size %d", ErrCorruptVolume, vtoc.SectorSize())
	}
	track, sector := vtoc.CatalogHead()
	if int(track) >= TracksPerDisk || int(sector) >= SectorsPerTrack {
		return fmt.Errorf("%w: catalog head (%d, %d)", ErrCorruptVolume, track, sector)
	}
	return nil
}

// checkCatalogChain verifies the chain terminates within bounds with
// every pointer in range. walkCatalog itself enforces the hop limit.
func (di *DiskImage) checkCatalogChain() error {
	return di.walkCatalog(func(_, _ int, data []byte) (bool, error) {
		next := data[catOffNextTrack]
		if next != 0 && (int(next) >= TracksPerDisk || int(data[catOffNextSector]) >= SectorsPerTrack) {
			return false, fmt.Errorf("%w: chain pointer (%d, %d)", ErrCorruptVolume, next, data[catOffNextSector])
		}
		return false, nil
	})
}

// checkCatalogEntries verifies every live entry points at a plausible
// T/S list and fits the volume.
func (di *DiskImage) checkCatalogEntries() error {
	return di.walkCatalog(func(_, _ int, data []byte) (bool, error) {
		for i := 0; i < EntriesPerCatalogSector; i++ {
			entry := data[catOffFirstEntry+i*catalogEntrySize:]
			if entry[entryOffTSTrack] == 0x00 || entry[entryOffTSTrack] == entryTrackDeleted {
				continue
			}
			fe := decodeEntry(entry)
			if int(fe.TSTrack) >= TracksPerDisk || int(fe.TSSector) >= SectorsPerTrack {
				return false, fmt.Errorf("%w: entry %q T/S list at (%d, %d)", ErrCorruptVolume, fe.Name, fe.TSTrack, fe.TSSector)
			}
			if fe.Sectors == 0 || fe.Sectors > MaxTSPairs+1 {
				return false, fmt.Errorf("%w: entry %q sector count %d", ErrCorruptVolume, fe.Name, fe.Sectors)
			}
		}
		return false, nil
	})
}
