// file: pkg/diskimg/fileio.go

package diskimg

import (
	"errors"
	"fmt"

	"github.com/ha1tch/dos33/pkg/applesoft"
)

// Track/sector list layout. Pairs run from 0x0C to the end of the
// sector, giving the 122-pair capacity recorded in the VTOC.
const (
	tsListOffNextTrack  = 0x00
	tsListOffNextSector = 0x01
	tsListOffFirstPair  = 0x0C
)

// WriteFile stores a payload as a new file: one T/S list sector plus one
// data sector per 256-byte chunk, the last chunk zero-padded. The
// returned sector count includes the T/S list sector and is what the
// catalog entry records.
//
// Payloads needing more than one T/S list sector's worth of data sectors
// are rejected up front with ErrFileTooLarge; continuation T/S lists are
// not emitted. A failure partway through may leave sectors marked used
// without a catalog entry - a leak, not a corruption, since the catalog
// is the canonical file listing.
func (di *DiskImage) WriteFile(name string, fileType byte, payload []byte) (int, error) {
	if normalizeFilename(name) == "" {
		return 0, ErrInvalidFilename
	}
	if _, err := di.FindFile(name); err == nil {
		return 0, fmt.Errorf("%w: %s", ErrFileExists, normalizeFilename(name))
	} else if !errors.Is(err, ErrFileNotFound) {
		return 0, err
	}

	dataSectors := (len(payload) + BytesPerSector - 1) / BytesPerSector
	if dataSectors > MaxTSPairs {
		return 0, ErrFileTooLarge
	}

	// The T/S list sector is allocated first, so it lands ahead of the
	// file's data in allocation order.
	tsTrack, tsSector, err := di.AllocateSector()
	if err != nil {
		return 0, err
	}

	tsList := make([]byte, BytesPerSector)
	pairOffset := tsListOffFirstPair

	for start := 0; start < len(payload); start += BytesPerSector {
		end := start + BytesPerSector
		if end > len(payload) {
			end = len(payload)
		}

		dataTrack, dataSector, err := di.AllocateSector()
		if err != nil {
			return 0, err
		}
		tsList[pairOffset] = byte(dataTrack)
		tsList[pairOffset+1] = byte(dataSector)
		pairOffset += 2

		// SetSectorData zero-fills the tail of a short final chunk.
		if err := di.SetSectorData(dataTrack, dataSector, payload[start:end]); err != nil {
			return 0, err
		}
	}

	if err := di.SetSectorData(tsTrack, tsSector, tsList); err != nil {
		return 0, err
	}

	sectors := dataSectors + 1
	if err := di.AddCatalogEntry(name, fileType, byte(tsTrack), byte(tsSector), sectors); err != nil {
		return 0, err
	}
	return sectors, nil
}

// ReadFile reads a file's data sectors back in T/S list order. The
// result length is always a multiple of the sector size; trailing
// zero-padding from the final chunk is preserved, since DOS 3.3 records
// no byte-exact length in the catalog.
func (di *DiskImage) ReadFile(name string) ([]byte, error) {
	fe, err := di.FindFile(name)
	if err != nil {
		return nil, err
	}

	tsList, err := di.GetSectorData(int(fe.TSTrack), int(fe.TSSector))
	if err != nil {
		return nil, fmt.Errorf("reading track/sector list: %w", err)
	}

	dataSectors := fe.Sectors - 1
	if dataSectors < 0 || dataSectors > MaxTSPairs {
		return nil, ErrCorruptVolume
	}

	data := make([]byte, 0, dataSectors*BytesPerSector)
	for i := 0; i < dataSectors; i++ {
		track := tsList[tsListOffFirstPair+i*2]
		sector := tsList[tsListOffFirstPair+i*2+1]
		chunk, err := di.GetSectorData(int(track), int(sector))
		if err != nil {
			return nil, ErrCorruptVolume
		}
		data = append(data, chunk...)
	}
	return data, nil
}

// DeleteFile marks the catalog entry deleted (0xFF sentinel in its track
// byte) and frees the file's T/S list and data sectors in the VTOC
// bitmap. The slot is then reusable by later writes.
func (di *DiskImage) DeleteFile(name string) error {
	fe, err := di.FindFile(name)
	if err != nil {
		return err
	}

	tsList, err := di.GetSectorData(int(fe.TSTrack), int(fe.TSSector))
	if err != nil {
		return fmt.Errorf("reading track/sector list: %w", err)
	}

	if err := di.markEntryDeleted(name); err != nil {
		return err
	}

	dataSectors := fe.Sectors - 1
	if dataSectors < 0 || dataSectors > MaxTSPairs {
		return ErrCorruptVolume
	}
	for i := 0; i < dataSectors; i++ {
		track := int(tsList[tsListOffFirstPair+i*2])
		sector := int(tsList[tsListOffFirstPair+i*2+1])
		if err := di.FreeSector(track, sector); err != nil {
			return err
		}
	}
	return di.FreeSector(int(fe.TSTrack), int(fe.TSSector))
}

// SaveBasicProgram tokenizes Applesoft BASIC source and writes it to the
// volume as an A-type file. Returns the sector count recorded in the
// catalog.
func (di *DiskImage) SaveBasicProgram(name, source string) (int, error) {
	return di.WriteFile(name, FileTypeApplesoftBasic, applesoft.Tokenize(source))
}
