// file: pkg/diskimg/catalog.go

package diskimg

import (
	"strings"
)

// Catalog sector layout.
const (
	catOffNextTrack  = 0x01
	catOffNextSector = 0x02
	catOffFirstEntry = 0x0B
	catalogEntrySize = 0x23

	// Entry offsets relative to the start of a 35-byte entry.
	entryOffTSTrack   = 0x00
	entryOffTSSector  = 0x01
	entryOffFileType  = 0x02
	entryOffName      = 0x03
	entryOffSectorsLo = 0x21
	entryOffSectorsHi = 0x22

	// First-byte sentinels: 0x00 = never used, 0xFF = deleted. Both are
	// valid insertion targets.
	entryTrackDeleted = 0xFF

	// A well-formed chain stays on track 17 and is at most 15 sectors
	// long; anything that has not terminated after visiting every sector
	// on the disk is circular or trashed.
	maxCatalogHops = TracksPerDisk * SectorsPerTrack
)

// FileEntry is a decoded catalog entry.
type FileEntry struct {
	Name     string
	Type     byte // raw file-type byte with the lock bit stripped
	Locked   bool
	Sectors  int  // sector count including the T/S list sector
	TSTrack  byte // first track/sector-list sector
	TSSector byte
}

// TypeLetter returns the single-character type tag DOS prints in a
// CATALOG listing. Applesoft wins over Integer BASIC when both bits are
// set, matching the DOS display order.
func (fe *FileEntry) TypeLetter() string {
	switch {
	case fe.Type&FileTypeApplesoftBasic != 0:
		return "A"
	case fe.Type&FileTypeIntegerBasic != 0:
		return "I"
	case fe.Type&FileTypeBinary != 0:
		return "B"
	default:
		return "T"
	}
}

// walkCatalog follows the catalog sector chain from the VTOC head,
// calling fn for each sector. fn returning true stops the walk. The walk
// is bounded; a chain that does not terminate within maxCatalogHops
// fails with ErrCorruptVolume instead of looping forever.
func (di *DiskImage) walkCatalog(fn func(track, sector int, data []byte) (bool, error)) error {
	vtoc, err := di.ReadVTOC()
	if err != nil {
		return err
	}
	track, sector := vtoc.CatalogHead()

	for hops := 0; track != 0; hops++ {
		if hops >= maxCatalogHops {
			return ErrCorruptVolume
		}
		data, err := di.GetSectorData(int(track), int(sector))
		if err != nil {
			return ErrCorruptVolume
		}
		done, err := fn(int(track), int(sector), data)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		track, sector = data[catOffNextTrack], data[catOffNextSector]
	}
	return nil
}

// Catalog returns all live file entries on the volume, in chain order.
func (di *DiskImage) Catalog() ([]FileEntry, error) {
	var files []FileEntry
	err := di.walkCatalog(func(_, _ int, data []byte) (bool, error) {
		for i := 0; i < EntriesPerCatalogSector; i++ {
			entry := data[catOffFirstEntry+i*catalogEntrySize:]
			if entry[entryOffTSTrack] == 0x00 || entry[entryOffTSTrack] == entryTrackDeleted {
				continue
			}
			files = append(files, decodeEntry(entry))
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// FindFile looks up a catalog entry by name (case-insensitive).
func (di *DiskImage) FindFile(name string) (*FileEntry, error) {
	name = normalizeFilename(name)
	var found *FileEntry
	err := di.walkCatalog(func(_, _ int, data []byte) (bool, error) {
		for i := 0; i < EntriesPerCatalogSector; i++ {
			entry := data[catOffFirstEntry+i*catalogEntrySize:]
			if entry[entryOffTSTrack] == 0x00 || entry[entryOffTSTrack] == entryTrackDeleted {
				continue
			}
			fe := decodeEntry(entry)
			if fe.Name == name {
				found = &fe
				return true, nil
			}
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, ErrFileNotFound
	}
	return found, nil
}

// AddCatalogEntry writes a new 35-byte entry into the first empty or
// deleted slot in the chain. The name is uppercased, truncated to 30
// characters, space-padded and stored with the high bit set on every
// byte. Fails with ErrCatalogFull when the fixed chain has no slot left.
func (di *DiskImage) AddCatalogEntry(name string, fileType byte, tsTrack, tsSector byte, sectors int) error {
	name = normalizeFilename(name)
	if name == "" {
		return ErrInvalidFilename
	}

	inserted := false
	err := di.walkCatalog(func(track, sector int, data []byte) (bool, error) {
		for i := 0; i < EntriesPerCatalogSector; i++ {
			offset := catOffFirstEntry + i*catalogEntrySize
			if data[offset] != 0x00 && data[offset] != entryTrackDeleted {
				continue
			}

			entry := data[offset : offset+catalogEntrySize]
			entry[entryOffTSTrack] = tsTrack
			entry[entryOffTSSector] = tsSector
			entry[entryOffFileType] = fileType
			for j, c := range paddedFilename(name) {
				entry[entryOffName+j] = c | 0x80
			}
			entry[entryOffSectorsLo] = byte(sectors)
			entry[entryOffSectorsHi] = byte(sectors >> 8)

			if err := di.SetSectorData(track, sector, data); err != nil {
				return false, err
			}
			inserted = true
			return true, nil
		}
		return false, nil
	})
	if err != nil {
		return err
	}
	if !inserted {
		return ErrCatalogFull
	}
	return nil
}

// markEntryDeleted writes the 0xFF deletion sentinel into the named
// entry's track byte and persists the catalog sector. The slot becomes
// reusable by AddCatalogEntry.
func (di *DiskImage) markEntryDeleted(name string) error {
	name = normalizeFilename(name)
	deleted := false
	err := di.walkCatalog(func(track, sector int, data []byte) (bool, error) {
		for i := 0; i < EntriesPerCatalogSector; i++ {
			offset := catOffFirstEntry + i*catalogEntrySize
			if data[offset] == 0x00 || data[offset] == entryTrackDeleted {
				continue
			}
			if decodeEntry(data[offset:]).Name != name {
				continue
			}
			data[offset] = entryTrackDeleted
			if err := di.SetSectorData(track, sector, data); err != nil {
				return false, err
			}
			deleted = true
			return true, nil
		}
		return false, nil
	})
	if err != nil {
		return err
	}
	if !deleted {
		return ErrFileNotFound
	}
	return nil
}

// decodeEntry converts a raw 35-byte catalog entry into a FileEntry.
func decodeEntry(entry []byte) FileEntry {
	nameBytes := make([]byte, MaxFilenameLength)
	for i := 0; i < MaxFilenameLength; i++ {
		nameBytes[i] = entry[entryOffName+i] & 0x7F
	}

	fileType := entry[entryOffFileType]
	return FileEntry{
		Name:     strings.TrimRight(string(nameBytes), " "),
		Type:     fileType & 0x7F,
		Locked:   fileType&0x80 != 0,
		Sectors:  int(entry[entryOffSectorsLo]) | int(entry[entryOffSectorsHi])<<8,
		TSTrack:  entry[entryOffTSTrack],
		TSSector: entry[entryOffTSSector],
	}
}

// normalizeFilename uppercases and truncates a name to the 30-character
// catalog limit.
func normalizeFilename(name string) string {
	name = strings.ToUpper(strings.TrimSpace(name))
	if len(name) > MaxFilenameLength {
		name = name[:MaxFilenameLength]
	}
	return name
}

// paddedFilename space-pads a normalized name to exactly 30 bytes.
func paddedFilename(name string) []byte {
	padded := make([]byte, MaxFilenameLength)
	copy(padded, name)
	for i := len(name); i < MaxFilenameLength; i++ {
		padded[i] = ' '
	}
	return padded
}
