// file: pkg/diskimg/diskimg.go

package diskimg

const (
	TracksPerDisk   = 35
	SectorsPerTrack = 16
	BytesPerSector  = 256
	DiskSizeInBytes = TracksPerDisk * SectorsPerTrack * BytesPerSector // 143360, standard .dsk

	VTOCTrack          = 17
	VTOCSector         = 0
	CatalogTrack       = 17
	FirstCatalogSector = 15

	EntriesPerCatalogSector = 7
	MaxFilenameLength       = 30
	MaxTSPairs              = 122
)

// DOS 3.3 file type codes. Bit 7 of the type byte is the lock flag.
const (
	FileTypeText           = 0x00
	FileTypeIntegerBasic   = 0x01
	FileTypeApplesoftBasic = 0x02
	FileTypeBinary         = 0x04
	FileTypeSType          = 0x08
	FileTypeRelocatable    = 0x10
	FileTypeAType          = 0x20
	FileTypeBType          = 0x40
)

// DiskImage represents a DOS 3.3 disk image as a flat byte buffer.
// The buffer is always exactly DiskSizeInBytes long; sector (t, s) lives
// at offset SectorOffset(t, s). There is no file header.
type DiskImage struct {
	data []byte
}

// NewDiskImage creates a blank (all-zero, unformatted) disk image.
func NewDiskImage() *DiskImage {
	return &DiskImage{
		data: make([]byte, DiskSizeInBytes),
	}
}

// SectorOffset converts track/sector coordinates to a byte offset in the
// disk image. No range validation is performed.
func SectorOffset(track, sector int) int {
	return (track*SectorsPerTrack + sector) * BytesPerSector
}

// OffsetToSector converts a byte offset back to track/sector coordinates.
func OffsetToSector(offset int) (track, sector int) {
	sectorNum := offset / BytesPerSector
	return sectorNum / SectorsPerTrack, sectorNum % SectorsPerTrack
}

// GetSectorData returns a copy of a single 256-byte sector.
func (di *DiskImage) GetSectorData(track, sector int) ([]byte, error) {
	if track < 0 || track >= TracksPerDisk {
		return nil, ErrInvalidTrack
	}
	if sector < 0 || sector >= SectorsPerTrack {
		return nil, ErrInvalidSector
	}

	offset := SectorOffset(track, sector)
	data := make([]byte, BytesPerSector)
	copy(data, di.data[offset:offset+BytesPerSector])
	return data, nil
}

// SetSectorData writes data to a single sector. Data longer than one
// sector is rejected before any mutation; shorter data has the remainder
// of the sector zero-filled. This is a whole-sector replace, never a
// partial merge.
func (di *DiskImage) SetSectorData(track, sector int, data []byte) error {
	if track < 0 || track >= TracksPerDisk {
		return ErrInvalidTrack
	}
	if sector < 0 || sector >= SectorsPerTrack {
		return ErrInvalidSector
	}
	if len(data) > BytesPerSector {
		return ErrSectorDataTooLarge
	}

	offset := SectorOffset(track, sector)
	copy(di.data[offset:offset+len(data)], data)
	for i := offset + len(data); i < offset+BytesPerSector; i++ {
		di.data[i] = 0
	}
	return nil
}

// Bytes returns a copy of the whole image buffer.
func (di *DiskImage) Bytes() []byte {
	out := make([]byte, len(di.data))
	copy(out, di.data)
	return out
}
