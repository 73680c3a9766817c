// file: pkg/diskimg/errors.go

package diskimg

import "errors"

var (
	ErrInvalidTrack       = errors.New("invalid track number")
	ErrInvalidSector      = errors.New("invalid sector number")
	ErrSectorDataTooLarge = errors.New("sector data exceeds 256 bytes")
	ErrInvalidImageSize   = errors.New("invalid disk image size")
	ErrDiskFull           = errors.New("disk full - no free sectors")
	ErrCatalogFull        = errors.New("catalog full - no free entries")
	ErrFileNotFound       = errors.New("file not found")
	ErrFileExists         = errors.New("file already exists")
	ErrFileTooLarge       = errors.New("file exceeds track/sector list capacity")
	ErrInvalidFilename    = errors.New("invalid filename")
	ErrCorruptVolume      = errors.New("corrupt volume structure")
)
