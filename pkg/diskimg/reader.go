// file: pkg/diskimg/reader.go

package diskimg

import (
	"fmt"
	"io"
	"os"
)

// LoadFromFile loads a .dsk image from a file. A nonexistent path yields
// a blank zeroed volume rather than an error, so callers can open-or-
// create with one call.
func LoadFromFile(filename string) (*DiskImage, error) {
	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDiskImage(), nil
		}
		return nil, err
	}
	defer file.Close()

	return Load(file)
}

// Load reads a .dsk image from an io.Reader. The stream must be exactly
// one volume long; there is no header to validate, the size is the only
// format check available.
func Load(r io.Reader) (*DiskImage, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read disk image: %w", err)
	}
	if len(data) != DiskSizeInBytes {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidImageSize, len(data), DiskSizeInBytes)
	}
	return &DiskImage{data: data}, nil
}
