// file: pkg/diskimg/writer.go

package diskimg

import (
	"fmt"
	"io"
	"os"
)

// SaveToFile writes the disk image to a file.
func (di *DiskImage) SaveToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return di.Save(file)
}

// Save writes the whole image buffer to an io.Writer.
func (di *DiskImage) Save(w io.Writer) error {
	if _, err := w.Write(di.data); err != nil {
		return fmt.Errorf("failed to write disk image: %w", err)
	}
	return nil
}
