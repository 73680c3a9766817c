// file: cmd/delete/delete.go

package delete

import (
	"fmt"
	"os"
	"strings"

	"github.com/ha1tch/dos33/pkg/diskimg"
)

// Options configures file deletion.
type Options struct {
	Quiet bool // Suppress non-error output
}

// DefaultOptions returns default options for Delete.
func DefaultOptions() *Options {
	return &Options{
		Quiet: false,
	}
}

// Delete removes a file from a disk image: the catalog entry is marked
// deleted and the file's sectors are returned to the free bitmap.
func Delete(diskPath, filename string, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}

	filename = strings.TrimSpace(filename)
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	if _, err := os.Stat(diskPath); os.IsNotExist(err) {
		return fmt.Errorf("disk image does not exist: %s", diskPath)
	}

	disk, err := diskimg.LoadFromFile(diskPath)
	if err != nil {
		return fmt.Errorf("failed to open disk: %w", err)
	}

	if err := disk.DeleteFile(filename); err != nil {
		return fmt.Errorf("failed to delete %q: %w", filename, err)
	}

	if err := disk.SaveToFile(diskPath); err != nil {
		return fmt.Errorf("failed to save disk image: %w", err)
	}

	if !opts.Quiet {
		fmt.Printf("Deleted %s from %s\n", strings.ToUpper(filename), diskPath)
	}
	return nil
}
