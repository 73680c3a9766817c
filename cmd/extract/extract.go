// file: cmd/extract/extract.go

package extract

import (
	"fmt"
	"os"

	"github.com/ha1tch/dos33/pkg/applesoft"
	"github.com/ha1tch/dos33/pkg/diskimg"
)

// Options configures file extraction.
type Options struct {
	Detokenize bool // Expand an Applesoft file back into listing text
	Quiet      bool // Suppress non-error output
}

// DefaultOptions returns default options for Extract.
func DefaultOptions() *Options {
	return &Options{
		Detokenize: false,
		Quiet:      false,
	}
}

// Extract copies a file out of a disk image to the host filesystem,
// either as raw sector data or, for Applesoft files, as detokenized
// listing text.
func Extract(diskPath, fileName, outPath string, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}

	if _, err := os.Stat(diskPath); os.IsNotExist(err) {
		return fmt.Errorf("disk image does not exist: %s", diskPath)
	}

	disk, err := diskimg.LoadFromFile(diskPath)
	if err != nil {
		return fmt.Errorf("failed to open disk: %w", err)
	}

	data, err := disk.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", fileName, err)
	}

	if opts.Detokenize {
		entry, err := disk.FindFile(fileName)
		if err != nil {
			return err
		}
		if entry.Type != diskimg.FileTypeApplesoftBasic {
			return fmt.Errorf("%q is not an Applesoft BASIC file", fileName)
		}
		listing, err := applesoft.Detokenize(data)
		if err != nil {
			return fmt.Errorf("failed to detokenize %q: %w", fileName, err)
		}
		data = []byte(listing)
	}

	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if !opts.Quiet {
		fmt.Printf("Extracted %s (%d bytes) to %s\n", fileName, len(data), outPath)
	}
	return nil
}
