// file: cmd/save/save.go

package save

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ha1tch/dos33/pkg/diskimg"
)

// Options configures saving a BASIC program.
type Options struct {
	Name         string // Catalog name; defaults to the source file's base name
	VolumeNumber int    // Volume number when a fresh disk must be formatted
	Quiet        bool   // Suppress non-error output
}

// DefaultOptions returns default options for Save.
func DefaultOptions() *Options {
	return &Options{
		Name:         "",
		VolumeNumber: diskimg.DefaultVolumeNumber,
		Quiet:        false,
	}
}

// Save tokenizes a BASIC source file and writes it onto a disk image.
// A missing image is formatted fresh, so saving onto a new path works in
// one step.
func Save(diskPath, sourcePath string, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}

	source, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to read BASIC source: %w", err)
	}

	name := opts.Name
	if name == "" {
		base := filepath.Base(sourcePath)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	disk, err := diskimg.LoadFromFile(diskPath)
	if err != nil {
		return fmt.Errorf("failed to open disk: %w", err)
	}
	if _, err := os.Stat(diskPath); os.IsNotExist(err) {
		if err := disk.Format(byte(opts.VolumeNumber)); err != nil {
			return fmt.Errorf("failed to format disk: %w", err)
		}
	}

	sectors, err := disk.SaveBasicProgram(name, string(source))
	if err != nil {
		return fmt.Errorf("failed to save program: %w", err)
	}

	if err := disk.SaveToFile(diskPath); err != nil {
		return fmt.Errorf("failed to save disk image: %w", err)
	}

	if !opts.Quiet {
		fmt.Printf("Saved %s (%d sectors) to %s\n", strings.ToUpper(name), sectors, diskPath)
	}
	return nil
}
