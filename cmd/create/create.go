// file: cmd/create/create.go

package create

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ha1tch/dos33/pkg/diskimg"
)

// Options configures disk creation.
type Options struct {
	VolumeNumber int  // Volume number written to the VTOC (1-254)
	Force        bool // Overwrite existing file
	Quiet        bool // Suppress non-error output
}

// DefaultOptions returns default options for Create.
func DefaultOptions() *Options {
	return &Options{
		VolumeNumber: diskimg.DefaultVolumeNumber,
		Force:        false,
		Quiet:        false,
	}
}

// Create creates a blank formatted DOS 3.3 disk image.
func Create(outPath string, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.VolumeNumber < 1 || opts.VolumeNumber > 254 {
		return fmt.Errorf("volume number out of range (1-254): %d", opts.VolumeNumber)
	}

	outPath = filepath.Clean(outPath)
	if !opts.Force {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("file already exists: %s (use --force to overwrite)", outPath)
		}
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	disk := diskimg.NewDiskImage()
	if err := disk.Format(byte(opts.VolumeNumber)); err != nil {
		return fmt.Errorf("failed to format disk: %w", err)
	}

	if err := disk.SaveToFile(outPath); err != nil {
		os.Remove(outPath)
		return fmt.Errorf("failed to save disk image: %w", err)
	}

	if err := verifyDiskImage(outPath); err != nil {
		os.Remove(outPath)
		return fmt.Errorf("disk image verification failed: %w", err)
	}

	if !opts.Quiet {
		fmt.Printf("Created blank DOS 3.3 disk image: %s (volume %d)\n", outPath, opts.VolumeNumber)
	}
	return nil
}

// verifyDiskImage re-loads the created image and runs the consistency
// check against it.
func verifyDiskImage(path string) error {
	disk, err := diskimg.LoadFromFile(path)
	if err != nil {
		return err
	}
	return disk.DiskCheck()
}
