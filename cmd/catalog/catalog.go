// file: cmd/catalog/catalog.go

package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ha1tch/dos33/pkg/diskimg"
)

// Options configures the catalog listing.
type Options struct {
	JSON  bool // Output in JSON format
	Quiet bool // Suppress non-error output
}

// DefaultOptions returns default options for List.
func DefaultOptions() *Options {
	return &Options{
		JSON:  false,
		Quiet: false,
	}
}

// listedFile is the JSON shape of one catalog entry.
type listedFile struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Locked  bool   `json:"locked"`
	Sectors int    `json:"sectors"`
}

// List prints the catalog of a disk image in the style of the DOS 3.3
// CATALOG command.
func List(diskPath string, opts *Options) error {
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

	vtoc, err := disk.ReadVTOC()
	if err != nil {
		return err
	}

	files, err := disk.Catalog()
	if err != nil {
		return fmt.Errorf("failed to read catalog: %w", err)
	}

	if opts.JSON {
		listed := make([]listedFile, 0, len(files))
		for _, f := range files {
			listed = append(listed, listedFile{
				Name:    f.Name,
				Type:    f.TypeLetter(),
				Locked:  f.Locked,
				Sectors: f.Sectors,
			})
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(listed)
	}

	fmt.Printf("\nDISK VOLUME %d\n\n", vtoc.VolumeNumber())
	for _, f := range files {
		lock := " "
		if f.Locked {
			lock = "*"
		}
		fmt.Printf("%s%s %03d %s\n", lock, f.TypeLetter(), f.Sectors, f.Name)
	}
	fmt.Printf("\n%d FILES\n", len(files))

	if !opts.Quiet {
		fmt.Printf("%d SECTORS FREE\n", vtoc.FreeSectorCount())
	}
	return nil
}
