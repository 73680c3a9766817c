// file: cmd/info/info.go

package info

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ha1tch/dos33/pkg/diskimg"
)

// Options configures the info display.
type Options struct {
	JSON bool // Output in JSON format
}

// DefaultOptions returns default options for Info.
func DefaultOptions() *Options {
	return &Options{
		JSON: false,
	}
}

// volumeInfo is the JSON shape of the volume summary.
type volumeInfo struct {
	VolumeNumber int `json:"volume_number"`
	DOSVersion   int `json:"dos_version"`
	Tracks       int `json:"tracks"`
	Sectors      int `json:"sectors_per_track"`
	SectorSize   int `json:"sector_size"`
	FreeSectors  int `json:"free_sectors"`
	Files        int `json:"files"`
}

// Info prints a summary of a disk image's VTOC and catalog.
func Info(diskPath string, opts *Options) error {
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

	summary := volumeInfo{
		VolumeNumber: int(vtoc.VolumeNumber()),
		DOSVersion:   int(vtoc.DOSVersion()),
		Tracks:       int(vtoc.TrackCount()),
		Sectors:      int(vtoc.SectorCount()),
		SectorSize:   vtoc.SectorSize(),
		FreeSectors:  vtoc.FreeSectorCount(),
		Files:        len(files),
	}

	if opts.JSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(summary)
	}

	fmt.Printf("Disk image:        %s\n", diskPath)
	fmt.Printf("Volume number:     %d\n", summary.VolumeNumber)
	fmt.Printf("DOS version:       %d\n", summary.DOSVersion)
	fmt.Printf("Geometry:          %d tracks x %d sectors x %d bytes\n",
		summary.Tracks, summary.Sectors, summary.SectorSize)
	fmt.Printf("Free sectors:      %d\n", summary.FreeSectors)
	fmt.Printf("Files:             %d\n", summary.Files)
	return nil
}
