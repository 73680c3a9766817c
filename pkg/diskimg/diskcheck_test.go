// file: pkg/diskimg/diskcheck_test.go

package diskimg

import (
	"errors"
	"testing"
)

func TestDiskCheck(t *testing.T) {
	t.Run("formatted volume passes", func(t *testing.T) {
		disk := formattedDisk(t)
		if _, err := disk.WriteFile("OK", FileTypeText, []byte("fine")); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if err := disk.DiskCheck(); err != nil {
			t.Errorf("check failed on a healthy volume: %v", err)
		}
	})

	t.Run("unformatted volume fails", func(t *testing.T) {
		disk := NewDiskImage()
		if err := disk.DiskCheck(); !errors.Is(err, ErrCorruptVolume) {
			t.Errorf("want ErrCorruptVolume, got %v", err)
		}
	})

	t.Run("out-of-range chain pointer fails", func(t *testing.T) {
		disk := formattedDisk(t)
		data, err := disk.GetSectorData(CatalogTrack, FirstCatalogSector)
		if err != nil {
			t.Fatalf("reading catalog sector: %v", err)
		}
		data[0x01] = 99
		if err := disk.SetSectorData(CatalogTrack, FirstCatalogSector, data); err != nil {
			t.Fatalf("corrupting sector: %v", err)
		}
		if err := disk.DiskCheck(); !errors.Is(err, ErrCorruptVolume) {
			t.Errorf("want ErrCorruptVolume, got %v", err)
		}
	})

	t.Run("entry with impossible sector count fails", func(t *testing.T) {
		disk := formattedDisk(t)
		if err := disk.AddCatalogEntry("BAD", FileTypeText, 18, 0, 0); err != nil {
			t.Fatalf("append failed: %v", err)
		}
		if err := disk.DiskCheck(); !errors.Is(err, ErrCorruptVolume) {
			t.Errorf("want ErrCorruptVolume, got %v", err)
		}
	})
}
