// file: pkg/diskimg/allocation_test.go

package diskimg

import (
	"errors"
	"testing"
)

func formattedDisk(t *testing.T) *DiskImage {
	t.Helper()
	disk := NewDiskImage()
	if err := disk.Format(DefaultVolumeNumber); err != nil {
		t.Fatalf("format failed: %v", err)
	}
	return disk
}

func TestAllocateSector(t *testing.T) {
	t.Run("first grant is track 18 sector 0", func(t *testing.T) {
		disk := formattedDisk(t)
		track, sector, err := disk.AllocateSector()
		if err != nil {
			t.Fatalf("allocate failed: %v", err)
		}
		if track != 18 || sector != 0 {
			t.Errorf("first allocation = (%d, %d), want (18, 0)", track, sector)
		}
	})

	t.Run("outward then wrap search order", func(t *testing.T) {
		disk := formattedDisk(t)

		// Exhaust tracks 18..34, then the first wrap grant must be on
		// track 16, and track 0 must be the very last track touched.
		for i := 0; i < (TracksPerDisk-18)*SectorsPerTrack; i++ {
			track, _, err := disk.AllocateSector()
			if err != nil {
				t.Fatalf("allocate %d failed: %v", i, err)
			}
			if track < 18 {
				t.Fatalf("allocation %d landed on track %d before the rim was full", i, track)
			}
		}
		track, sector, err := disk.AllocateSector()
		if err != nil {
			t.Fatalf("wrap allocation failed: %v", err)
		}
		if track != 16 || sector != 0 {
			t.Errorf("first wrap allocation = (%d, %d), want (16, 0)", track, sector)
		}
	})

	t.Run("never track 17, no repeats, exact exhaustion", func(t *testing.T) {
		disk := formattedDisk(t)
		seen := make(map[[2]int]bool)
		total := (TracksPerDisk - 1) * SectorsPerTrack

		for i := 0; i < total; i++ {
			track, sector, err := disk.AllocateSector()
			if err != nil {
				t.Fatalf("allocate %d failed: %v", i, err)
			}
			if track == CatalogTrack {
				t.Fatalf("allocation %d returned the catalog track", i)
			}
			key := [2]int{track, sector}
			if seen[key] {
				t.Fatalf("sector (%d, %d) allocated twice", track, sector)
			}
			seen[key] = true
		}

		if _, _, err := disk.AllocateSector(); !errors.Is(err, ErrDiskFull) {
			t.Fatalf("want ErrDiskFull after %d allocations, got %v", total, err)
		}
	})

	t.Run("freed sector becomes allocatable again", func(t *testing.T) {
		disk := formattedDisk(t)
		track, sector, err := disk.AllocateSector()
		if err != nil {
			t.Fatalf("allocate failed: %v", err)
		}
		if err := disk.FreeSector(track, sector); err != nil {
			t.Fatalf("free failed: %v", err)
		}
		gotTrack, gotSector, err := disk.AllocateSector()
		if err != nil {
			t.Fatalf("re-allocate failed: %v", err)
		}
		if gotTrack != track || gotSector != sector {
			t.Errorf("re-allocation = (%d, %d), want (%d, %d)", gotTrack, gotSector, track, sector)
		}
	})

	t.Run("catalog track cannot be freed", func(t *testing.T) {
		disk := formattedDisk(t)
		if err := disk.FreeSector(CatalogTrack, 3); !errors.Is(err, ErrInvalidTrack) {
			t.Errorf("want ErrInvalidTrack, got %v", err)
		}
	})

	t.Run("free sector count tracks allocations", func(t *testing.T) {
		disk := formattedDisk(t)
		before, err := disk.FreeSectorCount()
		if err != nil {
			t.Fatalf("count failed: %v", err)
		}
		if want := (TracksPerDisk - 1) * SectorsPerTrack; before != want {
			t.Fatalf("fresh volume has %d free sectors, want %d", before, want)
		}
		if _, _, err := disk.AllocateSector(); err != nil {
			t.Fatalf("allocate failed: %v", err)
		}
		after, _ := disk.FreeSectorCount()
		if after != before-1 {
			t.Errorf("free count after allocation = %d, want %d", after, before-1)
		}
	})
}
