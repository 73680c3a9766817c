// file: pkg/diskimg/allocation.go

package diskimg

// allocationOrder returns the track search order used by DOS 3.3 when
// handing out sectors: outward from track 18 to the rim, then from track
// 16 back down to 0. Track 17 is never allocated. Files written to a
// reference image land at exactly these coordinates, so the order must
// not change.
func allocationOrder() []int {
	tracks := make([]int, 0, TracksPerDisk-1)
	for track := 18; track < TracksPerDisk; track++ {
		tracks = append(tracks, track)
	}
	for track := 16; track >= 0; track-- {
		tracks = append(tracks, track)
	}
	return tracks
}

// AllocateSector finds the first free sector in allocation order, marks
// it used, persists the VTOC and returns its coordinates. Returns
// ErrDiskFull when every sector outside track 17 is taken.
func (di *DiskImage) AllocateSector() (track, sector int, err error) {
	vtoc, err := di.ReadVTOC()
	if err != nil {
		return 0, 0, err
	}

	for _, t := range allocationOrder() {
		bitmap := vtoc.trackBitmap(t)
		if bitmap == 0 {
			continue
		}
		for s := 0; s < SectorsPerTrack; s++ {
			if bitmap&(1<<uint(s)) == 0 {
				continue
			}
			vtoc.markSectorUsed(t, s)
			if err := di.writeVTOC(vtoc); err != nil {
				return 0, 0, err
			}
			return t, s, nil
		}
	}

	return 0, 0, ErrDiskFull
}

// FreeSector marks a sector free again in the VTOC bitmap. Freeing
// anything on the catalog track is refused; it is permanently reserved.
func (di *DiskImage) FreeSector(track, sector int) error {
	if track < 0 || track >= TracksPerDisk {
		return ErrInvalidTrack
	}
	if sector < 0 || sector >= SectorsPerTrack {
		return ErrInvalidSector
	}
	if track == CatalogTrack {
		return ErrInvalidTrack
	}

	vtoc, err := di.ReadVTOC()
	if err != nil {
		return err
	}
	vtoc.markSectorFree(track, sector)
	return di.writeVTOC(vtoc)
}

// FreeSectorCount returns the number of unallocated sectors.
func (di *DiskImage) FreeSectorCount() (int, error) {
	vtoc, err := di.ReadVTOC()
	if err != nil {
		return 0, err
	}
	return vtoc.FreeSectorCount(), nil
}
