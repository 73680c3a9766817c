// file: pkg/diskimg/format.go

package diskimg

// DefaultVolumeNumber is what DOS 3.3 INIT uses when none is given.
const DefaultVolumeNumber = 254

// Format initializes an empty DOS 3.3 structure on the image: a VTOC at
// (17, 0) and a pre-allocated chain of empty catalog sectors running from
// (17, 15) down to (17, 1). The catalog capacity is fixed here and never
// grows. Any existing content is destroyed.
func (di *DiskImage) Format(volumeNumber byte) error {
	for i := range di.data {
		di.data[i] = 0
	}

	vtoc := make([]byte, BytesPerSector)
	vtoc[vtocOffMarker] = 0x04 // unused slot, but DOS writes 4
	vtoc[vtocOffCatalogTrack] = CatalogTrack
	vtoc[vtocOffCatalogSect] = FirstCatalogSector
	vtoc[vtocOffDOSVersion] = 3
	vtoc[vtocOffVolumeNumber] = volumeNumber
	vtoc[vtocOffMaxTSPairs] = MaxTSPairs
	vtoc[vtocOffLastTrack] = 18 // allocation starts just past the catalog track
	vtoc[vtocOffDirection] = 1
	vtoc[vtocOffTrackCount] = TracksPerDisk
	vtoc[vtocOffSectorCount] = SectorsPerTrack
	vtoc[vtocOffSectorSizeLo] = byte(BytesPerSector & 0xFF)
	vtoc[vtocOffSectorSizeHi] = byte(BytesPerSector >> 8)

	// Free-sector bitmaps: 4 bytes per track, set bit = free. Track 17 is
	// reserved whole for the VTOC and catalog regardless of how many
	// catalog sectors hold entries.
	for track := 0; track < TracksPerDisk; track++ {
		offset := vtocOffBitmap + track*4
		if track == CatalogTrack {
			continue // leave all zero (used)
		}
		vtoc[offset] = 0xFF
		vtoc[offset+1] = 0xFF
	}

	if err := di.SetSectorData(VTOCTrack, VTOCSector, vtoc); err != nil {
		return err
	}

	// Catalog sectors form a descending singly linked chain; sector 1
	// terminates with a (0, 0) pointer.
	for sector := FirstCatalogSector; sector >= 1; sector-- {
		catalog := make([]byte, BytesPerSector)
		if sector > 1 {
			catalog[catOffNextTrack] = CatalogTrack
			catalog[catOffNextSector] = byte(sector - 1)
		}
		if err := di.SetSectorData(CatalogTrack, sector, catalog); err != nil {
			return err
		}
	}

	return nil
}
