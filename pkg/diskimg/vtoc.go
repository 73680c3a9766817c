// file: pkg/diskimg/vtoc.go

package diskimg

// VTOC byte offsets within sector (17, 0).
const (
	vtocOffMarker       = 0x00 // unused but DOS writes 4 here
	vtocOffCatalogTrack = 0x01
	vtocOffCatalogSect  = 0x02
	vtocOffDOSVersion   = 0x03
	vtocOffVolumeNumber = 0x06
	vtocOffMaxTSPairs   = 0x27
	vtocOffLastTrack    = 0x30
	vtocOffDirection    = 0x31
	vtocOffTrackCount   = 0x34
	vtocOffSectorCount  = 0x35
	vtocOffSectorSizeLo = 0x36
	vtocOffSectorSizeHi = 0x37
	vtocOffBitmap       = 0x38 // 4 bytes per track, 16 meaningful bits
)

// VTOC wraps the raw bytes of the Volume Table of Contents sector.
// Mutations are only made durable by DiskImage.writeVTOC.
type VTOC struct {
	data []byte
}

// ReadVTOC reads the VTOC sector from the image.
func (di *DiskImage) ReadVTOC() (*VTOC, error) {
	data, err := di.GetSectorData(VTOCTrack, VTOCSector)
	if err != nil {
		return nil, err
	}
	return &VTOC{data: data}, nil
}

// writeVTOC persists the VTOC sector back to the image.
func (di *DiskImage) writeVTOC(v *VTOC) error {
	return di.SetSectorData(VTOCTrack, VTOCSector, v.data)
}

// CatalogHead returns the track/sector of the first catalog sector.
func (v *VTOC) CatalogHead() (track, sector byte) {
	return v.data[vtocOffCatalogTrack], v.data[vtocOffCatalogSect]
}

// VolumeNumber returns the volume number (1-254).
func (v *VTOC) VolumeNumber() byte {
	return v.data[vtocOffVolumeNumber]
}

// DOSVersion returns the DOS version tag (3 for DOS 3.3).
func (v *VTOC) DOSVersion() byte {
	return v.data[vtocOffDOSVersion]
}

// TrackCount returns the number of tracks on the volume.
func (v *VTOC) TrackCount() byte {
	return v.data[vtocOffTrackCount]
}

// SectorCount returns the number of sectors per track.
func (v *VTOC) SectorCount() byte {
	return v.data[vtocOffSectorCount]
}

// SectorSize returns the sector size in bytes.
func (v *VTOC) SectorSize() int {
	return int(v.data[vtocOffSectorSizeLo]) | int(v.data[vtocOffSectorSizeHi])<<8
}

// MaxTSPairs returns the maximum track/sector pairs per T/S list sector.
func (v *VTOC) MaxTSPairs() byte {
	return v.data[vtocOffMaxTSPairs]
}

// trackBitmap returns the 16-bit free-sector bitmap for a track.
// Bit n set means sector n is free.
func (v *VTOC) trackBitmap(track int) uint16 {
	offset := vtocOffBitmap + track*4
	return uint16(v.data[offset]) | uint16(v.data[offset+1])<<8
}

// setTrackBitmap stores the 16-bit free-sector bitmap for a track.
func (v *VTOC) setTrackBitmap(track int, bitmap uint16) {
	offset := vtocOffBitmap + track*4
	v.data[offset] = byte(bitmap)
	v.data[offset+1] = byte(bitmap >> 8)
}

// IsSectorFree reports whether the bitmap marks a sector free.
func (v *VTOC) IsSectorFree(track, sector int) bool {
	return v.trackBitmap(track)&(1<<uint(sector)) != 0
}

// markSectorUsed clears a sector's free bit in the bitmap.
func (v *VTOC) markSectorUsed(track, sector int) {
	v.setTrackBitmap(track, v.trackBitmap(track)&^(1<<uint(sector)))
}

// markSectorFree sets a sector's free bit in the bitmap.
func (v *VTOC) markSectorFree(track, sector int) {
	v.setTrackBitmap(track, v.trackBitmap(track)|1<<uint(sector))
}

// FreeSectorCount returns the number of free sectors on the volume.
func (v *VTOC) FreeSectorCount() int {
	free := 0
	for track := 0; track < TracksPerDisk; track++ {
		bitmap := v.trackBitmap(track)
		for sector := 0; sector < SectorsPerTrack; sector++ {
			if bitmap&(1<<uint(sector)) != 0 {
				free++
			}
		}
	}
	return free
}
