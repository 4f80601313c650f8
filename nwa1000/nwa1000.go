/*
Package nwa1000 implements the screensaver file format used by the Sony
NW-A1000 series.

All fields are big-endian 16-bit values:

	magic (0xD301) | frame count | bitmap count | has thumbnail (1) |
	data offset (0x10) | 6 reserved bytes | 90 byte thumbnail |
	6 reserved bytes | frame table | padding to 16 bytes |
	1600 byte bitmaps | padding to 16 bytes

The thumbnail is 18 by 18 pixels at 2 bits per pixel with each row padded to
20 pixels. Each bitmap is 80 by 80 pixels at 2 bits per pixel.
*/
package nwa1000

import (
	"image"

	"github.com/bodgit/nwsaver/bitmap"
)

// Magic is the first field of every NW-A1000 screensaver.
const Magic = 0xd301

const (
	hasThumbnail = 0x0001
	dataOffset   = 0x0010
	reserved     = 6
	alignment    = 16
)

var (
	// Thumbnail describes the preview bitmap.
	Thumbnail = bitmap.MustDescription(18, 18, 2, 20, 18)
	// Bitmap describes each animation bitmap.
	Bitmap = bitmap.MustDescription(80, 80, 2, 0, 0)
)

// Screensaver is a decoded NW-A1000 screensaver. Each entry in Frames is an
// index into Bitmaps.
type Screensaver struct {
	Frames    []int
	Thumbnail image.Image
	Bitmaps   []image.Image
}
