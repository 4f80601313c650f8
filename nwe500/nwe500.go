/*
Package nwe500 implements the screensaver file format used by the Sony
NW-E500 series.

All fields are big-endian 16-bit values:

	magic (0xEC01) | frame count | bitmap count | header size |
	name length | name | author length | author | u1 | u2 |
	frame table | 720 byte bitmaps

Each bitmap is 48 by 120 pixels at 1 bit per pixel, stored mangled into the
plane order the display hardware expects. There is no padding.
*/
package nwe500

import (
	"image"

	"github.com/bodgit/nwsaver/bitmap"
)

// Magic is the first field of every NW-E500 screensaver.
const Magic = 0xec01

// Fixed fields counted by the header size; magic, both counts, the size
// itself, both string lengths, u1 and u2
const headerSize = 8 + 2 + 2 + 2 + 2

// Bitmap describes each animation bitmap before it's mangled.
var Bitmap = bitmap.MustDescription(48, rows, 1, 0, 0)

// Screensaver is a decoded NW-E500 screensaver. Each entry in Frames is an
// index into Bitmaps. The purpose of U1 and U2 is unknown; they're preserved
// as-is.
type Screensaver struct {
	Name    string
	Author  string
	U1      uint16
	U2      uint16
	Frames  []int
	Bitmaps []image.Image
}
