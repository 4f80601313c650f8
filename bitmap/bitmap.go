/*
Package bitmap implements the packed grayscale bitmaps used inside the
screensaver files.

Each pixel is reduced to a luma value which is then bucketed into one of
2^bpp levels using a fixed threshold table. The bucket indices are packed MSB
first, row by row, with each row padded with zero bits up to the aligned
width and the whole bitmap padded with zero rows up to the aligned height.
*/
package bitmap

import (
	"errors"
	"fmt"
)

const maxBitsPerPixel = 8

// ErrDimensionMismatch is returned when an image is not exactly the size of
// the bitmap it's being encoded as.
var ErrDimensionMismatch = errors.New("bitmap: image is wrong size")

// Description describes the geometry of a kind of bitmap. Use
// NewDescription or MustDescription to create a validated one; Encode and
// Decode validate it again before use.
type Description struct {
	Width        int
	Height       int
	BitsPerPixel int
	WidthAlign   int
	HeightAlign  int
}

// NewDescription returns a validated Description. An alignment of zero means
// no padding in that dimension.
func NewDescription(width, height, bpp, widthAlign, heightAlign int) (Description, error) {
	d := Description{
		Width:        width,
		Height:       height,
		BitsPerPixel: bpp,
		WidthAlign:   widthAlign,
		HeightAlign:  heightAlign,
	}.normalize()
	if err := d.validate(); err != nil {
		return Description{}, err
	}
	return d, nil
}

// MustDescription is like NewDescription but panics on an invalid
// description. It is intended for package-level variables.
func MustDescription(width, height, bpp, widthAlign, heightAlign int) Description {
	d, err := NewDescription(width, height, bpp, widthAlign, heightAlign)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Description) normalize() Description {
	if d.WidthAlign == 0 {
		d.WidthAlign = d.Width
	}
	if d.HeightAlign == 0 {
		d.HeightAlign = d.Height
	}
	return d
}

func (d Description) validate() error {
	switch {
	case d.Width < 0 || d.Height < 0:
		return fmt.Errorf("bitmap: invalid dimensions %dx%d", d.Width, d.Height)
	case d.BitsPerPixel < 1 || d.BitsPerPixel > maxBitsPerPixel:
		return fmt.Errorf("bitmap: invalid bits per pixel %d", d.BitsPerPixel)
	case d.WidthAlign < d.Width || d.HeightAlign < d.Height:
		return fmt.Errorf("bitmap: alignment %dx%d smaller than %dx%d", d.WidthAlign, d.HeightAlign, d.Width, d.Height)
	}
	return nil
}

// Size returns the number of bytes of packed bitmap data.
func (d Description) Size() int {
	d = d.normalize()
	return (d.WidthAlign*d.HeightAlign*d.BitsPerPixel + 7) >> 3
}

func (d Description) String() string {
	return fmt.Sprintf("%dx%d@%dbpp", d.Width, d.Height, d.BitsPerPixel)
}
