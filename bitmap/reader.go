package bitmap

import (
	"image"

	"github.com/bodgit/nwsaver/bitstream"
)

// Decode unpacks the bitmap data in p as described by d and returns it as a
// grayscale image. Padding rows after the last visible row are not read.
func Decode(p []byte, d Description) (*image.Gray, error) {
	d = d.normalize()
	if err := d.validate(); err != nil {
		return nil, err
	}

	thresholds := Thresholds(d.BitsPerPixel)
	bpp := uint(d.BitsPerPixel)

	m := image.NewGray(image.Rect(0, 0, d.Width, d.Height))
	s := bitstream.NewReader(p)
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			i, err := s.Pop(bpp)
			if err != nil {
				return nil, err
			}
			// Indices past the table can't be produced by Encode
			if int(i) >= len(thresholds) {
				i = uint64(len(thresholds) - 1)
			}
			m.Pix[y*m.Stride+x] = thresholds[i]
		}
		if _, err := s.Pop(uint(d.WidthAlign-d.Width) * bpp); err != nil {
			return nil, err
		}
	}

	return m, nil
}
