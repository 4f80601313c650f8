package bitmap

import (
	"image"
	"image/color"

	"github.com/bodgit/nwsaver/bitstream"
)

// Encode packs m into the bitmap format described by d. The image bounds
// must be exactly d.Width by d.Height although they needn't start at (0, 0).
func Encode(m image.Image, d Description) ([]byte, error) {
	d = d.normalize()
	if err := d.validate(); err != nil {
		return nil, err
	}

	b := m.Bounds()
	if b.Dx() != d.Width || b.Dy() != d.Height {
		return nil, ErrDimensionMismatch
	}

	thresholds := Thresholds(d.BitsPerPixel)
	bpp := uint(d.BitsPerPixel)

	s := bitstream.New()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			n := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			s.Push(uint64(quantize(Luma(n.R, n.G, n.B), thresholds, d.BitsPerPixel)), bpp)
		}
		s.Push(0, uint(d.WidthAlign-d.Width)*bpp)
	}
	s.Push(0, uint(d.HeightAlign-d.Height)*bpp*uint(d.WidthAlign))
	s.Flush()

	return s.Bytes(), nil
}
