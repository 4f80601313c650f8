package bitmap

import "image/color"

// Rec. 709 luma coefficients
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// Luma returns the perceptual brightness of an RGB triple. Gray inputs are
// returned exactly so they never suffer from floating point rounding.
func Luma(r, g, b uint8) float64 {
	if r == g && g == b {
		return float64(r)
	}
	return lumaR*float64(r) + lumaG*float64(g) + lumaB*float64(b)
}

// Thresholds returns the lower bound of each luma bucket for the given
// number of bits per pixel. The table is 0, step, 2*step, ... up to but not
// including 255 where step is 255 / 2^bpp, rounded down. Because 255 is odd
// there is always one more threshold than there are encodable levels; the
// last one is never produced by Quantize.
//
// At 8 bits per pixel the step would be zero so it's clamped to 1.
func Thresholds(bpp int) []uint8 {
	step := 255 / (1 << uint(bpp))
	if step == 0 {
		step = 1
	}
	t := make([]uint8, 0, 255/step+1)
	for v := 0; v < 255; v += step {
		t = append(t, uint8(v))
	}
	return t
}

func levels(bpp int) int {
	return 1 << uint(bpp)
}

func quantize(luma float64, thresholds []uint8, bpp int) int {
	for i := len(thresholds) - 1; i >= 0; i-- {
		if luma >= float64(thresholds[i]) {
			if i >= levels(bpp) {
				return levels(bpp) - 1
			}
			return i
		}
	}
	return 0
}

// Quantize returns the bucket index for c. The color is taken as
// non-premultiplied 8-bit RGB and alpha is ignored.
func Quantize(c color.Color, bpp int) int {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return quantize(Luma(n.R, n.G, n.B), Thresholds(bpp), bpp)
}

// Dequantize returns the gray level for bucket index i. Indices outside
// the encodable range are clamped to the nearest level.
func Dequantize(i, bpp int) uint8 {
	switch {
	case i < 0:
		i = 0
	case i >= levels(bpp):
		i = levels(bpp) - 1
	}
	return Thresholds(bpp)[i]
}

// Palette returns the gray levels that can be encoded at the given depth,
// in bucket order.
func Palette(bpp int) color.Palette {
	t := Thresholds(bpp)
	p := make(color.Palette, 0, levels(bpp))
	for i := 0; i < levels(bpp) && i < len(t); i++ {
		p = append(p, color.Gray{Y: t[i]})
	}
	return p
}
