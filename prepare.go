package nwsaver

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sort"

	"github.com/bodgit/nwsaver/bitmap"
	"github.com/disintegration/gift"
	"github.com/ericpauley/go-quantize/quantize"
)

func colorLuma(c color.Color) float64 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return bitmap.Luma(n.R, n.G, n.B)
}

func uniqueColors(p color.Palette) color.Palette {
	seen := make(map[color.Color]struct{}, len(p))
	u := p[:0:0]
	for _, c := range p {
		if _, ok := seen[c]; !ok {
			seen[c] = struct{}{}
			u = append(u, c)
		}
	}
	return u
}

// toneMap reduces m to the gray levels of d. The image is median cut to at
// most as many colors as there are levels and the resulting colors are then
// assigned levels in order of brightness, spreading whatever range the image
// uses across every level.
func toneMap(m image.Image, d bitmap.Description) *image.Paletted {
	levels := bitmap.Palette(d.BitsPerPixel)
	b := m.Bounds()

	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, uniqueColors(q.Quantize(make(color.Palette, 0, len(levels)), m)))
	draw.Draw(pm, b, m, b.Min, draw.Src)

	order := make([]int, len(pm.Palette))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return colorLuma(pm.Palette[order[i]]) < colorLuma(pm.Palette[order[j]])
	})

	mapped := make(color.Palette, len(pm.Palette))
	for rank, i := range order {
		if len(order) == 1 {
			mapped[i] = levels.Convert(pm.Palette[i])
			continue
		}
		mapped[i] = levels[rank*(len(levels)-1)/(len(order)-1)]
	}
	pm.Palette = mapped

	return pm
}

// dither reduces m to the gray levels of d using Floyd-Steinberg error
// diffusion.
func dither(m image.Image, d bitmap.Description) *image.Paletted {
	b := m.Bounds()
	pm := image.NewPaletted(b, bitmap.Palette(d.BitsPerPixel))
	draw.FloydSteinberg.Draw(pm, b, m, b.Min)
	return pm
}

// Prepare fits the artwork in src to a kind of bitmap used by device and
// writes it to dst, which can then be referenced from a configuration. The
// image is scaled and cropped to fill the bitmap, converted to grayscale and
// reduced to the levels the device can show, optionally with dithering. The
// output format is chosen by the extension of dst.
func (s *NWSaver) Prepare(device, kind, src, dst string, dithered bool) error {
	d, err := lookupDevice(device)
	if err != nil {
		return err
	}

	desc, ok := d.kinds[kind]
	if !ok {
		return fmt.Errorf("nwsaver: device %s has no %q bitmap", d.name, kind)
	}

	m, err := loadImage(src)
	if err != nil {
		return err
	}

	s.logger.Printf("Fitting %dx%d \"%s\" to %s %s %s\n", m.Bounds().Dx(), m.Bounds().Dy(), src, d.name, kind, desc)

	g := gift.New(
		gift.ResizeToFill(desc.Width, desc.Height, gift.LanczosResampling, gift.CenterAnchor),
		gift.Grayscale(),
	)
	gray := image.NewRGBA(g.Bounds(m.Bounds()))
	g.Draw(gray, m)

	var pm *image.Paletted
	if dithered {
		pm = dither(gray, desc)
	} else {
		pm = toneMap(gray, desc)
	}

	return saveImage(dst, pm)
}
