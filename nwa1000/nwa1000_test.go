package nwa1000

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"io"
	"math/rand"
	"testing"

	"github.com/bodgit/nwsaver/bitmap"
	"github.com/bodgit/nwsaver/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomImage(r *rand.Rand, w, h int) *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetRGBA(x, y, color.RGBA{uint8(r.Intn(256)), uint8(r.Intn(256)), uint8(r.Intn(256)), 0xff})
		}
	}
	return m
}

func assertQuantizedEqual(t *testing.T, want, got image.Image, bpp int) {
	require.Equal(t, want.Bounds().Size(), got.Bounds().Size())
	wb, gb := want.Bounds(), got.Bounds()
	for y := 0; y < wb.Dy(); y++ {
		for x := 0; x < wb.Dx(); x++ {
			w := bitmap.Dequantize(bitmap.Quantize(want.At(wb.Min.X+x, wb.Min.Y+y), bpp), bpp)
			g := color.GrayModel.Convert(got.At(gb.Min.X+x, gb.Min.Y+y)).(color.Gray).Y
			if !assert.Equal(t, w, g, "pixel %d,%d", x, y) {
				return
			}
		}
	}
}

func testScreensaver() *Screensaver {
	r := rand.New(rand.NewSource(1))
	return &Screensaver{
		Frames:    []int{0, 1, 0},
		Thumbnail: randomImage(r, 18, 18),
		Bitmaps: []image.Image{
			randomImage(r, 80, 80),
			randomImage(r, 80, 80),
		},
	}
}

func TestLayout(t *testing.T) {
	s := testScreensaver()

	b, err := s.MarshalBinary()
	require.NoError(t, err)

	// 112 bytes of header and thumbnail, 6 bytes of frames padded to 16,
	// then two bitmaps
	require.Len(t, b, 112+16+2*1600)
	assert.Equal(t, []byte{0xd3, 0x01, 0x00, 0x03, 0x00, 0x02, 0x00, 0x01, 0x00, 0x10}, b[:10])
	assert.Equal(t, make([]byte, 6), b[10:16])
	assert.Equal(t, make([]byte, 6), b[106:112])
	assert.Equal(t, []byte{0x00, 0x10, 0x01, 0x10, 0x00, 0x10}, b[112:118])
	assert.Equal(t, make([]byte, 10), b[118:128])

	thumbnail, err := bitmap.Encode(s.Thumbnail, Thumbnail)
	require.NoError(t, err)
	assert.Equal(t, thumbnail, b[16:106])

	second, err := bitmap.Encode(s.Bitmaps[1], Bitmap)
	require.NoError(t, err)
	assert.Equal(t, second, b[128+1600:])
}

func TestLayoutAlignedFrames(t *testing.T) {
	s := testScreensaver()
	s.Frames = []int{0, 1, 0, 1, 0, 1, 0, 1}

	b, err := s.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, b, 112+16+2*1600)
}

func TestRoundTrip(t *testing.T) {
	s := testScreensaver()

	buf := new(bytes.Buffer)
	require.NoError(t, Encode(buf, s))

	got, err := Decode(buf)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 0}, got.Frames)
	require.Len(t, got.Bitmaps, 2)
	assertQuantizedEqual(t, s.Thumbnail, got.Thumbnail, Thumbnail.BitsPerPixel)
	for i := range s.Bitmaps {
		assertQuantizedEqual(t, s.Bitmaps[i], got.Bitmaps[i], Bitmap.BitsPerPixel)
	}
}

func TestUnmarshalBinary(t *testing.T) {
	b, err := testScreensaver().MarshalBinary()
	require.NoError(t, err)

	var s Screensaver
	require.NoError(t, s.UnmarshalBinary(b))
	assert.Equal(t, []int{0, 1, 0}, s.Frames)
	assert.Len(t, s.Bitmaps, 2)
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Screensaver)
		err    error
	}{
		{
			name:   "frame out of range",
			modify: func(s *Screensaver) { s.Frames = []int{0, 2} },
			err:    container.ErrFrameIndexOutOfRange,
		},
		{
			name:   "thumbnail wrong size",
			modify: func(s *Screensaver) { s.Thumbnail = image.NewGray(image.Rect(0, 0, 20, 18)) },
			err:    bitmap.ErrDimensionMismatch,
		},
		{
			name:   "bitmap wrong size",
			modify: func(s *Screensaver) { s.Bitmaps[1] = image.NewGray(image.Rect(0, 0, 80, 79)) },
			err:    bitmap.ErrDimensionMismatch,
		},
		{
			name:   "missing bitmap",
			modify: func(s *Screensaver) { s.Bitmaps[1] = nil },
			err:    container.ErrValidation,
		},
		{
			name:   "missing thumbnail",
			modify: func(s *Screensaver) { s.Thumbnail = nil },
			err:    container.ErrValidation,
		},
		{
			name:   "too many frames",
			modify: func(s *Screensaver) { s.Frames = make([]int, 0x10000) },
			err:    container.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testScreensaver()
			tt.modify(s)

			buf := new(bytes.Buffer)
			err := Encode(buf, s)
			assert.True(t, errors.Is(err, tt.err), "got %v", err)
			assert.Zero(t, buf.Len())
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	valid, err := testScreensaver().MarshalBinary()
	require.NoError(t, err)

	corrupt := func(offset int, v ...byte) []byte {
		b := append([]byte(nil), valid...)
		copy(b[offset:], v)
		return b
	}

	tests := []struct {
		name string
		b    []byte
		err  error
	}{
		{"bad magic", corrupt(0, 0xec, 0x01), container.ErrBadMagic},
		{"no thumbnail", corrupt(6, 0x00, 0x00), container.ErrFormat},
		{"bad offset", corrupt(8, 0x00, 0x20), container.ErrFormat},
		{"bad frame flag", corrupt(115, 0x00), container.ErrFormat},
		{"truncated", valid[:len(valid)-1], io.ErrUnexpectedEOF},
		{"empty", nil, io.ErrUnexpectedEOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(bytes.NewReader(tt.b))
			assert.True(t, errors.Is(err, tt.err), "got %v", err)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		Frames:    []int{0},
		Bitmaps:   []string{"bitmaps/00.png"},
		Thumbnail: "thumbnail.png",
	}
	assert.NoError(t, valid.Validate())

	for _, c := range []Config{
		{Bitmaps: valid.Bitmaps, Thumbnail: valid.Thumbnail},
		{Frames: valid.Frames, Thumbnail: valid.Thumbnail},
		{Frames: valid.Frames, Bitmaps: valid.Bitmaps},
		{Frames: valid.Frames, Bitmaps: []string{""}, Thumbnail: valid.Thumbnail},
	} {
		assert.True(t, errors.Is(c.Validate(), container.ErrValidation))
	}
}
