package nwe500

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

func testScreensaver() *Screensaver {
	r := rand.New(rand.NewSource(1))
	return &Screensaver{
		Name:   "Walkman",
		Author: "Sony",
		U1:     0x1234,
		U2:     0x0001,
		Frames: []int{0, 1, 1, 0},
		Bitmaps: []image.Image{
			randomImage(r, 48, 120),
			randomImage(r, 48, 120),
		},
	}
}

func TestLayout(t *testing.T) {
	s := testScreensaver()

	b, err := s.MarshalBinary()
	require.NoError(t, err)

	header := []byte{
		0xec, 0x01, // magic
		0x00, 0x04, // frames
		0x00, 0x02, // bitmaps
		0x00, 0x1b, // header size, 16 + 7 + 4
		0x00, 0x07, 'W', 'a', 'l', 'k', 'm', 'a', 'n',
		0x00, 0x04, 'S', 'o', 'n', 'y',
		0x12, 0x34,
		0x00, 0x01,
		0x00, 0x10, 0x01, 0x10, 0x01, 0x10, 0x00, 0x10,
	}
	require.Len(t, b, len(header)+2*720)
	assert.Equal(t, header, b[:len(header)])

	packed, err := bitmap.Encode(s.Bitmaps[0], Bitmap)
	require.NoError(t, err)
	mangled, err := Mangle(packed)
	require.NoError(t, err)
	assert.Equal(t, mangled, b[len(header):len(header)+720])
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		author string
	}{
		{"strings", "Walkman", "Sony"},
		{"empty name", "", "Sony"},
		{"empty author", "Walkman", ""},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testScreensaver()
			s.Name, s.Author = tt.title, tt.author

			buf := new(bytes.Buffer)
			require.NoError(t, Encode(buf, s))
			assert.Equal(t, []byte{0xec, 0x01}, buf.Bytes()[:2])

			got, err := Decode(buf)
			require.NoError(t, err)

			assert.Equal(t, tt.title, got.Name)
			assert.Equal(t, tt.author, got.Author)
			assert.Equal(t, uint16(0x1234), got.U1)
			assert.Equal(t, uint16(0x0001), got.U2)
			assert.Equal(t, []int{0, 1, 1, 0}, got.Frames)
			require.Len(t, got.Bitmaps, 2)

			for i, m := range s.Bitmaps {
				for y := 0; y < 120; y++ {
					for x := 0; x < 48; x++ {
						want := bitmap.Dequantize(bitmap.Quantize(m.At(x, y), 1), 1)
						require.Equal(t, color.Gray{Y: want}, got.Bitmaps[i].At(x, y), "bitmap %d pixel %d,%d", i, x, y)
					}
				}
			}
		})
	}
}

func TestUnmarshalBinary(t *testing.T) {
	b, err := testScreensaver().MarshalBinary()
	require.NoError(t, err)

	var s Screensaver
	require.NoError(t, s.UnmarshalBinary(b))
	assert.Equal(t, "Walkman", s.Name)
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
			modify: func(s *Screensaver) { s.Frames = []int{2} },
			err:    container.ErrFrameIndexOutOfRange,
		},
		{
			name:   "bitmap wrong size",
			modify: func(s *Screensaver) { s.Bitmaps[0] = image.NewGray(image.Rect(0, 0, 120, 48)) },
			err:    bitmap.ErrDimensionMismatch,
		},
		{
			name:   "missing bitmap",
			modify: func(s *Screensaver) { s.Bitmaps[0] = nil },
			err:    container.ErrValidation,
		},
		{
			name:   "non-ascii name",
			modify: func(s *Screensaver) { s.Name = "Wälkman" },
			err:    container.ErrValidation,
		},
		{
			name:   "author too long",
			modify: func(s *Screensaver) { s.Author = string(make([]byte, 0x10000)) },
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
		{"bad magic", corrupt(0, 0xd3, 0x01), container.ErrBadMagic},
		{"non-ascii name", corrupt(10, 0xe4), container.ErrFormat},
		{"bad frame flag", corrupt(30, 0x00), container.ErrFormat},
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
	valid := NewConfig(testScreensaver(), []string{"bitmaps/00.png", "bitmaps/01.png"})
	assert.NoError(t, valid.Validate())
	assert.Equal(t, 0x1234, *valid.U1)

	empty := ""
	big := 0x10000
	bad := "Wälkman"

	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"empty strings", func(c *Config) { c.Name, c.Author = &empty, &empty }, true},
		{"no frames", func(c *Config) { c.Frames = nil }, false},
		{"no bitmaps", func(c *Config) { c.Bitmaps = nil }, false},
		{"no name", func(c *Config) { c.Name = nil }, false},
		{"no author", func(c *Config) { c.Author = nil }, false},
		{"no u1", func(c *Config) { c.U1 = nil }, false},
		{"no u2", func(c *Config) { c.U2 = nil }, false},
		{"u2 too big", func(c *Config) { c.U2 = &big }, false},
		{"non-ascii name", func(c *Config) { c.Name = &bad }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := *valid
			tt.modify(&c)
			err := c.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, container.ErrValidation), "got %v", err)
			}
		})
	}
}
