package nwe500

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/bodgit/nwsaver/bitmap"
	"github.com/bodgit/nwsaver/container"
)

type decoder struct {
	r io.Reader

	frameCount  int
	bitmapCount int

	s Screensaver
}

func (d *decoder) readString(what string) (string, error) {
	n, err := container.ReadUint16(d.r)
	if err != nil {
		return "", err
	}
	b := make([]byte, n)
	if err := container.ReadFull(d.r, b); err != nil {
		return "", err
	}
	for _, c := range b {
		if c > 0x7f {
			return "", fmt.Errorf("%w: %s is not ASCII", container.ErrFormat, what)
		}
	}
	return string(b), nil
}

func (d *decoder) readHeader() error {
	magic, err := container.ReadUint16(d.r)
	if err != nil {
		return err
	}
	if magic != Magic {
		return fmt.Errorf("%w: %#04x is not a NW-E500 screensaver", container.ErrBadMagic, magic)
	}

	var fields [3]uint16
	for i := range fields {
		if fields[i], err = container.ReadUint16(d.r); err != nil {
			return err
		}
	}
	// The header size is implied by the string lengths so fields[2] isn't
	// needed
	d.frameCount, d.bitmapCount = int(fields[0]), int(fields[1])

	if d.s.Name, err = d.readString("name"); err != nil {
		return err
	}
	if d.s.Author, err = d.readString("author"); err != nil {
		return err
	}
	if d.s.U1, err = container.ReadUint16(d.r); err != nil {
		return err
	}
	if d.s.U2, err = container.ReadUint16(d.r); err != nil {
		return err
	}

	return nil
}

func (d *decoder) decode(r io.Reader) error {
	d.r = r

	if err := d.readHeader(); err != nil {
		return err
	}

	var err error
	if d.s.Frames, err = container.ReadFrames(d.r, d.frameCount); err != nil {
		return err
	}

	d.s.Bitmaps = make([]image.Image, d.bitmapCount)
	p := make([]byte, bitmapBytes)
	for i := range d.s.Bitmaps {
		if err := container.ReadFull(d.r, p); err != nil {
			return err
		}
		unmangled, err := Unmangle(p)
		if err != nil {
			return err
		}
		if d.s.Bitmaps[i], err = bitmap.Decode(unmangled, Bitmap); err != nil {
			return err
		}
	}

	return nil
}

// Decode reads a NW-E500 screensaver from r.
func Decode(r io.Reader) (*Screensaver, error) {
	var d decoder
	if err := d.decode(r); err != nil {
		return nil, err
	}
	return &d.s, nil
}

// UnmarshalBinary decodes the screensaver from binary form.
func (s *Screensaver) UnmarshalBinary(b []byte) error {
	d, err := Decode(bytes.NewReader(b))
	if err != nil {
		return err
	}
	*s = *d
	return nil
}
