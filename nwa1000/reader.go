package nwa1000

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

func (d *decoder) readHeader() error {
	magic, err := container.ReadUint16(d.r)
	if err != nil {
		return err
	}
	if magic != Magic {
		return fmt.Errorf("%w: %#04x is not a NW-A1000 screensaver", container.ErrBadMagic, magic)
	}

	var fields [4]uint16
	for i := range fields {
		if fields[i], err = container.ReadUint16(d.r); err != nil {
			return err
		}
	}
	d.frameCount, d.bitmapCount = int(fields[0]), int(fields[1])

	if fields[2] != hasThumbnail {
		return fmt.Errorf("%w: no thumbnail", container.ErrFormat)
	}
	if fields[3] != dataOffset {
		return fmt.Errorf("%w: invalid offset %#04x to data section", container.ErrFormat, fields[3])
	}

	return container.Skip(d.r, reserved)
}

func (d *decoder) readBitmap(desc bitmap.Description) (image.Image, error) {
	p := make([]byte, desc.Size())
	if err := container.ReadFull(d.r, p); err != nil {
		return nil, err
	}
	return bitmap.Decode(p, desc)
}

func (d *decoder) decode(r io.Reader) error {
	d.r = r

	if err := d.readHeader(); err != nil {
		return err
	}

	var err error
	if d.s.Thumbnail, err = d.readBitmap(Thumbnail); err != nil {
		return err
	}

	if err := container.Skip(d.r, reserved); err != nil {
		return err
	}

	if d.s.Frames, err = container.ReadFrames(d.r, d.frameCount); err != nil {
		return err
	}

	// The header and thumbnail are already aligned
	if err := container.Skip(d.r, container.Padding(d.frameCount<<1, alignment)); err != nil {
		return err
	}

	d.s.Bitmaps = make([]image.Image, d.bitmapCount)
	for i := range d.s.Bitmaps {
		if d.s.Bitmaps[i], err = d.readBitmap(Bitmap); err != nil {
			return err
		}
	}

	return nil
}

// Decode reads a NW-A1000 screensaver from r. Any trailing padding is left
// unread.
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
