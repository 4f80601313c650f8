package nwe500

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/bodgit/nwsaver/bitmap"
	"github.com/bodgit/nwsaver/container"
)

func checkASCII(what, s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return fmt.Errorf("%w: %s %q is not ASCII", container.ErrValidation, what, s)
		}
	}
	return nil
}

func writeString(b *bytes.Buffer, s string) error {
	if err := container.WriteUint16(b, uint16(len(s))); err != nil {
		return err
	}
	_, err := b.WriteString(s)
	return err
}

// MarshalBinary encodes the screensaver into binary form and returns the
// result.
func (s *Screensaver) MarshalBinary() ([]byte, error) {
	if err := container.CheckCount("frame count", len(s.Frames)); err != nil {
		return nil, err
	}
	if err := container.CheckCount("bitmap count", len(s.Bitmaps)); err != nil {
		return nil, err
	}
	for _, f := range []struct{ what, s string }{{"name", s.Name}, {"author", s.Author}} {
		if err := checkASCII(f.what, f.s); err != nil {
			return nil, err
		}
	}
	size := headerSize + len(s.Name) + len(s.Author)
	if size > math.MaxUint16 {
		return nil, fmt.Errorf("%w: name and author too long", container.ErrValidation)
	}

	b := new(bytes.Buffer)

	if err := container.WriteUint16(b, Magic, uint16(len(s.Frames)), uint16(len(s.Bitmaps)), uint16(size)); err != nil {
		return nil, err
	}
	if err := writeString(b, s.Name); err != nil {
		return nil, err
	}
	if err := writeString(b, s.Author); err != nil {
		return nil, err
	}
	if err := container.WriteUint16(b, s.U1, s.U2); err != nil {
		return nil, err
	}

	if err := container.WriteFrames(b, s.Frames, len(s.Bitmaps)); err != nil {
		return nil, err
	}

	for i, m := range s.Bitmaps {
		if m == nil {
			return nil, fmt.Errorf("%w: bitmap %d missing", container.ErrValidation, i)
		}
		p, err := bitmap.Encode(m, Bitmap)
		if err != nil {
			return nil, fmt.Errorf("nwe500: bitmap %d: %w", i, err)
		}
		if p, err = Mangle(p); err != nil {
			return nil, err
		}
		b.Write(p)
	}

	return b.Bytes(), nil
}

// Encode writes the screensaver s to w in NW-E500 format. Nothing is
// written if s can't be encoded.
func Encode(w io.Writer, s *Screensaver) error {
	b, err := s.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
