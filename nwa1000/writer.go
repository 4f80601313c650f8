package nwa1000

import (
	"bytes"
	"fmt"
	"io"

	"github.com/bodgit/nwsaver/bitmap"
	"github.com/bodgit/nwsaver/container"
)

// MarshalBinary encodes the screensaver into binary form and returns the
// result.
func (s *Screensaver) MarshalBinary() ([]byte, error) {
	if err := container.CheckCount("frame count", len(s.Frames)); err != nil {
		return nil, err
	}
	if err := container.CheckCount("bitmap count", len(s.Bitmaps)); err != nil {
		return nil, err
	}
	if s.Thumbnail == nil {
		return nil, fmt.Errorf("%w: no thumbnail", container.ErrValidation)
	}

	b := new(bytes.Buffer)

	if err := container.WriteUint16(b, Magic, uint16(len(s.Frames)), uint16(len(s.Bitmaps)), hasThumbnail, dataOffset); err != nil {
		return nil, err
	}
	b.Write(make([]byte, reserved))

	thumbnail, err := bitmap.Encode(s.Thumbnail, Thumbnail)
	if err != nil {
		return nil, fmt.Errorf("nwa1000: thumbnail: %w", err)
	}
	b.Write(thumbnail)
	b.Write(make([]byte, reserved))

	if err := container.WriteFrames(b, s.Frames, len(s.Bitmaps)); err != nil {
		return nil, err
	}
	container.Pad(b, alignment)

	for i, m := range s.Bitmaps {
		if m == nil {
			return nil, fmt.Errorf("%w: bitmap %d missing", container.ErrValidation, i)
		}
		p, err := bitmap.Encode(m, Bitmap)
		if err != nil {
			return nil, fmt.Errorf("nwa1000: bitmap %d: %w", i, err)
		}
		b.Write(p)
	}
	container.Pad(b, alignment)

	return b.Bytes(), nil
}

// Encode writes the screensaver s to w in NW-A1000 format. Nothing is
// written if s can't be encoded.
func Encode(w io.Writer, s *Screensaver) error {
	b, err := s.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
