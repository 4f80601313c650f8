package nwsaver

import (
	"bytes"
	"image"
	"os"
	"path/filepath"

	"github.com/bodgit/nwsaver/bitmap"
	"github.com/bodgit/nwsaver/nwe500"
)

var e500Schema = schema{
	"frames":  fieldInts,
	"bitmaps": fieldStrings,
	"name":    fieldString,
	"author":  fieldString,
	"u1":      fieldInt,
	"u2":      fieldInt,
}

func init() {
	registerDevice(&device{
		name:  "e500",
		magic: nwe500.Magic,
		kinds: map[string]bitmap.Description{
			"bitmap": nwe500.Bitmap,
		},
		create:      createE500,
		disassemble: disassembleE500,
	})
}

func createE500(s *NWSaver, b []byte, dir string) ([]byte, error) {
	var c nwe500.Config
	if err := parseConfig(b, e500Schema, &c); err != nil {
		return nil, err
	}

	ss := &nwe500.Screensaver{
		Name:    *c.Name,
		Author:  *c.Author,
		U1:      uint16(*c.U1),
		U2:      uint16(*c.U2),
		Frames:  c.Frames,
		Bitmaps: make([]image.Image, len(c.Bitmaps)),
	}

	var err error
	for i, file := range c.Bitmaps {
		s.logger.Printf("Loading bitmap %d from \"%s\"\n", i, file)
		if ss.Bitmaps[i], err = loadImage(resolve(dir, file)); err != nil {
			return nil, err
		}
	}

	return ss.MarshalBinary()
}

func disassembleE500(s *NWSaver, b []byte, dir string) error {
	ss, err := nwe500.Decode(bytes.NewReader(b))
	if err != nil {
		return err
	}
	s.logger.Printf("NW-E500 screensaver \"%s\" by \"%s\" with %d frames and %d bitmaps\n", ss.Name, ss.Author, len(ss.Frames), len(ss.Bitmaps))

	if err := os.MkdirAll(filepath.Join(dir, bitmapDir), 0777); err != nil {
		return err
	}

	bitmaps, err := s.saveBitmaps(dir, ss.Bitmaps)
	if err != nil {
		return err
	}

	return writeConfig(dir, nwe500.NewConfig(ss, bitmaps))
}
