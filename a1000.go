package nwsaver

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/bodgit/nwsaver/bitmap"
	"github.com/bodgit/nwsaver/nwa1000"
	"gopkg.in/yaml.v2"
)

var a1000Schema = schema{
	"frames":    fieldInts,
	"bitmaps":   fieldStrings,
	"thumbnail": fieldString,
}

func init() {
	registerDevice(&device{
		name:  "a1000",
		magic: nwa1000.Magic,
		kinds: map[string]bitmap.Description{
			"bitmap":    nwa1000.Bitmap,
			"thumbnail": nwa1000.Thumbnail,
		},
		create:      createA1000,
		disassemble: disassembleA1000,
	})
}

func createA1000(s *NWSaver, b []byte, dir string) ([]byte, error) {
	var c nwa1000.Config
	if err := parseConfig(b, a1000Schema, &c); err != nil {
		return nil, err
	}

	ss := &nwa1000.Screensaver{
		Frames:  c.Frames,
		Bitmaps: make([]image.Image, len(c.Bitmaps)),
	}

	var err error
	if ss.Thumbnail, err = loadImage(resolve(dir, c.Thumbnail)); err != nil {
		return nil, err
	}
	for i, file := range c.Bitmaps {
		s.logger.Printf("Loading bitmap %d from \"%s\"\n", i, file)
		if ss.Bitmaps[i], err = loadImage(resolve(dir, file)); err != nil {
			return nil, err
		}
	}

	return ss.MarshalBinary()
}

func disassembleA1000(s *NWSaver, b []byte, dir string) error {
	ss, err := nwa1000.Decode(bytes.NewReader(b))
	if err != nil {
		return err
	}
	s.logger.Printf("NW-A1000 screensaver with %d frames and %d bitmaps\n", len(ss.Frames), len(ss.Bitmaps))

	if err := os.MkdirAll(filepath.Join(dir, bitmapDir), 0777); err != nil {
		return err
	}

	thumbnail := "thumbnail" + s.format.ext
	if err := saveImage(filepath.Join(dir, thumbnail), ss.Thumbnail); err != nil {
		return err
	}

	bitmaps, err := s.saveBitmaps(dir, ss.Bitmaps)
	if err != nil {
		return err
	}

	return writeConfig(dir, &nwa1000.Config{
		Frames:    ss.Frames,
		Bitmaps:   bitmaps,
		Thumbnail: thumbnail,
	})
}

const bitmapDir = "bitmaps"

// saveBitmaps writes each bitmap below dir and returns their relative
// paths.
func (s *NWSaver) saveBitmaps(dir string, bitmaps []image.Image) ([]string, error) {
	files := make([]string, len(bitmaps))
	for i, m := range bitmaps {
		files[i] = fmt.Sprintf("%s/%02d%s", bitmapDir, i, s.format.ext)
		if err := saveImage(filepath.Join(dir, filepath.FromSlash(files[i])), m); err != nil {
			return nil, err
		}
	}
	return files, nil
}

func writeConfig(dir string, c interface{}) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, configFilename), b, 0666)
}
