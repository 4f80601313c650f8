package nwsaver

import (
	"bufio"
	"image"
	_ "image/gif" // register decoders for source images
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xfmoulet/qoi"
)

const defaultImageFormat = "png"

type imageFormat struct {
	ext    string
	encode func(io.Writer, image.Image) error
}

var imageFormats = map[string]*imageFormat{
	"png": {".png", png.Encode},
	"qoi": {".qoi", qoi.Encode},
}

// formatForPath picks the encoder from the file extension, falling back to
// PNG.
func formatForPath(file string) *imageFormat {
	ext := strings.ToLower(filepath.Ext(file))
	for _, f := range imageFormats {
		if f.ext == ext {
			return f
		}
	}
	return imageFormats[defaultImageFormat]
}

// loadImage decodes any PNG, GIF, JPEG or QOI image.
func loadImage(file string) (image.Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, err
	}
	return m, nil
}

func saveImage(file string, m image.Image) (err error) {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	if err = formatForPath(file).encode(w, m); err != nil {
		return err
	}
	return w.Flush()
}

// resolve makes a path from a configuration relative to its directory.
func resolve(dir, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, filepath.FromSlash(file))
}
