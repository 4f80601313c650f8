package nwa1000

import (
	"fmt"

	"github.com/bodgit/nwsaver/container"
)

// Config is the editable description of a screensaver. Paths are relative
// to the directory containing the configuration.
type Config struct {
	Frames    []int    `yaml:"frames"`
	Bitmaps   []string `yaml:"bitmaps"`
	Thumbnail string   `yaml:"thumbnail"`
}

// Validate checks every field is present. Frame indices are checked when
// the screensaver is encoded.
func (c *Config) Validate() error {
	switch {
	case len(c.Frames) == 0:
		return fmt.Errorf("%w: no frames", container.ErrValidation)
	case len(c.Bitmaps) == 0:
		return fmt.Errorf("%w: no bitmaps", container.ErrValidation)
	case c.Thumbnail == "":
		return fmt.Errorf("%w: no thumbnail", container.ErrValidation)
	}
	for i, b := range c.Bitmaps {
		if b == "" {
			return fmt.Errorf("%w: bitmap %d has no path", container.ErrValidation, i)
		}
	}
	return nil
}
