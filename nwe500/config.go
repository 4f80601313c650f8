package nwe500

import (
	"fmt"
	"math"

	"github.com/bodgit/nwsaver/container"
)

// Config is the editable description of a screensaver. Paths are relative
// to the directory containing the configuration. The scalar fields are
// pointers so a missing value can be told apart from a zero one.
type Config struct {
	Frames  []int    `yaml:"frames"`
	Bitmaps []string `yaml:"bitmaps"`
	Name    *string  `yaml:"name"`
	Author  *string  `yaml:"author"`
	U1      *int     `yaml:"u1"`
	U2      *int     `yaml:"u2"`
}

// NewConfig returns a Config for the header values of s.
func NewConfig(s *Screensaver, bitmaps []string) *Config {
	name, author := s.Name, s.Author
	u1, u2 := int(s.U1), int(s.U2)
	return &Config{
		Frames:  s.Frames,
		Bitmaps: bitmaps,
		Name:    &name,
		Author:  &author,
		U1:      &u1,
		U2:      &u2,
	}
}

// Validate checks every field is present and in range. Frame indices are
// checked when the screensaver is encoded.
func (c *Config) Validate() error {
	switch {
	case len(c.Frames) == 0:
		return fmt.Errorf("%w: no frames", container.ErrValidation)
	case len(c.Bitmaps) == 0:
		return fmt.Errorf("%w: no bitmaps", container.ErrValidation)
	case c.Name == nil:
		return fmt.Errorf("%w: no name", container.ErrValidation)
	case c.Author == nil:
		return fmt.Errorf("%w: no author", container.ErrValidation)
	case c.U1 == nil:
		return fmt.Errorf("%w: no u1", container.ErrValidation)
	case c.U2 == nil:
		return fmt.Errorf("%w: no u2", container.ErrValidation)
	}
	for i, b := range c.Bitmaps {
		if b == "" {
			return fmt.Errorf("%w: bitmap %d has no path", container.ErrValidation, i)
		}
	}
	for _, u := range []struct {
		what string
		v    int
	}{{"u1", *c.U1}, {"u2", *c.U2}} {
		if u.v < 0 || u.v > math.MaxUint16 {
			return fmt.Errorf("%w: %s %d does not fit in 16 bits", container.ErrValidation, u.what, u.v)
		}
	}
	if err := checkASCII("name", *c.Name); err != nil {
		return err
	}
	return checkASCII("author", *c.Author)
}
