/*
Package nwsaver is a library for creating and disassembling the screensaver
files used by the Sony NW-A1000 and NW-E500 series of portable media players.

A screensaver is described by a YAML configuration listing the animation
frames, the bitmap images they refer to and any device-specific header
values. Create turns such a configuration into a screensaver file and
Disassemble does the reverse.
*/
package nwsaver

import (
	"fmt"
	"log"
)

// NWSaver converts between screensaver files and directories of images.
type NWSaver struct {
	logger *log.Logger
	format *imageFormat
}

// New returns an NWSaver that logs to logger and writes images in the named
// format, either "png" or "qoi". An empty format means "png".
func New(logger *log.Logger, format string) (*NWSaver, error) {
	if format == "" {
		format = defaultImageFormat
	}
	f, ok := imageFormats[format]
	if !ok {
		return nil, fmt.Errorf("nwsaver: unsupported image format %q", format)
	}
	return &NWSaver{
		logger: logger,
		format: f,
	}, nil
}
