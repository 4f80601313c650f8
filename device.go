package nwsaver

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/bodgit/nwsaver/bitmap"
	"github.com/bodgit/nwsaver/container"
)

type device struct {
	name  string
	magic uint16

	// Bitmap kinds accepted by Prepare
	kinds map[string]bitmap.Description

	// create encodes the configuration in b, image paths are relative to
	// dir
	create func(s *NWSaver, b []byte, dir string) ([]byte, error)
	// disassemble must decode b completely before writing anything to
	// dir
	disassemble func(s *NWSaver, b []byte, dir string) error
}

var devices = map[string]*device{}

func registerDevice(d *device) {
	devices[d.name] = d
}

// Devices returns the names of the supported devices.
func Devices() []string {
	names := make([]string, 0, len(devices))
	for name := range devices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupDevice(name string) (*device, error) {
	d, ok := devices[name]
	if !ok {
		return nil, fmt.Errorf("nwsaver: unknown device %q", name)
	}
	return d, nil
}

// sniff returns the device whose magic number starts b.
func sniff(b []byte) (*device, error) {
	if len(b) < 2 {
		return nil, fmt.Errorf("%w: file too short", container.ErrBadMagic)
	}
	magic := uint16(b[0])<<8 | uint16(b[1])
	for _, d := range devices {
		if d.magic == magic {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: unrecognised magic %#04x", container.ErrBadMagic, magic)
}

// isScreensaver reports whether file starts with a known magic number.
func isScreensaver(file string) (bool, error) {
	f, err := os.Open(file)
	if err != nil {
		return false, err
	}
	defer f.Close()

	var b [2]byte
	if _, err := io.ReadFull(f, b[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return false, nil
		}
		return false, err
	}

	_, err = sniff(b[:])
	return err == nil, nil
}
