package nwe500

import (
	"fmt"

	"github.com/bodgit/nwsaver/container"
)

// The display is driven as three planes of 16 pixel wide columns, each
// stored bottom row first
const (
	rows        = 120
	rowBytes    = 6
	planes      = 3
	planeStride = rowBytes / planes
	planeBytes  = rows * planeStride
	bitmapBytes = rows * rowBytes
)

func checkLength(b []byte) error {
	if len(b) != bitmapBytes {
		return fmt.Errorf("%w: bitmap is %d bytes, expected %d", container.ErrFormat, len(b), bitmapBytes)
	}
	return nil
}

// Mangle reorders a packed 48 by 120 1-bit bitmap into the order expected
// by the display. Row r, bytes 2s to 2s+1 end up in plane 2-s at row
// 119-r.
func Mangle(packed []byte) ([]byte, error) {
	if err := checkLength(packed); err != nil {
		return nil, err
	}

	out := make([]byte, bitmapBytes)
	for r := 0; r < rows; r++ {
		for p := 0; p < planes; p++ {
			src := r*rowBytes + (planes-1-p)*planeStride
			dst := p*planeBytes + (rows-1-r)*planeStride
			copy(out[dst:dst+planeStride], packed[src:src+planeStride])
		}
	}
	return out, nil
}

// Unmangle is the inverse of Mangle.
func Unmangle(mangled []byte) ([]byte, error) {
	if err := checkLength(mangled); err != nil {
		return nil, err
	}

	out := make([]byte, bitmapBytes)
	for r := 0; r < rows; r++ {
		for p := 0; p < planes; p++ {
			src := p*planeBytes + (rows-1-r)*planeStride
			dst := r*rowBytes + (planes-1-p)*planeStride
			copy(out[dst:dst+planeStride], mangled[src:src+planeStride])
		}
	}
	return out, nil
}
