package container

import (
	"errors"

	"github.com/bodgit/nwsaver/bitmap"
	"github.com/bodgit/nwsaver/bitstream"
)

var (
	// ErrBadMagic is returned when a file doesn't start with the expected
	// marker.
	ErrBadMagic = errors.New("container: bad magic")
	// ErrFormat is returned when a structural field doesn't hold its
	// expected constant.
	ErrFormat = errors.New("container: format error")
	// ErrFrameIndexOutOfRange is returned when the frame table refers to a
	// bitmap that doesn't exist.
	ErrFrameIndexOutOfRange = errors.New("container: frame index out of range")
	// ErrValidation is returned for a configuration or input that can't be
	// represented in the file.
	ErrValidation = errors.New("container: validation error")
)

// Kind is the class of an error returned while converting a screensaver.
type Kind int

// The complete set of error kinds.
const (
	KindNone Kind = iota
	KindBadMagic
	KindFormat
	KindDimensionMismatch
	KindFrameIndexOutOfRange
	KindUnderflow
	KindValidation
	KindIO
)

var kindNames = [...]string{
	KindNone:                 "none",
	KindBadMagic:             "bad magic",
	KindFormat:               "format error",
	KindDimensionMismatch:    "dimension mismatch",
	KindFrameIndexOutOfRange: "frame index out of range",
	KindUnderflow:            "underflow",
	KindValidation:           "validation error",
	KindIO:                   "i/o failure",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// KindOf classifies err. Any error not recognised is assumed to have come
// from reading or writing files and images.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrBadMagic):
		return KindBadMagic
	case errors.Is(err, ErrFormat):
		return KindFormat
	case errors.Is(err, bitmap.ErrDimensionMismatch):
		return KindDimensionMismatch
	case errors.Is(err, ErrFrameIndexOutOfRange):
		return KindFrameIndexOutOfRange
	case errors.Is(err, bitstream.ErrUnderflow):
		return KindUnderflow
	case errors.Is(err, ErrValidation):
		return KindValidation
	default:
		return KindIO
	}
}
