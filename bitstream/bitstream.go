/*
Package bitstream implements the MSB-first bit packing used by the screensaver
bitmaps.

A Stream is used either for writing, where values of arbitrary width are
pushed and accumulated into bytes, or for reading, where values are popped
from the front of an existing byte sequence. The two modes are never mixed on
the same Stream.

	byte  0               1
	     +---------------+---------------+-
	     |7 6 5 4 3 2 1 0|7 6 5 4 3 2 1 0|...
	     +---------------+---------------+-
	bit   0 1 2 3 4 5 6 7 8 9 ...
*/
package bitstream

import "errors"

// ErrUnderflow is returned by Pop when fewer bits remain than were asked for.
var ErrUnderflow = errors.New("bitstream: underflow")

// Stream is a byte sequence with one partially filled byte. The zero value is
// an empty Stream ready for writing.
type Stream struct {
	data []byte

	// In write mode n is the number of bits accumulated in buf, in read
	// mode it's the number of bits of buf not yet consumed
	buf byte
	n   uint
}

// New returns an empty Stream for writing.
func New() *Stream {
	return new(Stream)
}

// NewReader returns a Stream that pops bits from b. The slice is not
// modified.
func NewReader(b []byte) *Stream {
	return &Stream{
		data: b,
	}
}

func mask(width uint) uint64 {
	if width >= 64 {
		return 1<<64 - 1
	}
	return 1<<width - 1
}

// Push appends the low width bits of v, most significant bit first.
//
// v must fit within width bits. This isn't checked; any higher bits of v are
// silently dropped so only the lower-order width bits are written. Widths
// greater than 64 are zero-extended which is useful for padding.
func (s *Stream) Push(v uint64, width uint) {
	for width > 0 {
		k := 8 - s.n
		if k > width {
			k = width
		}

		var chunk uint64
		if shift := width - k; shift < 64 {
			chunk = v >> shift & mask(k)
		}

		s.buf = s.buf<<k | byte(chunk)
		s.n += k
		width -= k

		if s.n == 8 {
			s.data = append(s.data, s.buf)
			s.buf, s.n = 0, 0
		}
	}
}

// Flush pads any partially filled byte with zero bits and appends it. It
// does nothing if the Stream is byte aligned.
func (s *Stream) Flush() {
	if s.n == 0 {
		return
	}
	s.Push(0, 8-s.n)
}

// Pop removes width bits from the front of the Stream and returns them, most
// significant bit first. Any bits left over in the current byte from a
// previous Pop are consumed first. If there are not enough bits then
// ErrUnderflow is returned and nothing is consumed.
//
// Widths greater than 64 are allowed but only the last 64 bits are returned.
func (s *Stream) Pop(width uint) (uint64, error) {
	if width == 0 {
		return 0, nil
	}
	if uint64(width) > uint64(s.n)+8*uint64(len(s.data)) {
		return 0, ErrUnderflow
	}

	var out uint64
	for width > 0 {
		if s.n == 0 {
			s.buf, s.data = s.data[0], s.data[1:]
			s.n = 8
		}

		k := s.n
		if k > width {
			k = width
		}

		s.n -= k
		width -= k
		out = out<<k | uint64(s.buf>>s.n)&mask(k)
	}

	return out, nil
}

// Bytes returns the completed bytes. Call Flush first to include a partial
// byte. For a Stream created with NewReader it returns the bytes not yet
// touched by Pop.
func (s *Stream) Bytes() []byte {
	return s.data
}

// Len returns the number of bits held, including the partial byte.
func (s *Stream) Len() int {
	return 8*len(s.data) + int(s.n)
}
