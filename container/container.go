/*
Package container holds the plumbing shared by the NW-A1000 and NW-E500
screensaver file formats: the error taxonomy, big-endian field helpers, the
frame table and alignment padding.

Both formats store a frame table of two byte entries; the first byte is the
index of a bitmap block and the second is always 0x10.
*/
package container

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// FrameFlag is the constant second byte of every frame table entry.
const FrameFlag = 0x10

const maxFrameIndex = math.MaxUint8

// ReadFull is io.ReadFull except a short read at EOF is always reported as
// io.ErrUnexpectedEOF.
func ReadFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

// ReadUint16 reads a big-endian 16-bit field.
func ReadUint16(r io.Reader) (uint16, error) {
	var tmp [2]byte
	if err := ReadFull(r, tmp[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(tmp[:]), nil
}

// Skip discards n bytes from r.
func Skip(r io.Reader, n int) error {
	if _, err := io.CopyN(io.Discard, r, int64(n)); err != nil {
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	return nil
}

// CheckCount returns ErrValidation if n cannot be stored in a 16-bit field.
func CheckCount(what string, n int) error {
	if n < 0 || n > math.MaxUint16 {
		return fmt.Errorf("%w: %s %d does not fit in 16 bits", ErrValidation, what, n)
	}
	return nil
}

// WriteUint16 appends big-endian 16-bit fields to b.
func WriteUint16(b *bytes.Buffer, v ...uint16) error {
	return binary.Write(b, binary.BigEndian, v)
}

// WriteFrames appends the frame table to b. Every index must refer to one of
// the bitmaps.
func WriteFrames(b *bytes.Buffer, frames []int, bitmaps int) error {
	for i, f := range frames {
		if f < 0 || f >= bitmaps || f > maxFrameIndex {
			return fmt.Errorf("%w: frame %d refers to bitmap %d of %d", ErrFrameIndexOutOfRange, i, f, bitmaps)
		}
		if err := b.WriteByte(byte(f)); err != nil {
			return err
		}
		if err := b.WriteByte(FrameFlag); err != nil {
			return err
		}
	}
	return nil
}

// ReadFrames reads n frame table entries from r.
func ReadFrames(r io.Reader, n int) ([]int, error) {
	tmp := make([]byte, n<<1)
	if err := ReadFull(r, tmp); err != nil {
		return nil, err
	}

	frames := make([]int, n)
	for i := range frames {
		if tmp[i<<1|1] != FrameFlag {
			return nil, fmt.Errorf("%w: frame %d has flag %#02x", ErrFormat, i, tmp[i<<1|1])
		}
		frames[i] = int(tmp[i<<1])
	}
	return frames, nil
}

// Padding returns the number of bytes needed to round n up to a multiple of
// align.
func Padding(n, align int) int {
	if mod := n % align; mod > 0 {
		return align - mod
	}
	return 0
}

// Pad appends zero bytes to b until its length is a multiple of align.
func Pad(b *bytes.Buffer, align int) {
	b.Write(make([]byte, Padding(b.Len(), align)))
}
