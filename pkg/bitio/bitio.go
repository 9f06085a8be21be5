// Package bitio reads and writes big-endian, most-significant-bit-first bit
// strings over a byte buffer. Mnemonic words are 11-bit groups that do not
// line up with byte boundaries, so the codecs work through this cursor
// instead of slicing bytes.
package bitio

import (
	"errors"
	"fmt"
)

// MaxBits is the widest value a single ReadBits/WriteBits call moves.
const MaxBits = 32

var (
	// ErrShortRead is returned when a read runs past the end of the bit string.
	ErrShortRead = errors.New("bitio: read past end of bit string")

	// ErrTooManyBits is returned when more than MaxBits are requested at once.
	ErrTooManyBits = errors.New("bitio: at most 32 bits per call")
)

// Writer appends bits to a growing buffer.
type Writer struct {
	buf   []byte
	nbits int
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteBits appends the low n bits of v, most significant first.
func (w *Writer) WriteBits(v uint32, n uint) error {
	if n > MaxBits {
		return ErrTooManyBits
	}
	for i := int(n) - 1; i >= 0; i-- {
		w.writeBit(byte(v>>uint(i)) & 1)
	}
	return nil
}

// WriteBytes appends every bit of b.
func (w *Writer) WriteBytes(b []byte) {
	if w.nbits%8 == 0 {
		w.buf = append(w.buf, b...)
		w.nbits += len(b) * 8
		return
	}
	for _, c := range b {
		for i := 7; i >= 0; i-- {
			w.writeBit((c >> uint(i)) & 1)
		}
	}
}

func (w *Writer) writeBit(bit byte) {
	if w.nbits%8 == 0 {
		w.buf = append(w.buf, 0)
	}
	if bit != 0 {
		w.buf[w.nbits/8] |= 0x80 >> uint(w.nbits%8)
	}
	w.nbits++
}

// Len returns the number of bits written.
func (w *Writer) Len() int {
	return w.nbits
}

// Bytes returns a copy of the buffer. A trailing partial byte is zero padded.
func (w *Writer) Bytes() []byte {
	out := make([]byte, len(w.buf))
	copy(out, w.buf)
	return out
}

// Reader consumes bits from a fixed bit string.
type Reader struct {
	buf   []byte
	nbits int
	pos   int
}

// NewReader reads the first nbits bits of buf.
func NewReader(buf []byte, nbits int) (*Reader, error) {
	if nbits < 0 || nbits > len(buf)*8 {
		return nil, fmt.Errorf("bitio: %d bits requested from a %d-byte buffer", nbits, len(buf))
	}
	return &Reader{buf: buf, nbits: nbits}, nil
}

// ReadBits consumes n bits and returns them right-aligned.
func (r *Reader) ReadBits(n uint) (uint32, error) {
	if n > MaxBits {
		return 0, ErrTooManyBits
	}
	if int(n) > r.Remaining() {
		return 0, ErrShortRead
	}
	var v uint32
	for i := uint(0); i < n; i++ {
		bit := (r.buf[r.pos/8] >> uint(7-r.pos%8)) & 1
		v = v<<1 | uint32(bit)
		r.pos++
	}
	return v, nil
}

// ReadBytes consumes n whole bytes (8n bits).
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n*8 > r.Remaining() {
		return nil, ErrShortRead
	}
	out := make([]byte, n)
	for i := range out {
		v, err := r.ReadBits(8)
		if err != nil {
			return nil, err
		}
		out[i] = byte(v)
	}
	return out, nil
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int {
	return r.nbits - r.pos
}
