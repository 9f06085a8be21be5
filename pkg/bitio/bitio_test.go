package bitio

import (
	"bytes"
	"errors"
	"testing"
)

func TestWriter_WriteBits(t *testing.T) {
	w := NewWriter()
	// 101 then 11111111111 then 0 = 1011 1111 1111 1100 -> 0xBF 0xFC
	if err := w.WriteBits(0b101, 3); err != nil {
		t.Fatalf("WriteBits() error: %v", err)
	}
	if err := w.WriteBits(0x7FF, 11); err != nil {
		t.Fatalf("WriteBits() error: %v", err)
	}
	if err := w.WriteBits(0, 1); err != nil {
		t.Fatalf("WriteBits() error: %v", err)
	}

	if w.Len() != 15 {
		t.Errorf("Len() = %d, want 15", w.Len())
	}
	want := []byte{0xBF, 0xFC}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("Bytes() = %x, want %x", w.Bytes(), want)
	}
}

func TestWriter_TooManyBits(t *testing.T) {
	w := NewWriter()
	if err := w.WriteBits(0, 33); !errors.Is(err, ErrTooManyBits) {
		t.Errorf("WriteBits(33) error = %v, want ErrTooManyBits", err)
	}
}

func TestWriter_WriteBytesUnaligned(t *testing.T) {
	w := NewWriter()
	if err := w.WriteBits(1, 1); err != nil {
		t.Fatal(err)
	}
	w.WriteBytes([]byte{0xFF, 0x00})
	// 1 1111 1111 0000 0000 -> 0xFF 0x80 0x00
	want := []byte{0xFF, 0x80, 0x00}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("Bytes() = %x, want %x", w.Bytes(), want)
	}
	if w.Len() != 17 {
		t.Errorf("Len() = %d, want 17", w.Len())
	}
}

func TestReader_ReadBits(t *testing.T) {
	r, err := NewReader([]byte{0xBF, 0xFC}, 15)
	if err != nil {
		t.Fatalf("NewReader() error: %v", err)
	}

	tests := []struct {
		n    uint
		want uint32
	}{
		{3, 0b101},
		{11, 0x7FF},
		{1, 0},
	}
	for _, tt := range tests {
		got, err := r.ReadBits(tt.n)
		if err != nil {
			t.Fatalf("ReadBits(%d) error: %v", tt.n, err)
		}
		if got != tt.want {
			t.Errorf("ReadBits(%d) = %b, want %b", tt.n, got, tt.want)
		}
	}

	if _, err := r.ReadBits(1); !errors.Is(err, ErrShortRead) {
		t.Errorf("ReadBits past end error = %v, want ErrShortRead", err)
	}
}

func TestReader_ReadBytes(t *testing.T) {
	r, err := NewReader([]byte{0x12, 0x34, 0x56}, 20)
	if err != nil {
		t.Fatalf("NewReader() error: %v", err)
	}
	b, err := r.ReadBytes(2)
	if err != nil {
		t.Fatalf("ReadBytes() error: %v", err)
	}
	if !bytes.Equal(b, []byte{0x12, 0x34}) {
		t.Errorf("ReadBytes() = %x, want 1234", b)
	}
	if r.Remaining() != 4 {
		t.Errorf("Remaining() = %d, want 4", r.Remaining())
	}
	if _, err := r.ReadBytes(1); !errors.Is(err, ErrShortRead) {
		t.Errorf("ReadBytes past end error = %v, want ErrShortRead", err)
	}
}

func TestNewReader_TooManyBits(t *testing.T) {
	if _, err := NewReader([]byte{0x00}, 9); err == nil {
		t.Error("expected error for 9 bits from 1 byte")
	}
}

func TestRoundTrip_ElevenBitGroups(t *testing.T) {
	values := []uint32{0, 2047, 1, 1024, 3, 1500, 777, 2046}

	w := NewWriter()
	for _, v := range values {
		if err := w.WriteBits(v, 11); err != nil {
			t.Fatalf("WriteBits() error: %v", err)
		}
	}

	r, err := NewReader(w.Bytes(), w.Len())
	if err != nil {
		t.Fatalf("NewReader() error: %v", err)
	}
	for i, want := range values {
		got, err := r.ReadBits(11)
		if err != nil {
			t.Fatalf("ReadBits() error: %v", err)
		}
		if got != want {
			t.Errorf("group %d = %d, want %d", i, got, want)
		}
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", r.Remaining())
	}
}
