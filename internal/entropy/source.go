package entropy

import (
	"crypto/rand"
	"fmt"
	"io"
)

// RandomSource supplies random bytes for Extend.
type RandomSource interface {
	// NextBytes returns exactly n random bytes or an error.
	NextBytes(n int) ([]byte, error)
}

// ReaderSource adapts an io.Reader into a RandomSource.
type ReaderSource struct {
	R io.Reader
}

// NextBytes reads exactly n bytes from the underlying reader.
func (s ReaderSource) NextBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	got, err := io.ReadFull(s.R, buf)
	if err != nil {
		return nil, fmt.Errorf("%w: read %d of %d bytes: %v", ErrShortRandom, got, n, err)
	}
	return buf, nil
}

// CryptoSource returns a RandomSource backed by the operating system CSPRNG.
// It is safe for concurrent use.
func CryptoSource() RandomSource {
	return ReaderSource{R: rand.Reader}
}
