package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidWordCount is returned for word counts other than 12, 18 or 24.
var ErrInvalidWordCount = errors.New("word count must be 12, 18 or 24")

// WordCount is the number of words in a supported mnemonic.
type WordCount int

// Supported word counts.
const (
	Words12 WordCount = 12
	Words18 WordCount = 18
	Words24 WordCount = 24
)

// WordCounts lists every supported word count in ascending order.
var WordCounts = []WordCount{Words12, Words18, Words24}

// Valid reports whether w is a supported word count.
func (w WordCount) Valid() bool {
	switch w {
	case Words12, Words18, Words24:
		return true
	}
	return false
}

// EntropyBits returns ENT, the entropy length in bits.
// ENT + ENT/32 = words*11, so ENT = words*32/3.
func (w WordCount) EntropyBits() int {
	return int(w) * 32 / 3
}

// EntropyBytes returns the entropy length in bytes.
func (w WordCount) EntropyBytes() int {
	return w.EntropyBits() / 8
}

// ChecksumBits returns the checksum length in bits (ENT/32).
func (w WordCount) ChecksumBits() int {
	return int(w) / 3
}

// String returns the decimal word count.
func (w WordCount) String() string {
	return strconv.Itoa(int(w))
}

// WordCountFromInt validates n as a word count.
func WordCountFromInt(n int) (WordCount, error) {
	w := WordCount(n)
	if !w.Valid() {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidWordCount, n)
	}
	return w, nil
}

// WordCountFromEntropyBytes returns the word count encoding n bytes of entropy.
func WordCountFromEntropyBytes(n int) (WordCount, error) {
	for _, w := range WordCounts {
		if w.EntropyBytes() == n {
			return w, nil
		}
	}
	return 0, fmt.Errorf("%w: no word count for %d entropy bytes", ErrInvalidWordCount, n)
}

// ParseWordCount parses a decimal word count such as "24".
func ParseWordCount(s string) (WordCount, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWordCount, s)
	}
	return WordCountFromInt(n)
}
