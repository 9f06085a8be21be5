// Package mnemonic converts between BIP39 entropy and mnemonic sentences and
// stretches mnemonics into 64-byte seeds.
package mnemonic

import (
	"errors"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/Klingon-tech/seed-utils/internal/log"
	"github.com/Klingon-tech/seed-utils/pkg/types"
)

var (
	// ErrInvalidWordCount is returned for mnemonics that are not 12, 18 or 24 words.
	ErrInvalidWordCount = types.ErrInvalidWordCount

	// ErrUnknownWord is returned when a word is not in the wordlist.
	ErrUnknownWord = errors.New("unknown mnemonic word")

	// ErrInvalidChecksum is returned when the checksum bits do not match the entropy.
	ErrInvalidChecksum = errors.New("invalid mnemonic checksum")

	// ErrInvalidEntropyLength is returned for entropy that is not 16, 24 or 32 bytes.
	ErrInvalidEntropyLength = errors.New("entropy must be 16, 24 or 32 bytes")
)

// Mnemonic is an ordered sequence of wordlist words.
type Mnemonic []string

// Parse NFKD-normalizes s, splits it on whitespace and validates the result.
// Words are matched case sensitively.
func Parse(s string) (Mnemonic, error) {
	m := Mnemonic(strings.Fields(norm.NFKD.String(s)))
	if _, _, err := Decode(m); err != nil {
		return nil, err
	}
	log.Mnemonic.Debug().Int("words", len(m)).Msg("Parsed mnemonic")
	return m, nil
}

// String joins the words with single spaces.
func (m Mnemonic) String() string {
	return strings.Join(m, " ")
}

// WordCount returns the number of words.
func (m Mnemonic) WordCount() types.WordCount {
	return types.WordCount(len(m))
}
