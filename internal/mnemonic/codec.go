package mnemonic

import (
	"fmt"

	"github.com/Klingon-tech/seed-utils/internal/wordlist"
	"github.com/Klingon-tech/seed-utils/pkg/bitio"
	"github.com/Klingon-tech/seed-utils/pkg/crypto"
	"github.com/Klingon-tech/seed-utils/pkg/types"
)

// bitsPerWord is the width of one wordlist index.
const bitsPerWord = 11

// Checksum returns the first len(entropy)/4 bits of SHA-256(entropy),
// right-aligned. The entropy length must be 16, 24 or 32 bytes.
func Checksum(entropy []byte) uint8 {
	csBits := len(entropy) * 8 / 32
	h := crypto.Hash(entropy)
	return h[0] >> uint(8-csBits)
}

// Encode converts entropy to a mnemonic using the English wordlist.
func Encode(entropy []byte) (Mnemonic, error) {
	return EncodeWith(wordlist.English, entropy)
}

// EncodeWith converts entropy to a mnemonic using wl.
func EncodeWith(wl wordlist.Wordlist, entropy []byte) (Mnemonic, error) {
	wc, err := types.WordCountFromEntropyBytes(len(entropy))
	if err != nil {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidEntropyLength, len(entropy))
	}

	w := bitio.NewWriter()
	w.WriteBytes(entropy)
	if err := w.WriteBits(uint32(Checksum(entropy)), uint(wc.ChecksumBits())); err != nil {
		return nil, err
	}

	r, err := bitio.NewReader(w.Bytes(), w.Len())
	if err != nil {
		return nil, err
	}
	m := make(Mnemonic, int(wc))
	for i := range m {
		idx, err := r.ReadBits(bitsPerWord)
		if err != nil {
			return nil, err
		}
		word, err := wl.WordAt(int(idx))
		if err != nil {
			return nil, err
		}
		m[i] = word
	}
	return m, nil
}

// Decode validates m against the English wordlist and returns its entropy
// and checksum.
func Decode(m Mnemonic) ([]byte, uint8, error) {
	return DecodeWith(wordlist.English, m)
}

// DecodeWith validates m against wl and returns its entropy and checksum.
// Checks run in order: word count, unknown words, checksum.
func DecodeWith(wl wordlist.Wordlist, m Mnemonic) ([]byte, uint8, error) {
	wc := m.WordCount()
	if !wc.Valid() {
		return nil, 0, fmt.Errorf("%w: got %d", ErrInvalidWordCount, len(m))
	}

	w := bitio.NewWriter()
	for i, word := range m {
		idx, ok := wl.IndexOf(word)
		if !ok {
			return nil, 0, fmt.Errorf("%w: %q at position %d", ErrUnknownWord, word, i+1)
		}
		if err := w.WriteBits(uint32(idx), bitsPerWord); err != nil {
			return nil, 0, err
		}
	}

	r, err := bitio.NewReader(w.Bytes(), w.Len())
	if err != nil {
		return nil, 0, err
	}
	entropy, err := r.ReadBytes(wc.EntropyBytes())
	if err != nil {
		return nil, 0, err
	}
	cs, err := r.ReadBits(uint(wc.ChecksumBits()))
	if err != nil {
		return nil, 0, err
	}
	if uint8(cs) != Checksum(entropy) {
		return nil, 0, ErrInvalidChecksum
	}
	return entropy, uint8(cs), nil
}
