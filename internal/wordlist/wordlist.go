// Package wordlist maps 11-bit indices to BIP39 words and back.
package wordlist

import (
	"errors"
	"fmt"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// Size is the number of words in a BIP39 wordlist (2^11).
const Size = 2048

var (
	// ErrIndexOutOfRange is returned for indices outside 0..2047.
	ErrIndexOutOfRange = errors.New("word index out of range")

	// ErrBadWordlist is returned when a table is not 2048 unique words.
	ErrBadWordlist = errors.New("wordlist must contain 2048 unique words")
)

// Wordlist is a fixed, order-significant table of words.
type Wordlist interface {
	// WordAt returns the word at index i.
	WordAt(i int) (string, error)
	// IndexOf returns the index of w. Lookup is case sensitive.
	IndexOf(w string) (int, bool)
}

type table struct {
	words []string
	index map[string]int
}

// English is the BIP39 English wordlist. It is built once and never modified.
var English Wordlist = mustNew(wordlists.English)

// New builds a Wordlist from a 2048-word table.
func New(words []string) (Wordlist, error) {
	if len(words) != Size {
		return nil, fmt.Errorf("%w: got %d words", ErrBadWordlist, len(words))
	}
	t := &table{
		words: make([]string, Size),
		index: make(map[string]int, Size),
	}
	copy(t.words, words)
	for i, w := range t.words {
		if _, dup := t.index[w]; dup {
			return nil, fmt.Errorf("%w: duplicate word %q", ErrBadWordlist, w)
		}
		t.index[w] = i
	}
	return t, nil
}

func mustNew(words []string) Wordlist {
	wl, err := New(words)
	if err != nil {
		panic(err)
	}
	return wl
}

func (t *table) WordAt(i int) (string, error) {
	if i < 0 || i >= Size {
		return "", fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return t.words[i], nil
}

func (t *table) IndexOf(w string) (int, bool) {
	i, ok := t.index[w]
	return i, ok
}
