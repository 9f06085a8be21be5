// Package entropy transforms mnemonics at the entropy level: extending them
// with fresh random bits, truncating them to a shorter prefix and combining
// several of them with XOR.
package entropy

import (
	"errors"
	"fmt"

	"github.com/Klingon-tech/seed-utils/internal/log"
	"github.com/Klingon-tech/seed-utils/internal/mnemonic"
	"github.com/Klingon-tech/seed-utils/pkg/types"
)

var (
	// ErrInvalidTargetWordCount is returned when the requested length is not
	// a valid extension or truncation of the source.
	ErrInvalidTargetWordCount = errors.New("invalid target word count")

	// ErrMismatchedLength is returned when XOR inputs differ in length.
	ErrMismatchedLength = errors.New("mnemonics differ in length")

	// ErrTooFewMnemonics is returned when XOR gets fewer than two inputs.
	ErrTooFewMnemonics = errors.New("at least two mnemonics are required")

	// ErrShortRandom is returned when the random source cannot fill a request.
	ErrShortRandom = errors.New("random source returned too few bytes")
)

// Extend appends random entropy to m so that it encodes target words.
// The source must be 12 or 18 words and target must be longer (18 or 24).
// The returned mnemonic carries a freshly computed checksum.
func Extend(m mnemonic.Mnemonic, target types.WordCount, src RandomSource) (mnemonic.Mnemonic, error) {
	ent, _, err := mnemonic.Decode(m)
	if err != nil {
		return nil, err
	}
	source := m.WordCount()
	if source == types.Words24 || (target != types.Words18 && target != types.Words24) || target <= source {
		return nil, fmt.Errorf("%w: cannot extend %d words to %d", ErrInvalidTargetWordCount, source, target)
	}

	extra, err := src.NextBytes(target.EntropyBytes() - source.EntropyBytes())
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, target.EntropyBytes())
	out = append(out, ent...)
	out = append(out, extra...)

	log.Entropy.Debug().
		Int("from", int(source)).
		Int("to", int(target)).
		Msg("Extended mnemonic")
	return mnemonic.Encode(out)
}

// Truncate keeps the leading entropy of m that a target-word mnemonic
// encodes and recomputes the checksum. Target must be 12 or 18 and shorter
// than m. The first target-1 words of the result match m.
func Truncate(m mnemonic.Mnemonic, target types.WordCount) (mnemonic.Mnemonic, error) {
	ent, _, err := mnemonic.Decode(m)
	if err != nil {
		return nil, err
	}
	source := m.WordCount()
	if (target != types.Words12 && target != types.Words18) || target >= source {
		return nil, fmt.Errorf("%w: cannot truncate %d words to %d", ErrInvalidTargetWordCount, source, target)
	}

	log.Entropy.Debug().
		Int("from", int(source)).
		Int("to", int(target)).
		Msg("Truncated mnemonic")
	return mnemonic.Encode(ent[:target.EntropyBytes()])
}

// XOR combines two or more mnemonics of equal length by XORing their
// entropy. The result has the same length as the inputs.
func XOR(ms ...mnemonic.Mnemonic) (mnemonic.Mnemonic, error) {
	if len(ms) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewMnemonics, len(ms))
	}

	ents := make([][]byte, len(ms))
	for i, m := range ms {
		ent, _, err := mnemonic.Decode(m)
		if err != nil {
			return nil, fmt.Errorf("mnemonic %d: %w", i+1, err)
		}
		ents[i] = ent
	}

	out, err := XOREntropy(ents...)
	if err != nil {
		return nil, err
	}

	log.Entropy.Debug().
		Int("inputs", len(ms)).
		Int("words", len(ms[0])).
		Msg("XORed mnemonics")
	return mnemonic.Encode(out)
}

// XOREntropy returns the bytewise XOR of two or more equal-length entropies.
func XOREntropy(es ...[]byte) ([]byte, error) {
	if len(es) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewMnemonics, len(es))
	}
	out := make([]byte, len(es[0]))
	for i, e := range es {
		if len(e) != len(out) {
			return nil, fmt.Errorf("%w: input %d is %d bytes, input 1 is %d", ErrMismatchedLength, i+1, len(e), len(out))
		}
		for j := range e {
			out[j] ^= e[j]
		}
	}
	return out, nil
}
