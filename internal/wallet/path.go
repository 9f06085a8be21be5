package wallet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tyler-smith/go-bip32"

	"github.com/Klingon-tech/seed-utils/pkg/types"
)

// HardenedOffset is added to an index to make a hardened child number.
const HardenedOffset = bip32.FirstHardenedChild

// Path constants.
// Child seeds: m/83696968'/39'/language'/words'/index'
// Accounts:    m/purpose'/coin'/account'/change/index
const (
	// PurposeBIP85 is the BIP-85 deterministic entropy purpose.
	PurposeBIP85 = 83696968

	// AppBIP39 is the BIP-85 application number for BIP-39 mnemonics.
	AppBIP39 = 39

	// LanguageEnglish is the BIP-85 language code of the English wordlist.
	LanguageEnglish = 0

	// ChangeExternal is for receiving addresses.
	ChangeExternal = 0

	// ChangeInternal is for change addresses.
	ChangeInternal = 1
)

// ErrDerivationOverflow is returned when an index does not fit below the
// hardened range.
var ErrDerivationOverflow = errors.New("derivation index overflows 31 bits")

// DerivationPath is a sequence of BIP-32 child numbers from the master key.
// Child numbers at or above HardenedOffset are hardened.
type DerivationPath []uint32

// Child returns a new path with idx appended. p is not modified.
func (p DerivationPath) Child(idx uint32) DerivationPath {
	out := make(DerivationPath, len(p), len(p)+1)
	copy(out, p)
	return append(out, idx)
}

// String renders the path as m/44'/0'/0'.
func (p DerivationPath) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, idx := range p {
		b.WriteByte('/')
		if idx >= HardenedOffset {
			b.WriteString(strconv.FormatUint(uint64(idx-HardenedOffset), 10))
			b.WriteByte('\'')
		} else {
			b.WriteString(strconv.FormatUint(uint64(idx), 10))
		}
	}
	return b.String()
}

// ParsePath parses a path such as "m/84'/0'/0'" or "m/84h/0h/0h/0/5".
func ParsePath(s string) (DerivationPath, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if parts[0] != "m" {
		return nil, fmt.Errorf("derivation path %q must start with m", s)
	}

	path := make(DerivationPath, 0, len(parts)-1)
	for _, part := range parts[1:] {
		hardened := false
		if n := len(part); n > 0 && (part[n-1] == '\'' || part[n-1] == 'h' || part[n-1] == 'H') {
			hardened = true
			part = part[:n-1]
		}
		idx, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("derivation path %q: bad component %q", s, part)
		}
		if idx >= uint64(HardenedOffset) {
			return nil, fmt.Errorf("%w: %d in %q", ErrDerivationOverflow, idx, s)
		}
		if hardened {
			idx += uint64(HardenedOffset)
		}
		path = append(path, uint32(idx))
	}
	return path, nil
}

// hardened returns idx in the hardened range.
func hardened(idx uint32) (uint32, error) {
	if idx >= HardenedOffset {
		return 0, fmt.Errorf("%w: %d", ErrDerivationOverflow, idx)
	}
	return idx + HardenedOffset, nil
}

// ChildSeedPath returns m/83696968'/39'/0'/words'/index'.
func ChildSeedPath(words types.WordCount, index uint32) (DerivationPath, error) {
	h, err := hardened(index)
	if err != nil {
		return nil, err
	}
	return DerivationPath{
		PurposeBIP85 + HardenedOffset,
		AppBIP39 + HardenedOffset,
		LanguageEnglish + HardenedOffset,
		uint32(words) + HardenedOffset,
		h,
	}, nil
}

// AccountPath returns m/purpose'/coin'/account' for the format and network.
func AccountPath(format types.OutputFormat, network types.Network, account uint32) (DerivationPath, error) {
	h, err := hardened(account)
	if err != nil {
		return nil, err
	}
	return DerivationPath{
		format.Purpose() + HardenedOffset,
		network.CoinType() + HardenedOffset,
		h,
	}, nil
}

// checkRange verifies that every index in [start, start+count) stays below
// the hardened offset.
func checkRange(start, count uint32) error {
	if count == 0 {
		return nil
	}
	if uint64(start)+uint64(count)-1 >= uint64(HardenedOffset) {
		return fmt.Errorf("%w: %d + %d", ErrDerivationOverflow, start, count)
	}
	return nil
}
