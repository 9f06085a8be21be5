package wallet

import (
	"errors"
	"fmt"

	"github.com/Klingon-tech/seed-utils/internal/log"
	"github.com/Klingon-tech/seed-utils/internal/mnemonic"
	"github.com/Klingon-tech/seed-utils/pkg/crypto"
	"github.com/Klingon-tech/seed-utils/pkg/types"
)

// bip85HMACKey keys the HMAC that turns a derived private key into entropy.
var bip85HMACKey = []byte("bip-entropy-from-k")

// ErrPublicMaster is returned when hardened derivation is asked of a public key.
var ErrPublicMaster = errors.New("hardened derivation needs a private key")

// ChildParams selects which child seeds to derive.
type ChildParams struct {
	Words   types.WordCount
	Index   uint32
	Count   uint32
	Workers int
}

// ChildSeed is one derived child mnemonic.
type ChildSeed struct {
	Index    uint32
	Path     DerivationPath
	Mnemonic mnemonic.Mnemonic
}

// DeriveChildSeed derives the BIP-85 child mnemonic of the given length at
// index from master.
func DeriveChildSeed(master *HDKey, words types.WordCount, index uint32) (ChildSeed, error) {
	if !words.Valid() {
		return ChildSeed{}, fmt.Errorf("%w: got %d", types.ErrInvalidWordCount, int(words))
	}
	if !master.IsPrivate() {
		return ChildSeed{}, ErrPublicMaster
	}
	path, err := ChildSeedPath(words, index)
	if err != nil {
		return ChildSeed{}, err
	}

	key, err := master.DerivePath(path)
	if err != nil {
		return ChildSeed{}, err
	}
	ent := crypto.HMACSHA512(bip85HMACKey, key.PrivateKeyBytes())
	m, err := mnemonic.Encode(ent[:words.EntropyBytes()])
	if err != nil {
		return ChildSeed{}, err
	}
	return ChildSeed{Index: index, Path: path, Mnemonic: m}, nil
}

// DeriveChildSeeds derives p.Count child mnemonics starting at p.Index,
// returned in ascending index order. Count 0 yields an empty result.
func DeriveChildSeeds(root mnemonic.Mnemonic, passphrase string, p ChildParams) ([]ChildSeed, error) {
	if !p.Words.Valid() {
		return nil, fmt.Errorf("%w: got %d", types.ErrInvalidWordCount, int(p.Words))
	}
	if err := checkRange(p.Index, p.Count); err != nil {
		return nil, err
	}
	master, err := MasterKeyFromMnemonic(root, passphrase)
	if err != nil {
		return nil, err
	}

	done := log.Benchmark("derive_child_seeds")
	defer done()

	out := make([]ChildSeed, p.Count)
	err = forEach(int(p.Count), p.Workers, func(i int) error {
		cs, err := DeriveChildSeed(master, p.Words, p.Index+uint32(i))
		if err != nil {
			return err
		}
		out[i] = cs
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Wallet.Debug().
		Uint32("index", p.Index).
		Uint32("count", p.Count).
		Int("words", int(p.Words)).
		Msg("Derived child seeds")
	return out, nil
}
