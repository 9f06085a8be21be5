package wallet

import (
	"encoding/binary"
	"fmt"

	"github.com/tyler-smith/go-bip32"

	"github.com/Klingon-tech/seed-utils/internal/extkey"
	"github.com/Klingon-tech/seed-utils/internal/mnemonic"
	"github.com/Klingon-tech/seed-utils/pkg/types"
)

// HDKey represents a hierarchical deterministic key (BIP-32).
type HDKey struct {
	key *bip32.Key
}

// NewMasterKey creates a master HD key from a 64-byte seed.
func NewMasterKey(seed []byte) (*HDKey, error) {
	if len(seed) != mnemonic.SeedSize {
		return nil, fmt.Errorf("seed must be %d bytes, got %d", mnemonic.SeedSize, len(seed))
	}
	master, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("create master key: %w", err)
	}
	return &HDKey{key: master}, nil
}

// MasterKeyFromMnemonic stretches m and passphrase into a seed and returns
// the master key.
func MasterKeyFromMnemonic(m mnemonic.Mnemonic, passphrase string) (*HDKey, error) {
	if _, _, err := mnemonic.Decode(m); err != nil {
		return nil, err
	}
	return NewMasterKey(m.Seed(passphrase))
}

// FromExtendedKey wraps a parsed extended key so that derivation can continue
// from it.
func FromExtendedKey(ek extkey.ExtendedKey) *HDKey {
	k := &bip32.Key{
		Depth:       ek.Depth,
		ChildNumber: binary.BigEndian.AppendUint32(nil, ek.ChildNumber),
		FingerPrint: append([]byte(nil), ek.ParentFingerprint[:]...),
		ChainCode:   append([]byte(nil), ek.ChainCode[:]...),
		IsPrivate:   ek.IsPrivate(),
	}
	if k.IsPrivate {
		k.Version = bip32.PrivateWalletVersion
		k.Key = append([]byte(nil), ek.Key[1:]...)
	} else {
		k.Version = bip32.PublicWalletVersion
		k.Key = append([]byte(nil), ek.Key[:]...)
	}
	return &HDKey{key: k}
}

// DeriveChild derives a child key at the given index.
// For hardened derivation, add HardenedOffset to the index.
func (k *HDKey) DeriveChild(index uint32) (*HDKey, error) {
	child, err := k.key.NewChildKey(index)
	if err != nil {
		return nil, fmt.Errorf("derive child %d: %w", index, err)
	}
	return &HDKey{key: child}, nil
}

// DerivePath derives a key along a sequence of child numbers. Hardened
// steps use the private key, normal steps the public key.
func (k *HDKey) DerivePath(path DerivationPath) (*HDKey, error) {
	current := k
	for _, idx := range path {
		child, err := current.DeriveChild(idx)
		if err != nil {
			return nil, fmt.Errorf("derive %s: %w", path, err)
		}
		current = child
	}
	return current, nil
}

// PrivateKeyBytes returns the raw 32-byte private key.
// Returns nil if this is a public-only key.
func (k *HDKey) PrivateKeyBytes() []byte {
	if !k.key.IsPrivate {
		return nil
	}
	raw := k.key.Key
	if len(raw) == 33 && raw[0] == 0 {
		return raw[1:]
	}
	return raw
}

// PublicKeyBytes returns the compressed 33-byte public key.
func (k *HDKey) PublicKeyBytes() []byte {
	pub := k.key.PublicKey()
	return pub.Key
}

// IsPrivate returns true if this key contains a private key.
func (k *HDKey) IsPrivate() bool {
	return k.key.IsPrivate
}

// Neuter returns a public-key-only copy.
func (k *HDKey) Neuter() *HDKey {
	return &HDKey{key: k.key.PublicKey()}
}

// ExtendedKey returns the serializable form of k under the version bytes
// for network and format.
func (k *HDKey) ExtendedKey(network types.Network, format types.OutputFormat) (extkey.ExtendedKey, error) {
	version := extkey.Version(network, k.IsPrivate(), format)
	key := k.key.Key
	if k.IsPrivate() {
		key = k.PrivateKeyBytes()
	}
	return extkey.New(
		version,
		k.key.Depth,
		k.key.FingerPrint,
		binary.BigEndian.Uint32(k.key.ChildNumber),
		k.key.ChainCode,
		key,
	)
}
