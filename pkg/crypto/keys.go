package crypto

import (
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Key sizes.
const (
	PrivateKeySize = 32
	PublicKeySize  = 33
)

// ErrInvalidPrivateKey is returned for scalars that are zero or not below the curve order.
var ErrInvalidPrivateKey = errors.New("private key is not a valid secp256k1 scalar")

// PrivateKey wraps a secp256k1 private key.
type PrivateKey struct {
	key *secp256k1.PrivateKey
}

// PrivateKeyFromBytes creates a PrivateKey from a 32-byte secret.
// The secret must be in [1, n-1].
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if err := ValidatePrivateKey(b); err != nil {
		return nil, err
	}
	return &PrivateKey{key: secp256k1.PrivKeyFromBytes(b)}, nil
}

// PublicKey returns the compressed 33-byte public key.
func (pk *PrivateKey) PublicKey() []byte {
	return pk.key.PubKey().SerializeCompressed()
}

// Serialize returns the 32-byte private key scalar.
func (pk *PrivateKey) Serialize() []byte {
	return pk.key.Serialize()
}

// Zero securely zeroes the private key memory.
func (pk *PrivateKey) Zero() {
	pk.key.Zero()
}

// ValidatePrivateKey checks that b is a 32-byte scalar in [1, n-1].
func ValidatePrivateKey(b []byte) error {
	if len(b) != PrivateKeySize {
		return fmt.Errorf("private key must be %d bytes, got %d", PrivateKeySize, len(b))
	}
	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(b); overflow || s.IsZero() {
		return ErrInvalidPrivateKey
	}
	return nil
}

// PublicKeyFromPrivate returns the compressed public key for a 32-byte secret.
func PublicKeyFromPrivate(b []byte) ([]byte, error) {
	pk, err := PrivateKeyFromBytes(b)
	if err != nil {
		return nil, err
	}
	defer pk.Zero()
	return pk.PublicKey(), nil
}

// ValidatePublicKey checks that b is a compressed point on the curve.
func ValidatePublicKey(b []byte) error {
	if len(b) != PublicKeySize {
		return fmt.Errorf("public key must be %d bytes, got %d", PublicKeySize, len(b))
	}
	if _, err := secp256k1.ParsePubKey(b); err != nil {
		return fmt.Errorf("parse public key: %w", err)
	}
	return nil
}
