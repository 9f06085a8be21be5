// Package extkey holds the serialized form of BIP32 extended keys and
// remaps them between the xpub/ypub/zpub family of version prefixes.
package extkey

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"

	"github.com/Klingon-tech/seed-utils/internal/log"
	"github.com/Klingon-tech/seed-utils/pkg/crypto"
	"github.com/Klingon-tech/seed-utils/pkg/types"
)

const (
	// PayloadLen is the serialized length before the checksum:
	// version(4) || depth(1) || parent fingerprint(4) || child number(4) ||
	// chain code(32) || key data(33).
	PayloadLen = 4 + 1 + 4 + 4 + 32 + 33

	checksumLen = 4
)

var (
	ErrInvalidLength   = errors.New("extended key has invalid length")
	ErrBadChecksum     = errors.New("extended key has bad checksum")
	ErrUnknownVersion  = errors.New("unknown extended key version")
	ErrKeyKindMismatch = errors.New("version does not match key data kind")
	ErrInvalidKey      = errors.New("invalid extended key material")
)

// ExtendedKey is a BIP32 extended key in its serialized layout.
// Private key data carries a leading 0x00 byte.
type ExtendedKey struct {
	Version           [4]byte
	Depth             uint8
	ParentFingerprint [4]byte
	ChildNumber       uint32
	ChainCode         [32]byte
	Key               [33]byte
}

// New builds an ExtendedKey from raw fields. key is either a 32-byte
// private scalar or a 33-byte compressed public key.
func New(version [4]byte, depth uint8, parentFP []byte, childNumber uint32, chainCode, key []byte) (ExtendedKey, error) {
	var k ExtendedKey
	if len(parentFP) != 4 || len(chainCode) != 32 {
		return k, fmt.Errorf("%w: fingerprint %d bytes, chain code %d bytes", ErrInvalidKey, len(parentFP), len(chainCode))
	}
	k.Version = version
	k.Depth = depth
	k.ChildNumber = childNumber
	copy(k.ParentFingerprint[:], parentFP)
	copy(k.ChainCode[:], chainCode)

	switch len(key) {
	case crypto.PrivateKeySize:
		if err := crypto.ValidatePrivateKey(key); err != nil {
			return k, fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}
		copy(k.Key[1:], key)
	case crypto.PublicKeySize:
		if err := crypto.ValidatePublicKey(key); err != nil {
			return k, fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}
		copy(k.Key[:], key)
	default:
		return k, fmt.Errorf("%w: key data is %d bytes", ErrInvalidKey, len(key))
	}
	return k, nil
}

// IsPrivate reports whether the key data holds a private scalar.
func (k ExtendedKey) IsPrivate() bool {
	return k.Key[0] == 0x00
}

// Info returns the network, kind and format encoded in the version.
func (k ExtendedKey) Info() (VersionInfo, bool) {
	return Lookup(k.Version)
}

// Remap returns a copy of k presented under format. Only the version bytes
// change; network and key kind are kept. Keys with an unknown version are
// returned unchanged.
func (k ExtendedKey) Remap(format types.OutputFormat) ExtendedKey {
	info, ok := k.Info()
	if !ok {
		return k
	}
	k.Version = Version(info.Network, info.Private, format)
	return k
}

// Neuter returns the public form of a private key under the same network
// and format. Public keys are returned unchanged.
func (k ExtendedKey) Neuter() (ExtendedKey, error) {
	if !k.IsPrivate() {
		return k, nil
	}
	info, ok := k.Info()
	if !ok {
		return k, fmt.Errorf("%w: %x", ErrUnknownVersion, k.Version)
	}
	pub, err := crypto.PublicKeyFromPrivate(k.Key[1:])
	if err != nil {
		return k, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	k.Version = Version(info.Network, false, info.Format)
	copy(k.Key[:], pub)
	return k, nil
}

// Serialize returns the 82-byte payload with its double-SHA-256 checksum.
func (k ExtendedKey) Serialize() []byte {
	buf := make([]byte, 0, PayloadLen+checksumLen)
	buf = append(buf, k.Version[:]...)
	buf = append(buf, k.Depth)
	buf = append(buf, k.ParentFingerprint[:]...)
	buf = binary.BigEndian.AppendUint32(buf, k.ChildNumber)
	buf = append(buf, k.ChainCode[:]...)
	buf = append(buf, k.Key[:]...)
	sum := crypto.Checksum4(buf)
	return append(buf, sum[:]...)
}

// String returns the base58 form, e.g. "xpub6C...".
func (k ExtendedKey) String() string {
	return base58.Encode(k.Serialize())
}

// Parse decodes a base58 extended key of any known version.
func Parse(s string) (ExtendedKey, error) {
	var k ExtendedKey

	decoded := base58.Decode(s)
	if len(decoded) != PayloadLen+checksumLen {
		return k, fmt.Errorf("%w: %d bytes", ErrInvalidLength, len(decoded))
	}
	payload := decoded[:PayloadLen]
	sum := crypto.Checksum4(payload)
	if !bytes.Equal(sum[:], decoded[PayloadLen:]) {
		return k, ErrBadChecksum
	}

	copy(k.Version[:], payload[0:4])
	k.Depth = payload[4]
	copy(k.ParentFingerprint[:], payload[5:9])
	k.ChildNumber = binary.BigEndian.Uint32(payload[9:13])
	copy(k.ChainCode[:], payload[13:45])
	copy(k.Key[:], payload[45:78])

	info, ok := Lookup(k.Version)
	if !ok {
		return k, fmt.Errorf("%w: %x", ErrUnknownVersion, k.Version)
	}
	if info.Private != k.IsPrivate() {
		return k, fmt.Errorf("%w: %s", ErrKeyKindMismatch, info.Prefix)
	}

	var err error
	if k.IsPrivate() {
		err = crypto.ValidatePrivateKey(k.Key[1:])
	} else {
		err = crypto.ValidatePublicKey(k.Key[:])
	}
	if err != nil {
		return k, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return k, nil
}

// RemapString parses s, remaps it to format and re-serializes it.
func RemapString(s string, format types.OutputFormat) (string, error) {
	k, err := Parse(s)
	if err != nil {
		return "", err
	}
	out := k.Remap(format)
	from, _ := k.Info()
	to, _ := out.Info()
	log.ExtKey.Debug().
		Str("from", from.Prefix).
		Str("to", to.Prefix).
		Msg("Remapped extended key")
	return out.String(), nil
}
