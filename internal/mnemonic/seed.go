package mnemonic

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

const (
	// SeedSize is the length of a BIP39 seed in bytes.
	SeedSize = 64

	seedIterations = 2048
	saltPrefix     = "mnemonic"
)

// Seed stretches the mnemonic and passphrase into a 64-byte seed.
// Both are NFKD normalised first. The empty passphrase is valid.
func (m Mnemonic) Seed(passphrase string) []byte {
	password := norm.NFKD.String(m.String())
	salt := saltPrefix + norm.NFKD.String(passphrase)
	return pbkdf2.Key([]byte(password), []byte(salt), seedIterations, SeedSize, sha512.New)
}
