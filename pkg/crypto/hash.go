// Package crypto provides the hash and secp256k1 primitives used by BIP39/BIP32.
package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"

	"github.com/Klingon-tech/seed-utils/pkg/types"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Hash computes a SHA-256 hash of the input data.
func Hash(data []byte) types.Hash {
	return sha256.Sum256(data)
}

// DoubleHash computes Hash(Hash(data)), the Base58Check checksum hash.
func DoubleHash(data []byte) types.Hash {
	return types.Hash(chainhash.DoubleHashH(data))
}

// Checksum4 returns the first 4 bytes of DoubleHash(data).
func Checksum4(data []byte) [4]byte {
	var cs [4]byte
	copy(cs[:], chainhash.DoubleHashB(data)[:4])
	return cs
}

// HMACSHA512 computes HMAC-SHA512(key, data).
func HMACSHA512(key, data []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}
