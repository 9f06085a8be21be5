// Package types defines the primitive value types shared by the seed tools.
package types

import "encoding/hex"

// HashSize is the length of a SHA-256 digest in bytes.
const HashSize = 32

// Hash represents a 256-bit hash value.
type Hash [HashSize]byte

// String returns the hex-encoded hash.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}
