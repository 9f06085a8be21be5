package types

import (
	"fmt"
	"strings"
)

// Network selects the BIP32 version bytes and the BIP44 coin type.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

// CoinType returns the (unhardened) BIP44 coin type: 0 for Bitcoin, 1 for testnet.
func (n Network) CoinType() uint32 {
	if n == Testnet {
		return 1
	}
	return 0
}

// Valid reports whether n is a known network.
func (n Network) Valid() bool {
	return n == Mainnet || n == Testnet
}

// ParseNetwork parses "mainnet" or "testnet".
func ParseNetwork(s string) (Network, error) {
	n := Network(strings.ToLower(strings.TrimSpace(s)))
	if !n.Valid() {
		return "", fmt.Errorf("network must be %q or %q, got %q", Mainnet, Testnet, s)
	}
	return n, nil
}
