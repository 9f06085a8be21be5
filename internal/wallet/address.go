package wallet

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/Klingon-tech/seed-utils/pkg/types"
)

// ChainParams returns the btcd parameters for a network.
func ChainParams(network types.Network) *chaincfg.Params {
	if network == types.Testnet {
		return &chaincfg.TestNet3Params
	}
	return &chaincfg.MainNetParams
}

// Address renders the single-key address of k's public key for format:
// P2PKH for legacy, P2SH-P2WPKH for p2sh-segwit and P2WPKH for native segwit.
func (k *HDKey) Address(network types.Network, format types.OutputFormat) (string, error) {
	params := ChainParams(network)
	pkHash := btcutil.Hash160(k.PublicKeyBytes())

	var (
		addr btcutil.Address
		err  error
	)
	switch format {
	case types.FormatLegacy:
		addr, err = btcutil.NewAddressPubKeyHash(pkHash, params)
	case types.FormatP2SHSegwit:
		// OP_0 <20-byte key hash>
		redeem := append([]byte{0x00, 0x14}, pkHash...)
		addr, err = btcutil.NewAddressScriptHash(redeem, params)
	case types.FormatNativeSegwit:
		addr, err = btcutil.NewAddressWitnessPubKeyHash(pkHash, params)
	default:
		return "", fmt.Errorf("no address type for format %v", format)
	}
	if err != nil {
		return "", fmt.Errorf("encode %v address: %w", format, err)
	}
	return addr.EncodeAddress(), nil
}

// Addresses returns the first n addresses of the given chain (ChangeExternal
// or ChangeInternal) below the account key.
func (k *HDKey) Addresses(network types.Network, format types.OutputFormat, change uint32, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	if change != ChangeExternal && change != ChangeInternal {
		return nil, fmt.Errorf("change must be %d or %d, got %d", ChangeExternal, ChangeInternal, change)
	}
	chain, err := k.DeriveChild(change)
	if err != nil {
		return nil, err
	}
	out := make([]string, n)
	for i := range out {
		child, err := chain.DeriveChild(uint32(i))
		if err != nil {
			return nil, err
		}
		if out[i], err = child.Address(network, format); err != nil {
			return nil, err
		}
	}
	return out, nil
}
