package wallet

import (
	"fmt"

	"github.com/Klingon-tech/seed-utils/internal/extkey"
	"github.com/Klingon-tech/seed-utils/internal/log"
	"github.com/Klingon-tech/seed-utils/internal/mnemonic"
	"github.com/Klingon-tech/seed-utils/pkg/types"
)

// MaxAddresses caps the address preview per account.
const MaxAddresses = 1000

// RootParams selects the form of the master key.
// The zero Network means mainnet.
type RootParams struct {
	Format  types.OutputFormat
	Private bool
	Network types.Network
}

// AccountParams selects which account keys to derive.
type AccountParams struct {
	Format    types.OutputFormat
	Private   bool
	Network   types.Network
	Index     uint32
	Count     uint32
	Workers   int
	Addresses int  // addresses to preview per account
	Change    bool // preview the internal (change) chain instead of receive
}

// AccountKey is one account-level extended key, m/purpose'/coin'/index'.
// Addresses[i] sits at AddressPath.Child(i).
type AccountKey struct {
	Index       uint32
	Path        DerivationPath
	Key         extkey.ExtendedKey
	AddressPath DerivationPath
	Addresses   []string
}

// DeriveRootKey returns the depth-0 master key of m, or its public form,
// under the version bytes of p.Format and p.Network.
func DeriveRootKey(m mnemonic.Mnemonic, passphrase string, p RootParams) (extkey.ExtendedKey, error) {
	if p.Network == "" {
		p.Network = types.Mainnet
	}
	if err := validateKind(p.Format, p.Network); err != nil {
		return extkey.ExtendedKey{}, err
	}
	master, err := MasterKeyFromMnemonic(m, passphrase)
	if err != nil {
		return extkey.ExtendedKey{}, err
	}
	if !p.Private {
		master = master.Neuter()
	}

	log.Wallet.Debug().
		Str("format", p.Format.String()).
		Bool("private", p.Private).
		Msg("Derived root key")
	return master.ExtendedKey(p.Network, p.Format)
}

// DerivePathKey returns the key of m at an arbitrary path, or its public
// form, under the version bytes of p.Format and p.Network.
func DerivePathKey(m mnemonic.Mnemonic, passphrase string, path DerivationPath, p RootParams) (extkey.ExtendedKey, error) {
	if p.Network == "" {
		p.Network = types.Mainnet
	}
	if err := validateKind(p.Format, p.Network); err != nil {
		return extkey.ExtendedKey{}, err
	}
	master, err := MasterKeyFromMnemonic(m, passphrase)
	if err != nil {
		return extkey.ExtendedKey{}, err
	}
	key, err := master.DerivePath(path)
	if err != nil {
		return extkey.ExtendedKey{}, err
	}
	if !p.Private {
		key = key.Neuter()
	}

	log.Wallet.Debug().
		Str("path", path.String()).
		Str("format", p.Format.String()).
		Bool("private", p.Private).
		Msg("Derived path key")
	return key.ExtendedKey(p.Network, p.Format)
}

// DeriveAccountKeys derives p.Count account keys starting at account p.Index,
// returned in ascending index order. Count 0 yields an empty result.
func DeriveAccountKeys(m mnemonic.Mnemonic, passphrase string, p AccountParams) ([]AccountKey, error) {
	if p.Network == "" {
		p.Network = types.Mainnet
	}
	if err := validateKind(p.Format, p.Network); err != nil {
		return nil, err
	}
	if p.Addresses < 0 || p.Addresses > MaxAddresses {
		return nil, fmt.Errorf("address preview must be 0..%d, got %d", MaxAddresses, p.Addresses)
	}
	if err := checkRange(p.Index, p.Count); err != nil {
		return nil, err
	}
	master, err := MasterKeyFromMnemonic(m, passphrase)
	if err != nil {
		return nil, err
	}

	done := log.Benchmark("derive_account_keys")
	defer done()

	out := make([]AccountKey, p.Count)
	err = forEach(int(p.Count), p.Workers, func(i int) error {
		ak, err := deriveAccount(master, p, p.Index+uint32(i))
		if err != nil {
			return err
		}
		out[i] = ak
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Wallet.Debug().
		Str("format", p.Format.String()).
		Uint32("index", p.Index).
		Uint32("count", p.Count).
		Int("addresses", p.Addresses).
		Bool("change", p.Change).
		Msg("Derived account keys")
	return out, nil
}

func deriveAccount(master *HDKey, p AccountParams, index uint32) (AccountKey, error) {
	path, err := AccountPath(p.Format, p.Network, index)
	if err != nil {
		return AccountKey{}, err
	}
	account, err := master.DerivePath(path)
	if err != nil {
		return AccountKey{}, err
	}

	change := uint32(ChangeExternal)
	if p.Change {
		change = ChangeInternal
	}
	addrs, err := account.Addresses(p.Network, p.Format, change, p.Addresses)
	if err != nil {
		return AccountKey{}, fmt.Errorf("account %d addresses: %w", index, err)
	}

	if !p.Private {
		account = account.Neuter()
	}
	ek, err := account.ExtendedKey(p.Network, p.Format)
	if err != nil {
		return AccountKey{}, err
	}
	return AccountKey{
		Index:       index,
		Path:        path,
		Key:         ek,
		AddressPath: path.Child(change),
		Addresses:   addrs,
	}, nil
}

func validateKind(format types.OutputFormat, network types.Network) error {
	if !format.Valid() {
		return fmt.Errorf("unknown output format %v", format)
	}
	if !network.Valid() {
		return fmt.Errorf("unknown network %q", network)
	}
	return nil
}
