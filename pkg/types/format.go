package types

import (
	"fmt"
	"strings"
)

// OutputFormat is the script convention an extended key is presented under.
// It only selects version bytes and the BIP44-style purpose; key material is
// the same for every format.
type OutputFormat uint8

const (
	// FormatLegacy is BIP44 P2PKH (xpub/xprv).
	FormatLegacy OutputFormat = iota
	// FormatP2SHSegwit is BIP49 P2SH-P2WPKH (ypub/yprv).
	FormatP2SHSegwit
	// FormatNativeSegwit is BIP84 P2WPKH (zpub/zprv).
	FormatNativeSegwit
)

// OutputFormats lists every format.
var OutputFormats = []OutputFormat{FormatLegacy, FormatP2SHSegwit, FormatNativeSegwit}

// Purpose returns the (unhardened) purpose index of the account path.
func (f OutputFormat) Purpose() uint32 {
	switch f {
	case FormatP2SHSegwit:
		return 49
	case FormatNativeSegwit:
		return 84
	default:
		return 44
	}
}

// Valid reports whether f is a known format.
func (f OutputFormat) Valid() bool {
	return f <= FormatNativeSegwit
}

// String returns the canonical format name.
func (f OutputFormat) String() string {
	switch f {
	case FormatLegacy:
		return "legacy"
	case FormatP2SHSegwit:
		return "p2sh-segwit"
	case FormatNativeSegwit:
		return "native-segwit"
	default:
		return fmt.Sprintf("OutputFormat(%d)", uint8(f))
	}
}

// ParseOutputFormat parses a format name. The mainnet key prefixes
// ("xpub", "yprv", ...) and the BIP numbers ("bip84") are accepted as aliases.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "legacy", "p2pkh", "bip44", "x", "xpub", "xprv":
		return FormatLegacy, nil
	case "p2sh-segwit", "p2sh-p2wpkh", "nested-segwit", "bip49", "y", "ypub", "yprv":
		return FormatP2SHSegwit, nil
	case "native-segwit", "p2wpkh", "segwit", "bip84", "z", "zpub", "zprv":
		return FormatNativeSegwit, nil
	default:
		return 0, fmt.Errorf("unknown output format %q (want legacy, p2sh-segwit or native-segwit)", s)
	}
}
