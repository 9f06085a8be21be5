package extkey

import "github.com/Klingon-tech/seed-utils/pkg/types"

// VersionInfo describes what a 4-byte version prefix stands for.
type VersionInfo struct {
	Network types.Network
	Private bool
	Format  types.OutputFormat
	Prefix  string // human readable prefix, e.g. "zpub"
}

type versionKey struct {
	network types.Network
	private bool
	format  types.OutputFormat
}

var (
	byVersion = make(map[[4]byte]VersionInfo)
	byKey     = make(map[versionKey][4]byte)
)

func init() {
	for _, e := range []struct {
		version [4]byte
		info    VersionInfo
	}{
		{[4]byte{0x04, 0x88, 0xad, 0xe4}, VersionInfo{types.Mainnet, true, types.FormatLegacy, "xprv"}},
		{[4]byte{0x04, 0x88, 0xb2, 0x1e}, VersionInfo{types.Mainnet, false, types.FormatLegacy, "xpub"}},
		{[4]byte{0x04, 0x9d, 0x78, 0x78}, VersionInfo{types.Mainnet, true, types.FormatP2SHSegwit, "yprv"}},
		{[4]byte{0x04, 0x9d, 0x7c, 0xb2}, VersionInfo{types.Mainnet, false, types.FormatP2SHSegwit, "ypub"}},
		{[4]byte{0x04, 0xb2, 0x43, 0x0c}, VersionInfo{types.Mainnet, true, types.FormatNativeSegwit, "zprv"}},
		{[4]byte{0x04, 0xb2, 0x47, 0x46}, VersionInfo{types.Mainnet, false, types.FormatNativeSegwit, "zpub"}},

		{[4]byte{0x04, 0x35, 0x83, 0x94}, VersionInfo{types.Testnet, true, types.FormatLegacy, "tprv"}},
		{[4]byte{0x04, 0x35, 0x87, 0xcf}, VersionInfo{types.Testnet, false, types.FormatLegacy, "tpub"}},
		{[4]byte{0x04, 0x4a, 0x4e, 0x28}, VersionInfo{types.Testnet, true, types.FormatP2SHSegwit, "uprv"}},
		{[4]byte{0x04, 0x4a, 0x52, 0x62}, VersionInfo{types.Testnet, false, types.FormatP2SHSegwit, "upub"}},
		{[4]byte{0x04, 0x5f, 0x18, 0xbc}, VersionInfo{types.Testnet, true, types.FormatNativeSegwit, "vprv"}},
		{[4]byte{0x04, 0x5f, 0x1c, 0xf6}, VersionInfo{types.Testnet, false, types.FormatNativeSegwit, "vpub"}},
	} {
		byVersion[e.version] = e.info
		byKey[versionKey{e.info.Network, e.info.Private, e.info.Format}] = e.version
	}
}

// Version returns the version bytes for a network, key kind and format.
// Unknown networks fall back to mainnet.
func Version(network types.Network, private bool, format types.OutputFormat) [4]byte {
	if !network.Valid() {
		network = types.Mainnet
	}
	return byKey[versionKey{network, private, format}]
}

// Lookup returns what a version prefix stands for.
func Lookup(version [4]byte) (VersionInfo, bool) {
	info, ok := byVersion[version]
	return info, ok
}
