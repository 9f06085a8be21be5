package extkey

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

// Cross-check the payload codec against btcutil's hdkeychain.

func TestParse_MatchesHDKeychain(t *testing.T) {
	keys := []string{
		artefactXprv, artefactXpub, artefactTprv, artefactVprv, artefactVpub,
		account84Xprv, account84Xpub, account84Zprv, account84Zpub,
		abandonXprv, abandonZprv,
	}
	for _, s := range keys {
		t.Run(s[:4], func(t *testing.T) {
			want, err := hdkeychain.NewKeyFromString(s)
			if err != nil {
				t.Fatalf("hdkeychain.NewKeyFromString() error: %v", err)
			}
			got := mustParse(t, s)

			if !bytes.Equal(got.Version[:], want.Version()) {
				t.Errorf("Version = %x, want %x", got.Version, want.Version())
			}
			if got.Depth != want.Depth() {
				t.Errorf("Depth = %d, want %d", got.Depth, want.Depth())
			}
			if fp := binary.BigEndian.Uint32(got.ParentFingerprint[:]); fp != want.ParentFingerprint() {
				t.Errorf("ParentFingerprint = %#x, want %#x", fp, want.ParentFingerprint())
			}
			if got.ChildNumber != want.ChildIndex() {
				t.Errorf("ChildNumber = %#x, want %#x", got.ChildNumber, want.ChildIndex())
			}
			if !bytes.Equal(got.ChainCode[:], want.ChainCode()) {
				t.Errorf("ChainCode = %x, want %x", got.ChainCode, want.ChainCode())
			}
			if got.IsPrivate() != want.IsPrivate() {
				t.Errorf("IsPrivate() = %v, want %v", got.IsPrivate(), want.IsPrivate())
			}
			if got.String() != want.String() {
				t.Errorf("String() = %s, want %s", got, want)
			}
		})
	}
}

func TestNeuter_MatchesHDKeychain(t *testing.T) {
	// hdkeychain only knows the xprv and tprv version pairs.
	for _, s := range []string{artefactXprv, artefactTprv, account84Xprv, abandonXprv} {
		t.Run(s[:4], func(t *testing.T) {
			hk, err := hdkeychain.NewKeyFromString(s)
			if err != nil {
				t.Fatalf("hdkeychain.NewKeyFromString() error: %v", err)
			}
			want, err := hk.Neuter()
			if err != nil {
				t.Fatalf("hdkeychain Neuter() error: %v", err)
			}
			got, err := mustParse(t, s).Neuter()
			if err != nil {
				t.Fatalf("Neuter() error: %v", err)
			}
			if got.String() != want.String() {
				t.Errorf("Neuter() = %s, want %s", got, want)
			}
		})
	}
}

func TestParse_RejectsLikeHDKeychain(t *testing.T) {
	bad := artefactXpub[:len(artefactXpub)-1] + "N"
	if _, err := hdkeychain.NewKeyFromString(bad); err == nil {
		t.Fatal("hdkeychain accepted a corrupted key")
	}
	if _, err := Parse(bad); err == nil {
		t.Error("Parse() accepted a corrupted key")
	}
}
