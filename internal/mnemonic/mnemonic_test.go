package mnemonic

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/tyler-smith/go-bip39"
	"github.com/tyler-smith/go-bip39/wordlists"

	"github.com/Klingon-tech/seed-utils/internal/wordlist"
	"github.com/Klingon-tech/seed-utils/pkg/types"
)

const abandonAbout = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func repeat(b byte, n int) []byte {
	return bytes.Repeat([]byte{b}, n)
}

// testEntropy returns deterministic, non-trivial entropy of n bytes.
func testEntropy(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i*37 + 11)
	}
	return out
}

func TestEncode_Vectors(t *testing.T) {
	tests := []struct {
		name    string
		entropy []byte
		want    string
	}{
		{"zero128", repeat(0x00, 16), abandonAbout},
		{"zero256", repeat(0x00, 32), strings.Repeat("abandon ", 23) + "art"},
		{"7f128", repeat(0x7f, 16), "legal winner thank year wave sausage worth useful legal winner thank yellow"},
		{"80128", repeat(0x80, 16), "letter advice cage absurd amount doctor acoustic avoid letter advice cage above"},
		{"ff128", repeat(0xff, 16), strings.Repeat("zoo ", 11) + "wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Encode(tt.entropy)
			if err != nil {
				t.Fatalf("Encode() error: %v", err)
			}
			if m.String() != tt.want {
				t.Errorf("Encode() = %q, want %q", m.String(), tt.want)
			}
		})
	}
}

func TestEncode_MatchesBIP39Library(t *testing.T) {
	for _, wc := range types.WordCounts {
		t.Run(wc.String(), func(t *testing.T) {
			entropy := testEntropy(wc.EntropyBytes())
			m, err := Encode(entropy)
			if err != nil {
				t.Fatalf("Encode() error: %v", err)
			}
			want, err := bip39.NewMnemonic(entropy)
			if err != nil {
				t.Fatalf("bip39.NewMnemonic() error: %v", err)
			}
			if m.String() != want {
				t.Errorf("Encode() = %q, want %q", m.String(), want)
			}
			if !bip39.IsMnemonicValid(m.String()) {
				t.Error("go-bip39 rejects encoded mnemonic")
			}
		})
	}
}

func TestEncode_InvalidLength(t *testing.T) {
	for _, n := range []int{0, 15, 17, 20, 33, 64} {
		if _, err := Encode(make([]byte, n)); !errors.Is(err, ErrInvalidEntropyLength) {
			t.Errorf("Encode(%d bytes) error = %v, want ErrInvalidEntropyLength", n, err)
		}
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	for _, wc := range types.WordCounts {
		t.Run(wc.String(), func(t *testing.T) {
			entropy := testEntropy(wc.EntropyBytes())
			m, err := Encode(entropy)
			if err != nil {
				t.Fatalf("Encode() error: %v", err)
			}
			if m.WordCount() != wc {
				t.Errorf("WordCount() = %v, want %v", m.WordCount(), wc)
			}
			got, cs, err := Decode(m)
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if !bytes.Equal(got, entropy) {
				t.Errorf("Decode() entropy = %x, want %x", got, entropy)
			}
			if cs != Checksum(entropy) {
				t.Errorf("Decode() checksum = %d, want %d", cs, Checksum(entropy))
			}
		})
	}
}

func TestChecksum(t *testing.T) {
	// SHA-256 of 16 zero bytes starts 0x37, of 32 zero bytes 0x66.
	if got := Checksum(repeat(0, 16)); got != 0x3 {
		t.Errorf("Checksum(zero128) = %#x, want 0x3", got)
	}
	if got := Checksum(repeat(0, 32)); got != 0x66 {
		t.Errorf("Checksum(zero256) = %#x, want 0x66", got)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		words string
		want  error
	}{
		{"empty", "", ErrInvalidWordCount},
		{"eleven", strings.Repeat("abandon ", 10) + "about", ErrInvalidWordCount},
		{"thirteen", abandonAbout + " abandon", ErrInvalidWordCount},
		{"count before words", strings.Repeat("bogus ", 11), ErrInvalidWordCount},
		{"unknown", strings.Repeat("abandon ", 11) + "bogus", ErrUnknownWord},
		{"case sensitive", "Abandon" + strings.TrimPrefix(abandonAbout, "abandon"), ErrUnknownWord},
		{"checksum", strings.Repeat("abandon ", 11) + "abandon", ErrInvalidChecksum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Decode(Mnemonic(strings.Fields(tt.words)))
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecode_UnknownWordPosition(t *testing.T) {
	words := strings.Fields(abandonAbout)
	words[4] = "xyzzy"
	_, _, err := Decode(Mnemonic(words))
	if !errors.Is(err, ErrUnknownWord) {
		t.Fatalf("Decode() error = %v, want ErrUnknownWord", err)
	}
	if !strings.Contains(err.Error(), `"xyzzy"`) || !strings.Contains(err.Error(), "position 5") {
		t.Errorf("error %q should name the word and its position", err)
	}
}

// Flipping the lowest bit of the last word only touches checksum bits, so
// the result must always fail the checksum.
func TestDecode_ChecksumBitFlip(t *testing.T) {
	for _, wc := range types.WordCounts {
		t.Run(wc.String(), func(t *testing.T) {
			m, err := Encode(testEntropy(wc.EntropyBytes()))
			if err != nil {
				t.Fatalf("Encode() error: %v", err)
			}
			idx, _ := wordlist.English.IndexOf(m[len(m)-1])
			flipped, _ := wordlist.English.WordAt(idx ^ 1)

			mutated := make(Mnemonic, len(m))
			copy(mutated, m)
			mutated[len(m)-1] = flipped
			if _, _, err := Decode(mutated); !errors.Is(err, ErrInvalidChecksum) {
				t.Errorf("Decode(mutated) error = %v, want ErrInvalidChecksum", err)
			}
		})
	}
}

func TestParse(t *testing.T) {
	m, err := Parse("  abandon\tabandon abandon  abandon abandon abandon\nabandon abandon abandon abandon abandon about ")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if m.String() != abandonAbout {
		t.Errorf("Parse().String() = %q, want %q", m.String(), abandonAbout)
	}

	if _, err := Parse("abandon about"); !errors.Is(err, ErrInvalidWordCount) {
		t.Errorf("Parse(short) error = %v, want ErrInvalidWordCount", err)
	}
}

func TestParse_Normalizes(t *testing.T) {
	// Fullwidth "abandon" decomposes to ASCII under NFKD.
	fullwidth := "\uff41\uff42\uff41\uff4e\uff44\uff4f\uff4e"
	m, err := Parse(strings.Repeat(fullwidth+" ", 11) + "about")
	if err != nil {
		t.Fatalf("Parse(fullwidth) error: %v", err)
	}
	if m.String() != abandonAbout {
		t.Errorf("Parse(fullwidth) = %q, want %q", m.String(), abandonAbout)
	}

	if _, err := Parse("Abandon" + strings.Repeat(" abandon", 10) + " about"); !errors.Is(err, ErrUnknownWord) {
		t.Errorf("Parse(capitalized) error = %v, want ErrUnknownWord", err)
	}
}

func TestSeed_TrezorVector(t *testing.T) {
	m, err := Parse(abandonAbout)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	want := "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04"
	got := m.Seed("TREZOR")
	if len(got) != SeedSize {
		t.Fatalf("Seed() length = %d, want %d", len(got), SeedSize)
	}
	if hex.EncodeToString(got) != want {
		t.Errorf("Seed() = %x, want %s", got, want)
	}
}

func TestSeed_MatchesBIP39Library(t *testing.T) {
	m, err := Encode(testEntropy(32))
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	for _, pass := range []string{"", "hunter2", "correct horse"} {
		want := bip39.NewSeed(m.String(), pass)
		if got := m.Seed(pass); !bytes.Equal(got, want) {
			t.Errorf("Seed(%q) = %x, want %x", pass, got, want)
		}
	}
}

func TestSeed_NormalizesPassphrase(t *testing.T) {
	m, _ := Parse(abandonAbout)
	composed := m.Seed("caf\u00e9")
	decomposed := m.Seed("cafe\u0301")
	if !bytes.Equal(composed, decomposed) {
		t.Error("composed and decomposed passphrases should give the same seed")
	}
	if bytes.Equal(composed, m.Seed("cafe")) {
		t.Error("accented passphrase should differ from plain one")
	}
}

func TestEncodeWith_CustomWordlist(t *testing.T) {
	reversed := make([]string, len(wordlists.English))
	for i, w := range wordlists.English {
		reversed[len(reversed)-1-i] = w
	}
	wl, err := wordlist.New(reversed)
	if err != nil {
		t.Fatalf("wordlist.New() error: %v", err)
	}

	entropy := testEntropy(24)
	m, err := EncodeWith(wl, entropy)
	if err != nil {
		t.Fatalf("EncodeWith() error: %v", err)
	}
	english, _ := Encode(entropy)
	for i := range m {
		ei, _ := wordlist.English.IndexOf(english[i])
		ri, _ := wl.IndexOf(m[i])
		if ei != ri {
			t.Fatalf("word %d index = %d, want %d", i, ri, ei)
		}
	}

	got, _, err := DecodeWith(wl, m)
	if err != nil {
		t.Fatalf("DecodeWith() error: %v", err)
	}
	if !bytes.Equal(got, entropy) {
		t.Errorf("DecodeWith() = %x, want %x", got, entropy)
	}
}
