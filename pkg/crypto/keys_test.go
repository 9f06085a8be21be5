package crypto

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex: %v", err)
	}
	return b
}

func TestPublicKeyFromPrivate_Generator(t *testing.T) {
	one := make([]byte, 32)
	one[31] = 1

	pub, err := PublicKeyFromPrivate(one)
	if err != nil {
		t.Fatalf("PublicKeyFromPrivate() error: %v", err)
	}
	want := mustHex(t, "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	if !bytes.Equal(pub, want) {
		t.Errorf("PublicKeyFromPrivate(1) = %x, want %x", pub, want)
	}
}

func TestValidatePrivateKey(t *testing.T) {
	tests := []struct {
		name    string
		key     []byte
		wantErr bool
	}{
		{"one", append(make([]byte, 31), 1), false},
		{"zero", make([]byte, 32), true},
		{"curve order", mustHex(t, "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"), true},
		{"order minus one", mustHex(t, "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140"), false},
		{"too short", make([]byte, 31), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePrivateKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePrivateKey() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	if err := ValidatePrivateKey(make([]byte, 32)); !errors.Is(err, ErrInvalidPrivateKey) {
		t.Errorf("zero key error = %v, want ErrInvalidPrivateKey", err)
	}
}

func TestValidatePublicKey(t *testing.T) {
	good := mustHex(t, "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	if err := ValidatePublicKey(good); err != nil {
		t.Errorf("ValidatePublicKey(G) error: %v", err)
	}

	bad := append([]byte{0x05}, good[1:]...)
	if err := ValidatePublicKey(bad); err == nil {
		t.Error("expected error for bad prefix byte")
	}

	if err := ValidatePublicKey(good[:32]); err == nil {
		t.Error("expected error for short key")
	}
}

func TestPrivateKey_Serialize(t *testing.T) {
	secret := mustHex(t, "e8f32e723decf4051aefac8e2c93c9c5b214313817cdb01a1494b917c8436b35")
	pk, err := PrivateKeyFromBytes(secret)
	if err != nil {
		t.Fatalf("PrivateKeyFromBytes() error: %v", err)
	}
	if !bytes.Equal(pk.Serialize(), secret) {
		t.Errorf("Serialize() = %x, want %x", pk.Serialize(), secret)
	}
	if len(pk.PublicKey()) != PublicKeySize {
		t.Errorf("PublicKey() length = %d, want %d", len(pk.PublicKey()), PublicKeySize)
	}
}
