package crypto

import (
	"errors"
	"testing"
)

var testKey = []byte("an-exactly-32-byte-long-test-key")

func TestEncryptDecryptRoundtrip(t *testing.T) {
	tests := []string{
		"ES9121000418450200051332",
		"",
		"texto con acentos: áéíóú ñ",
	}

	for _, plaintext := range tests {
		encoded, err := Encrypt(testKey, plaintext)
		if err != nil {
			t.Fatalf("Encrypt(%q): %v", plaintext, err)
		}
		if encoded == plaintext && plaintext != "" {
			t.Errorf("ciphertext equals plaintext")
		}

		got, err := Decrypt(testKey, encoded)
		if err != nil {
			t.Fatalf("Decrypt: %v", err)
		}
		if got != plaintext {
			t.Errorf("roundtrip = %q, want %q", got, plaintext)
		}
	}
}

func TestEncryptNonceUniqueness(t *testing.T) {
	a, _ := Encrypt(testKey, "ES9121000418450200051332")
	b, _ := Encrypt(testKey, "ES9121000418450200051332")
	if a == b {
		t.Error("two encryptions of the same plaintext produced identical ciphertext")
	}
}

func TestDecryptWrongKey(t *testing.T) {
	encoded, err := Encrypt(testKey, "ES9121000418450200051332")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	other := []byte("another-32-byte-key-for-testing!")
	if _, err := Decrypt(other, encoded); err == nil {
		t.Error("expected authentication failure with wrong key")
	}
}

func TestKeyLength(t *testing.T) {
	if _, err := Encrypt([]byte("short"), "x"); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("Encrypt short key: %v, want ErrInvalidKey", err)
	}
	if _, err := Decrypt([]byte("short"), "x"); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("Decrypt short key: %v, want ErrInvalidKey", err)
	}
}

func TestDecryptGarbage(t *testing.T) {
	if _, err := Decrypt(testKey, "not base64!!"); err == nil {
		t.Error("expected error for invalid base64")
	}
	if _, err := Decrypt(testKey, "QQ=="); !errors.Is(err, ErrCiphertextTooShort) {
		t.Errorf("short ciphertext: %v, want ErrCiphertextTooShort", err)
	}
}

func TestKeyFromHex(t *testing.T) {
	hexKey := "6c6f6e672d656e6f7567682d6865782d6b65792d666f722d6165732d32353621"
	key, err := KeyFromHex(hexKey)
	if err != nil {
		t.Fatalf("KeyFromHex: %v", err)
	}
	if len(key) != 32 {
		t.Errorf("key length = %d, want 32", len(key))
	}

	if _, err := KeyFromHex("abcd"); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("short hex: %v, want ErrInvalidKey", err)
	}
	if _, err := KeyFromHex("zz"); err == nil {
		t.Error("expected error for non-hex input")
	}
}
