package password

import (
	"strings"
	"testing"
)

func TestHashProducesPHCString(t *testing.T) {
	hash, err := Hash("cl4ve-de-prueba")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$v=") {
		t.Errorf("hash is not PHC argon2id: %s", hash)
	}
	if got := len(strings.Split(hash, "$")); got != 6 {
		t.Errorf("PHC segments = %d, want 6", got)
	}
}

func TestVerify(t *testing.T) {
	hash, err := Hash("cl4ve-de-prueba")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	tests := []struct {
		name     string
		hash     string
		password string
		wantErr  error
	}{
		{"matching password", hash, "cl4ve-de-prueba", nil},
		{"wrong password", hash, "otra-clave", ErrMismatch},
		{"empty password", hash, "", ErrMismatch},
		{"not a hash at all", "plaintext-leak", "cl4ve-de-prueba", ErrInvalidHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Verify(tt.hash, tt.password); err != tt.wantErr {
				t.Errorf("Verify() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaltsDiffer(t *testing.T) {
	first, _ := Hash("misma-clave")
	second, _ := Hash("misma-clave")

	if first == second {
		t.Error("equal hashes for the same password; salt is not random")
	}
	if err := Verify(first, "misma-clave"); err != nil {
		t.Errorf("first hash does not verify: %v", err)
	}
	if err := Verify(second, "misma-clave"); err != nil {
		t.Errorf("second hash does not verify: %v", err)
	}
}

func TestHashWithParams(t *testing.T) {
	p := &Params{
		Memory:      16 * 1024,
		Iterations:  2,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}

	hash, err := HashWithParams("cl4ve-de-prueba", p)
	if err != nil {
		t.Fatalf("HashWithParams: %v", err)
	}

	if !strings.Contains(hash, "m=16384,t=2,p=1") {
		t.Errorf("params not encoded in hash: %s", hash)
	}
	if err := Verify(hash, "cl4ve-de-prueba"); err != nil {
		t.Errorf("Verify: %v", err)
	}

	// Nil params fall back to the defaults.
	fallback, err := HashWithParams("cl4ve-de-prueba", nil)
	if err != nil {
		t.Fatalf("HashWithParams(nil): %v", err)
	}
	if err := Verify(fallback, "cl4ve-de-prueba"); err != nil {
		t.Errorf("Verify fallback: %v", err)
	}
}

func TestNeedsRehash(t *testing.T) {
	current, _ := Hash("cl4ve-de-prueba")
	if NeedsRehash(current) {
		t.Error("NeedsRehash = true for a hash with current params")
	}

	weaker, _ := HashWithParams("cl4ve-de-prueba", &Params{
		Memory:      16 * 1024,
		Iterations:  2,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	})
	if !NeedsRehash(weaker) {
		t.Error("NeedsRehash = false for a hash with outdated params")
	}
}

func TestVerifyRejectsMalformedHashes(t *testing.T) {
	for _, hash := range []string{
		"",
		"$argon2i$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA", // argon2i, not argon2id
		"$argon2id$v=19$m=sixtyfour$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=2$c2FsdA",
	} {
		if err := Verify(hash, "cualquiera"); err != ErrInvalidHash {
			t.Errorf("Verify(%q) = %v, want ErrInvalidHash", hash, err)
		}
	}
}

func TestGenerate(t *testing.T) {
	if got := len(Generate(0)); got != 16 {
		t.Errorf("Generate(0) length = %d, want default 16", got)
	}
	if got := len(Generate(24)); got != 24 {
		t.Errorf("Generate(24) length = %d", got)
	}

	seen := map[string]bool{}
	for i := 0; i < 64; i++ {
		p := Generate(16)
		if seen[p] {
			t.Fatal("Generate repeated a password")
		}
		seen[p] = true
	}
}

func TestMatch(t *testing.T) {
	hash, _ := Hash("cl4ve-de-prueba")

	if !Match(hash, "cl4ve-de-prueba") {
		t.Error("Match = false for the right password")
	}
	if Match(hash, "otra-clave") {
		t.Error("Match = true for the wrong password")
	}
	if Match("no-es-un-hash", "cl4ve-de-prueba") {
		t.Error("Match = true for a malformed hash")
	}
}
