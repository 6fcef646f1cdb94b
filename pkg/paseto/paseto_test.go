package pasetotoken

import (
	"testing"
	"time"

	paseto "aidanwoods.dev/go-paseto"
	"github.com/google/uuid"
)

func signToken(t *testing.T, keys Keys, mutate func(*paseto.Token)) string {
	t.Helper()

	now := time.Now()
	tok := paseto.NewToken()
	tok.SetIssuer("identity.fundacionaurora.org")
	tok.SetAudience("clinica-backend")
	tok.SetJti("test-jti")
	tok.SetIssuedAt(now)
	tok.SetNotBefore(now)
	tok.SetExpiration(now.Add(time.Hour))
	tok.SetSubject("test-subject")
	tok.SetString("typ", string(TokenTypeAccess))
	tok.SetString("uid", uuid.NewString())

	if mutate != nil {
		mutate(&tok)
	}

	return tok.V4Sign(*keys.Secret, nil)
}

func newTestManager(t *testing.T, keys Keys) *Manager {
	t.Helper()

	m, err := New(Config{
		Mode:     ModePublic,
		Issuer:   "identity.fundacionaurora.org",
		Audience: "clinica-backend",
	}, Keys{Mode: ModePublic, Public: keys.Public})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestVerify(t *testing.T) {
	keys := NewPublicKeys()
	m := newTestManager(t, keys)

	userID := uuid.New()
	token := signToken(t, keys, func(tok *paseto.Token) {
		tok.SetString("uid", userID.String())
	})

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.Type != TokenTypeAccess {
		t.Errorf("Type = %s, want access", claims.Type)
	}
	if claims.IsExpired() {
		t.Error("fresh token reported as expired")
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	keys := NewPublicKeys()
	m := newTestManager(t, keys)

	token := signToken(t, keys, func(tok *paseto.Token) {
		tok.SetExpiration(time.Now().Add(-time.Minute))
	})

	if _, err := m.Verify(token); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestVerifyRejectsWrongAudience(t *testing.T) {
	keys := NewPublicKeys()
	m := newTestManager(t, keys)

	token := signToken(t, keys, func(tok *paseto.Token) {
		tok.SetAudience("some-other-service")
	})

	if _, err := m.Verify(token); err == nil {
		t.Error("expected error for wrong audience")
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	m := newTestManager(t, NewPublicKeys())

	other := NewPublicKeys()
	token := signToken(t, other, nil)

	if _, err := m.Verify(token); err == nil {
		t.Error("expected error for token signed with different key")
	}
}

func TestVerifyLocalMode(t *testing.T) {
	keys := NewLocalKeys()
	m, err := New(Config{
		Mode:     ModeLocal,
		Issuer:   "identity.fundacionaurora.org",
		Audience: "clinica-backend",
	}, keys)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	userID := uuid.New()
	now := time.Now()
	tok := paseto.NewToken()
	tok.SetIssuer("identity.fundacionaurora.org")
	tok.SetAudience("clinica-backend")
	tok.SetJti("test-jti")
	tok.SetIssuedAt(now)
	tok.SetNotBefore(now)
	tok.SetExpiration(now.Add(time.Hour))
	tok.SetSubject("test-subject")
	tok.SetString("typ", string(TokenTypeAccess))
	tok.SetString("uid", userID.String())

	claims, err := m.Verify(tok.V4Encrypt(*keys.Symmetric, nil))
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := newTestManager(t, NewPublicKeys())

	if _, err := m.Verify("v4.public.not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}
