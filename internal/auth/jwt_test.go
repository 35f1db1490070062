package auth

import (
	"testing"
	"time"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := &Manager{
		Secret:    []byte("test-secret"),
		AccessTTL: time.Hour,
		Issuer:    "portfolio-backend",
	}

	token, err := m.NewAccessToken("admin-123")
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.Subject != "admin-123" {
		t.Fatalf("expected subject admin-123, got %q", claims.Subject)
	}
	if claims.Role != "admin" {
		t.Fatalf("expected role admin, got %q", claims.Role)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := &Manager{Secret: []byte("secret-a"), AccessTTL: time.Hour}
	verifier := &Manager{Secret: []byte("secret-b"), AccessTTL: time.Hour}

	token, err := issuer.NewAccessToken("admin-123")
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}

	if _, err := verifier.Parse(token); err == nil {
		t.Fatalf("expected parse to fail for token signed with a different secret")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := &Manager{Secret: []byte("test-secret"), AccessTTL: -time.Minute}

	token, err := m.NewAccessToken("admin-123")
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}

	if _, err := m.Parse(token); err == nil {
		t.Fatalf("expected parse to fail for expired token")
	}
}
