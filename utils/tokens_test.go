package utils

import (
	"testing"
	"time"
)

func TestNewManagerRejectsEmptyKey(t *testing.T) {
	if _, err := NewManager("", time.Hour); err == nil {
		t.Fatal("expected error for empty signing key")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	m, err := NewManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewManager returned error: %v", err)
	}

	token, err := m.NewJWT(42, "warga01", "User")
	if err != nil {
		t.Fatalf("NewJWT returned error: %v", err)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Name != "warga01" {
		t.Errorf("expected name warga01, got %q", claims.Name)
	}
	if claims.Level != "User" {
		t.Errorf("expected level User, got %q", claims.Level)
	}
	if claims.Id == "" {
		t.Error("expected a non-empty token id")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m, err := NewManager("test-secret", -time.Hour)
	if err != nil {
		t.Fatalf("NewManager returned error: %v", err)
	}
	// negative ttl falls back to the default, so force expiry another way
	m.ttl = -time.Hour

	token, err := m.NewJWT(1, "a", "User")
	if err != nil {
		t.Fatalf("NewJWT returned error: %v", err)
	}

	if _, err := m.Parse(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestParseRejectsWrongKey(t *testing.T) {
	m1, _ := NewManager("key-one", time.Hour)
	m2, _ := NewManager("key-two", time.Hour)

	token, err := m1.NewJWT(1, "a", "User")
	if err != nil {
		t.Fatalf("NewJWT returned error: %v", err)
	}

	if _, err := m2.Parse(token); err == nil {
		t.Fatal("expected token signed with another key to be rejected")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	m, _ := NewManager("test-secret", time.Hour)
	if _, err := m.Parse("not.a.token"); err == nil {
		t.Fatal("expected malformed token to be rejected")
	}
}

func TestTokenIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewTokenID()
		if seen[id] {
			t.Fatalf("duplicate token id after %d draws: %s", i, id)
		}
		seen[id] = true
	}
}
