package utils

import (
	"testing"
	"time"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	t.Parallel()

	claims := SessionClaims{SID: "abc123", UserID: 42, Username: "alice"}
	tok, err := NewSessionToken("super-secret", claims, time.Hour)
	if err != nil {
		t.Fatalf("NewSessionToken error: %v", err)
	}

	got, err := ParseSessionToken("super-secret", tok)
	if err != nil {
		t.Fatalf("ParseSessionToken error: %v", err)
	}
	if got != claims {
		t.Fatalf("claims mismatch: got %+v want %+v", got, claims)
	}
}

func TestSessionToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewSessionToken("right-secret", SessionClaims{SID: "s", UserID: 1, Username: "u"}, time.Hour)
	if err != nil {
		t.Fatalf("NewSessionToken error: %v", err)
	}

	if _, err := ParseSessionToken("wrong-secret", tok); err != ErrInvalidSessionToken {
		t.Fatalf("expected ErrInvalidSessionToken, got %v", err)
	}
}

func TestSessionToken_Expired(t *testing.T) {
	t.Parallel()

	tok, err := NewSessionToken("k", SessionClaims{SID: "s", UserID: 1, Username: "u"}, -time.Minute)
	if err != nil {
		t.Fatalf("NewSessionToken error: %v", err)
	}

	if _, err := ParseSessionToken("k", tok); err != ErrInvalidSessionToken {
		t.Fatalf("expected ErrInvalidSessionToken for expired token, got %v", err)
	}
}

func TestSessionToken_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := ParseSessionToken("k", "not.a.token"); err != ErrInvalidSessionToken {
		t.Fatalf("expected ErrInvalidSessionToken for malformed token, got %v", err)
	}
}

func TestNewSessionID_Unique(t *testing.T) {
	t.Parallel()

	a, err := NewSessionID()
	if err != nil {
		t.Fatalf("NewSessionID error: %v", err)
	}
	b, err := NewSessionID()
	if err != nil {
		t.Fatalf("NewSessionID error: %v", err)
	}
	if a == b {
		t.Fatalf("expected distinct session ids, got %q twice", a)
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
}
