package auth

import (
	"errors"
	"testing"
	"time"
)

func TestSessionStoreIssueAndValidate(t *testing.T) {
	store := NewSessionStore(time.Minute)

	token, err := store.Issue()
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	if err := store.Validate(token); err != nil {
		t.Fatalf("expected fresh token to validate: %v", err)
	}
}

func TestSessionStoreEveryLoginGetsOwnToken(t *testing.T) {
	store := NewSessionStore(time.Minute)

	first, _ := store.Issue()
	second, _ := store.Issue()
	if first == second {
		t.Fatal("two logins must not share a token")
	}

	store.Revoke(first)
	if err := store.Validate(first); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("revoked token must not validate, got %v", err)
	}
	if err := store.Validate(second); err != nil {
		t.Fatalf("revoking one session must not touch another: %v", err)
	}
}

func TestSessionStoreRejectsUnknownToken(t *testing.T) {
	store := NewSessionStore(time.Minute)
	if err := store.Validate("made-up"); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
	if err := store.Validate(""); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession for empty token, got %v", err)
	}
}

func TestSessionStoreExpiry(t *testing.T) {
	store := NewSessionStore(time.Minute)
	current := time.Unix(1700000000, 0)
	store.now = func() time.Time { return current }

	token, _ := store.Issue()
	if err := store.Validate(token); err != nil {
		t.Fatalf("token should be valid before expiry: %v", err)
	}

	current = current.Add(2 * time.Minute)
	if err := store.Validate(token); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected expired token to be rejected, got %v", err)
	}

	// Expired entries are also dropped from the store.
	if _, ok := store.active[token]; ok {
		t.Fatal("expired token should have been pruned")
	}
}

func TestSessionStoreRevokeUnknownIsNoop(t *testing.T) {
	store := NewSessionStore(time.Minute)
	store.Revoke("never-issued")
}
