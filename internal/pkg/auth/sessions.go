package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidSession signals an unknown, revoked, or expired session token.
var ErrInvalidSession = errors.New("invalid session token")

// Sessions manages admin session tokens.
type Sessions interface {
	Issue() (string, error)
	Validate(token string) error
	Revoke(token string)
}

// SessionStore keeps active sessions in memory. Every login gets its own
// random token with a server-side expiry; logout revokes exactly one token.
type SessionStore struct {
	ttl time.Duration
	now func() time.Time

	mu     sync.Mutex
	active map[string]time.Time
}

// NewSessionStore builds a session store with the given token lifetime.
func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &SessionStore{
		ttl:    ttl,
		now:    time.Now,
		active: make(map[string]time.Time),
	}
}

// Issue creates a fresh session token.
func (s *SessionStore) Issue() (string, error) {
	token := uuid.NewString() + uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	s.active[token] = s.now().Add(s.ttl)
	return token, nil
}

// Validate checks that the token belongs to a live session.
func (s *SessionStore) Validate(token string) error {
	if token == "" {
		return ErrInvalidSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	expires, ok := s.active[token]
	if !ok {
		return ErrInvalidSession
	}
	if s.now().After(expires) {
		delete(s.active, token)
		return ErrInvalidSession
	}
	return nil
}

// Revoke drops the session. Revoking an unknown token is a no-op.
func (s *SessionStore) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, token)
}

func (s *SessionStore) pruneLocked() {
	now := s.now()
	for token, expires := range s.active {
		if now.After(expires) {
			delete(s.active, token)
		}
	}
}
