package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrBadCredentials indicates the login/password pair did not match.
var ErrBadCredentials = errors.New("bad credentials")

// Credentials holds the single administrator account. The password is
// bcrypt-hashed once at construction and never kept in memory afterwards.
type Credentials struct {
	login string
	hash  []byte
}

// NewCredentials hashes the configured password and returns verifier.
func NewCredentials(login, password string) (*Credentials, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Credentials{login: login, hash: hash}, nil
}

// Verify checks a submitted login/password pair.
func (c *Credentials) Verify(login, password string) error {
	if subtle.ConstantTimeCompare([]byte(login), []byte(c.login)) != 1 {
		return ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword(c.hash, []byte(password)); err != nil {
		return ErrBadCredentials
	}
	return nil
}
