package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"

	"golang.org/x/crypto/nacl/secretbox"
)

// ErrUnsealFailed indicates the stored value could not be decrypted,
// usually because the configured key changed.
var ErrUnsealFailed = errors.New("unseal failed")

const sealedPrefix = "sealed:"

// Sealer protects customer-chosen VPS passwords at rest.
type Sealer interface {
	Seal(plaintext string) (string, error)
	Open(stored string) (string, error)
}

// SecretboxSealer encrypts values with NaCl secretbox under a fixed key.
// The key comes from configuration and is never written next to the data.
type SecretboxSealer struct {
	key [32]byte
}

// NewSecretboxSealer builds a sealer from a 32-byte key.
func NewSecretboxSealer(key []byte) (*SecretboxSealer, error) {
	if len(key) != 32 {
		return nil, errors.New("secretbox key must be 32 bytes")
	}
	s := &SecretboxSealer{}
	copy(s.key[:], key)
	return s, nil
}

// Seal encrypts plaintext with a fresh random nonce.
func (s *SecretboxSealer) Seal(plaintext string) (string, error) {
	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", err
	}
	sealed := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &s.key)
	return sealedPrefix + base64.StdEncoding.EncodeToString(sealed), nil
}

// Open decrypts a value produced by Seal. Values without the sealed prefix
// are returned unchanged so rows written before encryption was enabled stay
// readable.
func (s *SecretboxSealer) Open(stored string) (string, error) {
	if !strings.HasPrefix(stored, sealedPrefix) {
		return stored, nil
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(stored, sealedPrefix))
	if err != nil {
		return "", ErrUnsealFailed
	}
	if len(raw) < 24 {
		return "", ErrUnsealFailed
	}
	var nonce [24]byte
	copy(nonce[:], raw[:24])
	plaintext, ok := secretbox.Open(nil, raw[24:], &nonce, &s.key)
	if !ok {
		return "", ErrUnsealFailed
	}
	return string(plaintext), nil
}

// PlaintextSealer passes values through unchanged. Used when no credential
// key is configured.
type PlaintextSealer struct{}

// Seal returns the plaintext as-is.
func (PlaintextSealer) Seal(plaintext string) (string, error) { return plaintext, nil }

// Open returns the stored value as-is.
func (PlaintextSealer) Open(stored string) (string, error) { return stored, nil }
