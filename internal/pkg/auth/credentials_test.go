package auth

import (
	"errors"
	"testing"
)

func TestCredentialsVerify(t *testing.T) {
	creds, err := NewCredentials("admin", "P@ssw0rd")
	if err != nil {
		t.Fatalf("new credentials: %v", err)
	}

	if err := creds.Verify("admin", "P@ssw0rd"); err != nil {
		t.Fatalf("expected matching pair to verify: %v", err)
	}

	cases := []struct {
		name     string
		login    string
		password string
	}{
		{"wrong login", "root", "P@ssw0rd"},
		{"wrong password", "admin", "hunter2"},
		{"both wrong", "root", "hunter2"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := creds.Verify(tc.login, tc.password); !errors.Is(err, ErrBadCredentials) {
				t.Fatalf("expected ErrBadCredentials, got %v", err)
			}
		})
	}
}
