package config

import (
	"strings"
	"testing"
	"time"
)

func lookupFrom(env map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI": "postgres://localhost/belivps",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RunAddress != ":3000" {
		t.Fatalf("unexpected run address: %q", cfg.RunAddress)
	}
	if cfg.AdminLogin != "admin" || cfg.AdminPassword != "P@ssw0rd" {
		t.Fatalf("unexpected admin defaults: %q/%q", cfg.AdminLogin, cfg.AdminPassword)
	}
	if cfg.SessionTTL != 12*time.Hour {
		t.Fatalf("unexpected session ttl: %s", cfg.SessionTTL)
	}
	if cfg.PendingTTL != 720*time.Hour {
		t.Fatalf("unexpected pending ttl: %s", cfg.PendingTTL)
	}
	if cfg.SMTPHost != "" || cfg.SMTPPort != 587 {
		t.Fatalf("unexpected smtp defaults: %q:%d", cfg.SMTPHost, cfg.SMTPPort)
	}
	if len(cfg.CredentialKey) != 0 {
		t.Fatalf("expected no credential key by default")
	}
}

func TestLoadMissingDatabaseURI(t *testing.T) {
	if _, err := load(nil, lookupFrom(nil)); err == nil {
		t.Fatal("expected error when database URI is absent")
	}
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	cfg, err := load(
		[]string{"-a", ":8088", "-d", "postgres://flag/db", "-session-ttl", "30m"},
		lookupFrom(map[string]string{
			"RUN_ADDRESS":  ":9000",
			"DATABASE_URI": "postgres://env/db",
		}),
	)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RunAddress != ":8088" {
		t.Fatalf("flag should win over env, got %q", cfg.RunAddress)
	}
	if cfg.DatabaseURI != "postgres://flag/db" {
		t.Fatalf("unexpected database uri: %q", cfg.DatabaseURI)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("unexpected session ttl: %s", cfg.SessionTTL)
	}
}

func TestLoadCredentialKey(t *testing.T) {
	key := strings.Repeat("ab", 32)
	cfg, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI":   "postgres://localhost/belivps",
		"CREDENTIAL_KEY": key,
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.CredentialKey) != 32 {
		t.Fatalf("unexpected key length: %d", len(cfg.CredentialKey))
	}
}

func TestLoadCredentialKeyErrors(t *testing.T) {
	cases := []struct {
		name string
		key  string
	}{
		{"not hex", "zz"},
		{"wrong length", "abcdef"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := load(nil, lookupFrom(map[string]string{
				"DATABASE_URI":   "postgres://localhost/belivps",
				"CREDENTIAL_KEY": tc.key,
			}))
			if err == nil {
				t.Fatal("expected error for invalid credential key")
			}
		})
	}
}

func TestLoadNegativePendingTTLDisablesPruning(t *testing.T) {
	cfg, err := load([]string{"-pending-ttl", "-1h"}, lookupFrom(map[string]string{
		"DATABASE_URI": "postgres://localhost/belivps",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.PendingTTL != 0 {
		t.Fatalf("expected pending ttl clamped to 0, got %s", cfg.PendingTTL)
	}
}
