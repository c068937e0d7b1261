package config

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	AdminLogin      string
	AdminPassword   string
	SessionTTL      time.Duration
	CredentialKey   []byte
	SMTPHost        string
	SMTPPort        int
	SMTPUsername    string
	SMTPPassword    string
	SMTPFrom        string
	PruneInterval   time.Duration
	PendingTTL      time.Duration
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":3000"
	defaultAdminLogin      = "admin"
	defaultAdminPassword   = "P@ssw0rd"
	defaultSessionTTL      = 12 * time.Hour
	defaultSMTPPort        = 587
	defaultSMTPFrom        = "no-reply@rffnet.my.id"
	defaultPruneInterval   = time.Hour
	defaultPendingTTL      = 720 * time.Hour
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		AdminLogin:      getString(lookup, "ADMIN_LOGIN", defaultAdminLogin),
		AdminPassword:   getString(lookup, "ADMIN_PASSWORD", defaultAdminPassword),
		SessionTTL:      getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		SMTPHost:        getString(lookup, "SMTP_HOST", ""),
		SMTPPort:        getInt(lookup, "SMTP_PORT", defaultSMTPPort),
		SMTPUsername:    getString(lookup, "SMTP_USERNAME", ""),
		SMTPPassword:    getString(lookup, "SMTP_PASSWORD", ""),
		SMTPFrom:        getString(lookup, "SMTP_FROM", defaultSMTPFrom),
		PruneInterval:   getDuration(lookup, "PRUNE_INTERVAL", defaultPruneInterval),
		PendingTTL:      getDuration(lookup, "PENDING_TTL", defaultPendingTTL),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	credentialKeyHex := getString(lookup, "CREDENTIAL_KEY", "")

	fs := flag.NewFlagSet("belivps", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		sessionTTLStr      = cfg.SessionTTL.String()
		pruneIntervalStr   = cfg.PruneInterval.String()
		pendingTTLStr      = cfg.PendingTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.AdminLogin, "admin-login", cfg.AdminLogin, "Administrator login")
	fs.StringVar(&cfg.AdminPassword, "admin-password", cfg.AdminPassword, "Administrator password")
	fs.StringVar(&credentialKeyHex, "credential-key", credentialKeyHex, "Hex-encoded 32-byte key for sealing stored VPS passwords")
	fs.StringVar(&cfg.SMTPHost, "smtp-host", cfg.SMTPHost, "SMTP relay host (empty simulates delivery)")
	fs.IntVar(&cfg.SMTPPort, "smtp-port", cfg.SMTPPort, "SMTP relay port")
	fs.StringVar(&sessionTTLStr, "session-ttl", sessionTTLStr, "Admin session lifetime")
	fs.StringVar(&pruneIntervalStr, "prune-interval", pruneIntervalStr, "Interval between abandoned order sweeps")
	fs.StringVar(&pendingTTLStr, "pending-ttl", pendingTTLStr, "Retention of unpaid pending orders (0 disables pruning)")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.SessionTTL, err = time.ParseDuration(sessionTTLStr); err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}

	if cfg.PruneInterval, err = time.ParseDuration(pruneIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid prune interval: %w", err)
	}

	if cfg.PendingTTL, err = time.ParseDuration(pendingTTLStr); err != nil {
		return nil, fmt.Errorf("invalid pending ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if credentialKeyHex != "" {
		key, err := hex.DecodeString(credentialKeyHex)
		if err != nil {
			return nil, fmt.Errorf("decode credential key: %w", err)
		}
		if len(key) != 32 {
			return nil, fmt.Errorf("credential key must be 32 bytes, got %d", len(key))
		}
		cfg.CredentialKey = key
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.PruneInterval <= 0 {
		cfg.PruneInterval = defaultPruneInterval
	}

	if cfg.PendingTTL < 0 {
		cfg.PendingTTL = 0
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.AdminLogin == "" || cfg.AdminPassword == "" {
		return nil, fmt.Errorf("administrator credentials must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
