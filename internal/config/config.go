package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress        string
	DatabaseURI       string
	GatewayAddress    string
	MailerAddress     string
	MailerAPIKey      string
	EmailFrom         string
	ClientURL         string
	TokenSecret       string
	EnforceStatusFlow bool
	NotifierQueueSize int
	ShutdownTimeout   time.Duration
}

const (
	defaultRunAddress        = ":8000"
	defaultTokenSecret       = "change-me-in-production"
	defaultEmailFrom         = "no-reply@spicemart.local"
	defaultClientURL         = "http://localhost:3000"
	defaultNotifierQueueSize = 64
	defaultShutdownTimeout   = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		GatewayAddress:    getString(lookup, "PAYMENT_GATEWAY_ADDRESS", ""),
		MailerAddress:     getString(lookup, "MAILER_ADDRESS", ""),
		MailerAPIKey:      getString(lookup, "MAILER_API_KEY", ""),
		EmailFrom:         getString(lookup, "EMAIL_FROM", defaultEmailFrom),
		ClientURL:         getString(lookup, "CLIENT_URL", defaultClientURL),
		TokenSecret:       getString(lookup, "TOKEN_SECRET", defaultTokenSecret),
		EnforceStatusFlow: getBool(lookup, "ENFORCE_STATUS_FLOW", false),
		NotifierQueueSize: getInt(lookup, "NOTIFIER_QUEUE_SIZE", defaultNotifierQueueSize),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("spicemart", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.GatewayAddress, "g", cfg.GatewayAddress, "Payment gateway base URL")
	fs.StringVar(&cfg.MailerAddress, "m", cfg.MailerAddress, "Transactional email API base URL")
	fs.StringVar(&cfg.EmailFrom, "email-from", cfg.EmailFrom, "Sender address for notification emails")
	fs.StringVar(&cfg.ClientURL, "client-url", cfg.ClientURL, "Client-facing base URL for notification links")
	fs.StringVar(&cfg.TokenSecret, "token-secret", cfg.TokenSecret, "Secret for signing auth tokens")
	fs.BoolVar(&cfg.EnforceStatusFlow, "enforce-status-flow", cfg.EnforceStatusFlow, "Reject non-monotonic order status transitions")
	fs.IntVar(&cfg.NotifierQueueSize, "notifier-queue", cfg.NotifierQueueSize, "Pending notification queue capacity")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error
	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("TOKEN_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read token secret file: %w", err)
		}
		cfg.TokenSecret = string(content)
	}

	if cfg.NotifierQueueSize <= 0 {
		cfg.NotifierQueueSize = defaultNotifierQueueSize
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.GatewayAddress == "" {
		return nil, fmt.Errorf("payment gateway address must be provided")
	}

	if cfg.MailerAddress == "" {
		return nil, fmt.Errorf("mailer address must be provided")
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

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
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
