package mailer

import (
	"io"
	"log/slog"
	"testing"

	"github.com/spicemart/spicemart/internal/config"
)

func TestNewClientUsesConfig(t *testing.T) {
	cfg := &config.Config{
		MailerAddress: "http://example.com",
		MailerAPIKey:  "api-key",
		EmailFrom:     "no-reply@shop.local",
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	client, err := newClient(clientParams{Config: cfg, Logger: logger})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client == nil {
		t.Fatal("expected client instance")
	}
}
