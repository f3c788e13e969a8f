package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"
)

// Email is one transactional message.
type Email struct {
	To      string
	ToName  string
	Subject string
	HTML    string
}

// Client sends transactional email. Callers treat sends as best-effort.
type Client interface {
	Send(ctx context.Context, msg Email) error
}

// HTTPClient implements Client via the email provider's HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	apiKey     string
	from       string
	httpClient *http.Client
	logger     *slog.Logger
}

type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	ToName  string `json:"to_name,omitempty"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// NewHTTPClient creates HTTP mailer client with default timeout.
func NewHTTPClient(baseURL, apiKey, from string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse mailer url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("mailer url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		apiKey:  apiKey,
		from:    from,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Send delivers one message through the provider.
func (c *HTTPClient) Send(ctx context.Context, msg Email) error {
	payload, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      msg.To,
		ToName:  msg.ToName,
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if err != nil {
		return err
	}

	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/send")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("mail send failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return fmt.Errorf("mailer error: %s", resp.Status)
	}
	return nil
}
