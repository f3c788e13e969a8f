package gateway

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

	"github.com/spicemart/spicemart/internal/domain/model"
)

// CaptureError carries the gateway's human-readable rejection message for a
// declined sale. Network and transport failures are returned as plain errors.
type CaptureError struct {
	Message string
}

func (e CaptureError) Error() string {
	if e.Message == "" {
		return "payment capture declined"
	}
	return e.Message
}

// Client exposes the payment gateway operations the checkout flow depends on.
type Client interface {
	Sale(ctx context.Context, amount float64, nonce string) (*model.PaymentRecord, error)
	ClientToken(ctx context.Context) (string, error)
}

// HTTPClient implements Client via the gateway's HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type saleRequest struct {
	Amount              float64 `json:"amount"`
	PaymentMethodNonce  string  `json:"payment_method_nonce"`
	SubmitForSettlement bool    `json:"submit_for_settlement"`
}

// saleResponse mirrors the JSON payload from the gateway.
type saleResponse struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id"`
	Message       string `json:"message,omitempty"`
}

type tokenResponse struct {
	ClientToken string `json:"client_token"`
}

// NewHTTPClient creates HTTP gateway client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse gateway url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("gateway url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Sale captures the given amount against a single-use payment nonce. The full
// gateway response body is preserved in the returned record.
func (c *HTTPClient) Sale(ctx context.Context, amount float64, nonce string) (*model.PaymentRecord, error) {
	payload, err := json.Marshal(saleRequest{Amount: amount, PaymentMethodNonce: nonce, SubmitForSettlement: true})
	if err != nil {
		return nil, err
	}

	body, err := c.post(ctx, "/transactions", payload)
	if err != nil {
		return nil, err
	}

	var data saleResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, err
	}
	if !data.Success {
		return nil, CaptureError{Message: data.Message}
	}

	return &model.PaymentRecord{
		TransactionID: data.TransactionID,
		Success:       true,
		Raw:           json.RawMessage(body),
	}, nil
}

// ClientToken fetches a token for initializing the gateway's client SDK.
func (c *HTTPClient) ClientToken(ctx context.Context) (string, error) {
	endpoint := c.endpoint("/client-token")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("client token request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return "", fmt.Errorf("gateway error: %s", resp.Status)
	}

	var data tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", err
	}
	return data.ClientToken, nil
}

func (c *HTTPClient) post(ctx context.Context, route string, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(route), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("gateway request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("gateway error: %s", resp.Status)
	}
	return body, nil
}

func (c *HTTPClient) endpoint(route string) string {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, route)
	return endpoint.String()
}
