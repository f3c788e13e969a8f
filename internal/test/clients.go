package test

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/spicemart/spicemart/internal/adapter/mailer"
	"github.com/spicemart/spicemart/internal/domain/model"
)

// GatewayStub simulates the payment gateway client.
type GatewayStub struct {
	SaleFn  func(context.Context, float64, string) (*model.PaymentRecord, error)
	TokenFn func(context.Context) (string, error)

	SaleCalls  int
	LastAmount float64
	LastNonce  string
	TokenCalls int
}

// Sale records the call and delegates or returns a successful capture.
func (s *GatewayStub) Sale(ctx context.Context, amount float64, nonce string) (*model.PaymentRecord, error) {
	s.SaleCalls++
	s.LastAmount = amount
	s.LastNonce = nonce
	if s.SaleFn != nil {
		return s.SaleFn(ctx, amount, nonce)
	}
	return &model.PaymentRecord{
		TransactionID: "txn-1",
		Success:       true,
		Raw:           json.RawMessage(`{"success":true,"transaction_id":"txn-1"}`),
	}, nil
}

// ClientToken delegates or returns a fixed token.
func (s *GatewayStub) ClientToken(ctx context.Context) (string, error) {
	s.TokenCalls++
	if s.TokenFn != nil {
		return s.TokenFn(ctx)
	}
	return "client-token", nil
}

// MailerStub records sent emails and optionally fails.
type MailerStub struct {
	SendFn func(context.Context, mailer.Email) error

	mu   sync.Mutex
	sent []mailer.Email
}

// Send records the email and delegates or succeeds.
func (s *MailerStub) Send(ctx context.Context, msg mailer.Email) error {
	s.mu.Lock()
	s.sent = append(s.sent, msg)
	s.mu.Unlock()
	if s.SendFn != nil {
		return s.SendFn(ctx, msg)
	}
	return nil
}

// Sent returns a copy of all recorded emails.
func (s *MailerStub) Sent() []mailer.Email {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]mailer.Email(nil), s.sent...)
}

// DispatcherStub records dispatched notifications.
type DispatcherStub struct {
	DispatchFn func(model.Notification) error

	mu            sync.Mutex
	notifications []model.Notification
}

// Dispatch records the notification and delegates or succeeds.
func (s *DispatcherStub) Dispatch(n model.Notification) error {
	s.mu.Lock()
	s.notifications = append(s.notifications, n)
	s.mu.Unlock()
	if s.DispatchFn != nil {
		return s.DispatchFn(n)
	}
	return nil
}

// Notifications returns a copy of all recorded notifications.
func (s *DispatcherStub) Notifications() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Notification(nil), s.notifications...)
}
