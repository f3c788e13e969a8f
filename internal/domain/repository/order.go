package repository

import (
	"context"

	"github.com/spicemart/spicemart/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, buyerID string, items []model.LineItem, payment model.PaymentRecord) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	ListByBuyer(ctx context.Context, buyerID string) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error)
	// UpdateStatusFrom sets the status only when the stored status still
	// equals from; a concurrent change surfaces as ErrInvalidTransition.
	UpdateStatusFrom(ctx context.Context, orderID string, from, to model.OrderStatus) (*model.Order, error)
}
