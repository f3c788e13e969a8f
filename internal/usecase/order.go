package usecase

import (
	"context"
	"fmt"
	"log/slog"

	domainErrors "github.com/spicemart/spicemart/internal/domain/errors"
	"github.com/spicemart/spicemart/internal/domain/model"
	"github.com/spicemart/spicemart/internal/domain/repository"
)

// Dispatcher accepts a status change notification for asynchronous delivery.
type Dispatcher interface {
	Dispatch(n model.Notification) error
}

// OrderUseCase encapsulates order lifecycle and query logic.
type OrderUseCase struct {
	orders      repository.OrderRepository
	dispatcher  Dispatcher
	clientURL   string
	enforceFlow bool
	logger      *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase. With enforceFlow set, status
// updates must follow the forward progression (or cancel a non-terminal
// order); otherwise any status may replace any other.
func NewOrderUseCase(orders repository.OrderRepository, dispatcher Dispatcher, clientURL string, enforceFlow bool, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{orders: orders, dispatcher: dispatcher, clientURL: clientURL, enforceFlow: enforceFlow, logger: logger}
}

// ListByBuyer returns the buyer's own orders, newest first.
func (u *OrderUseCase) ListByBuyer(ctx context.Context, buyerID string) ([]model.Order, error) {
	return u.orders.ListByBuyer(ctx, buyerID)
}

// ListAll returns orders across all buyers, newest first.
func (u *OrderUseCase) ListAll(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListAll(ctx)
}

// UpdateStatus persists the new status and notifies the buyer. The
// notification is best-effort: a dispatch failure is logged and never rolls
// back or fails the update.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", domainErrors.ErrInvalidStatus, status)
	}

	var order *model.Order
	var err error
	if u.enforceFlow {
		// Compare-and-set against the observed status so a concurrent
		// update cannot slip past the progression check.
		var current *model.Order
		current, err = u.orders.GetByID(ctx, orderID)
		if err != nil {
			return nil, err
		}
		if !current.Status.CanTransitionTo(status) {
			return nil, fmt.Errorf("%w: %s to %s", domainErrors.ErrInvalidTransition, current.Status, status)
		}
		order, err = u.orders.UpdateStatusFrom(ctx, orderID, current.Status, status)
	} else {
		order, err = u.orders.UpdateStatus(ctx, orderID, status)
	}
	if err != nil {
		return nil, err
	}

	notification := model.Notification{
		Recipient: order.BuyerEmail,
		BuyerName: order.BuyerName,
		OrderID:   order.ID,
		Status:    order.Status,
		Link:      u.clientURL + "/dashboard/user/orders",
	}
	if err := u.dispatcher.Dispatch(notification); err != nil {
		u.logger.Error("status notification dispatch failed",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}

	return order, nil
}
