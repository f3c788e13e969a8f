package usecase

import (
	"context"
	"fmt"
	"log/slog"

	domainErrors "github.com/spicemart/spicemart/internal/domain/errors"
	"github.com/spicemart/spicemart/internal/domain/model"
	"github.com/spicemart/spicemart/internal/domain/repository"
)

// PaymentGateway is the capture contract the checkout flow consumes.
type PaymentGateway interface {
	Sale(ctx context.Context, amount float64, nonce string) (*model.PaymentRecord, error)
	ClientToken(ctx context.Context) (string, error)
}

// CheckoutUseCase runs the order creation workflow: payment capture, order
// persistence, inventory adjustment.
type CheckoutUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	gateway  PaymentGateway
	logger   *slog.Logger
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(orders repository.OrderRepository, products repository.ProductRepository, gateway PaymentGateway, logger *slog.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{orders: orders, products: products, gateway: gateway, logger: logger}
}

// Checkout captures payment for the cart and, on success, records exactly one
// order and decrements stock for every purchased unit. Capture failure leaves
// no persistent state behind. Inventory adjustment failure never fails the
// checkout; the order stands and the drift is logged.
func (u *CheckoutUseCase) Checkout(ctx context.Context, buyerID, nonce string, cart []model.CartItem) (*model.Order, error) {
	if len(cart) == 0 {
		return nil, domainErrors.ErrEmptyCart
	}

	var total float64
	for _, item := range cart {
		if item.ProductID == "" {
			return nil, fmt.Errorf("%w: cart item missing product reference", domainErrors.ErrValidation)
		}
		if item.Price < 0 {
			return nil, fmt.Errorf("%w: cart item has negative price", domainErrors.ErrValidation)
		}
		total += item.Price
	}

	record, err := u.gateway.Sale(ctx, total, nonce)
	if err != nil {
		return nil, fmt.Errorf("payment capture: %w", err)
	}

	items := make([]model.LineItem, 0, len(cart))
	for _, item := range cart {
		items = append(items, model.LineItem{ProductID: item.ProductID, Price: item.Price})
	}

	order, err := u.orders.Create(ctx, buyerID, items, *record)
	if err != nil {
		// The money is captured but no order exists. Keep this visible for
		// reconciliation before surfacing the failure.
		u.logger.Error("payment captured but order not recorded",
			slog.String("transaction_id", record.TransactionID),
			slog.String("buyer_id", buyerID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("record order: %w", err)
	}

	ids := make([]string, 0, len(cart))
	for _, item := range cart {
		ids = append(ids, item.ProductID)
	}
	tally, err := u.products.AdjustInventory(ctx, ids)
	if err != nil {
		u.logger.Error("inventory adjustment failed",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	} else if len(tally.Missed) > 0 {
		u.logger.Warn("inventory adjustment missed products",
			slog.String("order_id", order.ID),
			slog.Any("missed", tally.Missed),
		)
	}

	return order, nil
}

// PaymentToken returns a token for initializing the gateway's client SDK.
func (u *CheckoutUseCase) PaymentToken(ctx context.Context) (string, error) {
	return u.gateway.ClientToken(ctx)
}
