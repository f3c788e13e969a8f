package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	domainErrors "github.com/spicemart/spicemart/internal/domain/errors"
	"github.com/spicemart/spicemart/internal/domain/model"
	"github.com/spicemart/spicemart/internal/test"
	"github.com/spicemart/spicemart/internal/usecase"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	gateway := &test.GatewayStub{}
	orders := &test.OrderRepositoryStub{}
	uc := usecase.NewCheckoutUseCase(orders, &test.ProductRepositoryStub{}, gateway, newTestLogger())

	if _, err := uc.Checkout(context.Background(), "buyer-1", "nonce", nil); !errors.Is(err, domainErrors.ErrEmptyCart) {
		t.Fatalf("expected empty cart error, got %v", err)
	}
	if gateway.SaleCalls != 0 {
		t.Fatalf("gateway must not be called for an empty cart")
	}
	if orders.CreateCalls != 0 {
		t.Fatalf("no order must be created for an empty cart")
	}
}

func TestCheckoutRejectsInvalidCartItems(t *testing.T) {
	gateway := &test.GatewayStub{}
	uc := usecase.NewCheckoutUseCase(&test.OrderRepositoryStub{}, &test.ProductRepositoryStub{}, gateway, newTestLogger())

	if _, err := uc.Checkout(context.Background(), "buyer-1", "nonce", []model.CartItem{{ProductID: "", Price: 10}}); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for missing product reference, got %v", err)
	}
	if _, err := uc.Checkout(context.Background(), "buyer-1", "nonce", []model.CartItem{{ProductID: "p1", Price: -1}}); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for negative price, got %v", err)
	}
	if gateway.SaleCalls != 0 {
		t.Fatalf("gateway must not be called for an invalid cart")
	}
}

func TestCheckoutCaptureFailureLeavesNoState(t *testing.T) {
	captureErr := errors.New("card declined")
	gateway := &test.GatewayStub{SaleFn: func(context.Context, float64, string) (*model.PaymentRecord, error) {
		return nil, captureErr
	}}
	orders := &test.OrderRepositoryStub{}
	products := &test.ProductRepositoryStub{}
	uc := usecase.NewCheckoutUseCase(orders, products, gateway, newTestLogger())

	cart := []model.CartItem{{ProductID: "p1", Price: 10}, {ProductID: "p2", Price: 5}}
	if _, err := uc.Checkout(context.Background(), "buyer-1", "nonce", cart); !errors.Is(err, captureErr) {
		t.Fatalf("expected capture error to surface, got %v", err)
	}
	if orders.CreateCalls != 0 {
		t.Fatalf("capture failure must not create an order")
	}
	if len(products.AdjustCalls) != 0 {
		t.Fatalf("capture failure must not touch inventory")
	}
}

func TestCheckoutSuccessCreatesOrderAndAdjustsInventory(t *testing.T) {
	gateway := &test.GatewayStub{}
	var createdItems []model.LineItem
	var createdPayment model.PaymentRecord
	orders := &test.OrderRepositoryStub{CreateFn: func(ctx context.Context, buyerID string, items []model.LineItem, payment model.PaymentRecord) (*model.Order, error) {
		createdItems = items
		createdPayment = payment
		return &model.Order{ID: "order-1", BuyerID: buyerID, Items: items, Payment: payment, Status: model.OrderStatusUnprocessed}, nil
	}}
	products := &test.ProductRepositoryStub{}
	uc := usecase.NewCheckoutUseCase(orders, products, gateway, newTestLogger())

	cart := []model.CartItem{
		{ProductID: "p1", Price: 10},
		{ProductID: "p1", Price: 10},
		{ProductID: "p2", Price: 5.5},
	}
	order, err := uc.Checkout(context.Background(), "buyer-1", "nonce", cart)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != "order-1" || order.Status != model.OrderStatusUnprocessed {
		t.Fatalf("unexpected order: %+v", order)
	}
	if gateway.SaleCalls != 1 || gateway.LastAmount != 25.5 || gateway.LastNonce != "nonce" {
		t.Fatalf("unexpected gateway call: calls=%d amount=%v nonce=%q", gateway.SaleCalls, gateway.LastAmount, gateway.LastNonce)
	}
	if len(createdItems) != 3 {
		t.Fatalf("expected one line item per cart entry, got %d", len(createdItems))
	}
	if !createdPayment.Success || createdPayment.TransactionID == "" {
		t.Fatalf("expected captured payment to be stored, got %+v", createdPayment)
	}
	if len(products.AdjustCalls) != 1 {
		t.Fatalf("expected exactly one inventory adjustment, got %d", len(products.AdjustCalls))
	}
	ids := products.AdjustCalls[0]
	if len(ids) != 3 || ids[0] != "p1" || ids[1] != "p1" || ids[2] != "p2" {
		t.Fatalf("expected a decrement per purchased unit, got %v", ids)
	}
}

func TestCheckoutOrderCreateFailureAfterCapture(t *testing.T) {
	gateway := &test.GatewayStub{}
	storeErr := errors.New("insert failed")
	orders := &test.OrderRepositoryStub{CreateFn: func(context.Context, string, []model.LineItem, model.PaymentRecord) (*model.Order, error) {
		return nil, storeErr
	}}
	products := &test.ProductRepositoryStub{}
	uc := usecase.NewCheckoutUseCase(orders, products, gateway, newTestLogger())

	if _, err := uc.Checkout(context.Background(), "buyer-1", "nonce", []model.CartItem{{ProductID: "p1", Price: 10}}); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to surface, got %v", err)
	}
	if gateway.SaleCalls != 1 {
		t.Fatalf("payment must have been captured before the failure")
	}
	if len(products.AdjustCalls) != 0 {
		t.Fatalf("inventory must stay untouched when the order is not recorded")
	}
}

func TestCheckoutSurvivesInventoryFailure(t *testing.T) {
	adjustErr := errors.New("batch failed")
	products := &test.ProductRepositoryStub{AdjustInventoryFn: func(context.Context, []string) (*model.InventoryTally, error) {
		return nil, adjustErr
	}}
	uc := usecase.NewCheckoutUseCase(&test.OrderRepositoryStub{}, products, &test.GatewayStub{}, newTestLogger())

	order, err := uc.Checkout(context.Background(), "buyer-1", "nonce", []model.CartItem{{ProductID: "p1", Price: 10}})
	if err != nil {
		t.Fatalf("inventory failure must not fail the checkout: %v", err)
	}
	if order == nil {
		t.Fatalf("expected the recorded order to be returned")
	}
}

func TestCheckoutReportsMissedInventory(t *testing.T) {
	products := &test.ProductRepositoryStub{AdjustInventoryFn: func(_ context.Context, ids []string) (*model.InventoryTally, error) {
		return &model.InventoryTally{Applied: len(ids) - 1, Missed: []string{"gone"}}, nil
	}}
	uc := usecase.NewCheckoutUseCase(&test.OrderRepositoryStub{}, products, &test.GatewayStub{}, newTestLogger())

	cart := []model.CartItem{{ProductID: "p1", Price: 10}, {ProductID: "gone", Price: 5}}
	if _, err := uc.Checkout(context.Background(), "buyer-1", "nonce", cart); err != nil {
		t.Fatalf("missed products must not fail the checkout: %v", err)
	}
}

func TestPaymentTokenDelegatesToGateway(t *testing.T) {
	gateway := &test.GatewayStub{TokenFn: func(context.Context) (string, error) { return "tok-42", nil }}
	uc := usecase.NewCheckoutUseCase(&test.OrderRepositoryStub{}, &test.ProductRepositoryStub{}, gateway, newTestLogger())

	token, err := uc.PaymentToken(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "tok-42" {
		t.Fatalf("unexpected token %q", token)
	}
}
