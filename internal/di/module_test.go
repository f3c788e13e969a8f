package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/spicemart/spicemart/internal/adapter/gateway"
	"github.com/spicemart/spicemart/internal/adapter/mailer"
	"github.com/spicemart/spicemart/internal/app"
	"github.com/spicemart/spicemart/internal/config"
	"github.com/spicemart/spicemart/internal/domain/repository"
	"github.com/spicemart/spicemart/internal/storage/postgres"
	"github.com/spicemart/spicemart/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:        ":0",
		DatabaseURI:       "postgres://stub",
		GatewayAddress:    "http://localhost",
		MailerAddress:     "http://localhost",
		EmailFrom:         "no-reply@shop.local",
		ClientURL:         "http://localhost:3000",
		TokenSecret:       "secret",
		NotifierQueueSize: 1,
		ShutdownTimeout:   time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	orderRepo := &test.OrderRepositoryStub{}
	productRepo := &test.ProductRepositoryStub{}
	categoryRepo := &test.CategoryRepositoryStub{}

	var facade *app.StoreFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.OrderRepository(orderRepo)),
			fx.Replace(repository.ProductRepository(productRepo)),
			fx.Replace(repository.CategoryRepository(categoryRepo)),
			fx.Replace(gateway.Client(&test.GatewayStub{})),
			fx.Replace(mailer.Client(&test.MailerStub{})),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected store facade instance")
	}
}
