package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/spicemart/spicemart/internal/config"
	"github.com/spicemart/spicemart/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	NewCheckoutUseCase,
	newOrderUseCase,
	NewProductUseCase,
	NewCategoryUseCase,
)

type orderParams struct {
	fx.In

	Orders     repository.OrderRepository
	Dispatcher Dispatcher
	Config     *config.Config
	Logger     *slog.Logger
}

func newOrderUseCase(p orderParams) *OrderUseCase {
	return NewOrderUseCase(p.Orders, p.Dispatcher, p.Config.ClientURL, p.Config.EnforceStatusFlow, p.Logger)
}
