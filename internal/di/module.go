package di

import (
	"go.uber.org/fx"

	"github.com/spicemart/spicemart/internal/adapter/gateway"
	"github.com/spicemart/spicemart/internal/adapter/mailer"
	"github.com/spicemart/spicemart/internal/app"
	"github.com/spicemart/spicemart/internal/config"
	"github.com/spicemart/spicemart/internal/logger"
	"github.com/spicemart/spicemart/internal/pkg/auth"
	"github.com/spicemart/spicemart/internal/server/http/handlers"
	"github.com/spicemart/spicemart/internal/server/http/router"
	"github.com/spicemart/spicemart/internal/storage/postgres"
	"github.com/spicemart/spicemart/internal/usecase"
	"github.com/spicemart/spicemart/internal/worker"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		gateway.Module,
		mailer.Module,
		usecase.Module,
		fx.Provide(func(client gateway.Client) usecase.PaymentGateway { return client }),
		fx.Provide(func(notifier *worker.Notifier) usecase.Dispatcher { return notifier }),
		fx.Provide(func(facade *app.StoreFacade) handlers.StoreFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
