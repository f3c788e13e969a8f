package mailer

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/spicemart/spicemart/internal/config"
)

// Module exposes mailer client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.MailerAddress, p.Config.MailerAPIKey, p.Config.EmailFrom, p.Logger)
}
