package shopify

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/falconboard/boardflow/internal/config"
)

// Module exposes the commerce platform client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.ShopifyAPIAddress, p.Config.ShopifyAccessToken, p.Logger)
}
