package di

import (
	"github.com/falconboard/boardflow/internal/adapter/shopify"
	"github.com/falconboard/boardflow/internal/app"
	"github.com/falconboard/boardflow/internal/config"
	"github.com/falconboard/boardflow/internal/logger"
	"github.com/falconboard/boardflow/internal/server/http/handlers"
	"github.com/falconboard/boardflow/internal/server/http/router"
	"github.com/falconboard/boardflow/internal/storage/postgres"
	"github.com/falconboard/boardflow/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		shopify.Module,
		usecase.Module,
		fx.Provide(
			func(client shopify.Client) usecase.OrderSource { return client },
			func(client shopify.Client) app.OrderLister { return client },
			func(facade *app.RoutingFacade) handlers.RoutingFacade { return facade },
			func(storage *postgres.Storage) handlers.HealthChecker { return storage },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
