package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/falconboard/boardflow/internal/config"
	"github.com/falconboard/boardflow/internal/domain/repository"
)

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.BoardRepository { return s.Boards() },
		func(s *Storage) repository.CardRepository { return s.Cards() },
		func(s *Storage) repository.ActivityRepository { return s.Activities() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
