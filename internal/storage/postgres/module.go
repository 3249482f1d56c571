package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/dmoura/pastelaria/internal/config"
	"github.com/dmoura/pastelaria/internal/domain/repository"
)

// Module wires PostgreSQL storage and collection repositories.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.FlavorRepository { return s.Flavors() },
		func(s *Storage) repository.OrderRepository { return s.Orders() },
		func(s *Storage) repository.ReviewRepository { return s.Reviews() },
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
