package di

import (
	"go.uber.org/fx"

	"github.com/dmoura/pastelaria/internal/app"
	"github.com/dmoura/pastelaria/internal/config"
	"github.com/dmoura/pastelaria/internal/logger"
	"github.com/dmoura/pastelaria/internal/server/http/handlers"
	"github.com/dmoura/pastelaria/internal/server/http/router"
	"github.com/dmoura/pastelaria/internal/storage/postgres"
	"github.com/dmoura/pastelaria/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.PastelariaFacade) handlers.PastelariaFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
