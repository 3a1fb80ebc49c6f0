package di

import (
	"go.uber.org/fx"

	"github.com/invoicehub/invoicehub/internal/app"
	"github.com/invoicehub/invoicehub/internal/config"
	"github.com/invoicehub/invoicehub/internal/logger"
	"github.com/invoicehub/invoicehub/internal/pkg/auth"
	"github.com/invoicehub/invoicehub/internal/server/http/handlers"
	"github.com/invoicehub/invoicehub/internal/server/http/router"
	"github.com/invoicehub/invoicehub/internal/storage/postgres"
	"github.com/invoicehub/invoicehub/internal/usecase"
	"github.com/invoicehub/invoicehub/internal/viewcache"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		viewcache.Module,
		usecase.Module,
		fx.Provide(func(f *app.DashboardFacade) handlers.DashboardFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
