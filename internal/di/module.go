package di

import (
	"go.uber.org/fx"

	"github.com/RaffaFachrizal29/belivps/internal/adapter/mailer"
	"github.com/RaffaFachrizal29/belivps/internal/app"
	"github.com/RaffaFachrizal29/belivps/internal/config"
	"github.com/RaffaFachrizal29/belivps/internal/logger"
	"github.com/RaffaFachrizal29/belivps/internal/pkg/auth"
	"github.com/RaffaFachrizal29/belivps/internal/pkg/secrets"
	"github.com/RaffaFachrizal29/belivps/internal/server/http/handlers"
	"github.com/RaffaFachrizal29/belivps/internal/server/http/router"
	"github.com/RaffaFachrizal29/belivps/internal/storage/postgres"
	"github.com/RaffaFachrizal29/belivps/internal/usecase"
)

// Module assembles the full application graph.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		secrets.Module,
		postgres.Module,
		mailer.Module,
		usecase.Module,
		fx.Provide(func(f *app.StorefrontFacade) handlers.StorefrontFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
