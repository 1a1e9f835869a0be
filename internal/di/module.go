package di

import (
	"go.uber.org/fx"

	"github.com/dmarquina/eventbooking/internal/adapter/catalog"
	"github.com/dmarquina/eventbooking/internal/adapter/mailer"
	"github.com/dmarquina/eventbooking/internal/app"
	"github.com/dmarquina/eventbooking/internal/clock"
	"github.com/dmarquina/eventbooking/internal/config"
	"github.com/dmarquina/eventbooking/internal/logger"
	"github.com/dmarquina/eventbooking/internal/pkg/auth"
	"github.com/dmarquina/eventbooking/internal/server/http/router"
	"github.com/dmarquina/eventbooking/internal/storage/postgres"
	"github.com/dmarquina/eventbooking/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		clock.Module,
		auth.Module,
		postgres.Module,
		catalog.Module,
		mailer.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
