// Package app assembles the services from their dependencies and registers the
// event subscribers.
package app

import (
	"log/slog"

	"github.com/sunray-eu/payment-service/pkg/config"
	"github.com/sunray-eu/payment-service/pkg/currency"
	"github.com/sunray-eu/payment-service/pkg/eventbus"
	"github.com/sunray-eu/payment-service/pkg/registry"
	"github.com/sunray-eu/payment-service/pkg/repository"
	paymentsvc "github.com/sunray-eu/payment-service/pkg/service/payment"
)

// Deps contains the collaborators built by the initializer.
type Deps struct {
	Repo       repository.TransactionRepository
	Resolver   *registry.Resolver
	Bus        eventbus.Bus
	Currencies *currency.Registry
	Logger     *slog.Logger
}

// App holds the wired services.
type App struct {
	Deps           *Deps
	Config         *config.App
	PaymentService *paymentsvc.Service
}

// New wires the application.
func New(deps *Deps, cfg *config.App) *App {
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	app.setupEventBus()
	app.PaymentService = paymentsvc.New(
		deps.Repo, deps.Resolver, deps.Bus, deps.Currencies, deps.Logger,
	)
	return app
}
