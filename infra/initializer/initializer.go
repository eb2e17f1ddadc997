// Package initializer builds the application dependencies from configuration:
// database connection, transaction repository, provider resolver and event bus.
package initializer

import (
	"fmt"
	"log/slog"

	"github.com/sunray-eu/payment-service/infra/provider/paypalpayment"
	"github.com/sunray-eu/payment-service/infra/provider/samplepayment"
	"github.com/sunray-eu/payment-service/infra/provider/stripepayment"
	infrarepo "github.com/sunray-eu/payment-service/infra/repository/transaction"
	"github.com/sunray-eu/payment-service/pkg/app"
	"github.com/sunray-eu/payment-service/pkg/config"
	"github.com/sunray-eu/payment-service/pkg/currency"
	"github.com/sunray-eu/payment-service/pkg/eventbus"
	"github.com/sunray-eu/payment-service/pkg/registry"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitializeDependencies wires every collaborator the application needs.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	logger := slog.Default()

	db, err := gorm.Open(postgres.Open(cfg.DB.Url), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	resolver := registry.NewResolver()
	registerProviders(resolver, cfg.PaymentProviders, logger)

	return &app.Deps{
		Repo:       infrarepo.New(db),
		Resolver:   resolver,
		Bus:        eventbus.NewSimpleBus(logger),
		Currencies: currency.NewRegistry(),
		Logger:     logger,
	}, nil
}

// registerProviders registers an adapter for every configured gateway. A
// gateway without credentials is skipped, not an error: the resolver rejects
// it at request time as an unknown provider.
func registerProviders(
	resolver *registry.Resolver,
	cfg *config.PaymentProviders,
	logger *slog.Logger,
) {
	if cfg == nil {
		return
	}
	if cfg.PayPal != nil && cfg.PayPal.ClientId != "" {
		resolver.Register("paypal", paypalpayment.New(cfg.PayPal))
		logger.Info("payment provider registered", "provider", "paypal")
	}
	if cfg.Stripe != nil && cfg.Stripe.ApiKey != "" {
		resolver.Register("stripe", stripepayment.New(cfg.Stripe))
		logger.Info("payment provider registered", "provider", "stripe")
	}
	if cfg.Sample != nil && cfg.Sample.Enabled {
		resolver.Register("sampleGateway", samplepayment.New())
		logger.Info("payment provider registered", "provider", "sampleGateway")
	}
}
