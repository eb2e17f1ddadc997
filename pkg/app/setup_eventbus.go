package app

import (
	"context"

	"github.com/sunray-eu/payment-service/pkg/domain"
	"github.com/sunray-eu/payment-service/pkg/domain/events"
)

// setupEventBus registers the log subscribers for transaction lifecycle
// events. Delivery is fire-and-forget; nothing here can fail an operation.
func (a *App) setupEventBus() {
	logger := a.Deps.Logger

	a.Deps.Bus.Subscribe(
		events.EventTypeTransactionCreated,
		func(_ context.Context, e domain.Event) {
			created, ok := e.(events.TransactionCreated)
			if !ok {
				return
			}
			logger.Info("transaction created",
				"transaction_id", created.Transaction.ID,
				"user_id", created.Transaction.UserID,
				"provider", created.Transaction.Provider,
				"amount", created.Transaction.Amount,
				"currency", created.Transaction.Currency,
			)
		},
	)

	a.Deps.Bus.Subscribe(
		events.EventTypeTransactionStatusUpdated,
		func(_ context.Context, e domain.Event) {
			updated, ok := e.(events.TransactionStatusUpdated)
			if !ok {
				return
			}
			logger.Info("transaction status updated",
				"transaction_id", updated.Transaction.ID,
				"old_status", updated.OldStatus,
				"new_status", updated.NewStatus,
			)
		},
	)
}
