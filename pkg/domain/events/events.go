// Package events defines the domain events emitted around transaction lifecycle
// changes. Subscribers (logging, metrics, webhooks) are registered on the event
// bus; no core logic depends on their delivery.
package events

import "github.com/sunray-eu/payment-service/pkg/domain"

// Event type discriminators used for bus subscriptions.
const (
	EventTypeTransactionCreated       = "TransactionCreated"
	EventTypeTransactionStatusUpdated = "TransactionStatusUpdated"
)

// TransactionCreated is emitted once, after a transaction is persisted.
type TransactionCreated struct {
	Transaction domain.Transaction
}

// Type implements domain.Event.
func (TransactionCreated) Type() string { return EventTypeTransactionCreated }

// TransactionStatusUpdated is emitted after a status transition is committed.
type TransactionStatusUpdated struct {
	Transaction domain.Transaction
	OldStatus   domain.Status
	NewStatus   domain.Status
}

// Type implements domain.Event.
func (TransactionStatusUpdated) Type() string { return EventTypeTransactionStatusUpdated }
