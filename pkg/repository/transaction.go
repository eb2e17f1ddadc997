// Package repository declares the persistence contracts the core depends on.
// Implementations live under infra/repository.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sunray-eu/payment-service/pkg/domain"
)

// TransactionCreate carries the fields persisted at payment-link creation.
type TransactionCreate struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Amount           decimal.Decimal
	Currency         string
	Provider         string
	Status           domain.Status
	PaymentLink      string
	PendingReference string
}

// StatusUpdate is an atomic compare-and-set on a transaction's status.
// From is the expected current status; the write only succeeds when the
// persisted row still carries it.
type StatusUpdate struct {
	From domain.Status
	To   domain.Status
	// ClearPendingReference drops the provider correlation id in the same
	// write, required when To is terminal.
	ClearPendingReference bool
}

// TransactionRepository provides load-by-id and atomic status updates.
type TransactionRepository interface {
	Create(ctx context.Context, create TransactionCreate) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	// UpdateStatus applies a compare-and-set status write. It returns
	// domain.ErrStatusConflict when a concurrent caller won the write, so the
	// loser can surface an invalid transition instead of corrupting state.
	UpdateStatus(ctx context.Context, id uuid.UUID, update StatusUpdate) error
}
