// Package domain holds the payment transaction entity and its status state
// machine. Status is only ever mutated through ApplyStatus; everything else on a
// transaction is immutable after creation.
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the lifecycle state of a transaction.
type Status string

const (
	// StatusNew is the only status a transaction can be created in.
	StatusNew Status = "new"
	// StatusProcessing means a payment link was handed to the payer.
	StatusProcessing Status = "processing"
	// StatusCompleted is terminal: the provider approved and captured the payment.
	StatusCompleted Status = "completed"
	// StatusFailed is terminal: the provider declined the payment.
	StatusFailed Status = "failed"
)

// transitions is the full edge table of the state machine.
var transitions = map[Status][]Status{
	StatusNew:        {StatusProcessing},
	StatusProcessing: {StatusCompleted, StatusFailed},
}

// ParseStatus validates a caller-supplied status string.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusNew, StatusProcessing, StatusCompleted, StatusFailed:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: unknown status %q", ErrInvalidRequest, s)
}

// Terminal reports whether no further transition is permitted from s.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// CanTransition reports whether the edge s -> to is in the transition table.
func (s Status) CanTransition(to Status) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Transaction is a payment request against a single provider.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Currency    string
	Provider    string
	Status      Status
	PaymentLink string

	// PendingReference is the provider correlation id set at link-creation time
	// and cleared when the transaction reaches a terminal status.
	PendingReference string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTransaction creates a transaction in StatusNew with a fresh id.
func NewTransaction(
	userID uuid.UUID,
	amount decimal.Decimal,
	currency, provider, paymentLink, pendingReference string,
) *Transaction {
	now := time.Now().UTC()
	return &Transaction{
		ID:               uuid.New(),
		UserID:           userID,
		Amount:           amount,
		Currency:         currency,
		Provider:         provider,
		Status:           StatusNew,
		PaymentLink:      paymentLink,
		PendingReference: pendingReference,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// ApplyStatus moves the transaction along a legal edge. It rejects everything
// not in the transition table with an InvalidTransitionError and leaves the
// transaction untouched. On entering a terminal status the pending reference is
// cleared. ApplyStatus performs no provider calls.
func (t *Transaction) ApplyStatus(target Status) error {
	if !t.Status.CanTransition(target) {
		return &InvalidTransitionError{From: t.Status, To: target}
	}
	t.Status = target
	if target.Terminal() {
		t.PendingReference = ""
	}
	t.UpdatedAt = time.Now().UTC()
	return nil
}
