package domain

import (
	"errors"
	"fmt"
)

// Common domain errors
var (
	// ErrInvalidTransition is returned when a status change is not allowed by the
	// transaction state machine.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrUnknownProvider is returned when no payment provider is registered under
	// the requested name.
	ErrUnknownProvider = errors.New("unknown payment provider")
	// ErrProviderUnavailable is returned when a payment provider cannot be reached
	// or answers with a server error. Callers may retry.
	ErrProviderUnavailable = errors.New("payment provider unavailable")
	// ErrInvalidRequest is returned when caller-supplied data is rejected before
	// reaching a provider.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrApprovalFailed is returned when a provider explicitly declined the payment.
	ErrApprovalFailed = errors.New("approval failed")
	// ErrTransactionNotFound is returned when no transaction exists for the given id.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrStatusConflict is returned when a concurrent update won the status write.
	ErrStatusConflict = errors.New("transaction status conflict")
)

// InvalidTransitionError carries the attempted edge for diagnostics.
// It matches ErrInvalidTransition under errors.Is.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
