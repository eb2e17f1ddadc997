// Package provider defines the capability contract every payment gateway
// integration must satisfy, and the normalized outcome shape adapters hand back
// to the orchestrator. Gateway-specific response structures never leave an
// adapter; the rest of the system only sees these types.
package provider

import (
	"context"

	"github.com/shopspring/decimal"
)

// OutcomeStatus discriminates the three permitted approval results.
type OutcomeStatus string

const (
	// OutcomeSuccess means the provider approved and captured the payment.
	OutcomeSuccess OutcomeStatus = "success"
	// OutcomeFailed means the provider explicitly declined the payment.
	OutcomeFailed OutcomeStatus = "failed"
	// OutcomeRequiresAction means the payer must complete a follow-up action
	// (e.g. 3-D Secure) before the approval can be resolved again.
	OutcomeRequiresAction OutcomeStatus = "requires_action"
)

// Outcome is the tagged result of an approval attempt.
type Outcome struct {
	Status OutcomeStatus

	// Set on OutcomeSuccess.
	PayerName string
	Amount    decimal.Decimal
	Currency  string

	// Set on OutcomeFailed.
	Message string

	// Set on OutcomeRequiresAction: a redirect URL or challenge descriptor the
	// caller presents to the payer.
	Action string
}

// PaymentLink is the payer-facing result of creating a payment request.
type PaymentLink struct {
	// URL is handed to the payer.
	URL string
	// Reference is the provider correlation id persisted as the transaction's
	// pending reference and later passed to ResolveApproval.
	Reference string
}

// PaymentProvider is the adapter contract for a single gateway. Implementations
// are stateless per request and safe for concurrent use; all per-request state
// lives on the transaction record.
type PaymentProvider interface {
	// CreatePaymentLink registers a payment request with the gateway and returns
	// the payer-facing link plus a correlation reference. Transport failures
	// surface as domain.ErrProviderUnavailable, rejected input as
	// domain.ErrInvalidRequest.
	CreatePaymentLink(
		ctx context.Context,
		amount decimal.Decimal,
		currency string,
		returnURL string,
		cancelURL string,
	) (*PaymentLink, error)

	// ResolveApproval finalizes the approval for the given correlation
	// reference. It must be safe to call again with the same reference after a
	// requires_action outcome, and must return OutcomeFailed rather than fail
	// for stale or already-finalized references.
	ResolveApproval(ctx context.Context, reference string) (*Outcome, error)
}
