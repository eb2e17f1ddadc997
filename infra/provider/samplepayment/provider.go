// Package samplepayment is a trivial gateway used for integration testing. It
// never talks to a network and every approval succeeds.
package samplepayment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sunray-eu/payment-service/pkg/domain"
	"github.com/sunray-eu/payment-service/pkg/provider"
)

// Provider implements provider.PaymentProvider.
type Provider struct{}

// New creates the sample provider.
func New() *Provider {
	return &Provider{}
}

// CreatePaymentLink returns a generated link and reference without any
// external call.
func (p *Provider) CreatePaymentLink(
	_ context.Context,
	amount decimal.Decimal,
	currency, _, _ string,
) (*provider.PaymentLink, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidRequest)
	}
	if len(currency) != 3 {
		return nil, fmt.Errorf("%w: currency must be a 3-letter code", domain.ErrInvalidRequest)
	}
	ref := uuid.NewString()
	return &provider.PaymentLink{
		URL:       "https://example.com/payment/" + ref,
		Reference: ref,
	}, nil
}

// ResolveApproval always succeeds.
func (p *Provider) ResolveApproval(_ context.Context, _ string) (*provider.Outcome, error) {
	return &provider.Outcome{Status: provider.OutcomeSuccess}, nil
}
