// Package stripepayment integrates Stripe payment intents. It models the
// synchronous-approval flow with a client-side follow-up: confirming an intent
// can come back as requires_action (3-D Secure), in which case the caller gets
// the challenge payload and the approval is resolved again later with the same
// intent id.
package stripepayment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/sunray-eu/payment-service/pkg/config"
	"github.com/sunray-eu/payment-service/pkg/currency"
	"github.com/sunray-eu/payment-service/pkg/domain"
	"github.com/sunray-eu/payment-service/pkg/provider"
)

// Provider implements provider.PaymentProvider using the Stripe API.
type Provider struct {
	client *stripe.Client
	cfg    *config.Stripe
}

// New creates a configured Stripe adapter.
func New(cfg *config.Stripe) *Provider {
	return &Provider{
		client: stripe.NewClient(cfg.ApiKey),
		cfg:    cfg,
	}
}

// CreatePaymentLink creates a manual-confirmation payment intent and returns
// the configured approval page as the payer-facing link, with the intent id as
// the correlation reference.
func (p *Provider) CreatePaymentLink(
	ctx context.Context,
	amount decimal.Decimal,
	currencyCode, _, _ string,
) (*provider.PaymentLink, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidRequest)
	}
	if len(currencyCode) != 3 {
		return nil, fmt.Errorf("%w: currency must be a 3-letter code", domain.ErrInvalidRequest)
	}

	params := &stripe.PaymentIntentCreateParams{
		Amount:   stripe.Int64(currency.ToMinorUnits(amount, currencyCode)),
		Currency: stripe.String(strings.ToLower(currencyCode)),
		ConfirmationMethod: stripe.String(
			string(stripe.PaymentIntentConfirmationMethodManual),
		),
		PaymentMethod: stripe.String(p.cfg.PaymentMethod),
	}

	intent, err := p.client.V1PaymentIntents.Create(ctx, params)
	if err != nil {
		return nil, mapStripeError(err)
	}

	return &provider.PaymentLink{
		URL:       p.cfg.ApprovalURL,
		Reference: intent.ID,
	}, nil
}

// ResolveApproval confirms the payment intent behind the correlation
// reference. Safe to call again after a requires_action outcome; a stale or
// already-finalized intent yields a Failed outcome instead of an error.
func (p *Provider) ResolveApproval(
	ctx context.Context,
	reference string,
) (*provider.Outcome, error) {
	confirmation, err := p.client.V1PaymentIntents.Confirm(
		ctx,
		reference,
		&stripe.PaymentIntentConfirmParams{
			PaymentMethod: stripe.String(p.cfg.PaymentMethod),
		},
	)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			// Card declines and unconfirmable (stale, already finalized)
			// intents are definite outcomes, not transport trouble.
			if stripeErr.Type == stripe.ErrorTypeCard ||
				stripeErr.Type == stripe.ErrorTypeInvalidRequest {
				return &provider.Outcome{
					Status:  provider.OutcomeFailed,
					Message: failureMessage(stripeErr),
				}, nil
			}
		}
		return nil, mapStripeError(err)
	}

	switch confirmation.Status {
	case stripe.PaymentIntentStatusRequiresAction:
		return &provider.Outcome{
			Status: provider.OutcomeRequiresAction,
			Action: confirmation.ClientSecret,
		}, nil

	case stripe.PaymentIntentStatusSucceeded:
		code := strings.ToUpper(string(confirmation.Currency))
		outcome := &provider.Outcome{
			Status:   provider.OutcomeSuccess,
			Amount:   currency.FromMinorUnits(confirmation.Amount, code),
			Currency: code,
		}
		if confirmation.LatestCharge != nil && confirmation.LatestCharge.BillingDetails != nil {
			outcome.PayerName = confirmation.LatestCharge.BillingDetails.Name
		}
		return outcome, nil
	}

	return &provider.Outcome{
		Status: provider.OutcomeFailed,
		Message: fmt.Sprintf(
			"we cannot capture the payment (intent status %s), please try again",
			confirmation.Status,
		),
	}, nil
}

// mapStripeError folds Stripe transport and server errors into the provider
// error taxonomy.
func mapStripeError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		if stripeErr.HTTPStatusCode >= 500 {
			return fmt.Errorf("%w: stripe answered %d", domain.ErrProviderUnavailable, stripeErr.HTTPStatusCode)
		}
		return fmt.Errorf("%w: %s", domain.ErrInvalidRequest, failureMessage(stripeErr))
	}
	// Anything without a structured Stripe error is transport-level.
	return fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
}

func failureMessage(stripeErr *stripe.Error) string {
	if stripeErr.Msg != "" {
		return stripeErr.Msg
	}
	return "we cannot capture the payment, please try again"
}
