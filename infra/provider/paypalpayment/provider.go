// Package paypalpayment integrates the PayPal Orders API. It models the
// immediate-capture flow: the payer approves via a redirect link, and resolving
// the approval captures the order in one call that either succeeds or is
// declined.
package paypalpayment

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
	"github.com/sunray-eu/payment-service/pkg/config"
	"github.com/sunray-eu/payment-service/pkg/currency"
	"github.com/sunray-eu/payment-service/pkg/domain"
	"github.com/sunray-eu/payment-service/pkg/provider"
)

// Provider implements provider.PaymentProvider against the PayPal REST API.
type Provider struct {
	cfg     *config.PayPal
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

// New creates a configured PayPal adapter. Outbound calls share a circuit
// breaker; while it is open every call surfaces as ProviderUnavailable.
func New(cfg *config.PayPal) *Provider {
	return &Provider{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.HTTPTimeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name: "paypal",
			// Gateway-side rejections of our input are not transport failures
			// and must not open the breaker.
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, domain.ErrInvalidRequest)
			},
		}),
	}
}

type orderLink struct {
	Href string `json:"href"`
	Rel  string `json:"rel"`
}

type orderResponse struct {
	ID     string      `json:"id"`
	Status string      `json:"status"`
	Links  []orderLink `json:"links"`
	Error  string      `json:"error"`
	Payer  struct {
		Name struct {
			GivenName string `json:"given_name"`
		} `json:"name"`
	} `json:"payer"`
	PurchaseUnits []struct {
		Payments struct {
			Captures []struct {
				Amount struct {
					Value        string `json:"value"`
					CurrencyCode string `json:"currency_code"`
				} `json:"amount"`
			} `json:"captures"`
		} `json:"payments"`
	} `json:"purchase_units"`
}

// CreatePaymentLink creates a CAPTURE-intent order and returns its approve
// link plus the order id as the correlation reference.
func (p *Provider) CreatePaymentLink(
	ctx context.Context,
	amount decimal.Decimal,
	currencyCode, returnURL, cancelURL string,
) (*provider.PaymentLink, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidRequest)
	}
	if len(currencyCode) != 3 {
		return nil, fmt.Errorf("%w: currency must be a 3-letter code", domain.ErrInvalidRequest)
	}

	code := strings.ToUpper(currencyCode)
	// Round at the currency's minor-unit precision before transmission.
	value := currency.FromMinorUnits(currency.ToMinorUnits(amount, code), code)

	body := map[string]any{
		"intent": "CAPTURE",
		"purchase_units": []map[string]any{{
			"amount": map[string]any{
				"currency_code": code,
				"value":         value.String(),
			},
		}},
		"application_context": map[string]any{
			"brand_name":          p.cfg.BrandName,
			"shipping_preference": "NO_SHIPPING",
			"user_action":         "PAY_NOW",
			"return_url":          returnURL,
			"cancel_url":          cancelURL,
		},
	}

	order, err := p.post(ctx, "/v2/checkout/orders", body)
	if err != nil {
		return nil, err
	}

	for _, link := range order.Links {
		if link.Rel == "approve" {
			return &provider.PaymentLink{URL: link.Href, Reference: order.ID}, nil
		}
	}
	return nil, fmt.Errorf(
		"%w: order %s has no approve link", domain.ErrProviderUnavailable, order.ID,
	)
}

// ResolveApproval captures the order behind the correlation reference. A
// decline (or a stale, already-finalized order) yields a Failed outcome; only
// transport trouble is an error.
func (p *Provider) ResolveApproval(
	ctx context.Context,
	reference string,
) (*provider.Outcome, error) {
	order, err := p.post(ctx, "/v2/checkout/orders/"+reference+"/capture", nil)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			// The gateway rejected the capture: stale reference, not yet
			// approved, or already captured.
			return &provider.Outcome{
				Status:  provider.OutcomeFailed,
				Message: "we cannot capture the payment, please try again",
			}, nil
		}
		return nil, err
	}

	if order.Error != "" {
		return &provider.Outcome{Status: provider.OutcomeFailed, Message: order.Error}, nil
	}
	if len(order.PurchaseUnits) == 0 || len(order.PurchaseUnits[0].Payments.Captures) == 0 {
		return &provider.Outcome{
			Status:  provider.OutcomeFailed,
			Message: "we cannot capture the payment, please try again",
		}, nil
	}

	capture := order.PurchaseUnits[0].Payments.Captures[0].Amount
	amount, err := decimal.NewFromString(capture.Value)
	if err != nil {
		return nil, fmt.Errorf(
			"%w: unparseable capture amount %q", domain.ErrProviderUnavailable, capture.Value,
		)
	}
	return &provider.Outcome{
		Status:    provider.OutcomeSuccess,
		PayerName: order.Payer.Name.GivenName,
		Amount:    amount,
		Currency:  capture.CurrencyCode,
	}, nil
}

// post sends an authorized JSON request through the circuit breaker and decodes
// the order-shaped response. 4xx maps to InvalidRequest, transport errors and
// 5xx to ProviderUnavailable.
func (p *Provider) post(
	ctx context.Context,
	path string,
	body map[string]any,
) (*orderResponse, error) {
	result, err := p.breaker.Execute(func() (any, error) {
		var reader io.Reader
		if body != nil {
			payload, err := json.Marshal(body)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
			}
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseUri+path, reader)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", p.accessToken())

		resp, err := p.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
		}
		defer resp.Body.Close() //nolint:errcheck

		switch {
		case resp.StatusCode >= 500:
			return nil, fmt.Errorf(
				"%w: paypal answered %d", domain.ErrProviderUnavailable, resp.StatusCode,
			)
		case resp.StatusCode >= 400:
			return nil, fmt.Errorf(
				"%w: paypal rejected the request with %d", domain.ErrInvalidRequest, resp.StatusCode,
			)
		}

		var order orderResponse
		if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
			return nil, fmt.Errorf("%w: decoding response: %v", domain.ErrProviderUnavailable, err)
		}
		return &order, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: circuit breaker open", domain.ErrProviderUnavailable)
		}
		return nil, err
	}
	return result.(*orderResponse), nil
}

// accessToken derives the basic-auth credential from the configured client
// id/secret pair.
func (p *Provider) accessToken() string {
	credentials := base64.StdEncoding.EncodeToString(
		[]byte(p.cfg.ClientId + ":" + p.cfg.ClientSecret),
	)
	return "Basic " + credentials
}
