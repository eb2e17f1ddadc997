package samplepayment_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunray-eu/payment-service/infra/provider/samplepayment"
	"github.com/sunray-eu/payment-service/pkg/domain"
	"github.com/sunray-eu/payment-service/pkg/provider"
)

func TestCreatePaymentLink(t *testing.T) {
	p := samplepayment.New()

	link, err := p.CreatePaymentLink(
		context.Background(),
		decimal.RequireFromString("100.00"),
		"USD", "", "",
	)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link.URL, "https://example.com/payment/"))
	assert.NotEmpty(t, link.Reference)
	assert.True(t, strings.HasSuffix(link.URL, link.Reference))
}

func TestCreatePaymentLink_Invalid(t *testing.T) {
	p := samplepayment.New()

	_, err := p.CreatePaymentLink(context.Background(), decimal.Zero, "USD", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	_, err = p.CreatePaymentLink(context.Background(), decimal.NewFromInt(1), "US", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestResolveApproval_AlwaysSucceeds(t *testing.T) {
	p := samplepayment.New()

	outcome, err := p.ResolveApproval(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, provider.OutcomeSuccess, outcome.Status)
}
