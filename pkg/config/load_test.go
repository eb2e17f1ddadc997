package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")

	cfg, err := loadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
	assert.Equal(t, "https://api.sandbox.paypal.com", cfg.PaymentProviders.PayPal.BaseUri)
	assert.True(t, cfg.PaymentProviders.Sample.Enabled)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("PAYMENT_PROVIDER_PAYPAL_CLIENT_ID", "client-id")
	t.Setenv("PAYMENT_PROVIDER_STRIPE_API_KEY", "sk_test_123")

	cfg, err := loadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "client-id", cfg.PaymentProviders.PayPal.ClientId)
	assert.Equal(t, "sk_test_123", cfg.PaymentProviders.Stripe.ApiKey)
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "****", maskValue("short"))
	assert.Equal(t, "po****gres", maskValue("postgres://user:pass@db/postgres"))
}
