package config

import "time"

type DB struct {
	Url string `envconfig:"URL"`
}

type Jwt struct {
	Secret string        `envconfig:"SECRET" required:"true"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Log struct {
	Level  int    `envconfig:"LEVEL" default:"0"`
	Format string `envconfig:"FORMAT" default:"json"`
}

type Server struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port int    `envconfig:"PORT" default:"3000"`
}

//revive:disable
type Stripe struct {
	ApiKey string `envconfig:"API_KEY"`
	// ApprovalURL is the payer-facing page that drives payment confirmation;
	// it is returned as the payment link for Stripe transactions.
	ApprovalURL string `envconfig:"APPROVAL_URL" default:"http://localhost:3000/payment/stripe/approval"`
	// PaymentMethod is attached when confirming manual-confirmation intents.
	PaymentMethod string `envconfig:"PAYMENT_METHOD" default:"pm_card_visa"`
}

//revive:enable

type PayPal struct {
	BaseUri      string        `envconfig:"BASE_URI" default:"https://api.sandbox.paypal.com"`
	ClientId     string        `envconfig:"CLIENT_ID"`
	ClientSecret string        `envconfig:"CLIENT_SECRET"`
	BrandName    string        `envconfig:"BRAND_NAME" default:"payment-service"`
	HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
}

type Sample struct {
	Enabled bool `envconfig:"ENABLED" default:"true"`
}

type PaymentProviders struct {
	Stripe *Stripe `envconfig:"STRIPE"`
	PayPal *PayPal `envconfig:"PAYPAL"`
	Sample *Sample `envconfig:"SAMPLE"`
}

type Payment struct {
	ReturnURL string `envconfig:"RETURN_URL" default:"http://localhost:3000/payment/return"`
	CancelURL string `envconfig:"CANCEL_URL" default:"http://localhost:3000/payment/cancel"`
}

type App struct {
	Env              string            `envconfig:"APP_ENV" default:"development"`
	Server           *Server           `envconfig:"SERVER"`
	Log              *Log              `envconfig:"LOG"`
	DB               *DB               `envconfig:"DATABASE"`
	Jwt              *Jwt              `envconfig:"AUTH_JWT"`
	RateLimit        *RateLimit        `envconfig:"RATE_LIMIT"`
	Payment          *Payment          `envconfig:"PAYMENT"`
	PaymentProviders *PaymentProviders `envconfig:"PAYMENT_PROVIDER"`
}
