// Package currency provides currency metadata and minor-unit conversion used by
// payment provider adapters. Gateways bill in the smallest currency unit, so a
// decimal amount has to be encoded before transmission and decoded when a
// captured amount is reported back.
package currency

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

const (
	// DefaultCurrency is the fallback currency code.
	DefaultCurrency = "USD"
	// DefaultDecimals is the default number of decimal places for currencies.
	DefaultDecimals = 2
)

// Meta holds currency-specific metadata.
type Meta struct {
	Decimals int
	Symbol   string
}

// Registry maps ISO 4217 codes to their metadata.
type Registry struct {
	mu         sync.RWMutex
	currencies map[string]Meta
}

// NewRegistry creates a registry preloaded with the currencies the service
// accepts payments in.
func NewRegistry() *Registry {
	r := &Registry{currencies: make(map[string]Meta)}
	for code, meta := range map[string]Meta{
		"USD": {Decimals: 2, Symbol: "$"},
		"EUR": {Decimals: 2, Symbol: "€"},
		"GBP": {Decimals: 2, Symbol: "£"},
		"JPY": {Decimals: 0, Symbol: "¥"},
		"CAD": {Decimals: 2, Symbol: "C$"},
		"AUD": {Decimals: 2, Symbol: "A$"},
		"CHF": {Decimals: 2, Symbol: "CHF"},
	} {
		r.Register(code, meta)
	}
	return r
}

// Register adds or updates a currency.
func (r *Registry) Register(code string, meta Meta) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.currencies[strings.ToUpper(code)] = meta
}

// Get returns metadata for code, falling back to DefaultDecimals for unknown
// codes so lookups are total.
func (r *Registry) Get(code string) Meta {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if meta, ok := r.currencies[strings.ToUpper(code)]; ok {
		return meta
	}
	return Meta{Decimals: DefaultDecimals, Symbol: strings.ToUpper(code)}
}

// IsSupported reports whether code is registered.
func (r *Registry) IsSupported(code string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.currencies[strings.ToUpper(code)]
	return ok
}

// zeroDecimal lists the currencies whose minor unit equals the major unit.
var zeroDecimal = map[string]bool{
	"JPY": true,
}

// MinorUnitFactor returns 1 for zero-decimal currencies and 100 otherwise.
// Unknown codes default to 100.
func MinorUnitFactor(code string) int64 {
	if zeroDecimal[strings.ToUpper(code)] {
		return 1
	}
	return 100
}

// ToMinorUnits encodes a decimal amount as a gateway minor-unit integer,
// rounding half away from zero at the currency's precision.
func ToMinorUnits(amount decimal.Decimal, code string) int64 {
	factor := decimal.NewFromInt(MinorUnitFactor(code))
	return amount.Mul(factor).Round(0).IntPart()
}

// FromMinorUnits decodes a gateway minor-unit integer back to a decimal amount.
func FromMinorUnits(minor int64, code string) decimal.Decimal {
	factor := decimal.NewFromInt(MinorUnitFactor(code))
	return decimal.NewFromInt(minor).Div(factor)
}
