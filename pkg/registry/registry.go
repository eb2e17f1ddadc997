// Package registry resolves payment provider names to configured adapter
// instances. Adapters are constructed once at startup and reused; resolution is
// side-effect-free and returns the same instance across calls.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/sunray-eu/payment-service/pkg/domain"
	"github.com/sunray-eu/payment-service/pkg/provider"
)

// Resolver is the single extension point for adding gateways.
type Resolver struct {
	mu        sync.RWMutex
	providers map[string]provider.PaymentProvider
}

// NewResolver creates an empty resolver.
func NewResolver() *Resolver {
	return &Resolver{providers: make(map[string]provider.PaymentProvider)}
}

// Register binds a provider name to an adapter instance. Registering the same
// name again replaces the previous adapter.
func (r *Resolver) Register(name string, p provider.PaymentProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[name] = p
}

// Resolve returns the adapter registered under name, or
// domain.ErrUnknownProvider when none is.
func (r *Resolver) Resolve(name string) (provider.PaymentProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownProvider, name)
	}
	return p, nil
}

// Names returns the registered provider names, sorted.
func (r *Resolver) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
