package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"github.com/sunray-eu/payment-service/pkg/domain"
)

// SimpleBus is an in-process Bus. Handlers run synchronously on the publishing
// goroutine; a panicking handler is recovered and logged so delivery problems
// never propagate into the publisher's return path.
type SimpleBus struct {
	mu       sync.RWMutex
	handlers map[string][]func(context.Context, domain.Event)
	logger   *slog.Logger
}

// NewSimpleBus creates an empty bus.
func NewSimpleBus(logger *slog.Logger) *SimpleBus {
	return &SimpleBus{
		handlers: make(map[string][]func(context.Context, domain.Event)),
		logger:   logger,
	}
}

// Publish dispatches event to all handlers subscribed to its type.
func (b *SimpleBus) Publish(ctx context.Context, event domain.Event) {
	b.mu.RLock()
	handlers := b.handlers[event.Type()]
	b.mu.RUnlock()

	for _, handler := range handlers {
		b.dispatch(ctx, event, handler)
	}
}

func (b *SimpleBus) dispatch(
	ctx context.Context,
	event domain.Event,
	handler func(context.Context, domain.Event),
) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked",
				"event_type", event.Type(),
				"panic", r,
			)
		}
	}()
	handler(ctx, event)
}

// Subscribe registers handler for the given event type.
func (b *SimpleBus) Subscribe(eventType string, handler func(context.Context, domain.Event)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
