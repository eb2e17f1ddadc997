package eventbus

import (
	"context"

	"github.com/sunray-eu/payment-service/pkg/domain"
)

// Bus defines the contract for publishing and subscribing to domain events.
// Publish is fire-and-forget: subscriber failures never reach the publisher.
type Bus interface {
	Publish(ctx context.Context, event domain.Event)
	Subscribe(eventType string, handler func(context.Context, domain.Event))
}
