package eventbus_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/sunray-eu/payment-service/pkg/domain"
	"github.com/sunray-eu/payment-service/pkg/domain/events"
	"github.com/sunray-eu/payment-service/pkg/eventbus"
	"github.com/stretchr/testify/assert"
)

func TestPublish_InvokesSubscribers(t *testing.T) {
	bus := eventbus.NewSimpleBus(slog.Default())

	var got []domain.Event
	bus.Subscribe(events.EventTypeTransactionCreated, func(_ context.Context, e domain.Event) {
		got = append(got, e)
	})

	tx := domain.Transaction{ID: uuid.New()}
	bus.Publish(context.Background(), events.TransactionCreated{Transaction: tx})

	assert.Len(t, got, 1)
	created, ok := got[0].(events.TransactionCreated)
	assert.True(t, ok)
	assert.Equal(t, tx.ID, created.Transaction.ID)
}

func TestPublish_UnknownTypeIsNoop(t *testing.T) {
	bus := eventbus.NewSimpleBus(slog.Default())
	assert.NotPanics(t, func() {
		bus.Publish(context.Background(), events.TransactionCreated{})
	})
}

func TestPublish_SwallowsHandlerPanic(t *testing.T) {
	bus := eventbus.NewSimpleBus(slog.Default())

	bus.Subscribe(events.EventTypeTransactionStatusUpdated, func(context.Context, domain.Event) {
		panic("listener blew up")
	})

	var delivered bool
	bus.Subscribe(events.EventTypeTransactionStatusUpdated, func(context.Context, domain.Event) {
		delivered = true
	})

	assert.NotPanics(t, func() {
		bus.Publish(context.Background(), events.TransactionStatusUpdated{})
	})
	assert.True(t, delivered, "a failing subscriber must not block the rest")
}
