package domain

// Event is the marker interface for domain events published on the event bus.
type Event interface {
	Type() string
}
