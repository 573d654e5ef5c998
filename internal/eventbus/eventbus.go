package eventbus

import (
	"io"
	"log"
	"runtime/debug"
	"sync"

	"listkit/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSelectedIndexChanged     = domain.EventSelectedIndexChanged
	EventSelectedItemChanged      = domain.EventSelectedItemChanged
	EventCanSelectNextChanged     = domain.EventCanSelectNextChanged
	EventCanSelectPreviousChanged = domain.EventCanSelectPreviousChanged
	EventTypedPrefixChanged       = domain.EventTypedPrefixChanged
)

// Re-export domain event types
type SelectedIndexChangedEvent = domain.SelectedIndexChangedEvent
type SelectedItemChangedEvent = domain.SelectedItemChangedEvent
type CanSelectNextChangedEvent = domain.CanSelectNextChangedEvent
type CanSelectPreviousChangedEvent = domain.CanSelectPreviousChangedEvent
type TypedPrefixChangedEvent = domain.TypedPrefixChangedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	SubscribeAll(handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus. Handlers run synchronously
// on the publishing goroutine, in subscription order, so a listener observes
// the component exactly as it was when the change was announced.
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	all      []subscription
	nextID   uint64
	logger   *log.Logger
}

// New creates a new event bus that discards its diagnostics
func New() EventBus {
	return NewWithLogger(log.New(io.Discard, "", 0))
}

// NewWithLogger creates a new event bus that reports handler panics to logger
func NewWithLogger(logger *log.Logger) EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
		logger:   logger,
	}
}

// Publish delivers an event to all subscribers of its type, then to the
// subscribers of every type.
func (b *bus) Publish(event DomainEvent) {
	b.mu.RLock()
	// Copy so handlers may subscribe or unsubscribe while we iterate
	targets := make([]subscription, 0, len(b.handlers[event.Type()])+len(b.all))
	targets = append(targets, b.handlers[event.Type()]...)
	targets = append(targets, b.all...)
	b.mu.RUnlock()

	for _, sub := range targets {
		b.call(sub.handler, event)
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.handlers[eventType] = remove(b.handlers[eventType], id)
	}
}

// SubscribeAll subscribes to every event type
func (b *bus) SubscribeAll(handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.all = append(b.all, subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.all = remove(b.all, id)
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	h(event)
}

func remove(subs []subscription, id uint64) []subscription {
	out := make([]subscription, 0, len(subs))
	for _, s := range subs {
		if s.id != id {
			out = append(out, s)
		}
	}
	return out
}
