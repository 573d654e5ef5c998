package domain

// EventType represents the type of change notification
type EventType string

// Event types
const (
	EventSelectedIndexChanged     EventType = "selected-index-changed"
	EventSelectedItemChanged      EventType = "selected-item-changed"
	EventCanSelectNextChanged     EventType = "can-select-next-changed"
	EventCanSelectPreviousChanged EventType = "can-select-previous-changed"
	EventTypedPrefixChanged       EventType = "typed-prefix-changed"
)

// DomainEvent is the interface for all change notifications
type DomainEvent interface {
	Type() EventType
}

// SelectedIndexChangedEvent carries the new selected index (-1 for none)
type SelectedIndexChangedEvent struct {
	SelectedIndex int
}

func (e SelectedIndexChangedEvent) Type() EventType { return EventSelectedIndexChanged }

// SelectedItemChangedEvent carries the new selected item (nil for none)
type SelectedItemChangedEvent struct {
	SelectedItem *Node
}

func (e SelectedItemChangedEvent) Type() EventType { return EventSelectedItemChanged }

// CanSelectNextChangedEvent is emitted when CanSelectNext flips
type CanSelectNextChangedEvent struct {
	CanSelectNext bool
}

func (e CanSelectNextChangedEvent) Type() EventType { return EventCanSelectNextChanged }

// CanSelectPreviousChangedEvent is emitted when CanSelectPrevious flips
type CanSelectPreviousChangedEvent struct {
	CanSelectPrevious bool
}

func (e CanSelectPreviousChangedEvent) Type() EventType { return EventCanSelectPreviousChanged }

// TypedPrefixChangedEvent carries the prefix buffer after a keystroke
type TypedPrefixChangedEvent struct {
	Prefix string
}

func (e TypedPrefixChangedEvent) Type() EventType { return EventTypedPrefixChanged }
