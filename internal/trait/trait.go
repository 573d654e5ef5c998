// Package trait defines the protocol list behaviors use to layer onto one
// another. A component is built by composing traits in order; each trait
// receives the chain assembled by the traits before it and returns the hooks
// it contributes, delegating to the earlier hooks explicitly.
package trait

import (
	"listkit/internal/domain"
	"listkit/internal/state"
)

// Trait is one behavior layer of a component
type Trait interface {
	// Name identifies the trait in logs
	Name() string
	// Compose links the trait into host. next is the chain built so far; the
	// returned chain may leave hooks nil to inherit next's. Compose must not
	// read or write state: the container does not exist yet.
	Compose(host Host, next Chain) Chain
}

// Chain is the set of overridable hooks shared by the traits of a component.
// Calling a hook on the chain passed to Compose is the equivalent of calling
// the previous layer's implementation; calling it on Host.Chain() dispatches
// to the outermost layer.
type Chain struct {
	// Defaults contributes initial state values
	Defaults func(s *state.State)
	// ContentChanged runs after the raw content collection was replaced
	ContentChanged func()
	// ItemsChanged runs after the derived item list may have changed
	ItemsChanged func()
	// ItemSelected runs once per item entering (true) or leaving (false) the
	// selected state. The leaving item is always reported first.
	ItemSelected func(item *domain.Node, selected bool)
	// SelectionChanged runs after a selection change has been fully applied
	SelectionChanged func(index int, item *domain.Node)
	// KeyDown offers a key to the chain and reports whether it was handled
	KeyDown func(key domain.Key) bool

	// Items provides the derived item list
	Items func() []*domain.Node
	// Selection is the selection state machine, if one is composed
	Selection Selection
}

// Over returns c with every nil hook taken from base
func (c Chain) Over(base Chain) Chain {
	if c.Defaults == nil {
		c.Defaults = base.Defaults
	}
	if c.ContentChanged == nil {
		c.ContentChanged = base.ContentChanged
	}
	if c.ItemsChanged == nil {
		c.ItemsChanged = base.ItemsChanged
	}
	if c.ItemSelected == nil {
		c.ItemSelected = base.ItemSelected
	}
	if c.SelectionChanged == nil {
		c.SelectionChanged = base.SelectionChanged
	}
	if c.KeyDown == nil {
		c.KeyDown = base.KeyDown
	}
	if c.Items == nil {
		c.Items = base.Items
	}
	if c.Selection == nil {
		c.Selection = base.Selection
	}
	return c
}

// Base returns a chain whose hooks do nothing. Items and Selection stay nil
// so a missing provider can be detected.
func Base() Chain {
	return Chain{
		Defaults:         func(*state.State) {},
		ContentChanged:   func() {},
		ItemsChanged:     func() {},
		ItemSelected:     func(*domain.Node, bool) {},
		SelectionChanged: func(int, *domain.Node) {},
		KeyDown:          func(domain.Key) bool { return false },
	}
}

// Host is the component as seen by its traits
type Host interface {
	State() state.State
	SetState(fn func(*state.State)) <-chan struct{}
	// Items returns the derived item list, or nil when no trait provides one
	Items() []*domain.Node
	// Selection returns the composed selection model, or nil
	Selection() Selection
	// Chain returns the fully composed chain
	Chain() Chain
	// Emit publishes a change notification if change events are being raised
	Emit(event domain.DomainEvent)
	Scheduler() state.Scheduler
	// Warn logs a developer warning once per distinct format string
	Warn(format string, args ...any)
}

// Selection is the single-selection state machine
type Selection interface {
	SelectedIndex() int
	SelectedItem() *domain.Node
	SetSelectedIndex(index int) bool
	SetSelectedItem(item *domain.Node) bool
	SelectIndex(candidate int) bool
	SelectFirst() bool
	SelectLast() bool
	SelectNext() bool
	SelectPrevious() bool
	SetSelectionRequired(required bool)
	SetSelectionWraps(wraps bool)
}
