package selection

import (
	"listkit/internal/domain"
	"listkit/internal/items"
	"listkit/internal/state"
	"listkit/internal/trait"
)

// mark is one copy of the (index, item) pair being tracked
type mark struct {
	index int
	item  *domain.Node
}

var none = mark{index: -1}

// Model is the single-selection state machine. It keeps two copies of the
// selection: external is recorded as soon as a write starts and is what
// readers see; internal is recorded once the whole change pipeline (item
// hooks, events, derived flags) has finished for that value. A write of the
// value already in flight returns immediately, so index and item writes made
// from inside hooks or listeners converge instead of recursing.
type Model struct {
	host trait.Host
	next trait.Chain

	required bool
	wraps    bool

	external mark
	internal mark
	marked   *domain.Node // item last reported selected through ItemSelected
}

// Option configures a Model
type Option func(*Model)

// Required makes the model keep a selection whenever items exist
func Required(required bool) Option {
	return func(m *Model) { m.required = required }
}

// Wraps makes navigation past either end cycle to the other end
func Wraps(wraps bool) Option {
	return func(m *Model) { m.wraps = wraps }
}

// New creates the selection trait
func New(opts ...Option) *Model {
	m := &Model{external: none, internal: none}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name identifies the trait in logs
func (m *Model) Name() string {
	return "selection"
}

// Compose provides the Selection and re-validates it when items change
func (m *Model) Compose(host trait.Host, next trait.Chain) trait.Chain {
	m.host = host
	m.next = next
	return trait.Chain{
		Defaults: func(s *state.State) {
			next.Defaults(s)
			s.SelectedIndex = -1
			s.SelectedItem = nil
			s.SelectionRequired = m.required
			s.SelectionWraps = m.wraps
		},
		ItemsChanged: m.itemsChanged,
		Selection:    m,
	}
}

// SelectedIndex returns the selected position, or -1
func (m *Model) SelectedIndex() int {
	return m.host.State().SelectedIndex
}

// SelectedItem returns the selected item, or nil
func (m *Model) SelectedItem() *domain.Node {
	return m.host.State().SelectedItem
}

// SetSelectedIndex selects the item at index. Indices outside the list
// clear the selection, unless a selection is required.
func (m *Model) SetSelectedIndex(index int) bool {
	return m.apply(index)
}

// SetSelectedItem selects item, found by identity. An item that is not in
// the list clears the selection, unless a selection is required.
func (m *Model) SetSelectedItem(item *domain.Node) bool {
	return m.apply(items.IndexOf(m.host.Items(), item))
}

// SelectIndex selects the candidate index after wrapping or clamping it
func (m *Model) SelectIndex(candidate int) bool {
	n := len(m.host.Items())
	if n == 0 {
		return false
	}
	index := Bound(candidate, n, m.host.State().SelectionWraps)
	if index == m.external.index {
		return false
	}
	return m.apply(index)
}

// SelectFirst selects the first item
func (m *Model) SelectFirst() bool {
	return m.SelectIndex(0)
}

// SelectLast selects the last item
func (m *Model) SelectLast() bool {
	return m.SelectIndex(len(m.host.Items()) - 1)
}

// SelectNext selects the item after the current one. With nothing selected
// it selects the first item.
func (m *Model) SelectNext() bool {
	return m.SelectIndex(m.SelectedIndex() + 1)
}

// SelectPrevious selects the item before the current one. With nothing
// selected it selects the last item.
func (m *Model) SelectPrevious() bool {
	current := m.SelectedIndex()
	if current < 0 {
		return m.SelectLast()
	}
	return m.SelectIndex(current - 1)
}

// SetSelectionRequired changes the required-selection policy. Turning it on
// selects the first item if nothing is selected.
func (m *Model) SetSelectionRequired(required bool) {
	m.host.SetState(func(s *state.State) { s.SelectionRequired = required })
	if required && m.external.index < 0 && len(m.host.Items()) > 0 {
		m.apply(0)
	}
	m.updateFlags()
}

// SetSelectionWraps changes the wrapping policy
func (m *Model) SetSelectionWraps(wraps bool) {
	m.host.SetState(func(s *state.State) { s.SelectionWraps = wraps })
	m.updateFlags()
}

// itemsChanged keeps the selection valid after the item list changed
func (m *Model) itemsChanged() {
	m.next.ItemsChanged()

	list := m.host.Items()
	n := len(list)
	prev := m.external

	switch {
	case n == 0:
		if prev != none {
			m.apply(-1)
		}
	case prev.item == nil:
		if m.host.State().SelectionRequired {
			m.apply(0)
		}
	default:
		if index := items.IndexOf(list, prev.item); index >= 0 {
			if index != prev.index {
				// Same item, new position
				m.apply(index)
			}
		} else {
			// The selected item is gone; take whatever now occupies its place
			m.apply(min(prev.index, n-1))
		}
	}
	m.updateFlags()
}

// apply is the two-phase selection commit shared by every setter
func (m *Model) apply(index int) bool {
	list := m.host.Items()
	index = Normalize(index, len(list))
	if index < 0 && m.host.State().SelectionRequired && len(list) > 0 {
		// Keep what is selected, or fall back to the first item
		index = max(Normalize(m.external.index, len(list)), 0)
	}
	target := none
	if index >= 0 {
		target = mark{index: index, item: list[index]}
	}
	if target == m.external {
		return false
	}

	// Phase one: the new value is visible immediately
	m.external = target
	m.host.SetState(func(s *state.State) {
		s.SelectedIndex = target.index
		s.SelectedItem = target.item
	})

	// Phase two: derived flags, item hooks, then notifications
	m.updateFlags()
	if m.external != target {
		return true
	}
	m.markSelected(target.item)
	if m.external != target {
		// A hook selected something else; that write already finished
		return true
	}
	prev := m.internal
	m.internal = target

	if prev.index != target.index {
		m.host.Emit(domain.SelectedIndexChangedEvent{SelectedIndex: target.index})
		if m.external != target {
			return true
		}
	}
	if prev.item != target.item {
		m.host.Emit(domain.SelectedItemChangedEvent{SelectedItem: target.item})
	}
	if m.external != target {
		return true
	}
	m.host.Chain().SelectionChanged(target.index, target.item)
	return true
}

// markSelected reports the old item as deselected and the new one as
// selected. A reentrant selection from inside a hook takes over reporting.
func (m *Model) markSelected(item *domain.Node) {
	if m.marked == item {
		return
	}
	hook := m.host.Chain().ItemSelected
	old := m.marked
	m.marked = item
	if old != nil {
		hook(old, false)
	}
	if item != nil && m.marked == item {
		hook(item, true)
	}
}

// updateFlags recomputes CanSelectNext and CanSelectPrevious
func (m *Model) updateFlags() {
	s := m.host.State()
	canNext, canPrevious := CanSelect(len(m.host.Items()), s.SelectedIndex, s.SelectionWraps)
	if canNext == s.CanSelectNext && canPrevious == s.CanSelectPrevious {
		return
	}
	m.host.SetState(func(s *state.State) {
		s.CanSelectNext = canNext
		s.CanSelectPrevious = canPrevious
	})
	if canNext != s.CanSelectNext {
		m.host.Emit(domain.CanSelectNextChangedEvent{CanSelectNext: canNext})
	}
	if canPrevious != s.CanSelectPrevious {
		m.host.Emit(domain.CanSelectPreviousChangedEvent{CanSelectPrevious: canPrevious})
	}
}
