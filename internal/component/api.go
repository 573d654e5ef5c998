package component

import (
	"listkit/internal/domain"
	"listkit/internal/state"
	"listkit/internal/trait"
)

var _ trait.Host = (*Component)(nil)

// Directional is implemented by traits that navigate by direction
type Directional interface {
	Go(direction domain.Direction) bool
}

// Pager is implemented by traits that navigate by page
type Pager interface {
	PageUp() bool
	PageDown() bool
}

// PrefixTyper is implemented by traits that select by typed prefix
type PrefixTyper interface {
	SelectItemWithTextPrefix(prefix string) bool
}

// SelectedIndex returns the selected position, or -1
func (c *Component) SelectedIndex() int {
	return c.State().SelectedIndex
}

// SelectedItem returns the selected item, or nil
func (c *Component) SelectedItem() *domain.Node {
	return c.State().SelectedItem
}

// SelectionRequired reports the required-selection policy
func (c *Component) SelectionRequired() bool {
	return c.State().SelectionRequired
}

// SelectionWraps reports the wrapping policy
func (c *Component) SelectionWraps() bool {
	return c.State().SelectionWraps
}

// CanSelectNext reports whether SelectNext can move the selection
func (c *Component) CanSelectNext() bool {
	return c.State().CanSelectNext
}

// CanSelectPrevious reports whether SelectPrevious can move the selection
func (c *Component) CanSelectPrevious() bool {
	return c.State().CanSelectPrevious
}

// SetSelectedIndex selects the item at index
func (c *Component) SetSelectedIndex(index int) bool {
	return c.withSelection(func(s trait.Selection) bool { return s.SetSelectedIndex(index) })
}

// SetSelectedItem selects item
func (c *Component) SetSelectedItem(item *domain.Node) bool {
	return c.withSelection(func(s trait.Selection) bool { return s.SetSelectedItem(item) })
}

// SelectFirst selects the first item
func (c *Component) SelectFirst() bool {
	return c.withSelection(trait.Selection.SelectFirst)
}

// SelectLast selects the last item
func (c *Component) SelectLast() bool {
	return c.withSelection(trait.Selection.SelectLast)
}

// SelectNext selects the next item
func (c *Component) SelectNext() bool {
	return c.withSelection(trait.Selection.SelectNext)
}

// SelectPrevious selects the previous item
func (c *Component) SelectPrevious() bool {
	return c.withSelection(trait.Selection.SelectPrevious)
}

// SetSelectionRequired changes the required-selection policy
func (c *Component) SetSelectionRequired(required bool) {
	c.withSelection(func(s trait.Selection) bool {
		s.SetSelectionRequired(required)
		return true
	})
}

// SetSelectionWraps changes the wrapping policy
func (c *Component) SetSelectionWraps(wraps bool) {
	c.withSelection(func(s trait.Selection) bool {
		s.SetSelectionWraps(wraps)
		return true
	})
}

// SetOrientation changes the navigation axes
func (c *Component) SetOrientation(orientation domain.Orientation) {
	c.SetState(func(s *state.State) { s.Orientation = orientation })
}

// Go navigates in a direction
func (c *Component) Go(direction domain.Direction) bool {
	for _, t := range c.traits {
		if d, ok := t.(Directional); ok {
			return d.Go(direction)
		}
	}
	c.Warn("component has no directional navigation trait")
	return false
}

// PageUp selects the item a page towards the start
func (c *Component) PageUp() bool {
	if p := c.pager(); p != nil {
		return p.PageUp()
	}
	return false
}

// PageDown selects the item a page towards the end
func (c *Component) PageDown() bool {
	if p := c.pager(); p != nil {
		return p.PageDown()
	}
	return false
}

// SelectItemWithTextPrefix selects the first item whose text starts with prefix
func (c *Component) SelectItemWithTextPrefix(prefix string) bool {
	for _, t := range c.traits {
		if p, ok := t.(PrefixTyper); ok {
			return p.SelectItemWithTextPrefix(prefix)
		}
	}
	c.Warn("component has no prefix navigation trait")
	return false
}

func (c *Component) pager() Pager {
	for _, t := range c.traits {
		if p, ok := t.(Pager); ok {
			return p
		}
	}
	c.Warn("component has no paged navigation trait")
	return nil
}

func (c *Component) withSelection(fn func(trait.Selection) bool) bool {
	s := c.Selection()
	if s == nil {
		c.Warn("component has no selection trait")
		return false
	}
	return fn(s)
}
