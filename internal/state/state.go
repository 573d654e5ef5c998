package state

import (
	"listkit/internal/domain"
)

// State is the immutable per-instance state shared by every trait of a
// component. It is always handled by value: each update produces a new
// State and earlier values remain valid snapshots.
type State struct {
	Version uint64 // incremented by every effective update

	// Content is the raw collection the items are derived from
	Content *domain.Content

	// Selection
	SelectedIndex     int          // -1 when nothing is selected
	SelectedItem      *domain.Node // nil when nothing is selected
	SelectionRequired bool
	SelectionWraps    bool
	CanSelectNext     bool
	CanSelectPrevious bool

	// Navigation
	TypedPrefix string
	Orientation domain.Orientation
}

// Defaults returns the baseline state every component starts from before
// traits contribute their own defaults.
func Defaults() State {
	return State{
		SelectedIndex: -1,
		Orientation:   domain.OrientationVertical,
	}
}

// HasSelection reports whether an item is selected
func (s State) HasSelection() bool {
	return s.SelectedIndex >= 0
}

// sameFields compares everything except Version
func sameFields(a, b State) bool {
	a.Version, b.Version = 0, 0
	return a == b
}

// Field identifies one top-level State field
type Field uint16

const (
	FieldContent Field = 1 << iota
	FieldSelectedIndex
	FieldSelectedItem
	FieldSelectionRequired
	FieldSelectionWraps
	FieldCanSelectNext
	FieldCanSelectPrevious
	FieldTypedPrefix
	FieldOrientation

	FieldAll = FieldContent | FieldSelectedIndex | FieldSelectedItem |
		FieldSelectionRequired | FieldSelectionWraps | FieldCanSelectNext |
		FieldCanSelectPrevious | FieldTypedPrefix | FieldOrientation
)

// Has reports whether any of the given fields is set
func (f Field) Has(other Field) bool {
	return f&other != 0
}

// Changed returns the set of fields that differ between two snapshots
func Changed(prev, next State) Field {
	var f Field
	if prev.Content != next.Content {
		f |= FieldContent
	}
	if prev.SelectedIndex != next.SelectedIndex {
		f |= FieldSelectedIndex
	}
	if prev.SelectedItem != next.SelectedItem {
		f |= FieldSelectedItem
	}
	if prev.SelectionRequired != next.SelectionRequired {
		f |= FieldSelectionRequired
	}
	if prev.SelectionWraps != next.SelectionWraps {
		f |= FieldSelectionWraps
	}
	if prev.CanSelectNext != next.CanSelectNext {
		f |= FieldCanSelectNext
	}
	if prev.CanSelectPrevious != next.CanSelectPrevious {
		f |= FieldCanSelectPrevious
	}
	if prev.TypedPrefix != next.TypedPrefix {
		f |= FieldTypedPrefix
	}
	if prev.Orientation != next.Orientation {
		f |= FieldOrientation
	}
	return f
}
