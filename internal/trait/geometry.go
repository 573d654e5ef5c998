package trait

import "listkit/internal/domain"

// Axis selects the scrolling axis a geometry query applies to
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// AxisFor returns the paging axis of a list with the given orientation
func AxisFor(o domain.Orientation) Axis {
	if o == domain.OrientationHorizontal {
		return AxisHorizontal
	}
	return AxisVertical
}

// Bounds is an item's extent along one axis, in content coordinates
// (independent of the current scroll offset).
type Bounds struct {
	Start        float64
	Size         float64
	PaddingStart float64
	PaddingEnd   float64
}

// End returns the coordinate just past the item's box
func (b Bounds) End() float64 {
	return b.Start + b.Size
}

// ContentStart returns where the item's content box begins
func (b Bounds) ContentStart() float64 {
	return b.Start + b.PaddingStart
}

// ContentEnd returns where the item's content box ends
func (b Bounds) ContentEnd() float64 {
	return b.End() - b.PaddingEnd
}

// Geometry is the host-supplied probe of the scrolling viewport that shows
// the items.
type Geometry interface {
	// ScrollOffset is the content coordinate at the leading viewport edge
	ScrollOffset(axis Axis) float64
	// ViewportExtent is the visible size of the viewport
	ViewportExtent(axis Axis) float64
	// ItemBounds reports the box of the item at index
	ItemBounds(index int, axis Axis) (Bounds, bool)
}

// TextFunc extracts the text used to match typed prefixes against an item
type TextFunc func(item *domain.Node) string
