package logic

import (
	"github.com/mattn/go-runewidth"

	"listkit/internal/trait"
)

// CellPadding is the blank space on each side of an item in a horizontal list
const CellPadding = 1

// Viewport tracks which part of the list is on screen. Vertically each item
// is one row; horizontally each item is a cell as wide as its label plus
// padding. It is the geometry probe paged navigation measures against.
type Viewport struct {
	height    int // visible rows
	width     int // visible columns
	rowOffset int
	colOffset int
	cells     []cell
}

type cell struct {
	start int
	width int
}

var _ trait.Geometry = (*Viewport)(nil)

// NewViewport creates a viewport of the given size
func NewViewport(width, height int) *Viewport {
	v := &Viewport{}
	v.Resize(width, height)
	return v
}

// Resize updates the visible area
func (v *Viewport) Resize(width, height int) {
	v.width = max(width, 1)
	v.height = max(height, 1)
}

// Height returns the number of visible rows
func (v *Viewport) Height() int {
	return v.height
}

// Width returns the number of visible columns
func (v *Viewport) Width() int {
	return v.width
}

// RowOffset returns the first visible row
func (v *Viewport) RowOffset() int {
	return v.rowOffset
}

// ColOffset returns the first visible column
func (v *Viewport) ColOffset() int {
	return v.colOffset
}

// SetLabels lays out the horizontal cells for the given item labels
func (v *Viewport) SetLabels(labels []string) {
	v.cells = v.cells[:0]
	pos := 0
	for _, label := range labels {
		w := runewidth.StringWidth(label) + 2*CellPadding
		v.cells = append(v.cells, cell{start: pos, width: w})
		pos += w
	}
}

// Len returns the number of laid out items
func (v *Viewport) Len() int {
	return len(v.cells)
}

// ScrollOffset implements trait.Geometry
func (v *Viewport) ScrollOffset(axis trait.Axis) float64 {
	if axis == trait.AxisHorizontal {
		return float64(v.colOffset)
	}
	return float64(v.rowOffset)
}

// ViewportExtent implements trait.Geometry
func (v *Viewport) ViewportExtent(axis trait.Axis) float64 {
	if axis == trait.AxisHorizontal {
		return float64(v.width)
	}
	return float64(v.height)
}

// ItemBounds implements trait.Geometry
func (v *Viewport) ItemBounds(index int, axis trait.Axis) (trait.Bounds, bool) {
	if index < 0 || index >= len(v.cells) {
		return trait.Bounds{}, false
	}
	if axis == trait.AxisHorizontal {
		c := v.cells[index]
		return trait.Bounds{
			Start:        float64(c.start),
			Size:         float64(c.width),
			PaddingStart: CellPadding,
			PaddingEnd:   CellPadding,
		}, true
	}
	return trait.Bounds{Start: float64(index), Size: 1}, true
}

// EnsureVisible scrolls the viewport along axis so the item at index is
// fully shown. A negative index leaves the viewport alone.
func (v *Viewport) EnsureVisible(index int, axis trait.Axis) {
	if index < 0 || index >= len(v.cells) {
		v.clamp()
		return
	}
	if axis == trait.AxisHorizontal {
		c := v.cells[index]
		// If selected item is left of the viewport, scroll left
		if c.start < v.colOffset {
			v.colOffset = c.start
		}
		// If it ends past the right edge, scroll right
		if end := c.start + c.width; end > v.colOffset+v.width {
			v.colOffset = min(end-v.width, c.start)
		}
	} else {
		// If selected item is above viewport, scroll up
		if index < v.rowOffset {
			v.rowOffset = index
		}
		// If selected item is below viewport, scroll down
		if index >= v.rowOffset+v.height {
			v.rowOffset = index - v.height + 1
		}
	}
	v.clamp()
}

// clamp keeps the offsets inside the content so no blank space is scrolled in
func (v *Viewport) clamp() {
	maxRow := max(len(v.cells)-v.height, 0)
	v.rowOffset = min(max(v.rowOffset, 0), maxRow)

	total := 0
	if n := len(v.cells); n > 0 {
		total = v.cells[n-1].start + v.cells[n-1].width
	}
	maxCol := max(total-v.width, 0)
	v.colOffset = min(max(v.colOffset, 0), maxCol)
}

// VisibleRange returns the half-open range of rows on screen
func (v *Viewport) VisibleRange() (first, last int) {
	return v.rowOffset, min(v.rowOffset+v.height, len(v.cells))
}
