package navigation

import (
	"listkit/internal/domain"
	"listkit/internal/trait"
)

// Paged implements Page Up / Page Down. The first press selects the item at
// the viewport edge; once that item is selected, further presses move a
// viewport's worth of distance and select the item found there.
type Paged struct {
	host     trait.Host
	next     trait.Chain
	geometry trait.Geometry
}

// NewPaged creates the trait. geometry may be nil, in which case paging is
// unavailable and a warning is logged on first use.
func NewPaged(geometry trait.Geometry) *Paged {
	return &Paged{geometry: geometry}
}

// Name identifies the trait in logs
func (p *Paged) Name() string {
	return "paged-navigation"
}

// Compose handles Page Up and Page Down keys
func (p *Paged) Compose(host trait.Host, next trait.Chain) trait.Chain {
	p.host = host
	p.next = next
	return trait.Chain{KeyDown: p.keyDown}
}

// SetGeometry replaces the viewport probe
func (p *Paged) SetGeometry(geometry trait.Geometry) {
	p.geometry = geometry
}

// PageUp selects the item at the leading edge of the viewport, or a page
// before it when that item is already selected.
func (p *Paged) PageUp() bool {
	return p.scrollOnePage(false)
}

// PageDown selects the item at the trailing edge of the viewport, or a page
// after it when that item is already selected.
func (p *Paged) PageDown() bool {
	return p.scrollOnePage(true)
}

func (p *Paged) keyDown(key domain.Key) bool {
	handled := false
	switch key.Name {
	case domain.KeyPageUp:
		handled = p.PageUp()
	case domain.KeyPageDown:
		handled = p.PageDown()
	}
	return handled || p.next.KeyDown(key)
}

func (p *Paged) scrollOnePage(forward bool) bool {
	if p.geometry == nil {
		p.host.Warn("paged navigation has no geometry probe")
		return false
	}
	sel := p.host.Selection()
	if sel == nil {
		p.host.Warn("paged navigation needs a selection trait")
		return false
	}
	n := len(p.host.Items())
	if n == 0 {
		return false
	}

	axis := trait.AxisFor(p.host.State().Orientation)
	extent := p.geometry.ViewportExtent(axis)
	edge := p.geometry.ScrollOffset(axis)
	if forward {
		edge += extent
	}

	current := sel.SelectedIndex()
	target := p.indexAt(edge, forward, axis)
	if target >= 0 && target == current {
		// Already at the edge: look one viewport further
		delta := extent
		if !forward {
			delta = -extent
		}
		target = p.indexAt(edge+delta, forward, axis)
	}
	if target < 0 {
		target = 0
		if forward {
			target = n - 1
		}
	}
	if target == current {
		return false
	}
	return sel.SetSelectedIndex(target)
}

// indexAt finds the item spanning position pos, scanning in travel order.
// When pos only reaches the item's leading padding, the item before it in
// travel order is returned instead. -1 means no item could be resolved.
func (p *Paged) indexAt(pos float64, forward bool, axis trait.Axis) int {
	n := len(p.host.Items())
	start, end, step := 0, n, 1
	if !forward {
		start, end, step = n-1, -1, -1
	}

	for i := start; i != end; i += step {
		b, ok := p.geometry.ItemBounds(i, axis)
		if !ok || b.Start > pos || b.End() < pos {
			continue
		}
		if (forward && b.ContentStart() <= pos) || (!forward && b.ContentEnd() >= pos) {
			return i
		}
		if i -= step; i < 0 || i >= n {
			return -1
		}
		return i
	}
	return -1
}
