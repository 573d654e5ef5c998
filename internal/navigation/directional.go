package navigation

import (
	"listkit/internal/domain"
	"listkit/internal/trait"
)

// Directional maps direction intents onto the selection, constrained by the
// component's orientation. It keeps no state of its own.
type Directional struct {
	host trait.Host
	next trait.Chain
}

// NewDirectional creates the trait
func NewDirectional() *Directional {
	return &Directional{}
}

// Name identifies the trait in logs
func (d *Directional) Name() string {
	return "directional-navigation"
}

// Compose handles arrow, Home and End keys
func (d *Directional) Compose(host trait.Host, next trait.Chain) trait.Chain {
	d.host = host
	d.next = next
	return trait.Chain{KeyDown: d.keyDown}
}

// Go moves the selection in a direction and reports whether it moved.
// Left/right only apply to horizontal lists and up/down to vertical ones;
// home and end always apply.
func (d *Directional) Go(direction domain.Direction) bool {
	sel := d.host.Selection()
	if sel == nil {
		d.host.Warn("directional navigation needs a selection trait")
		return false
	}
	orientation := d.host.State().Orientation

	switch direction {
	case domain.DirectionLeft:
		if orientation.Horizontal() {
			return sel.SelectPrevious()
		}
	case domain.DirectionRight:
		if orientation.Horizontal() {
			return sel.SelectNext()
		}
	case domain.DirectionUp:
		if orientation.Vertical() {
			return sel.SelectPrevious()
		}
	case domain.DirectionDown:
		if orientation.Vertical() {
			return sel.SelectNext()
		}
	case domain.DirectionHome:
		return sel.SelectFirst()
	case domain.DirectionEnd:
		return sel.SelectLast()
	}
	return false
}

func (d *Directional) keyDown(key domain.Key) bool {
	orientation := d.host.State().Orientation
	handled := false

	switch key.Name {
	case domain.KeyHome:
		handled = d.Go(domain.DirectionHome)
	case domain.KeyEnd:
		handled = d.Go(domain.DirectionEnd)
	case domain.KeyLeft:
		if key.Meta && orientation.Horizontal() {
			handled = d.Go(domain.DirectionHome)
		} else {
			handled = d.Go(domain.DirectionLeft)
		}
	case domain.KeyRight:
		if key.Meta && orientation.Horizontal() {
			handled = d.Go(domain.DirectionEnd)
		} else {
			handled = d.Go(domain.DirectionRight)
		}
	case domain.KeyUp:
		if key.Alt && orientation.Vertical() {
			handled = d.Go(domain.DirectionHome)
		} else {
			handled = d.Go(domain.DirectionUp)
		}
	case domain.KeyDown:
		if key.Alt && orientation.Vertical() {
			handled = d.Go(domain.DirectionEnd)
		} else {
			handled = d.Go(domain.DirectionDown)
		}
	}

	return handled || d.next.KeyDown(key)
}
