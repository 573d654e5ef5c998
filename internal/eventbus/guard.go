package eventbus

// Guard is the per-instance "raise change events" flag. It is set only while
// a user-originated input is being processed.
type Guard struct {
	raising bool
}

// Raising reports whether change notifications should be emitted now
func (g *Guard) Raising() bool {
	return g.raising
}

// Raise turns the flag on and returns a function restoring the previous
// value. Nested brackets restore in LIFO order, so an inner bracket never
// clears the flag for an outer one still running.
//
//	restore := g.Raise()
//	defer restore()
func (g *Guard) Raise() (restore func()) {
	prev := g.raising
	g.raising = true
	return func() { g.raising = prev }
}

// Suppress turns the flag off for programmatic work performed inside a user
// bracket and returns a function restoring the previous value.
func (g *Guard) Suppress() (restore func()) {
	prev := g.raising
	g.raising = false
	return func() { g.raising = prev }
}
