package state

// RenderFunc paints a state snapshot. changed lists the fields that differ
// from the previously rendered snapshot (FieldAll on the first render).
type RenderFunc func(s State, changed Field)

// Container owns the state of one component instance. State writes are
// synchronous; renders are deferred to the scheduler's next microtask
// checkpoint and coalesced, so any number of writes made before that
// checkpoint produce one render of the final state.
type Container struct {
	state       State
	rendered    State
	hasRendered bool
	live        bool
	pending     bool
	sched       Scheduler
	render      RenderFunc
	waiters     []chan struct{}
}

// NewContainer creates a container seeded with defaults. The container is
// not live until Mount is called.
func NewContainer(defaults State, sched Scheduler, render RenderFunc) *Container {
	if render == nil {
		render = func(State, Field) {}
	}
	defaults.Version = 1
	return &Container{
		state:  defaults,
		sched:  sched,
		render: render,
	}
}

// State returns the current snapshot
func (c *Container) State() State {
	return c.state
}

// Rendered returns the last snapshot handed to the render function. The zero
// State is returned before the first render.
func (c *Container) Rendered() State {
	return c.rendered
}

// Live reports whether the container is mounted
func (c *Container) Live() bool {
	return c.live
}

// SetState applies fn to a copy of the current state and stores the result.
// The returned channel is closed once a render including this update has run.
// An update that changes nothing does not schedule a render.
func (c *Container) SetState(fn func(*State)) <-chan struct{} {
	next := c.state
	fn(&next)
	next.Version = c.state.Version
	if sameFields(next, c.state) {
		return c.settled()
	}
	next.Version++
	c.state = next

	done := make(chan struct{})
	c.waiters = append(c.waiters, done)
	c.schedule()
	return done
}

// Mount makes the container live and schedules a render of any state not
// yet rendered, including updates recorded while it was not live.
func (c *Container) Mount() <-chan struct{} {
	c.live = true
	return c.settled()
}

// Unmount stops rendering. Updates are still recorded.
func (c *Container) Unmount() {
	c.live = false
}

// settled returns a channel that closes once the current state is rendered
func (c *Container) settled() <-chan struct{} {
	done := make(chan struct{})
	if c.hasRendered && sameFields(c.rendered, c.state) && !c.pending {
		close(done)
		return done
	}
	c.waiters = append(c.waiters, done)
	c.schedule()
	return done
}

func (c *Container) schedule() {
	if !c.live || c.pending || c.sched == nil {
		return
	}
	c.pending = true
	c.sched.Defer(c.flush)
}

func (c *Container) flush() {
	c.pending = false
	if !c.live {
		return
	}

	waiters := c.waiters
	c.waiters = nil

	if !c.hasRendered || !sameFields(c.rendered, c.state) {
		changed := FieldAll
		if c.hasRendered {
			changed = Changed(c.rendered, c.state)
		}
		c.rendered = c.state
		c.hasRendered = true
		c.render(c.state, changed)
	}

	for _, w := range waiters {
		close(w)
	}
}
