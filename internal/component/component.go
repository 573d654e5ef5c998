package component

import (
	"fmt"
	"io"
	"log"

	"listkit/internal/domain"
	"listkit/internal/eventbus"
	"listkit/internal/state"
	"listkit/internal/trait"
)

// Component is one list component instance: a state container, an event
// bus, the raise-change-events guard and the composed trait chain.
type Component struct {
	container *state.Container
	sched     state.Scheduler
	bus       eventbus.EventBus
	guard     eventbus.Guard
	chain     trait.Chain
	traits    []trait.Trait
	logger    *log.Logger
	warned    map[string]bool
}

type options struct {
	sched    state.Scheduler
	render   state.RenderFunc
	logger   *log.Logger
	bus      eventbus.EventBus
	defaults []func(*state.State)
	content  *domain.Content
}

// Option configures a Component
type Option func(*options)

// WithScheduler sets the scheduler renders and timers run on. The default
// is a state.Queue on the wall clock, which the owner must flush.
func WithScheduler(s state.Scheduler) Option {
	return func(o *options) { o.sched = s }
}

// WithRender sets the function that paints each batched render
func WithRender(fn state.RenderFunc) Option {
	return func(o *options) { o.render = fn }
}

// WithLogger sets where developer warnings go
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithBus sets the event bus change notifications are published on
func WithBus(b eventbus.EventBus) Option {
	return func(o *options) { o.bus = b }
}

// WithDefaults adjusts the initial state after the traits contributed theirs
func WithDefaults(fn func(*state.State)) Option {
	return func(o *options) { o.defaults = append(o.defaults, fn) }
}

// WithOrientation sets the initial orientation
func WithOrientation(orientation domain.Orientation) Option {
	return WithDefaults(func(s *state.State) { s.Orientation = orientation })
}

// WithContent sets the initial content
func WithContent(content *domain.Content) Option {
	return func(o *options) { o.content = content }
}

// New composes traits in order into a component. Later traits wrap earlier
// ones: their hooks run first and delegate to the earlier hooks.
func New(traits []trait.Trait, opts ...Option) *Component {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard, "", 0)
	}
	if o.sched == nil {
		o.sched = state.NewQueue()
	}
	if o.bus == nil {
		o.bus = eventbus.NewWithLogger(o.logger)
	}

	c := &Component{
		sched:  o.sched,
		bus:    o.bus,
		traits: traits,
		logger: o.logger,
		warned: make(map[string]bool),
	}

	chain := trait.Base()
	for _, t := range traits {
		chain = t.Compose(c, chain).Over(chain)
	}
	c.chain = chain

	defaults := state.Defaults()
	chain.Defaults(&defaults)
	for _, fn := range o.defaults {
		fn(&defaults)
	}
	defaults.Content = o.content
	c.container = state.NewContainer(defaults, o.sched, o.render)

	// Establish the selection invariants for the initial content
	c.chain.ItemsChanged()
	return c
}

// State returns the current state snapshot. Before the container exists,
// while traits are still being composed, it returns the package defaults.
func (c *Component) State() state.State {
	if c.container == nil {
		c.Warn("state read while traits are being composed")
		return state.Defaults()
	}
	return c.container.State()
}

// SetState updates state; see state.Container.SetState. Updates made while
// traits are still being composed are dropped.
func (c *Component) SetState(fn func(*state.State)) <-chan struct{} {
	if c.container == nil {
		c.Warn("state update while traits are being composed; use Defaults instead")
		done := make(chan struct{})
		close(done)
		return done
	}
	return c.container.SetState(fn)
}

// Rendered returns the last rendered snapshot
func (c *Component) Rendered() state.State {
	if c.container == nil {
		return state.Defaults()
	}
	return c.container.Rendered()
}

// Mount makes the component live; pending state is rendered at the next
// microtask checkpoint.
func (c *Component) Mount() <-chan struct{} {
	return c.container.Mount()
}

// Unmount stops rendering
func (c *Component) Unmount() {
	c.container.Unmount()
}

// Items returns the derived item list. Without an items provider the list
// is empty and a warning is logged.
func (c *Component) Items() []*domain.Node {
	if c.chain.Items == nil {
		c.Warn("component has no items provider; treating the list as empty")
		return nil
	}
	return c.chain.Items()
}

// Selection returns the composed selection model, or nil
func (c *Component) Selection() trait.Selection {
	return c.chain.Selection
}

// Chain returns the composed chain
func (c *Component) Chain() trait.Chain {
	return c.chain
}

// Scheduler returns the scheduler renders and timers run on
func (c *Component) Scheduler() state.Scheduler {
	return c.sched
}

// Bus returns the bus change notifications are published on
func (c *Component) Bus() eventbus.EventBus {
	return c.bus
}

// Subscribe registers a change notification handler
func (c *Component) Subscribe(eventType domain.EventType, handler eventbus.EventHandler) func() {
	return c.bus.Subscribe(eventType, handler)
}

// Emit publishes event if change events are being raised
func (c *Component) Emit(event domain.DomainEvent) {
	if !c.guard.Raising() {
		return
	}
	c.bus.Publish(event)
}

// RaisingChangeEvents reports whether a user-originated input is being
// processed
func (c *Component) RaisingChangeEvents() bool {
	return c.guard.Raising()
}

// Warn logs a developer warning once per distinct format string
func (c *Component) Warn(format string, args ...any) {
	if c.warned[format] {
		return
	}
	c.warned[format] = true
	c.logger.Printf("listkit: warning: "+format, args...)
}

// UserInput runs fn as the handler of a user-originated input: change
// notifications are raised for the duration of fn. Brackets nest.
func (c *Component) UserInput(fn func() bool) bool {
	restore := c.guard.Raise()
	defer restore()
	return fn()
}

// KeyDown offers a user key press to the trait chain
func (c *Component) KeyDown(key domain.Key) bool {
	return c.UserInput(func() bool {
		return c.chain.KeyDown(key)
	})
}

// SetContent replaces the raw content collection
func (c *Component) SetContent(content *domain.Content) {
	if c.State().Content == content {
		return
	}
	c.SetState(func(s *state.State) { s.Content = content })
	c.chain.ContentChanged()
}

// Describe returns the composed trait names, outermost last
func (c *Component) Describe() string {
	names := make([]string, 0, len(c.traits))
	for _, t := range c.traits {
		names = append(names, t.Name())
	}
	return fmt.Sprint(names)
}
