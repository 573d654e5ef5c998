package ui

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"listkit/internal/component"
	"listkit/internal/config"
	"listkit/internal/domain"
	"listkit/internal/items"
	"listkit/internal/navigation"
	"listkit/internal/selection"
	"listkit/internal/state"
	"listkit/internal/trait"
	"listkit/internal/ui/input"
	inputtypes "listkit/internal/ui/input/types"
	"listkit/internal/ui/logic"
	"listkit/internal/ui/views"
)

// Model hosts one list component in a Bubble Tea program. Every message is
// one macrotask: state writes made while handling it are rendered together
// at the microtask checkpoint that ends Update.
type Model struct {
	list     *component.Component
	queue    *state.Queue
	viewport *logic.Viewport
	events   *EventLog
	logger   *log.Logger

	// Last rendered component state
	frame state.State

	width       int
	height      int
	help        help.Model
	status      string
	isError     bool
	armed       time.Time // deadline of the pending timer tick
	inPagerMode bool      // tracks if we're currently in pager mode
	quitting    bool

	renderer     *views.Renderer
	inputHandler *input.Handler
	pagerOps     *PagerOps

	// Program reference for terminal management
	program *tea.Program
}

// Option configures a Model
type Option func(*options)

type options struct {
	logger *log.Logger
	now    func() time.Time
}

// WithLogger sets where the model and its list log to
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithClock sets the clock the list's timers run on
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// NewModel creates a new UI model showing content with the list settings of cfg
func NewModel(cfg *config.Config, content *domain.Content, opts ...Option) *Model {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard, "", 0)
	}

	m := &Model{
		queue:        state.NewQueueWithClock(o.now),
		viewport:     logic.NewViewport(80, views.ListHeight(24, false)),
		events:       NewEventLog(DefaultEventLogLimit, o.now),
		logger:       o.logger,
		help:         help.New(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(input.DefaultKeyMap()),
	}

	m.list = component.New(
		[]trait.Trait{
			items.New(),
			selection.New(
				selection.Required(cfg.List.SelectionRequired),
				selection.Wraps(cfg.List.SelectionWraps),
			),
			navigation.NewDirectional(),
			navigation.NewPaged(m.viewport),
			navigation.NewPrefix(navigation.WithTimeout(cfg.PrefixTimeout())),
		},
		component.WithScheduler(m.queue),
		component.WithRender(m.render),
		component.WithLogger(o.logger),
		component.WithOrientation(cfg.Orientation()),
		component.WithContent(content),
	)
	if index := cfg.InitialIndex(); index >= 0 {
		m.list.SetSelectedIndex(index)
	}
	m.list.Bus().SubscribeAll(m.events.Record)

	m.list.Mount()
	m.queue.Flush()
	m.logger.Printf("list ready: %s, %d items", m.list.Describe(), len(m.list.Items()))
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pagerOps = NewPagerOps(p)
}

// List returns the hosted component
func (m *Model) List() *component.Component {
	return m.list
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.armTimer()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width - views.ChromeColumns

	case tea.KeyMsg:
		m.status, m.isError = "", false

		// Handle input through the handler
		actions, cmd := m.inputHandler.HandleKey(msg, m)
		cmds = append(cmds, cmd)
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}

	case timerMsg:
		m.queue.RunDue(m.queue.Now())

	case pauseRenderingMsg:
		m.inPagerMode = true

	case resumeRenderingMsg:
		m.inPagerMode = false

	case pagerMsg:
		if msg.err != nil {
			m.logger.Printf("%s pager failed: %v", msg.what, msg.err)
			m.status, m.isError = fmt.Sprintf("%s pager failed: %v", msg.what, msg.err), true
		}

	default:
		cmds = append(cmds, m.inputHandler.Update(msg))
	}

	// Microtask checkpoint: render everything this message changed
	m.queue.Flush()
	m.layout()

	cmds = append(cmds, m.armTimer())
	return m, tea.Batch(cmds...)
}

// render is the component's render callback
func (m *Model) render(s state.State, changed state.Field) {
	m.frame = s
	if changed.Has(state.FieldContent) {
		items := m.list.Items()
		labels := make([]string, len(items))
		for i, item := range items {
			labels[i] = item.Label()
		}
		m.viewport.SetLabels(labels)
	}
	if changed.Has(state.FieldContent | state.FieldSelectedIndex | state.FieldOrientation) {
		m.viewport.EnsureVisible(s.SelectedIndex, trait.AxisFor(s.Orientation))
	}
}

// layout sizes the viewport to the space the list gets on screen
func (m *Model) layout() {
	if m.width == 0 {
		return
	}
	hasPrompt := m.inputHandler.TextInput() != nil
	m.viewport.Resize(m.width-views.ChromeColumns, views.ListHeight(m.height, hasPrompt))
	m.viewport.EnsureVisible(m.frame.SelectedIndex, trait.AxisFor(m.frame.Orientation))
}

// armTimer schedules a tick for the earliest pending component timer
func (m *Model) armTimer() tea.Cmd {
	deadline, ok := m.queue.NextDeadline()
	if !ok {
		m.armed = time.Time{}
		return nil
	}
	if deadline.Equal(m.armed) {
		return nil
	}
	m.armed = deadline
	return tea.Tick(max(deadline.Sub(m.queue.Now()), 0), func(t time.Time) tea.Msg {
		return timerMsg(t)
	})
}

// userInput runs fn as a user-originated change of the list
func (m *Model) userInput(fn func()) {
	m.list.UserInput(func() bool {
		fn()
		return true
	})
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.KeyAction:
		m.list.KeyDown(a.Key)

	case inputtypes.ToggleWrapAction:
		m.userInput(func() { m.list.SetSelectionWraps(!m.list.SelectionWraps()) })

	case inputtypes.ToggleRequiredAction:
		m.userInput(func() { m.list.SetSelectionRequired(!m.list.SelectionRequired()) })

	case inputtypes.CycleOrientationAction:
		next := nextOrientation(m.list.State().Orientation)
		m.list.SetOrientation(next)
		m.status = fmt.Sprintf("orientation: %s", next)

	case inputtypes.RemoveItemAction:
		item := m.list.SelectedItem()
		if item == nil {
			return nil
		}
		m.userInput(func() { m.list.SetContent(m.list.State().Content.Without(item)) })
		m.status = fmt.Sprintf("removed %q", item.Label())

	case inputtypes.UpdateTextAction:
		if a.Mode == inputtypes.ModeFind && a.Text != "" {
			m.userInput(func() { m.list.SelectItemWithTextPrefix(a.Text) })
		}

	case inputtypes.SubmitTextAction:
		m.submitText(a)

	case inputtypes.CancelTextAction:
		// Nothing to undo: find selects as you type

	case inputtypes.ToggleHelpAction:
		if m.program == nil {
			m.help.ShowAll = !m.help.ShowAll
			return nil
		}
		return m.showInPager("help", renderHelpContent(m.inputHandler.Keys()))

	case inputtypes.OpenEventLogAction:
		if m.program == nil {
			m.status, m.isError = "event log needs a terminal", true
			return nil
		}
		return m.showInPager("event log", m.events.String())

	case inputtypes.QuitAction:
		m.quitting = true
		return tea.Quit
	}

	return nil
}

func (m *Model) submitText(a inputtypes.SubmitTextAction) {
	switch a.Mode {
	case inputtypes.ModeFind:
		if a.Text == "" {
			return
		}
		label := m.SelectedLabel()
		if !strings.HasPrefix(strings.ToLower(label), strings.ToLower(a.Text)) {
			m.status, m.isError = fmt.Sprintf("no item starts with %q", a.Text), true
		}

	case inputtypes.ModeGoto:
		index := selection.ParseIndex(a.Text)
		if index < 0 || index >= m.TotalItems() {
			m.status, m.isError = fmt.Sprintf("not an item index: %q", a.Text), true
			return
		}
		m.userInput(func() { m.list.SetSelectedIndex(index) })
	}
}

// showInPager returns a command that shows content using ov pager
func (m *Model) showInPager(what, content string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pagerOps.Show(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return pagerMsg{what: what, err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.quitting || m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	vs := views.ViewState{
		Width:    m.width,
		Height:   m.height,
		Items:    m.list.Items(),
		List:     m.frame,
		Viewport: m.viewport,
		Status:   m.status,
		IsError:  m.isError,
		HelpView: m.help.View(m.inputHandler.Keys()),
		Events:   m.events.Len(),
	}
	if ti := m.inputHandler.TextInput(); ti != nil {
		vs.Prompt = m.inputHandler.Prompt()
		vs.Input = ti.View()
	}
	return m.renderer.Render(vs)
}

// SelectedIndex implements the input context
func (m *Model) SelectedIndex() int {
	return m.list.SelectedIndex()
}

// TotalItems implements the input context
func (m *Model) TotalItems() int {
	return len(m.list.Items())
}

// SelectedLabel implements the input context
func (m *Model) SelectedLabel() string {
	return m.list.SelectedItem().Label()
}

func nextOrientation(o domain.Orientation) domain.Orientation {
	switch o {
	case domain.OrientationVertical:
		return domain.OrientationHorizontal
	case domain.OrientationHorizontal:
		return domain.OrientationBoth
	default:
		return domain.OrientationVertical
	}
}
