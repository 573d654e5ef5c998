package navigation

import (
	"strings"
	"time"
	"unicode"

	"listkit/internal/domain"
	"listkit/internal/state"
	"listkit/internal/trait"
)

// DefaultPrefixTimeout is how long the typed prefix survives without a keystroke
const DefaultPrefixTimeout = 1000 * time.Millisecond

// Prefix selects items by the text typed in quick succession. The buffer
// lives in State.TypedPrefix and is cleared after a pause, when the content
// changes, or when the selection is changed by anything else.
type Prefix struct {
	host    trait.Host
	next    trait.Chain
	timeout time.Duration
	text    trait.TextFunc

	timer     state.Timer
	texts     []string // lowercase item texts, nil until needed
	selecting bool
}

// PrefixOption configures a Prefix
type PrefixOption func(*Prefix)

// WithTimeout sets the idle time after which the buffer is cleared
func WithTimeout(d time.Duration) PrefixOption {
	return func(p *Prefix) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithTextFunc sets how an item's text is extracted
func WithTextFunc(fn trait.TextFunc) PrefixOption {
	return func(p *Prefix) {
		if fn != nil {
			p.text = fn
		}
	}
}

// NewPrefix creates the trait
func NewPrefix(opts ...PrefixOption) *Prefix {
	p := &Prefix{
		timeout: DefaultPrefixTimeout,
		text:    (*domain.Node).Label,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name identifies the trait in logs
func (p *Prefix) Name() string {
	return "prefix-navigation"
}

// Compose handles character and backspace keys and watches for content and
// selection changes that invalidate the buffer.
func (p *Prefix) Compose(host trait.Host, next trait.Chain) trait.Chain {
	p.host = host
	p.next = next
	return trait.Chain{
		Defaults: func(s *state.State) {
			next.Defaults(s)
			s.TypedPrefix = ""
		},
		ItemsChanged: func() {
			next.ItemsChanged()
			p.texts = nil
			p.reset()
		},
		SelectionChanged: func(index int, item *domain.Node) {
			next.SelectionChanged(index, item)
			if !p.selecting {
				p.reset()
			}
		},
		KeyDown: p.keyDown,
	}
}

// Timeout returns the idle reset duration
func (p *Prefix) Timeout() time.Duration {
	return p.timeout
}

// SelectItemWithTextPrefix selects the first item whose text starts with
// prefix, ignoring case. It reports whether the selection changed.
func (p *Prefix) SelectItemWithTextPrefix(prefix string) bool {
	if prefix == "" {
		return false
	}
	index := p.indexWithPrefix(prefix)
	if index < 0 {
		return false
	}
	sel := p.host.Selection()
	if sel == nil {
		p.host.Warn("prefix navigation needs a selection trait")
		return false
	}

	p.selecting = true
	defer func() { p.selecting = false }()
	previous := sel.SelectedIndex()
	sel.SetSelectedIndex(index)
	return sel.SelectedIndex() != previous
}

func (p *Prefix) keyDown(key domain.Key) bool {
	handled := false
	switch {
	case key.Name == domain.KeyBackspace && !key.Modified():
		p.backspace()
		handled = true
	case key.Plain():
		p.typeRune(key.Rune)
	}
	return handled || p.next.KeyDown(key)
}

func (p *Prefix) typeRune(r rune) {
	prefix := p.host.State().TypedPrefix + string(unicode.ToLower(r))
	p.setPrefix(prefix)
	p.SelectItemWithTextPrefix(prefix)
	p.restartTimer()
}

func (p *Prefix) backspace() {
	runes := []rune(p.host.State().TypedPrefix)
	if len(runes) <= 1 {
		p.reset()
		return
	}
	prefix := string(runes[:len(runes)-1])
	p.setPrefix(prefix)
	p.SelectItemWithTextPrefix(prefix)
	p.restartTimer()
}

func (p *Prefix) setPrefix(prefix string) {
	if p.host.State().TypedPrefix == prefix {
		return
	}
	p.host.SetState(func(s *state.State) { s.TypedPrefix = prefix })
	p.host.Emit(domain.TypedPrefixChangedEvent{Prefix: prefix})
}

// reset clears the buffer and cancels the pending timer
func (p *Prefix) reset() {
	p.stopTimer()
	p.setPrefix("")
}

func (p *Prefix) restartTimer() {
	p.stopTimer()
	p.timer = p.host.Scheduler().AfterFunc(p.timeout, func() {
		p.timer = nil
		p.reset()
	})
}

func (p *Prefix) stopTimer() {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

func (p *Prefix) indexWithPrefix(prefix string) int {
	if p.texts == nil {
		list := p.host.Items()
		p.texts = make([]string, len(list))
		for i, item := range list {
			p.texts[i] = strings.ToLower(p.text(item))
		}
	}
	prefix = strings.ToLower(prefix)
	for i, text := range p.texts {
		if strings.HasPrefix(text, prefix) {
			return i
		}
	}
	return -1
}
