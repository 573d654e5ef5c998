package ui

import (
	"fmt"
	"strings"
	"time"

	"listkit/internal/eventbus"
)

// DefaultEventLogLimit bounds the number of kept notifications
const DefaultEventLogLimit = 500

// EventLog keeps the most recent change notifications of the list for the
// event log pager.
type EventLog struct {
	entries []string
	limit   int
	total   int
	now     func() time.Time
}

// NewEventLog creates a log keeping at most limit entries
func NewEventLog(limit int, now func() time.Time) *EventLog {
	if limit <= 0 {
		limit = DefaultEventLogLimit
	}
	return &EventLog{limit: limit, now: now}
}

// Record appends an event; it is an eventbus.EventHandler
func (l *EventLog) Record(e eventbus.DomainEvent) {
	l.total++
	entry := fmt.Sprintf("%s  %-28s %s", l.now().Format("15:04:05.000"), e.Type(), describe(e))
	l.entries = append(l.entries, entry)
	if len(l.entries) > l.limit {
		l.entries = l.entries[len(l.entries)-l.limit:]
	}
}

// Len returns the number of events recorded so far, including dropped ones
func (l *EventLog) Len() int {
	return l.total
}

// String renders the kept entries, oldest first
func (l *EventLog) String() string {
	if len(l.entries) == 0 {
		return "No change notifications yet.\n"
	}
	var b strings.Builder
	if dropped := l.total - len(l.entries); dropped > 0 {
		fmt.Fprintf(&b, "(%d older entries dropped)\n", dropped)
	}
	for _, entry := range l.entries {
		b.WriteString(entry)
		b.WriteString("\n")
	}
	return b.String()
}

func describe(e eventbus.DomainEvent) string {
	switch ev := e.(type) {
	case eventbus.SelectedIndexChangedEvent:
		return fmt.Sprintf("index=%d", ev.SelectedIndex)
	case eventbus.SelectedItemChangedEvent:
		if ev.SelectedItem == nil {
			return "item=<none>"
		}
		return fmt.Sprintf("item=%q", ev.SelectedItem.Label())
	case eventbus.CanSelectNextChangedEvent:
		return fmt.Sprintf("canSelectNext=%t", ev.CanSelectNext)
	case eventbus.CanSelectPreviousChangedEvent:
		return fmt.Sprintf("canSelectPrevious=%t", ev.CanSelectPrevious)
	case eventbus.TypedPrefixChangedEvent:
		return fmt.Sprintf("prefix=%q", ev.Prefix)
	}
	return ""
}
