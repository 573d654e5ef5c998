package state

import (
	"sort"
	"time"
)

// Scheduler defers work on the component's single update goroutine
type Scheduler interface {
	// Defer queues fn for the next microtask checkpoint
	Defer(fn func())
	// AfterFunc queues fn to run once d has elapsed
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a pending AfterFunc call
type Timer interface {
	// Stop cancels the call. It reports whether the call was still pending.
	Stop() bool
}

// Queue is a deterministic single-threaded Scheduler. Nothing runs on its
// own: the owner drains microtasks with Flush and fires expired timers with
// RunDue, both from the goroutine that owns the component.
type Queue struct {
	now      func() time.Time
	micro    []func()
	timers   []*queueTimer
	seq      uint64
	flushing bool
}

type queueTimer struct {
	q        *Queue
	deadline time.Time
	seq      uint64
	fn       func()
	stopped  bool
}

func (t *queueTimer) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	t.q.dropTimer(t)
	return true
}

// NewQueue creates a queue driven by the wall clock
func NewQueue() *Queue {
	return NewQueueWithClock(time.Now)
}

// NewQueueWithClock creates a queue reading time from now
func NewQueueWithClock(now func() time.Time) *Queue {
	return &Queue{now: now}
}

// Now returns the queue's current time
func (q *Queue) Now() time.Time {
	return q.now()
}

// Defer queues fn for the next Flush
func (q *Queue) Defer(fn func()) {
	q.micro = append(q.micro, fn)
}

// Flush runs queued microtasks until none remain, including ones queued by
// the tasks themselves. It returns the number of tasks run. A Flush issued
// from inside a task returns immediately; the outer Flush drains the rest.
func (q *Queue) Flush() int {
	if q.flushing {
		return 0
	}
	q.flushing = true
	defer func() { q.flushing = false }()

	n := 0
	for len(q.micro) > 0 {
		fn := q.micro[0]
		q.micro = q.micro[1:]
		fn()
		n++
	}
	return n
}

// Pending returns the number of queued microtasks
func (q *Queue) Pending() int {
	return len(q.micro)
}

// AfterFunc registers fn to run at the first RunDue at or after now+d
func (q *Queue) AfterFunc(d time.Duration, fn func()) Timer {
	q.seq++
	t := &queueTimer{q: q, deadline: q.now().Add(d), seq: q.seq, fn: fn}
	q.timers = append(q.timers, t)
	sort.SliceStable(q.timers, func(i, j int) bool {
		if q.timers[i].deadline.Equal(q.timers[j].deadline) {
			return q.timers[i].seq < q.timers[j].seq
		}
		return q.timers[i].deadline.Before(q.timers[j].deadline)
	})
	return t
}

// NextDeadline returns the earliest pending timer deadline
func (q *Queue) NextDeadline() (time.Time, bool) {
	if len(q.timers) == 0 {
		return time.Time{}, false
	}
	return q.timers[0].deadline, true
}

// RunDue fires every timer whose deadline is not after now, in deadline
// order, with a microtask checkpoint after each one. It returns the number of
// timers fired.
func (q *Queue) RunDue(now time.Time) int {
	n := 0
	for len(q.timers) > 0 && !q.timers[0].deadline.After(now) {
		t := q.timers[0]
		q.timers = q.timers[1:]
		t.stopped = true
		t.fn()
		n++
		q.Flush()
	}
	return n
}

func (q *Queue) dropTimer(t *queueTimer) {
	for i, other := range q.timers {
		if other == t {
			q.timers = append(q.timers[:i], q.timers[i+1:]...)
			return
		}
	}
}

// ManualClock is a settable clock for driving a Queue in tests and replays
type ManualClock struct {
	t time.Time
}

// NewManualClock creates a clock starting at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{t: start}
}

// Now returns the clock's current time
func (c *ManualClock) Now() time.Time {
	return c.t
}

// Advance moves the clock forward by d and returns the new time
func (c *ManualClock) Advance(d time.Duration) time.Time {
	c.t = c.t.Add(d)
	return c.t
}
