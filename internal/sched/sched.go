// Package sched provides the delayed-execution primitive behind staggered bot
// replies. The production implementation wraps time.AfterFunc with a registry
// so a shutting-down controller can cancel everything in flight; the Manual
// implementation gives tests full control over virtual time.
package sched

import (
	"sync"
	"time"
)

// Scheduler runs a function after a delay. Implementations must be safe for
// concurrent use. The returned cancel function is idempotent and prevents the
// callback from running if it has not started yet.
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
	// Stop cancels every pending callback. The scheduler remains usable.
	Stop()
}

// Timers is the wall-clock Scheduler backed by time.AfterFunc.
type Timers struct {
	mu     sync.Mutex
	nextID int64
	timers map[int64]*time.Timer
}

// NewTimers returns an empty wall-clock scheduler.
func NewTimers() *Timers {
	return &Timers{timers: make(map[int64]*time.Timer)}
}

// After schedules fn to run on its own goroutine after d. Completed timers
// remove themselves from the registry.
func (t *Timers) After(d time.Duration, fn func()) func() {
	t.mu.Lock()
	t.nextID++
	id := t.nextID
	timer := time.AfterFunc(d, func() {
		t.mu.Lock()
		delete(t.timers, id)
		t.mu.Unlock()
		fn()
	})
	t.timers[id] = timer
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if tm, ok := t.timers[id]; ok {
			tm.Stop()
			delete(t.timers, id)
		}
	}
}

// Stop cancels all pending timers. Callbacks already started keep running.
func (t *Timers) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for id, tm := range t.timers {
		tm.Stop()
		delete(t.timers, id)
	}
}

type manualEntry struct {
	due time.Duration
	seq int64
	fn  func()
}

// Manual is a virtual-time Scheduler for tests. Nothing runs until Advance is
// called; callbacks fire synchronously, ordered by due time with scheduling
// order as the tie-break, so tests observe the exact interleaving users would.
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	nextSeq int64
	entries map[int64]manualEntry
}

// NewManual returns a virtual-time scheduler positioned at time zero.
func NewManual() *Manual {
	return &Manual{entries: make(map[int64]manualEntry)}
}

// After registers fn to run when virtual time reaches now+d.
func (m *Manual) After(d time.Duration, fn func()) func() {
	m.mu.Lock()
	m.nextSeq++
	seq := m.nextSeq
	m.entries[seq] = manualEntry{due: m.now + d, seq: seq, fn: fn}
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.entries, seq)
	}
}

// Stop drops every pending entry.
func (m *Manual) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[int64]manualEntry)
}

// Advance moves virtual time forward by d and runs every entry that becomes
// due, in (due, scheduling order). Callbacks may schedule further work; newly
// due entries run within the same Advance call.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now += d
	for {
		var next *manualEntry
		for _, e := range m.entries {
			e := e
			if e.due > m.now {
				continue
			}
			if next == nil || e.due < next.due || (e.due == next.due && e.seq < next.seq) {
				next = &e
			}
		}
		if next == nil {
			break
		}
		delete(m.entries, next.seq)
		m.mu.Unlock()
		next.fn()
		m.mu.Lock()
	}
	m.mu.Unlock()
}

// Pending reports the number of callbacks not yet due or cancelled.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
