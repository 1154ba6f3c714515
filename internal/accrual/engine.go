// Package accrual converts a stream of timestamped ticks into per-subject
// focus time.
//
// The Engine is a plain state machine. It never reads the wall clock and
// never blocks; every operation takes the timestamp it should act at, so the
// host decides where time comes from. It is not safe for concurrent use: all
// calls are expected from one event loop.
package accrual

import "time"

// DefaultMaxTickGap is the exclusive ceiling on a single tick's delta. Larger
// gaps come from suspended processes or missed ticks and are never accrued.
const DefaultMaxTickGap = 2 * time.Second

// TickResult describes what OnTick did with a tick.
type TickResult int

const (
	TickAccrued     TickResult = iota // delta added to the selected subject
	TickResting                       // delta valid but nothing is selected
	TickStopped                       // engine not running
	TickNonPositive                   // timestamp not after the previous tick
	TickGap                           // delta at or above the ceiling
)

func (r TickResult) String() string {
	switch r {
	case TickAccrued:
		return "accrued"
	case TickResting:
		return "resting"
	case TickStopped:
		return "stopped"
	case TickNonPositive:
		return "non-positive"
	case TickGap:
		return "gap"
	default:
		return "unknown"
	}
}

// Accepted reports whether the tick passed the run-state and delta checks.
func (r TickResult) Accepted() bool {
	return r == TickAccrued || r == TickResting
}

// Snapshot is a read-only copy of the engine state for display.
type Snapshot struct {
	Selection    Selection
	Running      bool
	SessionClock time.Duration
	Totals       map[Subject]time.Duration
	LastTick     time.Time
}

// Total returns the accrued time for s, zero when nothing was recorded.
func (s Snapshot) Total(subject Subject) time.Duration {
	return s.Totals[subject]
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxTickGap sets the exclusive ceiling for an accepted tick delta.
// Non-positive values are ignored.
func WithMaxTickGap(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.maxGap = d
		}
	}
}

// WithDefaultSubject sets the subject ToggleRest restores when no subject
// was active before. Invalid subjects are ignored.
func WithDefaultSubject(s Subject) Option {
	return func(e *Engine) {
		if s.Valid() {
			e.defaultSubject = s
		}
	}
}

// Engine owns the selection, run state, and accrued totals.
type Engine struct {
	selection      Selection
	running        bool
	totals         map[Subject]time.Duration
	session        time.Duration
	lastTick       time.Time
	lastActive     Subject
	defaultSubject Subject
	maxGap         time.Duration
}

// New returns a stopped engine that is resting with no accrued time.
func New(opts ...Option) *Engine {
	e := &Engine{
		totals:         make(map[Subject]time.Duration),
		defaultSubject: Math,
		maxGap:         DefaultMaxTickGap,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SelectSubject focuses on s and starts a new session interval at now.
// Time already accrued is untouched. Invalid subjects are ignored.
func (e *Engine) SelectSubject(s Subject, now time.Time) {
	if !s.Valid() {
		return
	}
	e.selection = Focus(s)
	e.restart(now)
}

// ToggleRest switches between resting and the last active subject. Leaving
// rest with no remembered subject selects the default subject.
func (e *Engine) ToggleRest(now time.Time) {
	if s, ok := e.selection.Subject(); ok {
		e.lastActive = s
		e.selection = Rest()
	} else {
		next := e.lastActive
		if next == 0 {
			next = e.defaultSubject
		}
		e.selection = Focus(next)
	}
	e.restart(now)
}

// Stop pauses accrual. Selection, session clock, and totals are kept.
func (e *Engine) Stop() {
	e.running = false
}

// Resume restarts accrual without touching the selection or session clock.
// The anchor moves to now so the paused interval is never counted.
func (e *Engine) Resume(now time.Time) {
	if e.running {
		return
	}
	e.running = true
	e.lastTick = now
}

// OnTick accrues the time since the previous tick to the selected subject.
// The anchor always advances to now, even when the tick is rejected.
func (e *Engine) OnTick(now time.Time) TickResult {
	delta := now.Sub(e.lastTick)
	e.lastTick = now

	switch {
	case !e.running:
		return TickStopped
	case delta <= 0:
		return TickNonPositive
	case delta >= e.maxGap:
		return TickGap
	}

	s, ok := e.selection.Subject()
	if !ok {
		return TickResting
	}
	e.totals[s] += delta
	e.session += delta
	return TickAccrued
}

// Selection returns the current selection.
func (e *Engine) Selection() Selection {
	return e.selection
}

// Running reports whether ticks are being accrued.
func (e *Engine) Running() bool {
	return e.running
}

// SessionClock returns the time accrued since the last select or rest toggle.
func (e *Engine) SessionClock() time.Duration {
	return e.session
}

// Total returns the accrued time for s.
func (e *Engine) Total(s Subject) time.Duration {
	return e.totals[s]
}

// LastTick returns the anchor the next tick's delta is measured from.
func (e *Engine) LastTick() time.Time {
	return e.lastTick
}

// MaxTickGap returns the configured delta ceiling.
func (e *Engine) MaxTickGap() time.Duration {
	return e.maxGap
}

// Snapshot copies the current state.
func (e *Engine) Snapshot() Snapshot {
	totals := make(map[Subject]time.Duration, len(e.totals))
	for s, d := range e.totals {
		totals[s] = d
	}
	return Snapshot{
		Selection:    e.selection,
		Running:      e.running,
		SessionClock: e.session,
		Totals:       totals,
		LastTick:     e.lastTick,
	}
}

func (e *Engine) restart(now time.Time) {
	e.running = true
	e.session = 0
	e.lastTick = now
}
