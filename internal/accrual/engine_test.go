package accrual

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 2, 22, 9, 0, 0, 0, time.UTC)

func at(d time.Duration) time.Time {
	return t0.Add(d)
}

func TestNewEngineStartsRestingAndStopped(t *testing.T) {
	e := New()

	assert.True(t, e.Selection().IsResting())
	assert.False(t, e.Running())
	assert.Zero(t, e.SessionClock())
	for _, s := range Subjects() {
		assert.Zero(t, e.Total(s))
	}
	assert.Equal(t, TickStopped, e.OnTick(at(time.Second)))
}

func TestTicksAccrueSumOfDeltas(t *testing.T) {
	e := New()
	e.SelectSubject(Physics, t0)

	deltas := []time.Duration{
		1 * time.Second,
		990 * time.Millisecond,
		1010 * time.Millisecond,
		250 * time.Millisecond,
		1999 * time.Millisecond,
	}
	var sum time.Duration
	now := t0
	for _, d := range deltas {
		now = now.Add(d)
		sum += d
		require.Equal(t, TickAccrued, e.OnTick(now))
	}

	assert.Equal(t, sum, e.Total(Physics))
	assert.Equal(t, sum, e.SessionClock())
	assert.Zero(t, e.Total(Math))
}

func TestRejectedTicksAdvanceAnchor(t *testing.T) {
	tests := []struct {
		name  string
		setup func(e *Engine)
		tick  time.Time
		want  TickResult
	}{
		{
			name:  "stopped",
			setup: func(e *Engine) { e.SelectSubject(Math, t0); e.Stop() },
			tick:  at(time.Second),
			want:  TickStopped,
		},
		{
			name:  "same timestamp",
			setup: func(e *Engine) { e.SelectSubject(Math, t0) },
			tick:  t0,
			want:  TickNonPositive,
		},
		{
			name:  "backdated",
			setup: func(e *Engine) { e.SelectSubject(Math, t0) },
			tick:  at(-3 * time.Second),
			want:  TickNonPositive,
		},
		{
			name:  "exactly at ceiling",
			setup: func(e *Engine) { e.SelectSubject(Math, t0) },
			tick:  at(2 * time.Second),
			want:  TickGap,
		},
		{
			name:  "suspend gap",
			setup: func(e *Engine) { e.SelectSubject(Math, t0) },
			tick:  at(5 * time.Second),
			want:  TickGap,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New()
			tt.setup(e)

			got := e.OnTick(tt.tick)

			assert.Equal(t, tt.want, got)
			assert.False(t, got.Accepted())
			assert.Equal(t, tt.tick, e.LastTick())
			assert.Zero(t, e.Total(Math))
			assert.Zero(t, e.SessionClock())
		})
	}
}

func TestGapTickDoesNotPoisonNextTick(t *testing.T) {
	e := New()
	e.SelectSubject(Math, t0)

	require.Equal(t, TickAccrued, e.OnTick(at(time.Second)))
	require.Equal(t, TickGap, e.OnTick(at(6*time.Second)))
	require.Equal(t, TickAccrued, e.OnTick(at(7*time.Second)))

	assert.Equal(t, 2*time.Second, e.Total(Math))
	assert.Equal(t, 2*time.Second, e.SessionClock())
}

func TestSelectAndToggleResetSessionAndRun(t *testing.T) {
	ops := map[string]func(e *Engine, now time.Time){
		"select": func(e *Engine, now time.Time) { e.SelectSubject(English, now) },
		"toggle": func(e *Engine, now time.Time) { e.ToggleRest(now) },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			e := New()
			e.SelectSubject(Math, t0)
			e.OnTick(at(time.Second))
			e.Stop()

			op(e, at(3*time.Second))

			assert.True(t, e.Running())
			assert.Zero(t, e.SessionClock())
			assert.Equal(t, at(3*time.Second), e.LastTick())
			assert.Equal(t, time.Second, e.Total(Math))
		})
	}
}

func TestToggleRestTwiceRestoresSubject(t *testing.T) {
	e := New()
	e.SelectSubject(Chemistry, t0)

	e.ToggleRest(at(time.Second))
	assert.True(t, e.Selection().IsResting())

	e.ToggleRest(at(2 * time.Second))
	s, ok := e.Selection().Subject()
	require.True(t, ok)
	assert.Equal(t, Chemistry, s)
}

func TestToggleRestFromInitialStateUsesDefault(t *testing.T) {
	e := New()
	e.ToggleRest(t0)
	s, ok := e.Selection().Subject()
	require.True(t, ok)
	assert.Equal(t, Math, s)

	e = New(WithDefaultSubject(Reading))
	e.ToggleRest(t0)
	s, _ = e.Selection().Subject()
	assert.Equal(t, Reading, s)
}

func TestRestingTicksAreNotAttributed(t *testing.T) {
	e := New()
	e.SelectSubject(Training, t0)
	e.OnTick(at(time.Second))
	e.ToggleRest(at(time.Second))

	assert.Equal(t, TickResting, e.OnTick(at(2*time.Second)))
	assert.Equal(t, TickResting, e.OnTick(at(3*time.Second)))

	assert.Equal(t, time.Second, e.Total(Training))
	assert.Zero(t, e.SessionClock())
	assert.Equal(t, at(3*time.Second), e.LastTick())
}

func TestStopBlocksAccrualUntilReenabled(t *testing.T) {
	e := New()
	e.SelectSubject(Math, t0)
	e.OnTick(at(time.Second))
	e.Stop()

	for i := 2; i <= 5; i++ {
		assert.Equal(t, TickStopped, e.OnTick(at(time.Duration(i)*time.Second)))
	}
	assert.Equal(t, time.Second, e.Total(Math))
	assert.Equal(t, time.Second, e.SessionClock())

	s, _ := e.Selection().Subject()
	assert.Equal(t, Math, s)

	e.SelectSubject(Math, at(5*time.Second))
	e.OnTick(at(6 * time.Second))
	assert.Equal(t, 2*time.Second, e.Total(Math))
	assert.Equal(t, time.Second, e.SessionClock())
}

func TestResumeKeepsSessionClock(t *testing.T) {
	e := New()
	e.SelectSubject(Reading, t0)
	e.OnTick(at(time.Second))
	e.Stop()
	e.OnTick(at(30 * time.Second))

	e.Resume(at(60 * time.Second))
	require.True(t, e.Running())
	assert.Equal(t, at(60*time.Second), e.LastTick())

	e.OnTick(at(61 * time.Second))
	assert.Equal(t, 2*time.Second, e.Total(Reading))
	assert.Equal(t, 2*time.Second, e.SessionClock())
}

func TestResumeWhileRunningIsNoop(t *testing.T) {
	e := New()
	e.SelectSubject(Math, t0)
	e.Resume(at(time.Second))

	assert.Equal(t, t0, e.LastTick())
}

func TestSwitchingSubjectsScenario(t *testing.T) {
	e := New()
	require.True(t, e.Selection().IsResting())

	e.SelectSubject(Math, t0)
	e.OnTick(at(time.Second))
	assert.Equal(t, time.Second, e.Total(Math))
	assert.Equal(t, time.Second, e.SessionClock())

	e.SelectSubject(Physics, at(time.Second))
	assert.Zero(t, e.SessionClock())
	assert.Equal(t, time.Second, e.Total(Math))
	assert.Zero(t, e.Total(Physics))

	e.OnTick(at(2 * time.Second))
	assert.Equal(t, time.Second, e.Total(Physics))
	assert.Equal(t, time.Second, e.Total(Math))
}

func TestSelectInvalidSubjectIsIgnored(t *testing.T) {
	e := New()
	e.SelectSubject(Subject(42), t0)

	assert.True(t, e.Selection().IsResting())
	assert.False(t, e.Running())
}

func TestWithMaxTickGap(t *testing.T) {
	e := New(WithMaxTickGap(500 * time.Millisecond))
	e.SelectSubject(Math, t0)

	assert.Equal(t, TickGap, e.OnTick(at(time.Second)))
	assert.Equal(t, TickAccrued, e.OnTick(at(1400*time.Millisecond)))
	assert.Equal(t, 400*time.Millisecond, e.Total(Math))

	assert.Equal(t, DefaultMaxTickGap, New(WithMaxTickGap(0)).MaxTickGap())
}

func TestSnapshotIsACopy(t *testing.T) {
	e := New()
	e.SelectSubject(English, t0)
	e.OnTick(at(time.Second))

	snap := e.Snapshot()
	snap.Totals[English] = time.Hour

	assert.Equal(t, time.Second, e.Total(English))
	assert.Equal(t, time.Second, snap.SessionClock)
	assert.True(t, snap.Running)
	assert.Equal(t, "english", snap.Selection.String())
	assert.Zero(t, snap.Total(Math))
}
