package timer

import (
	"context"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/focusclock/internal/accrual"
	"github.com/abhisek/focusclock/internal/clock"
	"github.com/abhisek/focusclock/internal/logging"
	"github.com/abhisek/focusclock/internal/router"
	"github.com/abhisek/focusclock/internal/screen"
	"github.com/abhisek/focusclock/internal/screens/history"
	"github.com/abhisek/focusclock/internal/store"
	"github.com/abhisek/focusclock/internal/ui/components"
	"github.com/abhisek/focusclock/internal/ui/layout"
	"github.com/abhisek/focusclock/internal/ui/theme"
)

// Options wires the timer screen's collaborators.
type Options struct {
	Engine *accrual.Engine
	Clock  clock.Clock

	// Journal receives every transition; nil disables journaling.
	Journal store.JournalRepo
	RunID   string

	Logger       *slog.Logger
	TickInterval time.Duration
}

// TimerScreen feeds ticks and user actions into the accrual engine and
// renders its snapshot.
type TimerScreen struct {
	engine   *accrual.Engine
	clock    clock.Clock
	journal  store.JournalRepo
	runID    string
	logger   *slog.Logger
	interval time.Duration

	menu components.Menu
	keys keyMap

	gapTicks   int // ticks dropped for exceeding the gap ceiling
	journalErr string
}

var _ screen.Screen = (*TimerScreen)(nil)
var _ screen.KeyHintProvider = (*TimerScreen)(nil)
var _ screen.StatusProvider = (*TimerScreen)(nil)

// New creates a TimerScreen. Missing options fall back to a fresh engine,
// the real clock, a discarding logger, and one-second ticks.
func New(opts Options) *TimerScreen {
	if opts.Engine == nil {
		opts.Engine = accrual.New()
	}
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second
	}

	s := &TimerScreen{
		engine:   opts.Engine,
		clock:    opts.Clock,
		journal:  opts.Journal,
		runID:    opts.RunID,
		logger:   opts.Logger,
		interval: opts.TickInterval,
		keys:     newKeyMap(),
	}

	subjects := accrual.Subjects()
	items := make([]components.MenuItem, 0, len(subjects))
	for _, subj := range subjects {
		items = append(items, components.MenuItem{
			Label: subj.String(),
			Color: theme.SubjectColor(subj.String()),
			Action: func() tea.Cmd {
				return func() tea.Msg { return selectSubjectMsg{Subject: subj} }
			},
		})
	}
	s.menu = components.NewMenu(items)
	s.keys.syncRunning(s.engine.Running())
	return s
}

func (s *TimerScreen) Init() tea.Cmd {
	return tickCmd(s.interval)
}

func (s *TimerScreen) Title() string {
	return "Timer"
}

func (s *TimerScreen) Status() string {
	sel := s.engine.Selection().String()
	if s.engine.Running() {
		return "● " + sel
	}
	return "■ " + sel
}

func (s *TimerScreen) KeyHints() []layout.KeyHint {
	return s.keys.hints()
}

func (s *TimerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		s.handleTick(time.Time(msg))
		return s, tickCmd(s.interval)

	case selectSubjectMsg:
		s.engine.SelectSubject(msg.Subject, s.clock.Now())
		return s, s.record(store.KindSelect)

	case transitionRecordedMsg:
		if msg.Err != nil {
			s.logger.Warn("journal write failed", "error", msg.Err)
			s.journalErr = msg.Err.Error()
		} else {
			s.journalErr = ""
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *TimerScreen) handleTick(now time.Time) {
	prev := s.engine.LastTick()
	res := s.engine.OnTick(now)

	switch res {
	case accrual.TickGap:
		s.gapTicks++
		s.logger.Debug("tick rejected", "reason", res.String(), "delta", now.Sub(prev), "ceiling", s.engine.MaxTickGap())
	case accrual.TickNonPositive:
		s.logger.Debug("tick rejected", "reason", res.String(), "delta", now.Sub(prev))
	}
}

func (s *TimerScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Pick):
		idx := int(msg.String()[0] - '1')
		subjects := accrual.Subjects()
		if idx < 0 || idx >= len(subjects) {
			return s, nil
		}
		s.menu.Selected = idx
		s.engine.SelectSubject(subjects[idx], s.clock.Now())
		return s, s.record(store.KindSelect)

	case key.Matches(msg, s.keys.Rest):
		s.engine.ToggleRest(s.clock.Now())
		kind := store.KindFocus
		if s.engine.Selection().IsResting() {
			kind = store.KindRest
		}
		return s, s.record(kind)

	case key.Matches(msg, s.keys.Stop):
		s.engine.Stop()
		return s, s.record(store.KindStop)

	case key.Matches(msg, s.keys.Resume):
		s.engine.Resume(s.clock.Now())
		return s, s.record(store.KindResume)

	case key.Matches(msg, s.keys.History):
		hs := history.New(s.journal, s.runID)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: hs} }
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// record journals the transition that was just applied. The row is built
// synchronously; only the write runs off the update loop.
func (s *TimerScreen) record(kind store.TransitionKind) tea.Cmd {
	s.keys.syncRunning(s.engine.Running())

	snap := s.engine.Snapshot()
	tr := store.Transition{
		RunID:     s.runID,
		Kind:      kind,
		Selection: snap.Selection.String(),
		Running:   snap.Running,
		Session:   snap.SessionClock,
		At:        s.clock.Now(),
	}
	if subj, ok := snap.Selection.Subject(); ok {
		tr.Total = snap.Total(subj)
	}
	s.logger.Info("transition", "kind", string(kind), "selection", tr.Selection, "running", tr.Running)

	if s.journal == nil {
		return nil
	}
	journal := s.journal
	return func() tea.Msg {
		return transitionRecordedMsg{Err: journal.Append(context.Background(), tr)}
	}
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
