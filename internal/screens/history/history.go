package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/focusclock/internal/accrual"
	"github.com/abhisek/focusclock/internal/screen"
	"github.com/abhisek/focusclock/internal/store"
	"github.com/abhisek/focusclock/internal/ui/layout"
	"github.com/abhisek/focusclock/internal/ui/theme"
)

// pageSize bounds how many transitions are loaded at once.
const pageSize = 200

type historyLoadedMsg struct {
	Entries []store.Transition
	Err     error
}

// HistoryScreen lists the transitions journaled during this run.
type HistoryScreen struct {
	journal store.JournalRepo
	runID   string
	entries []store.Transition
	loaded  bool
	err     error
	offset  int
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen for runID. A nil journal shows a notice.
func New(journal store.JournalRepo, runID string) *HistoryScreen {
	return &HistoryScreen{journal: journal, runID: runID}
}

func (h *HistoryScreen) Init() tea.Cmd {
	return h.load()
}

func (h *HistoryScreen) Title() string {
	return "History"
}

func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "r", Description: "Reload"},
		{Key: "Esc", Description: "Back"},
	}
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		h.loaded = true
		h.entries = msg.Entries
		h.err = msg.Err
		h.offset = 0
		return h, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if h.offset > 0 {
				h.offset--
			}
		case "down", "j":
			if h.offset < len(h.entries)-1 {
				h.offset++
			}
		case "r":
			return h, h.load()
		}
	}
	return h, nil
}

func (h *HistoryScreen) load() tea.Cmd {
	if h.journal == nil {
		return nil
	}
	journal, runID := h.journal, h.runID
	return func() tea.Msg {
		entries, err := journal.Recent(context.Background(), store.QueryOpts{RunID: runID, Limit: pageSize})
		return historyLoadedMsg{Entries: entries, Err: err}
	}
}

func (h *HistoryScreen) View(width, height int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	switch {
	case h.journal == nil:
		return dim.Render("\n  Journal disabled.")
	case h.err != nil:
		return lipgloss.NewStyle().Foreground(theme.Error).Render("\n  Could not load history: " + h.err.Error())
	case !h.loaded:
		return dim.Render("\n  Loading...")
	case len(h.entries) == 0:
		return dim.Render("\n  No transitions yet. Pick a subject to start.")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("  %-10s %-8s %-11s %-8s %s", "time", "action", "selection", "session", "total")))
	b.WriteString("\n")

	rows := max(height-3, 1)
	end := min(h.offset+rows, len(h.entries))
	for _, e := range h.entries[h.offset:end] {
		b.WriteString(renderRow(e))
		b.WriteString("\n")
	}
	return b.String()
}

func renderRow(e store.Transition) string {
	total := ""
	if e.Selection != accrual.Rest().String() {
		total = accrual.FormatClock(e.Total)
	}
	line := fmt.Sprintf("  %-10s %-8s %-11s %-8s %s",
		e.At.Format("15:04:05"),
		string(e.Kind),
		e.Selection,
		accrual.FormatClock(e.Session),
		total,
	)
	return lipgloss.NewStyle().Foreground(theme.SubjectColor(e.Selection)).Render(line)
}
