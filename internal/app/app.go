package app

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/focusclock/internal/accrual"
	"github.com/abhisek/focusclock/internal/clock"
	"github.com/abhisek/focusclock/internal/router"
	"github.com/abhisek/focusclock/internal/screen"
	"github.com/abhisek/focusclock/internal/screens/timer"
	"github.com/abhisek/focusclock/internal/store"
	"github.com/abhisek/focusclock/internal/ui/layout"
)

// Options holds the dependencies the TUI is built from.
type Options struct {
	Engine       *accrual.Engine
	Clock        clock.Clock
	Journal      store.JournalRepo
	RunID        string
	Logger       *slog.Logger
	TickInterval time.Duration
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the timer screen at the root.
func newAppModel(opts Options) AppModel {
	ts := timer.New(timer.Options{
		Engine:       opts.Engine,
		Clock:        opts.Clock,
		Journal:      opts.Journal,
		RunID:        opts.RunID,
		Logger:       opts.Logger,
		TickInterval: opts.TickInterval,
	})
	return AppModel{
		router: router.New(ts),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Root().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	v.SetContent(m.render())
	return v
}

func (m AppModel) render() string {
	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	// The root screen owns the engine, so its status stays in the header
	// while other screens are on top.
	status := ""
	if sp, ok := m.router.Root().(screen.StatusProvider); ok {
		status = sp.Status()
	}
	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
