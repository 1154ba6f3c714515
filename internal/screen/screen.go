package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/focusclock/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is an optional interface for screens that report a short
// status string for the header.
type StatusProvider interface {
	Status() string
}

// BackgroundMsg marks messages that every screen on the stack receives, not
// only the active one. Periodic ticks use it so a covered screen keeps its
// tick chain alive.
type BackgroundMsg interface {
	Background()
}
