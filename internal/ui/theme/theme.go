package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette: calm dark background, one accent per subject.
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Rest      = lipgloss.Color("#38BDF8") // Sky
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// subjectColors is indexed by subject name.
var subjectColors = map[string]color.Color{
	"math":      lipgloss.Color("#8B5CF6"),
	"physics":   lipgloss.Color("#3B82F6"),
	"chemistry": lipgloss.Color("#10B981"),
	"english":   lipgloss.Color("#F97316"),
	"reading":   lipgloss.Color("#EC4899"),
	"training":  lipgloss.Color("#EAB308"),
}

// SubjectColor returns the accent for a subject name, Rest for anything else.
func SubjectColor(name string) color.Color {
	if c, ok := subjectColors[name]; ok {
		return c
	}
	return Rest
}

var (
	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	// Run states
	Running = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Stopped = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)
