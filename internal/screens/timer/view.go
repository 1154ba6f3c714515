package timer

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/focusclock/internal/accrual"
	"github.com/abhisek/focusclock/internal/ui/components"
	"github.com/abhisek/focusclock/internal/ui/layout"
	"github.com/abhisek/focusclock/internal/ui/theme"
)

func (s *TimerScreen) View(width, height int) string {
	snap := s.engine.Snapshot()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(renderSelection(snap, width))
	b.WriteString("\n\n")
	b.WriteString(renderClock(snap, width))
	b.WriteString("\n")
	b.WriteString(renderStateLine(snap, s.gapTicks, width))
	b.WriteString("\n\n")

	rule := lipgloss.NewStyle().Foreground(theme.Border).Render("  " + strings.Repeat("─", max(width-4, 0)))
	b.WriteString(rule)
	b.WriteString("\n")

	menuWidth := min(width, 48)
	menu := s.menu
	menu.Items = make([]components.MenuItem, len(s.menu.Items))
	copy(menu.Items, s.menu.Items)
	for i, subj := range accrual.Subjects() {
		menu.Items[i].Label = fmt.Sprintf("%d %s", i+1, subj)
		menu.Items[i].Detail = accrual.FormatClock(snap.Total(subj))
		if cur, ok := snap.Selection.Subject(); ok && cur == subj {
			menu.Items[i].Marker = true
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.TrimSuffix(menu.View(menuWidth), "\n")))
	b.WriteString("\n")

	if !layout.IsCompactHeight(height) {
		b.WriteString(rule)
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderBreakdown(snap, menuWidth)))
	}

	if s.journalErr != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  journal: " + s.journalErr))
	}

	return b.String()
}

func renderSelection(snap accrual.Snapshot, width int) string {
	label := strings.ToUpper(snap.Selection.String())
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.SubjectColor(snap.Selection.String())).
		Bold(true).
		Render(label)
}

func renderClock(snap accrual.Snapshot, width int) string {
	fg := theme.Text
	if !snap.Running {
		fg = theme.TextDim
	}
	clock := lipgloss.NewStyle().
		Foreground(fg).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.SubjectColor(snap.Selection.String())).
		Padding(0, 4).
		Render(accrual.FormatClock(snap.SessionClock))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, clock)
}

func renderStateLine(snap accrual.Snapshot, gaps, width int) string {
	var line string
	switch {
	case !snap.Running:
		line = theme.Stopped.Render("stopped") + theme.Hint.Render("  press p to resume")
	case snap.Selection.IsResting():
		line = lipgloss.NewStyle().Foreground(theme.Rest).Bold(true).Render("resting") +
			theme.Hint.Render("  rest time is not counted")
	default:
		line = theme.Running.Render("running")
	}
	if gaps > 0 {
		line += theme.Hint.Render(fmt.Sprintf("  skipped gaps: %d", gaps))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}

// renderBreakdown draws each subject's share of the total focus time.
func renderBreakdown(snap accrual.Snapshot, width int) string {
	var total time.Duration
	for _, d := range snap.Totals {
		total += d
	}

	var b strings.Builder
	b.WriteString(theme.Hint.Render(fmt.Sprintf("  total focus %s", accrual.FormatClock(total))))
	b.WriteString("\n")
	if total == 0 {
		return b.String()
	}

	for _, subj := range accrual.Subjects() {
		d := snap.Total(subj)
		if d == 0 {
			continue
		}
		bar := components.ShareBar{
			Label:  fmt.Sprintf("  %-9s", subj),
			Share:  float64(d) / float64(total),
			Detail: accrual.FormatClock(d),
			Width:  width,
			Fill:   theme.SubjectColor(subj.String()),
		}
		b.WriteString(bar.View())
		b.WriteString("\n")
	}
	return b.String()
}
