package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/focusclock/internal/ui/theme"
)

// ShareBar draws one part's share of a whole as a horizontal bar, followed
// by a detail text and the share as a percentage.
type ShareBar struct {
	Label  string
	Share  float64 // clamped to [0, 1]
	Detail string
	Width  int
	Fill   color.Color // nil uses theme.Secondary
}

// View renders the bar in exactly Width cells, or wider when the label and
// detail alone do not fit.
func (b ShareBar) View() string {
	share := min(max(b.Share, 0), 1)

	var left string
	if b.Label != "" {
		left = lipgloss.NewStyle().Foreground(theme.Text).Render(b.Label) + "  "
	}
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(strings.TrimLeft(fmt.Sprintf("  %s %3d%%", b.Detail, int(share*100)), " "))
	right = "  " + right

	barWidth := max(b.Width-lipgloss.Width(left)-lipgloss.Width(right), 4)
	filled := int(float64(barWidth) * share)

	fill := b.Fill
	if fill == nil {
		fill = theme.Secondary
	}

	return left +
		lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled)) +
		right
}
