package components

import (
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/focusclock/internal/ui/theme"
)

// MenuItem represents a single row in a vertical menu.
type MenuItem struct {
	Label  string
	Detail string      // right-hand text, e.g. an accrued total
	Marker bool        // draws the active marker next to the label
	Color  color.Color // label color when not selected; nil uses theme.Text
	Action func() tea.Cmd
}

// Menu is a vertical navigation menu with a movable cursor.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the cursor on the first item.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update moves the cursor on up/down and runs the item action on enter.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Items)-1 {
			m.Selected++
		}
	case "enter":
		if item := m.Items[m.Selected]; item.Action != nil {
			return m, item.Action()
		}
	}

	return m, nil
}

// View renders the menu; width aligns the detail column.
func (m Menu) View(width int) string {
	var b strings.Builder
	for i, item := range m.Items {
		cursor := "    "
		if i == m.Selected {
			cursor = "  ▸ "
		}
		marker := "  "
		if item.Marker {
			marker = "● "
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if item.Color != nil {
			style = style.Foreground(item.Color)
		}
		if i == m.Selected {
			style = style.Bold(true)
		}

		left := cursor + marker + style.Render(item.Label)
		right := lipgloss.NewStyle().Foreground(theme.TextDim).Render(item.Detail)

		gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
		if gap < 1 {
			gap = 1
		}
		b.WriteString(left + strings.Repeat(" ", gap) + right + "\n")
	}
	return b.String()
}
