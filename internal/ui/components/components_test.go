package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pickedMsg string

func testMenu() Menu {
	pick := func(s string) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return pickedMsg(s) }
		}
	}
	return NewMenu([]MenuItem{
		{Label: "math", Detail: "00:10", Action: pick("math")},
		{Label: "physics", Marker: true, Action: pick("physics")},
		{Label: "chemistry"},
	})
}

func TestMenuNavigationClamps(t *testing.T) {
	m := testMenu()

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, m.Selected)

	for i := 0; i < 5; i++ {
		m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	assert.Equal(t, 2, m.Selected)
}

func TestMenuEnterRunsAction(t *testing.T) {
	m := testMenu()
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, pickedMsg("physics"), cmd())

	m.Selected = 2
	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestMenuView(t *testing.T) {
	view := testMenu().View(40)
	lines := strings.Split(strings.TrimRight(view, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "▸")
	assert.Contains(t, lines[0], "00:10")
	assert.Contains(t, lines[1], "●")
	assert.Equal(t, 38, lipgloss.Width(lines[0]))
}

func TestShareBar(t *testing.T) {
	for _, share := range []float64{-1, 0, 0.5, 1, 2} {
		bar := ShareBar{Share: share, Detail: "01:00", Width: 30}.View()
		assert.Equal(t, 30, lipgloss.Width(bar))
	}

	view := ShareBar{Label: "math", Share: 0.25, Detail: "00:30", Width: 40}.View()
	assert.Contains(t, view, "math")
	assert.Contains(t, view, "00:30  25%")

	assert.Contains(t, ShareBar{Share: 3, Width: 20}.View(), "100%")
}
