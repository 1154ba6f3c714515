package timer

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/focusclock/internal/ui/layout"
)

type keyMap struct {
	Pick    key.Binding
	Move    key.Binding
	Rest    key.Binding
	Stop    key.Binding
	Resume  key.Binding
	History key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "Subject"),
		),
		Move: key.NewBinding(
			key.WithKeys("up", "down", "k", "j", "enter"),
			key.WithHelp("↑↓⏎", "Menu"),
		),
		Rest: key.NewBinding(
			key.WithKeys("r", "space"),
			key.WithHelp("r", "Rest"),
		),
		Stop: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Stop"),
		),
		Resume: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Resume"),
			key.WithDisabled(),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "History"),
		),
	}
}

// syncRunning enables exactly one of stop/resume.
func (k *keyMap) syncRunning(running bool) {
	k.Stop.SetEnabled(running)
	k.Resume.SetEnabled(!running)
}

func (k keyMap) hints() []layout.KeyHint {
	bindings := []key.Binding{k.Pick, k.Move, k.Rest, k.Stop, k.Resume, k.History}
	hints := make([]layout.KeyHint, 0, len(bindings)+1)
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}
