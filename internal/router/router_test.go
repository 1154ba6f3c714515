package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/focusclock/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	got     []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

type pingMsg struct{}

type bgMsg struct{}

func (bgMsg) Background() {}

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if r.Root().Title() != "first" {
		t.Errorf("expected root 'first', got %q", r.Root().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "first"})
	r.Push(&stubScreen{title: "second"})

	r.Update(PopScreenMsg{})
	r.Update(PopScreenMsg{})

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
	if r.View(80, 24) != "first" {
		t.Errorf("expected view 'first', got %q", r.View(80, 24))
	}
}

func TestForegroundMsgGoesToActiveOnly(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	s2 := &stubScreen{title: "second"}
	r := New(s1)
	r.Update(PushScreenMsg{Screen: s2})

	r.Update(pingMsg{})

	if len(s1.got) != 0 {
		t.Errorf("covered screen should not see foreground messages, got %d", len(s1.got))
	}
	if len(s2.got) != 1 {
		t.Errorf("active screen should see 1 message, got %d", len(s2.got))
	}
}

func TestBackgroundMsgReachesWholeStack(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	s2 := &stubScreen{title: "second"}
	r := New(s1)
	r.Push(s2)

	r.Update(bgMsg{})

	if len(s1.got) != 1 || len(s2.got) != 1 {
		t.Errorf("expected both screens to receive the background msg, got %d and %d", len(s1.got), len(s2.got))
	}
}
