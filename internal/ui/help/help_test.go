package help

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avrel/setlist/internal/ui/popup"
)

func sendKey(m *Model, key string) (popup.Popup, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

func TestClose(t *testing.T) {
	for _, key := range []string{"?", "q"} {
		t.Run(key, func(t *testing.T) {
			m := New()
			m.SetSize(80, 24)

			_, cmd := sendKey(m, key)
			if cmd == nil {
				t.Fatalf("%q should produce a command", key)
			}
			if _, ok := cmd().(CloseMsg); !ok {
				t.Errorf("%q produced %T, want CloseMsg", key, cmd())
			}
		})
	}

	t.Run("esc", func(t *testing.T) {
		m := New()
		m.SetSize(80, 24)

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		if cmd == nil {
			t.Fatal("esc should produce a command")
		}
		if _, ok := cmd().(CloseMsg); !ok {
			t.Errorf("esc produced %T, want CloseMsg", cmd())
		}
	})
}

func TestScroll(t *testing.T) {
	m := New()
	m.SetSize(80, 12)

	sendKey(m, "j")
	sendKey(m, "j")
	if m.scrollOffset != 2 {
		t.Errorf("after jj scrollOffset = %d, want 2", m.scrollOffset)
	}

	sendKey(m, "k")
	if m.scrollOffset != 1 {
		t.Errorf("after k scrollOffset = %d, want 1", m.scrollOffset)
	}
}

func TestScrollStopsAtTop(t *testing.T) {
	m := New()
	m.SetSize(80, 12)

	sendKey(m, "k")
	sendKey(m, "k")
	if m.scrollOffset != 0 {
		t.Errorf("scrollOffset = %d, want 0 at top", m.scrollOffset)
	}
}

func TestScrollStopsAtBottom(t *testing.T) {
	m := New()
	m.SetSize(80, 12)

	for range 100 {
		sendKey(m, "j")
	}
	if m.scrollOffset != m.maxScroll() {
		t.Errorf("scrollOffset = %d, want %d at bottom", m.scrollOffset, m.maxScroll())
	}
}

func TestView(t *testing.T) {
	m := New()
	m.SetSize(80, 100)

	view := m.View()
	for _, want := range []string{"Help", "Global", "Playback", "Track Panel", "Quit", "q, ctrl+c", "close"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}

func TestView_SectionsInOrder(t *testing.T) {
	m := New()
	m.SetSize(80, 100)

	view := m.View()
	globalIdx := strings.Index(view, "Global")
	playbackIdx := strings.Index(view, "Playback")
	panelIdx := strings.Index(view, "Track Panel")

	if globalIdx == -1 || playbackIdx == -1 || panelIdx == -1 {
		t.Fatal("all sections should be visible")
	}
	if globalIdx > playbackIdx || playbackIdx > panelIdx {
		t.Error("sections should render in declaration order")
	}
}

func TestView_EmptyWithoutSize(t *testing.T) {
	m := New()

	if view := m.View(); view != "" {
		t.Errorf("view = %q, want empty without a size", view)
	}
}
