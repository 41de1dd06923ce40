// Package help shows a scrollable popup listing all key bindings.
package help

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avrel/setlist/internal/keymap"
	"github.com/avrel/setlist/internal/ui"
	"github.com/avrel/setlist/internal/ui/popup"
	"github.com/avrel/setlist/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// CloseMsg is sent when the user dismisses the popup.
type CloseMsg struct{}

// sections defines the display order and labels of binding contexts.
var sections = []struct {
	context string
	label   string
}{
	{"global", "Global"},
	{"playback", "Playback"},
	{"panel", "Track Panel"},
}

// Model holds the help popup state.
type Model struct {
	ui.Base
	lines        []string
	scrollOffset int
}

// New creates a help popup over all known bindings.
func New() *Model {
	return &Model{lines: buildLines()}
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return CloseMsg{} }
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	start := min(m.scrollOffset, len(m.lines))
	end := min(start+m.visibleHeight(), len(m.lines))

	d := popup.New()
	d.Title = "Help"
	d.Content = strings.Join(m.lines[start:end], "\n")
	d.Footer = m.footer()
	return d.Render(m.Width(), m.Height())
}

// buildLines renders all bindings as aligned key/description rows grouped
// by section.
func buildLines() []string {
	t := styles.T()
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	descStyle := t.S().Base
	headerStyle := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)

	keyWidth := 0
	for _, b := range keymap.Bindings {
		if w := len(keyList(b)); w > keyWidth {
			keyWidth = w
		}
	}

	var lines []string
	for _, sec := range sections {
		bindings := keymap.ByContext(sec.context)
		if len(bindings) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, headerStyle.Render(sec.label))
		for _, b := range bindings {
			keys := keyList(b)
			keys += strings.Repeat(" ", keyWidth-len(keys))
			lines = append(lines, keyStyle.Render(keys)+"  "+descStyle.Render(b.Description))
		}
	}
	return lines
}

func keyList(b keymap.Binding) string {
	return strings.Join(b.Keys, ", ")
}

func (m *Model) footer() string {
	if len(m.lines) <= m.visibleHeight() {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

// visibleHeight leaves room for the dialog chrome around the content.
func (m *Model) visibleHeight() int {
	return max(m.Height()-8, 5)
}

func (m *Model) maxScroll() int {
	return max(len(m.lines)-m.visibleHeight(), 0)
}
