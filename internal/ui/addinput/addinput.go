// Package addinput provides the popup for adding tracks from a filesystem path.
package addinput

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avrel/setlist/internal/ui"
	"github.com/avrel/setlist/internal/ui/popup"
	"github.com/avrel/setlist/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// ConfirmMsg carries a validated path to load tracks from.
type ConfirmMsg struct {
	Path string
}

// CloseMsg closes the popup without adding anything.
type CloseMsg struct{}

// Model is the add-tracks popup: a single path input.
type Model struct {
	ui.Base
	input   textinput.Model
	errText string
}

// New creates the popup with the input focused.
func New() *Model {
	ti := textinput.New()
	ti.Placeholder = "path to a file, folder or .m3u playlist"
	ti.CharLimit = 512
	ti.Width = 48
	ti.Focus()

	return &Model{input: ti}
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize implements popup.Popup and fits the input to the dialog.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)

	w := width - 12
	if w > 56 {
		w = 56
	}
	if w < 20 {
		w = 20
	}
	m.input.Width = w
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, func() tea.Msg { return CloseMsg{} }

		case "enter":
			return m.confirm()
		}
		// Typing invalidates a stale validation error
		m.errText = ""
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) confirm() (popup.Popup, tea.Cmd) {
	path := strings.TrimSpace(m.input.Value())
	if path == "" {
		return m, func() tea.Msg { return CloseMsg{} }
	}

	// Expand ~ to home directory
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = home + path[1:]
		}
	}

	if _, err := os.Stat(path); err != nil {
		m.errText = "Path does not exist"
		return m, nil
	}

	return m, func() tea.Msg { return ConfirmMsg{Path: path} }
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	content := m.input.View()
	if m.errText != "" {
		content += "\n\n" + styles.T().S().Error.Render(m.errText)
	}

	d := popup.New()
	d.Title = "Add Tracks"
	d.Content = content
	d.Footer = "enter add · esc cancel"
	return d.Render(m.Width(), m.Height())
}
