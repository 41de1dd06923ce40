// Package trackpanel renders the playlist as a scrollable, editable list.
package trackpanel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avrel/setlist/internal/playlist"
	"github.com/avrel/setlist/internal/ui"
	"github.com/avrel/setlist/internal/ui/cursor"
)

// JumpToTrackMsg is sent when the user picks a track to select.
type JumpToTrackMsg struct {
	Index int
}

// ListChangedMsg is sent after the panel removes or reorders tracks.
type ListChangedMsg struct{}

// Model holds the panel state. The playlist itself is shared with the
// rest of the application.
type Model struct {
	ui.Base
	list     *playlist.Playlist
	cursor   cursor.Cursor
	selected map[int]bool
}

// New creates a panel over the given playlist.
func New(list *playlist.Playlist) Model {
	return Model{
		list:     list,
		cursor:   cursor.New(ui.ScrollMargin),
		selected: make(map[int]bool),
	}
}

// SetSize sets the panel dimensions, border included.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.cursor.ClampToBounds(m.list.Len(), m.listHeight())
}

// CursorPos returns the row under the cursor.
func (m Model) CursorPos() int {
	return m.cursor.Pos()
}

// Sync reconciles the cursor and selection with the playlist after it was
// modified outside the panel.
func (m *Model) Sync() {
	n := m.list.Len()
	m.cursor.ClampToBounds(n, m.listHeight())
	for idx := range m.selected {
		if idx >= n {
			delete(m.selected, idx)
		}
	}
}

// SyncCursor moves the cursor to the selected track, if any.
func (m *Model) SyncCursor() {
	if idx := m.list.CurrentIndex(); idx >= 0 {
		m.cursor.Jump(idx, m.list.Len(), m.listHeight())
	}
}

// Update handles key messages for the panel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.IsFocused() {
		return m, nil
	}

	n := m.list.Len()
	if m.cursor.HandleKey(keyMsg.String(), n, m.listHeight()) {
		return m, nil
	}

	switch keyMsg.String() {
	case "x":
		m.toggleSelect()
	case "esc":
		if len(m.selected) > 0 {
			m.clearSelection()
		}
	case "enter":
		if n > 0 && m.cursor.Pos() < n {
			m.clearSelection()
			idx := m.cursor.Pos()
			return m, func() tea.Msg {
				return JumpToTrackMsg{Index: idx}
			}
		}
	case "d", "delete":
		if n > 0 {
			m.removeSelected()
			return m, func() tea.Msg { return ListChangedMsg{} }
		}
	case "J", "shift+down":
		if m.moveSelected(1) {
			return m, func() tea.Msg { return ListChangedMsg{} }
		}
	case "K", "shift+up":
		if m.moveSelected(-1) {
			return m, func() tea.Msg { return ListChangedMsg{} }
		}
	}

	return m, nil
}

func (m Model) listHeight() int {
	return m.Height() - ui.PanelOverhead
}
