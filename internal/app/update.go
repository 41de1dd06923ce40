// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avrel/setlist/internal/errmsg"
	"github.com/avrel/setlist/internal/keymap"
	"github.com/avrel/setlist/internal/ui/addinput"
	"github.com/avrel/setlist/internal/ui/help"
	"github.com/avrel/setlist/internal/ui/popup"
	"github.com/avrel/setlist/internal/ui/statusbar"
	"github.com/avrel/setlist/internal/ui/trackpanel"
)

// Update handles messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resizeComponents()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TracksLoadedMsg:
		return m.handleTracksLoaded(msg)

	case TotalSizeMsg:
		m.TotalSize = msg.Size
		return m, nil

	case trackpanel.JumpToTrackMsg:
		if _, err := m.List.JumpTo(msg.Index); err != nil {
			m.ErrorMsg = errmsg.Format(errmsg.OpTrackJump, err)
			return m, nil
		}
		m.TrackPanel.SyncCursor()
		return m, nil

	case trackpanel.ListChangedMsg:
		return m, totalSizeCmd(m.List.Tracks())

	case addinput.ConfirmMsg:
		m.closePopup()
		return m, loadTracksCmd(msg.Path)

	case addinput.CloseMsg, help.CloseMsg:
		m.closePopup()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// An open popup captures all input
	if m.Popup != nil {
		var cmd tea.Cmd
		m.Popup, cmd = m.Popup.Update(msg)
		return m, cmd
	}

	// The next keypress retires a shown error
	m.ErrorMsg = ""

	if action := m.keys.Resolve(msg.String()); action != "" {
		return m.handleAction(action)
	}

	var cmd tea.Cmd
	m.TrackPanel, cmd = m.TrackPanel.Update(msg)
	return m, cmd
}

func (m Model) handleAction(action keymap.Action) (tea.Model, tea.Cmd) {
	switch action {
	case keymap.ActionQuit:
		return m, tea.Quit

	case keymap.ActionHelp:
		return m.openPopup(help.New())

	case keymap.ActionAdd:
		return m.openPopup(addinput.New())

	case keymap.ActionClear:
		m.List.Clear()
		m.TrackPanel.Sync()
		m.TotalSize = 0

	case keymap.ActionNextTrack:
		if _, err := m.List.Next(); err != nil {
			m.ErrorMsg = errmsg.Format(errmsg.OpNext, err)
			return m, nil
		}
		m.TrackPanel.SyncCursor()

	case keymap.ActionPrevTrack:
		if _, err := m.List.Previous(); err != nil {
			m.ErrorMsg = errmsg.Format(errmsg.OpPrevious, err)
			return m, nil
		}
		m.TrackPanel.SyncCursor()

	case keymap.ActionCycleRepeat:
		m.List.CycleRepeat()

	case keymap.ActionToggleShuffle:
		m.List.ToggleShuffle()
	}

	return m, nil
}

func (m Model) handleTracksLoaded(msg TracksLoadedMsg) (tea.Model, tea.Cmd) {
	if len(msg.Tracks) > 0 {
		m.List.Add(msg.Tracks...)
		m.TrackPanel.Sync()
		m.TrackPanel.SyncCursor()
	}

	switch {
	case msg.Err != nil:
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpTracksLoad, msg.Path, msg.Err)
	case len(msg.Tracks) == 0:
		m.ErrorMsg = "No tracks found"
	}

	if len(msg.Tracks) == 0 {
		return m, nil
	}
	return m, totalSizeCmd(m.List.Tracks())
}

func (m Model) openPopup(p popup.Popup) (tea.Model, tea.Cmd) {
	m.Popup = p
	m.Popup.SetSize(m.Width, m.Height)
	m.TrackPanel.SetFocused(false)
	return m, p.Init()
}

func (m *Model) closePopup() {
	m.Popup = nil
	m.TrackPanel.SetFocused(true)
}

func (m *Model) resizeComponents() {
	m.TrackPanel.SetSize(m.Width, m.Height-statusbar.Height)
	if m.Popup != nil {
		m.Popup.SetSize(m.Width, m.Height)
	}
}
