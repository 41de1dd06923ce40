// internal/app/view.go
package app

import (
	"github.com/avrel/setlist/internal/ui/popup"
	"github.com/avrel/setlist/internal/ui/statusbar"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	bar := statusbar.NewState(m.List, m.TotalSize, m.ErrorMsg)
	view := m.TrackPanel.View() + "\n" + statusbar.Render(bar, m.Width)

	if m.Popup != nil {
		view = popup.Compose(view, m.Popup.View(), m.Width)
	}

	return view
}
