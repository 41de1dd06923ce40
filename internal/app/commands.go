// internal/app/commands.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avrel/setlist/internal/playlist"
	"github.com/avrel/setlist/internal/tracks"
)

// loadTracksCmd loads every path in order and delivers the combined result.
// The first failing path stops the load; earlier tracks survive.
func loadTracksCmd(paths ...string) tea.Cmd {
	return func() tea.Msg {
		var msg TracksLoadedMsg
		for _, path := range paths {
			loaded, err := tracks.Load(path)
			if err != nil {
				msg.Path = path
				msg.Err = err
				break
			}
			msg.Tracks = append(msg.Tracks, loaded...)
		}
		return msg
	}
}

// totalSizeCmd stats the given tracks in the background.
func totalSizeCmd(ts []playlist.Track) tea.Cmd {
	return func() tea.Msg {
		return TotalSizeMsg{Size: tracks.TotalSize(ts)}
	}
}
