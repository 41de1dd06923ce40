// internal/app/app.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avrel/setlist/internal/config"
	"github.com/avrel/setlist/internal/keymap"
	"github.com/avrel/setlist/internal/playlist"
	"github.com/avrel/setlist/internal/ui/popup"
	"github.com/avrel/setlist/internal/ui/trackpanel"
)

// Model is the root application model containing all state.
type Model struct {
	List       *playlist.Playlist
	TrackPanel trackpanel.Model
	Popup      popup.Popup // nil when no popup is open
	ErrorMsg   string
	TotalSize  int64
	Width      int
	Height     int

	keys      *keymap.Resolver
	initPaths []string
}

// New creates the application model from configuration. Paths given on the
// command line win over the configured default folder; both may be absent.
func New(cfg *config.Config, args []string) Model {
	list := playlist.New()
	list.SetRepeat(cfg.RepeatMode())

	panel := trackpanel.New(list)
	panel.SetFocused(true)

	paths := args
	if len(paths) == 0 && cfg.DefaultFolder != "" {
		paths = []string{cfg.DefaultFolder}
	}

	bindings := append(keymap.ByContext("global"), keymap.ByContext("playback")...)

	return Model{
		List:       list,
		TrackPanel: panel,
		keys:       keymap.NewResolver(bindings),
		initPaths:  paths,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if len(m.initPaths) == 0 {
		return nil
	}
	return loadTracksCmd(m.initPaths...)
}
