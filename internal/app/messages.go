// Package app wires the playlist, track panel and popups into the root
// Bubble Tea model.
package app

import "github.com/avrel/setlist/internal/playlist"

// TracksLoadedMsg delivers the result of loading tracks from disk.
// Tracks loaded before a failing path are kept.
type TracksLoadedMsg struct {
	Tracks []playlist.Track
	Path   string // the failing path when Err is set
	Err    error
}

// TotalSizeMsg delivers the recomputed on-disk size of the playlist.
type TotalSizeMsg struct {
	Size int64
}
