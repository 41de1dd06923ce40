package playlist

import (
	"fmt"
	"time"
)

// Track represents a single track in a playlist.
// The path doubles as the track identity for Find and Contains.
type Track struct {
	Path        string // file path for playback
	Title       string
	Artist      string
	Album       string
	TrackNumber int
	Duration    time.Duration
}

// FormatDuration formats a duration as MM:SS.
func FormatDuration(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", m, s)
}
