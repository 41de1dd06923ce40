// Package statusbar renders the single status line below the track panel.
package statusbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/avrel/setlist/internal/icons"
	"github.com/avrel/setlist/internal/playlist"
	"github.com/avrel/setlist/internal/tracks"
	"github.com/avrel/setlist/internal/ui/render"
	"github.com/avrel/setlist/internal/ui/styles"
)

// Height is the fixed height of the status bar.
const Height = 1

// State holds everything needed to render the status line.
type State struct {
	Track     *playlist.Track // selected track, nil when stopped
	Index     int             // 1-based track position, 0 when stopped
	Count     int
	Repeat    playlist.RepeatMode
	Shuffled  bool
	TotalSize uint64        // bytes on disk, 0 when unknown
	TotalTime time.Duration // summed durations, 0 when unknown
	Err       string        // shown instead of the track info when set
}

// NewState builds a State from the playlist. totalSize is passed in
// because sizing stats the files and callers cache it between changes.
func NewState(list *playlist.Playlist, totalSize int64, errText string) State {
	s := State{
		Count:     list.Len(),
		Repeat:    list.Repeat(),
		Shuffled:  list.Shuffled(),
		TotalTime: tracks.TotalDuration(list.Tracks()),
		Err:       errText,
	}
	if totalSize > 0 {
		s.TotalSize = uint64(totalSize)
	}
	if cur := list.Current(); cur != nil {
		s.Track = cur
		s.Index = list.CurrentIndex() + 1
	}
	return s
}

// Render returns the status line for the given width.
func Render(s State, width int) string {
	if width < 20 {
		return ""
	}

	t := styles.T()
	if s.Err != "" {
		return t.S().Error.Render(render.TruncateAndPad("✗ "+s.Err, width))
	}

	brand := styles.BoldGradient("setlist", t.Primary, t.Secondary)
	left := brand + "  " + renderTrack(s, width/2)
	right := t.S().Muted.Render(renderSummary(s))

	return render.Row(left, right, width)
}

// renderTrack shows the selected track, or a stopped marker.
func renderTrack(s State, maxWidth int) string {
	st := styles.T().S()
	if s.Track == nil {
		return st.Subtle.Render("stopped")
	}

	title := icons.FormatAudio(render.Truncate(s.Track.Title, maxWidth))
	out := st.Title.Render(title)
	if s.Track.Artist != "" {
		artist := render.Truncate(s.Track.Artist, maxWidth/2)
		out += st.Muted.Render(" · " + artist)
	}
	out += st.Subtle.Render(fmt.Sprintf(" %d/%d", s.Index, s.Count))
	return out
}

// renderSummary lists the active modes and playlist totals.
func renderSummary(s State) string {
	var parts []string

	if s.Shuffled {
		parts = append(parts, "shuffle")
	}
	if s.Repeat != playlist.RepeatOff {
		parts = append(parts, "repeat "+s.Repeat.String())
	}

	if s.Count == 1 {
		parts = append(parts, "1 track")
	} else {
		parts = append(parts, fmt.Sprintf("%d tracks", s.Count))
	}
	if s.TotalTime > 0 {
		parts = append(parts, formatTotal(s.TotalTime))
	}
	if s.TotalSize > 0 {
		parts = append(parts, humanize.IBytes(s.TotalSize))
	}

	return strings.Join(parts, " · ")
}

// formatTotal formats a playlist duration, growing to H:MM:SS past an hour.
func formatTotal(d time.Duration) string {
	total := int(d.Seconds())
	h := total / 3600
	m := total % 3600 / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
