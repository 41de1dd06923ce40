// Package icons maps UI glyphs to the configured icon style.
package icons

// Style selects which glyph set the UI renders.
type Style string

const (
	StyleNerd    Style = "nerd"    // nerd-font glyphs
	StyleUnicode Style = "unicode" // emoji and symbols
	StyleNone    Style = "none"    // plain ASCII
)

// set holds every glyph the UI asks for, in one style.
type set struct {
	audio     string
	playlist  string
	shuffle   string
	repeatAll string
	repeatOne string
	current   string
	selected  string
}

var sets = map[Style]set{
	StyleNerd: {
		audio:     " ", // nf-fa-music
		playlist:  "󰲸 ",      // nf-md-playlist_music
		shuffle:   "󰒟",       // nf-md-shuffle
		repeatAll: "󰑖",       // nf-md-repeat
		repeatOne: "󰑘",       // nf-md-repeat_once
		current:   "",  // nf-fa-play
		selected:  "",  // nf-fa-circle
	},
	StyleUnicode: {
		audio:     "🎵 ",
		playlist:  "📋 ",
		shuffle:   "🔀",
		repeatAll: "🔁",
		repeatOne: "🔂",
		current:   "▶",
		selected:  "●",
	},
	StyleNone: {
		shuffle:   "[S]",
		repeatAll: "[R]",
		repeatOne: "[1]",
		current:   ">",
		selected:  "*",
	},
}

// active is the glyph set in use; ASCII until Init says otherwise.
var active = sets[StyleNone]

// Init selects the glyph set for the configured style name.
// Unknown names fall back to plain ASCII.
func Init(style string) {
	s, ok := sets[Style(style)]
	if !ok {
		s = sets[StyleNone]
	}
	active = s
}

// FormatAudio prefixes a track name with the audio glyph.
// The ASCII set has no audio glyph, so the name passes through.
func FormatAudio(name string) string {
	return active.audio + name
}

// FormatPlaylist prefixes a playlist name with the playlist glyph.
func FormatPlaylist(name string) string {
	return active.playlist + name
}

// Shuffle returns the shuffle mode indicator.
func Shuffle() string {
	return active.shuffle
}

// RepeatAll returns the repeat-all mode indicator.
func RepeatAll() string {
	return active.repeatAll
}

// RepeatOne returns the repeat-one mode indicator.
func RepeatOne() string {
	return active.repeatOne
}

// Current returns the row marker for the selected track.
func Current() string {
	return active.current
}

// Selected returns the row mark for tracks tagged for a bulk action.
func Selected() string {
	return active.selected
}
