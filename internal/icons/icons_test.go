//nolint:goconst // test cases intentionally repeat strings for readability
package icons

import "testing"

func TestInit(t *testing.T) {
	tests := []struct {
		name        string
		style       string
		wantShuffle string
	}{
		{"nerd style", "nerd", "󰒟"},
		{"unicode style", "unicode", "🔀"},
		{"none style", "none", "[S]"},
		{"empty string defaults to none", "", "[S]"},
		{"unknown style defaults to none", "invalid", "[S]"},
		{"case sensitive - NERD defaults to none", "NERD", "[S]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)
			if got := Shuffle(); got != tt.wantShuffle {
				t.Errorf("Shuffle() = %q, want %q", got, tt.wantShuffle)
			}
		})
	}

	// Reset to default
	Init("none")
}

func TestFormatAudio(t *testing.T) {
	tests := []struct {
		style    string
		expected string
	}{
		{"none", "song.mp3"},
		{"nerd", " song.mp3"},
		{"unicode", "🎵 song.mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			if got := FormatAudio("song.mp3"); got != tt.expected {
				t.Errorf("FormatAudio() = %q, want %q", got, tt.expected)
			}
		})
	}

	Init("none")
}

func TestModeIcons(t *testing.T) {
	Init("none")

	if got := Shuffle(); got != "[S]" {
		t.Errorf("Shuffle() = %q, want [S]", got)
	}
	if got := RepeatAll(); got != "[R]" {
		t.Errorf("RepeatAll() = %q, want [R]", got)
	}
	if got := RepeatOne(); got != "[1]" {
		t.Errorf("RepeatOne() = %q, want [1]", got)
	}

	Init("unicode")

	if got := RepeatAll(); got != "🔁" {
		t.Errorf("RepeatAll() = %q, want 🔁", got)
	}

	Init("none")
}

func TestRowMarkers(t *testing.T) {
	Init("none")

	if got := Current(); got != ">" {
		t.Errorf("Current() = %q, want >", got)
	}
	if got := Selected(); got != "*" {
		t.Errorf("Selected() = %q, want *", got)
	}

	Init("unicode")

	if got := Current(); got != "▶" {
		t.Errorf("Current() = %q, want ▶", got)
	}
	if got := Selected(); got != "●" {
		t.Errorf("Selected() = %q, want ●", got)
	}

	Init("none")
}
