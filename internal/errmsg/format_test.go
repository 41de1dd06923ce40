//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpTrackAdd,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpTrackRemove,
			err:      errors.New("position is out of range"),
			expected: "Failed to remove track: position is out of range",
		},
		{
			name:     "load operation",
			op:       OpTracksLoad,
			err:      errors.New("permission denied"),
			expected: "Failed to load tracks: permission denied",
		},
		{
			name:     "navigation operation",
			op:       OpNext,
			err:      errors.New("playlist is empty"),
			expected: "Failed to skip to next track: playlist is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpTracksLoad,
			context:  "song.mp3",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpTracksLoad,
			context:  "/music/missing",
			err:      errors.New("no such file"),
			expected: "Failed to load tracks '/music/missing': no such file",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpPlaylistParse,
			context:  "",
			err:      errors.New("bad syntax"),
			expected: "Failed to parse playlist file: bad syntax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}
