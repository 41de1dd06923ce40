// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Playlist operations
	OpTrackAdd    Op = "add track"
	OpTrackRemove Op = "remove track"
	OpTrackMove   Op = "move track"
	OpTrackJump   Op = "jump to track"
	OpNext        Op = "skip to next track"
	OpPrevious    Op = "skip to previous track"

	// Loading operations
	OpTracksLoad    Op = "load tracks"
	OpPlaylistParse Op = "parse playlist file"

	// Initialization
	OpConfigLoad Op = "load configuration"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
