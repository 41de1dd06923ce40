// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit  Action = "quit"
	ActionHelp  Action = "help"
	ActionAdd   Action = "add"
	ActionClear Action = "clear"

	// Playback cursor actions
	ActionNextTrack     Action = "next_track"
	ActionPrevTrack     Action = "prev_track"
	ActionCycleRepeat   Action = "cycle_repeat"
	ActionToggleShuffle Action = "toggle_shuffle"

	// Panel actions, handled by the track panel itself and listed here
	// for the help popup
	ActionMoveUp       Action = "move_up"
	ActionMoveDown     Action = "move_down"
	ActionJumpStart    Action = "jump_start"
	ActionJumpEnd      Action = "jump_end"
	ActionHalfPageUp   Action = "half_page_up"
	ActionHalfPageDown Action = "half_page_down"
	ActionSelect       Action = "select"
	ActionToggleSelect Action = "toggle_select"
	ActionClearSelect  Action = "clear_select"
	ActionDelete       Action = "delete"
	ActionMoveItemUp   Action = "move_item_up"
	ActionMoveItemDown Action = "move_item_down"
)
