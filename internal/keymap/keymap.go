package keymap

// Binding ties an action to its keys for dispatch and documentation.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "panel"
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionAdd, []string{"a"}, "Add tracks", "global"},
	{ActionClear, []string{"c"}, "Clear playlist", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	// Playback cursor
	{ActionNextTrack, []string{"n"}, "Next track", "playback"},
	{ActionPrevTrack, []string{"p"}, "Previous track", "playback"},
	{ActionCycleRepeat, []string{"R"}, "Cycle repeat mode", "playback"},
	{ActionToggleShuffle, []string{"S"}, "Toggle shuffle", "playback"},

	// Track panel
	{ActionMoveDown, []string{"j", "down"}, "Move down", "panel"},
	{ActionMoveUp, []string{"k", "up"}, "Move up", "panel"},
	{ActionJumpStart, []string{"g", "home"}, "First track", "panel"},
	{ActionJumpEnd, []string{"G", "end"}, "Last track", "panel"},
	{ActionHalfPageDown, []string{"ctrl+d"}, "Half page down", "panel"},
	{ActionHalfPageUp, []string{"ctrl+u"}, "Half page up", "panel"},
	{ActionSelect, []string{"enter"}, "Select track", "panel"},
	{ActionToggleSelect, []string{"x"}, "Toggle selection", "panel"},
	{ActionClearSelect, []string{"esc"}, "Clear selection", "panel"},
	{ActionDelete, []string{"d", "delete"}, "Remove track(s)", "panel"},
	{ActionMoveItemDown, []string{"J"}, "Move track down", "panel"},
	{ActionMoveItemUp, []string{"K"}, "Move track up", "panel"},
}

// ByContext returns the bindings for one context, in declaration order.
func ByContext(context string) []Binding {
	var result []Binding
	for _, b := range Bindings {
		if b.Context == context {
			result = append(result, b)
		}
	}
	return result
}
