//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name      string
		context   string
		minLength int
	}{
		{"global context", "global", 4},
		{"playback context", "playback", 4},
		{"panel context", "panel", 8},
		{"unknown context returns empty", "unknown", 0},
		{"empty context returns empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if len(result) < tt.minLength {
				t.Errorf("ByContext(%q) returned %d bindings, expected at least %d", tt.context, len(result), tt.minLength)
			}
			if tt.minLength == 0 && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d bindings, expected none", tt.context, len(result))
			}

			for _, binding := range result {
				if binding.Context != tt.context {
					t.Errorf("binding context = %q, want %q", binding.Context, tt.context)
				}
			}
		})
	}
}

func TestByContextGlobalBindings(t *testing.T) {
	globalBindings := ByContext("global")

	expectedActions := []Action{
		ActionQuit,
		ActionAdd,
		ActionClear,
		ActionHelp,
	}

	for _, action := range expectedActions {
		found := false
		for _, b := range globalBindings {
			if b.Action == action {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected action %q in global bindings", action)
		}
	}
}

func TestByContextPlaybackBindings(t *testing.T) {
	playbackBindings := ByContext("playback")

	expectedActions := []Action{
		ActionNextTrack,
		ActionPrevTrack,
		ActionCycleRepeat,
		ActionToggleShuffle,
	}

	for _, action := range expectedActions {
		found := false
		for _, b := range playbackBindings {
			if b.Action == action {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected action %q in playback bindings", action)
		}
	}
}

func TestBindingsHaveRequiredFields(t *testing.T) {
	for i, b := range Bindings {
		if b.Action == "" {
			t.Errorf("binding[%d] has empty Action", i)
		}
		if len(b.Keys) == 0 {
			t.Errorf("binding[%d] (%s) has no Keys", i, b.Action)
		}
		if b.Description == "" {
			t.Errorf("binding[%d] (%s) has empty Description", i, b.Action)
		}
		if b.Context == "" {
			t.Errorf("binding[%d] (%s) has empty Context", i, b.Action)
		}
	}
}

func TestBindingsHaveValidContexts(t *testing.T) {
	validContexts := map[string]bool{
		"global":   true,
		"playback": true,
		"panel":    true,
	}

	for i, b := range Bindings {
		if !validContexts[b.Context] {
			t.Errorf("binding[%d] (%s) has invalid context: %q", i, b.Action, b.Context)
		}
	}
}

func TestGlobalKeysDoNotShadowPanelKeys(t *testing.T) {
	panelKeys := make(map[string]bool)
	for _, b := range ByContext("panel") {
		for _, k := range b.Keys {
			panelKeys[k] = true
		}
	}

	for _, context := range []string{"global", "playback"} {
		for _, b := range ByContext(context) {
			for _, k := range b.Keys {
				if panelKeys[k] {
					t.Errorf("%s key %q is also a panel key", context, k)
				}
			}
		}
	}
}
