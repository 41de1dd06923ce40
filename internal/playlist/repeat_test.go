package playlist

import "testing"

func TestRepeatMode_String(t *testing.T) {
	tests := []struct {
		mode RepeatMode
		want string
	}{
		{RepeatOff, "off"},
		{RepeatAll, "all"},
		{RepeatOne, "one"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.mode.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRepeatMode_Cycle(t *testing.T) {
	mode := RepeatOff

	mode = mode.Cycle()
	if mode != RepeatAll {
		t.Errorf("Cycle() = %v, want RepeatAll", mode)
	}

	mode = mode.Cycle()
	if mode != RepeatOne {
		t.Errorf("Cycle() = %v, want RepeatOne", mode)
	}

	mode = mode.Cycle()
	if mode != RepeatOff {
		t.Errorf("Cycle() = %v, want RepeatOff", mode)
	}
}

func TestParseRepeatMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RepeatMode
		wantErr bool
	}{
		{"off", "off", RepeatOff, false},
		{"all", "all", RepeatAll, false},
		{"one", "one", RepeatOne, false},
		{"empty means off", "", RepeatOff, false},
		{"mixed case", "All", RepeatAll, false},
		{"whitespace", " one ", RepeatOne, false},
		{"invalid", "bogus", RepeatOff, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRepeatMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRepeatMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseRepeatMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
