package input

import "testing"

func TestMapCode(t *testing.T) {
	cases := []struct {
		code string
		want Action
	}{
		{"arrow_up", ActionJump},
		{"space", ActionJump},
		{"w", ActionJump},
		{"a", ActionLeft},
		{"d", ActionRight},
		{"s", ActionDown},
		{"r", ActionReset},
		{"enter", ActionConfirm},
		{"escape", ActionQuit},
		{"f13", ActionNone},
	}

	for _, c := range cases {
		if got := MapCode(c.code); got != c.want {
			t.Errorf("MapCode(%q) = %v, want %v", c.code, got, c.want)
		}
	}
}

func TestRecorderPressIsEdgeTriggered(t *testing.T) {
	r := NewRecorder()
	r.Press(ActionJump)

	if !r.Pressed(ActionJump) || !r.Held(ActionJump) {
		t.Fatal("Press() must set both pressed and held")
	}

	// A new tick clears the edge but keeps the level.
	r.Begin()
	if r.Pressed(ActionJump) {
		t.Error("Pressed() = true after Begin, want false")
	}
	if !r.Held(ActionJump) {
		t.Error("Held() = false after Begin, want true")
	}

	r.SetHeld(ActionJump, false)
	if r.Held(ActionJump) {
		t.Error("Held() = true after release, want false")
	}
}
