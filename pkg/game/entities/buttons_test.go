package entities

import (
	"testing"

	"spacewarp/pkg/engine/tiles"
)

func TestButtonsTickDecaysToZero(t *testing.T) {
	b := NewButtons(buttonCode)
	b.State = 2

	b.Tick()
	if b.State != 1 {
		t.Errorf("State = %d after one tick, want 1", b.State)
	}
	b.Tick()
	b.Tick()
	if b.State != 0 {
		t.Errorf("State = %d after decaying past zero, want 0 (clamped)", b.State)
	}
}

func TestButtonsFullPress(t *testing.T) {
	// Button tile at (4, 6): pixel position (32, 48). A player exactly
	// centered on the button's row gets the full hold.
	b := NewButtons(buttonCode)
	b.Add(tiles.Position{X: 4, Y: 6})

	b.Press(32, 48, nil)
	if b.State != FullPressHold {
		t.Errorf("State = %d after centered press, want %d", b.State, FullPressHold)
	}
}

func TestButtonsPressZones(t *testing.T) {
	cases := []struct {
		name string
		x, y int
		want int
	}{
		{"full zone right edge", 36, 48, FullPressHold},
		{"full zone left edge", 28, 48, FullPressHold},
		{"near zone one above", 32, 47, 2},
		{"near zone wide", 37, 48, 2},
		{"edge zone", 38, 48, 1},
		{"edge zone high", 38, 47, 1},
		{"outside", 40, 48, 0},
		{"wrong row", 32, 40, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := NewButtons(buttonCode)
			b.Add(tiles.Position{X: 4, Y: 6})
			b.Press(c.x, c.y, nil)
			if b.State != c.want {
				t.Errorf("Press(%d, %d): State = %d, want %d", c.x, c.y, b.State, c.want)
			}
		})
	}
}

func TestButtonsWeakZoneNeverDowngradesStrongHold(t *testing.T) {
	b := NewButtons(buttonCode)
	b.Add(tiles.Position{X: 4, Y: 6})
	b.State = FullPressHold

	// Player in the near zone only: state <= 2 guard must block the
	// downgrade.
	b.Press(37, 48, nil)
	if b.State != FullPressHold {
		t.Errorf("State = %d after weak-zone press, want %d (no downgrade)", b.State, FullPressHold)
	}
}

func TestButtonsEdgeZoneGuardAtPartialHold(t *testing.T) {
	// All buttons of one type share a single State field, so the
	// state <= 1 guard is what keeps an edge-zone match from eroding a
	// near-zone hold within the same tick.
	b := NewButtons(buttonCode)
	b.Add(tiles.Position{X: 4, Y: 6})
	b.State = 2

	b.Press(38, 48, nil) // edge zone only
	if b.State != 2 {
		t.Errorf("State = %d after edge-zone press at partial hold, want 2", b.State)
	}
}

func TestButtonsPressReportsHoldToDoors(t *testing.T) {
	b := NewButtons(buttonCode)
	b.Add(tiles.Position{X: 4, Y: 6})
	driven := NewDoors(doorCode)
	other := NewDoors(tiles.Code{U: 6, V: 4})

	b.Press(32, 48, []*Doors{driven, other})

	if driven.Timer != FullPressHold {
		t.Errorf("driven door Timer = %d, want %d", driven.Timer, FullPressHold)
	}
	if other.Timer != 0 {
		t.Errorf("unrelated door Timer = %d, want 0", other.Timer)
	}
}

func TestButtonsTier(t *testing.T) {
	b := NewButtons(buttonCode)
	for state, want := range map[int]int{0: 0, 1: 1, 2: 2, 3: 3, FullPressHold: 3} {
		b.State = state
		if got := b.Tier(); got != want {
			t.Errorf("Tier() with State %d = %d, want %d", state, got, want)
		}
	}
}
