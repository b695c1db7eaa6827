package entities

import (
	"github.com/zyedidia/generic/mapset"

	"spacewarp/pkg/engine/tiles"
)

// Button pressure constants. The three zones are graded: the closer the
// player's feet are to the button, the longer the hold. Gameplay tuning —
// keep in sync with the door timer semantics.
const (
	// FullPressHold is the hold applied while standing on a button.
	FullPressHold = 150

	// Pixel half-widths of the three sensitivity zones.
	fullPressReach = 4
	nearPressReach = 5
	edgePressReach = 6
)

// Buttons handles all buttons of one type within a room.
type Buttons struct {
	Sprite    tiles.Code
	Locations mapset.Set[tiles.Position]

	// State is the remaining hold in ticks: 0 is unpressed, 150 a full
	// press, 1..2 partial proximity presses. Decays by one per tick.
	State int
}

// NewButtons creates an unpressed button group for the given sprite code.
func NewButtons(sprite tiles.Code) *Buttons {
	return &Buttons{
		Sprite:    sprite,
		Locations: mapset.New[tiles.Position](),
	}
}

// Add registers a grid position bearing this button's code.
func (b *Buttons) Add(p tiles.Position) {
	b.Locations.Put(p)
}

// Tick decays the hold toward unpressed.
func (b *Buttons) Tick() {
	if b.State > 0 {
		b.State--
	}
}

// Press evaluates the player's feet position (in pixels) against every
// button location and raises the hold accordingly, then reports the
// resulting hold to every door in the room.
//
// The state <= N guards keep a weaker zone from downgrading a stronger
// signal within a tick. Locations share one State field, so with several
// buttons in the group a later weak match can still overwrite an earlier
// strong one when the guard passes.
func (b *Buttons) Press(x, y int, doors []*Doors) {
	b.Locations.Each(func(p tiles.Position) {
		bx, by := p.X*8, p.Y*8
		switch {
		case bx-fullPressReach <= x && x <= bx+fullPressReach && y == by:
			b.State = FullPressHold
		case bx-nearPressReach <= x && x <= bx+nearPressReach &&
			by-1 <= y && y <= by && b.State <= 2:
			b.State = 2
		case bx-edgePressReach <= x && x <= bx+edgePressReach &&
			by-2 < y && y <= by && b.State <= 1:
			b.State = 1
		}
	})

	for _, door := range doors {
		door.ButtonOpen(b.Sprite, b.State)
	}
}

// Tier maps the hold to the visual depression tier: 0 unpressed, 1
// slightly depressed, 2 more depressed, 3 fully pressed (button hidden).
func (b *Buttons) Tier() int {
	if b.State > 2 {
		return 3
	}
	return b.State
}

// Clone returns an independent deep copy.
func (b *Buttons) Clone() *Buttons {
	c := NewButtons(b.Sprite)
	c.State = b.State
	b.Locations.Each(func(p tiles.Position) {
		c.Locations.Put(p)
	})
	return c
}
