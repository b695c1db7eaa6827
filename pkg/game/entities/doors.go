package entities

import (
	"github.com/zyedidia/generic/mapset"

	"spacewarp/pkg/engine/tiles"
	"spacewarp/pkg/game/tileset"
)

// ClosedAnimation is the animation value of a fully closed door; 0 is
// fully open. The animation is cosmetic and never gates collision.
const ClosedAnimation = 8

// Doors handles all doors of one type within a room. Locations hold the
// top-door cells; each implies a paired bottom-door cell one row below.
type Doors struct {
	Sprite    tiles.Code
	Locations mapset.Set[tiles.Position]

	// State is the closed latch: true means the door should be closed
	// absent a button override. Collecting the paired key clears it for
	// good.
	State bool

	// Timer forces the door open for that many remaining ticks
	// regardless of State.
	Timer int

	// AnimationState eases between 0 (open) and ClosedAnimation by one
	// per tick.
	AnimationState int
}

// NewDoors creates a closed door group for the given top-door sprite code.
func NewDoors(sprite tiles.Code) *Doors {
	return &Doors{
		Sprite:         sprite,
		Locations:      mapset.New[tiles.Position](),
		State:          true,
		AnimationState: ClosedAnimation,
	}
}

// Add registers a top-door grid position.
func (d *Doors) Add(p tiles.Position) {
	d.Locations.Put(p)
}

// Tick decays the button-hold timer and eases the animation toward the
// current target.
func (d *Doors) Tick() {
	if d.Timer > 0 {
		d.Timer--
	}

	if d.State && d.Timer == 0 {
		if d.AnimationState < ClosedAnimation {
			d.AnimationState++
		}
	} else {
		if d.AnimationState > 0 {
			d.AnimationState--
		}
	}
}

// OpenDoor permanently unlocks the door when the collected key is the one
// paired with this door column.
func (d *Doors) OpenDoor(key tiles.Code) {
	if tileset.UnlocksDoor(key, d.Sprite) {
		d.State = false
	}
}

// ButtonOpen forces the door open for at least frames ticks when the
// button drives this door column. A shorter or equal hold is a no-op;
// only the longer hold wins.
func (d *Doors) ButtonOpen(button tiles.Code, frames int) {
	if tileset.DrivesDoor(button, d.Sprite) && frames > d.Timer {
		d.Timer = frames
	}
}

// Open reports whether the door is currently passable.
func (d *Doors) Open() bool {
	return !d.State || d.Timer > 0
}

// SyncGrid writes the door's passability into the tilemap: both halves
// become empty cells while open and door codes while closed.
func (d *Doors) SyncGrid(g tiles.Grid) {
	d.Locations.Each(func(p tiles.Position) {
		if d.Open() {
			g.Set(p.X, p.Y, tileset.Empty)
			g.Set(p.X, p.Y+1, tileset.Empty)
		} else {
			g.Set(p.X, p.Y, d.Sprite)
			g.Set(p.X, p.Y+1, tileset.BottomDoor(d.Sprite))
		}
	})
}

// Clone returns an independent deep copy.
func (d *Doors) Clone() *Doors {
	c := NewDoors(d.Sprite)
	c.State = d.State
	c.Timer = d.Timer
	c.AnimationState = d.AnimationState
	d.Locations.Each(func(p tiles.Position) {
		c.Locations.Put(p)
	})
	return c
}
