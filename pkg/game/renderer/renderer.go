// Package renderer defines the interface between the simulation core and
// the display backends. The core never draws; backends borrow the game
// state read-only once per tick.
package renderer

import (
	"spacewarp/pkg/engine/tiles"
	"spacewarp/pkg/game/state"
	"spacewarp/pkg/game/tileset"
)

// Renderer defines the interface for game rendering backends.
// Implementations drive the fixed-tick loop themselves: one Tick and one
// draw per frame until the player quits.
type Renderer interface {
	// Init initializes the renderer (window, terminal modes, fonts).
	Init() error

	// Run runs the game loop until exit.
	Run(g *state.Game) error
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Class is the visual classification of a tile code, shared by the
// backends so both color the map the same way.
type Class int

const (
	ClassEmpty Class = iota
	ClassWall
	ClassFire
	ClassKey
	ClassButton
	ClassDoor
	ClassShip
)

// Classify maps a tile code to its visual class and, for keys, buttons
// and doors, the column variant 0..2 used for tinting.
func Classify(c tiles.Code) (Class, int) {
	switch {
	case tileset.Keys.Has(c):
		return ClassKey, c.V - 4
	case tileset.Buttons.Has(c):
		return ClassButton, c.U - 4
	case tileset.Doors.Has(c):
		return ClassDoor, c.U - 4
	case tileset.Fires.Has(c):
		return ClassFire, 0
	case tileset.Ship.Has(c):
		return ClassShip, 0
	case tileset.Walls.Has(c):
		return ClassWall, 0
	default:
		return ClassEmpty, 0
	}
}
