// Package player implements the player's physics, corner-based tile
// interactions and life-cycle. The player owns nothing but its own state;
// the grid and input capabilities are injected at construction.
package player

import (
	"spacewarp/pkg/engine/input"
	"spacewarp/pkg/engine/tiles"
	"spacewarp/pkg/game/entities"
	"spacewarp/pkg/game/tileset"
)

// Movement constants. Horizontal motion is 1 pixel per tick, vertical 2;
// a jump rises for 12 ticks. Gameplay tuning, keep exact.
const (
	JumpTicks = 12
	FallSpeed = 2
	WalkSpeed = 1

	// Size is the player's square bounding box in pixels, one tile.
	Size = 8
)

// Direction is the way the player faces.
type Direction int

const (
	Right Direction = iota
	Left
)

// Player holds position in pixel units (8 pixels = 1 tile) and the
// jump/death/win life-cycle flags.
type Player struct {
	X int
	Y int

	// Jumping counts the remaining upward-jump ticks; 0 means grounded
	// or falling.
	Jumping int

	Dead bool
	Win  bool

	// Moving toggles each horizontal-move tick and drives the walk
	// animation.
	Moving bool

	Facing Direction

	grid tiles.Grid
	in   input.Source
}

// New creates a player at the given pixel spawn position.
func New(grid tiles.Grid, in input.Source, spawnX, spawnY int) *Player {
	return &Player{
		X:    spawnX,
		Y:    spawnY,
		grid: grid,
		in:   in,
	}
}

// tileIndex converts a pixel coordinate to a tile index with floor
// semantics. A jump through an open ceiling can push y negative, and
// truncating division would fold row -1 onto row 0.
func tileIndex(n int) int {
	if n < 0 {
		return (n - (Size - 1)) / Size
	}
	return n / Size
}

func (p *Player) collider(tx, ty int) bool {
	return tileset.Colliders.Has(p.grid.At(tx, ty))
}

// Corners samples the tile codes at the four pixel corners of the
// player's bounding box: top-left, bottom-left, top-right, bottom-right.
// The same sample drives both collision and tile interactions.
func (p *Player) Corners() [4]tiles.Code {
	return [4]tiles.Code{
		p.grid.At(tileIndex(p.X), tileIndex(p.Y)),
		p.grid.At(tileIndex(p.X), tileIndex(p.Y+Size-1)),
		p.grid.At(tileIndex(p.X+Size-1), tileIndex(p.Y)),
		p.grid.At(tileIndex(p.X+Size-1), tileIndex(p.Y+Size-1)),
	}
}

// UpdatePosition applies one tick of physics. Order matters: gravity or
// jump start, ceiling cancel, jump motion, then horizontal movement.
// Collision is a one-step lookahead on the would-be position, not a swept
// test.
func (p *Player) UpdatePosition() {
	footRow := tileIndex(p.Y) + 1
	if !p.collider(tileIndex(p.X), footRow) &&
		!p.collider(tileIndex(p.X+Size-1), footRow) {
		if p.Jumping == 0 {
			p.Y += FallSpeed
		}
	} else if p.in.Held(input.ActionJump) {
		// Only reachable while grounded: gravity did not move the player.
		p.Jumping = JumpTicks
	}

	// Head bump cancels upward motion regardless of other state.
	headRow := tileIndex(p.Y - 1)
	if p.collider(tileIndex(p.X), headRow) ||
		p.collider(tileIndex(p.X+Size-1), headRow) {
		p.Jumping = 0
	}

	if p.Jumping > 0 {
		p.Jumping--
		p.Y -= FallSpeed
	}

	topRow := tileIndex(p.Y)
	bottomRow := tileIndex(p.Y + Size - 1)
	if p.in.Held(input.ActionRight) &&
		!p.collider(tileIndex(p.X)+1, topRow) &&
		!p.collider(tileIndex(p.X)+1, bottomRow) {
		p.X += WalkSpeed
		p.Facing = Right
		p.Moving = !p.Moving
	} else if p.X > 0 && p.in.Held(input.ActionLeft) &&
		!p.collider(tileIndex(p.X-1), topRow) &&
		!p.collider(tileIndex(p.X-1), bottomRow) {
		p.X -= WalkSpeed
		p.Facing = Left
		p.Moving = !p.Moving
	} else {
		p.Moving = false
	}
}

// Update runs one full player tick: physics, then death, then corner
// interactions against the current room's entities. Death (reset held or
// a fire corner) teleports to the spawn immediately; the caller rolls the
// entity state back afterwards, so interactions still run on the corners
// sampled before the teleport.
func (p *Player) Update(spawnX, spawnY int, room *entities.Room) {
	p.UpdatePosition()

	corners := p.Corners()

	if p.in.Held(input.ActionReset) || p.touchesFire(corners) {
		p.Dead = true
		p.X, p.Y = spawnX, spawnY
		p.Jumping = 0
		p.Facing = Right
	}

	doors := room.DoorList()
	for _, corner := range corners {
		switch {
		case tileset.Keys.Has(corner):
			room.Keys[corner].Collect(doors)
		case tileset.Buttons.Has(corner):
			room.Buttons[corner].Press(p.X, p.Y, doors)
		case tileset.Ship.Has(corner):
			p.Win = true
		}
	}
}

func (p *Player) touchesFire(corners [4]tiles.Code) bool {
	for _, c := range corners {
		if tileset.Fires.Has(c) {
			return true
		}
	}
	return false
}

// Pose returns the sprite-sheet pixel offset of the player's current
// visual pose: the jump pose while airborne, otherwise one of two walk
// poses chosen by facing and the walk toggle, mirrored per row for the
// left-facing set.
func (p *Player) Pose() (sx, sy int) {
	facingLeft := p.Facing == Left
	if p.Jumping != 0 {
		sx = 24
	} else {
		sx = Size
		if facingLeft != p.Moving {
			sx += Size
		}
	}
	if facingLeft {
		sy = Size
	}
	return sx, sy
}
