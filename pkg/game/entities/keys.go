// Package entities contains the per-room key, button and door state
// machines. Each value handles every placed tile of one sprite type; the
// registry groups them by room.
package entities

import (
	"github.com/zyedidia/generic/mapset"

	"spacewarp/pkg/engine/tiles"
	"spacewarp/pkg/game/tileset"
)

// Keys handles all keys of one type within a room.
type Keys struct {
	Sprite    tiles.Code
	Locations mapset.Set[tiles.Position]

	// State is true while the key is still on the map. Once collected it
	// never reverts.
	State bool
}

// NewKeys creates an uncollected key group for the given sprite code.
func NewKeys(sprite tiles.Code) *Keys {
	return &Keys{
		Sprite:    sprite,
		Locations: mapset.New[tiles.Position](),
		State:     true,
	}
}

// Add registers a grid position bearing this key's code.
func (k *Keys) Add(p tiles.Position) {
	k.Locations.Put(p)
}

// Collect marks the key as collected and offers it to every door in the
// room; doors paired with this key unlock permanently.
func (k *Keys) Collect(doors []*Doors) {
	k.State = false

	for _, door := range doors {
		door.OpenDoor(k.Sprite)
	}
}

// SyncGrid writes the key's presence into the tilemap: its sprite code at
// every location while uncollected, empty cells once collected.
func (k *Keys) SyncGrid(g tiles.Grid) {
	code := tileset.Empty
	if k.State {
		code = k.Sprite
	}
	k.Locations.Each(func(p tiles.Position) {
		g.Set(p.X, p.Y, code)
	})
}

// Clone returns an independent deep copy.
func (k *Keys) Clone() *Keys {
	c := NewKeys(k.Sprite)
	c.State = k.State
	k.Locations.Each(func(p tiles.Position) {
		c.Locations.Put(p)
	})
	return c
}
