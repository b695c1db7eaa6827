// Package tileset fixes the semantic meaning of tile codes for SpaceWarp.
// The assignments are a build-time contract between the level data and the
// loader; membership is tested by code equality.
package tileset

import (
	"github.com/zyedidia/generic/mapset"

	"spacewarp/pkg/engine/tiles"
)

// CodeSet is a set of tile codes.
type CodeSet = mapset.Set[tiles.Code]

// Singleton codes.
var (
	Empty       = tiles.Code{U: 0, V: 0}
	End         = tiles.Code{U: 0, V: 1}
	Spawn       = tiles.Code{U: 3, V: 4}
	ShipTopLeft = tiles.Code{U: 0, V: 4}
)

// Code sets. Keys, Buttons and TopDoors each hold three codes; a key
// (7, c) unlocks the door column c, and a button column matches the door
// column it drives.
var (
	Keys        = codeRect(7, 7, 4, 6)
	Buttons     = codeRect(4, 6, 6, 6)
	TopDoors    = codeRect(4, 6, 4, 4)
	BottomDoors = codeRect(4, 6, 5, 5)
	Doors       = union(TopDoors, BottomDoors)
	Fires       = codeRect(0, 1, 2, 3)
	Walls       = union(codeRect(4, 7, 0, 1), codeRect(2, 5, 2, 3))
	Colliders   = union(Walls, Doors)
	Ship        = codeRect(0, 1, 4, 5)
)

// codeRect builds a set holding every code in an inclusive (u, v) rectangle.
func codeRect(u0, u1, v0, v1 int) CodeSet {
	s := mapset.New[tiles.Code]()
	for u := u0; u <= u1; u++ {
		for v := v0; v <= v1; v++ {
			s.Put(tiles.Code{U: u, V: v})
		}
	}
	return s
}

func union(sets ...CodeSet) CodeSet {
	out := mapset.New[tiles.Code]()
	for _, s := range sets {
		s.Each(func(c tiles.Code) {
			out.Put(c)
		})
	}
	return out
}

// BottomDoor returns the bottom-half code paired with a top-door code.
func BottomDoor(top tiles.Code) tiles.Code {
	return tiles.Code{U: top.U, V: top.V + 1}
}

// UnlocksDoor reports whether collecting the given key code opens the
// door type with the given top-door code. Each door column is paired with
// exactly one key: the key whose row equals the door's column.
func UnlocksDoor(key, door tiles.Code) bool {
	return key == (tiles.Code{U: 7, V: door.U})
}

// DrivesDoor reports whether the given button code drives the door type
// with the given top-door code (matching columns).
func DrivesDoor(button, door tiles.Code) bool {
	return button.U == door.U
}
