// Package level loads and validates a tile grid into per-room entity
// registries. The pass runs once, synchronously, before play starts; any
// validation failure aborts the level.
package level

import (
	"fmt"

	"spacewarp/pkg/engine/tiles"
	"spacewarp/pkg/game/entities"
	"spacewarp/pkg/game/tileset"
)

// Level geometry. Rooms are fixed 16x16 slices laid out left to right;
// one tile is 8 pixels on a side.
const (
	RoomSize      = 16
	MaxRooms      = 16
	PixelsPerTile = 8
)

// TileError reports a misplaced tile found during validation.
type TileError struct {
	Pos    tiles.Position
	Reason string
}

func (e *TileError) Error() string {
	return fmt.Sprintf("malformed level at %s: %s", e.Pos, e.Reason)
}

// Level is the validated output of a load: the registry of per-room
// entities, the spawn point in pixel units, and the room count.
type Level struct {
	Registry  *entities.Registry
	SpawnX    int
	SpawnY    int
	RoomCount int
}

// RoomCount probes the first cell of each room boundary for the end
// marker; the first boundary bearing it is the room count. Levels without
// a marker span the full 16 rooms.
func RoomCount(g tiles.Grid) int {
	for i := 1; i < MaxRooms; i++ {
		if g.At(RoomSize*i, 0) == tileset.End {
			return i
		}
	}
	return MaxRooms
}

// Load scans every cell of the grid exactly once in row-major order
// (x fastest) and builds the entity registry. It validates door pairing
// and end-ship completeness and returns a *TileError on the first
// malformed tile. The spawn cell is blanked in the grid; all other cells
// are written back unchanged.
func Load(g tiles.Grid) (*Level, error) {
	lvl := &Level{RoomCount: RoomCount(g)}
	lvl.Registry = entities.NewRegistry(lvl.RoomCount)

	shipClaimed := make(map[tiles.Position]bool)
	shipInRoom := false

	for y := 0; y < RoomSize; y++ {
		for x := 0; x < lvl.RoomCount*RoomSize; x++ {
			pos := tiles.Position{X: x, Y: y}
			tile := g.At(x, y)
			room := lvl.Registry.Room(x / RoomSize)

			switch {
			case tile == tileset.Spawn:
				lvl.SpawnX = x * PixelsPerTile
				lvl.SpawnY = y * PixelsPerTile
				tile = tileset.Empty

			case tileset.Keys.Has(tile):
				room.Keys[tile].Add(pos)

			case tileset.Buttons.Has(tile):
				room.Buttons[tile].Add(pos)

			case tileset.TopDoors.Has(tile):
				if y == RoomSize-1 {
					return nil, &TileError{pos, "top door on the last row has no room for its bottom half"}
				}
				if !tileset.BottomDoors.Has(g.At(x, y+1)) {
					return nil, &TileError{tiles.Position{X: x, Y: y + 1}, "missing bottom door"}
				}
				room.Doors[tile].Add(pos)

			case tileset.BottomDoors.Has(tile):
				// Registration happened at the top half; only the pairing
				// is checked here.
				if y == 0 {
					return nil, &TileError{pos, "bottom door on the first row has no room for its top half"}
				}
				if !tileset.TopDoors.Has(g.At(x, y-1)) {
					return nil, &TileError{tiles.Position{X: x, Y: y - 1}, "missing top door"}
				}

			case tile == tileset.ShipTopLeft:
				if shipInRoom {
					return nil, &TileError{pos, "second end ship in the same room"}
				}
				shipInRoom = true
				for dy := 0; dy < 2; dy++ {
					for dx := 0; dx < 2; dx++ {
						if !tileset.Ship.Has(g.At(x+dx, y+dy)) {
							return nil, &TileError{pos, "incomplete end ship"}
						}
						shipClaimed[tiles.Position{X: x + dx, Y: y + dy}] = true
					}
				}

			case tileset.Ship.Has(tile) && !shipClaimed[pos]:
				return nil, &TileError{pos, "end ship tile without a top-left corner"}
			}

			// The claim flag resets at the start of each room's scan.
			if x%RoomSize == 0 && y%RoomSize == 0 {
				shipInRoom = false
			}

			g.Set(x, y, tile)
		}
	}

	return lvl, nil
}
