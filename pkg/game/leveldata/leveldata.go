// Package leveldata ships the built-in level maps as rune-legend text and
// parses them into tile grids. The text form is authoring convenience
// only; the loader validates the parsed grid like any externally supplied
// level.
package leveldata

import (
	"fmt"

	"spacewarp/pkg/engine/tiles"
	"spacewarp/pkg/game/level"
	"spacewarp/pkg/game/tileset"
)

// legend maps map-text runes to tile codes. Door letters pair with key
// digits by column: key 1 unlocks door A, 2 unlocks B, 3 unlocks C, and
// buttons x/y/z drive the same columns.
var legend = map[rune]tiles.Code{
	'.': tileset.Empty,
	'#': {U: 4, V: 0}, // wall
	'F': {U: 0, V: 2}, // fire
	'S': tileset.Spawn,

	'1': {U: 7, V: 4},
	'2': {U: 7, V: 5},
	'3': {U: 7, V: 6},

	'A': {U: 4, V: 4},
	'B': {U: 5, V: 4},
	'C': {U: 6, V: 4},
	'a': {U: 4, V: 5},
	'b': {U: 5, V: 5},
	'c': {U: 6, V: 5},

	'x': {U: 4, V: 6},
	'y': {U: 5, V: 6},
	'z': {U: 6, V: 6},

	'[': tileset.ShipTopLeft,
	']': {U: 1, V: 4},
	'{': {U: 0, V: 5},
	'}': {U: 1, V: 5},
}

// Parse converts map text into a full-width tile grid. Rows must be 16
// and row widths equal and a multiple of the room size; the end marker
// for the room-count probe is placed on the first boundary past the map.
func Parse(rows []string) (*tiles.TileMap, error) {
	if len(rows) != level.RoomSize {
		return nil, fmt.Errorf("level text has %d rows, want %d", len(rows), level.RoomSize)
	}
	width := len(rows[0])
	if width == 0 || width%level.RoomSize != 0 {
		return nil, fmt.Errorf("level text width %d is not a multiple of %d", width, level.RoomSize)
	}

	// The grid always spans the maximum level width so that the
	// room-count probe reads real cells past the map text.
	m := tiles.NewTileMap(level.MaxRooms*level.RoomSize, level.RoomSize, tileset.Empty)

	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("level text row %d has width %d, want %d", y, len(row), width)
		}
		for x, r := range row {
			code, ok := legend[r]
			if !ok {
				return nil, fmt.Errorf("unknown map rune %q at (%d, %d)", r, x, y)
			}
			m.Set(x, y, code)
		}
	}

	if rooms := width / level.RoomSize; rooms < level.MaxRooms {
		m.Set(rooms*level.RoomSize, 0, tileset.End)
	}

	return m, nil
}

// ForDifficulty returns the map text for a difficulty (1..4). Unknown
// difficulties fall back to the easiest map.
func ForDifficulty(d int) []string {
	switch d {
	case 2:
		return Normal
	case 3:
		return Hard
	case 4:
		return Lunatic
	default:
		return Easy
	}
}
