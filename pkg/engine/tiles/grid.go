package tiles

// Void is the code reported for any read outside the grid bounds.
// It must never be assigned a meaning by a tile set.
var Void = Code{-1, -1}

// Grid is the capability handed to anything that reads or writes the
// tilemap. The simulation core never owns pixels or sprites, only codes.
type Grid interface {
	// At returns the code at (x, y). Out-of-range reads return Void.
	At(x, y int) Code

	// Set replaces the code at (x, y). Out-of-range writes are dropped.
	Set(x, y int, c Code)
}

// TileMap is a dense, bounded Grid backed by a 2D slice.
type TileMap struct {
	cells  [][]Code
	width  int
	height int
}

// NewTileMap creates an empty tile map filled with the given code.
func NewTileMap(width, height int, fill Code) *TileMap {
	cells := make([][]Code, height)
	for y := range cells {
		cells[y] = make([]Code, width)
		for x := range cells[y] {
			cells[y][x] = fill
		}
	}
	return &TileMap{cells: cells, width: width, height: height}
}

// Width returns the number of columns.
func (m *TileMap) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *TileMap) Height() int {
	return m.height
}

// InBounds checks whether (x, y) addresses a cell of this map.
func (m *TileMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// At returns the code at (x, y), or Void when out of range.
// The player's look-ahead probes read one row above the top and one cell
// past room boundaries, so reads must be total.
func (m *TileMap) At(x, y int) Code {
	if !m.InBounds(x, y) {
		return Void
	}
	return m.cells[y][x]
}

// Set replaces the code at (x, y). Out-of-range writes are dropped.
func (m *TileMap) Set(x, y int, c Code) {
	if !m.InBounds(x, y) {
		return
	}
	m.cells[y][x] = c
}

// Clone returns an independent copy of the map.
func (m *TileMap) Clone() *TileMap {
	c := NewTileMap(m.width, m.height, Code{})
	for y := range m.cells {
		copy(c.cells[y], m.cells[y])
	}
	return c
}
