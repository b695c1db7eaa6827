// Package tiles provides generic 2D tile-grid primitives.
// These are engine-level constructs usable by any tile-based game.
package tiles

import "fmt"

// Code identifies what occupies a grid cell: a (type, variant) pair
// addressing a sprite in the tile sheet. Codes are compared by equality.
type Code struct {
	U int
	V int
}

// Position identifies a grid cell by its column and row.
// It deliberately shares the shape of Code but not the type: the two
// namespaces must never be conflated.
type Position struct {
	X int
	Y int
}

// String returns the code as "(u, v)".
func (c Code) String() string {
	return fmt.Sprintf("(%d, %d)", c.U, c.V)
}

// String returns the position as "(x, y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Above returns the position one row up.
func (p Position) Above() Position {
	return Position{p.X, p.Y - 1}
}

// Below returns the position one row down.
func (p Position) Below() Position {
	return Position{p.X, p.Y + 1}
}
