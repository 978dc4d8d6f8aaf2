package terrain

import (
	"errors"
	"fmt"
)

// Sentinel errors for terrain operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("terrain: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("terrain: all rows must have the same length")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("terrain: point outside grid")
	// ErrNotAdjacent indicates two cells that do not share an edge.
	ErrNotAdjacent = errors.New("terrain: cells are not 4-adjacent")
)

// Point addresses a grid cell: X is the column, Y the row.
type Point struct {
	X, Y int
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Cell is a point together with the height stored there.
type Cell struct {
	Point
	Height int
}

// Grid is a rectangular height map. It is immutable once built.
// Width is the number of columns, Height the number of rows;
// heights[y][x] holds the station height at column x, row y.
type Grid struct {
	Width, Height int
	heights       [][]int
}

// offsets4 lists the 4-connected neighbour offsets in N, E, S, W order.
var offsets4 = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
