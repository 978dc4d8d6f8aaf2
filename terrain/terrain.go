package terrain

import "fmt"

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice laid out
// as heights[y][x]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if heights has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGrid(heights [][]int) (*Grid, error) {
	if len(heights) == 0 || len(heights[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(heights), len(heights[0])
	for _, row := range heights {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], heights[y])
	}

	return &Grid{Width: w, Height: h, heights: cells}, nil
}

// Flat returns a w×h grid where every cell has the same height.
func Flat(w, h, height int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}
	rows := make([][]int, h)
	for y := range rows {
		rows[y] = make([]int, w)
		for x := range rows[y] {
			rows[y][x] = height
		}
	}

	return NewGrid(rows)
}

// Len returns the number of cells, W×H.
func (g *Grid) Len() int {
	return g.Width * g.Height
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Validate returns an ErrOutOfBounds-wrapping error for the first point
// that lies outside the grid, or nil.
func (g *Grid) Validate(points ...Point) error {
	for _, p := range points {
		if !g.InBounds(p) {
			return fmt.Errorf("%w: %v not in %dx%d", ErrOutOfBounds, p, g.Width, g.Height)
		}
	}

	return nil
}

// HeightAt returns the height stored at p.
func (g *Grid) HeightAt(p Point) (int, error) {
	if err := g.Validate(p); err != nil {
		return 0, err
	}

	return g.heights[p.Y][p.X], nil
}

// Cell returns p together with its height.
func (g *Grid) Cell(p Point) (Cell, error) {
	h, err := g.HeightAt(p)
	if err != nil {
		return Cell{}, err
	}

	return Cell{Point: p, Height: h}, nil
}

// Index maps p to a row‑major index: Y*Width + X.
// Distinct in-bounds points never share an index.
// Complexity: O(1).
func (g *Grid) Index(p Point) int {
	return p.Y*g.Width + p.X
}

// Point converts a row‑major index back to a Point.
// Complexity: O(1).
func (g *Grid) Point(idx int) Point {
	return Point{X: idx % g.Width, Y: idx / g.Width}
}

// Neighbors returns the in-bounds 4-adjacent points of p in N, E, S, W order.
func (g *Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(offsets4))
	for _, d := range offsets4 {
		q := Point{X: p.X + d.X, Y: p.Y + d.Y}
		if g.InBounds(q) {
			out = append(out, q)
		}
	}

	return out
}

// heightAtIndex is the unchecked hot-path accessor used by relaxation loops.
func (g *Grid) heightAtIndex(idx int) int {
	return g.heights[idx/g.Width][idx%g.Width]
}
