package terrain

import "fmt"

// MinStepCost is the floor applied to every step: a descent never yields
// more than one unit of credit.
const MinStepCost = -1

// StepCost returns the time to move water from a station of height from to
// an adjacent station of height to: max(-1, 1 + to - from).
// It is non-decreasing in (to - from) and never below MinStepCost.
func StepCost(from, to int) int {
	c := 1 + to - from
	if c < MinStepCost {
		return MinStepCost
	}

	return c
}

// Cost returns the directional cost of moving from a to b.
// Returns ErrOutOfBounds if either point is outside the grid and
// ErrNotAdjacent unless a and b share an edge.
func (g *Grid) Cost(a, b Point) (int, error) {
	if err := g.Validate(a, b); err != nil {
		return 0, err
	}
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx*dx+dy*dy != 1 {
		return 0, fmt.Errorf("%w: %v -> %v", ErrNotAdjacent, a, b)
	}

	return StepCost(g.heights[a.Y][a.X], g.heights[b.Y][b.X]), nil
}

// CostIndex is the unchecked form of Cost over row-major indices.
// Callers must pass adjacent in-bounds indices, e.g. from AppendNeighbors.
func (g *Grid) CostIndex(from, to int) int {
	return StepCost(g.heightAtIndex(from), g.heightAtIndex(to))
}

// AppendNeighbors appends the row-major indices of the in-bounds 4-neighbours
// of idx to dst (N, E, S, W order) and returns the extended slice.
// Passing a reusable dst[:0] keeps relaxation loops allocation free.
func (g *Grid) AppendNeighbors(dst []int, idx int) []int {
	x, y := idx%g.Width, idx/g.Width
	if y > 0 {
		dst = append(dst, idx-g.Width)
	}
	if x+1 < g.Width {
		dst = append(dst, idx+1)
	}
	if y+1 < g.Height {
		dst = append(dst, idx+g.Width)
	}
	if x > 0 {
		dst = append(dst, idx-1)
	}

	return dst
}
