package relax

import (
	"fmt"

	"github.com/katalvlaran/aqueduct/terrain"
)

// ShortestPaths computes the minimum travel cost from origin to every cell
// of g under terrain.StepCost, moving between 4-adjacent cells.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. origin must lie inside g (wrapped terrain.ErrOutOfBounds).
//  3. Policy must be known (ErrBadPolicy).
//
// Complexity:
//
//   - Time:  O(V·E) worst case.
//   - Space: O(V).
func ShortestPaths(g *terrain.Grid, origin terrain.Point, opts ...Option) (*Table, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := g.Validate(origin); err != nil {
		return nil, fmt.Errorf("relax: origin: %w", err)
	}

	// 3) Prepare the table: every cell unreached except the origin.
	V := g.Len()
	t := &Table{
		grid:    g,
		origin:  origin,
		dist:    make([]int, V),
		reached: make([]bool, V),
	}
	if cfg.Predecessors {
		t.prev = make([]int, V)
		for i := range t.prev {
			t.prev[i] = -1
		}
	}
	src := g.Index(origin)
	t.reached[src] = true

	// 4) Run the selected schedule.
	r := &runner{g: g, t: t, buf: make([]int, 0, 4)}
	switch cfg.Policy {
	case EarlyExit:
		r.passes(true)
	case FixedPasses:
		r.passes(false)
	case Queue:
		r.queue(src)
	default:
		return nil, fmt.Errorf("%w: %v", ErrBadPolicy, cfg.Policy)
	}

	return t, nil
}

// runner holds the mutable state for a single relaxation run.
type runner struct {
	g   *terrain.Grid
	t   *Table
	buf []int // neighbour scratch, reused across cells
}

// relaxFrom tries to improve every neighbour of u through u.
// It calls onImprove for each neighbour whose distance dropped and reports
// whether any did.
func (r *runner) relaxFrom(u int, onImprove func(v int)) bool {
	t := r.t
	changed := false
	r.buf = r.g.AppendNeighbors(r.buf[:0], u)
	for _, v := range r.buf {
		nd := t.dist[u] + r.g.CostIndex(u, v)
		if t.reached[v] && nd >= t.dist[v] {
			continue
		}
		t.dist[v] = nd
		t.reached[v] = true
		if t.prev != nil {
			t.prev[v] = u
		}
		changed = true
		if onImprove != nil {
			onImprove(v)
		}
	}

	return changed
}

// passes runs up to V−1 full row-major sweeps over all reached cells.
// With earlyExit it stops after the first sweep that changed nothing.
func (r *runner) passes(earlyExit bool) {
	t := r.t
	limit := len(t.dist) - 1
	for pass := 0; pass < limit; pass++ {
		changed := false
		for u := range t.dist {
			if !t.reached[u] {
				continue
			}
			if r.relaxFrom(u, nil) {
				changed = true
			}
		}
		t.rounds++
		if earlyExit && !changed {
			return
		}
	}
}

// queue relaxes cells in FIFO order, re-enqueueing a cell whenever its
// distance improves and it is not already waiting.
func (r *runner) queue(src int) {
	t := r.t
	inQueue := make([]bool, len(t.dist))
	fifo := make([]int, 0, len(t.dist))
	fifo = append(fifo, src)
	inQueue[src] = true

	enqueue := func(v int) {
		if !inQueue[v] {
			inQueue[v] = true
			fifo = append(fifo, v)
		}
	}
	for head := 0; head < len(fifo); head++ {
		u := fifo[head]
		inQueue[u] = false
		t.rounds++
		r.relaxFrom(u, enqueue)
		// compact the consumed prefix once it dominates the backing array
		if head > len(t.dist) && head*2 > len(fifo) {
			fifo = append(fifo[:0], fifo[head+1:]...)
			head = -1
		}
	}
}

// Path returns one minimum-cost sequence of cells from the origin to p,
// both ends included. It needs a table built WithPredecessors.
func (t *Table) Path(p terrain.Point) ([]terrain.Point, error) {
	if t.prev == nil {
		return nil, ErrNoPredecessors
	}
	if err := t.grid.Validate(p); err != nil {
		return nil, err
	}
	at := t.grid.Index(p)
	if !t.reached[at] {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, p)
	}

	// Every cycle has positive cost, so predecessor links form a tree and
	// the walk ends at the origin within V steps.
	var rev []terrain.Point
	for ; at >= 0 && len(rev) <= len(t.dist); at = t.prev[at] {
		rev = append(rev, t.grid.Point(at))
	}
	path := make([]terrain.Point, len(rev))
	for i, q := range rev {
		path[len(rev)-1-i] = q
	}

	return path, nil
}
