package relax

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aqueduct/terrain"
)

// Sentinel errors returned by the relaxation engine.
var (
	// ErrNilGrid indicates that a nil *terrain.Grid was passed.
	ErrNilGrid = errors.New("relax: grid is nil")

	// ErrBadPolicy indicates an unknown relaxation Policy.
	ErrBadPolicy = errors.New("relax: unknown policy")

	// ErrUnreachable indicates that the requested cell cannot be reached
	// from the table's origin.
	ErrUnreachable = errors.New("relax: cell unreachable from origin")

	// ErrNoPredecessors indicates that Path was called on a table built
	// without WithPredecessors.
	ErrNoPredecessors = errors.New("relax: predecessors were not recorded")
)

// Policy selects how relaxation rounds are scheduled and when they stop.
type Policy int

const (
	// EarlyExit runs full passes and stops after the first pass without updates.
	EarlyExit Policy = iota

	// FixedPasses always runs exactly V−1 full passes.
	FixedPasses

	// Queue relaxes only cells whose distance improved, in FIFO order.
	Queue
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case EarlyExit:
		return "early-exit"
	case FixedPasses:
		return "fixed-passes"
	case Queue:
		return "queue"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Options configures ShortestPaths.
//
// Policy       – round scheduling, see Policy. Default EarlyExit.
// Predecessors – record one predecessor per cell so Table.Path works.
type Options struct {
	Policy       Policy
	Predecessors bool
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// WithPolicy selects the relaxation policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

// WithPredecessors enables predecessor tracking for path reconstruction.
func WithPredecessors() Option {
	return func(o *Options) {
		o.Predecessors = true
	}
}

// DefaultOptions returns Options with EarlyExit and no predecessor tracking.
func DefaultOptions() Options {
	return Options{
		Policy:       EarlyExit,
		Predecessors: false,
	}
}

// Table holds the minimum travel cost from one origin to every cell.
// Distances are integers and may be negative; cells the origin cannot
// reach are flagged separately rather than by a numeric sentinel.
// A Table is read-only once returned and safe for concurrent readers.
type Table struct {
	grid    *terrain.Grid
	origin  terrain.Point
	dist    []int
	reached []bool
	prev    []int // nil unless Options.Predecessors; -1 marks "none"
	rounds  int
}

// Origin returns the cell the table was computed from.
func (t *Table) Origin() terrain.Point { return t.origin }

// Len returns the number of cells covered by the table.
func (t *Table) Len() int { return len(t.dist) }

// Rounds returns the number of full passes (EarlyExit, FixedPasses) or
// dequeued cells (Queue) the computation performed.
func (t *Table) Rounds() int { return t.rounds }

// At returns the minimum cost from the origin to p and whether p was
// reached at all. Points outside the grid report (0, false).
func (t *Table) At(p terrain.Point) (int, bool) {
	if !t.grid.InBounds(p) {
		return 0, false
	}
	i := t.grid.Index(p)
	if !t.reached[i] {
		return 0, false
	}

	return t.dist[i], true
}

// Reached reports whether p is reachable from the origin.
func (t *Table) Reached(p terrain.Point) bool {
	_, ok := t.At(p)
	return ok
}
