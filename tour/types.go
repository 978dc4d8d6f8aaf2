package tour

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aqueduct/relax"
	"github.com/katalvlaran/aqueduct/terrain"
)

// MaxWaypoints bounds the number of distinct bath stations; the exact search
// is exponential in this count.
const MaxWaypoints = 20

// Sentinel errors returned by MinimumCost.
var (
	// ErrNilGrid indicates that a nil *terrain.Grid was passed.
	ErrNilGrid = errors.New("tour: grid is nil")

	// ErrNoPath indicates that no visiting order reaches every bath station.
	ErrNoPath = errors.New("tour: no path visits every waypoint")

	// ErrTooManyWaypoints indicates more than MaxWaypoints distinct waypoints.
	ErrTooManyWaypoints = errors.New("tour: too many waypoints")

	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("tour: workers must be at least 1")

	// ErrBadStrategy indicates an unknown search Strategy.
	ErrBadStrategy = errors.New("tour: unknown strategy")
)

// Strategy selects the exact search used by MinimumCost.
type Strategy int

const (
	// Memoized solves (stop, remaining-mask) sub-problems once each.
	Memoized Strategy = iota

	// Permutation enumerates orderings depth-first with branch-and-bound.
	Permutation
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case Memoized:
		return "memoized"
	case Permutation:
		return "permutation"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Options configures MinimumCost.
//
// Strategy   – exact search variant. Default Memoized.
// Policy     – relaxation policy forwarded to relax.ShortestPaths.
// Precompute – compute every stop's distance table before searching.
// Workers    – goroutines used for tables and the first search level. Default 1.
type Options struct {
	Strategy   Strategy
	Policy     relax.Policy
	Precompute bool
	Workers    int
}

// Option represents a functional option for configuring MinimumCost.
type Option func(*Options)

// WithStrategy selects the search strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithPolicy selects the relaxation policy for distance tables.
func WithPolicy(p relax.Policy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

// WithPrecompute computes all distance tables up front instead of on demand.
// Permutation always precomputes.
func WithPrecompute() Option {
	return func(o *Options) {
		o.Precompute = true
	}
}

// WithWorkers sets the number of goroutines. n must be at least 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// DefaultOptions returns the single-threaded, lazily computed Memoized setup.
func DefaultOptions() Options {
	return Options{
		Strategy:   Memoized,
		Policy:     relax.EarlyExit,
		Precompute: false,
		Workers:    1,
	}
}

// Result holds the outcome of MinimumCost.
type Result struct {
	// Cost is the minimum total travel time; it may be zero or negative.
	Cost int

	// Order lists the distinct bath stations in optimal visiting order.
	Order []terrain.Point

	// Tables counts relax.ShortestPaths runs (at most one per distinct stop).
	Tables int

	// Searched counts solved sub-problems (Memoized) or expanded search
	// nodes (Permutation).
	Searched int
}
