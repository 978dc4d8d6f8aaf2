// Package tour finds the cheapest order in which water from one source
// station can visit every bath station of a terrain.Grid.
//
// The leg cost between two stops is the relax.ShortestPaths distance, which
// is asymmetric and may be negative. MinimumCost searches exactly over all
// visiting orders (an open Travelling Salesman Path with a fixed start):
//
//	– Memoized:    dynamic programming over (stop, remaining-bitmask) states,
//	               O(k²·2ᵏ) leg lookups, memo table owned by one call.
//	– Permutation: depth-first branch-and-bound over orderings, pruning with
//	               an admissible lower bound that stays valid for negative legs.
//
// Both return the same cost and, on ties, the lexicographically smallest
// visiting order (by first occurrence in the input).
//
// Distance tables are computed once per distinct stop, lazily on first use
// or up front with WithPrecompute. WithWorkers(n) spreads table computation
// and the first level of the search over n goroutines; results are
// identical to the single-threaded run.
//
// Errors (sentinel):
//
//	– ErrNilGrid           grid pointer is nil.
//	– ErrNoPath            no ordering reaches every bath station.
//	– ErrTooManyWaypoints  more than MaxWaypoints distinct bath stations.
//	– ErrBadWorkers        WithWorkers(n) with n < 1.
//	– ErrBadStrategy       unknown Strategy.
//	– terrain.ErrOutOfBounds (wrapped) for a source or bath outside the grid.
package tour
