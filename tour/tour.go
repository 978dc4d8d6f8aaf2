package tour

import (
	"fmt"

	"github.com/katalvlaran/aqueduct/relax"
	"github.com/katalvlaran/aqueduct/terrain"
)

// MinimumCost returns the cheapest total travel time for water leaving
// source to visit every waypoint at least once, in any order, on grid g.
//
// Duplicate waypoints are visited once. An empty waypoint list costs 0.
// If no order reaches every waypoint the error is ErrNoPath; a Result is
// only returned for a genuine tour, so a cost of 0 is always a real cost.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Options must be valid (ErrBadWorkers, ErrBadStrategy, relax.ErrBadPolicy).
//  3. source and every waypoint must lie in g (wrapped terrain.ErrOutOfBounds).
//  4. At most MaxWaypoints distinct waypoints (ErrTooManyWaypoints).
//
// Complexity (k distinct waypoints, V cells):
//
//   - Tables:      at most k+1 relax runs, O(k·V·E).
//   - Memoized:    O(k²·2ᵏ) time, O(k·2ᵏ) memory.
//   - Permutation: O(k!) worst case, usually far less after pruning.
func MinimumCost(g *terrain.Grid, source terrain.Point, waypoints []terrain.Point, opts ...Option) (Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if cfg.Workers < 1 {
		return Result{}, fmt.Errorf("%w: %d", ErrBadWorkers, cfg.Workers)
	}
	switch cfg.Strategy {
	case Memoized, Permutation:
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrBadStrategy, cfg.Strategy)
	}
	switch cfg.Policy {
	case relax.EarlyExit, relax.FixedPasses, relax.Queue:
	default:
		return Result{}, fmt.Errorf("%w: %v", relax.ErrBadPolicy, cfg.Policy)
	}

	// 2) Validate coordinates
	if err := g.Validate(source); err != nil {
		return Result{}, fmt.Errorf("tour: source: %w", err)
	}
	for i, p := range waypoints {
		if err := g.Validate(p); err != nil {
			return Result{}, fmt.Errorf("tour: waypoint %d: %w", i, err)
		}
	}

	// 3) Collapse duplicates; stop 0 is the source.
	distinct := dedupe(waypoints)
	k := len(distinct)
	if k == 0 {
		return Result{Cost: 0}, nil
	}
	if k > MaxWaypoints {
		return Result{}, fmt.Errorf("%w: %d > %d", ErrTooManyWaypoints, k, MaxWaypoints)
	}
	stops := make([]terrain.Point, 0, k+1)
	stops = append(stops, source)
	stops = append(stops, distinct...)

	l := newLegs(g, stops, cfg.Policy)
	if cfg.Precompute || cfg.Strategy == Permutation {
		if err := l.precompute(cfg.Workers); err != nil {
			return Result{}, err
		}
	}

	// 4) Search
	var (
		seq      []int
		cost     int
		searched int
		ok       bool
	)
	switch cfg.Strategy {
	case Memoized:
		s := &memoSearch{legs: l}
		if cfg.Workers > 1 {
			s.memo = &sharedMemo{}
		} else {
			s.memo = localMemo{}
		}
		first, err := s.root(k, cfg.Workers)
		if err != nil {
			return Result{}, err
		}
		seq, cost, ok = s.order(first, k), first.cost, first.ok
		searched = int(s.solved.Load())
	case Permutation:
		w, reach, err := l.matrix()
		if err != nil {
			return Result{}, err
		}
		seq, cost, searched, ok = permuteSearch(w, reach, cfg.Workers)
	}
	if !ok {
		return Result{}, ErrNoPath
	}

	order := make([]terrain.Point, len(seq))
	for i, stop := range seq {
		order[i] = stops[stop]
	}

	return Result{
		Cost:     cost,
		Order:    order,
		Tables:   int(l.runs.Load()),
		Searched: searched,
	}, nil
}

// dedupe keeps the first occurrence of every point, preserving input order.
func dedupe(points []terrain.Point) []terrain.Point {
	seen := make(map[terrain.Point]struct{}, len(points))
	out := make([]terrain.Point, 0, len(points))
	for _, p := range points {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	return out
}
