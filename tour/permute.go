package tour

import (
	"sync"
	"sync/atomic"

	"github.com/tevino/abool"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// incumbent is the best complete ordering found so far. Pruning reads the
// found flag and cost without locking; improvements are committed under mu.
type incumbent struct {
	found *abool.AtomicBool
	cost  atomic.Int64
	mu    sync.Mutex
	order []int
}

func newIncumbent() *incumbent {
	return &incumbent{found: abool.New()}
}

// prunes reports whether a partial ordering with the given lower bound can
// be abandoned. In strict mode only bounds above the incumbent are pruned, so
// an equal-cost ordering from another goroutine can still win the tie.
func (in *incumbent) prunes(bound int, strict bool) bool {
	if !in.found.IsSet() {
		return false
	}
	best := int(in.cost.Load())
	if strict {
		return bound > best
	}

	return bound >= best
}

// offer records order if it is cheaper than the incumbent, or equally cheap
// and lexicographically smaller.
func (in *incumbent) offer(cost int, order []int) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.found.IsSet() {
		best := int(in.cost.Load())
		if cost > best || (cost == best && slices.Compare(order, in.order) >= 0) {
			return
		}
	}
	in.order = slices.Clone(order)
	in.cost.Store(int64(cost))
	in.found.Set()
}

// bbEngine holds the per-goroutine search state of the branch-and-bound.
type bbEngine struct {
	n      int      // stops, source included
	w      [][]int  // leg costs w[from][to]
	reach  [][]bool // leg feasibility
	minIn  []int    // cheapest feasible leg into each waypoint
	strict bool
	inc    *incumbent

	visited  []bool
	path     []int // waypoint stops visited so far, in order
	expanded int64
}

// lowerBound returns, for every waypoint, the cheapest feasible leg entering
// it from any other stop. Each unvisited waypoint is entered exactly once
// later, so acc + Σ minIn over unvisited waypoints never exceeds the best
// completion, even when legs are negative. ok is false if some waypoint
// cannot be entered at all.
func lowerBound(w [][]int, reach [][]bool) (minIn []int, sum int, ok bool) {
	n := len(w)
	minIn = make([]int, n)
	for v := 1; v < n; v++ {
		found := false
		for u := 0; u < n; u++ {
			if u == v || !reach[u][v] {
				continue
			}
			if !found || w[u][v] < minIn[v] {
				minIn[v] = w[u][v]
				found = true
			}
		}
		if !found {
			return nil, 0, false
		}
		sum += minIn[v]
	}

	return minIn, sum, true
}

func (e *bbEngine) clone() *bbEngine {
	c := *e
	c.visited = make([]bool, e.n)
	c.path = make([]int, 0, e.n-1)
	c.expanded = 0
	return &c
}

// dfs extends the current path from stop last. acc is the cost so far and
// rest the bound contribution of the still unvisited waypoints.
func (e *bbEngine) dfs(last, acc, rest int) {
	e.expanded++
	if len(e.path) == e.n-1 {
		e.inc.offer(acc, e.path)
		return
	}
	if e.inc.prunes(acc+rest, e.strict) {
		return
	}
	for v := 1; v < e.n; v++ {
		if e.visited[v] || !e.reach[last][v] {
			continue
		}
		e.step(last, v, acc, rest)
	}
}

// step visits waypoint v next, explores, and undoes the move.
func (e *bbEngine) step(last, v, acc, rest int) {
	e.visited[v] = true
	e.path = append(e.path, v)
	e.dfs(v, acc+e.w[last][v], rest-e.minIn[v])
	e.path = e.path[:len(e.path)-1]
	e.visited[v] = false
}

// permuteSearch enumerates orderings of the waypoint stops 1..k. With
// workers > 1 every first move runs in its own goroutine against a shared
// incumbent. It returns the best order, its cost, the number of expanded
// nodes and whether any complete ordering exists.
func permuteSearch(w [][]int, reach [][]bool, workers int) ([]int, int, int, bool) {
	minIn, sum, ok := lowerBound(w, reach)
	if !ok {
		return nil, 0, 0, false
	}
	base := &bbEngine{
		n:      len(w),
		w:      w,
		reach:  reach,
		minIn:  minIn,
		strict: workers > 1,
		inc:    newIncumbent(),
	}

	var expanded int64
	if workers <= 1 {
		e := base.clone()
		e.dfs(0, 0, sum)
		expanded = e.expanded
	} else {
		var (
			eg    errgroup.Group
			total atomic.Int64
		)
		eg.SetLimit(workers)
		for v := 1; v < base.n; v++ {
			if !reach[0][v] {
				continue
			}
			v := v
			eg.Go(func() error {
				e := base.clone()
				e.step(0, v, 0, sum)
				total.Add(e.expanded)
				return nil
			})
		}
		_ = eg.Wait()
		expanded = total.Load() + 1
	}

	if !base.inc.found.IsSet() {
		return nil, 0, int(expanded), false
	}

	return base.inc.order, int(base.inc.cost.Load()), int(expanded), true
}
