package tour

import (
	"strconv"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/aqueduct/relax"
	"github.com/katalvlaran/aqueduct/terrain"
)

// legs provides stop-to-stop travel costs. Stop 0 is the source, stop i>0 is
// waypoint i−1. Each stop's distance table is computed at most once per
// MinimumCost call and shared by every goroutine of that call.
type legs struct {
	g      *terrain.Grid
	stops  []terrain.Point
	policy relax.Policy

	tables sync.Map // int → *relax.Table
	group  singleflight.Group
	runs   atomic.Int64
}

func newLegs(g *terrain.Grid, stops []terrain.Point, policy relax.Policy) *legs {
	return &legs{g: g, stops: stops, policy: policy}
}

// table returns the distance table rooted at stop i, computing it if absent.
// Concurrent callers asking for the same stop wait for a single computation.
func (l *legs) table(i int) (*relax.Table, error) {
	if v, ok := l.tables.Load(i); ok {
		return v.(*relax.Table), nil
	}
	v, err, _ := l.group.Do(strconv.Itoa(i), func() (interface{}, error) {
		if v, ok := l.tables.Load(i); ok {
			return v, nil
		}
		t, err := relax.ShortestPaths(l.g, l.stops[i], relax.WithPolicy(l.policy))
		if err != nil {
			return nil, err
		}
		l.runs.Add(1)
		l.tables.Store(i, t)
		return t, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*relax.Table), nil
}

// cost returns the travel cost from stop i to stop j and whether j is
// reachable from i at all.
func (l *legs) cost(i, j int) (int, bool, error) {
	t, err := l.table(i)
	if err != nil {
		return 0, false, err
	}
	d, ok := t.At(l.stops[j])

	return d, ok, nil
}

// precompute fills every stop's table using up to workers goroutines.
func (l *legs) precompute(workers int) error {
	var eg errgroup.Group
	eg.SetLimit(workers)
	for i := range l.stops {
		i := i
		eg.Go(func() error {
			_, err := l.table(i)
			return err
		})
	}

	return eg.Wait()
}

// matrix returns the dense leg matrix w[i][j] with reachability flags.
// All tables must be available (or computable) for every stop.
func (l *legs) matrix() ([][]int, [][]bool, error) {
	n := len(l.stops)
	w := make([][]int, n)
	ok := make([][]bool, n)
	for i := 0; i < n; i++ {
		w[i] = make([]int, n)
		ok[i] = make([]bool, n)
		for j := 0; j < n; j++ {
			d, reach, err := l.cost(i, j)
			if err != nil {
				return nil, nil, err
			}
			w[i][j], ok[i][j] = d, reach
		}
	}

	return w, ok, nil
}
