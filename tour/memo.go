package tour

import (
	"fmt"
	"math/bits"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// memoKey identifies a sub-problem: water stands at stop `at` and the bits of
// `remaining` (bit i ↔ stop i+1) mark waypoints still to visit.
type memoKey struct {
	at        int
	remaining uint64
}

// memoEntry is the solved sub-problem: cheapest cost to visit every remaining
// waypoint from `at`, the stop to visit next, and whether any order works.
type memoEntry struct {
	cost int
	next int
	ok   bool
}

// memoTable stores solved sub-problems for one MinimumCost call.
type memoTable interface {
	// solve returns the entry for key, running compute only if it is absent.
	solve(key memoKey, compute func() (memoEntry, error)) (memoEntry, error)
	// get returns an already solved entry.
	get(key memoKey) (memoEntry, bool)
}

// localMemo is the single-goroutine memo table.
type localMemo map[memoKey]memoEntry

func (m localMemo) solve(key memoKey, compute func() (memoEntry, error)) (memoEntry, error) {
	if e, ok := m[key]; ok {
		return e, nil
	}
	e, err := compute()
	if err != nil {
		return memoEntry{}, err
	}
	m[key] = e

	return e, nil
}

func (m localMemo) get(key memoKey) (memoEntry, bool) {
	e, ok := m[key]
	return e, ok
}

// sharedMemo is safe for concurrent use. A state being computed by one
// goroutine is awaited, not recomputed, by the others. Sub-problems only
// depend on strictly smaller remaining masks, so waits cannot cycle.
type sharedMemo struct {
	entries sync.Map // memoKey → memoEntry
	group   singleflight.Group
}

func (m *sharedMemo) solve(key memoKey, compute func() (memoEntry, error)) (memoEntry, error) {
	if v, ok := m.entries.Load(key); ok {
		return v.(memoEntry), nil
	}
	v, err, _ := m.group.Do(fmt.Sprintf("%d/%x", key.at, key.remaining), func() (interface{}, error) {
		if v, ok := m.entries.Load(key); ok {
			return v, nil
		}
		e, err := compute()
		if err != nil {
			return nil, err
		}
		m.entries.Store(key, e)
		return e, nil
	})
	if err != nil {
		return memoEntry{}, err
	}

	return v.(memoEntry), nil
}

func (m *sharedMemo) get(key memoKey) (memoEntry, bool) {
	v, ok := m.entries.Load(key)
	if !ok {
		return memoEntry{}, false
	}

	return v.(memoEntry), true
}

// coster yields the travel cost between two stops and whether the second is
// reachable from the first.
type coster interface {
	cost(from, to int) (int, bool, error)
}

// memoSearch runs the remaining-mask dynamic program.
type memoSearch struct {
	legs   coster
	memo   memoTable
	solved atomic.Int64
}

// best returns the cheapest way to visit all of key.remaining starting at
// key.at. The terminal state remaining == 0 costs nothing.
func (s *memoSearch) best(key memoKey) (memoEntry, error) {
	if key.remaining == 0 {
		return memoEntry{cost: 0, next: -1, ok: true}, nil
	}

	return s.memo.solve(key, func() (memoEntry, error) {
		s.solved.Add(1)
		out := memoEntry{next: -1}
		for rest := key.remaining; rest != 0; rest &= rest - 1 {
			e, err := s.branch(key, lowestStop(rest))
			if err != nil {
				return memoEntry{}, err
			}
			out = better(out, e)
		}
		return out, nil
	})
}

// branch evaluates moving from key.at to stop next and finishing from there.
// The returned entry has ok == false if either part is impossible.
func (s *memoSearch) branch(key memoKey, next int) (memoEntry, error) {
	d, reach, err := s.legs.cost(key.at, next)
	if err != nil || !reach {
		return memoEntry{next: next}, err
	}
	sub, err := s.best(memoKey{at: next, remaining: key.remaining &^ stopBit(next)})
	if err != nil || !sub.ok {
		return memoEntry{next: next}, err
	}

	return memoEntry{cost: d + sub.cost, next: next, ok: true}, nil
}

// root solves the start state. With workers > 1 the first move fans out
// over an errgroup; candidates are combined in stop order so the answer
// matches the sequential run.
func (s *memoSearch) root(k, workers int) (memoEntry, error) {
	start := memoKey{at: 0, remaining: fullMask(k)}
	if workers <= 1 || k < 2 {
		return s.best(start)
	}

	s.solved.Add(1)
	cands := make([]memoEntry, k)
	var eg errgroup.Group
	eg.SetLimit(workers)
	for i := 0; i < k; i++ {
		i := i
		eg.Go(func() error {
			e, err := s.branch(start, i+1)
			cands[i] = e
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return memoEntry{}, err
	}
	out := memoEntry{next: -1}
	for _, e := range cands {
		out = better(out, e)
	}

	return out, nil
}

// order follows next links from the solved start state.
func (s *memoSearch) order(first memoEntry, k int) []int {
	var seq []int
	rem := fullMask(k)
	for e := first; e.next > 0; {
		seq = append(seq, e.next)
		rem &^= stopBit(e.next)
		if rem == 0 {
			break
		}
		next, ok := s.memo.get(memoKey{at: e.next, remaining: rem})
		if !ok {
			break
		}
		e = next
	}

	return seq
}

// better picks the cheaper feasible entry; on equal cost the earlier
// (lower) stop wins, which keeps the chosen order lexicographically smallest.
func better(cur, cand memoEntry) memoEntry {
	switch {
	case !cand.ok:
		return cur
	case !cur.ok, cand.cost < cur.cost:
		return cand
	case cand.cost == cur.cost && cand.next < cur.next:
		return cand
	default:
		return cur
	}
}

func stopBit(stop int) uint64 { return 1 << uint(stop-1) }

func fullMask(k int) uint64 { return (uint64(1) << uint(k)) - 1 }

// lowestStop returns the stop index of the lowest set bit.
func lowestStop(mask uint64) int { return bits.TrailingZeros64(mask) + 1 }
