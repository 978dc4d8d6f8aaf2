package tour

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// matrixCoster serves leg costs from a fixed matrix; a missing leg is
// marked unreachable.
type matrixCoster struct {
	w     [][]int
	reach [][]bool
}

func (m matrixCoster) cost(i, j int) (int, bool, error) {
	return m.w[i][j], m.reach[i][j], nil
}

func fullReach(n int) [][]bool {
	r := make([][]bool, n)
	for i := range r {
		r[i] = make([]bool, n)
		for j := range r[i] {
			r[i][j] = true
		}
	}
	return r
}

// asymmetric 4-stop instance (stop 0 = source) with a negative leg.
func sampleLegs() matrixCoster {
	return matrixCoster{
		w: [][]int{
			{0, 4, 1, 9},
			{3, 0, 2, -1},
			{5, 1, 0, 6},
			{2, 7, 3, 0},
		},
		reach: fullReach(4),
	}
}

func runMemo(t *testing.T, m matrixCoster, workers int) (memoEntry, []int) {
	t.Helper()
	k := len(m.w) - 1
	s := &memoSearch{legs: m, memo: localMemo{}}
	if workers > 1 {
		s.memo = &sharedMemo{}
	}
	first, err := s.root(k, workers)
	require.NoError(t, err)
	return first, s.order(first, k)
}

func TestMemoSearch_Sample(t *testing.T) {
	// 0→2 (1) →1 (1) →3 (−1) = 1 is optimal.
	for _, workers := range []int{1, 3} {
		first, order := runMemo(t, sampleLegs(), workers)
		require.True(t, first.ok)
		require.Equal(t, 1, first.cost)
		require.Equal(t, []int{2, 1, 3}, order)
	}
}

func TestPermuteSearch_Sample(t *testing.T) {
	m := sampleLegs()
	for _, workers := range []int{1, 3} {
		order, cost, expanded, ok := permuteSearch(m.w, m.reach, workers)
		require.True(t, ok)
		require.Equal(t, 1, cost)
		require.Equal(t, []int{2, 1, 3}, order)
		require.Positive(t, expanded)
	}
}

// TestSearch_Unreachable: stop 3 can be entered only from stop 1, and stop 1
// only from stop 3, so no ordering starting at 0 covers both.
func TestSearch_Unreachable(t *testing.T) {
	m := sampleLegs()
	for i := range m.reach {
		m.reach[i][1] = i == 3
		m.reach[i][3] = i == 1
	}
	for _, workers := range []int{1, 2} {
		first, order := runMemo(t, m, workers)
		require.False(t, first.ok)
		require.Empty(t, order)

		_, _, _, ok := permuteSearch(m.w, m.reach, workers)
		require.False(t, ok)
	}
}

// TestLowerBound_NoEntry: a waypoint with no feasible incoming leg fails fast.
func TestLowerBound_NoEntry(t *testing.T) {
	m := sampleLegs()
	for i := range m.reach {
		m.reach[i][2] = false
	}
	_, _, ok := lowerBound(m.w, m.reach)
	require.False(t, ok)

	minIn, sum, ok := lowerBound(sampleLegs().w, sampleLegs().reach)
	require.True(t, ok)
	require.Equal(t, []int{0, 1, 1, -1}, minIn)
	require.Equal(t, 1, sum)
}

// TestIncumbent_TieBreak: equal cost keeps the lexicographically smaller order.
func TestIncumbent_TieBreak(t *testing.T) {
	in := newIncumbent()
	require.False(t, in.prunes(100, false))

	in.offer(5, []int{3, 1, 2})
	in.offer(5, []int{1, 3, 2})
	in.offer(5, []int{2, 1, 3})
	in.offer(6, []int{1, 2, 3})
	require.Equal(t, []int{1, 3, 2}, in.order)
	require.EqualValues(t, 5, in.cost.Load())

	require.True(t, in.prunes(5, false))
	require.False(t, in.prunes(5, true))
	require.True(t, in.prunes(6, true))
}

func TestSharedMemo_ComputesOnce(t *testing.T) {
	m := &sharedMemo{}
	calls := 0
	key := memoKey{at: 1, remaining: 0b101}
	for i := 0; i < 3; i++ {
		e, err := m.solve(key, func() (memoEntry, error) {
			calls++
			return memoEntry{cost: 7, next: 3, ok: true}, nil
		})
		require.NoError(t, err)
		require.Equal(t, 7, e.cost)
	}
	require.Equal(t, 1, calls)
	_, ok := m.get(memoKey{at: 2, remaining: 0b101})
	require.False(t, ok)
}

func TestMaskHelpers(t *testing.T) {
	require.Equal(t, uint64(0b111), fullMask(3))
	require.Equal(t, uint64(0b100), stopBit(3))
	require.Equal(t, 2, lowestStop(0b110))
}
