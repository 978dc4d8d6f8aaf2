package terrain_test

import (
	"testing"

	"github.com/katalvlaran/aqueduct/terrain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepCost(t *testing.T) {
	cases := []struct {
		from, to, want int
	}{
		{0, 0, 1},
		{0, 1, 2},
		{1, 0, 0},
		{2, 0, -1},
		{10, 0, -1},
		{0, 5, 6},
		{-3, -3, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, terrain.StepCost(tc.from, tc.to), "StepCost(%d,%d)", tc.from, tc.to)
	}
}

// TestStepCost_MonotoneAndFloored sweeps height differences and checks the
// cost never drops below the floor and never decreases as the rise grows.
func TestStepCost_MonotoneAndFloored(t *testing.T) {
	prev := terrain.StepCost(0, -100)
	for d := -99; d <= 100; d++ {
		c := terrain.StepCost(0, d)
		require.GreaterOrEqual(t, c, terrain.MinStepCost)
		require.GreaterOrEqual(t, c, prev, "rise %d", d)
		prev = c
	}
}

// TestStepCost_Asymmetric: there and back costs at least 2, never cancels.
func TestStepCost_Asymmetric(t *testing.T) {
	for a := -5; a <= 5; a++ {
		for b := -5; b <= 5; b++ {
			require.GreaterOrEqual(t, terrain.StepCost(a, b)+terrain.StepCost(b, a), 2)
		}
	}
}

// TestGridCost checks the 2×2 scenario edge costs
//
//	0 1
//	2 3
func TestGridCost(t *testing.T) {
	g, err := terrain.NewGrid([][]int{{0, 1}, {2, 3}})
	require.NoError(t, err)

	p := func(x, y int) terrain.Point { return terrain.Point{X: x, Y: y} }
	cases := []struct {
		a, b terrain.Point
		want int
	}{
		{p(0, 0), p(1, 0), 2},
		{p(1, 0), p(1, 1), 3},
		{p(0, 0), p(0, 1), 3},
		{p(0, 1), p(1, 1), 2},
		{p(1, 1), p(0, 1), 0},
		{p(1, 1), p(1, 0), -1},
	}
	for _, tc := range cases {
		got, err := g.Cost(tc.a, tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Cost(%v,%v)", tc.a, tc.b)
		assert.Equal(t, tc.want, g.CostIndex(g.Index(tc.a), g.Index(tc.b)))
	}

	_, err = g.Cost(p(0, 0), p(1, 1))
	require.ErrorIs(t, err, terrain.ErrNotAdjacent)
	_, err = g.Cost(p(0, 0), p(0, 0))
	require.ErrorIs(t, err, terrain.ErrNotAdjacent)
	_, err = g.Cost(p(1, 1), p(2, 1))
	require.ErrorIs(t, err, terrain.ErrOutOfBounds)
}
