package terrain_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/aqueduct/terrain"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// NewGrid and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty or ragged inputs.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, terrain.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, terrain.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, terrain.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := terrain.NewGrid(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGrid_DeepCopy ensures later mutation of the input does not leak
// into the grid.
func TestNewGrid_DeepCopy(t *testing.T) {
	in := [][]int{{1, 2}, {3, 4}}
	g, err := terrain.NewGrid(in)
	require.NoError(t, err)
	in[0][0] = 99

	h, err := g.HeightAt(terrain.Point{X: 0, Y: 0})
	require.NoError(t, err)
	require.Equal(t, 1, h)
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := terrain.NewGrid([][]int{
		{0, 1, 0},
		{1, 0, 1},
	})
	require.NoError(t, err)
	require.Equal(t, 3, g.Width)
	require.Equal(t, 2, g.Height)

	for _, p := range []terrain.Point{{0, 0}, {2, 1}, {1, 1}} {
		if !g.InBounds(p) {
			t.Errorf("InBounds(%v)=false; want true", p)
		}
	}
	for _, p := range []terrain.Point{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		if g.InBounds(p) {
			t.Errorf("InBounds(%v)=true; want false", p)
		}
		require.ErrorIs(t, g.Validate(p), terrain.ErrOutOfBounds)
	}
}

// TestIndexRoundTrip checks that Index is a bijection onto [0, Len) on a
// non-square grid, the case where narrow key encodings collide.
func TestIndexRoundTrip(t *testing.T) {
	g, err := terrain.Flat(7, 3, 0)
	require.NoError(t, err)

	seen := make(map[int]bool, g.Len())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := terrain.Point{X: x, Y: y}
			i := g.Index(p)
			require.False(t, seen[i], "index %d reused by %v", i, p)
			seen[i] = true
			require.Equal(t, p, g.Point(i))
		}
	}
	require.Len(t, seen, 21)
}

// TestNeighbors covers corner, edge and interior cells.
func TestNeighbors(t *testing.T) {
	g, err := terrain.Flat(3, 3, 0)
	require.NoError(t, err)

	require.Equal(t, []terrain.Point{{1, 0}, {0, 1}}, g.Neighbors(terrain.Point{X: 0, Y: 0}))
	require.Equal(t, []terrain.Point{{1, 0}, {2, 1}, {1, 2}, {0, 1}}, g.Neighbors(terrain.Point{X: 1, Y: 1}))
	require.Equal(t, []terrain.Point{{2, 0}, {2, 2}, {1, 1}}, g.Neighbors(terrain.Point{X: 2, Y: 1}))

	// index form agrees with the point form
	var buf []int
	for i := 0; i < g.Len(); i++ {
		buf = g.AppendNeighbors(buf[:0], i)
		pts := g.Neighbors(g.Point(i))
		require.Len(t, buf, len(pts))
		for k, j := range buf {
			require.Equal(t, pts[k], g.Point(j))
		}
	}
}

// TestCell returns heights and rejects outside points.
func TestCell(t *testing.T) {
	g, err := terrain.NewGrid([][]int{{0, 1}, {2, 3}})
	require.NoError(t, err)

	c, err := g.Cell(terrain.Point{X: 0, Y: 1})
	require.NoError(t, err)
	require.Equal(t, 2, c.Height)

	_, err = g.Cell(terrain.Point{X: 2, Y: 0})
	require.ErrorIs(t, err, terrain.ErrOutOfBounds)
}

func TestFlat_Errors(t *testing.T) {
	_, err := terrain.Flat(0, 3, 1)
	require.ErrorIs(t, err, terrain.ErrEmptyGrid)
}
