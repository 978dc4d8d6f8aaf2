package terrain_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/aqueduct/terrain"
)

// BenchmarkAppendNeighbors walks every cell of a random 500×500 grid and
// sums the outgoing step costs.
func BenchmarkAppendNeighbors(b *testing.B) {
	const n = 500
	rng := rand.New(rand.NewSource(42))
	rows := make([][]int, n)
	for y := range rows {
		rows[y] = make([]int, n)
		for x := range rows[y] {
			rows[y][x] = rng.Intn(10)
		}
	}
	g, err := terrain.NewGrid(rows)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	var buf []int
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for u := 0; u < g.Len(); u++ {
			buf = g.AppendNeighbors(buf[:0], u)
			for _, v := range buf {
				sum += g.CostIndex(u, v)
			}
		}
		_ = sum
	}
}
