// Package relax computes single-source minimum travel costs over a
// terrain.Grid by label-correcting relaxation (Bellman–Ford style).
//
// Step costs on a terrain grid can be negative (a descent earns up to one
// unit of credit), so Dijkstra's greedy settle order is unsafe. Every
// directed cycle still has positive total cost, which bounds the number of
// useful relaxation passes by V−1 and guarantees termination.
//
// Policies:
//
//	– EarlyExit:   full row-major passes until a pass changes nothing (default).
//	– FixedPasses: exactly V−1 full passes, the textbook bound.
//	– Queue:       FIFO work list of improved cells with an in-queue flag.
//
// All three produce identical tables.
//
// Complexity:
//
//	– Time:  O(V·E) worst case, E ≤ 4V; EarlyExit and Queue usually far less.
//	– Space: O(V) for distances, reached flags and optional predecessors.
//
// Errors (sentinel):
//
//	– ErrNilGrid         if the grid pointer is nil.
//	– ErrBadPolicy       if an unknown Policy was configured.
//	– ErrUnreachable     if Path is asked for a cell the origin cannot reach.
//	– ErrNoPredecessors  if Path is used without WithPredecessors.
//	– terrain.ErrOutOfBounds (wrapped) if the origin is outside the grid.
//
// Example usage:
//
//	tbl, err := relax.ShortestPaths(g, terrain.Point{X: 0, Y: 0})
//	if err != nil {
//	    return err
//	}
//	if d, ok := tbl.At(terrain.Point{X: 3, Y: 2}); ok {
//	    fmt.Println("cost:", d)
//	}
package relax
