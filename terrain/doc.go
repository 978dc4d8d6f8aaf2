// Package terrain models a rectangular grid of station heights and the
// asymmetric cost of moving water between neighbouring stations.
//
// What:
//
//   - Grid wraps a rectangular [][]int of heights, indexed heights[y][x].
//   - Point addresses a cell by column X and row Y.
//   - StepCost / Grid.Cost give the directional traversal cost between
//     4-adjacent cells: max(-1, 1 + h(to) - h(from)).
//
// Why:
//
//   - Uphill moves cost more, downhill moves less, a steep drop never
//     earns more than one unit of credit.
//   - Every directed cycle has positive total cost, so label-correcting
//     shortest-path search always converges.
//
// Complexity:
//
//   - NewGrid:   O(W×H) time and memory (deep copy).
//   - InBounds, Index, Point, Cost: O(1).
//   - Neighbors: O(1), at most 4 results.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a point lies outside the grid.
//   - ErrNotAdjacent: Cost was asked for two cells that are not 4-adjacent.
package terrain
