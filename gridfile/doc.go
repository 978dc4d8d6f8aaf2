// Package gridfile reads aqueduct problems from their text format and writes
// the resulting travel time.
//
// Input format, one record per line, integers separated by commas:
//
//	W, H              column count (x extent), row count (y extent)
//	h, x, y           W×H lines, one per cell, any order, each cell once
//	x, y              source station
//	x, y              zero or more bath stations, until end of file
//
// Blank lines are ignored everywhere. Coordinates are zero-based with
// 0 ≤ x < W and 0 ≤ y < H.
//
// Output is the minimum total cost as a decimal integer followed by a
// newline, or the line "no path" when no order reaches every bath.
//
// Problems in the cell section are collected and returned together as a
// *multierror.Error; every contained error wraps ErrMalformed or
// terrain.ErrOutOfBounds.
package gridfile
