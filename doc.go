// Package aqueduct computes how quickly water from one source station can
// reach every bath station on a height-labelled grid.
//
// Moving water between two 4-adjacent stations costs
//
//	max(-1, 1 + height(to) - height(from))
//
// so climbing is slow, descending is fast, and a cliff never pays back more
// than one unit. The total cost of a journey is the sum of its steps and may
// be negative.
//
// Under the hood, everything is organized under four subpackages:
//
//	terrain/      — Grid, Point and the step cost function
//	relax/        — single-source minimum costs (label-correcting, Bellman–Ford style)
//	tour/         — exact cheapest visiting order over the bath stations
//	gridfile/     — grid.txt parser and pathLength.txt writer
//	cmd/aqueduct/ — the command-line entry point
//
// Quick ASCII example:
//
//	S───1
//	│   │
//	2───B
//
// Water at S (height 0) reaches bath B (height 3) through either the
// height-1 or the height-2 station for a total cost of 5.
package aqueduct
