// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//   - Build and inspect uniform sampling grids (wavevector/frequency axes).
//
// Determinism & Performance:
//   - Linspace is O(n); Step is O(1).

package grid

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Linspace returns n uniformly spaced samples on [lo, hi], endpoints included.
//
// Implementation:
//   - Stage 1: reject n < 2 (a single sample has no step).
//   - Stage 2: delegate to floats.Span, which pins both endpoints exactly.
//
// Errors:
//   - ErrShortGrid when n < 2.
//
// Complexity:
//   - Time O(n), Space O(n).
func Linspace(n int, lo, hi float64) ([]float64, error) {
	if n < 2 {
		return nil, gridErrorf("Linspace", ErrShortGrid)
	}

	return floats.Span(make([]float64, n), lo, hi), nil
}

// Step returns the grid spacing |xs[1] − xs[0]|.
//
// Only the first interval is read; uniform spacing is the caller's
// precondition (see ValidateUniform for an explicit check). Because it is a
// difference, Step is invariant under translation of the whole grid.
//
// Errors:
//   - ErrEmptyGrid when xs is empty.
//   - ErrShortGrid when xs has a single sample.
func Step(xs []float64) (float64, error) {
	switch len(xs) {
	case 0:
		return 0, gridErrorf("Step", ErrEmptyGrid)
	case 1:
		return 0, gridErrorf("Step", ErrShortGrid)
	}

	return math.Abs(xs[1] - xs[0]), nil
}
