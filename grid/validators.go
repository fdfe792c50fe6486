// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//  - Single source of truth for grid and series checks, so cavity
//    constructors stay minimal and guard logic is not duplicated.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing beyond the
//    returned error; the slice scans are O(n).
//
// Note:
//  - Each validator returns a package sentinel tagged with its own name;
//    match with errors.Is.

package grid

import (
	"fmt"
	"math"
	"math/cmplx"
)

// ValidateUniform checks every spacing |xs[i+1] − xs[i]| against Step(xs)
// with relative tolerance tol.
//
// Errors:
//   - ErrBadTolerance for a negative or non-finite tol.
//   - ErrEmptyGrid / ErrShortGrid from Step.
//   - ErrNonUniformGrid naming the first offending interval.
//
// Complexity:
//   - Time O(n), Space O(1).
func ValidateUniform(xs []float64, tol float64) error {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return gridErrorf("ValidateUniform", ErrBadTolerance)
	}
	h, err := Step(xs)
	if err != nil {
		return gridErrorf("ValidateUniform", err)
	}

	limit := tol * h
	for i := 1; i < len(xs)-1; i++ {
		if math.Abs(math.Abs(xs[i+1]-xs[i])-h) > limit {
			return gridErrorf("ValidateUniform", fmt.Errorf("interval %d: %w", i, ErrNonUniformGrid))
		}
	}

	return nil
}

// validateSeries returns the bare sentinel for an incompatible series.
func validateSeries(s Series, n int) error {
	if len(s) == 0 {
		return ErrEmptySeries
	}
	if len(s) != 1 && len(s) != n {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateSameLen checks that every series is a scalar or exactly n long.
// The first offending series (0-based argument position) is named in the error.
func ValidateSameLen(n int, series ...Series) error {
	for idx, s := range series {
		if err := validateSeries(s, n); err != nil {
			return gridErrorf("ValidateSameLen", fmtIndex(idx, err))
		}
	}

	return nil
}

// HasNonFinite reports the index of the first NaN or ±Inf entry in xs.
// It returns (-1, false) when every entry is finite.
func HasNonFinite(xs []complex128) (int, bool) {
	for i, v := range xs {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			return i, true
		}
	}

	return -1, false
}

// fmtIndex annotates err with the argument position it refers to.
func fmtIndex(idx int, err error) error {
	return fmt.Errorf("argument %d: %w", idx, err)
}
