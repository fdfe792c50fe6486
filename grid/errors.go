// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Every message carries the "grid: " prefix. Callers wrap with a tag via
// fmt.Errorf("%s: %w", tag, err) and match with errors.Is.

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid is returned when a grid has no samples at all.
	ErrEmptyGrid = errors.New("grid: grid is empty")

	// ErrShortGrid is returned when a grid has fewer than two samples, so
	// no step can be derived from it.
	ErrShortGrid = errors.New("grid: at least two samples required")

	// ErrNonUniformGrid is returned when consecutive spacings differ by more
	// than the requested relative tolerance.
	ErrNonUniformGrid = errors.New("grid: spacing is not uniform")

	// ErrEmptySeries is returned when a Series has no values (not even a scalar).
	ErrEmptySeries = errors.New("grid: series is empty")

	// ErrDimensionMismatch is returned when a Series is neither a scalar nor
	// as long as the grid it is sampled on.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")

	// ErrBadTolerance is returned when a tolerance is negative, NaN or ±Inf.
	ErrBadTolerance = errors.New("grid: tolerance must be finite and non-negative")
)

// gridErrorf tags err with the originating call site.
func gridErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
