// SPDX-License-Identifier: MIT

package grid

// Series is a complex-valued quantity sampled over a grid.
//
// A Series of length 1 is a scalar: it applies to every sample. Any other
// non-zero length must match the grid it is used with. Reflection
// coefficients and permittivities are passed around as Series so callers can
// supply either a constant or a dispersive (per-sample) profile.
type Series []complex128

// Scalar returns a length-1 Series broadcasting v to every sample.
func Scalar(v complex128) Series {
	return Series{v}
}

// IsScalar reports whether s broadcasts a single value.
func (s Series) IsScalar() bool {
	return len(s) == 1
}

// At returns the value at sample i, honoring scalar broadcast.
// Callers are expected to have validated s against the grid length.
func (s Series) At(i int) complex128 {
	if len(s) == 1 {
		return s[0]
	}

	return s[i]
}

// Broadcast materializes s to exactly n samples.
// A scalar is repeated n times; a full-length series is copied.
//
// Errors:
//   - ErrEmptySeries when s has no values.
//   - ErrDimensionMismatch when len(s) ∉ {1, n}.
func (s Series) Broadcast(n int) (Series, error) {
	if err := validateSeries(s, n); err != nil {
		return nil, gridErrorf("Broadcast", err)
	}

	out := make(Series, n)
	if len(s) == 1 {
		for i := range out {
			out[i] = s[0]
		}
		return out, nil
	}
	copy(out, s)

	return out, nil
}
