// SPDX-License-Identifier: MIT

package grid_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/flickgroup/photonpilot/grid"
)

// TestLinspace_Endpoints verifies sample count, exact endpoints and spacing.
func TestLinspace_Endpoints(t *testing.T) {
	t.Parallel()

	xs, err := grid.Linspace(5, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, xs)

	_, err = grid.Linspace(1, 0, 1)
	assert.ErrorIs(t, err, grid.ErrShortGrid, "a single sample has no step")
}

// TestStep_Errors covers the empty and single-sample grids.
func TestStep_Errors(t *testing.T) {
	t.Parallel()

	_, err := grid.Step(nil)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = grid.Step([]float64{3})
	assert.ErrorIs(t, err, grid.ErrShortGrid)
}

// TestStep_TranslationInvariant shifts a dyadic grid (exact in binary) and
// checks the step does not move.
func TestStep_TranslationInvariant(t *testing.T) {
	t.Parallel()

	xs := []float64{0, 0.25, 0.5, 0.75}
	h, err := grid.Step(xs)
	require.NoError(t, err)
	assert.Equal(t, 0.25, h)

	shifted := append([]float64(nil), xs...)
	floats.AddConst(3, shifted)
	hs, err := grid.Step(shifted)
	require.NoError(t, err)
	assert.Equal(t, h, hs)

	// Descending grids report the same positive step.
	hd, err := grid.Step([]float64{1, 0.75, 0.5})
	require.NoError(t, err)
	assert.Equal(t, 0.25, hd)
}

// TestValidateUniform accepts Linspace output and rejects a stretched interval.
func TestValidateUniform(t *testing.T) {
	t.Parallel()

	xs, err := grid.Linspace(200, 0, 2e7)
	require.NoError(t, err)
	assert.NoError(t, grid.ValidateUniform(xs, 1e-9))

	err = grid.ValidateUniform([]float64{0, 1, 2, 4}, 1e-9)
	assert.ErrorIs(t, err, grid.ErrNonUniformGrid)

	err = grid.ValidateUniform(xs, -1)
	assert.ErrorIs(t, err, grid.ErrBadTolerance)

	err = grid.ValidateUniform(xs, math.NaN())
	assert.ErrorIs(t, err, grid.ErrBadTolerance)
}

// TestSeries_Broadcast covers scalar expansion, copying and shape errors.
func TestSeries_Broadcast(t *testing.T) {
	t.Parallel()

	s := grid.Scalar(0.5 + 0.1i)
	assert.True(t, s.IsScalar())
	assert.Equal(t, 0.5+0.1i, s.At(7), "scalar broadcasts to any index")

	b, err := s.Broadcast(3)
	require.NoError(t, err)
	assert.Equal(t, grid.Series{0.5 + 0.1i, 0.5 + 0.1i, 0.5 + 0.1i}, b)

	full := grid.Series{1, 2, 3}
	c, err := full.Broadcast(3)
	require.NoError(t, err)
	c[0] = 42
	assert.Equal(t, complex128(1), full[0], "Broadcast must copy")

	_, err = full.Broadcast(4)
	assert.ErrorIs(t, err, grid.ErrDimensionMismatch)

	_, err = grid.Series{}.Broadcast(4)
	assert.ErrorIs(t, err, grid.ErrEmptySeries)
}

// TestValidateSameLen reports the first incompatible argument.
func TestValidateSameLen(t *testing.T) {
	t.Parallel()

	assert.NoError(t, grid.ValidateSameLen(3, grid.Scalar(1), grid.Series{1, 2, 3}))

	err := grid.ValidateSameLen(3, grid.Scalar(1), grid.Series{1, 2})
	require.ErrorIs(t, err, grid.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "argument 1")

	assert.ErrorIs(t, grid.ValidateSameLen(3, nil), grid.ErrEmptySeries)
}

// TestRiemannSum_Exact uses values exactly representable in binary.
func TestRiemannSum_Exact(t *testing.T) {
	t.Parallel()

	w := []complex128{1, 2, 3}
	v := []complex128{1i, 1, 2}
	got := grid.RiemannSum(w, v, 0.5)
	assert.Equal(t, 4+0.5i, got)

	// Inputs are not mutated.
	assert.Equal(t, []complex128{1, 2, 3}, w)
}

// TestRiemannSum_ConvergesToIntegral integrates x² on [0,1] with a fine grid.
func TestRiemannSum_ConvergesToIntegral(t *testing.T) {
	t.Parallel()

	const n = 10001
	xs, err := grid.Linspace(n, 0, 1)
	require.NoError(t, err)
	h, err := grid.Step(xs)
	require.NoError(t, err)

	w := make([]complex128, n)
	v := make([]complex128, n)
	for i, x := range xs {
		w[i] = complex(x, 0)
		v[i] = complex(x, 0)
	}
	got := grid.RiemannSum(w, v, h)
	// Rectangle rule over n points overshoots ∫x² = 1/3 by ~h/2.
	assert.InDelta(t, 1.0/3.0, real(got), 1e-3)
	assert.Zero(t, imag(got))
}

// TestRiemannSum_PanicsOnMismatch documents the programmer-error contract.
func TestRiemannSum_PanicsOnMismatch(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		grid.RiemannSum([]complex128{1, 2}, []complex128{1}, 1)
	})
}

// TestHasNonFinite finds the first NaN/Inf sample.
func TestHasNonFinite(t *testing.T) {
	t.Parallel()

	idx, bad := grid.HasNonFinite([]complex128{1, 2})
	assert.False(t, bad)
	assert.Equal(t, -1, idx)

	idx, bad = grid.HasNonFinite([]complex128{1, cmplx.Inf(), cmplx.NaN()})
	assert.True(t, bad)
	assert.Equal(t, 1, idx)
}

// TestLinspace_MatchesReferenceSpacing compares with the closed-form samples.
func TestLinspace_MatchesReferenceSpacing(t *testing.T) {
	t.Parallel()

	xs, err := grid.Linspace(10, 1e14, 1e15)
	require.NoError(t, err)

	want := make([]float64, 10)
	for i := range want {
		want[i] = 1e14 + 1e14*float64(i)
	}
	if diff := cmp.Diff(want, xs, cmpopts.EquateApprox(1e-12, 0)); diff != "" {
		t.Fatalf("Linspace mismatch (-want +got):\n%s", diff)
	}
}
