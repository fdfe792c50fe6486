// SPDX-License-Identifier: MIT

package layered_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flickgroup/photonpilot/grid"
	"github.com/flickgroup/photonpilot/layered"
)

// referenceParams returns the literal scenario: 200 q in [0, 2e7],
// k = 1.5e7 + 0.01i, every coefficient 0.5 + 0.1i, d = 200 nm, b = t = 100 nm.
func referenceParams(t testing.TB) layered.Params {
	t.Helper()
	qs, err := grid.Linspace(200, 0, 2e7)
	require.NoError(t, err)
	r := grid.Scalar(0.5 + 0.1i)

	return layered.Params{
		Qs: qs, K: 1.5e7 + 0.01i,
		R12S: r, R13S: r, R12P: r, R13P: r,
		D: 200e-9, B: 100e-9, T: 100e-9,
	}
}

// MustCavity builds a cavity or aborts the test.
func MustCavity(t testing.TB, p layered.Params, opts ...layered.Option) *layered.Cavity {
	t.Helper()
	c, err := layered.New(p, opts...)
	require.NoError(t, err)

	return c
}

// requireComplexClose asserts |got − want| ≤ rel·|want|.
func requireComplexClose(t testing.TB, want, got complex128, rel float64, msg string) {
	t.Helper()
	if cmplx.Abs(got-want) > rel*cmplx.Abs(want) {
		t.Fatalf("%s: got %v, want %v (rel tol %g)", msg, got, want, rel)
	}
}

// requireFinite fails on NaN or ±Inf.
func requireFinite(t testing.TB, v complex128, msg string) {
	t.Helper()
	if cmplx.IsNaN(v) || cmplx.IsInf(v) {
		t.Fatalf("%s: non-finite value %v", msg, v)
	}
}
