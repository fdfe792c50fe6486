// SPDX-License-Identifier: MIT

// Package layered evaluates the z = z′ Dyadic Green's Function of a point
// emitter inside a planar Fabry–Pérot-like cavity: a material slab of
// thickness d bounded by a bottom mirror (interface 1|2) and a top mirror
// (interface 1|3), with the emitter b above the bottom mirror and t below
// the top mirror.
//
// 🚀 What is computed?
//
//	For every in-plane wavenumber q of a uniform grid the package derives
//	the out-of-plane wavenumber kz = √(k² − q² + 1e-3) and three cavity
//	modulation functions:
//	  • TE, in-plane dipole      — s-polarized mirrors, (1 + r·e) factors
//	  • TM, in-plane dipole      — p-polarized mirrors, (1 − r·e) factors
//	  • TM, out-of-plane dipole  — p-polarized mirrors, (1 + r·e) factors
//	The wavevector integrals of those functions (rectangle rule) give the
//	three DGF components G_zz.
//
// ⚙️ Usage:
//
//	qs, _ := grid.Linspace(200, 0, 2e7)
//	cav, err := layered.New(layered.Params{
//		Qs: qs, K: 1.5e7 + 0.01i,
//		R12S: grid.Scalar(0.5 + 0.1i), R13S: grid.Scalar(0.5 + 0.1i),
//		R12P: grid.Scalar(0.5 + 0.1i), R13P: grid.Scalar(0.5 + 0.1i),
//		D: 200e-9, B: 100e-9, T: 100e-9,
//	})
//	if err != nil {
//		// ErrShortGrid, ErrDimensionMismatch, ErrGeometry ...
//	}
//	g := cav.AllDGFComponents()
//
// Numerical notes:
//
//   - Two additive regularizers are part of the model and reproduced
//     exactly: KzRegularizer under the square root (branch point at q = k)
//     and ResonanceRegularizer in the modulation denominators (lossless
//     resonance). Changing them changes every output.
//   - Non-finite values are never trapped: a degenerate input propagates
//     NaN/Inf through the arrays and sums.
//   - The cavity is an immutable value: all grid-derived arrays are built in
//     New, and every DGF accessor recomputes its sum from them.
package layered
