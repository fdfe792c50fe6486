// SPDX-License-Identifier: MIT

// Package photonpilot computes cavity field enhancements from closed-form
// Dyadic Green's Functions (DGF) of idealized optical cavities.
//
// 🚀 What is inside?
//
//	Two independent geometry models, each an immutable value built from its
//	material and geometric parameters:
//		• layered   — planar mirror/medium/mirror stack; TE/TM modulation
//		              functions over an in-plane wavevector grid and their
//		              rectangle-rule integrals G_zz (z = z′ only)
//		• spherical — spherical shell cavity; lowest TM-mode reflection
//		              coefficient, on-axis DGF and the squared field strength
//		              λ²(ω) in eV per squared length (emitter at the center)
//
//	Shared building blocks:
//		• grid      — uniform grids, broadcastable complex series, quadrature
//		• physconst — the constants and unit factors the models are built on
//
// ✨ Guarantees:
//
//   - Deterministic – sequential, index-ordered sums; repeated calls are bit-identical
//   - Explicit shapes – mismatched coefficient arrays fail fast with sentinel errors
//   - Honest numerics – the layered regularizers (1e-3, 0.01) are reproduced
//     exactly, and singular spherical shells are reported, never masked
//
// Fresnel coefficients and permittivities are inputs: derive them from your
// material data and pass them in as grid.Series (scalar or per sample).
//
//	go get github.com/flickgroup/photonpilot
package photonpilot
