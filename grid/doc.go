// SPDX-License-Identifier: MIT

// Package grid provides the sampling primitives shared by the cavity models:
// uniform real-valued grids (wavevector or frequency axes), broadcastable
// complex series sampled over such grids, centralized shape validators and
// a rectangle-rule quadrature.
//
// What lives here:
//   - Linspace / Step / ValidateUniform — build and inspect uniform grids.
//   - Series — a complex quantity that is either a scalar (len 1, broadcast)
//     or one value per grid sample.
//   - RiemannSum — Σ w[i]·v[i]·step accumulated in index order.
//
// Determinism:
//
//	Every routine is pure and sequential. Sums are accumulated in ascending
//	index order, so results do not depend on scheduling or hardware threads.
//
// Errors:
//
//	Validators return package sentinels (ErrShortGrid, ErrDimensionMismatch,
//	...) wrapped with a call-site tag; match them with errors.Is.
package grid
