// SPDX-License-Identifier: MIT

package layered

import (
	"go.uber.org/zap"

	"github.com/flickgroup/photonpilot/grid"
)

// Params is the full parameter set of a layered cavity.
//
// Fields:
//   - Qs   — in-plane wavenumbers of the integration grid (uniform spacing,
//     at least two samples).
//   - K    — wavenumber of an infinite medium made of the cavity material.
//   - R12S — bottom (material|mirror) Fresnel coefficient, s-polarized.
//   - R13S — top (material|mirror) Fresnel coefficient, s-polarized.
//   - R12P — bottom Fresnel coefficient, p-polarized.
//   - R13P — top Fresnel coefficient, p-polarized.
//   - D    — cavity thickness.
//   - B    — emitter distance to the bottom mirror.
//   - T    — emitter distance to the top mirror.
//
// Every coefficient is a grid.Series: a scalar, or one value per Qs sample.
// B + T = D is a precondition (see WithGeometryCheck).
type Params struct {
	Qs []float64
	K  complex128

	R12S, R13S grid.Series
	R12P, R13P grid.Series

	D, B, T float64
}

// Components bundles the three z = z′ DGF components.
type Components struct {
	TEInPlane    complex128 // G_zz, TE light, in-plane dipole
	TMInPlane    complex128 // G_zz, TM light, in-plane dipole
	TMOutOfPlane complex128 // G_zz, TM light, out-of-plane dipole
}

// Cavity is an immutable layered-cavity DGF model. Construct with New.
type Cavity struct {
	qs []float64
	k  complex128

	r12s, r13s grid.Series
	r12p, r13p grid.Series

	d, b, t float64

	// grid-derived, filled once by New
	kz []complex128
	dq float64

	fzzTEInPlane    []complex128
	fzzTMInPlane    []complex128
	fzzTMOutOfPlane []complex128

	log *zap.Logger
}

// factorSign selects the mirror factor form 1 + r·e or 1 − r·e.
type factorSign int

const (
	plusFactor factorSign = iota
	minusFactor
)
