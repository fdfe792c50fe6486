// SPDX-License-Identifier: MIT
// Package layered: functional configuration for the layered cavity.
//
// Defaults reproduce the permissive reference behavior: no geometry or grid
// checks and a silent logger. Every WithX constructor panics only on
// nonsensical values (programmer error).

package layered

import (
	"math"

	"go.uber.org/zap"
)

// Numerical model constants. Both are part of the physics model, not tuning
// knobs, and are therefore not configurable.
const (
	// KzRegularizer is added under the square root of kz = √(k² − q² + ε)
	// to keep the integrand finite at the branch point q = k.
	KzRegularizer = 1e-3

	// ResonanceRegularizer is added to every modulation denominator
	// 1 − r12·r13·e^{2i·kz·d} so that it cannot vanish at a lossless cavity
	// resonance.
	ResonanceRegularizer = 0.01
)

// Defaults (single source of truth for zero-value behavior).
const (
	// DefaultGeometryCheck leaves b + t = d as an unchecked precondition.
	DefaultGeometryCheck = false

	// DefaultGeometryTolerance is the relative tolerance used once the
	// geometry check is enabled without an explicit value.
	DefaultGeometryTolerance = 1e-9

	// DefaultUniformGridCheck leaves uniform Qs spacing unchecked; only the
	// first interval defines dq.
	DefaultUniformGridCheck = false

	// DefaultUniformGridTolerance is the relative spacing tolerance used
	// once the grid check is enabled.
	DefaultUniformGridTolerance = 1e-9
)

const (
	panicGeometryTolInvalid = "layered: WithGeometryCheck: tol must be finite, non-negative"
	panicGridTolInvalid     = "layered: WithUniformGridCheck: tol must be finite, non-negative"
	panicNilLogger          = "layered: WithLogger: logger must be non-nil"
)

// Option mutates the resolved Options. Options are applied in order;
// the last writer wins.
type Option func(*Options)

// Options holds the effective configuration of a Cavity.
type Options struct {
	geometryCheck bool
	geometryTol   float64

	gridCheck bool
	gridTol   float64

	logger *zap.Logger
}

// WithGeometryCheck makes New reject geometries where |b + t − d| > tol·|d|.
//
// This is stricter than the reference model, which trusts the caller.
// Panics if tol is negative or non-finite.
func WithGeometryCheck(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicGeometryTolInvalid)
	}

	return func(o *Options) {
		o.geometryCheck = true
		o.geometryTol = tol
	}
}

// WithUniformGridCheck makes New verify that every Qs interval matches the
// first one within relative tolerance tol (grid.ErrNonUniformGrid otherwise).
// Panics if tol is negative or non-finite.
func WithUniformGridCheck(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicGridTolInvalid)
	}

	return func(o *Options) {
		o.gridCheck = true
		o.gridTol = tol
	}
}

// WithLogger routes construction diagnostics to logger.
// Panics on a nil logger; use zap.NewNop() to silence output.
func WithLogger(logger *zap.Logger) Option {
	if logger == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = logger }
}

// gatherOptions applies user setters on top of the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		geometryCheck: DefaultGeometryCheck,
		geometryTol:   DefaultGeometryTolerance,
		gridCheck:     DefaultUniformGridCheck,
		gridTol:       DefaultUniformGridTolerance,
		logger:        zap.NewNop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
