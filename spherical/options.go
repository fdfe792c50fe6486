// SPDX-License-Identifier: MIT

package spherical

import (
	"math"

	"go.uber.org/zap"
)

// DefaultShellRegularizer leaves the n² − 1 factor untouched.
const DefaultShellRegularizer = 0.0

const (
	panicRegularizerInvalid = "spherical: WithShellRegularizer: delta must be finite, non-negative"
	panicNilLogger          = "spherical: WithLogger: logger must be non-nil"
)

// Option mutates the resolved Options; last writer wins.
type Option func(*Options)

// Options holds the effective configuration of a Cavity.
type Options struct {
	shellRegularizer float64
	logger           *zap.Logger
}

// WithShellRegularizer adds delta to the n² − 1 factor of the reflection
// denominator, the same additive scheme the layered model uses for its
// resonance denominator. With delta > 0 an ε_shell = 1 shell becomes finite.
// This deviates from the unregularized model; leave it unset for parity.
//
// Panics if delta is negative or non-finite.
func WithShellRegularizer(delta float64) Option {
	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta < 0 {
		panic(panicRegularizerInvalid)
	}

	return func(o *Options) { o.shellRegularizer = delta }
}

// WithLogger routes diagnostics (construction, non-finite samples) to logger.
// Panics on a nil logger.
func WithLogger(logger *zap.Logger) Option {
	if logger == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = logger }
}

// gatherOptions applies user setters on top of the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		shellRegularizer: DefaultShellRegularizer,
		logger:           zap.NewNop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
