// SPDX-License-Identifier: MIT

// Package spherical evaluates the self-field of an emitter at the center of
// a spherical shell cavity (inner radius R, shell permittivity ε_shell).
//
// Only the lowest-order TM mode couples to a centered dipole, so the model
// reduces to one reflection coefficient r22p(ω) per frequency sample, from
// which the on-axis DGF and the squared cavity field strength λ²(ω) follow.
//
// Singular configurations are reported, not hidden: a shell with n = 1 (no
// shell) or an exact zero of the reflection denominator yields NaN samples
// and an error wrapping ErrNonFinite. WithShellRegularizer opts into an
// additive offset on the n² − 1 factor; the default is unregularized.
package spherical
