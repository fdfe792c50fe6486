// SPDX-License-Identifier: MIT

package spherical

import (
	"fmt"
	"math"
	"math/cmplx"

	"go.uber.org/zap"

	"github.com/flickgroup/photonpilot/grid"
	"github.com/flickgroup/photonpilot/physconst"
)

// Cavity is an immutable spherical-shell cavity model. Construct with New.
//
// The frequency grid, refractive index and size parameters are fixed at
// construction; ReflectionCoefficient, DGF and Lambda2 recompute from them on
// every call and are therefore idempotent.
type Cavity struct {
	r     float64
	omega []float64
	dw    float64

	nShell []complex128 // √ε_shell, one per frequency sample
	rho    []float64    // size parameter R·ω/c

	shellRegularizer float64
	log              *zap.Logger
}

// New builds a spherical cavity of inner radius r over the angular frequency
// grid omega. epsShell is the shell permittivity, either a scalar or one
// value per frequency.
//
// Errors:
//   - grid.ErrEmptyGrid / grid.ErrShortGrid — dw cannot be derived.
//   - grid.ErrEmptySeries / grid.ErrDimensionMismatch — epsShell does not fit omega.
func New(r float64, omega []float64, epsShell grid.Series, opts ...Option) (*Cavity, error) {
	o := gatherOptions(opts...)

	dw, err := grid.Step(omega)
	if err != nil {
		return nil, sphericalErrorf("New", err)
	}
	eps, err := epsShell.Broadcast(len(omega))
	if err != nil {
		return nil, sphericalErrorf("New: shell permittivity", err)
	}

	c := &Cavity{
		r:                r,
		omega:            append([]float64(nil), omega...),
		dw:               dw,
		nShell:           make([]complex128, len(omega)),
		rho:              make([]float64, len(omega)),
		shellRegularizer: o.shellRegularizer,
		log:              o.logger,
	}
	for i, w := range c.omega {
		c.nShell[i] = cmplx.Sqrt(eps[i])
		c.rho[i] = c.r * w / physconst.SpeedOfLight
	}

	c.log.Debug("spherical cavity ready",
		zap.Float64("radius", r),
		zap.Int("samples", len(omega)),
		zap.Float64("dw", dw),
		zap.Float64("shell_regularizer", c.shellRegularizer),
	)

	return c, nil
}

// ReflectionCoefficient returns r22p, the reflection coefficient of the
// lowest-order TM mode, for every frequency sample:
//
//	num = e^{iρ}·(i + ρ(n+1) − iρ²n − ρ³n²/(n+1))
//	den = sin ρ − ρ(cos ρ + i·n·sin ρ) + iρ²n·cos ρ − ρ³(cos ρ − i·n·sin ρ)·n²/(n²−1)
//
// The whole array is always returned. Samples where n² − 1 (plus the
// optional regularizer) or den vanish are set to NaN and the error wraps
// ErrNonFinite, plus ErrSingularShell for the n = 1 case.
func (c *Cavity) ReflectionCoefficient() ([]complex128, error) {
	out := make([]complex128, len(c.rho))
	singularAt := -1
	for i, rho := range c.rho {
		v, singular := c.reflection(rho, c.nShell[i])
		if singular && singularAt < 0 {
			singularAt = i
		}
		out[i] = v
	}

	if singularAt >= 0 {
		err := fmt.Errorf("sample %d: %w: %w", singularAt, ErrNonFinite, ErrSingularShell)
		c.log.Warn("singular shell", zap.Int("index", singularAt), zap.Complex128("n_shell", c.nShell[singularAt]))
		return out, sphericalErrorf("ReflectionCoefficient", err)
	}
	if idx, bad := grid.HasNonFinite(out); bad {
		c.log.Warn("non-finite reflection coefficient", zap.Int("index", idx), zap.Float64("rho", c.rho[idx]))
		return out, sphericalErrorf("ReflectionCoefficient", fmt.Errorf("sample %d: %w", idx, ErrNonFinite))
	}

	return out, nil
}

// reflection evaluates r22p for one sample. singular reports that the
// n² − 1 factor vanished.
//
// Exact zeros are mapped to NaN explicitly: IEEE complex division by zero
// yields an infinite denominator, and finite/∞ then collapses to a finite 0.
func (c *Cavity) reflection(rho float64, n complex128) (v complex128, singular bool) {
	n2 := n * n
	shell := n2 - 1 + complex(c.shellRegularizer, 0)
	if shell == 0 {
		return cmplx.NaN(), true
	}

	r := complex(rho, 0)
	r2 := complex(rho*rho, 0)
	r3 := complex(math.Pow(rho, 3), 0)
	sinRho, cosRho := math.Sincos(rho)
	s, co := complex(sinRho, 0), complex(cosRho, 0)

	num := cmplx.Exp(1i*r) * (1i + r*(n+1) - 1i*r2*n - r3*n2/(n+1))
	den := s - r*(co+1i*n*s) + 1i*r2*n*co - r3*(co-1i*n*s)*n2/shell
	if den == 0 || cmplx.IsInf(den) {
		return cmplx.NaN(), false
	}

	return num / den, false
}

// DGF returns the on-axis Green's function i·ω/(6π·c)·(1 + r22p) per sample.
// Errors from ReflectionCoefficient are passed through with the array.
func (c *Cavity) DGF() ([]complex128, error) {
	r22p, err := c.ReflectionCoefficient()

	out := make([]complex128, len(c.omega))
	for i, w := range c.omega {
		out[i] = 1i * complex(w, 0) / complex(6*math.Pi*physconst.SpeedOfLight, 0) * (1 + r22p[i])
	}
	if err != nil {
		return out, sphericalErrorf("DGF", err)
	}

	return out, nil
}

// Lambda2 returns the squared cavity field strength per sample, in eV per
// squared length:
//
//	λ² = 2·dw·e²·ω² / (6π²·ε0·c³) · (1 + Re r22p) · Lambda2Scale
//
// Errors from ReflectionCoefficient are passed through with the array.
func (c *Cavity) Lambda2() ([]float64, error) {
	r22p, err := c.ReflectionCoefficient()

	e := physconst.ElementaryCharge
	light := physconst.SpeedOfLight
	den := 6 * math.Pi * math.Pi * physconst.VacuumPermittivity * light * light * light

	out := make([]float64, len(c.omega))
	for i, w := range c.omega {
		s := 1 + real(r22p[i])
		out[i] = 2 * c.dw * e * e * w * w / den * s * physconst.Lambda2Scale
	}
	if err != nil {
		return out, sphericalErrorf("Lambda2", err)
	}

	return out, nil
}

// R returns the inner shell radius.
func (c *Cavity) R() float64 { return c.r }

// Omega returns a copy of the angular frequency grid.
func (c *Cavity) Omega() []float64 { return append([]float64(nil), c.omega...) }

// Dw returns the frequency step |ω[1] − ω[0]|.
func (c *Cavity) Dw() float64 { return c.dw }

// NShell returns a copy of the shell refractive index per sample.
func (c *Cavity) NShell() []complex128 { return append([]complex128(nil), c.nShell...) }

// Rho returns a copy of the size parameters R·ω/c.
func (c *Cavity) Rho() []float64 { return append([]float64(nil), c.rho...) }
