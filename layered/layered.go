// SPDX-License-Identifier: MIT

package layered

import (
	"fmt"
	"math"
	"math/cmplx"

	"go.uber.org/zap"

	"github.com/flickgroup/photonpilot/grid"
)

// New builds a layered cavity and eagerly evaluates kz, dq and the three
// modulation functions over p.Qs.
//
// Implementation:
//   - Stage 1 (Validate): at least two Qs samples; every coefficient is a
//     scalar or len(Qs) long; optional grid and geometry checks.
//   - Stage 2 (Grid): kz[i] = √(k² − q[i]² + KzRegularizer), dq = |q[1] − q[0]|.
//   - Stage 3 (Modulation): TE in-plane, TM in-plane, TM out-of-plane.
//
// Errors:
//   - grid.ErrEmptyGrid / grid.ErrShortGrid — dq cannot be derived.
//   - grid.ErrEmptySeries / grid.ErrDimensionMismatch — a coefficient does
//     not fit the grid (stricter than silently broadcasting).
//   - grid.ErrNonUniformGrid — only under WithUniformGridCheck.
//   - ErrGeometry — only under WithGeometryCheck.
//
// Degenerate numerics (e.g. a zero denominator) are not errors: NaN/Inf
// propagate into the arrays untouched.
//
// Complexity:
//   - Time O(n), Space O(n).
func New(p Params, opts ...Option) (*Cavity, error) {
	o := gatherOptions(opts...)

	dq, err := grid.Step(p.Qs)
	if err != nil {
		return nil, layeredErrorf("New", err)
	}
	n := len(p.Qs)
	if err = grid.ValidateSameLen(n, p.R12S, p.R13S, p.R12P, p.R13P); err != nil {
		return nil, layeredErrorf("New: reflection coefficients", err)
	}
	if o.gridCheck {
		if err = grid.ValidateUniform(p.Qs, o.gridTol); err != nil {
			return nil, layeredErrorf("New", err)
		}
	}
	if o.geometryCheck && math.Abs(p.B+p.T-p.D) > o.geometryTol*math.Abs(p.D) {
		return nil, layeredErrorf("New", fmt.Errorf("b=%g t=%g d=%g: %w", p.B, p.T, p.D, ErrGeometry))
	}

	c := &Cavity{
		qs:   append([]float64(nil), p.Qs...),
		k:    p.K,
		r12s: append(grid.Series(nil), p.R12S...),
		r13s: append(grid.Series(nil), p.R13S...),
		r12p: append(grid.Series(nil), p.R12P...),
		r13p: append(grid.Series(nil), p.R13P...),
		d:    p.D,
		b:    p.B,
		t:    p.T,
		dq:   dq,
		log:  o.logger,
	}

	c.kz = make([]complex128, n)
	k2 := c.k * c.k
	for i, q := range c.qs {
		c.kz[i] = cmplx.Sqrt(k2 - complex(q*q, 0) + KzRegularizer)
	}

	c.fzzTEInPlane = c.modulation(c.r12s, c.r13s, plusFactor)
	c.fzzTMInPlane = c.modulation(c.r12p, c.r13p, minusFactor)
	c.fzzTMOutOfPlane = c.modulation(c.r12p, c.r13p, plusFactor)

	c.log.Debug("layered cavity ready",
		zap.Int("samples", n),
		zap.Float64("dq", dq),
		zap.Float64("d", c.d),
		zap.Float64("b", c.b),
		zap.Float64("t", c.t),
	)
	for _, m := range []struct {
		name string
		f    []complex128
	}{
		{"te_ip", c.fzzTEInPlane},
		{"tm_ip", c.fzzTMInPlane},
		{"tm_op", c.fzzTMOutOfPlane},
	} {
		if idx, bad := grid.HasNonFinite(m.f); bad {
			c.log.Debug("non-finite modulation sample", zap.String("component", m.name), zap.Int("index", idx))
		}
	}

	return c, nil
}

// modulation evaluates, per grid sample,
//
//	(1 ± r12·e^{2i·kz·b})·(1 ± r13·e^{2i·kz·t}) / (1 − r12·r13·e^{2i·kz·d} + δ)
//
// with δ = ResonanceRegularizer and the sign picked by s.
func (c *Cavity) modulation(r12, r13 grid.Series, s factorSign) []complex128 {
	bc, tc, dc := complex(c.b, 0), complex(c.t, 0), complex(c.d, 0)

	out := make([]complex128, len(c.kz))
	for i, kz := range c.kz {
		a12, a13 := r12.At(i), r13.At(i)
		bottom := a12 * cmplx.Exp(2i*kz*bc)
		top := a13 * cmplx.Exp(2i*kz*tc)

		var f12, f13 complex128
		if s == minusFactor {
			f12, f13 = 1-bottom, 1-top
		} else {
			f12, f13 = 1+bottom, 1+top
		}
		den := 1 - a12*a13*cmplx.Exp(2i*kz*dc) + ResonanceRegularizer
		out[i] = f12 * f13 / den
	}

	return out
}

// ModulationTEInPlane returns F_zz for a horizontal dipole and TE light:
// (1 + r12s·e^{2i·kz·b})(1 + r13s·e^{2i·kz·t}) / (1 − r12s·r13s·e^{2i·kz·d} + 0.01).
func (c *Cavity) ModulationTEInPlane() []complex128 {
	return append([]complex128(nil), c.fzzTEInPlane...)
}

// ModulationTMInPlane returns F_zz for a horizontal dipole and TM light:
// (1 − r12p·e^{2i·kz·b})(1 − r13p·e^{2i·kz·t}) / (1 − r12p·r13p·e^{2i·kz·d} + 0.01).
func (c *Cavity) ModulationTMInPlane() []complex128 {
	return append([]complex128(nil), c.fzzTMInPlane...)
}

// ModulationTMOutOfPlane returns F_zz for a vertical dipole and TM light:
// (1 + r12p·e^{2i·kz·b})(1 + r13p·e^{2i·kz·t}) / (1 − r12p·r13p·e^{2i·kz·d} + 0.01).
func (c *Cavity) ModulationTMOutOfPlane() []complex128 {
	return append([]complex128(nil), c.fzzTMOutOfPlane...)
}

// Qs returns a copy of the wavenumber grid.
func (c *Cavity) Qs() []float64 { return append([]float64(nil), c.qs...) }

// K returns the medium wavenumber.
func (c *Cavity) K() complex128 { return c.k }

// Kz returns a copy of the out-of-plane wavenumbers.
func (c *Cavity) Kz() []complex128 { return append([]complex128(nil), c.kz...) }

// Dq returns the grid step |q[1] − q[0]|.
func (c *Cavity) Dq() float64 { return c.dq }

// Geometry returns the cavity thickness and the emitter offsets.
func (c *Cavity) Geometry() (d, b, t float64) { return c.d, c.b, c.t }
