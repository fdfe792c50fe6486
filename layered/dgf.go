// SPDX-License-Identifier: MIT

package layered

import (
	"math"

	"github.com/flickgroup/photonpilot/grid"
)

// DGFTEInPlane integrates the TE in-plane modulation:
//
//	G = i/(8π) · Σ (q/kz)·F_te_ip(q)·dq
//
// The sum is recomputed on every call; repeated calls are bit-identical.
func (c *Cavity) DGFTEInPlane() complex128 {
	w := make([]complex128, len(c.qs))
	for i, q := range c.qs {
		w[i] = complex(q, 0) / c.kz[i]
	}
	pre := 1i / complex(8*math.Pi, 0)

	return pre * grid.RiemannSum(w, c.fzzTEInPlane, c.dq)
}

// DGFTMInPlane integrates the TM in-plane modulation:
//
//	G = i/(8π·k²) · Σ (q·kz)·F_tm_ip(q)·dq
func (c *Cavity) DGFTMInPlane() complex128 {
	w := make([]complex128, len(c.qs))
	for i, q := range c.qs {
		w[i] = complex(q, 0) * c.kz[i]
	}

	return c.tmPrefactor() * grid.RiemannSum(w, c.fzzTMInPlane, c.dq)
}

// DGFTMOutOfPlane integrates the TM out-of-plane modulation:
//
//	G = i/(8π·k²) · Σ (2q³/kz)·F_tm_op(q)·dq
func (c *Cavity) DGFTMOutOfPlane() complex128 {
	w := make([]complex128, len(c.qs))
	for i, q := range c.qs {
		w[i] = complex(2*math.Pow(q, 3), 0) / c.kz[i]
	}

	return c.tmPrefactor() * grid.RiemannSum(w, c.fzzTMOutOfPlane, c.dq)
}

// AllDGFComponents evaluates the three components in sequence.
func (c *Cavity) AllDGFComponents() Components {
	return Components{
		TEInPlane:    c.DGFTEInPlane(),
		TMInPlane:    c.DGFTMInPlane(),
		TMOutOfPlane: c.DGFTMOutOfPlane(),
	}
}

// tmPrefactor is i/(k²·8π), shared by both TM components.
func (c *Cavity) tmPrefactor() complex128 {
	return 1i / (c.k * c.k * 8 * math.Pi)
}
