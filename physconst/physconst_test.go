// SPDX-License-Identifier: MIT

package physconst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flickgroup/photonpilot/physconst"
)

// TestLambda2Scale_Combined checks the combined conversion factor equals the
// runtime quotient of its two parts bit for bit.
func TestLambda2Scale_Combined(t *testing.T) {
	ev, length := physconst.EVPerJoule, physconst.LengthRescale
	var scale float64 = physconst.Lambda2Scale
	assert.Equal(t, ev/length, scale)
	assert.InDelta(t, 6.24, scale, 1e-15)
}

// TestConstants_CalibratedValues pins the rounded constant set; every
// golden spectrum in the cavity packages depends on these exact figures.
func TestConstants_CalibratedValues(t *testing.T) {
	assert.Equal(t, 3e8, float64(physconst.SpeedOfLight))
	assert.Equal(t, 1.05e-34, float64(physconst.ReducedPlanck))
	assert.Equal(t, 1.6e-19, float64(physconst.ElementaryCharge))
	assert.Equal(t, 8.9e-12, float64(physconst.VacuumPermittivity))
}
