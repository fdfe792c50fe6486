// SPDX-License-Identifier: MIT

package spherical_test

import (
	"errors"
	"fmt"

	"github.com/flickgroup/photonpilot/grid"
	"github.com/flickgroup/photonpilot/spherical"
)

// ExampleCavity_Lambda2 computes the squared field strength of a 1 µm shell
// with ε = 2 + 0.1i over ten frequencies.
func ExampleCavity_Lambda2() {
	omega, _ := grid.Linspace(10, 1e14, 1e15)
	cav, err := spherical.New(1e-6, omega, grid.Scalar(2.0+0.1i))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	l, err := cav.Lambda2()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("samples=%d first=%.3e last=%.3e\n", len(l), l[0], l[len(l)-1])
	// Output:
	// samples=10 first=6.557e-11 last=2.458e-09
}

// ExampleCavity_ReflectionCoefficient_singular shows how the n = 1 shell is
// reported instead of silently producing numbers.
func ExampleCavity_ReflectionCoefficient_singular() {
	cav, _ := spherical.New(1e-6, []float64{1e14, 2e14}, grid.Scalar(1))
	r, err := cav.ReflectionCoefficient()
	fmt.Println(errors.Is(err, spherical.ErrSingularShell), r[0])
	// Output:
	// true (NaN+NaNi)
}
