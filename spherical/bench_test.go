// SPDX-License-Identifier: MIT

package spherical_test

import (
	"fmt"
	"testing"

	"github.com/flickgroup/photonpilot/grid"
	"github.com/flickgroup/photonpilot/spherical"
)

var sinkLambda2 []float64

func BenchmarkLambda2(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{10, 1000, 100000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			omega, err := grid.Linspace(n, 1e14, 1e15)
			if err != nil {
				b.Fatal(err)
			}
			c, err := spherical.New(1e-6, omega, grid.Scalar(2.0+0.1i))
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				l, err := c.Lambda2()
				if err != nil {
					b.Fatal(err)
				}
				sinkLambda2 = l
			}
		})
	}
}
