// SPDX-License-Identifier: MIT

package grid

import "gonum.org/v1/gonum/cmplxs"

// RiemannSum evaluates the rectangle rule Σ (weights[i]·step)·values[i].
//
// The step is folded into the weights first and the products are then
// accumulated in ascending index order, so the result is reproducible bit
// for bit across runs. No adaptive refinement or convergence check is
// performed: accuracy is governed entirely by the grid the caller chose.
//
// Panics if len(weights) != len(values) (programmer error, as in gonum).
//
// Complexity:
//   - Time O(n), Space O(n) for the product buffer.
func RiemannSum(weights, values []complex128, step float64) complex128 {
	prod := make([]complex128, len(weights))
	copy(prod, weights)
	cmplxs.Scale(complex(step, 0), prod)
	cmplxs.Mul(prod, values)

	return cmplxs.Sum(prod)
}
