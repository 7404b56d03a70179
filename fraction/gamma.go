// SPDX-License-Identifier: MIT

package fraction

import "golang.org/x/exp/constraints"

// UpperGammaFraction generates the continued-fraction terms of the upper
// incomplete gamma function Γ(a, z):
//
//	term k = (k·(a-k), z - a + 1 + 2k),  k = 1, 2, 3, ...
//
// The generator is infinite; Evaluate bounds it with maxIters.
type UpperGammaFraction[T constraints.Float] struct {
	a T
	z T // running denominator, starts at z - a + 1
	k int
}

// NewUpperGammaFraction prepares the term generator for shape a at point z.
func NewUpperGammaFraction[T constraints.Float](a, z T) *UpperGammaFraction[T] {
	return &UpperGammaFraction[T]{a: a, z: z - a + 1}
}

// Next advances k and returns (k·(a-k), z - a + 1 + 2k).
func (g *UpperGammaFraction[T]) Next() (Term[T], bool) {
	g.k++
	g.z += 2
	k := T(g.k)

	return Term[T]{Numer: k * (g.a - k), Denom: g.z}, true
}

// UpperGamma returns the continued-fraction kernel of Γ(a, z):
//
//	1 / (z - a + 1 + a1/(b1 + a2/(b2 + ...)))
//
// Multiply by z^a·e^(-z) to obtain Γ(a, z) itself, and divide that by Γ(a)
// for the regularized Q(a, z). eps is the Lentz tolerance and maxIters caps
// the number of terms.
func UpperGamma[T constraints.Float](a, z, eps T, maxIters int) (T, error) {
	cf, err := Evaluate[T](NewUpperGammaFraction(a, z), eps, maxIters)
	if err != nil {
		return 0, err
	}

	return 1 / (z - a + 1 + cf), nil
}
