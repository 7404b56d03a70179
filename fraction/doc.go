// SPDX-License-Identifier: MIT

// Package fraction evaluates continued fractions with the modified Lentz
// algorithm and provides the term generator for the upper incomplete gamma
// function.
//
// 🚀 What is in here?
//
//	Evaluate            — a1/(b1 + a2/(b2 + ...)) from a lazy Term sequence
//	UpperGammaFraction  — terms (k(a-k), z-a+1+2k) of Γ(a, z)
//	UpperGamma          — 1/(z-a+1+CF), the normalisable kernel of Γ(a, z)
//
// ✨ Numerical safeguards:
//   - exact-zero convergents are replaced by digits.Tiny, never surfaced as errors;
//   - convergence is tested on |delta-1|, the relative change per term;
//   - maxIters bounds the work for inputs that never meet the tolerance.
//
// ⚙️ Usage:
//
//	// sqrt(2) - 1 = 1/(2 + 1/(2 + ...))
//	v, err := fraction.Evaluate[float64](series.FromFunc(func() fraction.Term[float64] {
//		return fraction.Term[float64]{Numer: 1, Denom: 2}
//	}), 1e-15, 1000)
//
// Errors:
//   - ErrEmptySequence when the sequence yields no term.
package fraction
