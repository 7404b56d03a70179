// SPDX-License-Identifier: MIT

// Package quickmaths evaluates the error function, its complement and the
// normal CDF to the last digit of the caller's floating-point type.
//
// 🚀 What is quickmaths?
//
//	A small, dependency-light numerics library built from four reusable parts:
//		• digits   : precision oracle (epsilon, scale factor, tiny) per float type
//		• ratio    : exact n/d constants converted once into the target precision
//		• series   : pull-based sequences and Kahan summation with a precision stop
//		• fraction : modified-Lentz continued fractions, upper incomplete gamma
//	and one consumer of them:
//		• stats    : erf / erfc dispatcher and the normal distribution
//
// ✨ Why choose quickmaths?
//
//   - Generic – one code path for float32, float64 and named float types
//   - Bounded – every iterative evaluator carries an explicit term cap
//   - Pure Go – no cgo, no global state
//
// Layout:
//
//	digits/          — Descriptor, Epsilon, ScaleFactor, Tiny
//	ratio/           — Ratio, GCD, Float
//	series/          — Sequence, KahanSum, Harmonic
//	fraction/        — Evaluate (Lentz), UpperGammaFraction, UpperGamma
//	stats/           — ErrorFunction, Erf, Erfc, NormalDistribution
//	cmd/quickmaths/  — command-line front-end
//
// Quick example:
//
//	import "github.com/katalvlaran/quickmaths/stats"
//
//	stats.Erf(0.5)                              // 0.5204998778130465
//	stats.StandardNormal[float32]().CDF(1.96)   // ≈ 0.975
package quickmaths
