// SPDX-License-Identifier: MIT

// Package stats evaluates the error function, its complement and the normal
// distribution to near machine precision, generically over float32 and
// float64 (and named types based on them).
//
// 🚀 How erf is computed
//
//	|x| < 13/10         Maclaurin series, Kahan-summed (series.KahanSum)
//	x² > 1/ε            asymptotic tail e^(-x²)/(√π·x) of erfc
//	otherwise           erfc via the continued fraction of Γ(1/2, x²)
//	                    (fraction.UpperGamma)
//
// The two erfc branches compute the complement directly; erf is obtained as
// 1 - erfc there, and erfc as 1 - erf on the series branch. Both functions go
// through the same routine with opposite inversion flags, so
// erf(x) + erfc(x) = 1 holds by construction.
//
// On float64 the asymptotic branch starts only at x² > 2^52, so erf(10) and
// everything else of practical size is served by the continued fraction.
//
// ✨ Key features:
//   - precision-adaptive: every stop rule derives from the digits of T;
//   - bounded work: SumMaxIters / FractionMaxIters cap both evaluators
//     (default 1_000_000 each);
//   - no shared state: ErrorFunction and NormalDistribution are immutable values.
//
// ⚙️ Usage:
//
//	stats.Erf(0.5)                                   // 0.5204998778130465
//	ef := stats.New[float32](stats.WithFractionMaxIters(500))
//	ef.Erfc(2)
//	stats.StandardNormal[float64]().CDF(1.96)        // ≈ 0.975
package stats
