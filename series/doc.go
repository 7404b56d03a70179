// SPDX-License-Identifier: MIT

// Package series sums lazily generated term sequences with error-compensated
// (Kahan) accumulation.
//
// A Sequence is a pull-based state machine: the evaluator owns the loop and
// asks for one term at a time, so an infinite power series is described by a
// closure and consumed only as far as the precision of T requires.
//
// KahanSum is not only an accuracy improver: it also decides when to stop.
// Summation ends as soon as the latest term is smaller than the sum by the
// full precision of T (see digits.ScaleFactor), or when maxIters terms have
// been pulled.
//
//	// 2/sqrt(pi) * sum_k (-1)^k x^(2k+1) / (k! (2k+1))
//	seq := series.FromFunc(gen)
//	s := series.KahanSum(seq, 1_000_000)
//
// Harmonic provides the exact-ratio harmonic series; combine with Map and
// ratio.Float to sum it in floating point.
package series
