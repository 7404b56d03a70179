// SPDX-License-Identifier: MIT

// Package digits reports the representable precision of a numeric type and
// derives the convergence constants that every iterative evaluator in
// quickmaths is sized against.
//
// 🚀 What does it answer?
//
//	Given a floating-point type T:
//	  • Radix and mantissa digit count (Descriptor, Of)
//	  • The "precision digits" used as a convergence exponent (PrecisionDigits)
//	  • Machine epsilon 2^(1-digits) (Epsilon)
//	  • The Kahan stop threshold 2^precisionDigits (ScaleFactor)
//	  • The tiny floor that replaces exact zeros in Lentz iteration (Tiny)
//
// ✨ Properties:
//   - Pure functions of the type: no caching, no globals, safe from any goroutine.
//   - Unknown radices fail fast with ErrUnsupportedRadix instead of guessing.
//
// ⚙️ Usage:
//
//	eps := digits.Epsilon[float64]()        // 2^-52
//	d, err := digits.Descriptor{Radix: 10, Digits: 34}.PrecisionDigits()
package digits
