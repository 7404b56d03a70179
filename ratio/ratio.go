// SPDX-License-Identifier: MIT

// Package ratio provides an exact numerator/denominator pair that converts to
// a floating-point type by a single true division, so rational constants such
// as 13/10 or 1/2 are rounded once, in the caller's own precision.
package ratio

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

const panicZeroDenominator = "ratio: denominator must be non-zero"

// Ratio is an immutable n/d pair of integers. The zero value is not a valid
// ratio; construct with New.
type Ratio struct {
	n, d int64
}

// New returns n/d. A zero denominator is a programmer error and panics.
func New(n, d int64) Ratio {
	if d == 0 {
		panic(panicZeroDenominator)
	}

	return Ratio{n: n, d: d}
}

// Numer returns the numerator as constructed.
func (r Ratio) Numer() int64 { return r.n }

// Denom returns the denominator as constructed.
func (r Ratio) Denom() int64 { return r.d }

// Reduced returns the ratio in lowest terms with a positive denominator.
func (r Ratio) Reduced() Ratio {
	g := GCD(r.n, r.d)
	n, d := r.n/g, r.d/g
	if d < 0 {
		n, d = -n, -d
	}

	return Ratio{n: n, d: d}
}

// String renders "n/d".
func (r Ratio) String() string {
	return fmt.Sprintf("%d/%d", r.n, r.d)
}

// Float converts r to T by dividing T(n) by T(d).
func Float[T constraints.Float](r Ratio) T {
	return T(r.n) / T(r.d)
}

// GCD returns the greatest common divisor of ints, always non-negative.
// An empty argument list yields 1, the neutral divisor. GCD(0, 0) is 0.
func GCD(ints ...int64) int64 {
	if len(ints) == 0 {
		return 1
	}
	g := abs(ints[0])
	for _, v := range ints[1:] {
		v = abs(v)
		for v != 0 {
			g, v = v, g%v
		}
	}

	return g
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}
