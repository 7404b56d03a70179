// SPDX-License-Identifier: MIT

package digits

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by the precision oracle.
var (
	// ErrUnsupportedRadix indicates a radix other than 2 or 10.
	ErrUnsupportedRadix = errors.New("digits: unsupported radix")

	// ErrNoPrecision indicates that a descriptor scales down to zero precision
	// digits, which would make every convergence test trivially true.
	ErrNoPrecision = errors.New("digits: precision digits must be >= 1")
)

// Supported radices.
const (
	RadixBinary  = 2
	RadixDecimal = 10
)

// Mantissa digits (including the implicit bit) of the IEEE-754 binary formats.
const (
	float32Digits = 24
	float64Digits = 53
)

// Smallest normal exponents of the IEEE-754 binary formats.
const (
	float32MinExp = -126
	float64MinExp = -1022
)

// tinyScale multiplies the smallest normal value to obtain the Lentz floor.
const tinyScale = 16

// Descriptor is the static precision profile of a numeric type.
//
//   - Radix  — base of the significand (2 for IEEE binary, 10 for decimal types).
//   - Digits — number of radix digits in the significand.
type Descriptor struct {
	Radix  int
	Digits int
}

// PrecisionDigits converts the raw digit count into the exponent used to size
// convergence factors.
//
//   - radix 2  → Digits
//   - radix 10 → ((Digits+1)/1000)/30 (integer division)
//   - otherwise ErrUnsupportedRadix
//
// A result below 1 is reported as ErrNoPrecision.
func (d Descriptor) PrecisionDigits() (int, error) {
	var p int
	switch d.Radix {
	case RadixBinary:
		p = d.Digits
	case RadixDecimal:
		p = ((d.Digits + 1) / 1000) / 30
	default:
		return 0, fmt.Errorf("radix %d: %w", d.Radix, ErrUnsupportedRadix)
	}
	if p < 1 {
		return 0, fmt.Errorf("radix %d, %d digits: %w", d.Radix, d.Digits, ErrNoPrecision)
	}

	return p, nil
}

// String renders the descriptor as "radix=R digits=D".
func (d Descriptor) String() string {
	return fmt.Sprintf("radix=%d digits=%d", d.Radix, d.Digits)
}

// Of returns the descriptor of the floating-point type T.
// Named types are resolved through their underlying kind.
func Of[T constraints.Float]() Descriptor {
	if isFloat32[T]() {
		return Descriptor{Radix: RadixBinary, Digits: float32Digits}
	}

	return Descriptor{Radix: RadixBinary, Digits: float64Digits}
}

// PrecisionDigits returns Of[T]().PrecisionDigits().
// Native floats are always binary, so an error here is a programmer error and panics.
func PrecisionDigits[T constraints.Float]() int {
	p, err := Of[T]().PrecisionDigits()
	if err != nil {
		panic(err)
	}

	return p
}

// Epsilon returns 2^(1 - Digits), the distance from 1 to the next
// representable value of T.
func Epsilon[T constraints.Float]() T {
	return T(math.Ldexp(1, 1-Of[T]().Digits))
}

// ScaleFactor returns 2^PrecisionDigits[T](), the relative magnitude at which
// a series term no longer changes a running sum of type T.
func ScaleFactor[T constraints.Float]() T {
	return T(math.Ldexp(1, PrecisionDigits[T]()))
}

// Tiny returns 16 times the smallest normal value of T.
// It is strictly positive and far below any legitimate nonzero convergent.
func Tiny[T constraints.Float]() T {
	exp := float64MinExp
	if isFloat32[T]() {
		exp = float32MinExp
	}

	return T(tinyScale * math.Ldexp(1, exp))
}

// isFloat32 reports whether T has float32 as its underlying kind.
func isFloat32[T constraints.Float]() bool {
	return reflect.TypeOf((*T)(nil)).Elem().Kind() == reflect.Float32
}
