// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/quickmaths/digits"
	"github.com/katalvlaran/quickmaths/fraction"
	"github.com/katalvlaran/quickmaths/ratio"
	"github.com/katalvlaran/quickmaths/series"
)

// Regime boundaries and constants, as exact ratios where they are rational.
var (
	seriesThreshold = ratio.New(13, 10)
	half            = ratio.New(1, 2)
)

// ErrorFunction evaluates erf and erfc for the floating-point type T.
// The zero value uses DefaultOptions.
type ErrorFunction[T constraints.Float] struct {
	opts Options
}

// New returns an ErrorFunction configured by opts on top of DefaultOptions.
func New[T constraints.Float](opts ...Option) ErrorFunction[T] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return ErrorFunction[T]{opts: o}
}

// NewFromOptions returns an ErrorFunction using o as is.
// It returns ErrBadMaxIters when a cap is not positive.
func NewFromOptions[T constraints.Float](o Options) (ErrorFunction[T], error) {
	if err := o.Validate(); err != nil {
		return ErrorFunction[T]{}, err
	}

	return ErrorFunction[T]{opts: o}, nil
}

// Options returns the effective configuration.
func (e ErrorFunction[T]) Options() Options {
	if e.opts == (Options{}) {
		return DefaultOptions()
	}

	return e.opts
}

// Erf returns the error function of x.
func (e ErrorFunction[T]) Erf(x T) T { return e.Eval(x, false) }

// Erfc returns the complementary error function 1 - erf(x), computed
// directly where 1 - erf(x) would cancel.
func (e ErrorFunction[T]) Erfc(x T) T { return e.Eval(x, true) }

// Eval returns erf(x) when invert is false and erfc(x) when invert is true.
//
// Regimes (x ≥ 0, see RegimeOf):
//   - x < 13/10:  erf = 2/√π · Σ (-1)^k x^(2k+1) / (k!(2k+1)), Kahan-summed.
//   - x² > 1/ε:   erfc ≈ e^(-x²) / (√π·x); invert flips.
//   - otherwise:  erfc = x·e^(-x²)/√π · UpperGamma(1/2, x²); invert flips.
//
// The result r of the chosen branch is returned as 1 - r when invert is set,
// so erf(x) + erfc(x) = 1 holds by construction.
//
// Negative x is reflected: erf(-x) = -erf(x), erfc(-x) = 1 + erf(x).
// NaN is returned unchanged; ±Inf yields ±1 (erf) and 0 or 2 (erfc).
func (e ErrorFunction[T]) Eval(x T, invert bool) T {
	if x != x {
		return x
	}
	if x < 0 {
		r := -e.Eval(-x, false)
		if invert {
			return 1 - r
		}

		return r
	}

	var result T
	switch RegimeOf(x) {
	case RegimeSeries:
		result = e.seriesErf(x)
	case RegimeAsymptotic:
		invert = !invert
		result = exp(-x*x) / (T(math.SqrtPi) * x)
	default:
		invert = !invert
		result = e.fractionErfc(x)
	}

	if invert {
		return 1 - result
	}

	return result
}

// RegimeOf reports which branch Eval takes for x (by magnitude).
// The boundaries are fixed: 13/10 for the series, x² > 1/ε for the asymptote.
func RegimeOf[T constraints.Float](x T) Regime {
	if x < 0 {
		x = -x
	}
	if x < ratio.Float[T](seriesThreshold) {
		return RegimeSeries
	}
	if x*x > 1/digits.Epsilon[T]() {
		return RegimeAsymptotic
	}

	return RegimeFraction
}

// seriesErf sums the Maclaurin expansion of erf:
// term_0 = x, term_{k+1} = term_k · (-x²)/(k+1), each divided by 2k+1.
func (e ErrorFunction[T]) seriesErf(x T) T {
	var (
		k    T
		term = x
		zz   = -x * x
	)
	seq := series.FromFunc(func() T {
		r := term / (2*k + 1)
		k++
		term *= zz / k

		return r
	})

	return T(2/math.SqrtPi) * series.KahanSum(seq, e.Options().SumMaxIters)
}

// fractionErfc evaluates erfc through the continued fraction of Γ(1/2, x²).
func (e ErrorFunction[T]) fractionErfc(x T) T {
	z := x * x
	kernel, err := fraction.UpperGamma(ratio.Float[T](half), z, digits.Epsilon[T](), e.Options().FractionMaxIters)
	if err != nil {
		// UpperGammaFraction never runs dry; reaching this is a bug.
		panic(fmt.Sprintf("stats: erfc fraction: %v", err))
	}

	return x * exp(-z) / T(math.SqrtPi) * kernel
}

// Erf returns erf(x) with DefaultOptions.
func Erf[T constraints.Float](x T) T {
	return ErrorFunction[T]{}.Erf(x)
}

// Erfc returns erfc(x) with DefaultOptions.
func Erfc[T constraints.Float](x T) T {
	return ErrorFunction[T]{}.Erfc(x)
}

func exp[T constraints.Float](x T) T {
	return T(math.Exp(float64(x)))
}
