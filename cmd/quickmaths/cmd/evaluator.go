// SPDX-License-Identifier: MIT

package cmd

import (
	"math"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/quickmaths/internal/config"
	"github.com/katalvlaran/quickmaths/stats"
)

// evaluator runs the library in the configured precision. Inputs and outputs
// travel as float64; the float32 evaluator rounds inputs on the way in.
type evaluator interface {
	Erf(x float64) result
	Erfc(x float64) result
	CDF(mean, std, x float64) (result, error)
	BitSize() int
}

// result is one evaluated point.
type result struct {
	Func   string  `json:"func" yaml:"func"`
	X      float64 `json:"x" yaml:"x"`
	Value  float64 `json:"value" yaml:"value"`
	Regime string  `json:"regime" yaml:"regime"`
}

type typedEvaluator[T constraints.Float] struct {
	ef      stats.ErrorFunction[T]
	opts    []stats.Option
	bitSize int
}

func newEvaluator(precision string, opts []stats.Option) evaluator {
	if precision == config.PrecisionFloat32 {
		return typedEvaluator[float32]{ef: stats.New[float32](opts...), opts: opts, bitSize: 32}
	}

	return typedEvaluator[float64]{ef: stats.New[float64](opts...), opts: opts, bitSize: 64}
}

func (e typedEvaluator[T]) Erf(x float64) result {
	return result{
		Func:   "erf",
		X:      x,
		Value:  float64(e.ef.Erf(T(x))),
		Regime: stats.RegimeOf(T(x)).String(),
	}
}

func (e typedEvaluator[T]) Erfc(x float64) result {
	return result{
		Func:   "erfc",
		X:      x,
		Value:  float64(e.ef.Erfc(T(x))),
		Regime: stats.RegimeOf(T(x)).String(),
	}
}

func (e typedEvaluator[T]) CDF(mean, std, x float64) (result, error) {
	n, err := stats.NewNormal(T(mean), T(std), e.opts...)
	if err != nil {
		return result{}, err
	}
	arg := (T(mean) - T(x)) / (T(std) * T(math.Sqrt2))

	return result{
		Func:   "cdf",
		X:      x,
		Value:  float64(n.CDF(T(x))),
		Regime: stats.RegimeOf(arg).String(),
	}, nil
}

func (e typedEvaluator[T]) BitSize() int { return e.bitSize }

// formatFloat prints v with the shortest digits that round-trip at bitSize.
func formatFloat(v float64, bitSize int) string {
	return strconv.FormatFloat(v, 'g', -1, bitSize)
}
