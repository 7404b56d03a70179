// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/quickmaths/ratio"
)

// NormalDistribution is the Gaussian distribution N(mean, stdDeviation²).
// Its parameters are fixed at construction.
type NormalDistribution[T constraints.Float] struct {
	mean         T
	stdDeviation T
	erf          ErrorFunction[T]
}

// NewNormal returns N(mean, stdDeviation²) evaluated with an ErrorFunction
// built from opts.
//
// Errors:
//   - ErrBadMean          if mean is NaN or infinite.
//   - ErrBadStdDeviation  if stdDeviation is not finite and > 0.
func NewNormal[T constraints.Float](mean, stdDeviation T, opts ...Option) (*NormalDistribution[T], error) {
	if !isFinite(mean) {
		return nil, fmt.Errorf("mean %v: %w", mean, ErrBadMean)
	}
	if !isFinite(stdDeviation) || stdDeviation <= 0 {
		return nil, fmt.Errorf("std deviation %v: %w", stdDeviation, ErrBadStdDeviation)
	}

	return &NormalDistribution[T]{
		mean:         mean,
		stdDeviation: stdDeviation,
		erf:          New[T](opts...),
	}, nil
}

// MustNormal is NewNormal that panics on invalid parameters.
func MustNormal[T constraints.Float](mean, stdDeviation T, opts ...Option) *NormalDistribution[T] {
	n, err := NewNormal(mean, stdDeviation, opts...)
	if err != nil {
		panic(err)
	}

	return n
}

// StandardNormal returns N(0, 1).
func StandardNormal[T constraints.Float]() *NormalDistribution[T] {
	return &NormalDistribution[T]{stdDeviation: 1, erf: New[T]()}
}

// Mean returns the location parameter.
func (n *NormalDistribution[T]) Mean() T { return n.mean }

// StdDeviation returns the scale parameter.
func (n *NormalDistribution[T]) StdDeviation() T { return n.stdDeviation }

// CDF returns P(X <= x) = 1/2 · erfc((mean - x) / (stdDeviation·√2)).
func (n *NormalDistribution[T]) CDF(x T) T {
	return n.CDFWith(x, n.erf)
}

// CDFWith is CDF evaluated through ef instead of the distribution's own
// ErrorFunction.
func (n *NormalDistribution[T]) CDFWith(x T, ef ErrorFunction[T]) T {
	return ratio.Float[T](half) * ef.Erfc((n.mean-x)/(n.stdDeviation*T(math.Sqrt2)))
}

// Survival returns P(X > x) = 1/2 · erfc((x - mean) / (stdDeviation·√2)),
// accurate in the upper tail where 1 - CDF(x) would cancel.
func (n *NormalDistribution[T]) Survival(x T) T {
	return ratio.Float[T](half) * n.erf.Erfc((x-n.mean)/(n.stdDeviation*T(math.Sqrt2)))
}

// isFinite reports whether x is neither NaN nor infinite.
func isFinite[T constraints.Float](x T) bool {
	return x-x == 0
}

var _ Distribution[float64] = (*NormalDistribution[float64])(nil)
