// SPDX-License-Identifier: MIT

package stats

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by the stats package.
var (
	// ErrBadMaxIters indicates a non-positive iteration cap.
	ErrBadMaxIters = errors.New("stats: iteration cap must be positive")

	// ErrBadStdDeviation indicates a standard deviation that is not a finite,
	// strictly positive number.
	ErrBadStdDeviation = errors.New("stats: standard deviation must be finite and > 0")

	// ErrBadMean indicates a NaN or infinite mean.
	ErrBadMean = errors.New("stats: mean must be finite")
)

// Default iteration caps. Both are finite so a pathological input that never
// meets its convergence test still returns.
const (
	DefaultSumMaxIters      = 1_000_000
	DefaultFractionMaxIters = 1_000_000
)

// Regime identifies the algorithm the dispatcher uses for |x|.
type Regime int

const (
	// RegimeSeries sums the Maclaurin series of erf, |x| < 13/10.
	RegimeSeries Regime = iota

	// RegimeFraction evaluates erfc by the incomplete-gamma continued fraction.
	RegimeFraction

	// RegimeAsymptotic uses the leading asymptotic term of erfc, x² > 1/ε.
	RegimeAsymptotic
)

// String returns the lower-case regime name.
func (r Regime) String() string {
	switch r {
	case RegimeSeries:
		return "series"
	case RegimeFraction:
		return "fraction"
	case RegimeAsymptotic:
		return "asymptotic"
	default:
		return "unknown"
	}
}

// Options configures an ErrorFunction.
//
//   - SumMaxIters      — caps the power-series term count (default 1_000_000).
//   - FractionMaxIters — caps the continued-fraction term count (default 1_000_000).
type Options struct {
	SumMaxIters      int
	FractionMaxIters int
}

// Option represents a functional option for configuring an ErrorFunction.
type Option func(*Options)

// WithSumMaxIters caps the number of power-series terms.
// Non-positive values are a programmer error and panic with ErrBadMaxIters.
func WithSumMaxIters(n int) Option {
	if n <= 0 {
		panic(ErrBadMaxIters.Error())
	}

	return func(o *Options) {
		o.SumMaxIters = n
	}
}

// WithFractionMaxIters caps the number of continued-fraction terms.
// Non-positive values are a programmer error and panic with ErrBadMaxIters.
func WithFractionMaxIters(n int) Option {
	if n <= 0 {
		panic(ErrBadMaxIters.Error())
	}

	return func(o *Options) {
		o.FractionMaxIters = n
	}
}

// DefaultOptions returns Options with both caps at their documented defaults.
func DefaultOptions() Options {
	return Options{
		SumMaxIters:      DefaultSumMaxIters,
		FractionMaxIters: DefaultFractionMaxIters,
	}
}

// Validate reports ErrBadMaxIters when either cap is not positive.
func (o Options) Validate() error {
	if o.SumMaxIters <= 0 || o.FractionMaxIters <= 0 {
		return ErrBadMaxIters
	}

	return nil
}

// Distribution is a univariate distribution with a cumulative distribution function.
type Distribution[T constraints.Float] interface {
	CDF(x T) T
}
