// SPDX-License-Identifier: MIT

package fraction_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mathext"

	"github.com/katalvlaran/quickmaths/digits"
	"github.com/katalvlaran/quickmaths/fraction"
	"github.com/katalvlaran/quickmaths/series"
)

// constantTerms repeats (numer, denom) forever.
func constantTerms(numer, denom float64) fraction.Sequence[float64] {
	return series.FromFunc(func() fraction.Term[float64] {
		return fraction.Term[float64]{Numer: numer, Denom: denom}
	})
}

func TestEvaluate_EmptySequence(t *testing.T) {
	v, err := fraction.Evaluate[float64](fraction.FromTerms[float64](), 1e-15, 100)
	assert.ErrorIs(t, err, fraction.ErrEmptySequence)
	assert.Equal(t, 0.0, v)
}

func TestEvaluate_SqrtTwoMinusOne(t *testing.T) {
	// sqrt(2) - 1 = 1/(2 + 1/(2 + 1/(2 + ...)))
	const factor = 1e-15
	v, err := fraction.Evaluate(constantTerms(1, 2), factor, 1000)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2-1, v, 4*factor)
}

func TestEvaluate_GoldenRatio(t *testing.T) {
	// 1/phi = 1/(1 + 1/(1 + ...))
	v, err := fraction.Evaluate(constantTerms(1, 1), digits.Epsilon[float64](), 1000)
	require.NoError(t, err)
	assert.InDelta(t, 2/(1+math.Sqrt(5)), v, 4e-15)
}

func TestEvaluate_FiniteFraction(t *testing.T) {
	// 1/(2 + 1/(2 + 1/2)) = 5/12
	seq := fraction.FromTerms(
		fraction.Term[float64]{Numer: 1, Denom: 2},
		fraction.Term[float64]{Numer: 1, Denom: 2},
		fraction.Term[float64]{Numer: 1, Denom: 2},
	)
	v, err := fraction.Evaluate(seq, 0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 5.0/12.0, v, 1e-15)
}

func TestEvaluate_ZeroLeadingDenominatorUsesTiny(t *testing.T) {
	// 1/(0 + 1/1) = 1; the zero leading denominator must not divide by zero.
	seq := fraction.FromTerms(
		fraction.Term[float64]{Numer: 1, Denom: 0},
		fraction.Term[float64]{Numer: 1, Denom: 1},
	)
	v, err := fraction.Evaluate(seq, 1e-15, 0)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	assert.InDelta(t, 1.0, v, 1e-12)
}

func TestEvaluate_MaxItersCaps(t *testing.T) {
	// With a single term the value is a1/b1.
	v, err := fraction.Evaluate(constantTerms(1, 2), 1e-15, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)

	// Two terms: 1/(2 + 1/2) = 0.4
	v, err = fraction.Evaluate(constantTerms(1, 2), 1e-15, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, v, 1e-15)
}

func TestEvaluate_NegativeFactorUsesMagnitude(t *testing.T) {
	pos, err := fraction.Evaluate(constantTerms(1, 2), 1e-10, 1000)
	require.NoError(t, err)
	neg, err := fraction.Evaluate(constantTerms(1, 2), -1e-10, 1000)
	require.NoError(t, err)
	assert.Equal(t, pos, neg)
}

func TestUpperGammaFraction_Terms(t *testing.T) {
	g := fraction.NewUpperGammaFraction(0.5, 4.0)

	first, ok := g.Next()
	require.True(t, ok)
	assert.Equal(t, fraction.Term[float64]{Numer: -0.5, Denom: 6.5}, first)

	second, ok := g.Next()
	require.True(t, ok)
	assert.Equal(t, fraction.Term[float64]{Numer: -3, Denom: 8.5}, second)

	third, _ := g.Next()
	assert.Equal(t, fraction.Term[float64]{Numer: -7.5, Denom: 10.5}, third)
}

func TestUpperGamma_MatchesRegularizedComplement(t *testing.T) {
	tests := []struct {
		a, z float64
	}{
		{0.5, 1.69},
		{0.5, 4},
		{0.5, 25},
		{1, 3},
		{2.5, 6},
		{4, 10},
	}

	for _, tt := range tests {
		kernel, err := fraction.UpperGamma(tt.a, tt.z, digits.Epsilon[float64](), 1_000_000)
		require.NoError(t, err)

		// Q(a, z) = z^a e^-z / Γ(a) · kernel
		got := math.Pow(tt.z, tt.a) * math.Exp(-tt.z) / math.Gamma(tt.a) * kernel
		want := mathext.GammaIncRegComp(tt.a, tt.z)
		assert.InEpsilon(t, want, got, 1e-12, "a=%g z=%g", tt.a, tt.z)
	}
}

func TestUpperGamma_IntegerShapeIsExponential(t *testing.T) {
	// a = 1 zeroes the first numerator, leaving 1/z: Γ(1, z) = e^-z.
	kernel, err := fraction.UpperGamma(1.0, 3.0, digits.Epsilon[float64](), 100)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, kernel, 1e-15)
}

func TestUpperGamma_Float32(t *testing.T) {
	k64, err := fraction.UpperGamma(0.5, 4.0, digits.Epsilon[float64](), 1000)
	require.NoError(t, err)
	k32, err := fraction.UpperGamma[float32](0.5, 4, digits.Epsilon[float32](), 1000)
	require.NoError(t, err)
	assert.InEpsilon(t, k64, float64(k32), 1e-6)
}
