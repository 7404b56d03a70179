// SPDX-License-Identifier: MIT

package stats_test

import (
	"fmt"

	"github.com/katalvlaran/quickmaths/stats"
)

// ExampleErf evaluates erf and erfc with default options.
func ExampleErf() {
	fmt.Printf("erf(0.5)  = %.10f\n", stats.Erf(0.5))
	fmt.Printf("erfc(2)   = %.10e\n", stats.Erfc(2.0))
	fmt.Printf("erf(-0.5) = %.10f\n", stats.Erf(-0.5))
	// Output:
	// erf(0.5)  = 0.5204998778
	// erfc(2)   = 4.6777349810e-03
	// erf(-0.5) = -0.5204998778
}

// ExampleRegimeOf shows which algorithm serves each magnitude.
func ExampleRegimeOf() {
	for _, x := range []float64{0.5, 3, 1e9} {
		fmt.Println(x, stats.RegimeOf(x))
	}
	// Output:
	// 0.5 series
	// 3 fraction
	// 1e+09 asymptotic
}

// ExampleNewNormal builds N(100, 15²) and reads off a tail probability.
func ExampleNewNormal() {
	n, err := stats.NewNormal(100.0, 15.0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("P(X <= 100) = %.2f\n", n.CDF(100))
	fmt.Printf("P(X > 130)  = %.5f\n", n.Survival(130))

	_, err = stats.NewNormal(0.0, -1.0)
	fmt.Println(err)
	// Output:
	// P(X <= 100) = 0.50
	// P(X > 130)  = 0.02275
	// std deviation -1: stats: standard deviation must be finite and > 0
}

// ExampleNew configures tighter iteration caps for float32 evaluation.
func ExampleNew() {
	ef := stats.New[float32](stats.WithSumMaxIters(64), stats.WithFractionMaxIters(256))

	fmt.Printf("%.5f\n", ef.Erf(1))
	// Output: 0.84270
}
