// SPDX-License-Identifier: MIT

package stats_test

import (
	"testing"

	"github.com/katalvlaran/quickmaths/stats"
)

var sink float64

func benchmarkErf(b *testing.B, x float64) {
	ef := stats.New[float64]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = ef.Erf(x)
	}
}

// BenchmarkErf_Series stays below the 13/10 threshold.
func BenchmarkErf_Series(b *testing.B) { benchmarkErf(b, 0.9) }

// BenchmarkErf_FractionNear sits just above the threshold, where the fraction converges slowest.
func BenchmarkErf_FractionNear(b *testing.B) { benchmarkErf(b, 1.3) }

// BenchmarkErf_FractionFar converges in few terms.
func BenchmarkErf_FractionFar(b *testing.B) { benchmarkErf(b, 6) }

// BenchmarkErf_Asymptotic uses the closed-form tail.
func BenchmarkErf_Asymptotic(b *testing.B) { benchmarkErf(b, 1e9) }

// BenchmarkNormal_CDF evaluates a standard-normal CDF over a sweep of inputs.
func BenchmarkNormal_CDF(b *testing.B) {
	n := stats.StandardNormal[float64]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = n.CDF(float64(i%80)/10 - 4)
	}
}
