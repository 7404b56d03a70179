// SPDX-License-Identifier: MIT

package series

import "github.com/katalvlaran/quickmaths/ratio"

// Harmonic generates the harmonic series 1/i, 1/(i+1), ... as exact ratios.
// It never ends; bound it with Take or a maxIters argument.
type Harmonic struct {
	i int64
}

// NewHarmonic starts the series at 1/start. start must be >= 1.
func NewHarmonic(start int64) *Harmonic {
	if start < 1 {
		panic("series: harmonic start must be >= 1")
	}

	return &Harmonic{i: start}
}

// Next yields 1/i and advances i.
func (h *Harmonic) Next() (ratio.Ratio, bool) {
	r := ratio.New(1, h.i)
	h.i++

	return r, true
}

// Nth skips ahead and returns the n-th term of the series counted from 1,
// i.e. 1/n; subsequent calls to Next continue from 1/(n+1).
func (h *Harmonic) Nth(n int64) ratio.Ratio {
	if n < 1 {
		panic("series: harmonic index must be >= 1")
	}
	h.i = n
	r, _ := h.Next()

	return r
}
