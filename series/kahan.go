// SPDX-License-Identifier: MIT

package series

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/quickmaths/digits"
)

// KahanSum is compensated summation with a precision-relative stop rule.
//
// Algorithm:
//  1. The first term seeds the running sum; an empty sequence sums to 0.
//  2. carry starts at 0.
//  3. For each further term t:
//     y     = t - carry
//     next  = sum + y
//     carry = (next - sum) - y
//     sum   = next
//  4. Stop once |sum| >= ScaleFactor[T]() * |t|: the term fell below the
//     last representable digit of the sum. maxIters > 0 also caps the number
//     of terms pulled, the first one included.
//
// The threshold comes from the precision of T itself, so the same call is
// exact to the last digit for float32 and float64 alike.
//
// Complexity: O(k) for k terms pulled, O(1) memory.
func KahanSum[T constraints.Float](seq Sequence[T], maxIters int) T {
	seq = Take(seq, maxIters)

	sum, ok := seq.Next()
	if !ok {
		return 0
	}

	var (
		carry  T
		next   T
		y      T
		factor = digits.ScaleFactor[T]()
	)
	for {
		t, ok := seq.Next()
		if !ok {
			break
		}
		y = t - carry
		next = sum + y
		carry = (next - sum) - y
		sum = next

		if abs(sum) >= abs(factor*t) {
			break
		}
	}

	return sum
}

// Sum is KahanSum over a fixed list of terms, with no iteration cap.
func Sum[T constraints.Float](terms ...T) T {
	return KahanSum(FromSlice(terms...), 0)
}

func abs[T constraints.Float](x T) T {
	if x < 0 {
		return -x
	}

	return x
}
