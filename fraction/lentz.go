// SPDX-License-Identifier: MIT

package fraction

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/quickmaths/digits"
	"github.com/katalvlaran/quickmaths/series"
)

// ErrEmptySequence is returned when a continued fraction yields no terms.
// A zero-term continued fraction has no value, so no default is substituted.
var ErrEmptySequence = errors.New("fraction: term sequence is empty")

// Term is one partial numerator/denominator pair of a continued fraction.
type Term[T constraints.Float] struct {
	Numer T
	Denom T
}

// Sequence is the pull-based source of terms consumed by Evaluate.
// Every series.Sequence[Term[T]] satisfies it.
type Sequence[T constraints.Float] interface {
	Next() (Term[T], bool)
}

// FromTerms returns a finite term sequence.
func FromTerms[T constraints.Float](terms ...Term[T]) Sequence[T] {
	return series.FromSlice(terms...)
}

// Evaluate computes, by the modified Lentz method,
//
//	a1 / (b1 + a2 / (b2 + a3 / (b3 + ...)))
//
// where the k-th term is (Numer=a_k, Denom=b_k).
//
// Algorithm:
//  1. Pull (a1, b1). f = b1, replaced by Tiny[T]() when exactly zero.
//     C = f, D = 0.
//  2. For every further (a, b):
//     D = b + a·D   (Tiny if zero), D = 1/D
//     C = b + a/C   (Tiny if zero)
//     delta = C·D, f *= delta
//  3. Stop when |delta - 1| <= |factor|, or after maxIters terms have been
//     pulled (the first one included; maxIters <= 0 means no cap).
//  4. Return a1 / f.
//
// The tiny floor keeps an exact zero from poisoning every later convergent;
// it is never applied to a nonzero value.
//
// Errors:
//   - ErrEmptySequence if seq yields no term at all.
//
// Complexity: O(k) for k terms pulled, O(1) memory.
func Evaluate[T constraints.Float](seq Sequence[T], factor T, maxIters int) (T, error) {
	seq = series.Take[Term[T]](seq, maxIters)

	first, ok := seq.Next()
	if !ok {
		return 0, ErrEmptySequence
	}

	var (
		tiny       = digits.Tiny[T]()
		terminator = factor
		a0         = first.Numer
		f          = first.Denom
		c, d       T
		delta      T
	)
	if terminator < 0 {
		terminator = -terminator
	}
	if f == 0 {
		f = tiny
	}
	c = f

	for {
		v, ok := seq.Next()
		if !ok {
			break
		}

		d = v.Denom + v.Numer*d
		if d == 0 {
			d = tiny
		}
		c = v.Denom + v.Numer/c
		if c == 0 {
			c = tiny
		}
		d = 1 / d

		delta = c * d
		f *= delta

		if abs(delta-1) <= terminator {
			break
		}
	}

	return a0 / f, nil
}

func abs[T constraints.Float](x T) T {
	if x < 0 {
		return -x
	}

	return x
}
