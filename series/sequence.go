// SPDX-License-Identifier: MIT

package series

// Sequence is a pull-based, possibly infinite stream of terms.
// Next returns the next term and true, or the zero value and false once the
// sequence is exhausted. A Sequence is consumed as it is read and cannot be
// rewound; build a fresh one for every evaluation.
type Sequence[E any] interface {
	Next() (E, bool)
}

// Func adapts a generator closure to Sequence.
type Func[E any] func() (E, bool)

// Next calls f.
func (f Func[E]) Next() (E, bool) { return f() }

// FromFunc wraps an infinite generator: every call to gen yields one term.
func FromFunc[E any](gen func() E) Sequence[E] {
	return Func[E](func() (E, bool) { return gen(), true })
}

// sliceSeq walks a slice front to back.
type sliceSeq[E any] struct {
	items []E
	pos   int
}

func (s *sliceSeq[E]) Next() (E, bool) {
	var zero E
	if s.pos >= len(s.items) {
		return zero, false
	}
	e := s.items[s.pos]
	s.pos++

	return e, true
}

// FromSlice returns a finite sequence over items. The slice is not copied.
func FromSlice[E any](items ...E) Sequence[E] {
	return &sliceSeq[E]{items: items}
}

// takeSeq stops after limit terms.
type takeSeq[E any] struct {
	src   Sequence[E]
	limit int
	taken int
}

func (s *takeSeq[E]) Next() (E, bool) {
	var zero E
	if s.taken >= s.limit {
		return zero, false
	}
	e, ok := s.src.Next()
	if !ok {
		s.taken = s.limit
		return zero, false
	}
	s.taken++

	return e, true
}

// Take yields at most n terms of src. n <= 0 returns src unchanged.
func Take[E any](src Sequence[E], n int) Sequence[E] {
	if n <= 0 {
		return src
	}

	return &takeSeq[E]{src: src, limit: n}
}

// Map converts every term of src with f, lazily.
func Map[E, F any](src Sequence[E], f func(E) F) Sequence[F] {
	return Func[F](func() (F, bool) {
		e, ok := src.Next()
		if !ok {
			var zero F
			return zero, false
		}

		return f(e), true
	})
}
