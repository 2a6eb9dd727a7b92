package seq

import (
	"cmp"

	"github.com/kbukum/seqkit/errors"
)

// Addable covers every type the + operator folds: numerics sum, strings
// concatenate.
type Addable interface {
	Real | ~string
}

// At pulls i+1 values and returns the last one. Returns (zero, false) if
// the chain is exhausted before reaching position i, or if i is negative.
func At[T any](s *Seq[T], i int) (T, bool) {
	var zero T
	if i < 0 {
		return zero, false
	}
	for ; i > 0; i-- {
		if _, ok := s.Next(); !ok {
			return zero, false
		}
	}
	return s.Next()
}

// Fold drives the chain to exhaustion, threading the accumulator through
// fn. An empty chain returns the seed unchanged.
func Fold[T, A any](s *Seq[T], seed A, fn func(A, T) A) A {
	acc := seed
	for {
		v, ok := s.Next()
		if !ok {
			return acc
		}
		acc = fn(acc, v)
	}
}

// Reduce is Fold seeded with the first pulled value. An empty chain cannot
// seed the accumulator and yields an EMPTY_SEQUENCE error.
func Reduce[T any](s *Seq[T], fn func(T, T) T) (T, error) {
	acc, ok := s.Next()
	if !ok {
		var zero T
		return zero, errors.EmptySequence("reduce of an empty sequence with no initial value")
	}
	for {
		v, ok := s.Next()
		if !ok {
			return acc, nil
		}
		acc = fn(acc, v)
	}
}

// And folds with logical AND. An empty chain yields true, the identity.
func And(s *Seq[bool]) bool {
	acc := true
	for {
		v, ok := s.Next()
		if !ok {
			return acc
		}
		acc = acc && v
	}
}

// Or folds with logical OR. An empty chain yields false, the identity.
func Or(s *Seq[bool]) bool {
	acc := false
	for {
		v, ok := s.Next()
		if !ok {
			return acc
		}
		acc = acc || v
	}
}

// Sum folds with + starting at the zero value: 0 for numerics, "" for
// strings (concatenation).
func Sum[T Addable](s *Seq[T]) T {
	var acc T
	for {
		v, ok := s.Next()
		if !ok {
			return acc
		}
		acc = acc + v
	}
}

// Product folds with * starting at 1.
func Product[T Real](s *Seq[T]) T {
	acc := T(1)
	for {
		v, ok := s.Next()
		if !ok {
			return acc
		}
		acc = acc * v
	}
}

// Count pulls the chain to exhaustion and reports how many values it held.
func Count[T any](s *Seq[T]) int {
	n := 0
	for {
		if _, ok := s.Next(); !ok {
			return n
		}
		n++
	}
}

// Find returns the first value satisfying the predicate, pulling no
// further than the match.
func Find[T any](s *Seq[T], fn func(T) bool) (T, bool) {
	for {
		v, ok := s.Next()
		if !ok {
			var zero T
			return zero, false
		}
		if fn(v) {
			return v, true
		}
	}
}

// FindIndex returns the zero-based position of the first value satisfying
// the predicate, or -1 if the chain exhausts first.
func FindIndex[T any](s *Seq[T], fn func(T) bool) int {
	for i := 0; ; i++ {
		v, ok := s.Next()
		if !ok {
			return -1
		}
		if fn(v) {
			return i
		}
	}
}

// Some reports whether any value satisfies the predicate, stopping at the
// first hit.
func Some[T any](s *Seq[T], fn func(T) bool) bool {
	_, ok := Find(s, fn)
	return ok
}

// Every reports whether all values satisfy the predicate, stopping at the
// first miss. An empty chain reports true.
func Every[T any](s *Seq[T], fn func(T) bool) bool {
	for {
		v, ok := s.Next()
		if !ok {
			return true
		}
		if !fn(v) {
			return false
		}
	}
}

// Includes reports whether the chain holds target under the Same value
// identity, stopping at the first hit.
func Includes[T comparable](s *Seq[T], target T) bool {
	return Some(s, func(v T) bool { return Same(v, target) })
}

// Max returns the largest value, or (zero, false) on an empty chain. Ties
// keep the earliest value: only a strictly greater one replaces the
// running best.
func Max[T cmp.Ordered](s *Seq[T]) (T, bool) {
	return MaxKey(s, func(v T) T { return v })
}

// Min returns the smallest value, or (zero, false) on an empty chain.
// Ties keep the earliest value.
func Min[T cmp.Ordered](s *Seq[T]) (T, bool) {
	return MinKey(s, func(v T) T { return v })
}

// MaxKey returns the value with the largest key, earliest wins ties.
func MaxKey[T any, K cmp.Ordered](s *Seq[T], key func(T) K) (T, bool) {
	best, ok := s.Next()
	if !ok {
		var zero T
		return zero, false
	}
	bestKey := key(best)
	for {
		v, ok := s.Next()
		if !ok {
			return best, true
		}
		if k := key(v); k > bestKey {
			best, bestKey = v, k
		}
	}
}

// MinKey returns the value with the smallest key, earliest wins ties.
func MinKey[T any, K cmp.Ordered](s *Seq[T], key func(T) K) (T, bool) {
	best, ok := s.Next()
	if !ok {
		var zero T
		return zero, false
	}
	bestKey := key(best)
	for {
		v, ok := s.Next()
		if !ok {
			return best, true
		}
		if k := key(v); k < bestKey {
			best, bestKey = v, k
		}
	}
}

// MaxBy returns the largest value under a three-way comparator, earliest
// wins ties.
func MaxBy[T any](s *Seq[T], compare func(a, b T) int) (T, bool) {
	best, ok := s.Next()
	if !ok {
		var zero T
		return zero, false
	}
	for {
		v, ok := s.Next()
		if !ok {
			return best, true
		}
		if compare(v, best) > 0 {
			best = v
		}
	}
}

// MinBy returns the smallest value under a three-way comparator, earliest
// wins ties.
func MinBy[T any](s *Seq[T], compare func(a, b T) int) (T, bool) {
	best, ok := s.Next()
	if !ok {
		var zero T
		return zero, false
	}
	for {
		v, ok := s.Next()
		if !ok {
			return best, true
		}
		if compare(v, best) < 0 {
			best = v
		}
	}
}
