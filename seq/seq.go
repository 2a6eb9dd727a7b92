package seq

import "iter"

// Cursor provides pull-based sequential access to a stream of values.
type Cursor[T any] interface {
	// Next returns the next value. Returns (zero, false) when exhausted.
	Next() (T, bool)
}

// Seq is a single-use, stateful node in a lazy chain. It wraps a Cursor
// with a one-slot look-ahead buffer so any node can be peeked without
// consuming. A Seq exclusively owns its upstream; it must not be shared
// between two independent chains (use Clone for that).
type Seq[T any] struct {
	cur      Cursor[T]
	buffered bool
	bufVal   T
	bufOK    bool
}

// Next returns the next value, consuming it. Returns (zero, false) once
// the chain is exhausted.
func (s *Seq[T]) Next() (T, bool) {
	if s.buffered {
		s.buffered = false
		v, ok := s.bufVal, s.bufOK
		var zero T
		s.bufVal = zero
		return v, ok
	}
	return s.cur.Next()
}

// Peek returns the next value without consuming it. Idempotent: repeated
// peeks before the next call to Next return the same buffered result.
func (s *Seq[T]) Peek() (T, bool) {
	if !s.buffered {
		s.bufVal, s.bufOK = s.cur.Next()
		s.buffered = true
	}
	return s.bufVal, s.bufOK
}

// Pair holds two values of independent types. Produced by Zip and consumed
// by Unzip and the keyed-map collector.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple holds three values of independent types. Produced by Zip3.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// --- Constructors ---

// From wraps an existing pull-capable cursor.
func From[T any](c Cursor[T]) *Seq[T] {
	return &Seq[T]{cur: c}
}

// FromNext wraps a bare pull function.
func FromNext[T any](fn func() (T, bool)) *Seq[T] {
	return From[T](cursorFunc[T](fn))
}

// FromSlice pulls through the items of a slice.
func FromSlice[T any](items []T) *Seq[T] {
	return From[T](&sliceCursor[T]{items: items})
}

// Of pulls through a fixed explicit list.
func Of[T any](items ...T) *Seq[T] {
	return FromSlice(items)
}

// FromSeq adapts a standard push-style iter.Seq into a pull chain.
func FromSeq[T any](src iter.Seq[T]) *Seq[T] {
	next, stop := iter.Pull(src)
	return FromNext(func() (T, bool) {
		v, ok := next()
		if !ok {
			stop()
		}
		return v, ok
	})
}

// All exposes the remaining values as a standard iter.Seq, suitable for
// range-over-func. Pulling resumes from the current position.
func (s *Seq[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := s.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// --- Internal cursors ---

type cursorFunc[T any] func() (T, bool)

func (f cursorFunc[T]) Next() (T, bool) { return f() }

type sliceCursor[T any] struct {
	items []T
	index int
}

func (c *sliceCursor[T]) Next() (T, bool) {
	if c.index >= len(c.items) {
		var zero T
		return zero, false
	}
	v := c.items[c.index]
	c.index++
	return v, true
}
