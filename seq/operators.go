package seq

// Map transforms each value using fn.
func Map[I, O any](s *Seq[I], fn func(I) O) *Seq[O] {
	return From[O](&mapCursor[I, O]{source: s, fn: fn})
}

// Filter keeps only values that satisfy the predicate.
func Filter[T any](s *Seq[T], fn func(T) bool) *Seq[T] {
	return From[T](&filterCursor[T]{source: s, fn: fn})
}

// Each calls fn as a side effect for each pulled value, then passes the
// value through unchanged. fn is not called when the upstream is exhausted.
func Each[T any](s *Seq[T], fn func(T)) *Seq[T] {
	return From[T](&eachCursor[T]{source: s, fn: fn})
}

// Scan yields a running accumulation: for each upstream value the
// accumulator is updated with fn and the new state is yielded. Unlike
// Fold, every intermediate state is observable, so Scan composes with
// infinite sources.
func Scan[T, A any](s *Seq[T], seed A, fn func(A, T) A) *Seq[A] {
	return From[A](&scanCursor[T, A]{source: s, acc: seed, fn: fn})
}

// Scan1 is Scan without a seed: the first upstream value becomes the first
// yielded accumulator state, with no fn application on it.
func Scan1[T any](s *Seq[T], fn func(T, T) T) *Seq[T] {
	return From[T](&scan1Cursor[T]{source: s, fn: fn})
}

// FlatMap applies fn to each value and drains the resulting sequence fully
// before advancing. A nil result is treated as empty.
func FlatMap[I, O any](s *Seq[I], fn func(I) *Seq[O]) *Seq[O] {
	return From[O](&flatMapCursor[I, O]{source: s, fn: fn})
}

// Flatten drains each inner sequence in order, one level deep. Apply it
// repeatedly to flatten deeper nesting.
func Flatten[T any](s *Seq[*Seq[T]]) *Seq[T] {
	return FlatMap(s, func(inner *Seq[T]) *Seq[T] { return inner })
}

// FlattenSlice drains each inner slice in order.
func FlattenSlice[T any](s *Seq[[]T]) *Seq[T] {
	return From[T](&flattenSliceCursor[T]{source: s})
}

// --- Internal cursors ---

type mapCursor[I, O any] struct {
	source *Seq[I]
	fn     func(I) O
}

func (c *mapCursor[I, O]) Next() (O, bool) {
	v, ok := c.source.Next()
	if !ok {
		var zero O
		return zero, false
	}
	return c.fn(v), true
}

type filterCursor[T any] struct {
	source *Seq[T]
	fn     func(T) bool
}

// Iterative retry: a long run of rejected values must not grow the stack.
func (c *filterCursor[T]) Next() (T, bool) {
	for {
		v, ok := c.source.Next()
		if !ok {
			var zero T
			return zero, false
		}
		if c.fn(v) {
			return v, true
		}
	}
}

type eachCursor[T any] struct {
	source *Seq[T]
	fn     func(T)
}

func (c *eachCursor[T]) Next() (T, bool) {
	v, ok := c.source.Next()
	if !ok {
		var zero T
		return zero, false
	}
	c.fn(v)
	return v, true
}

type scanCursor[T, A any] struct {
	source *Seq[T]
	acc    A
	fn     func(A, T) A
}

func (c *scanCursor[T, A]) Next() (A, bool) {
	v, ok := c.source.Next()
	if !ok {
		var zero A
		return zero, false
	}
	c.acc = c.fn(c.acc, v)
	return c.acc, true
}

type scan1Cursor[T any] struct {
	source *Seq[T]
	acc    T
	fn     func(T, T) T
	primed bool
}

func (c *scan1Cursor[T]) Next() (T, bool) {
	v, ok := c.source.Next()
	if !ok {
		var zero T
		return zero, false
	}
	if !c.primed {
		c.primed = true
		c.acc = v
	} else {
		c.acc = c.fn(c.acc, v)
	}
	return c.acc, true
}

type flatMapCursor[I, O any] struct {
	source *Seq[I]
	fn     func(I) *Seq[O]
	inner  *Seq[O]
}

func (c *flatMapCursor[I, O]) Next() (O, bool) {
	for {
		if c.inner != nil {
			if v, ok := c.inner.Next(); ok {
				return v, true
			}
			c.inner = nil
		}
		v, ok := c.source.Next()
		if !ok {
			var zero O
			return zero, false
		}
		c.inner = c.fn(v)
	}
}

type flattenSliceCursor[T any] struct {
	source *Seq[[]T]
	inner  []T
	index  int
}

func (c *flattenSliceCursor[T]) Next() (T, bool) {
	for {
		if c.index < len(c.inner) {
			v := c.inner[c.index]
			c.index++
			return v, true
		}
		inner, ok := c.source.Next()
		if !ok {
			var zero T
			return zero, false
		}
		c.inner = inner
		c.index = 0
	}
}
