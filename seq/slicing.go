package seq

// Indexed pairs a value with its zero-based position. Produced by Enumerate.
type Indexed[T any] struct {
	Index int
	Value T
}

// StepBy yields the first value, then every n-th value after it,
// discarding the n-1 values in between. n < 1 is treated as 1.
func StepBy[T any](s *Seq[T], n int) *Seq[T] {
	if n < 1 {
		n = 1
	}
	return From[T](&stepByCursor[T]{source: s, n: n})
}

// Skip discards the first n values, then passes the remainder through.
func Skip[T any](s *Seq[T], n int) *Seq[T] {
	return From[T](&skipCursor[T]{source: s, n: n})
}

// Take yields up to n values, then stays exhausted regardless of how much
// the upstream still holds.
func Take[T any](s *Seq[T], n int) *Seq[T] {
	return From[T](&takeCursor[T]{source: s, remaining: n})
}

// SkipWhile discards values while the predicate holds, then passes the
// remainder through unconditionally. The first failing value is the switch
// point and is itself yielded, and later values are never re-tested.
func SkipWhile[T any](s *Seq[T], fn func(T) bool) *Seq[T] {
	return From[T](&skipWhileCursor[T]{source: s, fn: fn, skipping: true})
}

// TakeWhile yields values while the predicate holds. The first failing
// value is dropped and the node stays exhausted from then on.
func TakeWhile[T any](s *Seq[T], fn func(T) bool) *Seq[T] {
	return From[T](&takeWhileCursor[T]{source: s, fn: fn})
}

// Chunk groups n consecutive values into one slice per pull. A final
// undersized chunk is emitted if any residue remains; an exact division
// yields no extra chunk. n < 1 is treated as 1.
func Chunk[T any](s *Seq[T], n int) *Seq[[]T] {
	if n < 1 {
		n = 1
	}
	return From[[]T](&chunkCursor[T]{source: s, size: n})
}

// Enumerate pairs each value with a zero-based running index.
func Enumerate[T any](s *Seq[T]) *Seq[Indexed[T]] {
	return From[Indexed[T]](&enumerateCursor[T]{source: s})
}

// --- Internal cursors ---

type stepByCursor[T any] struct {
	source  *Seq[T]
	n       int
	started bool
}

func (c *stepByCursor[T]) Next() (T, bool) {
	if c.started {
		for i := 0; i < c.n-1; i++ {
			if _, ok := c.source.Next(); !ok {
				var zero T
				return zero, false
			}
		}
	}
	c.started = true
	return c.source.Next()
}

type skipCursor[T any] struct {
	source  *Seq[T]
	n       int
	skipped bool
}

func (c *skipCursor[T]) Next() (T, bool) {
	if !c.skipped {
		c.skipped = true
		for i := 0; i < c.n; i++ {
			if _, ok := c.source.Next(); !ok {
				var zero T
				return zero, false
			}
		}
	}
	return c.source.Next()
}

type takeCursor[T any] struct {
	source    *Seq[T]
	remaining int
}

func (c *takeCursor[T]) Next() (T, bool) {
	var zero T
	if c.remaining <= 0 {
		return zero, false
	}
	v, ok := c.source.Next()
	if !ok {
		c.remaining = 0
		return zero, false
	}
	c.remaining--
	return v, true
}

type skipWhileCursor[T any] struct {
	source   *Seq[T]
	fn       func(T) bool
	skipping bool
}

func (c *skipWhileCursor[T]) Next() (T, bool) {
	if c.skipping {
		// Iterative: a long rejected run must not grow the stack.
		for {
			v, ok := c.source.Next()
			if !ok {
				c.skipping = false
				var zero T
				return zero, false
			}
			if !c.fn(v) {
				c.skipping = false
				return v, true
			}
		}
	}
	return c.source.Next()
}

type takeWhileCursor[T any] struct {
	source *Seq[T]
	fn     func(T) bool
	done   bool
}

func (c *takeWhileCursor[T]) Next() (T, bool) {
	var zero T
	if c.done {
		return zero, false
	}
	v, ok := c.source.Next()
	if !ok || !c.fn(v) {
		c.done = true
		return zero, false
	}
	return v, true
}

type chunkCursor[T any] struct {
	source *Seq[T]
	size   int
	done   bool
}

func (c *chunkCursor[T]) Next() ([]T, bool) {
	if c.done {
		return nil, false
	}
	chunk := make([]T, 0, c.size)
	for len(chunk) < c.size {
		v, ok := c.source.Next()
		if !ok {
			c.done = true
			break
		}
		chunk = append(chunk, v)
	}
	if len(chunk) == 0 {
		return nil, false
	}
	return chunk, true
}

type enumerateCursor[T any] struct {
	source *Seq[T]
	index  int
}

func (c *enumerateCursor[T]) Next() (Indexed[T], bool) {
	v, ok := c.source.Next()
	if !ok {
		return Indexed[T]{}, false
	}
	i := c.index
	c.index++
	return Indexed[T]{Index: i, Value: v}, true
}
