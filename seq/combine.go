package seq

// Concat exhausts s, then each of the others in order, left to right.
func Concat[T any](s *Seq[T], others ...*Seq[T]) *Seq[T] {
	sources := append([]*Seq[T]{s}, others...)
	return From[T](&concatCursor[T]{sources: sources})
}

// Cycle replays the upstream sequence forever. The first full pass is
// cached as values are produced; later passes replay the cache. An empty
// upstream makes Cycle immediately and permanently exhausted, and an
// infinite upstream never reaches the replay phase.
func Cycle[T any](s *Seq[T]) *Seq[T] {
	return From[T](&cycleCursor[T]{source: s})
}

// Zip yields one pair per position, the left value first. It stops as soon
// as either side is exhausted and pulls nothing further from the other.
func Zip[A, B any](a *Seq[A], b *Seq[B]) *Seq[Pair[A, B]] {
	return From[Pair[A, B]](&zipCursor[A, B]{a: a, b: b})
}

// Zip3 yields one triple per position, stopping at the first exhausted
// participant.
func Zip3[A, B, C any](a *Seq[A], b *Seq[B], c *Seq[C]) *Seq[Triple[A, B, C]] {
	return From[Triple[A, B, C]](&zip3Cursor[A, B, C]{a: a, b: b, c: c})
}

// ZipMany yields one slice per position combining a value from every
// participant in call order, stopping at the first exhausted one.
func ZipMany[T any](sources ...*Seq[T]) *Seq[[]T] {
	return From[[]T](&zipManyCursor[T]{sources: sources})
}

// Join inserts sep between every pair of adjacent values. No leading or
// trailing separator is ever emitted; the upstream is peeked to decide
// whether another value follows.
func Join[T any](s *Seq[T], sep T) *Seq[T] {
	return From[T](&joinCursor[T]{source: s, sep: sep})
}

// JoinWith inserts the full contents of other between every pair of
// adjacent values. The first gap consumes other live while caching it;
// later gaps replay the cache. An infinite other never completes more than
// one gap.
func JoinWith[T any](s *Seq[T], other *Seq[T]) *Seq[T] {
	return From[T](&joinWithCursor[T]{source: s, other: other})
}

// --- Internal cursors ---

type concatCursor[T any] struct {
	sources []*Seq[T]
	index   int
}

func (c *concatCursor[T]) Next() (T, bool) {
	for c.index < len(c.sources) {
		if v, ok := c.sources[c.index].Next(); ok {
			return v, true
		}
		c.index++
	}
	var zero T
	return zero, false
}

type cycleCursor[T any] struct {
	source *Seq[T]
	cache  []T
	replay bool
	pos    int
	dead   bool
}

func (c *cycleCursor[T]) Next() (T, bool) {
	if c.dead {
		var zero T
		return zero, false
	}
	if !c.replay {
		if v, ok := c.source.Next(); ok {
			c.cache = append(c.cache, v)
			return v, true
		}
		if len(c.cache) == 0 {
			c.dead = true
			var zero T
			return zero, false
		}
		c.replay = true
	}
	v := c.cache[c.pos]
	c.pos = (c.pos + 1) % len(c.cache)
	return v, true
}

type zipCursor[A, B any] struct {
	a    *Seq[A]
	b    *Seq[B]
	done bool
}

func (c *zipCursor[A, B]) Next() (Pair[A, B], bool) {
	if c.done {
		return Pair[A, B]{}, false
	}
	av, ok := c.a.Next()
	if !ok {
		c.done = true
		return Pair[A, B]{}, false
	}
	bv, ok := c.b.Next()
	if !ok {
		c.done = true
		return Pair[A, B]{}, false
	}
	return Pair[A, B]{First: av, Second: bv}, true
}

type zip3Cursor[A, B, C any] struct {
	a    *Seq[A]
	b    *Seq[B]
	c    *Seq[C]
	done bool
}

func (z *zip3Cursor[A, B, C]) Next() (Triple[A, B, C], bool) {
	if z.done {
		return Triple[A, B, C]{}, false
	}
	av, ok := z.a.Next()
	if !ok {
		z.done = true
		return Triple[A, B, C]{}, false
	}
	bv, ok := z.b.Next()
	if !ok {
		z.done = true
		return Triple[A, B, C]{}, false
	}
	cv, ok := z.c.Next()
	if !ok {
		z.done = true
		return Triple[A, B, C]{}, false
	}
	return Triple[A, B, C]{First: av, Second: bv, Third: cv}, true
}

type zipManyCursor[T any] struct {
	sources []*Seq[T]
	done    bool
}

func (c *zipManyCursor[T]) Next() ([]T, bool) {
	if c.done || len(c.sources) == 0 {
		return nil, false
	}
	out := make([]T, len(c.sources))
	for i, s := range c.sources {
		v, ok := s.Next()
		if !ok {
			c.done = true
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

type joinCursor[T any] struct {
	source  *Seq[T]
	sep     T
	pending bool
}

func (c *joinCursor[T]) Next() (T, bool) {
	if c.pending {
		c.pending = false
		return c.sep, true
	}
	v, ok := c.source.Next()
	if !ok {
		var zero T
		return zero, false
	}
	if _, more := c.source.Peek(); more {
		c.pending = true
	}
	return v, true
}

type joinWithCursor[T any] struct {
	source *Seq[T]
	other  *Seq[T]
	cache  []T
	cached bool // other fully consumed into cache
	gap    bool // currently emitting the separator sequence
	pos    int
}

func (c *joinWithCursor[T]) Next() (T, bool) {
	for {
		if c.gap {
			if !c.cached {
				if v, ok := c.other.Next(); ok {
					c.cache = append(c.cache, v)
					return v, true
				}
				c.cached = true
				c.gap = false
			} else if c.pos < len(c.cache) {
				v := c.cache[c.pos]
				c.pos++
				return v, true
			} else {
				c.gap = false
			}
			continue
		}
		v, ok := c.source.Next()
		if !ok {
			var zero T
			return zero, false
		}
		if _, more := c.source.Peek(); more {
			c.gap = true
			c.pos = 0
		}
		return v, true
	}
}
