package seq

// Real is the constraint for arithmetic-progression sources.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Range yields start, start+1, ... up to but not including end.
func Range[T Real](start, end T) *Seq[T] {
	return RangeBy(start, end, 1)
}

// RangeBy yields the arithmetic progression from start by step, stopping
// before end. A negative step counts down. A zero step is treated as 1.
func RangeBy[T Real](start, end, step T) *Seq[T] {
	return From[T](newRangeCursor(start, end, step, false))
}

// RangeInclusive is RangeBy with the boundary test extended to include end.
func RangeInclusive[T Real](start, end, step T) *Seq[T] {
	return From[T](newRangeCursor(start, end, step, true))
}

// CountFrom yields the unbounded progression start, start+step, ...
// The progression has no length and no end test.
func CountFrom[T Real](start, step T) *Seq[T] {
	if step == 0 {
		step = 1
	}
	return From[T](&countCursor[T]{cur: start, step: step})
}

// Repeat yields item forever.
func Repeat[T any](item T) *Seq[T] {
	return From[T](&repeatCursor[T]{item: item, remaining: -1})
}

// RepeatN yields item n times.
func RepeatN[T any](item T, n int) *Seq[T] {
	if n < 0 {
		n = 0
	}
	return From[T](&repeatCursor[T]{item: item, remaining: n})
}

// RepeatWith calls fn afresh on every pull, forever.
func RepeatWith[T any](fn func() T) *Seq[T] {
	return From[T](&repeatWithCursor[T]{fn: fn, remaining: -1})
}

// RepeatWithN calls fn afresh on every pull, n times.
func RepeatWithN[T any](fn func() T, n int) *Seq[T] {
	if n < 0 {
		n = 0
	}
	return From[T](&repeatWithCursor[T]{fn: fn, remaining: n})
}

// Iterate yields init, fn(init), fn(fn(init)), ... forever. Bound it with
// Take or TakeWhile before consuming.
func Iterate[T any](fn func(T) T, init T) *Seq[T] {
	return From[T](&iterateCursor[T]{fn: fn, cur: init})
}

// --- Internal cursors ---

type rangeCursor[T Real] struct {
	cur, end, step T
	inclusive      bool
}

func newRangeCursor[T Real](start, end, step T, inclusive bool) *rangeCursor[T] {
	if step == 0 {
		step = 1
	}
	return &rangeCursor[T]{cur: start, end: end, step: step, inclusive: inclusive}
}

func (c *rangeCursor[T]) Next() (T, bool) {
	var zero T
	if c.step > 0 {
		if c.inclusive && c.cur > c.end || !c.inclusive && c.cur >= c.end {
			return zero, false
		}
	} else {
		if c.inclusive && c.cur < c.end || !c.inclusive && c.cur <= c.end {
			return zero, false
		}
	}
	v := c.cur
	c.cur += c.step
	return v, true
}

type countCursor[T Real] struct {
	cur, step T
}

func (c *countCursor[T]) Next() (T, bool) {
	v := c.cur
	c.cur += c.step
	return v, true
}

// remaining < 0 means unbounded.
type repeatCursor[T any] struct {
	item      T
	remaining int
}

func (c *repeatCursor[T]) Next() (T, bool) {
	if c.remaining == 0 {
		var zero T
		return zero, false
	}
	if c.remaining > 0 {
		c.remaining--
	}
	return c.item, true
}

type repeatWithCursor[T any] struct {
	fn        func() T
	remaining int
}

func (c *repeatWithCursor[T]) Next() (T, bool) {
	if c.remaining == 0 {
		var zero T
		return zero, false
	}
	if c.remaining > 0 {
		c.remaining--
	}
	return c.fn(), true
}

type iterateCursor[T any] struct {
	fn      func(T) T
	cur     T
	started bool
}

// fn is applied on demand: pulling k values calls fn exactly k-1 times.
func (c *iterateCursor[T]) Next() (T, bool) {
	if !c.started {
		c.started = true
		return c.cur, true
	}
	c.cur = c.fn(c.cur)
	return c.cur, true
}
