package seq

import "github.com/kbukum/seqkit/errors"

// Collector abstracts the terminal shape a consumer folds into: New makes
// an empty accumulator, Add extends it with one item and returns the
// (possibly replaced) accumulator. The same collector is applied
// consistently across a single consumer invocation.
type Collector[T, C any] struct {
	New func() C
	Add func(C, T) C
}

// ToSlice collects into an ordered slice. This is the default shape.
func ToSlice[T any]() Collector[T, []T] {
	return Collector[T, []T]{
		New: func() []T { return nil },
		Add: func(c []T, v T) []T { return append(c, v) },
	}
}

// ToSet collects into a duplicate-insensitive set.
func ToSet[T comparable]() Collector[T, map[T]struct{}] {
	return Collector[T, map[T]struct{}]{
		New: func() map[T]struct{} { return make(map[T]struct{}) },
		Add: func(c map[T]struct{}, v T) map[T]struct{} {
			c[v] = struct{}{}
			return c
		},
	}
}

// ToMap collects key-value pairs into a map. A later pair overwrites an
// earlier one with the same key.
func ToMap[K comparable, V any]() Collector[Pair[K, V], map[K]V] {
	return Collector[Pair[K, V], map[K]V]{
		New: func() map[K]V { return make(map[K]V) },
		Add: func(c map[K]V, p Pair[K, V]) map[K]V {
			c[p.First] = p.Second
			return c
		},
	}
}

// ToString collects string-like items by concatenation.
func ToString[T ~string]() Collector[T, string] {
	return Collector[T, string]{
		New: func() string { return "" },
		Add: func(c string, v T) string { return c + string(v) },
	}
}

// CollectWith drives the chain to exhaustion, folding every value into the
// collector's accumulator.
func CollectWith[T, C any](s *Seq[T], col Collector[T, C]) C {
	acc := col.New()
	for {
		v, ok := s.Next()
		if !ok {
			return acc
		}
		acc = col.Add(acc, v)
	}
}

// Collect gathers all remaining values into a slice.
func Collect[T any](s *Seq[T]) []T {
	return CollectWith(s, ToSlice[T]())
}

// CollectSet gathers all remaining values into a set.
func CollectSet[T comparable](s *Seq[T]) map[T]struct{} {
	return CollectWith(s, ToSet[T]())
}

// CollectMap gathers all remaining key-value pairs into a map.
func CollectMap[K comparable, V any](s *Seq[Pair[K, V]]) map[K]V {
	return CollectWith(s, ToMap[K, V]())
}

// CollectString concatenates all remaining string-like values.
func CollectString[T ~string](s *Seq[T]) string {
	return CollectWith(s, ToString[T]())
}

// PartitionWith splits the chain into two accumulators: values satisfying
// the predicate go to the first.
func PartitionWith[T, C any](s *Seq[T], fn func(T) bool, col Collector[T, C]) (C, C) {
	yes, no := col.New(), col.New()
	for {
		v, ok := s.Next()
		if !ok {
			return yes, no
		}
		if fn(v) {
			yes = col.Add(yes, v)
		} else {
			no = col.Add(no, v)
		}
	}
}

// Partition splits the chain into two slices: values satisfying the
// predicate go to the first.
func Partition[T any](s *Seq[T], fn func(T) bool) ([]T, []T) {
	return PartitionWith(s, fn, ToSlice[T]())
}

// Unzip destructures a chain of pairs into two parallel slices.
func Unzip[A, B any](s *Seq[Pair[A, B]]) ([]A, []B) {
	var as []A
	var bs []B
	for {
		p, ok := s.Next()
		if !ok {
			return as, bs
		}
		as = append(as, p.First)
		bs = append(bs, p.Second)
	}
}

// Unzip3 destructures a chain of triples into three parallel slices.
func Unzip3[A, B, C any](s *Seq[Triple[A, B, C]]) ([]A, []B, []C) {
	var as []A
	var bs []B
	var cs []C
	for {
		t, ok := s.Next()
		if !ok {
			return as, bs, cs
		}
		as = append(as, t.First)
		bs = append(bs, t.Second)
		cs = append(cs, t.Third)
	}
}

// UnzipMany destructures a chain of rows into width parallel slices.
// width <= 0 infers the width from the first row, which fails with an
// EMPTY_SEQUENCE error on an empty chain. Short rows leave the missing
// columns untouched; long rows have their extra columns dropped.
func UnzipMany[T any](s *Seq[[]T], width int) ([][]T, error) {
	row, ok := s.Next()
	if width <= 0 {
		if !ok {
			return nil, errors.EmptySequence("cannot infer unzip width from an empty sequence")
		}
		width = len(row)
	}
	out := make([][]T, width)
	for ; ok; row, ok = s.Next() {
		for i := range out {
			if i < len(row) {
				out[i] = append(out[i], row[i])
			}
		}
	}
	return out, nil
}

// Group folds maximal runs of consecutive Same values into one slice per
// run, in order. Equal values in separate runs stay in separate groups.
func Group[T comparable](s *Seq[T]) [][]T {
	return GroupBy(s, Same[T])
}

// GroupBy is Group under an explicit equality predicate.
func GroupBy[T any](s *Seq[T], eq func(a, b T) bool) [][]T {
	var groups [][]T
	var run []T
	var last T
	for {
		v, ok := s.Next()
		if !ok {
			break
		}
		if len(run) > 0 && !eq(last, v) {
			groups = append(groups, run)
			run = nil
		}
		run = append(run, v)
		last = v
	}
	if len(run) > 0 {
		groups = append(groups, run)
	}
	return groups
}

// GroupWith folds each maximal run of values equal under eq into one
// collector accumulator, returned in run order.
func GroupWith[T, C any](s *Seq[T], eq func(a, b T) bool, col Collector[T, C]) []C {
	var groups []C
	var run C
	runLen := 0
	var last T
	for {
		v, ok := s.Next()
		if !ok {
			break
		}
		if runLen > 0 && !eq(last, v) {
			groups = append(groups, run)
			run = col.New()
			runLen = 0
		} else if runLen == 0 {
			run = col.New()
		}
		run = col.Add(run, v)
		runLen++
		last = v
	}
	if runLen > 0 {
		groups = append(groups, run)
	}
	return groups
}

// Categorize folds every value into a group keyed by fn(value). The
// returned key slice preserves first-occurrence order, which the map alone
// cannot.
func Categorize[T any, K comparable](s *Seq[T], fn func(T) K) ([]K, map[K][]T) {
	var keys []K
	m := make(map[K][]T)
	for {
		v, ok := s.Next()
		if !ok {
			return keys, m
		}
		k := fn(v)
		if _, seen := m[k]; !seen {
			keys = append(keys, k)
		}
		m[k] = append(m[k], v)
	}
}

// CategorizeWith is Categorize with an explicit collector per group.
func CategorizeWith[T any, K comparable, C any](s *Seq[T], fn func(T) K, col Collector[T, C]) ([]K, map[K]C) {
	var keys []K
	m := make(map[K]C)
	for {
		v, ok := s.Next()
		if !ok {
			return keys, m
		}
		k := fn(v)
		acc, seen := m[k]
		if !seen {
			keys = append(keys, k)
			acc = col.New()
		}
		m[k] = col.Add(acc, v)
	}
}
