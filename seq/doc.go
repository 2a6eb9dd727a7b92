// Package seq provides composable, pull-based lazy iteration.
//
// A chain is built from a source, zero or more adaptors, and one terminal
// consumer. Nothing is computed until the consumer pulls: each stage pulls
// from its upstream stage on demand, so chains over infinite sources are
// fine as long as the consumer stops pulling (Take, Find, Some).
//
// # Sources
//
//   - Of, FromSlice: explicit lists
//   - From, FromNext: wrap an existing pull-capable cursor
//   - FromSeq, (*Seq).All: bridge to and from the standard iter.Seq protocol
//   - Range, RangeBy, RangeInclusive, CountFrom: arithmetic progressions
//   - Repeat, RepeatN, RepeatWith, RepeatWithN, Iterate: generated values
//
// # Adaptors
//
//   - Map, Filter, Each, Scan, Scan1: per-value transforms
//   - FlatMap, Flatten, FlattenSlice: drain nested sequences
//   - StepBy, Skip, Take, SkipWhile, TakeWhile: slicing
//   - Chunk, Enumerate: regrouping and indexing
//   - Concat, Zip, Zip3, ZipMany, Join, JoinWith, Cycle: combining
//
// # Consumers
//
//   - At, Fold, Reduce, Sum, Product, And, Or, Count
//   - Find, FindIndex, Some, Every, Includes
//   - Max, Min, MaxKey, MinKey, MaxBy, MinBy
//   - Collect and friends, Partition, Unzip, Group, Categorize
//   - (*Seq).Clone, (*Seq).CloneMany
//
// # Usage
//
//	squares := seq.Map(seq.Range(1, 6), func(n int) int { return n * n })
//	odd := seq.Filter(squares, func(n int) bool { return n%2 == 1 })
//	fmt.Println(seq.Collect(odd)) // [1 9 25]
//
// Cycle, JoinWith and Clone buffer a full pass of their input and must not
// be driven to completion against a genuinely infinite upstream.
package seq
