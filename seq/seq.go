// Package seq offers lazy helpers over Go's iter.Seq sequences: positional
// search, deduplication, structural transforms and randomized selection.
//
// Every sequence-returning function is lazy. Nothing is read from the source
// until the returned sequence is ranged over, and each range re-runs the
// pipeline, so a returned sequence can be traversed again whenever its source
// can.
//
// Example:
//
//	evens := seq.Alternate(seq.Values([]int{1, 2, 3, 4}), false)
//	fmt.Println(seq.Collect(evens)) // [1 3]
package seq

import (
	"iter"
	"slices"
)

// Pair represents two related values.
type Pair[A any, B any] struct {
	First  A
	Second B
}

// Values returns a sequence over the provided slice without copying it. A nil
// slice yields the empty sequence.
func Values[T any](values []T) iter.Seq[T] {
	return slices.Values(values)
}

// Of returns a sequence yielding exactly v.
func Of[T any](v T) iter.Seq[T] {
	return func(yield func(T) bool) {
		yield(v)
	}
}

// Empty is the empty sequence.
func Empty[T any](func(T) bool) {}

// Generate yields fn(0), fn(1), ... fn(count-1). A non-positive count yields
// nothing.
func Generate[T any](count int, fn func(int) T) iter.Seq[T] {
	if fn == nil {
		panic("seq: Generate called with nil fn")
	}
	return func(yield func(T) bool) {
		for i := range count {
			if !yield(fn(i)) {
				return
			}
		}
	}
}

// Take yields at most the first n elements of source. It never reads past the
// n-th element, so it is the usual way to cut an infinite source short.
func Take[T any](source iter.Seq[T], n int) iter.Seq[T] {
	if n <= 0 || source == nil {
		return Empty[T]
	}
	return func(yield func(T) bool) {
		count := 0
		for v := range source {
			if !yield(v) {
				return
			}
			count++
			if count >= n {
				return
			}
		}
	}
}

// Collect exhausts the sequence and collects its values. The result is never
// nil.
func Collect[T any](source iter.Seq[T]) []T {
	result := []T{}
	if source == nil {
		return result
	}
	for v := range source {
		result = append(result, v)
	}
	return result
}

// Collect2 exhausts a fallible sequence. It stops at the first error and
// returns the values gathered so far alongside it.
func Collect2[T any](source iter.Seq2[T, error]) ([]T, error) {
	result := []T{}
	if source == nil {
		return result, nil
	}
	for v, err := range source {
		if err != nil {
			return result, err
		}
		result = append(result, v)
	}
	return result, nil
}

// Copy returns a sequence yielding the same elements as source. It hides the
// concrete type behind source, so callers cannot type-assert their way back
// to a mutable collection.
func Copy[T any](source iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if source == nil {
			return
		}
		for v := range source {
			if !yield(v) {
				return
			}
		}
	}
}

// FlatMap applies fn to each element and concatenates the resulting
// sequences. Inner sequences are ranged lazily, one at a time; nil ones are
// skipped.
func FlatMap[A any, B any](source iter.Seq[A], fn func(A) iter.Seq[B]) iter.Seq[B] {
	if fn == nil {
		panic("seq: FlatMap called with nil fn")
	}
	return func(yield func(B) bool) {
		if source == nil {
			return
		}
		for v := range source {
			inner := fn(v)
			if inner == nil {
				continue
			}
			for w := range inner {
				if !yield(w) {
					return
				}
			}
		}
	}
}

// FoldLeft reduces source from left to right using the provided accumulator.
func FoldLeft[A any, B any](source iter.Seq[A], init B, fn func(B, A) B) B {
	acc := init
	if source == nil {
		return acc
	}
	for v := range source {
		acc = fn(acc, v)
	}
	return acc
}

// Reduce applies fn across elements, returning false when source is empty.
func Reduce[T any](source iter.Seq[T], fn func(T, T) T) (T, bool) {
	var (
		acc  T
		seen bool
	)
	if source == nil {
		return acc, false
	}
	for v := range source {
		if !seen {
			acc, seen = v, true
			continue
		}
		acc = fn(acc, v)
	}
	return acc, seen
}

// Find returns the first element satisfying predicate. It stops reading
// source at that element.
func Find[T any](source iter.Seq[T], predicate func(T) bool) (T, bool) {
	var zero T
	if source == nil {
		return zero, false
	}
	for v := range source {
		if predicate(v) {
			return v, true
		}
	}
	return zero, false
}

// Any reports whether any element satisfies predicate, stopping at the first
// one that does.
func Any[T any](source iter.Seq[T], predicate func(T) bool) bool {
	_, ok := Find(source, predicate)
	return ok
}

// All reports whether every element satisfies predicate, stopping at the
// first one that does not. It is true for an empty source.
func All[T any](source iter.Seq[T], predicate func(T) bool) bool {
	return !Any(source, func(v T) bool { return !predicate(v) })
}

// DistinctBy lazily drops elements whose key was already seen, preserving
// order. Each traversal keeps its own set of seen keys.
func DistinctBy[T any, K comparable](source iter.Seq[T], keySelector func(T) K) iter.Seq[T] {
	if keySelector == nil {
		panic("seq: DistinctBy called with nil keySelector")
	}
	return func(yield func(T) bool) {
		seen := HashSet[K]{}
		for v := range Filter(source, func(v T) bool { return seen.Add(keySelector(v)) }) {
			if !yield(v) {
				return
			}
		}
	}
}

func identity[T any](v T) T {
	return v
}

func equalFunc[T comparable](a, b T) bool {
	return a == b
}
