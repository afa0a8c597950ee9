package seq

import (
	"iter"
	"maps"
)

// Set is a collection with constant-time membership lookup. Pass one to the
// ...Set variants of the membership helpers to skip buffering the source.
type Set[T any] interface {
	Contains(v T) bool
}

// HashSet is a Set backed by a map.
type HashSet[T comparable] map[T]struct{}

// NewHashSet collects source into a HashSet.
func NewHashSet[T comparable](source iter.Seq[T]) HashSet[T] {
	set := HashSet[T]{}
	if source == nil {
		return set
	}
	for v := range source {
		set[v] = struct{}{}
	}
	return set
}

// Contains reports whether v is in the set.
func (s HashSet[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

// Add inserts v and reports whether it was absent before.
func (s HashSet[T]) Add(v T) bool {
	if _, ok := s[v]; ok {
		return false
	}
	s[v] = struct{}{}
	return true
}

// Len returns the number of distinct values held.
func (s HashSet[T]) Len() int {
	return len(s)
}

// All yields the members in unspecified order.
func (s HashSet[T]) All() iter.Seq[T] {
	return maps.Keys(s)
}

// Indistinct yields every value that occurs more than once in source. Each
// such value is yielded exactly once, at the moment its second occurrence is
// read, so the output order is the order of second occurrences.
func Indistinct[T comparable](source iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := HashSet[T]{}
		again := Filter(source, func(v T) bool { return !seen.Add(v) })
		for v := range DistinctBy(again, identity[T]) {
			if !yield(v) {
				return
			}
		}
	}
}

// ContainsAny reports whether source and values share at least one value.
// source is buffered into a set, so it must be finite; values is then read
// lazily and the scan stops at the first hit, so values may be infinite as
// long as it eventually hits.
//
// A nil source or nil values counts as empty and the result is false.
func ContainsAny[T comparable](source iter.Seq[T], values iter.Seq[T]) bool {
	if source == nil || values == nil {
		return false
	}
	return ContainsAnySet(NewHashSet(source), values)
}

// ContainsAnySet is ContainsAny against a source that already offers
// constant-time lookup.
func ContainsAnySet[T any](source Set[T], values iter.Seq[T]) bool {
	if source == nil || values == nil {
		return false
	}
	return Any(values, source.Contains)
}

// ContainsAll reports whether every distinct value of values occurs at least
// once in source. Multiplicity is ignored: ContainsAll([1 1 2], [1 2]) is
// true. Use SameElements to compare multiplicities as well.
//
// values is buffered into a set, so it must be finite; source is read lazily
// and the scan stops once every value has been seen, so source may be
// infinite when it contains them all.
//
// A nil values sequence counts as empty and is contained in anything. A nil
// source counts as empty too, so it contains only an empty values.
func ContainsAll[T comparable](source iter.Seq[T], values iter.Seq[T]) bool {
	missing := NewHashSet(values)
	if missing.Len() == 0 {
		return true
	}
	if source == nil {
		return false
	}
	for v := range source {
		delete(missing, v)
		if missing.Len() == 0 {
			return true
		}
	}
	return false
}

// ContainsAllSet is ContainsAll against a source that already offers
// constant-time lookup.
func ContainsAllSet[T any](source Set[T], values iter.Seq[T]) bool {
	if values == nil {
		return true
	}
	return All(values, func(v T) bool { return source != nil && source.Contains(v) })
}

// SameElements reports whether source and values hold the same values with
// the same multiplicities, in any order.
func SameElements[T comparable](source iter.Seq[T], values iter.Seq[T]) bool {
	tally := func(delta int) func(map[T]int, T) map[T]int {
		return func(counts map[T]int, v T) map[T]int {
			counts[v] += delta
			return counts
		}
	}
	counts := FoldLeft(values, FoldLeft(source, map[T]int{}, tally(1)), tally(-1))
	for _, n := range counts {
		if n != 0 {
			return false
		}
	}
	return true
}
