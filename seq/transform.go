package seq

import "iter"

// Insert splices values into source immediately before the element at index,
// counting from zero before the insertion.
//
// index must name an existing element: inserting at the position just past
// the last element is out of range, append with Flatten instead. A negative
// index is rejected immediately; an index beyond the source is reported as a
// final ErrOutOfRange error once the source is exhausted.
func Insert[T any](source iter.Seq[T], values iter.Seq[T], index int) (iter.Seq2[T, error], error) {
	switch {
	case source == nil:
		return nil, nilArgument("source")
	case values == nil:
		return nil, nilArgument("values")
	case index < 0:
		return nil, negativeArgument("index", index)
	}
	return func(yield func(T, error) bool) {
		current := 0
		for v := range source {
			if current == index {
				for inserted := range values {
					if !yield(inserted, nil) {
						return
					}
				}
			}
			if !yield(v, nil) {
				return
			}
			current++
		}
		if current <= index {
			var zero T
			yield(zero, outOfRange("index", index, current))
		}
	}, nil
}

// Intersperse places sep between every two adjacent elements of source.
func Intersperse[T any](source iter.Seq[T], sep T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if source == nil {
			return
		}
		first := true
		for v := range source {
			if !first && !yield(sep) {
				return
			}
			first = false
			if !yield(v) {
				return
			}
		}
	}
}

// Duplicate yields each element of source times consecutive times. times is
// the total number of copies: 0 drops everything and 1 passes source through.
func Duplicate[T any](source iter.Seq[T], times int) (iter.Seq[T], error) {
	switch {
	case source == nil:
		return nil, nilArgument("source")
	case times < 0:
		return nil, negativeArgument("times", times)
	case times == 0:
		return Empty[T], nil
	case times == 1:
		return Copy(source), nil
	}
	return func(yield func(T) bool) {
		for v := range source {
			for range times {
				if !yield(v) {
					return
				}
			}
		}
	}, nil
}

// Flatten concatenates the inner sequences in order. Inner sequences are
// ranged lazily, one at a time; nil inner sequences are skipped.
func Flatten[T any](sources iter.Seq[iter.Seq[T]]) iter.Seq[T] {
	return FlatMap(sources, identity[iter.Seq[T]])
}

// FlattenSlices concatenates the slices in order without copying them first.
func FlattenSlices[T any](slices [][]T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, inner := range slices {
			for _, v := range inner {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// WhereIndex yields the elements whose zero-based index satisfies predicate.
func WhereIndex[T any](source iter.Seq[T], predicate func(int) bool) iter.Seq[T] {
	if predicate == nil {
		panic("seq: WhereIndex called with nil predicate")
	}
	return func(yield func(T) bool) {
		if source == nil {
			return
		}
		index := 0
		for v := range source {
			if predicate(index) && !yield(v) {
				return
			}
			index++
		}
	}
}

// Alternate yields every other element: the even indices by default, the odd
// ones when beginFromOne is set.
func Alternate[T any](source iter.Seq[T], beginFromOne bool) iter.Seq[T] {
	mod := 0
	if beginFromOne {
		mod = 1
	}
	return WhereIndex(source, func(index int) bool {
		return index%2 == mod
	})
}

// Pairs yields the Cartesian product of source with itself, outer element
// first. source is buffered once per traversal, so it must be finite.
func Pairs[T any](source iter.Seq[T]) iter.Seq[Pair[T, T]] {
	return func(yield func(Pair[T, T]) bool) {
		buffer := Collect(source)
		for _, first := range buffer {
			for _, second := range buffer {
				if !yield(Pair[T, T]{First: first, Second: second}) {
					return
				}
			}
		}
	}
}
