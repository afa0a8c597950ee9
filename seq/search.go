package seq

import (
	"fmt"
	"iter"
)

// After yields every element strictly following the first element equal to
// target. When no element matches the result is empty.
func After[T comparable](source iter.Seq[T], target T) iter.Seq[T] {
	return AfterFunc(source, target, equalFunc[T])
}

// AfterFunc is like After but compares elements with equals(element, target).
func AfterFunc[T any](source iter.Seq[T], target T, equals func(T, T) bool) iter.Seq[T] {
	if equals == nil {
		panic("seq: AfterFunc called with nil equals")
	}
	return Drop(DropWhile(source, func(v T) bool { return !equals(v, target) }), 1)
}

// Before yields every element preceding the first element equal to target.
// When no element matches, the whole source passes through.
func Before[T comparable](source iter.Seq[T], target T) iter.Seq[T] {
	return BeforeFunc(source, target, equalFunc[T])
}

// BeforeFunc is like Before but compares elements with equals(element, target).
func BeforeFunc[T any](source iter.Seq[T], target T, equals func(T, T) bool) iter.Seq[T] {
	if equals == nil {
		panic("seq: BeforeFunc called with nil equals")
	}
	return TakeWhile(source, func(v T) bool { return !equals(v, target) })
}

// Between yields the elements whose index lies in the inclusive range
// [from, to].
//
// Negative bounds and from > to are rejected immediately. Whether the source
// is long enough is only known while ranging: if it ends before index to, the
// returned sequence yields a final ErrOutOfRange error. Traversal stops as
// soon as index to has been yielded, so Between is safe on infinite sources.
func Between[T any](source iter.Seq[T], from, to int) (iter.Seq2[T, error], error) {
	switch {
	case source == nil:
		return nil, nilArgument("source")
	case from < 0:
		return nil, negativeArgument("from", from)
	case to < 0:
		return nil, negativeArgument("to", to)
	case from > to:
		return nil, fmt.Errorf("seq: %w: from %d is greater than to %d", ErrInvalidArgument, from, to)
	}
	return func(yield func(T, error) bool) {
		index := 0
		for v := range source {
			if index >= from && !yield(v, nil) {
				return
			}
			if index == to {
				return
			}
			index++
		}
		var zero T
		if from >= index {
			yield(zero, outOfRange("from", from, index))
			return
		}
		yield(zero, outOfRange("to", to, index))
	}, nil
}

// IndexOf returns the zero-based index of the first element equal to target,
// or -1 when there is none.
func IndexOf[T comparable](source iter.Seq[T], target T) int {
	return IndexOfFunc(source, target, equalFunc[T])
}

// IndexOfFunc is like IndexOf but compares elements with
// equals(element, target).
func IndexOfFunc[T any](source iter.Seq[T], target T, equals func(T, T) bool) int {
	if equals == nil {
		panic("seq: IndexOfFunc called with nil equals")
	}
	if source == nil {
		return -1
	}
	index := 0
	for v := range source {
		if equals(v, target) {
			return index
		}
		index++
	}
	return -1
}
