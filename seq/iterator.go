package seq

import "iter"

// Iterator is an explicit pull cursor over a sequence. It is the counterpart
// of ranging with for: each call to Next resumes the source exactly where the
// previous call left it.
//
// An Iterator built with Pull or Pull2 holds a suspended source and must be
// released with Stop once the caller is done with it, including when the
// caller abandons it early. Stop is idempotent.
type Iterator[T any] struct {
	next func() (T, bool)
	stop func()
	err  func() error
}

// Next yields the next value. When ok is false, iteration is complete.
func (it Iterator[T]) Next() (T, bool) {
	if it.next == nil {
		var zero T
		return zero, false
	}
	return it.next()
}

// Err returns the error that ended iteration, if any.
func (it Iterator[T]) Err() error {
	if it.err == nil {
		return nil
	}
	return it.err()
}

// Stop releases the underlying source.
func (it Iterator[T]) Stop() {
	if it.stop != nil {
		it.stop()
	}
}

// All returns the remaining values as a sequence. Ranging over it consumes
// the cursor; it does not rewind.
func (it Iterator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// FromSlice creates an iterator over the provided slice without copying.
func FromSlice[T any](values []T) Iterator[T] {
	idx := 0
	return Iterator[T]{
		next: func() (T, bool) {
			if idx >= len(values) {
				var zero T
				return zero, false
			}
			v := values[idx]
			idx++
			return v, true
		},
	}
}

// Pull converts a sequence into a cursor.
func Pull[T any](source iter.Seq[T]) Iterator[T] {
	if source == nil {
		return Iterator[T]{}
	}
	next, stop := iter.Pull(source)
	return Iterator[T]{next: next, stop: stop}
}

// Pull2 converts a fallible sequence into a cursor. The first error ends
// iteration and is reported by Err.
func Pull2[T any](source iter.Seq2[T, error]) Iterator[T] {
	if source == nil {
		return Iterator[T]{}
	}
	next, stop := iter.Pull2(source)
	var failure error
	return Iterator[T]{
		next: func() (T, bool) {
			var zero T
			if failure != nil {
				return zero, false
			}
			v, err, ok := next()
			if !ok {
				return zero, false
			}
			if err != nil {
				failure = err
				stop()
				return zero, false
			}
			return v, true
		},
		stop: stop,
		err:  func() error { return failure },
	}
}

// ToSlice exhausts the iterator and collects its values, then stops it.
// Check Err afterwards when the iterator came from Pull2.
func ToSlice[T any](it Iterator[T]) []T {
	defer it.Stop()
	var result []T
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		result = append(result, v)
	}
	if result == nil {
		return []T{}
	}
	return result
}

// Map lazily transforms each element with fn.
func Map[A any, B any](source iter.Seq[A], fn func(A) B) iter.Seq[B] {
	if fn == nil {
		panic("seq: Map called with nil fn")
	}
	return func(yield func(B) bool) {
		if source == nil {
			return
		}
		for v := range source {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Filter keeps the elements satisfying predicate.
func Filter[T any](source iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	if predicate == nil {
		panic("seq: Filter called with nil predicate")
	}
	return func(yield func(T) bool) {
		if source == nil {
			return
		}
		for v := range source {
			if predicate(v) && !yield(v) {
				return
			}
		}
	}
}

// Drop skips the first n elements.
func Drop[T any](source iter.Seq[T], n int) iter.Seq[T] {
	if n <= 0 {
		return Copy(source)
	}
	return func(yield func(T) bool) {
		if source == nil {
			return
		}
		skipped := 0
		for v := range source {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// TakeWhile yields elements until predicate first fails. It stops reading the
// source at that element.
func TakeWhile[T any](source iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	if predicate == nil {
		panic("seq: TakeWhile called with nil predicate")
	}
	return func(yield func(T) bool) {
		if source == nil {
			return
		}
		for v := range source {
			if !predicate(v) || !yield(v) {
				return
			}
		}
	}
}

// DropWhile skips elements while predicate holds and yields the rest,
// starting with the first element that failed it.
func DropWhile[T any](source iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	if predicate == nil {
		panic("seq: DropWhile called with nil predicate")
	}
	return func(yield func(T) bool) {
		if source == nil {
			return
		}
		dropping := true
		for v := range source {
			if dropping && predicate(v) {
				continue
			}
			dropping = false
			if !yield(v) {
				return
			}
		}
	}
}
