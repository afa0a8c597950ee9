package seq

import "iter"

// Tap yields source unchanged, calling fn on each element just before it is
// yielded. fn runs lazily: only for the elements a consumer actually pulls.
func Tap[T any](source iter.Seq[T], fn func(T)) iter.Seq[T] {
	if fn == nil {
		panic("seq: Tap called with nil fn")
	}
	return TapIndex(source, func(v T, _ int) { fn(v) })
}

// TapIndex is like Tap but also hands fn the element's index.
func TapIndex[T any](source iter.Seq[T], fn func(T, int)) iter.Seq[T] {
	if fn == nil {
		panic("seq: TapIndex called with nil fn")
	}
	return func(yield func(T) bool) {
		if source == nil {
			return
		}
		index := 0
		for v := range source {
			fn(v, index)
			if !yield(v) {
				return
			}
			index++
		}
	}
}

// ForEach eagerly calls fn on every element of source.
func ForEach[T any](source iter.Seq[T], fn func(T)) {
	if fn == nil {
		panic("seq: ForEach called with nil fn")
	}
	ForEachIndex(source, func(v T, _ int) { fn(v) })
}

// ForEachIndex eagerly calls fn on every element of source with its index.
func ForEachIndex[T any](source iter.Seq[T], fn func(T, int)) {
	if fn == nil {
		panic("seq: ForEachIndex called with nil fn")
	}
	for range TapIndex(source, fn) {
	}
}

// NotNil drops the nil pointers from source.
func NotNil[T any](source iter.Seq[*T]) iter.Seq[*T] {
	return Filter(source, func(v *T) bool { return v != nil })
}

// ToMap collects key/value pairs into a map. Later keys overwrite earlier
// ones.
func ToMap[K comparable, V any](source iter.Seq2[K, V]) map[K]V {
	result := map[K]V{}
	if source == nil {
		return result
	}
	for k, v := range source {
		result[k] = v
	}
	return result
}
