package seq

import (
	"cmp"
	"iter"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/charmingruby/seqkit/option"
)

// Rand is the source of randomness used by Random and Shuffle. IntN returns
// a value in [0, n). *rand.Rand from math/rand/v2 satisfies it.
//
// A nil Rand makes the operation seed a fresh generator on every call; pass
// a seeded generator to get reproducible results.
type Rand interface {
	IntN(n int) int
}

func orFresh(rng Rand) Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Random picks one element of source uniformly at random in a single pass
// (reservoir sampling of size one). The length of source need not be known,
// but source must end. It returns an error wrapping ErrEmpty when source
// yields nothing.
func Random[T any](source iter.Seq[T], rng Rand) (T, error) {
	var zero T
	if source == nil {
		return zero, nilArgument("source")
	}
	picked, ok := sample(source, orFresh(rng)).Get()
	if !ok {
		return zero, emptySource("Random")
	}
	return picked, nil
}

// RandomOrDefault is Random returning None instead of failing when source is
// nil or empty.
func RandomOrDefault[T any](source iter.Seq[T], rng Rand) option.Option[T] {
	if source == nil {
		return option.None[T]()
	}
	return sample(source, orFresh(rng))
}

func sample[T any](source iter.Seq[T], rng Rand) option.Option[T] {
	var current T
	count := 0
	for v := range source {
		count++
		if rng.IntN(count) == 0 {
			current = v
		}
	}
	return option.FromOk(current, count > 0)
}

// Shuffle yields the elements of source in random order. Each element is
// tagged with a random key and the elements are sorted by key; equal keys
// keep their source order. The result is always a permutation of source but
// is not an exact uniform (Fisher-Yates) shuffle.
//
// source is buffered on every traversal, so it must be finite.
func Shuffle[T any](source iter.Seq[T], rng Rand) iter.Seq[T] {
	return func(yield func(T) bool) {
		if source == nil {
			return
		}
		r := orFresh(rng)
		tagged := Collect(Map(source, func(v T) Pair[int, T] {
			return Pair[int, T]{First: r.IntN(math.MaxInt), Second: v}
		}))
		slices.SortStableFunc(tagged, func(a, b Pair[int, T]) int {
			return cmp.Compare(a.First, b.First)
		})
		for _, p := range tagged {
			if !yield(p.Second) {
				return
			}
		}
	}
}
