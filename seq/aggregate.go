package seq

import (
	"fmt"
	"iter"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/charmingruby/seqkit/option"
)

// Number is the set of types Product accepts.
type Number interface {
	constraints.Integer | constraints.Float
}

// Product multiplies every element of source. Overflow wraps the way the
// native type does. It returns an error wrapping ErrEmpty when source yields
// nothing.
func Product[T Number](source iter.Seq[T]) (T, error) {
	if source == nil {
		return 0, nilArgument("source")
	}
	acc, ok := Reduce(source, func(acc, v T) T { return acc * v })
	if !ok {
		return 0, emptySource("Product")
	}
	return acc, nil
}

// Join formats every element with %v and concatenates the results, placing
// sep between them.
func Join[T any](source iter.Seq[T], sep string) string {
	var b strings.Builder
	if source == nil {
		return ""
	}
	first := true
	for v := range source {
		if !first {
			b.WriteString(sep)
		}
		first = false
		fmt.Fprint(&b, v)
	}
	return b.String()
}

// First returns the first element of source, or None when it is empty.
func First[T any](source iter.Seq[T]) option.Option[T] {
	v, ok := Find(source, func(T) bool { return true })
	return option.FromOk(v, ok)
}
