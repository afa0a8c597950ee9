package seq_test

import (
	"fmt"
	"maps"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/seqkit/seq"
)

func TestProduct(t *testing.T) {
	t.Parallel()

	got, err := seq.Product(seq.Values([]int{2, 3, 4}))
	require.NoError(t, err)
	assert.Exactly(t, 24, got)

	f, err := seq.Product(seq.Values([]float64{0.5, 4}))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, f, 1e-9)

	wrapped, err := seq.Product(seq.Values([]uint8{16, 16}))
	require.NoError(t, err)
	assert.Exactly(t, uint8(0), wrapped, "overflow wraps like the native type")

	_, err = seq.Product(seq.Empty[int])
	require.ErrorIs(t, err, seq.ErrEmpty)
	assert.ErrorContains(t, err, "seq: empty sequence: Product")
}

func TestJoin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1, 2, 3", seq.Join(seq.Values([]int{1, 2, 3}), ", "))
	assert.Equal(t, "abc", seq.Join(seq.Values([]string{"a", "b", "c"}), ""))
	assert.Equal(t, "", seq.Join(seq.Empty[int], "-"))
	assert.Equal(t, "Some(1)|None", seq.Join(seq.Values([]fmt.Stringer{seq.First(seq.Of(1)), seq.First(seq.Empty[int])}), "|"))
}

func TestFirst(t *testing.T) {
	t.Parallel()

	v, ok := seq.First(naturals).Get()
	require.True(t, ok)
	assert.Exactly(t, 0, v)
	assert.True(t, seq.First[int](nil).IsNone())
}

func TestTapAndForEach(t *testing.T) {
	t.Parallel()

	var seen []int
	tapped := seq.TapIndex(seq.Values([]int{5, 6, 7}), func(v, i int) { seen = append(seen, v*10+i) })
	assert.Empty(t, seen, "tap is lazy")
	assert.Equal(t, []int{5, 6}, seq.Collect(seq.Take(tapped, 2)))
	assert.Equal(t, []int{50, 61}, seen)

	sum := 0
	seq.ForEach(seq.Values([]int{1, 2, 3}), func(v int) { sum += v })
	assert.Exactly(t, 6, sum)

	indices := []int{}
	seq.ForEachIndex(seq.Values([]string{"a", "b"}), func(_ string, i int) { indices = append(indices, i) })
	assert.Equal(t, []int{0, 1}, indices)
}

func TestNotNil(t *testing.T) {
	t.Parallel()

	one, two := 1, 2
	got := seq.Collect(seq.NotNil(seq.Values([]*int{nil, &one, nil, &two})))
	assert.Equal(t, []int{1, 2}, lo.Map(got, func(p *int, _ int) int { return *p }))
}

func TestToMap(t *testing.T) {
	t.Parallel()

	source := maps.All(map[string]int{"a": 1, "b": 2})
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, seq.ToMap(source))
	assert.Empty(t, seq.ToMap[string, int](nil))
}

func TestGenerateOfCopy(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{0, 1, 4, 9}, seq.Collect(seq.Generate(4, func(i int) int { return i * i })))
	assert.Empty(t, seq.Collect(seq.Generate(-1, func(i int) int { return i })))
	assert.Equal(t, []string{"x"}, seq.Collect(seq.Copy(seq.Of("x"))))
	assert.Empty(t, seq.Collect(seq.Copy[int](nil)))
}
