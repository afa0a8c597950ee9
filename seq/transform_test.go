package seq_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/seqkit/seq"
)

func TestInsert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []int
		index  int
		want   []int
	}{
		{name: "middle", values: []int{9}, index: 1, want: []int{1, 9, 2, 3}},
		{name: "front", values: []int{8, 9}, index: 0, want: []int{8, 9, 1, 2, 3}},
		{name: "before last", values: []int{9}, index: 2, want: []int{1, 2, 9, 3}},
		{name: "nothing to insert", values: nil, index: 1, want: []int{1, 2, 3}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			inserted, err := seq.Insert(seq.Values([]int{1, 2, 3}), seq.Values(test.values), test.index)
			require.NoError(t, err)
			got, err := seq.Collect2(inserted)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestInsertAtEndIsOutOfRange(t *testing.T) {
	t.Parallel()

	inserted, err := seq.Insert(seq.Values([]int{1, 2, 3}), seq.Values([]int{9}), 3)
	require.NoError(t, err)
	got, err := seq.Collect2(inserted)
	require.ErrorIs(t, err, seq.ErrOutOfRange)
	assert.Equal(t, []int{1, 2, 3}, got)

	inserted, err = seq.Insert(seq.Empty[int], seq.Values([]int{9}), 0)
	require.NoError(t, err)
	_, err = seq.Collect2(inserted)
	require.ErrorIs(t, err, seq.ErrOutOfRange)
}

func TestInsertRejectsArguments(t *testing.T) {
	t.Parallel()

	_, err := seq.Insert(seq.Values([]int{1}), seq.Values([]int{9}), -1)
	require.ErrorIs(t, err, seq.ErrInvalidArgument)
	_, err = seq.Insert(nil, seq.Values([]int{9}), 0)
	require.ErrorIs(t, err, seq.ErrNilArgument)
	_, err = seq.Insert(seq.Values([]int{1}), nil, 0)
	require.ErrorIs(t, err, seq.ErrNilArgument)
}

func TestIntersperse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{1, 0, 2, 0, 3}, seq.Collect(seq.Intersperse(seq.Values([]int{1, 2, 3}), 0)))
	assert.Equal(t, []int{1}, seq.Collect(seq.Intersperse(seq.Values([]int{1}), 0)))
	assert.Equal(t, []int{}, seq.Collect(seq.Intersperse(seq.Values([]int{}), 0)))
	assert.Equal(t, []int{0, -1, 1, -1}, seq.Collect(seq.Take(seq.Intersperse(naturals, -1), 4)))
}

func TestDuplicate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		times int
		want  []int
	}{
		{times: 0, want: []int{}},
		{times: 1, want: []int{1, 2}},
		{times: 2, want: []int{1, 1, 2, 2}},
		{times: 3, want: []int{1, 1, 1, 2, 2, 2}},
	}
	for _, test := range tests {
		duplicated, err := seq.Duplicate(seq.Values([]int{1, 2}), test.times)
		require.NoError(t, err)
		assert.Equal(t, test.want, seq.Collect(duplicated), "times=%d", test.times)
	}

	_, err := seq.Duplicate(seq.Values([]int{1}), -1)
	require.ErrorIs(t, err, seq.ErrInvalidArgument)
	_, err = seq.Duplicate[int](nil, 2)
	require.ErrorIs(t, err, seq.ErrNilArgument)
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	sources := seq.Values([]iter.Seq[int]{
		seq.Values([]int{1, 2}),
		seq.Empty[int],
		nil,
		seq.Values([]int{3}),
	})
	assert.Equal(t, []int{1, 2, 3}, seq.Collect(seq.Flatten(sources)))
	assert.Equal(t, []int{1, 2, 3}, seq.Collect(seq.FlattenSlices([][]int{{1, 2}, {}, {3}})))
}

func TestFlattenIsLazy(t *testing.T) {
	t.Parallel()

	inner := func(yield func(iter.Seq[int]) bool) {
		for {
			if !yield(naturals) {
				return
			}
		}
	}
	assert.Equal(t, []int{0, 1, 2}, seq.Collect(seq.Take(seq.Flatten(inner), 3)))
}

func TestWhereIndexAndAlternate(t *testing.T) {
	t.Parallel()

	source := seq.Values([]string{"a", "b", "c", "d", "e"})
	assert.Equal(t, []string{"a", "d"}, seq.Collect(seq.WhereIndex(source, func(i int) bool { return i%3 == 0 })))
	assert.Equal(t, []string{"a", "c", "e"}, seq.Collect(seq.Alternate(source, false)))
	assert.Equal(t, []string{"b", "d"}, seq.Collect(seq.Alternate(source, true)))
	assert.Panics(t, func() { seq.WhereIndex(source, nil) })
}

func TestPairs(t *testing.T) {
	t.Parallel()

	want := []seq.Pair[int, int]{
		{First: 1, Second: 1},
		{First: 1, Second: 2},
		{First: 2, Second: 1},
		{First: 2, Second: 2},
	}
	assert.Equal(t, want, seq.Collect(seq.Pairs(seq.Values([]int{1, 2}))))
	assert.Empty(t, seq.Collect(seq.Pairs(seq.Empty[int])))
	assert.Len(t, seq.Collect(seq.Pairs(seq.Values([]int{1, 2, 3}))), 9)
}
