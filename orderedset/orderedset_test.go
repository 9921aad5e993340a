package orderedset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prettyjs/jsfmt/orderedset"
)

func collect(s *orderedset.OrderedSet[*int]) []int {
	var out []int
	for v := range s.All() {
		out = append(out, *v)
	}

	return out
}

func ptr(v int) *int {
	return &v
}

func TestAddAndOrder(t *testing.T) {
	t.Parallel()

	s := orderedset.New[*int]()

	a, b, c := ptr(1), ptr(2), ptr(3)

	require.NoError(t, s.Add(a))
	require.NoError(t, s.Add(b))
	require.NoError(t, s.Add(c))

	assert.Equal(t, []int{1, 2, 3}, collect(s))
	assert.Equal(t, 3, s.Size())
}

func TestAddDuplicateAndNull(t *testing.T) {
	t.Parallel()

	s := orderedset.New[*int]()
	a := ptr(1)

	require.NoError(t, s.Add(a))
	assert.ErrorIs(t, s.Add(a), orderedset.ErrDuplicateItem)
	assert.ErrorIs(t, s.Add(nil), orderedset.ErrNullItem)
}

func TestInsertBeforeAfter(t *testing.T) {
	t.Parallel()

	s := orderedset.New[*int]()
	a, b, c := ptr(1), ptr(2), ptr(3)

	require.NoError(t, s.Add(a))
	require.NoError(t, s.Add(c))
	require.NoError(t, s.InsertBefore(b, c))

	assert.Equal(t, []int{1, 2, 3}, collect(s))

	d := ptr(4)
	require.NoError(t, s.InsertAfter(d, a))
	assert.Equal(t, []int{1, 4, 2, 3}, collect(s))
}

func TestInsertNotFound(t *testing.T) {
	t.Parallel()

	s := orderedset.New[*int]()
	a, b := ptr(1), ptr(2)

	require.NoError(t, s.Add(a))

	assert.ErrorIs(t, s.InsertBefore(b, ptr(99)), orderedset.ErrNotFound)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	s := orderedset.New[*int]()
	a, b, c := ptr(1), ptr(2), ptr(3)

	require.NoError(t, s.Add(a))
	require.NoError(t, s.Add(b))
	require.NoError(t, s.Add(c))

	require.NoError(t, s.Delete(b))
	assert.Equal(t, []int{1, 3}, collect(s))
	assert.False(t, s.Has(b))

	assert.ErrorIs(t, s.Delete(b), orderedset.ErrNotFound)
}

func TestNextPrevious(t *testing.T) {
	t.Parallel()

	s := orderedset.New[*int]()
	a, b, c := ptr(1), ptr(2), ptr(3)

	require.NoError(t, s.Add(a))
	require.NoError(t, s.Add(b))
	require.NoError(t, s.Add(c))

	next, ok := s.Next(a)
	require.True(t, ok)
	assert.Equal(t, b, next)

	_, ok = s.Next(c)
	assert.False(t, ok)

	prev, ok := s.Previous(c)
	require.True(t, ok)
	assert.Equal(t, b, prev)

	_, ok = s.Previous(a)
	assert.False(t, ok)
}

func TestFindNextPrevious(t *testing.T) {
	t.Parallel()

	s := orderedset.New[*int]()
	a, b, c, d := ptr(1), ptr(2), ptr(3), ptr(4)

	require.NoError(t, s.Add(a))
	require.NoError(t, s.Add(b))
	require.NoError(t, s.Add(c))
	require.NoError(t, s.Add(d))

	isEven := func(v *int) bool { return *v%2 == 0 }

	found, ok := s.FindNext(isEven, nil)
	require.True(t, ok)
	assert.Equal(t, b, found)

	found, ok = s.FindNext(isEven, b)
	require.True(t, ok)
	assert.Equal(t, d, found)

	found, ok = s.FindPrevious(isEven, nil)
	require.True(t, ok)
	assert.Equal(t, d, found)

	found, ok = s.FindPrevious(isEven, d)
	require.True(t, ok)
	assert.Equal(t, b, found)
}

func TestFirstLast(t *testing.T) {
	t.Parallel()

	s := orderedset.New[*int]()

	_, ok := s.First()
	assert.False(t, ok)

	a, b := ptr(1), ptr(2)
	require.NoError(t, s.Add(a))
	require.NoError(t, s.Add(b))

	first, ok := s.First()
	require.True(t, ok)
	assert.Equal(t, a, first)

	last, ok := s.Last()
	require.True(t, ok)
	assert.Equal(t, b, last)
}

func TestBackward(t *testing.T) {
	t.Parallel()

	s := orderedset.New[*int]()
	a, b, c := ptr(1), ptr(2), ptr(3)

	require.NoError(t, s.Add(a))
	require.NoError(t, s.Add(b))
	require.NoError(t, s.Add(c))

	var out []int
	for v := range s.Backward() {
		out = append(out, *v)
	}

	assert.Equal(t, []int{3, 2, 1}, out)
}
