package anagram

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newListOf[T string | int](items ...T) List[T] {
	l := NewList[T]()
	for _, item := range items {
		l.Insert(item)
	}
	return l
}

func TestListInsertOrder(t *testing.T) {
	dataSet := []struct {
		in       []int
		expected []int
	}{
		{[]int{}, []int{}},
		{[]int{1}, []int{1}},
		{[]int{3, 2, 1}, []int{1, 2, 3}},
		{[]int{1, 2, 3}, []int{1, 2, 3}},
		{[]int{5, 1, 4, 1, 3}, []int{1, 1, 3, 4, 5}},
		{[]int{2, 2, 2}, []int{2, 2, 2}},
		{[]int{0, -7, 9, -7}, []int{-7, -7, 0, 9}},
	}

	for _, d := range dataSet {
		l := newListOf(d.in...)
		assert.Equal(t, d.expected, l.Items(), "%v", d.in)
		assert.Equal(t, len(d.in), l.Len())
		assert.Equal(t, len(d.in) == 0, l.IsEmpty())
	}
}

func TestListInsertKeepsOrderRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	l := NewList[int]()
	for i := 0; i < 500; i++ {
		l.Insert(rnd.Intn(100))
		items := l.Items()
		require.True(t, sort.IntsAreSorted(items), "%v", items)
		require.Equal(t, i+1, l.Len())
	}
}

func TestListGet(t *testing.T) {
	l := newListOf("stile", "tiles", "islet")

	for i, expected := range []string{"islet", "stile", "tiles"} {
		got, err := l.Get(i)
		assert.NoError(t, err)
		assert.Equal(t, expected, got)
	}

	for _, idx := range []int{-1, 3, 100} {
		_, err := l.Get(idx)
		assert.ErrorIs(t, err, ErrOutOfRange, "index %d", idx)
	}

	_, err := NewList[string]().Get(0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestListIndex(t *testing.T) {
	l := newListOf(4, 2, 2, 8)

	idx, err := l.Index(2)
	assert.NoError(t, err)
	assert.Equal(t, 0, idx)

	idx, err = l.Index(8)
	assert.NoError(t, err)
	assert.Equal(t, 3, idx)

	_, err = l.Index(3)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = l.Index(9)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.True(t, l.Contains(4))
	assert.False(t, l.Contains(5))
}

func TestListRemoveAt(t *testing.T) {
	l := newListOf("a", "b", "c")

	_, err := l.RemoveAt(5)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = l.RemoveAt(3)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = l.RemoveAt(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, []string{"a", "b", "c"}, l.Items())

	item, err := l.RemoveAt(1)
	assert.NoError(t, err)
	assert.Equal(t, "b", item)
	assert.Equal(t, []string{"a", "c"}, l.Items())

	item, err = l.RemoveAt(1)
	assert.NoError(t, err)
	assert.Equal(t, "c", item)

	item, err = l.RemoveAt(0)
	assert.NoError(t, err)
	assert.Equal(t, "a", item)
	assert.True(t, l.IsEmpty())
	assert.Equal(t, []string{}, l.Items())

	_, err = l.RemoveAt(0)
	assert.Equal(t, ErrEmptyCollection, err)
}

func TestListRemove(t *testing.T) {
	l := newListOf("dog", "god", "dog")

	require.NoError(t, l.Remove("dog"))
	assert.Equal(t, []string{"dog", "god"}, l.Items())

	err := l.Remove("odg")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 2, l.Len())

	require.NoError(t, l.Remove("god"))
	require.NoError(t, l.Remove("dog"))
	assert.True(t, l.IsEmpty())
}

func TestListClear(t *testing.T) {
	l := newListOf(3, 1, 2)
	l.Clear()
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Len())
	assert.False(t, l.Iterator().HasNext())

	l.Insert(9)
	assert.Equal(t, []int{9}, l.Items())
}

func TestListIterator(t *testing.T) {
	l := newListOf(2, 1)

	it := l.Iterator()
	assert.True(t, it.HasNext())
	v, err := it.Next()
	assert.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = it.Next()
	assert.NoError(t, err)
	assert.Equal(t, 2, v)

	assert.False(t, it.HasNext())
	_, err = it.Next()
	assert.Equal(t, ErrNoMoreItems, err)

	// every call starts over
	again := l.Iterator()
	v, err = again.Next()
	assert.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestListString(t *testing.T) {
	assert.Equal(t, "[]", NewList[int]().String())
	assert.Equal(t, "[1, 2, 3]", newListOf(3, 1, 2).String())
}

func TestLinkStack(t *testing.T) {
	var s linkStack[int]
	assert.True(t, s.IsEmpty())

	_, err := s.Pop()
	assert.Equal(t, ErrEmptyCollection, err)

	for i := 1; i <= 3; i++ {
		s.Push(i)
	}
	assert.Equal(t, 3, s.Len())

	for i := 3; i >= 1; i-- {
		v, err := s.Pop()
		assert.NoError(t, err)
		assert.Equal(t, i, v)
	}
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
}
