package anagram

import (
	"sync"

	"golang.org/x/exp/constraints"
)

// lockedTree serializes every operation on a plain tree with one lock.
// Views and iterators it returns are copies, so they stay valid while
// other goroutines keep writing.
type lockedTree[K, I constraints.Ordered] struct {
	mtx  sync.RWMutex
	tree tree[K, I]
}

// NewLocked returns a Tree that is safe for concurrent use.
func NewLocked[K, I constraints.Ordered]() Tree[K, I] {
	return &lockedTree[K, I]{}
}

func (t *lockedTree[K, I]) Insert(key K, item I) bool {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return t.tree.Insert(key, item)
}

func (t *lockedTree[K, I]) Search(key K) (View[I], error) {
	t.mtx.RLock()
	defer t.mtx.RUnlock()
	v, err := t.tree.Search(key)
	if err != nil {
		return nil, err
	}
	return v.(*sortedList[I]).copy(), nil
}

func (t *lockedTree[K, I]) Contains(key K) bool {
	t.mtx.RLock()
	defer t.mtx.RUnlock()
	return t.tree.Contains(key)
}

func (t *lockedTree[K, I]) RemoveItem(key K, item I) error {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return t.tree.RemoveItem(key, item)
}

func (t *lockedTree[K, I]) RemoveKey(key K) (View[I], error) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return t.tree.RemoveKey(key)
}

func (t *lockedTree[K, I]) Iterator() Iterator[Entry[K, I]] {
	return &sliceIterator[Entry[K, I]]{items: t.Entries()}
}

func (t *lockedTree[K, I]) Entries() []Entry[K, I] {
	t.mtx.RLock()
	defer t.mtx.RUnlock()
	return t.tree.Entries()
}

func (t *lockedTree[K, I]) Size() int {
	t.mtx.RLock()
	defer t.mtx.RUnlock()
	return t.tree.Size()
}

func (t *lockedTree[K, I]) Len() int {
	t.mtx.RLock()
	defer t.mtx.RUnlock()
	return t.tree.Len()
}

func (t *lockedTree[K, I]) Height() int {
	t.mtx.RLock()
	defer t.mtx.RUnlock()
	return t.tree.Height()
}

type sliceIterator[T any] struct {
	items []T
}

func (it *sliceIterator[T]) HasNext() bool {
	return len(it.items) > 0
}

func (it *sliceIterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, ErrNoMoreItems
	}
	item := it.items[0]
	it.items = it.items[1:]
	return item, nil
}
