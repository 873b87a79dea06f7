package anagram

import "fmt"

func (t *tree[K, I]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

func (t *tree[K, I]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

func (t *tree[K, I]) Height() int {
	if t == nil {
		return 0
	}
	return t.root.height()
}

func (t *tree[K, I]) Insert(key K, item I) bool {
	slot := t.findRef(key)
	t.count++
	if curr := *slot; curr != nil {
		curr.items.Insert(item)
		return false
	}
	replaceRef(slot, newTreeNode(key, item))
	t.size++
	return true
}

func (t *tree[K, I]) Search(key K) (View[I], error) {
	n := *t.findRef(key)
	if n == nil {
		return nil, fmt.Errorf("search %v: %w", key, ErrKeyNotFound)
	}
	return n.items, nil
}

func (t *tree[K, I]) Contains(key K) bool {
	return *t.findRef(key) != nil
}

// RemoveItem drops one occurrence of item from key's bucket. A key whose
// bucket empties is removed from the tree.
func (t *tree[K, I]) RemoveItem(key K, item I) error {
	slot := t.findRef(key)
	curr := *slot
	if curr == nil {
		return fmt.Errorf("remove %v: %w", key, ErrKeyNotFound)
	}
	if err := curr.items.Remove(item); err != nil {
		return fmt.Errorf("remove from %v: %w", key, err)
	}
	t.count--
	if curr.items.IsEmpty() {
		t.excise(slot)
	}
	return nil
}

func (t *tree[K, I]) RemoveKey(key K) (View[I], error) {
	slot := t.findRef(key)
	curr := *slot
	if curr == nil {
		return nil, fmt.Errorf("remove %v: %w", key, ErrKeyNotFound)
	}
	// excise may move the successor's bucket into curr
	items := curr.items
	t.count -= items.Len()
	t.excise(slot)
	return items, nil
}

func (t *tree[K, I]) Iterator() Iterator[Entry[K, I]] {
	it := &treeIterator[K, I]{}
	it.pushLeft(t.root)
	return it
}

func (t *tree[K, I]) Entries() []Entry[K, I] {
	entries := make([]Entry[K, I], 0, t.Size())
	for it := t.Iterator(); it.HasNext(); {
		e, _ := it.Next()
		entries = append(entries, e)
	}
	return entries
}

// findRef returns the slot that holds key, or the empty slot where key
// would be attached.
func (t *tree[K, I]) findRef(key K) **treeNode[K, I] {
	slot := &t.root
	for curr := *slot; curr != nil; curr = *slot {
		switch {
		case key < curr.key:
			slot = &curr.left
		case curr.key < key:
			slot = &curr.right
		default:
			return slot
		}
	}
	return slot
}

// excise unlinks the node in slot, keeping the BST order.
func (t *tree[K, I]) excise(slot **treeNode[K, I]) {
	curr := *slot
	switch {
	case curr.left == nil:
		replaceRef(slot, curr.right)
	case curr.right == nil:
		replaceRef(slot, curr.left)
	default:
		// the in-order successor has no left child
		succRef := minimumRef(&curr.right)
		succ := *succRef
		curr.key, curr.items = succ.key, succ.items
		replaceRef(succRef, succ.right)
	}
	t.size--
}

func (it *treeIterator[K, I]) pushLeft(n *treeNode[K, I]) {
	for ; n != nil; n = n.left {
		it.pending.Push(n)
	}
}

func (it *treeIterator[K, I]) HasNext() bool {
	return it != nil && !it.pending.IsEmpty()
}

func (it *treeIterator[K, I]) Next() (Entry[K, I], error) {
	if !it.HasNext() {
		return Entry[K, I]{}, ErrNoMoreItems
	}
	curr, err := it.pending.Pop()
	if err != nil {
		return Entry[K, I]{}, err
	}
	it.pushLeft(curr.right)
	return curr.entry(), nil
}
