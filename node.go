package anagram

import "golang.org/x/exp/constraints"

// newTreeNode returns a node whose bucket already holds item.
func newTreeNode[K, I constraints.Ordered](key K, item I) *treeNode[K, I] {
	items := &sortedList[I]{}
	items.Insert(item)
	return &treeNode[K, I]{
		key:   key,
		items: items,
	}
}

func (n *treeNode[K, I]) entry() Entry[K, I] {
	return Entry[K, I]{
		Key:   n.key,
		Items: n.items.Items(),
	}
}

func (n *treeNode[K, I]) height() int {
	if n == nil {
		return 0
	}
	l, r := n.left.height(), n.right.height()
	if l > r {
		return l + 1
	}
	return r + 1
}

// find the slot holding the smallest key under *slot
func minimumRef[K, I constraints.Ordered](slot **treeNode[K, I]) **treeNode[K, I] {
	for (*slot).left != nil {
		slot = &(*slot).left
	}
	return slot
}

// modify the parent's child ptr, ** means ref to pointer
func replaceRef[K, I constraints.Ordered](slot **treeNode[K, I], n *treeNode[K, I]) {
	*slot = n
}
