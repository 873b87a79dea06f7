package anagram

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	ErrOutOfRange      = errors.New("index out of range")
	ErrNotFound        = errors.New("not found")
	ErrEmptyCollection = errors.New("collection is empty")
	ErrNoMoreItems     = errors.New("there are no more items")
	ErrInvalidInput    = errors.New("invalid input")

	// ErrKeyNotFound matches ErrNotFound under errors.Is.
	ErrKeyNotFound = fmt.Errorf("key %w", ErrNotFound)
)

type (
	// Entry is one key of the tree together with a copy of its items.
	Entry[K, I constraints.Ordered] struct {
		Key   K
		Items []I
	}

	listNode[T constraints.Ordered] struct {
		item T
		next *listNode[T]
	}

	sortedList[T constraints.Ordered] struct {
		size int
		head *listNode[T]
	}

	listIterator[T constraints.Ordered] struct {
		current *listNode[T]
	}

	treeNode[K, I constraints.Ordered] struct {
		key         K
		items       *sortedList[I]
		left, right *treeNode[K, I]
	}

	tree[K, I constraints.Ordered] struct {
		size  int
		count int
		root  *treeNode[K, I]
	}

	// in-order iterator, the stack holds nodes whose left side is done
	treeIterator[K, I constraints.Ordered] struct {
		pending linkStack[*treeNode[K, I]]
	}
)

func (e Entry[K, I]) String() string {
	return fmt.Sprintf("(%v, %v)", e.Key, formatItems(e.Items))
}
