package anagram

import "golang.org/x/exp/constraints"

// View is the read-only side of a bucket handed out by Tree.Search.
type View[T constraints.Ordered] interface {
	Len() int
	IsEmpty() bool
	Get(index int) (T, error)
	Index(item T) (int, error)
	Contains(item T) bool
	Iterator() Iterator[T]
	Items() []T
	String() string
}

// List is a collection that keeps its items in ascending order.
type List[T constraints.Ordered] interface {
	View[T]

	Insert(item T)
	RemoveAt(index int) (T, error)
	Remove(item T) error
	Clear()
}

type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
}

// Tree maps each distinct key to the sorted list of items inserted under it.
type Tree[K, I constraints.Ordered] interface {
	// Insert adds item under key and reports whether key was new.
	Insert(key K, item I) bool
	Search(key K) (View[I], error)
	Contains(key K) bool
	RemoveItem(key K, item I) error
	RemoveKey(key K) (View[I], error)

	Iterator() Iterator[Entry[K, I]]
	Entries() []Entry[K, I]

	// Size is the number of distinct keys.
	Size() int
	// Len is the number of items over all keys.
	Len() int
	Height() int
}

func New[K, I constraints.Ordered]() Tree[K, I] {
	return &tree[K, I]{}
}

func NewList[T constraints.Ordered]() List[T] {
	return &sortedList[T]{}
}
