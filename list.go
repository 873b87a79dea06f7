package anagram

import (
	"fmt"
	"strings"
)

func (l *sortedList[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

func (l *sortedList[T]) IsEmpty() bool {
	return l.Len() == 0
}

// Insert places item after every element that is not greater than it.
// O(1) when item goes to the front, O(n) when it goes to the end.
func (l *sortedList[T]) Insert(item T) {
	newNode := &listNode[T]{item: item}

	var prev *listNode[T]
	curr := l.head
	for curr != nil && curr.item <= item {
		prev = curr
		curr = curr.next
	}

	if prev == nil {
		newNode.next = l.head
		l.head = newNode
	} else {
		newNode.next = prev.next
		prev.next = newNode
	}
	l.size++
}

func (l *sortedList[T]) Get(index int) (T, error) {
	n, err := l.nodeAt(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return n.item, nil
}

func (l *sortedList[T]) Index(item T) (int, error) {
	idx := 0
	for curr := l.head; curr != nil; curr = curr.next {
		if curr.item == item {
			return idx, nil
		}
		// nothing equal can follow a greater item
		if curr.item > item {
			break
		}
		idx++
	}
	return -1, fmt.Errorf("item %v: %w", item, ErrNotFound)
}

func (l *sortedList[T]) Contains(item T) bool {
	_, err := l.Index(item)
	return err == nil
}

func (l *sortedList[T]) RemoveAt(index int) (T, error) {
	var zero T
	if l.IsEmpty() {
		return zero, ErrEmptyCollection
	}
	if index == 0 {
		removed := l.head
		l.head = removed.next
		l.size--
		return removed.item, nil
	}

	prev, err := l.nodeAt(index - 1)
	if err != nil || prev.next == nil {
		return zero, fmt.Errorf("remove at %d of %d: %w", index, l.size, ErrOutOfRange)
	}
	removed := prev.next
	prev.next = removed.next
	l.size--
	return removed.item, nil
}

func (l *sortedList[T]) Remove(item T) error {
	idx, err := l.Index(item)
	if err != nil {
		return err
	}
	_, err = l.RemoveAt(idx)
	return err
}

func (l *sortedList[T]) Clear() {
	l.head = nil
	l.size = 0
}

func (l *sortedList[T]) Iterator() Iterator[T] {
	var head *listNode[T]
	if l != nil {
		head = l.head
	}
	return &listIterator[T]{current: head}
}

func (l *sortedList[T]) Items() []T {
	items := make([]T, 0, l.Len())
	for it := l.Iterator(); it.HasNext(); {
		item, _ := it.Next()
		items = append(items, item)
	}
	return items
}

func (l *sortedList[T]) String() string {
	return formatItems(l.Items())
}

// copy returns a list holding the same items in fresh nodes.
func (l *sortedList[T]) copy() *sortedList[T] {
	cp := &sortedList[T]{size: l.size}
	tail := &cp.head
	for curr := l.head; curr != nil; curr = curr.next {
		*tail = &listNode[T]{item: curr.item}
		tail = &(*tail).next
	}
	return cp
}

func (l *sortedList[T]) nodeAt(index int) (*listNode[T], error) {
	if index < 0 || index >= l.Len() {
		return nil, fmt.Errorf("index %d of %d: %w", index, l.Len(), ErrOutOfRange)
	}
	curr := l.head
	for i := 0; i < index; i++ {
		curr = curr.next
	}
	return curr, nil
}

func (it *listIterator[T]) HasNext() bool {
	return it != nil && it.current != nil
}

func (it *listIterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, ErrNoMoreItems
	}
	item := it.current.item
	it.current = it.current.next
	return item, nil
}

func formatItems[T any](items []T) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, item)
	}
	sb.WriteByte(']')
	return sb.String()
}
