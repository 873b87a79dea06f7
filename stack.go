package anagram

// linkStack is a LIFO of linked nodes. The zero value is an empty stack.
type linkStack[T any] struct {
	length int
	top    *stackNode[T]
}

type stackNode[T any] struct {
	item T
	next *stackNode[T]
}

func (s *linkStack[T]) Len() int {
	return s.length
}

func (s *linkStack[T]) IsEmpty() bool {
	return s.top == nil
}

func (s *linkStack[T]) Push(item T) {
	s.top = &stackNode[T]{item: item, next: s.top}
	s.length++
}

func (s *linkStack[T]) Pop() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, ErrEmptyCollection
	}
	item := s.top.item
	s.top = s.top.next
	s.length--
	return item, nil
}
