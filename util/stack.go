package util

// Stack is a LIFO.
type Stack[T any] struct {
	items []T
}

// Push adds item on top.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the top item, or the zero value when empty.
func (s *Stack[T]) Pop() (item T) {
	if len(s.items) == 0 {
		return
	}
	idx := len(s.items) - 1
	item = s.items[idx]
	s.items = s.items[:idx]
	return
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (item T) {
	if len(s.items) == 0 {
		return
	}
	return s.items[len(s.items)-1]
}

// Len returns the number of items.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Remove drops every occurrence of item for which eq reports true.
func (s *Stack[T]) Remove(eq func(T) bool) {
	kept := s.items[:0]
	for _, it := range s.items {
		if !eq(it) {
			kept = append(kept, it)
		}
	}
	s.items = kept
}
