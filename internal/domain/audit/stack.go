package audit

// Stack is a last-in-first-out sequence. The zero value is an empty stack.
type Stack[T any] struct {
	top  *node[T]
	size int
}

type node[T any] struct {
	value T
	next  *node[T]
}

// Push places v on top
func (s *Stack[T]) Push(v T) {
	s.top = &node[T]{value: v, next: s.top}
	s.size++
}

// Pop removes and returns the top value. ok is false when the stack is empty.
func (s *Stack[T]) Pop() (v T, ok bool) {
	if s.top == nil {
		return v, false
	}
	v = s.top.value
	s.top = s.top.next
	s.size--
	return v, true
}

// Peek returns the top value without removing it
func (s *Stack[T]) Peek() (v T, ok bool) {
	if s.top == nil {
		return v, false
	}
	return s.top.value, true
}

// Len returns the number of values
func (s *Stack[T]) Len() int {
	return s.size
}

// Items returns the values most recent first
func (s *Stack[T]) Items() []T {
	out := make([]T, 0, s.size)
	for n := s.top; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// Oldest returns the values oldest first, the order they were pushed in
func (s *Stack[T]) Oldest() []T {
	out := make([]T, s.size)
	i := s.size - 1
	for n := s.top; n != nil; n = n.next {
		out[i] = n.value
		i--
	}
	return out
}
