// Package stack provides the LIFO containers used by the parser and
// the tree iterator.
package stack

// Stack is a LIFO of T. The zero value is an empty stack ready to use.
type Stack[T any] []T

func (s *Stack[T]) Push(items ...T) {
	*s = append(*s, items...)
}

// Pop removes and returns the last pushed item. The second return value
// is false when the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	l := s.Len()
	if l == 0 {
		return zero, false
	}
	item := (*s)[l-1]
	(*s)[l-1] = zero // drop the reference so the item can be collected
	*s = (*s)[:l-1]

	if c := s.Cap(); c > 20 && c > l*2 {
		s.Realloc()
	}
	return item, true
}

// Peek returns the last pushed item without removing it.
func (s Stack[T]) Peek() (T, bool) {
	var zero T
	if l := s.Len(); l > 0 {
		return s[l-1], true
	}
	return zero, false
}

func (s *Stack[T]) Realloc() {
	*s = append(Stack[T](nil), *s...)
}

// Reset empties the stack, keeping the allocated capacity.
func (s *Stack[T]) Reset() {
	clear(*s)
	*s = (*s)[:0]
}

// Items returns the items from the bottom of the stack to the top.
func (s Stack[T]) Items() []T {
	return s
}

func (s Stack[T]) Len() int {
	return len(s)
}

func (s Stack[T]) Cap() int {
	return cap(s)
}
