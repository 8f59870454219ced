// Package undo keeps the in-session history of engine snapshots.
//
// A Stack is not safe for concurrent use: engines mutate it from the single
// goroutine that handles user input.
package undo

// Stack is a LIFO of snapshots. With a capacity greater than zero it behaves
// as a ring: pushing onto a full stack evicts the oldest snapshot.
type Stack[T any] struct {
	items    []T
	head     int // index of the oldest entry when bounded
	size     int
	capacity int
}

func NewStack[T any](capacity int) *Stack[T] {
	if capacity < 0 {
		capacity = 0
	}
	s := &Stack[T]{capacity: capacity}
	if capacity > 0 {
		s.items = make([]T, capacity)
	}
	return s
}

func (s *Stack[T]) Push(v T) {
	if s.capacity == 0 {
		s.items = append(s.items, v)
		s.size++
		return
	}
	if s.size == s.capacity {
		s.items[s.head] = v
		s.head = (s.head + 1) % s.capacity
		return
	}
	s.items[(s.head+s.size)%s.capacity] = v
	s.size++
}

// Pop removes and returns the most recent snapshot. ok is false when there is
// nothing to undo.
func (s *Stack[T]) Pop() (v T, ok bool) {
	if s.size == 0 {
		return v, false
	}
	var zero T
	idx := s.size - 1
	if s.capacity > 0 {
		idx = (s.head + s.size - 1) % s.capacity
	}
	v = s.items[idx]
	s.items[idx] = zero
	s.size--
	if s.capacity == 0 {
		s.items = s.items[:s.size]
	}
	return v, true
}

func (s *Stack[T]) Peek() (v T, ok bool) {
	if s.size == 0 {
		return v, false
	}
	if s.capacity > 0 {
		return s.items[(s.head+s.size-1)%s.capacity], true
	}
	return s.items[s.size-1], true
}

func (s *Stack[T]) Size() int {
	return s.size
}

func (s *Stack[T]) Capacity() int {
	return s.capacity
}

func (s *Stack[T]) Clear() {
	var zero T
	for i := range s.items {
		s.items[i] = zero
	}
	if s.capacity == 0 {
		s.items = s.items[:0]
	}
	s.head = 0
	s.size = 0
}

// Items returns the snapshots from oldest to newest.
func (s *Stack[T]) Items() []T {
	out := make([]T, 0, s.size)
	for i := 0; i < s.size; i++ {
		if s.capacity > 0 {
			out = append(out, s.items[(s.head+i)%s.capacity])
		} else {
			out = append(out, s.items[i])
		}
	}
	return out
}
