package container

import "github.com/biro-lang/go-sdk/pkg/core"

// Stack is a last-in first-out container. The zero value is an empty stack.
type Stack[T core.Scalar] struct {
	items []T
}

var _ core.Container = (*Stack[string])(nil)

// NewStack pushes items in order, so the last item ends up on top.
func NewStack[T core.Scalar](items ...T) *Stack[T] {
	s := &Stack[T]{items: make([]T, 0, len(items))}
	s.items = append(s.items, items...)
	return s
}

func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, core.ErrEmptyContainer
	}
	v := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return v, nil
}

// Top returns the top element without removing it.
func (s *Stack[T]) Top() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, core.ErrEmptyContainer
	}
	return s.items[len(s.items)-1], nil
}

func (s *Stack[T]) Empty() bool { return s.Len() == 0 }

// Clone returns an independent copy.
func (s *Stack[T]) Clone() *Stack[T] {
	return NewStack(s.items...)
}

func (s *Stack[T]) Kind() core.Kind { return core.KindStack }

func (s *Stack[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Elements returns the elements top to bottom, the order in which
// popping would yield them.
func (s *Stack[T]) Elements() []any {
	if s == nil {
		return nil
	}
	n := len(s.items)
	out := make([]any, n)
	for i, v := range s.items {
		out[n-1-i] = v
	}
	return out
}
