package container

import "github.com/biro-lang/go-sdk/pkg/core"

// Queue is a first-in first-out container. The zero value is an empty queue.
type Queue[T core.Scalar] struct {
	items []T
}

var _ core.Container = (*Queue[string])(nil)

// NewQueue returns a queue holding items, the first item at the front.
func NewQueue[T core.Scalar](items ...T) *Queue[T] {
	q := &Queue[T]{items: make([]T, 0, len(items))}
	q.items = append(q.items, items...)
	return q
}

// Push appends v at the back.
func (q *Queue[T]) Push(v T) {
	q.items = append(q.items, v)
}

// Pop removes and returns the front element.
func (q *Queue[T]) Pop() (T, error) {
	var zero T
	if len(q.items) == 0 {
		return zero, core.ErrEmptyContainer
	}
	v := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]
	return v, nil
}

// Front returns the front element without removing it.
func (q *Queue[T]) Front() (T, error) {
	if len(q.items) == 0 {
		var zero T
		return zero, core.ErrEmptyContainer
	}
	return q.items[0], nil
}

func (q *Queue[T]) Empty() bool { return q.Len() == 0 }

// Clone returns an independent copy.
func (q *Queue[T]) Clone() *Queue[T] {
	return NewQueue(q.items...)
}

func (q *Queue[T]) Kind() core.Kind { return core.KindQueue }

func (q *Queue[T]) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Elements returns the elements front to back.
func (q *Queue[T]) Elements() []any {
	if q == nil {
		return nil
	}
	out := make([]any, len(q.items))
	for i, v := range q.items {
		out[i] = v
	}
	return out
}
