package container

import (
	"testing"

	"github.com/biro-lang/go-sdk/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue(t *testing.T) {
	t.Run("fifo order", func(t *testing.T) {
		q := NewQueue(1.0, 2.0)
		q.Push(3)

		assert.Equal(t, 3, q.Len())
		assert.Equal(t, []any{1.0, 2.0, 3.0}, q.Elements())

		front, err := q.Front()
		require.NoError(t, err)
		assert.Equal(t, 1.0, front)

		for _, want := range []float64{1, 2, 3} {
			got, err := q.Pop()
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
		assert.True(t, q.Empty())
	})

	t.Run("empty", func(t *testing.T) {
		var q Queue[string]
		assert.True(t, q.Empty())

		_, err := q.Pop()
		assert.ErrorIs(t, err, core.ErrEmptyContainer)
		_, err = q.Front()
		assert.ErrorIs(t, err, core.ErrEmptyContainer)
		assert.Empty(t, q.Elements())
	})

	t.Run("clone is independent", func(t *testing.T) {
		q := NewQueue("a", "b")
		c := q.Clone()
		_, err := c.Pop()
		require.NoError(t, err)

		assert.Equal(t, 2, q.Len())
		assert.Equal(t, 1, c.Len())
	})

	t.Run("elements is a snapshot", func(t *testing.T) {
		q := NewQueue(true, false)
		elems := q.Elements()
		elems[0] = false

		front, err := q.Front()
		require.NoError(t, err)
		assert.True(t, front)
	})

	t.Run("nil queue", func(t *testing.T) {
		var q *Queue[bool]
		assert.Equal(t, 0, q.Len())
		assert.Nil(t, q.Elements())
		assert.Equal(t, core.KindQueue, q.Kind())
	})
}

func TestStack(t *testing.T) {
	t.Run("lifo order", func(t *testing.T) {
		s := NewStack("a", "b")
		s.Push("c")

		assert.Equal(t, []any{"c", "b", "a"}, s.Elements())

		top, err := s.Top()
		require.NoError(t, err)
		assert.Equal(t, "c", top)

		for _, want := range []string{"c", "b", "a"} {
			got, err := s.Pop()
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
		assert.True(t, s.Empty())
	})

	t.Run("empty", func(t *testing.T) {
		var s Stack[float64]
		_, err := s.Pop()
		assert.ErrorIs(t, err, core.ErrEmptyContainer)
		_, err = s.Top()
		assert.ErrorIs(t, err, core.ErrEmptyContainer)
	})

	t.Run("clone is independent", func(t *testing.T) {
		s := NewStack(1.0, 2.0)
		c := s.Clone()
		c.Push(3)

		assert.Equal(t, 2, s.Len())
		assert.Equal(t, 3, c.Len())
	})
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		value any
		kind  core.Kind
		elems []any
		ok    bool
	}{
		{"float64 slice", []float64{1, 2}, core.KindArray, []any{1.0, 2.0}, true},
		{"float32 slice", []float32{1}, core.KindArray, []any{float32(1)}, true},
		{"string slice", []string{"x"}, core.KindArray, []any{"x"}, true},
		{"bool slice", []bool{}, core.KindArray, []any{}, true},
		{"queue", NewQueue(1.0), core.KindQueue, []any{1.0}, true},
		{"stack", NewStack(1.0, 2.0), core.KindStack, []any{2.0, 1.0}, true},
		{"array", Array[string]{"y"}, core.KindArray, []any{"y"}, true},
		{"int slice", []int{1}, core.KindUnknown, nil, false},
		{"scalar", 1.0, core.KindUnknown, nil, false},
		{"nil", nil, core.KindUnknown, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Wrap(tt.value)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.kind, c.Kind())
			assert.Equal(t, tt.elems, c.Elements())
			assert.Equal(t, core.KindOf(tt.value), c.Kind())
		})
	}
}
