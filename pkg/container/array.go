package container

import "github.com/biro-lang/go-sdk/pkg/core"

// Array is a biro sequence backed by a slice.
type Array[T core.Scalar] []T

var _ core.Container = Array[float64](nil)

func (a Array[T]) Kind() core.Kind { return core.KindArray }

func (a Array[T]) Len() int { return len(a) }

func (a Array[T]) Elements() []any {
	out := make([]any, len(a))
	for i, v := range a {
		out[i] = v
	}
	return out
}

// Wrap lifts a plain slice of scalars into an Array. Values that already
// implement core.Container are returned as is.
func Wrap(v any) (core.Container, bool) {
	switch v := v.(type) {
	case []float64:
		return Array[float64](v), true
	case []float32:
		return Array[float32](v), true
	case []string:
		return Array[string](v), true
	case []bool:
		return Array[bool](v), true
	case core.Container:
		return v, true
	}
	return nil, false
}
