package builtins

import (
	"fmt"
	"math"
	"reflect"

	"golang.org/x/exp/constraints"

	"github.com/biro-lang/go-sdk/pkg/core"
)

// Index returns the element of vec at pos rounded half away from zero.
func Index[T any, F constraints.Float](vec []T, pos F) (T, error) {
	i, err := resolveIndex("get", float64(pos), len(vec))
	if err != nil {
		var zero T
		return zero, err
	}
	return vec[i], nil
}

// SetIndex stores value at pos rounded half away from zero and returns the
// element it replaced. vec is left untouched on error.
func SetIndex[T any, F constraints.Float](vec []T, pos F, value T) (T, error) {
	i, err := resolveIndex("set", float64(pos), len(vec))
	if err != nil {
		var zero T
		return zero, err
	}
	prev := vec[i]
	vec[i] = value
	return prev, nil
}

func resolveIndex(op string, pos float64, n int) (int, error) {
	r := math.Round(pos)
	if math.IsNaN(r) || r < 0 || r >= float64(n) {
		idx := 0
		if !math.IsNaN(r) && math.Abs(r) < math.MaxInt {
			idx = int(r)
		}
		return 0, &core.IndexError{Op: op, Position: pos, Index: idx, Len: n}
	}
	return int(r), nil
}

// IndexValue is the dynamically typed form of Index. vec may be any slice,
// including a container.Array.
func IndexValue(vec any, pos float64) (any, error) {
	rv, err := sliceValue("index", vec)
	if err != nil {
		return nil, err
	}
	i, err := resolveIndex("get", pos, rv.Len())
	if err != nil {
		return nil, err
	}
	return rv.Index(i).Interface(), nil
}

// SetIndexValue is the dynamically typed form of SetIndex. value must be
// assignable to the element type of vec; numbers are converted between
// float widths.
func SetIndexValue(vec any, pos float64, value any) (any, error) {
	rv, err := sliceValue("index", vec)
	if err != nil {
		return nil, err
	}

	elemType := rv.Type().Elem()
	nv := reflect.ValueOf(value)
	switch {
	case !nv.IsValid():
		return nil, &core.ValueError{Op: "index", Value: value}
	case nv.Type().AssignableTo(elemType):
	case isFloatKind(nv.Kind()) && isFloatKind(elemType.Kind()):
		nv = nv.Convert(elemType)
	default:
		return nil, fmt.Errorf("cannot store %T in %v: %w",
			value, rv.Type(), &core.ValueError{Op: "index", Value: value})
	}

	i, err := resolveIndex("set", pos, rv.Len())
	if err != nil {
		return nil, err
	}
	slot := rv.Index(i)
	prev := slot.Interface()
	slot.Set(nv)
	return prev, nil
}

func sliceValue(op string, vec any) (reflect.Value, error) {
	if c, ok := vec.(core.Container); ok && c.Kind() != core.KindArray {
		return reflect.Value{}, &core.ValueError{Op: op, Value: vec}
	}
	rv := reflect.ValueOf(vec)
	if rv.Kind() != reflect.Slice {
		return reflect.Value{}, &core.ValueError{Op: op, Value: vec}
	}
	return rv, nil
}

func isFloatKind(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}
