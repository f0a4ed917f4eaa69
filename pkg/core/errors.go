package core

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors
var (
	ErrOutOfRange       = errors.New("index out of bounds")
	ErrUnsupportedValue = errors.New("unsupported value")
	ErrUnknownType      = errors.New("unknown type")
	ErrEmptyContainer   = errors.New("container is empty")
	ErrArity            = errors.New("wrong number of arguments")
)

// IndexError represents an out-of-range element access.
type IndexError struct {
	// Op is the operation that failed, "get" or "set"
	Op string

	// Position is the position as supplied by the caller, before rounding
	Position float64

	// Index is the rounded position. It is zero when the rounded position
	// is NaN, infinite or does not fit in an int.
	Index int

	// Len is the length of the container at the time of the access
	Len int
}

func (e *IndexError) Error() string {
	if math.Round(e.Position) != float64(e.Index) {
		return fmt.Sprintf("%s index %v with length %d: %v",
			e.Op, e.Position, e.Len, ErrOutOfRange)
	}
	return fmt.Sprintf("%s index %v (rounded to %d) with length %d: %v",
		e.Op, e.Position, e.Index, e.Len, ErrOutOfRange)
}

func (e *IndexError) Unwrap() error {
	return ErrOutOfRange
}

// ValueError represents a value whose shape an operation does not accept.
type ValueError struct {
	Op    string
	Value any
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: %v of type %T", e.Op, ErrUnsupportedValue, e.Value)
}

func (e *ValueError) Unwrap() error {
	return ErrUnsupportedValue
}

// ArityError represents a call with the wrong number of arguments.
type ArityError struct {
	Name string
	Min  int
	Max  int
	Got  int
}

func (e *ArityError) Error() string {
	switch {
	case e.Max < 0:
		return fmt.Sprintf("%s expects at least %d arguments, got %d: %v", e.Name, e.Min, e.Got, ErrArity)
	case e.Min == e.Max:
		return fmt.Sprintf("%s expects %d arguments, got %d: %v", e.Name, e.Min, e.Got, ErrArity)
	default:
		return fmt.Sprintf("%s expects %d to %d arguments, got %d: %v", e.Name, e.Min, e.Max, e.Got, ErrArity)
	}
}

func (e *ArityError) Unwrap() error {
	return ErrArity
}
