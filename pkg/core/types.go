package core

import (
	"fmt"
	"strings"
)

// Kind identifies the biro shape of a value.
type Kind int

const (
	KindUnknown Kind = iota
	KindNum
	KindStr
	KindBool
	KindArray
	KindQueue
	KindStack
)

var kindNames = map[Kind]string{
	KindUnknown: "unknown",
	KindNum:     "num",
	KindStr:     "str",
	KindBool:    "bool",
	KindArray:   "a",
	KindQueue:   "q",
	KindStack:   "s",
}

// String returns the biro spelling of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsScalar reports whether k is num, str or bool.
func (k Kind) IsScalar() bool {
	return k == KindNum || k == KindStr || k == KindBool
}

// IsContainer reports whether k is an array, queue or stack.
func (k Kind) IsContainer() bool {
	return k == KindArray || k == KindQueue || k == KindStack
}

// Scalar is the set of Go types that can appear as a biro scalar.
type Scalar interface {
	~float32 | ~float64 | ~string | ~bool
}

// Container is implemented by every biro container.
type Container interface {
	// Kind returns KindArray, KindQueue or KindStack
	Kind() Kind

	// Len returns the number of elements
	Len() int

	// Elements returns a copy of the elements in rendering order.
	// Modifying the result does not affect the container.
	Elements() []any
}

// Type is a biro type declaration such as "num" or "q str".
// Container is KindUnknown for plain scalars.
type Type struct {
	Container Kind
	Elem      Kind
}

// ParseType parses a biro type name. It accepts a bare scalar name
// ("num", "str", "bool") or a container letter followed by a scalar name
// ("a num", "q str", "s bool").
func ParseType(s string) (Type, error) {
	fields := strings.Fields(s)
	switch len(fields) {
	case 1:
		elem, err := parseKind(fields[0])
		if err != nil || !elem.IsScalar() {
			return Type{}, fmt.Errorf("%w: %q", ErrUnknownType, s)
		}
		return Type{Elem: elem}, nil
	case 2:
		container, err := parseKind(fields[0])
		if err != nil || !container.IsContainer() {
			return Type{}, fmt.Errorf("%w: %q", ErrUnknownType, s)
		}
		elem, err := parseKind(fields[1])
		if err != nil || !elem.IsScalar() {
			return Type{}, fmt.Errorf("%w: %q", ErrUnknownType, s)
		}
		return Type{Container: container, Elem: elem}, nil
	}
	return Type{}, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

func parseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if k != KindUnknown && n == name {
			return k, nil
		}
	}
	return KindUnknown, ErrUnknownType
}

// String returns the declaration form accepted by ParseType.
func (t Type) String() string {
	if t.Container == KindUnknown {
		return t.Elem.String()
	}
	return t.Container.String() + " " + t.Elem.String()
}

// KindOf classifies a Go value. Plain slices of scalars are arrays.
func KindOf(v any) Kind {
	switch v := v.(type) {
	case float32, float64:
		return KindNum
	case string:
		return KindStr
	case bool:
		return KindBool
	case []float32, []float64, []string, []bool:
		return KindArray
	case Container:
		return v.Kind()
	}
	return KindUnknown
}
