package core

import (
	"errors"
	"testing"
)

type fakeContainer struct{ kind Kind }

func (f fakeContainer) Kind() Kind      { return f.kind }
func (f fakeContainer) Len() int        { return 0 }
func (f fakeContainer) Elements() []any { return nil }

func TestKindOf(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  Kind
	}{
		{"float64", 1.5, KindNum},
		{"float32", float32(2), KindNum},
		{"string", "hi", KindStr},
		{"bool", true, KindBool},
		{"float slice", []float64{1, 2}, KindArray},
		{"string slice", []string{}, KindArray},
		{"bool slice", []bool{true}, KindArray},
		{"queue container", fakeContainer{KindQueue}, KindQueue},
		{"stack container", fakeContainer{KindStack}, KindStack},
		{"int", 3, KindUnknown},
		{"nil", nil, KindUnknown},
		{"map", map[string]int{}, KindUnknown},
		{"int slice", []int{1}, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.value); got != tt.want {
				t.Errorf("KindOf(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if got := KindQueue.String(); got != "q" {
		t.Errorf("KindQueue.String() = %q, want %q", got, "q")
	}
	if got := Kind(42).String(); got != "Kind(42)" {
		t.Errorf("Kind(42).String() = %q, want %q", got, "Kind(42)")
	}
	if !KindNum.IsScalar() || KindNum.IsContainer() {
		t.Error("num should be a scalar kind")
	}
	if !KindStack.IsContainer() || KindStack.IsScalar() {
		t.Error("s should be a container kind")
	}
}

func TestParseType(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tests := []struct {
			input string
			want  Type
		}{
			{"num", Type{Elem: KindNum}},
			{"str", Type{Elem: KindStr}},
			{"bool", Type{Elem: KindBool}},
			{"a num", Type{Container: KindArray, Elem: KindNum}},
			{"q str", Type{Container: KindQueue, Elem: KindStr}},
			{"  s   bool ", Type{Container: KindStack, Elem: KindBool}},
		}

		for _, tt := range tests {
			got, err := ParseType(tt.input)
			if err != nil {
				t.Fatalf("ParseType(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseType(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, input := range []string{"", "int", "a", "num num", "a q", "q num str", "unknown"} {
			_, err := ParseType(input)
			if !errors.Is(err, ErrUnknownType) {
				t.Errorf("ParseType(%q) error = %v, want ErrUnknownType", input, err)
			}
		}
	})

	t.Run("round trip", func(t *testing.T) {
		for _, input := range []string{"num", "a num", "q str", "s bool"} {
			typ, err := ParseType(input)
			if err != nil {
				t.Fatalf("ParseType(%q) error = %v", input, err)
			}
			if got := typ.String(); got != input {
				t.Errorf("String() = %q, want %q", got, input)
			}
		}
	})
}
