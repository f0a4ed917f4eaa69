// Package literal parses command-line arguments into biro values.
//
// A literal is JSON: a number, a string, a boolean or an array of one of
// those. A "q:" or "s:" prefix turns an array into a queue or a stack.
// Text that is not JSON and does not look like an array or object is taken
// as a bare string, so `hello` and `"hello"` are the same literal and
// `q:hello` is the string "q:hello".
package literal

import (
	"fmt"
	"strings"

	json "github.com/json-iterator/go"

	"github.com/biro-lang/go-sdk/pkg/container"
	"github.com/biro-lang/go-sdk/pkg/core"
)

// Parse converts s into a float64, string, bool, typed slice, queue or stack.
func Parse(s string) (any, error) {
	kind := core.KindArray
	body := s
	switch {
	case strings.HasPrefix(s, "q:"):
		kind, body = core.KindQueue, s[2:]
	case strings.HasPrefix(s, "s:"):
		kind, body = core.KindStack, s[2:]
	}

	var raw any
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		trimmed := strings.TrimSpace(body)
		if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
			return nil, fmt.Errorf("invalid literal %q: %w", s, err)
		}
		return s, nil
	}

	if kind != core.KindArray {
		items, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("invalid literal %q: %s needs an array", s, kind)
		}
		return buildContainer(s, kind, items)
	}

	switch v := raw.(type) {
	case float64, string, bool:
		return v, nil
	case []any:
		return buildContainer(s, core.KindArray, v)
	}
	return nil, fmt.Errorf("invalid literal %q: %w", s, &core.ValueError{Op: "parse", Value: raw})
}

// buildContainer makes a container of the element kind of items.
// An empty array is a num container.
func buildContainer(src string, kind core.Kind, items []any) (any, error) {
	elem := core.KindNum
	if len(items) > 0 {
		elem = core.KindOf(items[0])
	}

	switch elem {
	case core.KindNum:
		vals, err := collect[float64](src, items)
		if err != nil {
			return nil, err
		}
		return shape(kind, vals), nil
	case core.KindStr:
		vals, err := collect[string](src, items)
		if err != nil {
			return nil, err
		}
		return shape(kind, vals), nil
	case core.KindBool:
		vals, err := collect[bool](src, items)
		if err != nil {
			return nil, err
		}
		return shape(kind, vals), nil
	}
	return nil, fmt.Errorf("invalid literal %q: elements must be num, str or bool", src)
}

func collect[T float64 | string | bool](src string, items []any) ([]T, error) {
	out := make([]T, len(items))
	for i, item := range items {
		v, ok := item.(T)
		if !ok {
			return nil, fmt.Errorf("invalid literal %q: element %d is %s, want %s",
				src, i, core.KindOf(item), core.KindOf(out[0]))
		}
		out[i] = v
	}
	return out, nil
}

func shape[T float64 | string | bool](kind core.Kind, vals []T) any {
	switch kind {
	case core.KindQueue:
		return container.NewQueue(vals...)
	case core.KindStack:
		return container.NewStack(vals...)
	}
	return vals
}
