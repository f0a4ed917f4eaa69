package builtins

import (
	"unicode/utf8"

	"github.com/biro-lang/go-sdk/pkg/container"
	"github.com/biro-lang/go-sdk/pkg/core"
)

// Len returns the number of runes in a string or the number of elements in
// a container.
func Len(v any) (int, error) {
	if s, ok := v.(string); ok {
		return utf8.RuneCountInString(s), nil
	}
	if c, ok := container.Wrap(v); ok {
		return c.Len(), nil
	}
	return 0, &core.ValueError{Op: "len", Value: v}
}
