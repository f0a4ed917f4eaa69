package builtins

import (
	"math"
	"strconv"
	"strings"

	"github.com/biro-lang/go-sdk/pkg/container"
	"github.com/biro-lang/go-sdk/pkg/core"
)

const elementSeparator = ", "

// Format renders a single value the way say would, using default options.
func Format(v any) (string, error) {
	var sb strings.Builder
	if err := render(&sb, v, false); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func render(sb *strings.Builder, v any, legacyBackspace bool) error {
	if s, ok := formatScalar(v); ok {
		sb.WriteString(s)
		return nil
	}

	c, ok := container.Wrap(v)
	if !ok {
		return &core.ValueError{Op: "say", Value: v}
	}

	elems := c.Elements()
	parts := make([]string, len(elems))
	for i, e := range elems {
		s, ok := formatScalar(e)
		if !ok {
			return &core.ValueError{Op: "say", Value: e}
		}
		parts[i] = s
	}

	sb.WriteByte('[')
	if legacyBackspace {
		// The cursor is moved back over the final separator, or over the
		// opening bracket when there are no elements.
		for _, s := range parts {
			sb.WriteString(s)
			sb.WriteString(elementSeparator)
		}
		sb.WriteString("\b\b")
	} else {
		sb.WriteString(strings.Join(parts, elementSeparator))
	}
	sb.WriteByte(']')
	return nil
}

func formatScalar(v any) (string, bool) {
	switch v := v.(type) {
	case float64:
		return formatNum(v, 64), true
	case float32:
		return formatNum(float64(v), 32), true
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	}
	return "", false
}

// formatNum uses six significant digits and drops trailing zeros.
func formatNum(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'g', 6, bitSize)
}
