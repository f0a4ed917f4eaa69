package builtins

import (
	"context"
	"fmt"

	"github.com/biro-lang/go-sdk/pkg/core"
)

// RegisterDefaults registers say, ask, index and len. say and ask write
// through p.
func RegisterDefaults(reg *Registry, p *Printer) error {
	defaults := []*Builtin{
		NewSayBuiltin(p),
		NewAskBuiltin(p),
		NewIndexBuiltin(),
		NewLenBuiltin(),
	}

	for _, b := range defaults {
		if err := reg.Register(b); err != nil {
			return fmt.Errorf("failed to register builtin %q: %w", b.Name, err)
		}
	}
	return nil
}

// NewSayBuiltin creates the say builtin. It returns nil.
func NewSayBuiltin(p *Printer) *Builtin {
	return &Builtin{
		Name:        "say",
		Description: "Print numbers, strings, booleans and containers",
		MinArgs:     1,
		MaxArgs:     -1,
		Func: func(_ context.Context, args []any) (any, error) {
			return nil, p.Say(args...)
		},
	}
}

// NewAskBuiltin creates the ask builtin. It returns the line read as a string.
func NewAskBuiltin(p *Printer) *Builtin {
	return &Builtin{
		Name:        "ask",
		Description: "Print a prompt and read a line of input",
		MinArgs:     0,
		MaxArgs:     -1,
		Func: func(_ context.Context, args []any) (any, error) {
			return p.Ask(args...)
		},
	}
}

// NewIndexBuiltin creates the index builtin. With two arguments it returns
// the element at the position; with a third it stores that value and
// returns the element it replaced.
func NewIndexBuiltin() *Builtin {
	return &Builtin{
		Name:        "index",
		Description: "Read or replace an array element by rounded position",
		MinArgs:     2,
		MaxArgs:     3,
		Func: func(_ context.Context, args []any) (any, error) {
			pos, err := position(args[1])
			if err != nil {
				return nil, err
			}
			if len(args) == 3 {
				return SetIndexValue(args[0], pos, args[2])
			}
			return IndexValue(args[0], pos)
		},
	}
}

// NewLenBuiltin creates the len builtin. It returns a float64, the biro num type.
func NewLenBuiltin() *Builtin {
	return &Builtin{
		Name:        "len",
		Description: "Length of a string or container",
		MinArgs:     1,
		MaxArgs:     1,
		Func: func(_ context.Context, args []any) (any, error) {
			n, err := Len(args[0])
			if err != nil {
				return nil, err
			}
			return float64(n), nil
		},
	}
}

func position(v any) (float64, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	}
	return 0, fmt.Errorf("position: %w", &core.ValueError{Op: "index", Value: v})
}
