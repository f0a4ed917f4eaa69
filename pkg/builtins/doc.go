// Package builtins implements the runtime builtins of the biro language.
//
// The package provides:
//
//   - index: element access and replacement on a sequence, addressed by a
//     floating-point position rounded half away from zero
//   - say: rendering of numbers, strings, booleans, arrays, queues and
//     stacks to a writer
//   - len: the length of a string or container
//   - ask: prompting for a line of input
//
// # Index
//
// Index and SetIndex are generic over the element type and the position's
// float type. A position that does not round into [0, len) yields a
// *core.IndexError wrapping core.ErrOutOfRange:
//
//	v, err := builtins.Index([]string{"a", "b"}, 0.6) // "b"
//	_, err = builtins.Index([]string{"a", "b"}, 1.5)  // out of range
//
// # Say
//
// A Printer renders each argument in order with no separator and no
// trailing newline. Containers render as "[e1, e2]"; stacks list their top
// element first:
//
//	p := builtins.NewPrinter(os.Stdout, nil)
//	p.Say("total: ", 3.0, " ", []bool{true, false}) // total: 3 [true, false]
//
// # Registry
//
// Builtins can also be called by name through a Registry, which checks
// arity and logs failures:
//
//	reg := builtins.NewRegistry()
//	if err := builtins.RegisterDefaults(reg, p); err != nil {
//		return err
//	}
//	prev, err := reg.Call(ctx, "index", []float64{1, 2}, 1.0, 5.0)
package builtins
