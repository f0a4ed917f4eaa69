// Package core provides the foundational value types shared by the biro
// runtime builtins.
//
// The biro language knows three scalar kinds and three container kinds:
//   - num: a floating-point number
//   - str: a string
//   - bool: a boolean
//   - a:   an array (sequence) of one scalar kind
//   - q:   a first-in first-out queue of one scalar kind
//   - s:   a last-in first-out stack of one scalar kind
//
// Go values are mapped onto these kinds by KindOf. Containers other than
// plain slices implement the Container interface, which exposes a snapshot
// of their elements in rendering order.
//
// Example usage:
//
//	import "github.com/biro-lang/go-sdk/pkg/core"
//
//	t, err := core.ParseType("q num")
//	if err != nil {
//		return err
//	}
//	fmt.Println(t.Container, t.Elem) // q num
package core
