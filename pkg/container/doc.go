// Package container provides the biro array, queue and stack types.
//
// Every container holds elements of a single scalar kind and implements
// core.Container, so it can be passed to the say builtin and to Len.
// Elements returns a snapshot; rendering a container never drains it.
//
//	q := container.NewQueue("a", "b")
//	q.Push("c")
//	front, _ := q.Pop() // "a"
//
//	s := container.NewStack(1.0, 2.0, 3.0)
//	top, _ := s.Top() // 3
package container
