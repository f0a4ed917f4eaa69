package builtins

import "errors"

// Common error variables for registry operations.
var (
	// ErrBuiltinNotFound indicates a requested builtin doesn't exist
	ErrBuiltinNotFound = errors.New("builtin not found")

	// ErrDuplicateBuiltin indicates a builtin with the same name is already registered
	ErrDuplicateBuiltin = errors.New("builtin already registered")

	// ErrInvalidBuiltin indicates a builtin definition is incomplete
	ErrInvalidBuiltin = errors.New("invalid builtin")
)
