package builtins

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/biro-lang/go-sdk/internal/logging"
	"github.com/biro-lang/go-sdk/pkg/core"
)

// Func is the dynamically typed implementation of a builtin.
type Func func(ctx context.Context, args []any) (any, error)

// Builtin describes a function callable by name.
type Builtin struct {
	// Name is the identifier used in biro source, e.g. "say"
	Name string

	// Description explains what the builtin does
	Description string

	// MinArgs is the minimum number of arguments
	MinArgs int

	// MaxArgs is the maximum number of arguments, or -1 for no limit
	MaxArgs int

	// Func implements the builtin
	Func Func
}

// Validate checks that the builtin is complete.
func (b *Builtin) Validate() error {
	if b.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidBuiltin)
	}
	if b.Func == nil {
		return fmt.Errorf("%w: %s has no implementation", ErrInvalidBuiltin, b.Name)
	}
	if b.MinArgs < 0 || (b.MaxArgs >= 0 && b.MaxArgs < b.MinArgs) {
		return fmt.Errorf("%w: %s has arity %d..%d", ErrInvalidBuiltin, b.Name, b.MinArgs, b.MaxArgs)
	}
	return nil
}

func (b *Builtin) checkArity(n int) error {
	if n < b.MinArgs || (b.MaxArgs >= 0 && n > b.MaxArgs) {
		return &core.ArityError{Name: b.Name, Min: b.MinArgs, Max: b.MaxArgs, Got: n}
	}
	return nil
}

// Registry manages the collection of available builtins.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	builtins map[string]*Builtin
	logger   logrus.FieldLogger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used to report failed calls.
func WithLogger(logger logrus.FieldLogger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		builtins: make(map[string]*Builtin),
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a builtin. It fails if the builtin is invalid or its name
// is taken.
func (r *Registry) Register(b *Builtin) error {
	if b == nil {
		return fmt.Errorf("%w: builtin cannot be nil", ErrInvalidBuiltin)
	}
	if err := b.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.builtins[b.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateBuiltin, b.Name)
	}

	// Store a copy to prevent external modifications
	c := *b
	r.builtins[b.Name] = &c
	return nil
}

// Unregister removes a builtin by name.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.builtins[name]; !exists {
		return fmt.Errorf("%w: %q", ErrBuiltinNotFound, name)
	}
	delete(r.builtins, name)
	return nil
}

// Get returns a copy of the named builtin.
func (r *Registry) Get(name string) (*Builtin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, exists := r.builtins[name]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrBuiltinNotFound, name)
	}
	c := *b
	return &c, nil
}

// List returns copies of all builtins sorted by name.
func (r *Registry) List() []*Builtin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Builtin, 0, len(r.builtins))
	for _, b := range r.builtins {
		c := *b
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Call invokes the named builtin after checking its arity.
func (r *Registry) Call(ctx context.Context, name string, args ...any) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	b, exists := r.builtins[name]
	r.mu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrBuiltinNotFound, name)
	}

	if err := b.checkArity(len(args)); err != nil {
		return nil, err
	}

	result, err := b.Func(ctx, args)
	if err != nil {
		entry := r.logger.WithField("builtin", name).WithError(err)
		var idxErr *core.IndexError
		if errors.As(err, &idxErr) {
			entry.WithFields(logrus.Fields{
				"position": idxErr.Position,
				"len":      idxErr.Len,
			}).Debug("index out of range")
		} else {
			entry.Debug("builtin failed")
		}
		return nil, err
	}
	return result, nil
}
