// Package registry names schemas so that they can reference each other and
// be loaded from a descriptor store.
//
//	reg := registry.New()
//	reg.Register("user", g.Object(
//	    g.Prop("name", g.String()),
//	    g.Prop("manager", reg.Ref("user").Optional()),
//	))
package registry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	skema "github.com/reoring/skema"
	"github.com/reoring/skema/dsl"
	"github.com/reoring/skema/importer"
)

// ErrNotFound is returned when a name is neither registered nor stored.
var ErrNotFound = errors.New("registry: schema not found")

// Registry maps names to schemas. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]skema.Schema
	logger  *slog.Logger
}

type Option func(*Registry)

// WithLogger sets the logger used for store loads.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{schemas: make(map[string]skema.Schema)}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return r
}

// Register binds name to s, replacing any previous binding.
func (r *Registry) Register(name string, s skema.Schema) {
	if name == "" {
		skema.Invalid("Register", "name must not be empty")
	}
	if s == nil {
		skema.Invalid("Register", "schema %q must not be nil", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas[name] = s
}

// Lookup returns the schema bound to name.
func (r *Registry) Lookup(name string) (skema.Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[name]
	return s, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.schemas))
	for n := range r.schemas {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Ref returns a lazy node that resolves name on every parse, so named
// schemas may refer to each other in any order. Parsing through a Ref whose
// name is unknown panics with *skema.SchemaError.
func (r *Registry) Ref(name string) *dsl.LazySchema {
	return dsl.Lazy(func() skema.Schema {
		s, ok := r.Lookup(name)
		if !ok {
			skema.Invalid("Ref", "schema %q is not registered", name)
		}
		return s
	})
}

// Load reads the descriptor stored under name, imports it and registers the
// result.
func (r *Registry) Load(ctx context.Context, store DocumentStore, name string) (skema.Schema, error) {
	doc, err := store.Get(ctx, name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			r.logger.DebugContext(ctx, "schema store miss", "name", name)
		}
		return nil, err
	}
	r.logger.DebugContext(ctx, "schema store hit", "name", name)
	s, diag, err := importer.Import(doc)
	if err != nil {
		return nil, fmt.Errorf("registry: load %q: %w", name, err)
	}
	for _, w := range diag.Warnings() {
		r.logger.WarnContext(ctx, "schema import warning", "name", name, "warning", w)
	}
	r.Register(name, s)
	return s, nil
}

// LoadAll loads every document in store and returns the loaded names.
func (r *Registry) LoadAll(ctx context.Context, store DocumentStore) ([]string, error) {
	names, err := store.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, n := range names {
		if _, err := r.Load(ctx, store, n); err != nil {
			return nil, err
		}
	}
	return names, nil
}

// Resolve returns the registered schema, loading it from store on a miss.
// A nil store only consults the registry.
func (r *Registry) Resolve(ctx context.Context, store DocumentStore, name string) (skema.Schema, error) {
	if s, ok := r.Lookup(name); ok {
		return s, nil
	}
	if store == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return r.Load(ctx, store, name)
}
