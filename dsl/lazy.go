package dsl

import (
	"context"
	"sync/atomic"

	skema "github.com/reoring/skema"
	js "github.com/reoring/skema/jsonschema"
)

// LazySchema resolves its target on every parse. It is how recursive trees
// are written: either with a factory closing over a variable, or with a
// Deferred cell that is bound once the tree is complete.
type LazySchema struct {
	base
	factory func() skema.Schema
	cell    *atomic.Pointer[schemaBox]
}

type schemaBox struct{ s skema.Schema }

// Lazy calls factory on every parse. A nil result panics with
// *skema.SchemaError.
func Lazy(factory func() skema.Schema) *LazySchema {
	if factory == nil {
		skema.Invalid("Lazy", "factory must not be nil")
	}
	return &LazySchema{factory: factory}
}

// Deferred returns an unbound lazy node; call Bind before parsing.
//
//	node := dsl.Deferred()
//	tree := dsl.Object(dsl.Prop("children", dsl.Array(node)))
//	node.Bind(tree)
func Deferred() *LazySchema {
	return &LazySchema{cell: new(atomic.Pointer[schemaBox])}
}

// Bind sets the target of a Deferred node. Copies made by builder calls
// share the cell, so binding the original binds them too. Binding twice, or
// binding a node made by Lazy, panics.
func (s *LazySchema) Bind(target skema.Schema) {
	requireSchema("Bind", target)
	if s.cell == nil {
		skema.Invalid("Bind", "only Deferred nodes can be bound")
	}
	if !s.cell.CompareAndSwap(nil, &schemaBox{s: target}) {
		skema.Invalid("Bind", "lazy node is already bound")
	}
}

// Resolve returns the current target.
func (s *LazySchema) Resolve() skema.Schema {
	if s.cell != nil {
		box := s.cell.Load()
		if box == nil {
			skema.Invalid("Lazy", "deferred schema was never bound")
		}
		return box.s
	}
	target := s.factory()
	if isNil(target) {
		skema.Invalid("Lazy", "factory returned a nil schema")
	}
	return target
}

func (s *LazySchema) Kind() skema.Kind { return skema.KindLazy }

func (s *LazySchema) Parse(ctx context.Context, v any) (any, error) {
	out, iss := run(ctx, s.Resolve(), v)
	if iss != nil {
		return nil, iss
	}
	return finish(out, s.checks.run(out))
}

func (s *LazySchema) describe() (*js.Schema, error) { return nil, skema.ErrLazyExport }

func (s *LazySchema) withCheck(c check) *LazySchema {
	cp := *s
	cp.checks = cp.checks.with(c)
	return &cp
}
