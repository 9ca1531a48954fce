package dsl

import (
	"context"

	skema "github.com/reoring/skema"
)

// OptionalSchema marks a key or slot as omittable. Present values are still
// parsed by the inner schema.
type OptionalSchema struct {
	base
	inner skema.Schema
}

// Optional wraps s so containers may omit it.
func Optional(s skema.Schema) *OptionalSchema {
	requireSchema("Optional", s)
	return &OptionalSchema{inner: s}
}

func (s *OptionalSchema) Kind() skema.Kind     { return skema.KindOptional }
func (s *OptionalSchema) Inner() skema.Schema  { return s.inner }
func (s *OptionalSchema) IsOptionalLike() bool { return true }
func (s *OptionalSchema) HasDefault() bool     { return s.inner.HasDefault() }

func (s *OptionalSchema) DefaultValue() (any, error) { return s.inner.DefaultValue() }

func (s *OptionalSchema) Parse(ctx context.Context, v any) (any, error) {
	out, iss := run(ctx, s.inner, v)
	if iss != nil {
		return nil, iss
	}
	return finish(out, s.checks.run(out))
}

func (s *OptionalSchema) unwrap(m *meta) skema.Schema {
	m.optional = true
	return s.inner
}

func (s *OptionalSchema) withCheck(c check) *OptionalSchema {
	cp := *s
	cp.checks = cp.checks.with(c)
	return &cp
}

// NullableSchema accepts nil in addition to whatever the inner schema
// accepts.
type NullableSchema struct {
	base
	inner skema.Schema
}

func Nullable(s skema.Schema) *NullableSchema {
	requireSchema("Nullable", s)
	return &NullableSchema{inner: s}
}

func (s *NullableSchema) Kind() skema.Kind     { return skema.KindNullable }
func (s *NullableSchema) Inner() skema.Schema  { return s.inner }
func (s *NullableSchema) IsOptionalLike() bool { return s.inner.IsOptionalLike() }
func (s *NullableSchema) HasDefault() bool     { return s.inner.HasDefault() }

func (s *NullableSchema) DefaultValue() (any, error) { return s.inner.DefaultValue() }

func (s *NullableSchema) Parse(ctx context.Context, v any) (any, error) {
	if v == nil {
		return finish(nil, s.checks.run(nil))
	}
	out, iss := run(ctx, s.inner, v)
	if iss != nil {
		return nil, iss
	}
	return finish(out, s.checks.run(out))
}

func (s *NullableSchema) unwrap(m *meta) skema.Schema {
	m.nullable = true
	return s.inner
}

func (s *NullableSchema) withCheck(c check) *NullableSchema {
	cp := *s
	cp.checks = cp.checks.with(c)
	return &cp
}

// DefaultSchema supplies a value when the enclosing container finds the key
// or slot absent. Present values are parsed by the inner schema as usual.
type DefaultSchema struct {
	base
	inner    skema.Schema
	value    any
	producer func() any
}

// Default returns a wrapper whose default is v.
func Default(s skema.Schema, v any) *DefaultSchema {
	requireSchema("Default", s)
	return &DefaultSchema{inner: s, value: v}
}

// DefaultFunc returns a wrapper that calls fn each time a default is needed.
func DefaultFunc(s skema.Schema, fn func() any) *DefaultSchema {
	requireSchema("DefaultFunc", s)
	if fn == nil {
		skema.Invalid("DefaultFunc", "producer must not be nil")
	}
	return &DefaultSchema{inner: s, producer: fn}
}

func (s *DefaultSchema) Kind() skema.Kind     { return skema.KindDefault }
func (s *DefaultSchema) Inner() skema.Schema  { return s.inner }
func (s *DefaultSchema) IsOptionalLike() bool { return true }
func (s *DefaultSchema) HasDefault() bool     { return true }

func (s *DefaultSchema) DefaultValue() (any, error) {
	if s.producer != nil {
		return s.producer(), nil
	}
	return s.value, nil
}

func (s *DefaultSchema) Parse(ctx context.Context, v any) (any, error) {
	out, iss := run(ctx, s.inner, v)
	if iss != nil {
		return nil, iss
	}
	return finish(out, s.checks.run(out))
}

// Optional returns s itself: a defaulted schema is already omittable.
func (s *DefaultSchema) Optional() *DefaultSchema { return s }

func (s *DefaultSchema) unwrap(m *meta) skema.Schema {
	m.optional = true
	m.hasDefault = true
	m.def, _ = s.DefaultValue()
	return s.inner
}

func (s *DefaultSchema) withCheck(c check) *DefaultSchema {
	cp := *s
	cp.checks = cp.checks.with(c)
	return &cp
}
