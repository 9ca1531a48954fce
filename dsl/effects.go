package dsl

import (
	"context"

	skema "github.com/reoring/skema"
)

// TransformSchema maps the inner result through fn. Checks attached to the
// wrapper see the transformed value.
type TransformSchema struct {
	base
	inner skema.Schema
	fn    func(any) any
}

func Transform(s skema.Schema, fn func(any) any) *TransformSchema {
	requireSchema("Transform", s)
	if fn == nil {
		skema.Invalid("Transform", "transform must not be nil")
	}
	return &TransformSchema{inner: s, fn: fn}
}

func (s *TransformSchema) Kind() skema.Kind     { return skema.KindTransform }
func (s *TransformSchema) Inner() skema.Schema  { return s.inner }
func (s *TransformSchema) IsOptionalLike() bool { return s.inner.IsOptionalLike() }
func (s *TransformSchema) HasDefault() bool     { return s.inner.HasDefault() }

// DefaultValue runs the inner default through the transform, so a filled-in
// default looks like a parsed value.
func (s *TransformSchema) DefaultValue() (any, error) {
	d, err := s.inner.DefaultValue()
	if err != nil {
		return nil, err
	}
	return s.fn(d), nil
}

func (s *TransformSchema) Parse(ctx context.Context, v any) (any, error) {
	out, iss := run(ctx, s.inner, v)
	if iss != nil {
		return nil, iss
	}
	out = s.fn(out)
	return finish(out, s.checks.run(out))
}

func (s *TransformSchema) unwrap(*meta) skema.Schema { return s.inner }

func (s *TransformSchema) withCheck(c check) *TransformSchema {
	cp := *s
	cp.checks = cp.checks.with(c)
	return &cp
}

// PreprocessSchema rewrites raw input with fn before the typed inner schema
// sees it. With forwards builder calls to the inner schema and rewraps the
// result, so coerced leaves keep their fluent constraints:
//
//	dsl.CoerceNumber().With(func(n *dsl.NumberSchema) *dsl.NumberSchema { return n.Int().Min(1) })
type PreprocessSchema[S skema.Schema] struct {
	base
	inner S
	fn    func(any) any
}

// Preprocess wraps s so fn runs on the raw input first.
func Preprocess[S skema.Schema](fn func(any) any, s S) *PreprocessSchema[S] {
	if fn == nil {
		skema.Invalid("Preprocess", "preprocess must not be nil")
	}
	return &PreprocessSchema[S]{inner: s, fn: fn}
}

func (s *PreprocessSchema[S]) Kind() skema.Kind     { return skema.KindPreprocess }
func (s *PreprocessSchema[S]) Inner() S             { return s.inner }
func (s *PreprocessSchema[S]) IsOptionalLike() bool { return s.inner.IsOptionalLike() }
func (s *PreprocessSchema[S]) HasDefault() bool     { return s.inner.HasDefault() }

func (s *PreprocessSchema[S]) DefaultValue() (any, error) { return s.inner.DefaultValue() }

// With applies a builder call to the inner schema and returns a new wrapper
// around the result. The receiver's own checks are kept.
func (s *PreprocessSchema[S]) With(build func(S) S) *PreprocessSchema[S] {
	cp := *s
	cp.inner = build(s.inner)
	return &cp
}

func (s *PreprocessSchema[S]) Parse(ctx context.Context, v any) (any, error) {
	out, iss := run(ctx, s.inner, s.fn(v))
	if iss != nil {
		return nil, iss
	}
	return finish(out, s.checks.run(out))
}

func (s *PreprocessSchema[S]) unwrap(*meta) skema.Schema { return s.inner }

func (s *PreprocessSchema[S]) withCheck(c check) *PreprocessSchema[S] {
	cp := *s
	cp.checks = cp.checks.with(c)
	return &cp
}
