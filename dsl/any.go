package dsl

import (
	"context"

	skema "github.com/reoring/skema"
	"github.com/reoring/skema/i18n"
)

// AnySchema accepts every value, nil included. Any and Unknown differ only
// in their Kind.
type AnySchema struct {
	base
	kind skema.Kind
}

func Any() *AnySchema     { return &AnySchema{kind: skema.KindAny} }
func Unknown() *AnySchema { return &AnySchema{kind: skema.KindUnknown} }

func (s *AnySchema) Kind() skema.Kind { return s.kind }

func (s *AnySchema) Parse(_ context.Context, v any) (any, error) {
	return finish(v, s.checks.run(v))
}

func (s *AnySchema) withCheck(c check) *AnySchema {
	cp := *s
	cp.checks = cp.checks.with(c)
	return &cp
}

// NeverSchema rejects every value.
type NeverSchema struct{ base }

func Never() *NeverSchema { return &NeverSchema{} }

func (s *NeverSchema) Kind() skema.Kind { return skema.KindNever }

func (s *NeverSchema) Parse(_ context.Context, v any) (any, error) {
	return nil, fail(skema.CodeInvalidType,
		i18n.T(skema.CodeInvalidType, map[string]string{"kind": "never"}),
		map[string]any{"expected": "never", "received": describe(v)})
}

func (s *NeverSchema) withCheck(c check) *NeverSchema {
	cp := *s
	cp.checks = cp.checks.with(c)
	return &cp
}
