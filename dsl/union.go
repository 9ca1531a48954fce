package dsl

import (
	"context"

	skema "github.com/reoring/skema"
	"github.com/reoring/skema/i18n"
)

// UnionSchema accepts the first option that parses. The union's own checks
// are part of each attempt, so a value an option accepts but the union
// refines away moves on to the next option.
type UnionSchema struct {
	base
	options []skema.Schema
}

// Union panics with *skema.SchemaError when called without options.
func Union(options ...skema.Schema) *UnionSchema {
	if len(options) == 0 {
		skema.Invalid("Union", "union requires at least one option")
	}
	for _, o := range options {
		requireSchema("Union", o)
	}
	return &UnionSchema{options: append([]skema.Schema(nil), options...)}
}

func (s *UnionSchema) Kind() skema.Kind        { return skema.KindUnion }
func (s *UnionSchema) Options() []skema.Schema { return append([]skema.Schema(nil), s.options...) }

// Parse returns one invalid_union issue on failure. Its "errors" param
// holds each attempt's issues, in option order.
func (s *UnionSchema) Parse(ctx context.Context, v any) (any, error) {
	attempts := make([]skema.Issues, 0, len(s.options))
	for _, o := range s.options {
		out, iss := run(ctx, o, v)
		if iss == nil {
			if iss = s.checks.run(out); len(iss) == 0 {
				return out, nil
			}
		}
		attempts = append(attempts, iss)
	}
	return nil, fail(skema.CodeInvalidUnion, i18n.T(skema.CodeInvalidUnion, nil),
		map[string]any{"errors": attempts})
}

func (s *UnionSchema) withCheck(c check) *UnionSchema {
	cp := *s
	cp.checks = cp.checks.with(c)
	return &cp
}
