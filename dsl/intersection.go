package dsl

import (
	"context"

	skema "github.com/reoring/skema"
)

// IntersectionSchema requires both sides to accept the input.
type IntersectionSchema struct {
	base
	left, right skema.Schema
}

func Intersection(left, right skema.Schema) *IntersectionSchema {
	requireSchema("Intersection", left)
	requireSchema("Intersection", right)
	return &IntersectionSchema{left: left, right: right}
}

func (s *IntersectionSchema) Kind() skema.Kind    { return skema.KindIntersection }
func (s *IntersectionSchema) Left() skema.Schema  { return s.left }
func (s *IntersectionSchema) Right() skema.Schema { return s.right }

func (s *IntersectionSchema) IsOptionalLike() bool {
	return s.left.IsOptionalLike() || s.right.IsOptionalLike()
}

func (s *IntersectionSchema) HasDefault() bool {
	return s.left.HasDefault() || s.right.HasDefault()
}

// DefaultValue prefers the right side's default.
func (s *IntersectionSchema) DefaultValue() (any, error) {
	if s.right.HasDefault() {
		return s.right.DefaultValue()
	}
	if s.left.HasDefault() {
		return s.left.DefaultValue()
	}
	return nil, skema.ErrNoDefault
}

// Parse always runs both sides. Two map results merge shallowly with the
// right side winning; otherwise a map on the left is kept, else the right
// result is used.
func (s *IntersectionSchema) Parse(ctx context.Context, v any) (any, error) {
	l, liss := run(ctx, s.left, v)
	r, riss := run(ctx, s.right, v)
	if iss := skema.AppendIssues(liss, riss...); len(iss) > 0 {
		return nil, iss
	}
	out := merge(l, r)
	return finish(out, s.checks.run(out))
}

func merge(l, r any) any {
	lm, lok := l.(map[string]any)
	rm, rok := r.(map[string]any)
	switch {
	case lok && rok:
		out := make(map[string]any, len(lm)+len(rm))
		for k, v := range lm {
			out[k] = v
		}
		for k, v := range rm {
			out[k] = v
		}
		return out
	case lok:
		return l
	default:
		return r
	}
}

func (s *IntersectionSchema) withCheck(c check) *IntersectionSchema {
	cp := *s
	cp.checks = cp.checks.with(c)
	return &cp
}
