package dsl_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	skema "github.com/reoring/skema"
	g "github.com/reoring/skema/dsl"
)

func TestOptional(t *testing.T) {
	ctx := context.Background()
	opt := g.String().Optional()
	assert.True(t, opt.IsOptionalLike())
	assert.False(t, opt.HasDefault())
	_, err := opt.DefaultValue()
	assert.ErrorIs(t, err, skema.ErrNoDefault)

	_, err = opt.Parse(ctx, "x")
	assert.NoError(t, err)
	_, err = opt.Parse(ctx, 1)
	assert.Error(t, err)
	assert.Equal(t, skema.KindOptional, opt.Kind())
	assert.Equal(t, skema.KindString, opt.Inner().Kind())
}

func TestNullable(t *testing.T) {
	ctx := context.Background()
	n := g.Number().Nullable()
	v, err := n.Parse(ctx, nil)
	require.NoError(t, err)
	assert.Nil(t, v)
	_, err = n.Parse(ctx, 3)
	assert.NoError(t, err)
	_, err = n.Parse(ctx, "3")
	assert.Error(t, err)

	// the wrapper's own checks also see nil
	notNil := g.Number().Nullable().Refine(func(v any) bool { return v != nil })
	_, err = notNil.Parse(ctx, nil)
	assert.Error(t, err)

	// presence queries delegate inward
	assert.True(t, g.String().Default("x").Nullable().HasDefault())
	assert.True(t, g.String().Optional().Nullable().IsOptionalLike())
}

func TestDefault(t *testing.T) {
	ctx := context.Background()
	d := g.String().Default("anon")
	assert.True(t, d.IsOptionalLike())
	assert.True(t, d.HasDefault())
	dv, err := d.DefaultValue()
	require.NoError(t, err)
	assert.Equal(t, "anon", dv)

	// present values are still parsed
	_, err = d.Parse(ctx, 5)
	assert.Error(t, err)

	// Optional on a default is the same node
	assert.Same(t, d, d.Optional())

	calls := 0
	counter := g.Number().DefaultFunc(func() any { calls++; return calls })
	obj := g.Object(g.Prop("n", counter))
	v1, err := obj.Parse(ctx, map[string]any{})
	require.NoError(t, err)
	v2, err := obj.Parse(ctx, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"n": 1}, v1)
	assert.Equal(t, map[string]any{"n": 2}, v2)
}

func TestTransform(t *testing.T) {
	ctx := context.Background()
	upper := g.String().Transform(func(v any) any { return strings.ToUpper(v.(string)) })
	v, err := upper.Parse(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "ABC", v)

	// refinements on the wrapper see the transformed value
	checked := upper.Refine(func(v any) bool { return v == "ABC" })
	_, err = checked.Parse(ctx, "abc")
	assert.NoError(t, err)
	_, err = checked.Parse(ctx, "abd")
	assert.Error(t, err)

	// the default goes through the transform as well
	length := g.String().Default("four").Transform(func(v any) any { return len(v.(string)) })
	dv, err := length.DefaultValue()
	require.NoError(t, err)
	assert.Equal(t, 4, dv)
	v, err = g.Object(g.Prop("n", length)).Parse(ctx, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"n": 4}, v)

	scaled := g.Object(g.Prop("value", g.Number().Default(2).Transform(func(v any) any { return v.(int) * 10 })))
	v, err = scaled.Parse(ctx, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"value": 20}, v)
}

func TestPreprocess_ForwardsBuilders(t *testing.T) {
	ctx := context.Background()
	trimmed := g.String().Preprocess(func(v any) any {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
		return v
	})
	v, err := trimmed.Parse(ctx, "  hi ")
	require.NoError(t, err)
	assert.Equal(t, "hi", v)

	bounded := trimmed.With(func(s *g.StringSchema) *g.StringSchema { return s.Min(3) })
	_, err = bounded.Parse(ctx, "  hi ")
	assert.Error(t, err)
	// With leaves the receiver alone
	_, hasMin := trimmed.Inner().MinLength()
	assert.False(t, hasMin)
	minLen, _ := bounded.Inner().MinLength()
	assert.Equal(t, 3, minLen)

	port := g.CoerceNumber().With(func(n *g.NumberSchema) *g.NumberSchema { return n.Int().Min(1).Max(65535) })
	v, err = port.Parse(ctx, " 8080 ")
	require.NoError(t, err)
	assert.Equal(t, int64(8080), v)
	_, err = port.Parse(ctx, "0")
	assert.Error(t, err)
}

func TestCoercingLeaves(t *testing.T) {
	ctx := context.Background()
	v, err := g.CoerceString().Parse(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, "12", v)

	v, err = g.CoerceBoolean().Parse(ctx, "yes")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	_, err = g.CoerceBoolean().Parse(ctx, "maybe")
	assert.Error(t, err)

	v, err = g.CoerceNumber().Parse(ctx, "2.5")
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)
}

func TestLazy_RecursiveTree(t *testing.T) {
	ctx := context.Background()
	node := g.Deferred()
	tree := g.Object(
		g.Prop("value", g.Number()),
		g.Prop("children", g.Array(node).Optional()),
	)
	node.Bind(tree)

	in := map[string]any{
		"value": 1,
		"children": []any{
			map[string]any{"value": 2},
			map[string]any{"value": 3, "children": []any{map[string]any{"value": "bad"}}},
		},
	}
	iss := issuesOf(t, must(tree.Parse(ctx, in)))
	require.Len(t, iss, 1)
	assert.Equal(t, skema.Path{"children", 1, "children", 0, "value"}, iss[0].Path)

	assert.Panics(t, func() { node.Bind(tree) }, "binding twice panics")
}

func TestLazy_FactoryAndErrors(t *testing.T) {
	ctx := context.Background()
	var category skema.Schema
	category = g.Object(
		g.Prop("name", g.String()),
		g.Prop("sub", g.Lazy(func() skema.Schema { return category }).Optional()),
	)
	_, err := category.Parse(ctx, map[string]any{"name": "a", "sub": map[string]any{"name": "b"}})
	assert.NoError(t, err)

	unbound := g.Deferred()
	assert.Panics(t, func() { _, _ = unbound.Parse(ctx, 1) })

	var unset *g.ObjectSchema
	typedNil := g.Lazy(func() skema.Schema { return unset })
	assert.PanicsWithError(t, "skema: Lazy: factory returned a nil schema", func() {
		_, _ = typedNil.Parse(ctx, 1)
	})
	assert.Panics(t, func() { g.Optional(unset) })

	nilFactory := g.Lazy(func() skema.Schema { return nil })
	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, skema.ErrInvalidSchema)
	}()
	_, _ = nilFactory.Parse(ctx, 1)
}

func TestSuperRefine(t *testing.T) {
	ctx := context.Background()
	even := g.Number().SuperRefine(func(v any) error {
		if v.(int)%2 != 0 {
			return g.Failf("not_even", map[string]any{"value": v}, "%v is odd", v)
		}
		return nil
	})
	_, err := even.Parse(ctx, 2)
	assert.NoError(t, err)
	iss := issuesOf(t, must(even.Parse(ctx, 3)))
	assert.Equal(t, "not_even", iss[0].Code)
	assert.Equal(t, "3 is odd", iss[0].Message)

	plain := g.String().SuperRefine(func(any) error { return errors.New("nope") }, skema.RefineOpt{Code: "blocked"})
	iss = issuesOf(t, must(plain.Parse(ctx, "x")))
	assert.Equal(t, "blocked", iss[0].Code)
	assert.Equal(t, "nope", iss[0].Message)

	multi := g.Object(g.Prop("a", g.Number()), g.Prop("b", g.Number())).SuperRefine(func(any) error {
		return skema.Issues{
			skema.IssueAt(skema.Path{"a"}, skema.CodeCustom, "a is off", nil),
			skema.IssueAt(skema.Path{"b"}, skema.CodeCustom, "b is off", nil),
		}
	})
	iss = issuesOf(t, must(multi.Parse(ctx, map[string]any{"a": 1, "b": 2})))
	assert.Len(t, iss, 2)
	assert.Equal(t, skema.Path{"b"}, iss[1].Path)

	// default refine message
	iss = issuesOf(t, must(g.String().Refine(func(any) bool { return false }).Parse(ctx, "x")))
	assert.Equal(t, skema.CodeCustom, iss[0].Code)
	assert.Equal(t, "Invalid value", iss[0].Message)
}

func TestBuildersAreImmutable(t *testing.T) {
	ctx := context.Background()
	base := g.String()
	short := base.Max(2)
	_, err := base.Parse(ctx, "long enough")
	assert.NoError(t, err)
	_, err = short.Parse(ctx, "long enough")
	assert.Error(t, err)

	// sibling refinements do not see each other's checks
	a := base.Refine(func(v any) bool { return v != "a" })
	b := base.Refine(func(v any) bool { return v != "b" })
	_, err = a.Parse(ctx, "b")
	assert.NoError(t, err)
	_, err = b.Parse(ctx, "a")
	assert.NoError(t, err)
}

func TestConcurrentParse(t *testing.T) {
	ctx := context.Background()
	s := g.Object(
		g.Prop("id", g.Number().Int()),
		g.Prop("tags", g.Array(g.String().Min(1)).Max(3)),
	).Strict()

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := map[string]any{"id": i, "tags": []any{fmt.Sprint(i)}}
			if _, err := s.Parse(ctx, in); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
