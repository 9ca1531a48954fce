package dsl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	skema "github.com/reoring/skema"
	g "github.com/reoring/skema/dsl"
)

func TestArray_PathPrefixing(t *testing.T) {
	ctx := context.Background()
	users := g.Array(g.Object(g.Prop("name", g.String())))

	iss := issuesOf(t, must(users.Parse(ctx, []any{
		map[string]any{"name": "valid"},
		map[string]any{"name": 42},
	})))
	require.Len(t, iss, 1)
	assert.Equal(t, skema.Path{1, "name"}, iss[0].Path)
	assert.Equal(t, "/1/name", iss[0].Path.Pointer())
	assert.Equal(t, skema.CodeInvalidType, iss[0].Code)
}

func TestArray_CollectsEveryElementThenLength(t *testing.T) {
	ctx := context.Background()
	arr := g.Array(g.Number()).Max(2)

	iss := issuesOf(t, must(arr.Parse(ctx, []any{"a", 1, "b"})))
	assert.Equal(t, []string{skema.CodeInvalidType, skema.CodeInvalidType, skema.CodeTooBig}, iss.Codes())
	assert.Equal(t, skema.Path{0}, iss[0].Path)
	assert.Equal(t, skema.Path{2}, iss[1].Path)
	assert.Equal(t, skema.Path{}, iss[2].Path)

	v, err := g.Array(g.String()).Parse(ctx, []string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, []any{"x", "y"}, v)

	// shape mismatch short-circuits
	iss = issuesOf(t, must(arr.Parse(ctx, map[string]any{})))
	assert.Equal(t, []string{skema.CodeInvalidType}, iss.Codes())
}

func TestArray_Bounds(t *testing.T) {
	ctx := context.Background()
	arr := g.Array(g.Any()).Min(1).Min(2).Max(5).Length(3)
	minN, _ := arr.MinItems()
	maxN, _ := arr.MaxItems()
	assert.Equal(t, 3, minN)
	assert.Equal(t, 3, maxN)

	_, err := arr.Parse(ctx, []any{1, 2, 3})
	assert.NoError(t, err)
	iss := issuesOf(t, must(arr.Parse(ctx, []any{1, 2})))
	assert.Equal(t, []string{skema.CodeInvalidArrayLength}, iss.Codes())
	assert.Equal(t, 3, iss[0].Params["expected"])

	iss = issuesOf(t, must(g.Array(g.Any()).NonEmpty().Parse(ctx, []any{})))
	assert.Equal(t, skema.CodeTooSmall, iss[0].Code)
}

func TestTuple(t *testing.T) {
	ctx := context.Background()
	pair := g.Tuple(g.String(), g.Number())

	v, err := pair.Parse(ctx, []any{"a", 1})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", 1}, v)

	iss := issuesOf(t, must(pair.Parse(ctx, []any{"a"})))
	assert.Equal(t, skema.CodeInvalidTupleLength, iss[0].Code)
	assert.Equal(t, map[string]any{"expected": 2, "received": 1}, iss[0].Params)
	assert.Equal(t, "Expected tuple length 2, got 1", iss[0].Message)

	iss = issuesOf(t, must(pair.Parse(ctx, []any{1, "a"})))
	assert.Equal(t, skema.Path{0}, iss[0].Path)
	assert.Equal(t, skema.Path{1}, iss[1].Path)

	rest := pair.Rest(g.Boolean())
	_, err = rest.Parse(ctx, []any{"a", 1, true, false})
	assert.NoError(t, err)
	iss = issuesOf(t, must(rest.Parse(ctx, []any{"a", 1, true, "no"})))
	assert.Equal(t, skema.Path{3}, iss[0].Path)
	iss = issuesOf(t, must(rest.Parse(ctx, []any{"a"})))
	assert.Equal(t, "Expected tuple length of at least 2, got 1", iss[0].Message)

	// checks see the assembled result
	sum := g.Tuple(g.Number(), g.Number()).Refine(func(v any) bool {
		xs := v.([]any)
		return xs[0].(int)+xs[1].(int) == 3
	})
	_, err = sum.Parse(ctx, []any{1, 2})
	assert.NoError(t, err)
	_, err = sum.Parse(ctx, []any{2, 2})
	assert.Error(t, err)
}

func TestObject_RequiredOptionalDefault(t *testing.T) {
	ctx := context.Background()
	user := g.Object(
		g.Prop("id", g.String()),
		g.Prop("nickname", g.String().Optional()),
		g.Prop("role", g.Enum("admin", "member").Default("member")),
	)

	v, err := user.Parse(ctx, map[string]any{"id": "u_1"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": "u_1", "role": "member"}, v)

	iss := issuesOf(t, must(user.Parse(ctx, map[string]any{})))
	require.Len(t, iss, 1)
	assert.Equal(t, skema.CodeMissingRequired, iss[0].Code)
	assert.Equal(t, "Missing required key 'id'", iss[0].Message)
	assert.Equal(t, skema.Path{"id"}, iss[0].Path)

	// a present null is still parsed by the field schema
	_, err = user.Parse(ctx, map[string]any{"id": "u_1", "nickname": nil})
	assert.Error(t, err)

	iss = issuesOf(t, must(user.Parse(ctx, []any{})))
	assert.Equal(t, []string{skema.CodeInvalidType}, iss.Codes())
	assert.Equal(t, "object", iss[0].Params["expected"])
}

func TestObject_UnknownKeyPolicies(t *testing.T) {
	ctx := context.Background()
	base := g.Object(g.Prop("a", g.Number()))
	in := map[string]any{"a": 1, "b": 2}

	v, err := base.Parse(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1}, v)
	assert.Equal(t, g.UnknownStrip, base.UnknownPolicy())

	v, err = base.Passthrough().Parse(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, v)

	iss := issuesOf(t, must(base.Strict().Parse(ctx, map[string]any{"a": 1, "z": 0, "b": 2})))
	assert.Equal(t, []string{skema.CodeUnrecognizedKey, skema.CodeUnrecognizedKey}, iss.Codes())
	assert.Equal(t, skema.Path{"b"}, iss[0].Path)
	assert.Equal(t, "Unrecognized key 'b'", iss[0].Message)
	assert.Equal(t, skema.Path{"z"}, iss[1].Path)

	// policies do not leak back into the receiver
	assert.Equal(t, g.UnknownStrip, base.UnknownPolicy())
}

func TestObject_ExtendAndIntrospection(t *testing.T) {
	ctx := context.Background()
	base := g.Object(g.Prop("a", g.String()), g.Prop("b", g.String()))
	ext := base.Extend(g.Prop("a", g.Number()), g.Prop("c", g.Boolean()))

	assert.Equal(t, []string{"a", "b"}, base.Keys())
	assert.Equal(t, []string{"a", "b", "c"}, ext.Keys())
	a, ok := ext.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, skema.KindNumber, a.Kind())

	_, err := ext.Parse(ctx, map[string]any{"a": 1, "b": "x", "c": true})
	assert.NoError(t, err)

	sorted := g.ObjectOf(map[string]skema.Schema{"z": g.String(), "m": g.String()})
	assert.Equal(t, []string{"m", "z"}, sorted.Keys())
	assert.Len(t, sorted.Shape(), 2)

	viaField := g.Object().Field("x", g.String()).Field("x", g.Number())
	assert.Equal(t, []string{"x"}, viaField.Keys())
}

func TestObject_ChecksRunOnResult(t *testing.T) {
	ctx := context.Background()
	signup := g.Object(
		g.Prop("password", g.String()),
		g.Prop("confirm", g.String()),
	).Refine(func(v any) bool {
		m := v.(map[string]any)
		return m["password"] == m["confirm"]
	}, skema.RefineOpt{Message: "passwords differ", Code: "mismatch"})

	_, err := signup.Parse(ctx, map[string]any{"password": "x", "confirm": "x"})
	assert.NoError(t, err)
	iss := issuesOf(t, must(signup.Parse(ctx, map[string]any{"password": "x", "confirm": "y"})))
	assert.Equal(t, "mismatch", iss[0].Code)
	assert.Equal(t, "passwords differ", iss[0].Message)
}

func TestRecord(t *testing.T) {
	ctx := context.Background()
	scores := g.Record(g.Number())
	v, err := scores.Parse(ctx, map[string]any{"a": 1, "b": 2.5})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1, "b": 2.5}, v)

	_, err = scores.Parse(ctx, []any{1})
	assert.Error(t, err)

	keyed := g.RecordOf(g.String(), g.Enum("allowed"))
	_, err = keyed.Parse(ctx, map[string]any{"other": "value"})
	assert.Error(t, err)

	// a rejected key does not hide value issues
	short := g.RecordOf(g.String().Max(2), g.Number())
	iss := issuesOf(t, must(short.Parse(ctx, map[string]any{"long": "x", "ok": 1})))
	assert.Equal(t, []string{skema.CodeTooBig, skema.CodeInvalidType}, iss.Codes())
	assert.Equal(t, skema.Path{"long"}, iss[0].Path)
	assert.Equal(t, skema.Path{"long"}, iss[1].Path)

	// keys keep their original spelling even when the key schema transforms
	upper := g.RecordOf(g.String().Transform(func(v any) any { return "K" }), g.Number())
	v, err = upper.Parse(ctx, map[string]any{"k": 1})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"k": 1}, v)
}

func TestUnion_FirstMatchWins(t *testing.T) {
	ctx := context.Background()
	u := g.Union(
		g.String().Transform(func(v any) any { return "first:" + v.(string) }),
		g.String().Transform(func(v any) any { return "second:" + v.(string) }),
	)
	v, err := u.Parse(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "first:x", v)

	iss := issuesOf(t, must(g.Union(g.String(), g.Number()).Parse(ctx, true)))
	require.Len(t, iss, 1)
	assert.Equal(t, skema.CodeInvalidUnion, iss[0].Code)
	assert.Equal(t, "Input did not match any union member", iss[0].Message)
	attempts, ok := iss[0].Params["errors"].([]skema.Issues)
	require.True(t, ok)
	require.Len(t, attempts, 2)
	assert.Equal(t, "string", attempts[0][0].Params["expected"])
	assert.Equal(t, "number", attempts[1][0].Params["expected"])

	assert.Panics(t, func() { g.Union() })
}

func TestUnion_OwnChecksJoinEachAttempt(t *testing.T) {
	ctx := context.Background()
	// the first option accepts "5" but the union's refinement rejects the
	// string result, so the coerced number option wins
	u := g.Union(g.String(), g.CoerceNumber()).Refine(func(v any) bool {
		_, isString := v.(string)
		return !isString
	})
	v, err := u.Parse(ctx, "5")
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)
}

func TestIntersection(t *testing.T) {
	ctx := context.Background()
	left := g.Object(g.Prop("a", g.Number())).Passthrough()
	right := g.Object(g.Prop("b", g.Number())).Passthrough()

	v, err := g.Intersection(left, right).Parse(ctx, map[string]any{"a": 1, "b": 2})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, v)

	// both sides always run
	iss := issuesOf(t, must(g.Intersection(g.String(), g.Number()).Parse(ctx, true)))
	assert.Len(t, iss, 2)

	// the right side wins on shared keys
	l := g.Object(g.Prop("k", g.String().Transform(func(any) any { return "left" })))
	r := g.Object(g.Prop("k", g.String().Transform(func(any) any { return "right" })))
	v, err = g.Intersection(l, r).Parse(ctx, map[string]any{"k": "x"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"k": "right"}, v)

	// non-map results: right unless only the left is a map
	v, err = g.Intersection(g.Number(), g.Number().Transform(func(any) any { return 9 })).Parse(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 9, v)

	// strip objects on both sides: each drops the other's keys and the
	// unknown ones, the merge keeps exactly the declared keys
	merged := g.Intersection(
		g.Object(g.Prop("id", g.Number().Int())),
		g.Object(g.Prop("name", g.String())),
	)
	v, err = merged.Parse(ctx, map[string]any{"id": 1, "name": "Ada", "extra": true})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": 1, "name": "Ada"}, v)

	both := g.Intersection(g.String().Optional(), g.String().Default("r"))
	assert.True(t, both.IsOptionalLike())
	assert.True(t, both.HasDefault())
	d, err := both.DefaultValue()
	require.NoError(t, err)
	assert.Equal(t, "r", d)
}
