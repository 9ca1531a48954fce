package dsl_test

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	skema "github.com/reoring/skema"
	g "github.com/reoring/skema/dsl"
)

func issuesOf(t *testing.T, err error) skema.Issues {
	t.Helper()
	require.Error(t, err)
	iss, ok := skema.AsIssues(err)
	require.True(t, ok, "expected skema.Issues, got %T", err)
	return iss
}

func TestString_TypeAndLength(t *testing.T) {
	ctx := context.Background()

	v, err := g.String().Parse(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", v)

	iss := issuesOf(t, must(g.String().Parse(ctx, 1)))
	assert.Equal(t, []string{skema.CodeInvalidType}, iss.Codes())
	assert.Equal(t, skema.Path{}, iss[0].Path)
	assert.Equal(t, "string", iss[0].Params["expected"])
	assert.Equal(t, "integer", iss[0].Params["received"])

	// code points, not bytes
	_, err = g.String().Max(2).Parse(ctx, "日本")
	assert.NoError(t, err)
	iss = issuesOf(t, must(g.String().Min(3).Parse(ctx, "日本")))
	assert.Equal(t, skema.CodeTooSmall, iss[0].Code)
	assert.Equal(t, "String must contain at least 3 character(s)", iss[0].Message)

	iss = issuesOf(t, must(g.String().Max(1, "too long").Parse(ctx, "ab")))
	assert.Equal(t, skema.CodeTooBig, iss[0].Code)
	assert.Equal(t, "too long", iss[0].Message)

	_, err = g.String().NonEmpty().Parse(ctx, "")
	assert.Error(t, err)
}

func TestString_TightestBoundsAreReported(t *testing.T) {
	s := g.String().Min(2).Min(5).Max(10).Max(7)
	minLen, ok := s.MinLength()
	assert.True(t, ok)
	assert.Equal(t, 5, minLen)
	maxLen, ok := s.MaxLength()
	assert.True(t, ok)
	assert.Equal(t, 7, maxLen)

	// every attached constraint still runs
	iss := issuesOf(t, must(s.Parse(context.Background(), "a")))
	assert.Equal(t, []string{skema.CodeTooSmall, skema.CodeTooSmall}, iss.Codes())
}

func TestString_RegexAndEmail(t *testing.T) {
	ctx := context.Background()
	slug := g.String().Regex(regexp.MustCompile(`^[a-z-]+$`))
	assert.Equal(t, "^[a-z-]+$", slug.Pattern())
	_, err := slug.Parse(ctx, "hello-world")
	assert.NoError(t, err)
	iss := issuesOf(t, must(slug.Parse(ctx, "Hello")))
	assert.Equal(t, skema.CodeInvalidString, iss[0].Code)
	assert.Equal(t, "regex", iss[0].Params["validation"])

	email := g.String().Email()
	assert.Equal(t, "email", email.Format())
	_, err = email.Parse(ctx, "a@example.com")
	assert.NoError(t, err)
	iss = issuesOf(t, must(email.Parse(ctx, "not-an-email")))
	assert.Equal(t, skema.CodeInvalidString, iss[0].Code)
	assert.Equal(t, "Invalid email address", iss[0].Message)
}

func TestNumber_TypeCheck(t *testing.T) {
	ctx := context.Background()
	for _, in := range []any{1, int64(2), uint8(3), 1.5, float32(2.5), json.Number("4"), math.NaN(), math.Inf(1)} {
		_, err := g.Number().Parse(ctx, in)
		assert.NoError(t, err, "input %#v", in)
	}
	for _, in := range []any{"1", true, nil, []any{}} {
		iss := issuesOf(t, must(g.Number().Parse(ctx, in)))
		assert.Equal(t, skema.CodeInvalidType, iss[0].Code, "input %#v", in)
	}

	v, err := g.Number().Parse(ctx, int64(7))
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)
}

func TestNumber_IntIsStrict(t *testing.T) {
	ctx := context.Background()
	n := g.Number().Int()
	assert.True(t, n.IsInt())
	for _, in := range []any{1, int64(-5), json.Number("10")} {
		_, err := n.Parse(ctx, in)
		assert.NoError(t, err, "input %#v", in)
	}
	for _, in := range []any{3.0, 1.5, json.Number("1.0"), json.Number("1e3")} {
		iss := issuesOf(t, must(n.Parse(ctx, in)))
		assert.Equal(t, skema.CodeInvalidType, iss[0].Code)
		assert.Equal(t, "integer", iss[0].Params["expected"])
	}
}

func TestNumber_IntMismatchSkipsConstraints(t *testing.T) {
	ctx := context.Background()
	iss := issuesOf(t, must(g.Number().Int().Min(5).Parse(ctx, 3.5)))
	assert.Equal(t, []string{skema.CodeInvalidType}, iss.Codes())
	assert.Equal(t, "integer", iss[0].Params["expected"])

	iss = issuesOf(t, must(g.Number().Int("whole numbers only").Max(1).Parse(ctx, 2.5)))
	require.Len(t, iss, 1)
	assert.Equal(t, "whole numbers only", iss[0].Message)

	iss = issuesOf(t, must(g.Number().Int().Min(5).Parse(ctx, 3)))
	assert.Equal(t, []string{skema.CodeTooSmall}, iss.Codes())
}

func TestNumber_Bounds(t *testing.T) {
	ctx := context.Background()

	s := g.Number().Min(1).Min(3).Max(10).Max(8)
	minV, _ := s.Minimum()
	maxV, _ := s.Maximum()
	assert.Equal(t, 3.0, minV)
	assert.Equal(t, 8.0, maxV)

	_, err := s.Parse(ctx, 3)
	assert.NoError(t, err)
	iss := issuesOf(t, must(s.Parse(ctx, 9)))
	assert.Equal(t, []string{skema.CodeTooBig}, iss.Codes())
	assert.Equal(t, 8.0, iss[0].Params["maximum"])

	// a later, tighter minimum is the one reported
	iss = issuesOf(t, must(g.Number().Min(2).Min(5).Parse(ctx, 3)))
	assert.Equal(t, []string{skema.CodeTooSmall}, iss.Codes())
	assert.Equal(t, 5.0, iss[0].Params["minimum"])

	gt := g.Number().Gt(0).Lt(1)
	_, err = gt.Parse(ctx, 0.5)
	assert.NoError(t, err)
	iss = issuesOf(t, must(gt.Parse(ctx, 0)))
	assert.Equal(t, skema.CodeTooSmall, iss[0].Code)
	assert.Equal(t, true, iss[0].Params["exclusive"])
	assert.Equal(t, "Number must be greater than 0", iss[0].Message)
}

func TestNumber_SignHelpersReplaceOpposingBound(t *testing.T) {
	pos := g.Number().Min(5).Positive()
	_, hasMin := pos.Minimum()
	exMin, hasEx := pos.ExclusiveMinimum()
	assert.False(t, hasMin)
	assert.True(t, hasEx)
	assert.Equal(t, 0.0, exMin)

	nn := g.Number().Positive().Nonnegative()
	_, hasEx = nn.ExclusiveMinimum()
	minV, hasMin := nn.Minimum()
	assert.False(t, hasEx)
	assert.True(t, hasMin)
	assert.Equal(t, 0.0, minV)

	neg := g.Number().Max(3).Negative()
	_, hasMax := neg.Maximum()
	assert.False(t, hasMax)
	exMax, _ := neg.ExclusiveMaximum()
	assert.Equal(t, 0.0, exMax)

	np := g.Number().Negative().Nonpositive()
	_, hasExMax := np.ExclusiveMaximum()
	assert.False(t, hasExMax)

	ctx := context.Background()
	_, err := g.Number().Positive().Parse(ctx, 0)
	assert.Error(t, err)
	_, err = g.Number().Nonnegative().Parse(ctx, 0)
	assert.NoError(t, err)
	_, err = g.Number().Negative().Parse(ctx, 0)
	assert.Error(t, err)
	_, err = g.Number().Nonpositive().Parse(ctx, 0)
	assert.NoError(t, err)
}

func TestNumber_MultipleOfAndFinite(t *testing.T) {
	ctx := context.Background()
	m := g.Number().MultipleOf(0.1)
	_, err := m.Parse(ctx, 0.3)
	assert.NoError(t, err, "0.3 is a multiple of 0.1 within tolerance")
	iss := issuesOf(t, must(g.Number().MultipleOf(3).Parse(ctx, 10)))
	assert.Equal(t, skema.CodeNotMultipleOf, iss[0].Code)
	assert.Equal(t, 3.0, iss[0].Params["multiple"])

	// non-finite quotients fail
	_, err = g.Number().MultipleOf(2).Parse(ctx, math.Inf(1))
	assert.Error(t, err)

	assert.PanicsWithError(t, "skema: MultipleOf: divisor must be non-zero", func() {
		g.Number().MultipleOf(0)
	})

	iss = issuesOf(t, must(g.Number().Finite().Parse(ctx, math.NaN())))
	assert.Equal(t, skema.CodeNotFinite, iss[0].Code)

	// NaN is not ordered, so bounds let it through and only Finite rejects it
	bounded := g.Number().Min(0).Max(10).Gt(-1).Lt(11)
	_, err = bounded.Parse(ctx, math.NaN())
	assert.NoError(t, err)
	iss = issuesOf(t, must(bounded.Finite().Parse(ctx, math.NaN())))
	assert.Equal(t, []string{skema.CodeNotFinite}, iss.Codes())
	_, err = g.Number().Max(10).Parse(ctx, math.Inf(1))
	assert.Error(t, err)
}

func TestBooleanAndNull(t *testing.T) {
	ctx := context.Background()
	_, err := g.Boolean().Parse(ctx, false)
	assert.NoError(t, err)
	_, err = g.Boolean().Parse(ctx, "true")
	assert.Error(t, err)

	v, err := g.Null().Parse(ctx, nil)
	assert.NoError(t, err)
	assert.Nil(t, v)
	iss := issuesOf(t, must(g.Null().Parse(ctx, 0)))
	assert.Equal(t, "null", iss[0].Params["expected"])
}

func TestLiteral(t *testing.T) {
	ctx := context.Background()
	_, err := g.Literal("on").Parse(ctx, "on")
	assert.NoError(t, err)

	iss := issuesOf(t, must(g.Literal("on").Parse(ctx, "off")))
	assert.Equal(t, skema.CodeInvalidLiteral, iss[0].Code)
	assert.Equal(t, "Expected literal 'on'", iss[0].Message)

	// integer widths match each other; integers never match floats
	_, err = g.Literal(1).Parse(ctx, int64(1))
	assert.NoError(t, err)
	_, err = g.Literal(1).Parse(ctx, 1.0)
	assert.Error(t, err)
	_, err = g.Literal(true).Parse(ctx, 1)
	assert.Error(t, err)
	_, err = g.Literal(nil).Parse(ctx, nil)
	assert.NoError(t, err)
}

func TestEnum(t *testing.T) {
	ctx := context.Background()
	e := g.Enum("a", "b")
	assert.Equal(t, []string{"a", "b"}, e.Options())

	_, err := e.Parse(ctx, "b")
	assert.NoError(t, err)
	iss := issuesOf(t, must(e.Parse(ctx, "c")))
	assert.Equal(t, skema.CodeInvalidEnumValue, iss[0].Code)
	assert.Equal(t, "Expected one of 'a', 'b'", iss[0].Message)
	_, err = e.Parse(ctx, 1)
	assert.Error(t, err)

	// the returned options are a copy
	opts := e.Options()
	opts[0] = "z"
	assert.Equal(t, []string{"a", "b"}, e.Options())

	assert.Panics(t, func() { g.Enum() })
	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, skema.ErrInvalidSchema))
	}()
	g.Enum()
}

func TestAnyUnknownNever(t *testing.T) {
	ctx := context.Background()
	for _, in := range []any{nil, 1, "x", []any{1}, map[string]any{}} {
		_, err := g.Any().Parse(ctx, in)
		assert.NoError(t, err)
		_, err = g.Unknown().Parse(ctx, in)
		assert.NoError(t, err)

		iss := issuesOf(t, must(g.Never().Parse(ctx, in)))
		assert.Equal(t, skema.CodeInvalidType, iss[0].Code)
		assert.Equal(t, "Never type cannot be parsed", iss[0].Message)
	}
	assert.Equal(t, skema.KindAny, g.Any().Kind())
	assert.Equal(t, skema.KindUnknown, g.Unknown().Kind())

	// constraints still run on any
	_, err := g.Any().Refine(func(v any) bool { return v != nil }).Parse(ctx, nil)
	assert.Error(t, err)
}

// must drops the value of a Parse call so tests can inspect the error.
func must(_ any, err error) error { return err }
