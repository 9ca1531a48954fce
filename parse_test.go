package skema_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	skema "github.com/reoring/skema"
	g "github.com/reoring/skema/dsl"
)

var account = g.Object(
	g.Prop("id", g.String().NonEmpty()),
	g.Prop("balance", g.Number().Int()),
	g.Prop("tags", g.Array(g.String()).Optional()),
)

func codes(t *testing.T, err error) []string {
	t.Helper()
	iss, ok := skema.AsIssues(err)
	require.True(t, ok, "%v", err)
	return iss.Codes()
}

func TestParseJSON(t *testing.T) {
	ctx := context.Background()

	v, err := skema.ParseJSON(ctx, account, []byte(`{"id":"a1","balance":9007199254740993}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": "a1", "balance": int64(9007199254740993)}, v)

	_, err = skema.ParseJSON(ctx, account, []byte(`{"id":"","balance":1.5,"tags":[1]}`))
	assert.Equal(t, []string{skema.CodeTooSmall, skema.CodeInvalidType, skema.CodeInvalidType}, codes(t, err))

	for _, in := range []string{``, `{"id":`, `{"id":"a"} {}`} {
		_, err = skema.ParseJSON(ctx, account, []byte(in))
		assert.Equal(t, []string{skema.CodeParseError}, codes(t, err), in)
	}
}

func TestParseJSON_Limits(t *testing.T) {
	ctx := context.Background()
	dup := []byte(`{"id":"a","id":"b","balance":1}`)

	_, err := skema.ParseJSON(ctx, account, dup)
	iss, _ := skema.AsIssues(err)
	require.Len(t, iss, 1)
	assert.Equal(t, skema.CodeDuplicateKey, iss[0].Code)
	assert.Equal(t, skema.Path{"id"}, iss[0].Path)

	v, err := skema.ParseJSON(ctx, account, dup, skema.ParseOpt{OnDuplicateKey: skema.Ignore})
	require.NoError(t, err)
	assert.Equal(t, "b", v.(map[string]any)["id"])

	// warnings are logged and parsing continues
	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	defer slog.SetDefault(prev)
	_, err = skema.ParseJSON(ctx, account, dup, skema.ParseOpt{OnDuplicateKey: skema.Warn})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "duplicate_key")

	deep := []byte(strings.Repeat("[", 5) + strings.Repeat("]", 5))
	_, err = skema.ParseJSON(ctx, g.Any(), deep, skema.ParseOpt{MaxDepth: 4})
	assert.Equal(t, []string{skema.CodeTruncated}, codes(t, err))
	_, err = skema.ParseJSON(ctx, g.Any(), deep, skema.ParseOpt{MaxDepth: 5})
	assert.NoError(t, err)

	_, err = skema.ParseJSON(ctx, g.Any(), []byte(`"0123456789"`), skema.ParseOpt{MaxBytes: 8})
	assert.Equal(t, []string{skema.CodeTruncated}, codes(t, err))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestParseJSONReader(t *testing.T) {
	ctx := context.Background()
	v, err := skema.ParseJSONReader(ctx, account, strings.NewReader(`{"id":"r","balance":-3}`))
	require.NoError(t, err)
	assert.Equal(t, int64(-3), v.(map[string]any)["balance"])

	_, err = skema.ParseJSONReader(ctx, account, strings.NewReader(`{"id":"r","balance":1}`), skema.ParseOpt{MaxBytes: 10})
	assert.Equal(t, []string{skema.CodeTruncated}, codes(t, err))

	_, err = skema.ParseJSONReader(ctx, account, failingReader{})
	require.Error(t, err)
	_, isIssues := skema.AsIssues(err)
	assert.False(t, isIssues)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestParseYAML(t *testing.T) {
	ctx := context.Background()
	v, err := skema.ParseYAML(ctx, account, []byte("id: y\nbalance: 10\ntags: [a, b]\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": "y", "balance": int64(10), "tags": []any{"a", "b"}}, v)

	_, err = skema.ParseYAML(ctx, account, []byte("id: y\nid: z\nbalance: 1\n"))
	assert.Equal(t, []string{skema.CodeDuplicateKey}, codes(t, err))

	_, err = skema.ParseYAML(ctx, account, []byte("id: [unclosed\n"))
	assert.Equal(t, []string{skema.CodeParseError}, codes(t, err))

	// anchors resolve to the aliased value
	v, err = skema.ParseYAML(ctx, g.Record(g.String()), []byte("a: &x hello\nb: *x\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": "hello", "b": "hello"}, v)
}

func TestParseYAMLStream(t *testing.T) {
	ctx := context.Background()
	stream := []byte("id: a\nbalance: 1\n---\nid: b\nbalance: 2\n")
	docs, err := skema.ParseYAMLStream(ctx, account, stream)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "b", docs[1].(map[string]any)["id"])

	bad := []byte("id: a\nbalance: 1\n---\nid: ''\nbalance: 2\n---\nid: c\nid: d\nbalance: 3\n")
	_, err = skema.ParseYAMLStream(ctx, account, bad)
	iss, ok := skema.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 2)
	assert.Equal(t, skema.CodeDuplicateKey, iss[0].Code)
	assert.Equal(t, skema.Path{2, "id"}, iss[0].Path)
	assert.Equal(t, skema.CodeTooSmall, iss[1].Code)
	assert.Equal(t, skema.Path{1, "id"}, iss[1].Path)

	_, err = skema.ParseYAMLStream(ctx, account, stream, skema.ParseOpt{MaxBytes: 4})
	assert.Equal(t, []string{skema.CodeTruncated}, codes(t, err))
}

func TestDecode(t *testing.T) {
	ctx := context.Background()
	v, err := skema.DecodeJSON(ctx, []byte(`{"n":1,"f":1.5,"e":1e3,"big":18446744073709551616,"s":"x","b":true,"z":null}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"n": int64(1), "f": 1.5, "e": 1000.0, "big": 18446744073709551616.0,
		"s": "x", "b": true, "z": nil,
	}, v)

	v, err = skema.DecodeYAML(ctx, []byte("n: 1\nf: 1.5\nb: yes\nq: 'yes'\nz: ~\nd: 2024-01-02\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"n": int64(1), "f": 1.5, "b": "yes", "q": "yes", "z": nil, "d": "2024-01-02",
	}, v)

	v, err = skema.DecodeYAML(ctx, nil)
	require.NoError(t, err)
	assert.Nil(t, v)
}
