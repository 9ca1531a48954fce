package registry_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	skema "github.com/reoring/skema"
	g "github.com/reoring/skema/dsl"
	"github.com/reoring/skema/registry"
)

func TestRegistry_RegisterLookupNames(t *testing.T) {
	reg := registry.New()
	reg.Register("b", g.String())
	reg.Register("a", g.Number())

	s, ok := reg.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, skema.KindNumber, s.Kind())
	_, ok = reg.Lookup("c")
	assert.False(t, ok)
	assert.Equal(t, []string{"a", "b"}, reg.Names())

	reg.Register("a", g.Boolean())
	s, _ = reg.Lookup("a")
	assert.Equal(t, skema.KindBoolean, s.Kind())

	assert.Panics(t, func() { reg.Register("", g.String()) })
	assert.Panics(t, func() { reg.Register("x", nil) })
}

func TestRegistry_MutuallyRecursiveRefs(t *testing.T) {
	ctx := context.Background()
	reg := registry.New()
	// department is referenced before it is registered
	reg.Register("employee", g.Object(
		g.Prop("name", g.String()),
		g.Prop("department", reg.Ref("department").Optional()),
	))
	reg.Register("department", g.Object(
		g.Prop("title", g.String()),
		g.Prop("staff", g.Array(reg.Ref("employee"))),
	))

	employee, _ := reg.Lookup("employee")
	_, err := employee.Parse(ctx, map[string]any{
		"name": "ana",
		"department": map[string]any{
			"title": "ops",
			"staff": []any{map[string]any{"name": 7}},
		},
	})
	iss, ok := skema.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, skema.Path{"department", "staff", 0, "name"}, iss[0].Path)
}

func TestRegistry_RefToUnknownNamePanics(t *testing.T) {
	reg := registry.New()
	ref := reg.Ref("ghost")
	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, skema.ErrInvalidSchema)
	}()
	_, _ = ref.Parse(context.Background(), 1)
}

func TestRegistry_LoadFromStore(t *testing.T) {
	ctx := context.Background()
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	reg := registry.New(registry.WithLogger(logger))
	store := registry.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "port", map[string]any{
		"type": "integer", "minimum": 1, "maximum": 65535, "x-note": "ignored",
	}))

	s, err := reg.Load(ctx, store, "port")
	require.NoError(t, err)
	_, err = s.Parse(ctx, int64(8080))
	assert.NoError(t, err)
	_, err = s.Parse(ctx, int64(0))
	assert.Error(t, err)
	assert.Equal(t, []string{"port"}, reg.Names())
	assert.Contains(t, logs.String(), "schema store hit")
	assert.Contains(t, logs.String(), "x-note")

	_, err = reg.Load(ctx, store, "missing")
	assert.ErrorIs(t, err, registry.ErrNotFound)
	assert.Contains(t, logs.String(), "schema store miss")

	require.NoError(t, store.Put(ctx, "broken", map[string]any{"type": "widget"}))
	_, err = reg.Load(ctx, store, "broken")
	assert.Error(t, err)
	_, ok := reg.Lookup("broken")
	assert.False(t, ok)
}

func TestRegistry_ResolveAndLoadAll(t *testing.T) {
	ctx := context.Background()
	reg := registry.New()
	store := registry.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "a", map[string]any{"type": "string"}))
	require.NoError(t, store.Put(ctx, "b", map[string]any{"type": "boolean"}))

	_, err := reg.Resolve(ctx, nil, "a")
	assert.ErrorIs(t, err, registry.ErrNotFound)
	s, err := reg.Resolve(ctx, store, "a")
	require.NoError(t, err)
	assert.Equal(t, skema.KindString, s.Kind())

	names, err := reg.LoadAll(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Equal(t, []string{"a", "b"}, reg.Names())
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	ctx := context.Background()
	reg := registry.New()
	reg.Register("item", g.String())
	list := g.Array(reg.Ref("item"))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			reg.Register("item", g.String())
		}()
		go func() {
			defer wg.Done()
			_, err := list.Parse(ctx, []any{"x"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}
