// Package dsl provides the schema builders for skema.
//
// # Overview
//
//   - Leaves: String(), Number(), Boolean(), Null(), Literal(v), Enum(...), Any(), Unknown(), Never().
//   - Containers: Array(elem), Tuple(items...), Object(fields...)/ObjectOf(shape), Record(v)/RecordOf(k, v),
//     Union(options...), Intersection(l, r).
//   - Wrappers: Optional, Nullable, Default/DefaultFunc, Transform, Preprocess, Lazy/Deferred.
//   - Coercion: CoerceString(), CoerceNumber(), CoerceBoolean() (see package coerce).
//   - Export: every node has JSONSchema(); Export/ExportDescriptor walk any skema.Schema.
//
// Builders are immutable. Every constraint or wrapper call returns a new
// node and leaves the receiver as it was, so a schema can be built once and
// shared across goroutines:
//
//	name := g.String().Min(1)
//	short := name.Max(8) // name still has no maximum
//
// # Error model
//
// Parse returns skema.Issues. Containers never stop at the first failing
// child; every issue carries the path from the root of the call:
//
//	users := g.Array(g.Object(g.Prop("name", g.String())))
//	_, err := users.Parse(ctx, []any{
//	    map[string]any{"name": "valid"},
//	    map[string]any{"name": 42},
//	})
//	// err[0].Path == skema.Path{1, "name"}, err[0].Code == "invalid_type"
//
// # Example (object with defaults and strict keys)
//
//	user := g.Object(
//	    g.Prop("id", g.String().NonEmpty()),
//	    g.Prop("email", g.String().Email()),
//	    g.Prop("role", g.Enum("admin", "member").Default("member")),
//	    g.Prop("age", g.Number().Int().Nonnegative().Optional()),
//	).Strict()
//
//	v, err := user.Parse(ctx, map[string]any{"id": "u_1", "email": "a@example.com"})
//	// v == map[string]any{"id": "u_1", "email": "a@example.com", "role": "member"}
//
// # Example (recursive tree)
//
//	node := g.Deferred()
//	tree := g.Object(
//	    g.Prop("value", g.Number()),
//	    g.Prop("children", g.Array(node).Optional()),
//	)
//	node.Bind(tree)
//
// # Example (coercion with forwarded builders)
//
//	port := g.CoerceNumber().With(func(n *g.NumberSchema) *g.NumberSchema {
//	    return n.Int().Min(1).Max(65535)
//	})
//	v, _ := port.Parse(ctx, " 8080 ") // int64(8080)
//
// # JSON Schema output
//
//	d, _ := g.ExportDescriptor(user)
//	// strip and strict objects export additionalProperties=false,
//	// passthrough exports additionalProperties=true.
package dsl
