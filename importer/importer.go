// Package importer compiles JSON Schema descriptors into skema trees. It is
// the inverse of dsl.Export for the vocabulary the exporter writes, and it
// also accepts local $defs references, OpenAPI v3 `nullable`, and
// Kubernetes CRD documents (openAPIV3Schema is unwrapped).
//
// For trees without lazy nodes, Export(Import(Export(s))) equals Export(s).
package importer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"

	"github.com/spf13/cast"

	skema "github.com/reoring/skema"
	"github.com/reoring/skema/dsl"
)

type importer struct {
	defs   map[string]any
	built  map[string]skema.Schema
	active map[string]bool
	cells  map[string]*dsl.LazySchema
	diag   *simpleDiag
}

// Import compiles doc into a schema. Unsupported keywords are reported as
// warnings in Diag; malformed keyword values are errors.
func Import(doc map[string]any) (skema.Schema, Diag, error) {
	d := &simpleDiag{}
	if doc == nil {
		return nil, d, errors.New("importer: nil document")
	}
	root := doc
	if spec, ok := root["openAPIV3Schema"].(map[string]any); ok {
		root = spec
	} else if unwrapped := unwrapCRDSchema(root); unwrapped != nil {
		root = unwrapped
	}
	im := &importer{
		defs:   extractDefs(root),
		built:  map[string]skema.Schema{},
		active: map[string]bool{},
		cells:  map[string]*dsl.LazySchema{},
		diag:   d,
	}
	s, err := im.node(root, skema.Path{})
	return s, d, err
}

// FromJSON decodes a JSON descriptor and imports it.
func FromJSON(data []byte) (skema.Schema, Diag, error) {
	v, err := skema.DecodeJSON(context.Background(), data)
	if err != nil {
		return nil, &simpleDiag{}, fmt.Errorf("importer: decode json: %w", err)
	}
	return importValue(v)
}

// FromYAML decodes the first YAML document in data and imports it.
func FromYAML(data []byte) (skema.Schema, Diag, error) {
	v, err := skema.DecodeYAML(context.Background(), data)
	if err != nil {
		return nil, &simpleDiag{}, fmt.Errorf("importer: decode yaml: %w", err)
	}
	return importValue(v)
}

func importValue(v any) (skema.Schema, Diag, error) {
	doc, ok := v.(map[string]any)
	if !ok {
		return nil, &simpleDiag{}, fmt.Errorf("importer: descriptor must be an object, got %T", v)
	}
	return Import(doc)
}

func (im *importer) node(doc map[string]any, at skema.Path) (skema.Schema, error) {
	im.warnUnknown(doc, at)
	if ref, ok := doc["$ref"].(string); ok {
		return im.ref(ref, at)
	}
	s, nullable, err := im.core(doc, at)
	if err != nil {
		return nil, err
	}
	if nullable {
		s = dsl.Nullable(s)
	}
	if def, ok := doc["default"]; ok {
		s = dsl.Default(s, def)
	}
	return s, nil
}

func (im *importer) warnUnknown(doc map[string]any, at skema.Path) {
	var unknown []string
	for k := range doc {
		if !knownKeywords[k] {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		im.diag.warnf("%s: keyword %q is not supported and was ignored", at.Pointer(), k)
	}
}

// core builds the node without its nullable and default wrappers.
func (im *importer) core(doc map[string]any, at skema.Path) (skema.Schema, bool, error) {
	types, nullable, err := typeNames(doc["type"], at)
	if err != nil {
		return nil, false, err
	}
	if b, _ := doc["nullable"].(bool); b {
		nullable = true
	}

	if not, ok := doc["not"]; ok {
		if m, ok := not.(map[string]any); ok && len(m) == 0 {
			return dsl.Never(), nullable, nil
		}
		im.diag.warnf("%s: only an empty \"not\" is supported", at.Pointer())
	}
	if raw, ok := doc["anyOf"]; ok {
		options, err := im.list(raw, at.Field("anyOf"))
		if err != nil {
			return nil, false, err
		}
		return dsl.Union(options...), nullable, nil
	}
	if raw, ok := doc["oneOf"]; ok {
		im.diag.warnf("%s: oneOf is imported as a first-match union", at.Pointer())
		options, err := im.list(raw, at.Field("oneOf"))
		if err != nil {
			return nil, false, err
		}
		return dsl.Union(options...), nullable, nil
	}
	if raw, ok := doc["allOf"]; ok {
		parts, err := im.list(raw, at.Field("allOf"))
		if err != nil {
			return nil, false, err
		}
		s := parts[0]
		for _, p := range parts[1:] {
			s = dsl.Intersection(s, p)
		}
		return s, nullable, nil
	}
	if c, ok := doc["const"]; ok {
		return dsl.Literal(c), nullable, nil
	}
	if raw, ok := doc["enum"]; ok {
		s, withNull, err := enum(raw, at)
		if err != nil {
			return nil, false, err
		}
		return s, nullable || withNull, nil
	}

	if len(types) == 0 {
		if nullable {
			return dsl.Any(), true, nil
		}
		types = inferTypes(doc)
	}
	switch len(types) {
	case 0:
		return dsl.Any(), false, nil
	case 1:
		s, err := im.typed(types[0], doc, at)
		return s, nullable, err
	}
	options := make([]skema.Schema, len(types))
	for i, t := range types {
		if options[i], err = im.typed(t, doc, at); err != nil {
			return nil, false, err
		}
	}
	return dsl.Union(options...), nullable, nil
}

// typeNames splits the type keyword into its non-null names and a nullable
// flag. A bare "null" stays a name so it builds a Null node.
func typeNames(raw any, at skema.Path) ([]string, bool, error) {
	switch t := raw.(type) {
	case nil:
		return nil, false, nil
	case string:
		return []string{t}, false, nil
	case []any:
		var names []string
		nullable := false
		for _, v := range t {
			s, ok := v.(string)
			if !ok {
				return nil, false, fmt.Errorf("importer: %s: type entries must be strings", at.Pointer())
			}
			if s == "null" {
				nullable = true
				continue
			}
			names = append(names, s)
		}
		return names, nullable, nil
	}
	return nil, false, fmt.Errorf("importer: %s: type must be a string or a list", at.Pointer())
}

// inferTypes guesses the type of an untyped descriptor from its keywords.
func inferTypes(doc map[string]any) []string {
	has := func(keys ...string) bool {
		for _, k := range keys {
			if _, ok := doc[k]; ok {
				return true
			}
		}
		return false
	}
	switch {
	case has("properties", "additionalProperties", "propertyNames", "required"):
		return []string{"object"}
	case has("items", "prefixItems", "minItems", "maxItems"):
		return []string{"array"}
	case has("minLength", "maxLength", "pattern", "format"):
		return []string{"string"}
	case has("minimum", "maximum", "exclusiveMinimum", "exclusiveMaximum", "multipleOf"):
		return []string{"number"}
	}
	return nil
}

// enum maps enum members: a single member becomes a Literal, all strings an
// Enum, and anything else a union of literals. A null member makes the
// result nullable.
func enum(raw any, at skema.Path) (skema.Schema, bool, error) {
	members, ok := raw.([]any)
	if !ok || len(members) == 0 {
		return nil, false, fmt.Errorf("importer: %s: enum must be a non-empty list", at.Pointer())
	}
	values := make([]any, 0, len(members))
	withNull := false
	for _, m := range members {
		if m == nil {
			withNull = true
			continue
		}
		values = append(values, m)
	}
	switch len(values) {
	case 0:
		return dsl.Literal(nil), false, nil
	case 1:
		return dsl.Literal(values[0]), withNull, nil
	}
	strs := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			break
		}
		strs = append(strs, s)
	}
	if len(strs) == len(values) {
		return dsl.Enum(strs...), withNull, nil
	}
	options := make([]skema.Schema, len(values))
	for i, v := range values {
		options[i] = dsl.Literal(v)
	}
	return dsl.Union(options...), withNull, nil
}

func (im *importer) list(raw any, at skema.Path) ([]skema.Schema, error) {
	items, ok := raw.([]any)
	if !ok || len(items) == 0 {
		return nil, fmt.Errorf("importer: %s: expected a non-empty list of schemas", at.Pointer())
	}
	out := make([]skema.Schema, len(items))
	for i, it := range items {
		s, err := im.child(it, at.Index(i))
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func (im *importer) child(raw any, at skema.Path) (skema.Schema, error) {
	switch t := raw.(type) {
	case map[string]any:
		return im.node(t, at)
	case bool:
		// boolean schemas: true admits anything, false nothing
		if t {
			return dsl.Any(), nil
		}
		return dsl.Never(), nil
	}
	return nil, fmt.Errorf("importer: %s: expected a schema object, got %T", at.Pointer(), raw)
}

func (im *importer) typed(name string, doc map[string]any, at skema.Path) (skema.Schema, error) {
	switch name {
	case "string":
		return im.stringNode(doc, at)
	case "number", "integer":
		return im.numberNode(name == "integer", doc, at)
	case "boolean":
		return dsl.Boolean(), nil
	case "null":
		return dsl.Null(), nil
	case "array":
		return im.arrayNode(doc, at)
	case "object":
		return im.objectNode(doc, at)
	}
	return nil, fmt.Errorf("importer: %s: unknown type %q", at.Pointer(), name)
}

func (im *importer) stringNode(doc map[string]any, at skema.Path) (skema.Schema, error) {
	s := dsl.String()
	if n, ok, err := count(doc, "minLength", at); err != nil {
		return nil, err
	} else if ok {
		s = s.Min(n)
	}
	if n, ok, err := count(doc, "maxLength", at); err != nil {
		return nil, err
	} else if ok {
		s = s.Max(n)
	}
	if raw, ok := doc["pattern"]; ok {
		p, _ := raw.(string)
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("importer: %s: pattern: %w", at.Pointer(), err)
		}
		s = s.Regex(re)
	}
	if f, ok := doc["format"].(string); ok {
		if f == "email" {
			s = s.Email()
		} else {
			im.diag.warnf("%s: format %q is not validated", at.Pointer(), f)
		}
	}
	return s, nil
}

func (im *importer) numberNode(integer bool, doc map[string]any, at skema.Path) (skema.Schema, error) {
	n := dsl.Number()
	if integer {
		n = n.Int()
	}
	bounds := []struct {
		key   string
		apply func(*dsl.NumberSchema, float64) *dsl.NumberSchema
	}{
		{"minimum", func(n *dsl.NumberSchema, x float64) *dsl.NumberSchema { return n.Gte(x) }},
		{"maximum", func(n *dsl.NumberSchema, x float64) *dsl.NumberSchema { return n.Lte(x) }},
		{"exclusiveMinimum", func(n *dsl.NumberSchema, x float64) *dsl.NumberSchema { return n.Gt(x) }},
		{"exclusiveMaximum", func(n *dsl.NumberSchema, x float64) *dsl.NumberSchema { return n.Lt(x) }},
	}
	for _, b := range bounds {
		if _, draft4 := doc[b.key].(bool); draft4 {
			im.diag.warnf("%s: boolean %s is not supported and was ignored", at.Pointer(), b.key)
			continue
		}
		x, ok, err := number(doc, b.key, at)
		if err != nil {
			return nil, err
		}
		if ok {
			n = b.apply(n, x)
		}
	}
	m, ok, err := number(doc, "multipleOf", at)
	if err != nil {
		return nil, err
	}
	if ok {
		if m <= 0 {
			return nil, fmt.Errorf("importer: %s: multipleOf must be positive", at.Pointer())
		}
		n = n.MultipleOf(m)
	}
	return n, nil
}

func (im *importer) arrayNode(doc map[string]any, at skema.Path) (skema.Schema, error) {
	prefix, hasPrefix := doc["prefixItems"]
	items, hasItems := doc["items"]
	if list, ok := items.([]any); ok && !hasPrefix {
		// draft-04 tuple form
		prefix, hasPrefix, hasItems = list, true, false
		if extra, ok := doc["additionalItems"]; ok {
			items, hasItems = extra, true
		}
	}
	if hasPrefix {
		parts, err := im.list(prefix, at.Field("prefixItems"))
		if err != nil {
			return nil, err
		}
		t := dsl.Tuple(parts...)
		if hasItems {
			rest, err := im.child(items, at.Field("items"))
			if err != nil {
				return nil, err
			}
			t = t.Rest(rest)
		}
		return t, nil
	}

	var elem skema.Schema = dsl.Any()
	if hasItems {
		var err error
		if elem, err = im.child(items, at.Field("items")); err != nil {
			return nil, err
		}
	}
	a := dsl.Array(elem)
	if n, ok, err := count(doc, "minItems", at); err != nil {
		return nil, err
	} else if ok {
		a = a.Min(n)
	}
	if n, ok, err := count(doc, "maxItems", at); err != nil {
		return nil, err
	} else if ok {
		a = a.Max(n)
	}
	return a, nil
}

// objectNode builds a Record when additionalProperties is a schema and no
// properties are declared; otherwise an Object. Required fields come first
// in the order they are listed, the rest follow sorted by name.
func (im *importer) objectNode(doc map[string]any, at skema.Path) (skema.Schema, error) {
	props, _ := doc["properties"].(map[string]any)
	extra := doc["additionalProperties"]
	_, extraIsSchema := extra.(map[string]any)

	if len(props) == 0 && (extraIsSchema || doc["propertyNames"] != nil) {
		var value skema.Schema = dsl.Any()
		if extraIsSchema {
			var err error
			if value, err = im.child(extra, at.Field("additionalProperties")); err != nil {
				return nil, err
			}
		}
		if raw, ok := doc["propertyNames"]; ok {
			key, err := im.child(raw, at.Field("propertyNames"))
			if err != nil {
				return nil, err
			}
			return dsl.RecordOf(key, value), nil
		}
		return dsl.Record(value), nil
	}

	required, err := requiredNames(doc, at)
	if err != nil {
		return nil, err
	}
	isRequired := make(map[string]bool, len(required))
	order := make([]string, 0, len(required)+len(props))
	for _, name := range required {
		if !isRequired[name] {
			isRequired[name] = true
			order = append(order, name)
		}
	}
	rest := make([]string, 0, len(props))
	for name := range props {
		if !isRequired[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	order = append(order, rest...)

	fields := make([]dsl.Field, 0, len(order))
	for _, name := range order {
		var s skema.Schema = dsl.Any()
		if raw, ok := props[name]; ok {
			if s, err = im.child(raw, at.Field("properties").Field(name)); err != nil {
				return nil, err
			}
		}
		if !isRequired[name] && !s.IsOptionalLike() {
			s = dsl.Optional(s)
		}
		fields = append(fields, dsl.Prop(name, s))
	}
	obj := dsl.Object(fields...)

	if keep, _ := doc["x-kubernetes-preserve-unknown-fields"].(bool); keep {
		return obj.Passthrough(), nil
	}
	switch ap := extra.(type) {
	case bool:
		if ap {
			return obj.Passthrough(), nil
		}
	case map[string]any:
		im.diag.warnf("%s: additionalProperties schema alongside properties is not validated; unknown keys pass through", at.Pointer())
		return obj.Passthrough(), nil
	}
	return obj, nil
}

func requiredNames(doc map[string]any, at skema.Path) ([]string, error) {
	raw, ok := doc["required"]
	if !ok {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("importer: %s: required must be a list of names", at.Pointer())
	}
	names := make([]string, 0, len(list))
	for _, r := range list {
		s, ok := r.(string)
		if !ok {
			return nil, fmt.Errorf("importer: %s: required must be a list of names", at.Pointer())
		}
		names = append(names, s)
	}
	return names, nil
}

// number reads a numeric keyword. Strings and booleans are rejected even
// though cast would accept them.
func number(doc map[string]any, key string, at skema.Path) (float64, bool, error) {
	raw, ok := doc[key]
	if !ok {
		return 0, false, nil
	}
	switch raw.(type) {
	case nil, string, bool:
		return 0, false, fmt.Errorf("importer: %s: %s must be a number", at.Pointer(), key)
	}
	f, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, false, fmt.Errorf("importer: %s: %s: %w", at.Pointer(), key, err)
	}
	return f, true, nil
}

func count(doc map[string]any, key string, at skema.Path) (int, bool, error) {
	f, ok, err := number(doc, key, at)
	if err != nil || !ok {
		return 0, ok, err
	}
	if f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, false, fmt.Errorf("importer: %s: %s must be a non-negative integer", at.Pointer(), key)
	}
	return int(f), true, nil
}
