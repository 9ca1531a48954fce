package skema

import (
	"context"

	js "github.com/reoring/skema/jsonschema"
)

// Schema is the contract every node satisfies: parse untyped input, answer
// the introspection queries containers rely on, and project itself into a
// JSON Schema descriptor.
type Schema interface {
	// Parse validates v and returns the (possibly transformed) value. On
	// failure the error is a non-empty Issues.
	Parse(ctx context.Context, v any) (any, error)
	// SafeParse never returns an error; callers branch on ParseResult.OK.
	SafeParse(ctx context.Context, v any) ParseResult

	// Kind tags the node for dispatch without type switches.
	Kind() Kind
	// IsOptionalLike reports whether an absent key or slot is acceptable.
	IsOptionalLike() bool
	// HasDefault reports whether DefaultValue yields a value.
	HasDefault() bool
	// DefaultValue returns the default, invoking a producer when one was
	// configured. It returns ErrNoDefault when HasDefault is false.
	DefaultValue() (any, error)

	// JSONSchema projects the schema into a JSON Schema representation.
	JSONSchema() (*js.Schema, error)
}

// RefineOpt carries the message, code and params used when a refinement
// fails. Empty fields fall back to "Invalid value" and CodeCustom.
type RefineOpt struct {
	Message string
	Code    string
	Params  map[string]any
}

// Kind enumerates node kinds.
type Kind int

const (
	KindString Kind = iota + 1
	KindNumber
	KindBoolean
	KindNull
	KindLiteral
	KindEnum
	KindAny
	KindUnknown
	KindNever
	KindArray
	KindTuple
	KindObject
	KindRecord
	KindUnion
	KindIntersection
	KindOptional
	KindNullable
	KindDefault
	KindTransform
	KindPreprocess
	KindLazy
)

var kindNames = map[Kind]string{
	KindString:       "string",
	KindNumber:       "number",
	KindBoolean:      "boolean",
	KindNull:         "null",
	KindLiteral:      "literal",
	KindEnum:         "enum",
	KindAny:          "any",
	KindUnknown:      "unknown",
	KindNever:        "never",
	KindArray:        "array",
	KindTuple:        "tuple",
	KindObject:       "object",
	KindRecord:       "record",
	KindUnion:        "union",
	KindIntersection: "intersection",
	KindOptional:     "optional",
	KindNullable:     "nullable",
	KindDefault:      "default",
	KindTransform:    "transform",
	KindPreprocess:   "preprocess",
	KindLazy:         "lazy",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "invalid"
}

// IsWrapper reports whether nodes of this kind wrap exactly one inner node.
func (k Kind) IsWrapper() bool { return k >= KindOptional }
