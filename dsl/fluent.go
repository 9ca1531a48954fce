package dsl

import (
	"context"

	skema "github.com/reoring/skema"
	js "github.com/reoring/skema/jsonschema"
)

// Fluent wrappers shared by every node. Each returns a new node and leaves
// the receiver untouched.

// StringSchema

func (s *StringSchema) SafeParse(ctx context.Context, v any) skema.ParseResult {
	return skema.SafeParse(ctx, s, v)
}

func (s *StringSchema) JSONSchema() (*js.Schema, error) { return Export(s) }

func (s *StringSchema) Optional() *OptionalSchema                   { return Optional(s) }
func (s *StringSchema) Nullable() *NullableSchema                   { return Nullable(s) }
func (s *StringSchema) Default(v any) *DefaultSchema                { return Default(s, v) }
func (s *StringSchema) DefaultFunc(fn func() any) *DefaultSchema    { return DefaultFunc(s, fn) }
func (s *StringSchema) Transform(fn func(any) any) *TransformSchema { return Transform(s, fn) }

func (s *StringSchema) Preprocess(fn func(any) any) *PreprocessSchema[*StringSchema] {
	return Preprocess(fn, s)
}

func (s *StringSchema) Refine(pred func(any) bool, opts ...skema.RefineOpt) *StringSchema {
	return s.withCheck(predicateCheck(pred, opts))
}

func (s *StringSchema) SuperRefine(fn func(any) error, opts ...skema.RefineOpt) *StringSchema {
	return s.withCheck(errorCheck(fn, opts))
}

// NumberSchema

func (s *NumberSchema) SafeParse(ctx context.Context, v any) skema.ParseResult {
	return skema.SafeParse(ctx, s, v)
}

func (s *NumberSchema) JSONSchema() (*js.Schema, error) { return Export(s) }

func (s *NumberSchema) Optional() *OptionalSchema                   { return Optional(s) }
func (s *NumberSchema) Nullable() *NullableSchema                   { return Nullable(s) }
func (s *NumberSchema) Default(v any) *DefaultSchema                { return Default(s, v) }
func (s *NumberSchema) DefaultFunc(fn func() any) *DefaultSchema    { return DefaultFunc(s, fn) }
func (s *NumberSchema) Transform(fn func(any) any) *TransformSchema { return Transform(s, fn) }

func (s *NumberSchema) Preprocess(fn func(any) any) *PreprocessSchema[*NumberSchema] {
	return Preprocess(fn, s)
}

func (s *NumberSchema) Refine(pred func(any) bool, opts ...skema.RefineOpt) *NumberSchema {
	return s.withCheck(predicateCheck(pred, opts))
}

func (s *NumberSchema) SuperRefine(fn func(any) error, opts ...skema.RefineOpt) *NumberSchema {
	return s.withCheck(errorCheck(fn, opts))
}

// BooleanSchema

func (s *BooleanSchema) SafeParse(ctx context.Context, v any) skema.ParseResult {
	return skema.SafeParse(ctx, s, v)
}

func (s *BooleanSchema) JSONSchema() (*js.Schema, error) { return Export(s) }

func (s *BooleanSchema) Optional() *OptionalSchema                   { return Optional(s) }
func (s *BooleanSchema) Nullable() *NullableSchema                   { return Nullable(s) }
func (s *BooleanSchema) Default(v any) *DefaultSchema                { return Default(s, v) }
func (s *BooleanSchema) DefaultFunc(fn func() any) *DefaultSchema    { return DefaultFunc(s, fn) }
func (s *BooleanSchema) Transform(fn func(any) any) *TransformSchema { return Transform(s, fn) }

func (s *BooleanSchema) Preprocess(fn func(any) any) *PreprocessSchema[*BooleanSchema] {
	return Preprocess(fn, s)
}

func (s *BooleanSchema) Refine(pred func(any) bool, opts ...skema.RefineOpt) *BooleanSchema {
	return s.withCheck(predicateCheck(pred, opts))
}

func (s *BooleanSchema) SuperRefine(fn func(any) error, opts ...skema.RefineOpt) *BooleanSchema {
	return s.withCheck(errorCheck(fn, opts))
}

// NullSchema

func (s *NullSchema) SafeParse(ctx context.Context, v any) skema.ParseResult {
	return skema.SafeParse(ctx, s, v)
}

func (s *NullSchema) JSONSchema() (*js.Schema, error) { return Export(s) }

func (s *NullSchema) Optional() *OptionalSchema                   { return Optional(s) }
func (s *NullSchema) Nullable() *NullableSchema                   { return Nullable(s) }
func (s *NullSchema) Default(v any) *DefaultSchema                { return Default(s, v) }
func (s *NullSchema) DefaultFunc(fn func() any) *DefaultSchema    { return DefaultFunc(s, fn) }
func (s *NullSchema) Transform(fn func(any) any) *TransformSchema { return Transform(s, fn) }

func (s *NullSchema) Preprocess(fn func(any) any) *PreprocessSchema[*NullSchema] {
	return Preprocess(fn, s)
}

func (s *NullSchema) Refine(pred func(any) bool, opts ...skema.RefineOpt) *NullSchema {
	return s.withCheck(predicateCheck(pred, opts))
}

func (s *NullSchema) SuperRefine(fn func(any) error, opts ...skema.RefineOpt) *NullSchema {
	return s.withCheck(errorCheck(fn, opts))
}

// LiteralSchema

func (s *LiteralSchema) SafeParse(ctx context.Context, v any) skema.ParseResult {
	return skema.SafeParse(ctx, s, v)
}

func (s *LiteralSchema) JSONSchema() (*js.Schema, error) { return Export(s) }

func (s *LiteralSchema) Optional() *OptionalSchema                   { return Optional(s) }
func (s *LiteralSchema) Nullable() *NullableSchema                   { return Nullable(s) }
func (s *LiteralSchema) Default(v any) *DefaultSchema                { return Default(s, v) }
func (s *LiteralSchema) DefaultFunc(fn func() any) *DefaultSchema    { return DefaultFunc(s, fn) }
func (s *LiteralSchema) Transform(fn func(any) any) *TransformSchema { return Transform(s, fn) }

func (s *LiteralSchema) Preprocess(fn func(any) any) *PreprocessSchema[*LiteralSchema] {
	return Preprocess(fn, s)
}

func (s *LiteralSchema) Refine(pred func(any) bool, opts ...skema.RefineOpt) *LiteralSchema {
	return s.withCheck(predicateCheck(pred, opts))
}

func (s *LiteralSchema) SuperRefine(fn func(any) error, opts ...skema.RefineOpt) *LiteralSchema {
	return s.withCheck(errorCheck(fn, opts))
}

// EnumSchema

func (s *EnumSchema) SafeParse(ctx context.Context, v any) skema.ParseResult {
	return skema.SafeParse(ctx, s, v)
}

func (s *EnumSchema) JSONSchema() (*js.Schema, error) { return Export(s) }

func (s *EnumSchema) Optional() *OptionalSchema                   { return Optional(s) }
func (s *EnumSchema) Nullable() *NullableSchema                   { return Nullable(s) }
func (s *EnumSchema) Default(v any) *DefaultSchema                { return Default(s, v) }
func (s *EnumSchema) DefaultFunc(fn func() any) *DefaultSchema    { return DefaultFunc(s, fn) }
func (s *EnumSchema) Transform(fn func(any) any) *TransformSchema { return Transform(s, fn) }

func (s *EnumSchema) Preprocess(fn func(any) any) *PreprocessSchema[*EnumSchema] {
	return Preprocess(fn, s)
}

func (s *EnumSchema) Refine(pred func(any) bool, opts ...skema.RefineOpt) *EnumSchema {
	return s.withCheck(predicateCheck(pred, opts))
}

func (s *EnumSchema) SuperRefine(fn func(any) error, opts ...skema.RefineOpt) *EnumSchema {
	return s.withCheck(errorCheck(fn, opts))
}

// AnySchema

func (s *AnySchema) SafeParse(ctx context.Context, v any) skema.ParseResult {
	return skema.SafeParse(ctx, s, v)
}

func (s *AnySchema) JSONSchema() (*js.Schema, error) { return Export(s) }

func (s *AnySchema) Optional() *OptionalSchema                   { return Optional(s) }
func (s *AnySchema) Nullable() *NullableSchema                   { return Nullable(s) }
func (s *AnySchema) Default(v any) *DefaultSchema                { return Default(s, v) }
func (s *AnySchema) DefaultFunc(fn func() any) *DefaultSchema    { return DefaultFunc(s, fn) }
func (s *AnySchema) Transform(fn func(any) any) *TransformSchema { return Transform(s, fn) }

func (s *AnySchema) Preprocess(fn func(any) any) *PreprocessSchema[*AnySchema] {
	return Preprocess(fn, s)
}

func (s *AnySchema) Refine(pred func(any) bool, opts ...skema.RefineOpt) *AnySchema {
	return s.withCheck(predicateCheck(pred, opts))
}

func (s *AnySchema) SuperRefine(fn func(any) error, opts ...skema.RefineOpt) *AnySchema {
	return s.withCheck(errorCheck(fn, opts))
}

// NeverSchema

func (s *NeverSchema) SafeParse(ctx context.Context, v any) skema.ParseResult {
	return skema.SafeParse(ctx, s, v)
}

func (s *NeverSchema) JSONSchema() (*js.Schema, error) { return Export(s) }

func (s *NeverSchema) Optional() *OptionalSchema                   { return Optional(s) }
func (s *NeverSchema) Nullable() *NullableSchema                   { return Nullable(s) }
func (s *NeverSchema) Default(v any) *DefaultSchema                { return Default(s, v) }
func (s *NeverSchema) DefaultFunc(fn func() any) *DefaultSchema    { return DefaultFunc(s, fn) }
func (s *NeverSchema) Transform(fn func(any) any) *TransformSchema { return Transform(s, fn) }

func (s *NeverSchema) Preprocess(fn func(any) any) *PreprocessSchema[*NeverSchema] {
	return Preprocess(fn, s)
}

func (s *NeverSchema) Refine(pred func(any) bool, opts ...skema.RefineOpt) *NeverSchema {
	return s.withCheck(predicateCheck(pred, opts))
}

func (s *NeverSchema) SuperRefine(fn func(any) error, opts ...skema.RefineOpt) *NeverSchema {
	return s.withCheck(errorCheck(fn, opts))
}

// ArraySchema

func (s *ArraySchema) SafeParse(ctx context.Context, v any) skema.ParseResult {
	return skema.SafeParse(ctx, s, v)
}

func (s *ArraySchema) JSONSchema() (*js.Schema, error) { return Export(s) }

func (s *ArraySchema) Optional() *OptionalSchema                   { return Optional(s) }
func (s *ArraySchema) Nullable() *NullableSchema                   { return Nullable(s) }
func (s *ArraySchema) Default(v any) *DefaultSchema                { return Default(s, v) }
func (s *ArraySchema) DefaultFunc(fn func() any) *DefaultSchema    { return DefaultFunc(s, fn) }
func (s *ArraySchema) Transform(fn func(any) any) *TransformSchema { return Transform(s, fn) }

func (s *ArraySchema) Preprocess(fn func(any) any) *PreprocessSchema[*ArraySchema] {
	return Preprocess(fn, s)
}

func (s *ArraySchema) Refine(pred func(any) bool, opts ...skema.RefineOpt) *ArraySchema {
	return s.withCheck(predicateCheck(pred, opts))
}

func (s *ArraySchema) SuperRefine(fn func(any) error, opts ...skema.RefineOpt) *ArraySchema {
	return s.withCheck(errorCheck(fn, opts))
}

// TupleSchema

func (s *TupleSchema) SafeParse(ctx context.Context, v any) skema.ParseResult {
	return skema.SafeParse(ctx, s, v)
}

func (s *TupleSchema) JSONSchema() (*js.Schema, error) { return Export(s) }

func (s *TupleSchema) Optional() *OptionalSchema                   { return Optional(s) }
func (s *TupleSchema) Nullable() *NullableSchema                   { return Nullable(s) }
func (s *TupleSchema) Default(v any) *DefaultSchema                { return Default(s, v) }
func (s *TupleSchema) DefaultFunc(fn func() any) *DefaultSchema    { return DefaultFunc(s, fn) }
func (s *TupleSchema) Transform(fn func(any) any) *TransformSchema { return Transform(s, fn) }

func (s *TupleSchema) Preprocess(fn func(any) any) *PreprocessSchema[*TupleSchema] {
	return Preprocess(fn, s)
}

func (s *TupleSchema) Refine(pred func(any) bool, opts ...skema.RefineOpt) *TupleSchema {
	return s.withCheck(predicateCheck(pred, opts))
}

func (s *TupleSchema) SuperRefine(fn func(any) error, opts ...skema.RefineOpt) *TupleSchema {
	return s.withCheck(errorCheck(fn, opts))
}

// ObjectSchema

func (s *ObjectSchema) SafeParse(ctx context.Context, v any) skema.ParseResult {
	return skema.SafeParse(ctx, s, v)
}

func (s *ObjectSchema) JSONSchema() (*js.Schema, error) { return Export(s) }

func (s *ObjectSchema) Optional() *OptionalSchema                   { return Optional(s) }
func (s *ObjectSchema) Nullable() *NullableSchema                   { return Nullable(s) }
func (s *ObjectSchema) Default(v any) *DefaultSchema                { return Default(s, v) }
func (s *ObjectSchema) DefaultFunc(fn func() any) *DefaultSchema    { return DefaultFunc(s, fn) }
func (s *ObjectSchema) Transform(fn func(any) any) *TransformSchema { return Transform(s, fn) }

func (s *ObjectSchema) Preprocess(fn func(any) any) *PreprocessSchema[*ObjectSchema] {
	return Preprocess(fn, s)
}

func (s *ObjectSchema) Refine(pred func(any) bool, opts ...skema.RefineOpt) *ObjectSchema {
	return s.withCheck(predicateCheck(pred, opts))
}

func (s *ObjectSchema) SuperRefine(fn func(any) error, opts ...skema.RefineOpt) *ObjectSchema {
	return s.withCheck(errorCheck(fn, opts))
}

// RecordSchema

func (s *RecordSchema) SafeParse(ctx context.Context, v any) skema.ParseResult {
	return skema.SafeParse(ctx, s, v)
}

func (s *RecordSchema) JSONSchema() (*js.Schema, error) { return Export(s) }

func (s *RecordSchema) Optional() *OptionalSchema                   { return Optional(s) }
func (s *RecordSchema) Nullable() *NullableSchema                   { return Nullable(s) }
func (s *RecordSchema) Default(v any) *DefaultSchema                { return Default(s, v) }
func (s *RecordSchema) DefaultFunc(fn func() any) *DefaultSchema    { return DefaultFunc(s, fn) }
func (s *RecordSchema) Transform(fn func(any) any) *TransformSchema { return Transform(s, fn) }

func (s *RecordSchema) Preprocess(fn func(any) any) *PreprocessSchema[*RecordSchema] {
	return Preprocess(fn, s)
}

func (s *RecordSchema) Refine(pred func(any) bool, opts ...skema.RefineOpt) *RecordSchema {
	return s.withCheck(predicateCheck(pred, opts))
}

func (s *RecordSchema) SuperRefine(fn func(any) error, opts ...skema.RefineOpt) *RecordSchema {
	return s.withCheck(errorCheck(fn, opts))
}

// UnionSchema

func (s *UnionSchema) SafeParse(ctx context.Context, v any) skema.ParseResult {
	return skema.SafeParse(ctx, s, v)
}

func (s *UnionSchema) JSONSchema() (*js.Schema, error) { return Export(s) }

func (s *UnionSchema) Optional() *OptionalSchema                   { return Optional(s) }
func (s *UnionSchema) Nullable() *NullableSchema                   { return Nullable(s) }
func (s *UnionSchema) Default(v any) *DefaultSchema                { return Default(s, v) }
func (s *UnionSchema) DefaultFunc(fn func() any) *DefaultSchema    { return DefaultFunc(s, fn) }
func (s *UnionSchema) Transform(fn func(any) any) *TransformSchema { return Transform(s, fn) }

func (s *UnionSchema) Preprocess(fn func(any) any) *PreprocessSchema[*UnionSchema] {
	return Preprocess(fn, s)
}

func (s *UnionSchema) Refine(pred func(any) bool, opts ...skema.RefineOpt) *UnionSchema {
	return s.withCheck(predicateCheck(pred, opts))
}

func (s *UnionSchema) SuperRefine(fn func(any) error, opts ...skema.RefineOpt) *UnionSchema {
	return s.withCheck(errorCheck(fn, opts))
}

// IntersectionSchema

func (s *IntersectionSchema) SafeParse(ctx context.Context, v any) skema.ParseResult {
	return skema.SafeParse(ctx, s, v)
}

func (s *IntersectionSchema) JSONSchema() (*js.Schema, error) { return Export(s) }

func (s *IntersectionSchema) Optional() *OptionalSchema                   { return Optional(s) }
func (s *IntersectionSchema) Nullable() *NullableSchema                   { return Nullable(s) }
func (s *IntersectionSchema) Default(v any) *DefaultSchema                { return Default(s, v) }
func (s *IntersectionSchema) DefaultFunc(fn func() any) *DefaultSchema    { return DefaultFunc(s, fn) }
func (s *IntersectionSchema) Transform(fn func(any) any) *TransformSchema { return Transform(s, fn) }

func (s *IntersectionSchema) Preprocess(fn func(any) any) *PreprocessSchema[*IntersectionSchema] {
	return Preprocess(fn, s)
}

func (s *IntersectionSchema) Refine(pred func(any) bool, opts ...skema.RefineOpt) *IntersectionSchema {
	return s.withCheck(predicateCheck(pred, opts))
}

func (s *IntersectionSchema) SuperRefine(fn func(any) error, opts ...skema.RefineOpt) *IntersectionSchema {
	return s.withCheck(errorCheck(fn, opts))
}

// OptionalSchema

func (s *OptionalSchema) SafeParse(ctx context.Context, v any) skema.ParseResult {
	return skema.SafeParse(ctx, s, v)
}

func (s *OptionalSchema) JSONSchema() (*js.Schema, error) { return Export(s) }

func (s *OptionalSchema) Optional() *OptionalSchema                   { return Optional(s) }
func (s *OptionalSchema) Nullable() *NullableSchema                   { return Nullable(s) }
func (s *OptionalSchema) Default(v any) *DefaultSchema                { return Default(s, v) }
func (s *OptionalSchema) DefaultFunc(fn func() any) *DefaultSchema    { return DefaultFunc(s, fn) }
func (s *OptionalSchema) Transform(fn func(any) any) *TransformSchema { return Transform(s, fn) }

func (s *OptionalSchema) Preprocess(fn func(any) any) *PreprocessSchema[*OptionalSchema] {
	return Preprocess(fn, s)
}

func (s *OptionalSchema) Refine(pred func(any) bool, opts ...skema.RefineOpt) *OptionalSchema {
	return s.withCheck(predicateCheck(pred, opts))
}

func (s *OptionalSchema) SuperRefine(fn func(any) error, opts ...skema.RefineOpt) *OptionalSchema {
	return s.withCheck(errorCheck(fn, opts))
}

// NullableSchema

func (s *NullableSchema) SafeParse(ctx context.Context, v any) skema.ParseResult {
	return skema.SafeParse(ctx, s, v)
}

func (s *NullableSchema) JSONSchema() (*js.Schema, error) { return Export(s) }

func (s *NullableSchema) Optional() *OptionalSchema                   { return Optional(s) }
func (s *NullableSchema) Nullable() *NullableSchema                   { return Nullable(s) }
func (s *NullableSchema) Default(v any) *DefaultSchema                { return Default(s, v) }
func (s *NullableSchema) DefaultFunc(fn func() any) *DefaultSchema    { return DefaultFunc(s, fn) }
func (s *NullableSchema) Transform(fn func(any) any) *TransformSchema { return Transform(s, fn) }

func (s *NullableSchema) Preprocess(fn func(any) any) *PreprocessSchema[*NullableSchema] {
	return Preprocess(fn, s)
}

func (s *NullableSchema) Refine(pred func(any) bool, opts ...skema.RefineOpt) *NullableSchema {
	return s.withCheck(predicateCheck(pred, opts))
}

func (s *NullableSchema) SuperRefine(fn func(any) error, opts ...skema.RefineOpt) *NullableSchema {
	return s.withCheck(errorCheck(fn, opts))
}

// DefaultSchema

func (s *DefaultSchema) SafeParse(ctx context.Context, v any) skema.ParseResult {
	return skema.SafeParse(ctx, s, v)
}

func (s *DefaultSchema) JSONSchema() (*js.Schema, error) { return Export(s) }

func (s *DefaultSchema) Nullable() *NullableSchema                   { return Nullable(s) }
func (s *DefaultSchema) Default(v any) *DefaultSchema                { return Default(s, v) }
func (s *DefaultSchema) DefaultFunc(fn func() any) *DefaultSchema    { return DefaultFunc(s, fn) }
func (s *DefaultSchema) Transform(fn func(any) any) *TransformSchema { return Transform(s, fn) }

func (s *DefaultSchema) Preprocess(fn func(any) any) *PreprocessSchema[*DefaultSchema] {
	return Preprocess(fn, s)
}

func (s *DefaultSchema) Refine(pred func(any) bool, opts ...skema.RefineOpt) *DefaultSchema {
	return s.withCheck(predicateCheck(pred, opts))
}

func (s *DefaultSchema) SuperRefine(fn func(any) error, opts ...skema.RefineOpt) *DefaultSchema {
	return s.withCheck(errorCheck(fn, opts))
}

// TransformSchema

func (s *TransformSchema) SafeParse(ctx context.Context, v any) skema.ParseResult {
	return skema.SafeParse(ctx, s, v)
}

func (s *TransformSchema) JSONSchema() (*js.Schema, error) { return Export(s) }

func (s *TransformSchema) Optional() *OptionalSchema                   { return Optional(s) }
func (s *TransformSchema) Nullable() *NullableSchema                   { return Nullable(s) }
func (s *TransformSchema) Default(v any) *DefaultSchema                { return Default(s, v) }
func (s *TransformSchema) DefaultFunc(fn func() any) *DefaultSchema    { return DefaultFunc(s, fn) }
func (s *TransformSchema) Transform(fn func(any) any) *TransformSchema { return Transform(s, fn) }

func (s *TransformSchema) Preprocess(fn func(any) any) *PreprocessSchema[*TransformSchema] {
	return Preprocess(fn, s)
}

func (s *TransformSchema) Refine(pred func(any) bool, opts ...skema.RefineOpt) *TransformSchema {
	return s.withCheck(predicateCheck(pred, opts))
}

func (s *TransformSchema) SuperRefine(fn func(any) error, opts ...skema.RefineOpt) *TransformSchema {
	return s.withCheck(errorCheck(fn, opts))
}

// PreprocessSchema

func (s *PreprocessSchema[S]) SafeParse(ctx context.Context, v any) skema.ParseResult {
	return skema.SafeParse(ctx, s, v)
}

func (s *PreprocessSchema[S]) JSONSchema() (*js.Schema, error) { return Export(s) }

func (s *PreprocessSchema[S]) Optional() *OptionalSchema                   { return Optional(s) }
func (s *PreprocessSchema[S]) Nullable() *NullableSchema                   { return Nullable(s) }
func (s *PreprocessSchema[S]) Default(v any) *DefaultSchema                { return Default(s, v) }
func (s *PreprocessSchema[S]) DefaultFunc(fn func() any) *DefaultSchema    { return DefaultFunc(s, fn) }
func (s *PreprocessSchema[S]) Transform(fn func(any) any) *TransformSchema { return Transform(s, fn) }

// Preprocess on a preprocess wrapper erases the inner type parameter;
// use With before stacking a second preprocess step.
func (s *PreprocessSchema[S]) Preprocess(fn func(any) any) *PreprocessSchema[skema.Schema] {
	return Preprocess[skema.Schema](fn, s)
}

func (s *PreprocessSchema[S]) Refine(pred func(any) bool, opts ...skema.RefineOpt) *PreprocessSchema[S] {
	return s.withCheck(predicateCheck(pred, opts))
}

func (s *PreprocessSchema[S]) SuperRefine(fn func(any) error, opts ...skema.RefineOpt) *PreprocessSchema[S] {
	return s.withCheck(errorCheck(fn, opts))
}

// LazySchema

func (s *LazySchema) SafeParse(ctx context.Context, v any) skema.ParseResult {
	return skema.SafeParse(ctx, s, v)
}

func (s *LazySchema) JSONSchema() (*js.Schema, error) { return Export(s) }

func (s *LazySchema) Optional() *OptionalSchema                   { return Optional(s) }
func (s *LazySchema) Nullable() *NullableSchema                   { return Nullable(s) }
func (s *LazySchema) Default(v any) *DefaultSchema                { return Default(s, v) }
func (s *LazySchema) DefaultFunc(fn func() any) *DefaultSchema    { return DefaultFunc(s, fn) }
func (s *LazySchema) Transform(fn func(any) any) *TransformSchema { return Transform(s, fn) }

func (s *LazySchema) Preprocess(fn func(any) any) *PreprocessSchema[*LazySchema] {
	return Preprocess(fn, s)
}

func (s *LazySchema) Refine(pred func(any) bool, opts ...skema.RefineOpt) *LazySchema {
	return s.withCheck(predicateCheck(pred, opts))
}

func (s *LazySchema) SuperRefine(fn func(any) error, opts ...skema.RefineOpt) *LazySchema {
	return s.withCheck(errorCheck(fn, opts))
}
