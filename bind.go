package skema

import (
	"context"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// ParseInto parses v with s and decodes the validated result into out, which
// must be a non-nil pointer. Struct fields are matched through `json` tags.
// Validation failures come back as Issues; binding failures are wrapped
// errors since they indicate a mismatch between the schema and the Go type.
func ParseInto(ctx context.Context, s Schema, v any, out any) error {
	parsed, err := s.Parse(ctx, v)
	if err != nil {
		return err
	}
	return Bind(parsed, out)
}

// Bind decodes an already parsed value into out.
func Bind(parsed any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           out,
		WeaklyTypedInput: false,
		Squash:           true,
	})
	if err != nil {
		return fmt.Errorf("skema: bind: %w", err)
	}
	if err := dec.Decode(parsed); err != nil {
		return fmt.Errorf("skema: bind: %w", err)
	}
	return nil
}
