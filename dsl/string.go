package dsl

import (
	"context"
	"regexp"
	"strconv"
	"unicode/utf8"

	skema "github.com/reoring/skema"
)

// emailPattern is intentionally permissive: one @, no whitespace, and a dot
// in the domain part.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// StringSchema accepts Go strings. Length bounds count code points.
type StringSchema struct {
	base
	minLen, maxLen int
	hasMin, hasMax bool
	pattern        string
	format         string
}

// String returns a schema accepting any string.
func String() *StringSchema { return &StringSchema{} }

func (s *StringSchema) Kind() skema.Kind { return skema.KindString }

func (s *StringSchema) Parse(_ context.Context, v any) (any, error) {
	str, ok := v.(string)
	if !ok {
		return nil, invalidType("string", v)
	}
	return finish(str, s.checks.run(str))
}

// Min requires at least n code points. The tightest minimum is kept for
// introspection and export.
func (s *StringSchema) Min(n int, msg ...string) *StringSchema {
	c := *s
	if !c.hasMin || n > c.minLen {
		c.minLen, c.hasMin = n, true
	}
	text := message(msg, skema.CodeTooSmall, map[string]string{"kind": "string", "minimum": strconv.Itoa(n)})
	c.checks = c.checks.with(func(v any) skema.Issues {
		str, _ := v.(string)
		if utf8.RuneCountInString(str) >= n {
			return nil
		}
		return fail(skema.CodeTooSmall, text, map[string]any{"minimum": n, "type": "string"})
	})
	return &c
}

// Max allows at most n code points.
func (s *StringSchema) Max(n int, msg ...string) *StringSchema {
	c := *s
	if !c.hasMax || n < c.maxLen {
		c.maxLen, c.hasMax = n, true
	}
	text := message(msg, skema.CodeTooBig, map[string]string{"kind": "string", "maximum": strconv.Itoa(n)})
	c.checks = c.checks.with(func(v any) skema.Issues {
		str, _ := v.(string)
		if utf8.RuneCountInString(str) <= n {
			return nil
		}
		return fail(skema.CodeTooBig, text, map[string]any{"maximum": n, "type": "string"})
	})
	return &c
}

// Length requires exactly n code points.
func (s *StringSchema) Length(n int, msg ...string) *StringSchema {
	return s.Min(n, msg...).Max(n, msg...)
}

// NonEmpty is Min(1).
func (s *StringSchema) NonEmpty(msg ...string) *StringSchema { return s.Min(1, msg...) }

// Regex requires a match of re anywhere in the string, as JSON Schema's
// pattern keyword does.
func (s *StringSchema) Regex(re *regexp.Regexp, msg ...string) *StringSchema {
	if re == nil {
		skema.Invalid("Regex", "pattern must not be nil")
	}
	c := *s
	c.pattern = re.String()
	text := message(msg, skema.CodeInvalidString, map[string]string{"kind": "regex"})
	c.checks = c.checks.with(func(v any) skema.Issues {
		str, _ := v.(string)
		if re.MatchString(str) {
			return nil
		}
		return fail(skema.CodeInvalidString, text, map[string]any{"validation": "regex", "pattern": re.String()})
	})
	return &c
}

// Email requires an address-shaped string and sets format "email".
func (s *StringSchema) Email(msg ...string) *StringSchema {
	c := *s
	c.format = "email"
	text := message(msg, skema.CodeInvalidString, map[string]string{"kind": "email"})
	c.checks = c.checks.with(func(v any) skema.Issues {
		str, _ := v.(string)
		if emailPattern.MatchString(str) {
			return nil
		}
		return fail(skema.CodeInvalidString, text, map[string]any{"validation": "email"})
	})
	return &c
}

func (s *StringSchema) MinLength() (int, bool) { return s.minLen, s.hasMin }
func (s *StringSchema) MaxLength() (int, bool) { return s.maxLen, s.hasMax }
func (s *StringSchema) Pattern() string        { return s.pattern }
func (s *StringSchema) Format() string         { return s.format }

func (s *StringSchema) withCheck(c check) *StringSchema {
	cp := *s
	cp.checks = cp.checks.with(c)
	return &cp
}
