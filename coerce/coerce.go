// Package coerce holds the loose input conversions used by the coercing
// schemas in dsl. Every function is total: input it cannot convert is
// returned unchanged so the schema that follows reports the type error.
package coerce

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// numeric matches decimal literals with an optional fraction and exponent.
// Hex, octal, Inf and NaN spellings are not numbers here.
var numeric = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// String stringifies scalars: bools become "true"/"false", numbers use
// their shortest form and fmt.Stringer is honored. nil and composites pass
// through.
func String(v any) any {
	switch v.(type) {
	case nil, string:
		return v
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return v
	}
	return s
}

// Number converts bools to 1/0 and numeric strings to int64 (no '.') or
// float64. Anything else passes through.
func Number(v any) any {
	switch t := v.(type) {
	case bool:
		if t {
			return int64(1)
		}
		return int64(0)
	case string:
		return parseNumber(t)
	}
	return v
}

func parseNumber(raw string) any {
	s := strings.TrimSpace(raw)
	if s == "" || !numeric.MatchString(s) {
		return raw
	}
	if strings.Contains(s, ".") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return raw
		}
		return f
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	// Exponent forms such as "1e3" are integers when they fit.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return raw
	}
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return int64(f)
	}
	return f
}

var (
	truthy = map[string]bool{"true": true, "1": true, "yes": true, "on": true}
	falsy  = map[string]bool{"false": true, "0": true, "no": true, "off": true}
)

// Boolean maps numbers to (n == 1) and the usual on/off tokens to bools.
// Anything else passes through.
func Boolean(v any) any {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		switch {
		case truthy[s]:
			return true
		case falsy[s]:
			return false
		}
		return v
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return v
		}
		return f == 1
	}
	if isNumber(v) {
		f, _ := cast.ToFloat64E(v)
		return f == 1
	}
	return v
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	}
	return false
}
