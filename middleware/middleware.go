// Package middleware validates JSON request bodies against a schema at HTTP
// boundaries. The net/http middleware lives here; echo and gin adapters are
// nested modules that reuse the helpers below.
package middleware

import (
	"context"
	"net/http"

	j "github.com/goccy/go-json"

	skema "github.com/reoring/skema"
)

// ctxKeyValue is the context key for the parsed body.
type ctxKeyValue struct{}

// parsed boxes the value so a nil body still reports ok.
type parsed struct{ value any }

// ContextWithValue attaches a parsed body to the context.
func ContextWithValue(ctx context.Context, v any) context.Context {
	return context.WithValue(ctx, ctxKeyValue{}, parsed{value: v})
}

// ValueFromContext retrieves the parsed body stored by ValidateJSON.
func ValueFromContext(ctx context.Context) (any, bool) {
	v, ok := ctx.Value(ctxKeyValue{}).(parsed)
	return v.value, ok
}

// DefaultParseOpt returns a recommended default for HTTP JSON boundaries:
// duplicate keys are errors and bodies are capped at 1 MiB.
func DefaultParseOpt() skema.ParseOpt {
	return skema.ParseOpt{MaxDepth: 512, MaxBytes: 1 << 20, OnDuplicateKey: skema.Error}
}

// ErrorPayload shapes a parse failure for JSON responses. Issues are listed
// under "issues"; other errors under "error".
func ErrorPayload(err error) map[string]any {
	if iss, ok := skema.AsIssues(err); ok {
		return map[string]any{"issues": iss}
	}
	return map[string]any{"error": err.Error()}
}

// Status maps a parse failure to an HTTP status. Bodies that could not be
// decoded are 400; decoded bodies that violate the schema are 422.
func Status(err error) int {
	iss, ok := skema.AsIssues(err)
	if !ok {
		return http.StatusBadRequest
	}
	for _, it := range iss {
		switch it.Code {
		case skema.CodeParseError, skema.CodeTruncated, skema.CodeDuplicateKey:
			return http.StatusBadRequest
		}
	}
	return http.StatusUnprocessableEntity
}

// ParseBody parses r's JSON body with s. A zero opt selects DefaultParseOpt.
func ParseBody(r *http.Request, s skema.Schema, opt skema.ParseOpt) (any, error) {
	if opt == (skema.ParseOpt{}) {
		opt = DefaultParseOpt()
	}
	return skema.ParseJSONReader(r.Context(), s, r.Body, opt)
}

// ValidateJSON parses the request body with s and stores the parsed value
// in the request context. Failures are answered with ErrorPayload and
// Status; next is not called.
func ValidateJSON(s skema.Schema, opt skema.ParseOpt) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			v, err := ParseBody(r, s, opt)
			if err != nil {
				WriteJSON(w, Status(err), ErrorPayload(err))
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithValue(r.Context(), v)))
		})
	}
}

// WriteJSON writes v as a JSON response.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = j.NewEncoder(w).Encode(v)
}
