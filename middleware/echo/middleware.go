package echomw

import (
	"github.com/labstack/echo/v4"

	skema "github.com/reoring/skema"
	"github.com/reoring/skema/middleware"
)

// ValidateJSON parses the request JSON with s (DefaultParseOpt when opt is
// zero), stores the parsed value in the request context, and answers
// failures with middleware.ErrorPayload.
func ValidateJSON(s skema.Schema, opt skema.ParseOpt) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			v, err := middleware.ParseBody(c.Request(), s, opt)
			if err != nil {
				return c.JSON(middleware.Status(err), middleware.ErrorPayload(err))
			}
			ctx := middleware.ContextWithValue(c.Request().Context(), v)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// GetValue fetches the parsed body from echo.Context.
func GetValue(c echo.Context) (any, bool) {
	return middleware.ValueFromContext(c.Request().Context())
}
