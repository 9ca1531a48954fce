package ginmw

import (
	"github.com/gin-gonic/gin"

	skema "github.com/reoring/skema"
	"github.com/reoring/skema/middleware"
)

// ValidateJSON parses the incoming JSON using schema s with opt (or
// DefaultParseOpt when zero), stores the parsed value in the request
// context, and aborts with middleware.ErrorPayload on failure.
func ValidateJSON(s skema.Schema, opt skema.ParseOpt) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := middleware.ParseBody(c.Request, s, opt)
		if err != nil {
			c.AbortWithStatusJSON(middleware.Status(err), middleware.ErrorPayload(err))
			return
		}
		c.Request = c.Request.WithContext(middleware.ContextWithValue(c.Request.Context(), v))
		c.Next()
	}
}

// GetValue fetches the parsed body from gin.Context.
func GetValue(c *gin.Context) (any, bool) {
	return middleware.ValueFromContext(c.Request.Context())
}
