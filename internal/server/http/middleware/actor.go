package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/falconboard/boardflow/internal/usecase"
)

// ActorHeader names the trusted header carrying the acting user identifier.
const ActorHeader = "X-Actor-Id"

// ActorContext propagates the acting user identifier into the request
// context so card activities can be attributed. Requests without the header
// pass through untouched.
func ActorContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := c.GetHeader(ActorHeader); raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
				c.Request = c.Request.WithContext(usecase.WithActor(c.Request.Context(), id))
			}
		}
		c.Next()
	}
}
