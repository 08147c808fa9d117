package auth

import (
	"chat-vault/errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Middleware reads the bearer token of HTTP requests.
// With required set, anonymous callers are rejected; otherwise they go
// through without an actor.
func Middleware(issuer *Issuer, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			// EventSource clients cannot set headers
			header = "Bearer " + c.Query("access_token")
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" {
			if required {
				abortUnauthenticated(c)
				return
			}
			c.Next()
			return
		}

		claims, err := issuer.ValidateToken(token)
		if err != nil {
			abortUnauthenticated(c)
			return
		}
		actor := claims.Actor()
		c.Request = c.Request.WithContext(WithActor(c.Request.Context(), actor))
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"kind":    errors.KindAuthorization,
		"message": errors.ErrAuthRequired.Error(),
	})
}
