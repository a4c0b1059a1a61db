package identity

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/robot-coverage/service/i"
	"github.com/gin-gonic/gin"
)

const (
	// ContextClaims is the key used to store token claims in the Gin context.
	ContextClaims = "tokenClaims"
)

// Authoriz rejects requests without a valid bearer token.
func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
			c.Header("WWW-Authenticate", `Bearer realm="robot-coverage"`)
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.Header("WWW-Authenticate", `Bearer error="invalid_token"`)
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(ContextClaims, claims)
		c.Next()
	}
}
