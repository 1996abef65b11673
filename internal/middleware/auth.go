package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"assistente-gestao/pkg/response"
)

// APIKeyHeader carries the API key. "Authorization: Bearer <key>" is accepted too.
const APIKeyHeader = "X-API-Key"

// Auth rejects requests without the configured API key.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.apiKey == "" {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		}

		if subtle.ConstantTimeCompare([]byte(key), []byte(m.apiKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: rejected %s %s from %s", c.Request.Method, c.FullPath(), c.ClientIP())
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}
