package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/folio-api/internal/logger"
)

// APIKeyConfig configures the admin API key gate.
type APIKeyConfig struct {
	HeaderName  string
	ValidAPIKey string
}

// APIKeyMiddleware rejects requests whose key header does not match the
// configured admin key. The comparison is constant time so response timing
// reveals nothing about the key; rejections are logged with the request path
// for abuse monitoring.
func APIKeyMiddleware(config APIKeyConfig, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := strings.TrimSpace(c.GetHeader(config.HeaderName))

		if apiKey == "" {
			log.Warnf("Rejected admin request to %s: missing API key", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Missing API key",
			})
			return
		}

		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(config.ValidAPIKey)) != 1 {
			log.Warnf("Rejected admin request to %s: invalid API key", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid API key",
			})
			return
		}

		c.Next()
	}
}
