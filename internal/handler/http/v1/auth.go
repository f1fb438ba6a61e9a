package v1

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// APIKeyAuthMiddleware пропускает запрос только с одним из ключей keys.
// Ключ читается из X-API-Key, затем из Authorization: Bearer <key>.
func APIKeyAuthMiddleware(keys []string, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := requestAPIKey(c)
		if apiKey != "" && validAPIKey(keys, apiKey) {
			c.Next()
			return
		}

		log := logger.WithFields(logrus.Fields{
			"path":      c.FullPath(),
			"method":    c.Request.Method,
			"client_ip": c.ClientIP(),
		})
		// сам ключ в лог не пишем
		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}
		log.Warn("Invalid API key provided")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
	}
}

func requestAPIKey(c *gin.Context) string {
	if key := strings.TrimSpace(c.GetHeader("X-API-Key")); key != "" {
		return key
	}
	scheme, token, ok := strings.Cut(c.GetHeader("Authorization"), " ")
	if ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}
	return ""
}

func validAPIKey(keys []string, apiKey string) bool {
	for _, key := range keys {
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1 {
			return true
		}
	}
	return false
}
