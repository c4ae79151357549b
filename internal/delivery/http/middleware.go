package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware handles CORS for browser extension and web clients.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if isAllowedOrigin(origin, allowedOrigins) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
			c.Writer.Header().Set("Access-Control-Max-Age", "3600")
		}

		// Handle preflight requests
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// isAllowedOrigin checks if the origin is in the allowed list
func isAllowedOrigin(origin string, allowedOrigins []string) bool {
	for _, allowed := range allowedOrigins {
		// Support wildcard matching for chrome-extension://*
		if strings.HasSuffix(allowed, "*") {
			prefix := strings.TrimSuffix(allowed, "*")
			if strings.HasPrefix(origin, prefix) {
				return true
			}
		} else if origin == allowed {
			return true
		}
	}
	return false
}

// ClientIP resolves the caller's identity for quota and history keying.
// Proxy headers take precedence over the socket address: CDN-supplied
// CF-Connecting-IP first, then X-Real-IP, then the first X-Forwarded-For
// hop.
func ClientIP(c *gin.Context) string {
	if ip := strings.TrimSpace(c.Request.Header.Get("CF-Connecting-IP")); ip != "" {
		return ip
	}
	if ip := strings.TrimSpace(c.Request.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	if forwarded := c.Request.Header.Get("X-Forwarded-For"); forwarded != "" {
		first := strings.Split(forwarded, ",")[0]
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	return c.ClientIP()
}

// QuotaMiddleware enforces the per-client scan quota. Every response
// carries the X-RateLimit-* headers; an exhausted client gets a 429 and
// the pipeline never runs.
func QuotaMiddleware(quota *Quota) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := quota.Allow(ClientIP(c), time.Now())

		c.Writer.Header().Set("X-RateLimit-Limit", strconv.Itoa(status.Limit))
		c.Writer.Header().Set("X-RateLimit-Remaining", strconv.Itoa(status.Remaining))
		c.Writer.Header().Set("X-RateLimit-Reset", strconv.FormatInt(status.Reset, 10))

		if !status.Allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Daily scan limit reached. Try again tomorrow.",
			})
			return
		}

		c.Next()
	}
}

// LoggerMiddleware logs requests (simple version for now)
func LoggerMiddleware() gin.HandlerFunc {
	return gin.Logger()
}

// RecoveryMiddleware recovers from panics
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.Recovery()
}
