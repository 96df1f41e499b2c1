package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORS reflects the request origin. Configured origins and Vercel
// preview deployments get credentialed access; anything else is still
// let through, credentials excluded.
// TODO: reject unknown origins once the frontend domains settle.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins)+4)
	for _, o := range allowedOrigins {
		allowed[strings.TrimSpace(o)] = true
	}
	// Development defaults
	allowed["http://localhost:3000"] = true
	allowed["http://127.0.0.1:3000"] = true
	allowed["file://"] = true
	allowed["null"] = true

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case origin == "":
			// curl, mobile apps and same-origin requests
			c.Header("Access-Control-Allow-Origin", "*")
		case allowed[origin] || strings.Contains(origin, "vercel.app"):
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
		default:
			c.Header("Access-Control-Allow-Origin", origin)
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
