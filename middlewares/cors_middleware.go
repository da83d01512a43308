// middlewares/cors_middleware.go
package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware lets the dashboard (served from anywhere) talk to the API.
// Preflight requests are answered directly with an empty 200.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
