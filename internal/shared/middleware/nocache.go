package middleware

import (
	"github.com/gin-gonic/gin"
)

// NoCache disables client and proxy caching on content endpoints.
// Admin forms must always see the latest section version after a save.
func NoCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store, no-cache, must-revalidate")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Next()
	}
}
