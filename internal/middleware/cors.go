package middleware

import (
	"strings" // Origin prefix matching
	"time"    // Preflight cache age

	"github.com/gin-contrib/cors" // CORS middleware
	"github.com/gin-gonic/gin"    // Gin web framework
)

// CORS allows the configured browser origins, any file:// origin (the
// desktop build serves the client from disk) and requests without an
// Origin header (native tools, cURL).
func CORS(allowedOrigins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if origin == "" || strings.HasPrefix(origin, "file://") {
				return true
			}
			for _, allowed := range allowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true, // Session cookie must survive cross-origin requests
		MaxAge:           12 * time.Hour,
	})
}
