package middleware

import (
	"net/http" // HTTP status codes

	"github.com/choukseaaryan/seed-store/internal/utils" // JWT utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// SessionCookie is the HTTP-only cookie carrying the access token
const SessionCookie = "access_token"

// CookieAuth validates the session cookie and extracts user information.
// The token lives purely in the cookie; there is no bearer header fallback.
func CookieAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(SessionCookie) // Read the session cookie
		if err != nil || tokenStr == "" {
			// No cookie means no session
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		claims, err := utils.ParseJWT(tokenStr, secret) // Parse and validate the token
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set("userID", claims.UserID) // Store identity in context
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Next()
	}
}
