package middleware

import (
	"net/http"
	"strings"

	"booth-rally-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ParticipantAuth validates a participant bearer token. Tokens issued before
// the last reset are rejected here, at the boundary of every call.
func ParticipantAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			return
		}

		handle, err := authService.ValidateParticipantToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set("handle", handle)
		c.Next()
	}
}

// AdminAuth validates an admin bearer token and exposes the staff name to
// handlers for completer/claimer attribution.
func AdminAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			return
		}

		staff, err := authService.ValidateAdminToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set("staff", staff)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
		return "", false
	}
	return parts[1], true
}
