package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/venuehaven/venue-booking-backend/internal/auth"
	"github.com/venuehaven/venue-booking-backend/internal/user"
)

// RequireOwner ensures the authenticated user has the owner role. The role is
// taken from the JWT claims placed into the context by auth.AuthRequired, so
// no user store lookup happens per request. It MUST be used after
// auth.AuthRequired.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth.GetUserID(c) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if auth.GetUserRole(c) != string(user.RoleOwner) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied: owner privileges required"})
			return
		}

		c.Next()
	}
}
