package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hanbyul-dev/tripnote-backend/utils"
)

const userIDKey = "userID"

// RequireUser reads the authenticated user's ID from the X-User-ID header
// set by the session proxy and aborts the request when it is missing.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			utils.HandleError(c, utils.NewUnauthorizedError("Missing user identity"))
			c.Abort()
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// CurrentUserID returns the user ID stored by RequireUser
func CurrentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
