package authorization

import (
	"github.com/gin-gonic/gin"
)

// RequireAdmin rejects requests whose session does not carry the admin role.
// Non-admin callers get 401, indistinguishable from unauthenticated ones, so
// the admin surface does not advertise its existence.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString("user_role")
		if userRole != string(RoleAdmin) {
			c.JSON(401, gin.H{
				"error": gin.H{
					"type":    "unauthorized",
					"message": "authentication required",
				},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CanAccessResourceByOwnerID reports whether a user may touch a resource
// owned by resourceOwnerID. Admins may touch everything.
func CanAccessResourceByOwnerID(userID uint, userRole UserRole, resourceOwnerID uint) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userID == resourceOwnerID
}
