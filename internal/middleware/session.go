package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/edukit/edu-console-api/internal/models"
	"github.com/edukit/edu-console-api/internal/service"
)

// ContextUserKey is the gin context key storing the signed-in user.
const ContextUserKey = "currentUser"

// Session loads the persisted session record into the request context when
// one exists. It never blocks a request; the guard decides access.
func Session(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, found, err := authService.Current(c.Request.Context())
		if err == nil && found {
			c.Set(ContextUserKey, user)
		}
		c.Next()
	}
}

// CurrentUser extracts the signed-in user from the gin context.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
