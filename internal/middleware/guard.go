package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edukit/edu-console-api/internal/models"
)

// Redirect targets for blocked navigation.
const (
	SignInPath       = "/signin"
	UnauthorizedPath = "/unauthorized"
)

// RequireSignIn redirects anonymous requests to the sign-in page.
func RequireSignIn() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.Redirect(http.StatusSeeOther, SignInPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole gates a route section to the given roles. Anonymous requests
// go to the sign-in page; signed-in users with the wrong role go to the
// unauthorized page.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.Redirect(http.StatusSeeOther, SignInPath)
			c.Abort()
			return
		}
		if _, permitted := allowed[user.Role]; !permitted {
			c.Redirect(http.StatusSeeOther, UnauthorizedPath)
			c.Abort()
			return
		}
		c.Next()
	}
}
