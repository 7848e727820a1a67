package handler

import (
	"github.com/gin-gonic/gin"

	appErrors "github.com/edukit/edu-console-api/pkg/errors"
	"github.com/edukit/edu-console-api/pkg/response"
)

// Unauthorized is the landing target for role-mismatch redirects.
func Unauthorized(c *gin.Context) {
	response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "you do not have access to this section"))
}

// NotFound handles unknown routes.
func NotFound(c *gin.Context) {
	response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "page not found"))
}
