package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edukit/edu-console-api/internal/middleware"
	"github.com/edukit/edu-console-api/internal/service"
	appErrors "github.com/edukit/edu-console-api/pkg/errors"
	"github.com/edukit/edu-console-api/pkg/response"
)

// DashboardHandler wires the per-role landing summaries.
type DashboardHandler struct {
	service  *service.DashboardService
	students *service.StudentService
}

// NewDashboardHandler creates a new handler.
func NewDashboardHandler(svc *service.DashboardService, students *service.StudentService) *DashboardHandler {
	return &DashboardHandler{service: svc, students: students}
}

// Admin godoc
// @Summary Administrator landing summary
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/dashboard [get]
func (h *DashboardHandler) Admin(c *gin.Context) {
	dashboard, err := h.service.Admin(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dashboard)
}

// Teacher godoc
// @Summary Teaching staff landing summary
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /teacher/dashboard [get]
func (h *DashboardHandler) Teacher(c *gin.Context) {
	dashboard, err := h.service.Teacher(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dashboard)
}

// Student godoc
// @Summary Student landing summary scoped to the signed-in user
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /student/dashboard [get]
func (h *DashboardHandler) Student(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "no active session"))
		return
	}

	student, err := h.students.FindByEmail(c.Request.Context(), user.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	dashboard, err := h.service.Student(c.Request.Context(), student.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dashboard)
}
