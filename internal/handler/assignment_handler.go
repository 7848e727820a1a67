package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edukit/edu-console-api/internal/middleware"
	"github.com/edukit/edu-console-api/internal/models"
	"github.com/edukit/edu-console-api/internal/service"
	appErrors "github.com/edukit/edu-console-api/pkg/errors"
	"github.com/edukit/edu-console-api/pkg/response"
)

// AssignmentHandler wires HTTP endpoints to the assignment service.
type AssignmentHandler struct {
	service  *service.AssignmentService
	students *service.StudentService
}

// NewAssignmentHandler creates a new handler.
func NewAssignmentHandler(svc *service.AssignmentService, students *service.StudentService) *AssignmentHandler {
	return &AssignmentHandler{service: svc, students: students}
}

// List godoc
// @Summary List assignments
// @Tags Assignments
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /teacher/assignments [get]
func (h *AssignmentHandler) List(c *gin.Context) {
	assignments, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignments)
}

// Get godoc
// @Summary Get one assignment
// @Tags Assignments
// @Produce json
// @Param id path string true "Assignment id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /teacher/assignments/{id} [get]
func (h *AssignmentHandler) Get(c *gin.Context) {
	assignment, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignment)
}

// Create godoc
// @Summary Create an assignment draft
// @Tags Assignments
// @Accept json
// @Produce json
// @Param payload body service.CreateAssignmentRequest true "Assignment payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /teacher/assignments [post]
func (h *AssignmentHandler) Create(c *gin.Context) {
	var req service.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid assignment payload"))
		return
	}

	assignment, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, assignment)
}

// Publish godoc
// @Summary Publish a draft assignment
// @Tags Assignments
// @Produce json
// @Param id path string true "Assignment id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /teacher/assignments/{id}/publish [patch]
func (h *AssignmentHandler) Publish(c *gin.Context) {
	assignment, err := h.service.Publish(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignment)
}

// Submissions godoc
// @Summary List submissions for an assignment
// @Tags Assignments
// @Produce json
// @Param id path string true "Assignment id"
// @Success 200 {object} response.Envelope
// @Router /teacher/assignments/{id}/submissions [get]
func (h *AssignmentHandler) Submissions(c *gin.Context) {
	submissions, err := h.service.SubmissionsFor(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, submissions)
}

// Delete godoc
// @Summary Delete an assignment
// @Tags Assignments
// @Produce json
// @Param id path string true "Assignment id"
// @Param confirm query bool true "Deletion confirmation"
// @Success 204 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Router /teacher/assignments/{id} [delete]
func (h *AssignmentHandler) Delete(c *gin.Context) {
	confirmed := c.Query("confirm") == "true"
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), confirmed); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Open godoc
// @Summary List assignments open for submission
// @Tags Assignments
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /student/assignments [get]
func (h *AssignmentHandler) Open(c *gin.Context) {
	assignments, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	open := assignments[:0:0]
	for _, a := range assignments {
		if a.Status == models.AssignmentActive {
			open = append(open, a)
		}
	}
	response.JSON(c, http.StatusOK, open)
}

// Submit godoc
// @Summary Submit an answer as the signed-in student
// @Tags Assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment id"
// @Success 201 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /student/assignments/{id}/submit [post]
func (h *AssignmentHandler) Submit(c *gin.Context) {
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

	// The answer body is optional; an empty submission still counts.
	var body struct {
		Content string `json:"content"`
	}
	_ = c.ShouldBindJSON(&body)

	submission, err := h.service.Submit(c.Request.Context(), c.Param("id"), service.SubmitAssignmentRequest{
		StudentID: student.ID,
		Content:   body.Content,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, submission)
}
