package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edukit/edu-console-api/internal/service"
	"github.com/edukit/edu-console-api/pkg/response"
)

// ExportHandler wires the report export endpoints.
type ExportHandler struct {
	service *service.ExportService
}

// NewExportHandler creates a new handler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// GradeReport godoc
// @Summary Export the grade report
// @Tags Exports
// @Produce json
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/exports/grades [post]
func (h *ExportHandler) GradeReport(c *gin.Context) {
	format := service.ExportFormat(c.DefaultQuery("format", "csv"))
	result, err := h.service.GradeReport(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Download godoc
// @Summary Download a previously exported report
// @Tags Exports
// @Produce octet-stream
// @Param filename path string true "Report filename"
// @Success 200 {file} file
// @Failure 404 {object} response.Envelope
// @Router /admin/exports/{filename} [get]
func (h *ExportHandler) Download(c *gin.Context) {
	path, err := h.service.Open(c.Param("filename"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+c.Param("filename"))
	c.File(path)
}

// Delete godoc
// @Summary Delete a previously exported report
// @Tags Exports
// @Produce json
// @Param filename path string true "Report filename"
// @Success 204 "No Content"
// @Failure 404 {object} response.Envelope
// @Router /admin/exports/{filename} [delete]
func (h *ExportHandler) Delete(c *gin.Context) {
	if err := h.service.Remove(c.Param("filename")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
