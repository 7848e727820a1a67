package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edukit/edu-console-api/internal/service"
	"github.com/edukit/edu-console-api/pkg/response"
)

// AnalyticsHandler wires the derived aggregate endpoints.
type AnalyticsHandler struct {
	service *service.AnalyticsService
	metrics *service.MetricsService
}

// NewAnalyticsHandler creates a new handler.
func NewAnalyticsHandler(svc *service.AnalyticsService, metrics *service.MetricsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: svc, metrics: metrics}
}

// Overview godoc
// @Summary Headline counters
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/analytics/overview [get]
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, overview)
}

// CourseDistribution godoc
// @Summary Students per course
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/analytics/courses [get]
func (h *AnalyticsHandler) CourseDistribution(c *gin.Context) {
	distribution, err := h.service.CourseDistribution(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, distribution)
}

// GradeBuckets godoc
// @Summary Grade records binned by score band
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/analytics/grades [get]
func (h *AnalyticsHandler) GradeBuckets(c *gin.Context) {
	buckets, err := h.service.GradeBuckets(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, buckets)
}

// System godoc
// @Summary Runtime metrics snapshot
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/analytics/system [get]
func (h *AnalyticsHandler) System(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.metrics.Snapshot())
}
