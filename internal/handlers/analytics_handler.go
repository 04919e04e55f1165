package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/masaar-cx/survey-analytics-service/internal/services"
	"github.com/masaar-cx/survey-analytics-service/internal/utils"
)

type AnalyticsHandler struct {
	BaseHandler
	analyticsService services.AnalyticsService
	exportService    services.ReportExportService
	validator        *utils.Validator
}

func NewAnalyticsHandler(
	analyticsService services.AnalyticsService,
	exportService services.ReportExportService,
	validator *utils.Validator,
	logger utils.Logger,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		BaseHandler:      NewBaseHandler(logger),
		analyticsService: analyticsService,
		exportService:    exportService,
		validator:        validator,
	}
}

// GetNPS returns the NPS view for a survey
// @Summary Get survey NPS
// @Description Computes the Net Promoter Score from the survey's recommendation question
// @Tags analytics
// @Produce json
// @Param id path string true "Survey ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /surveys/{id}/analytics/nps [get]
func (h *AnalyticsHandler) GetNPS(c *gin.Context) {
	surveyID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	h.LogRequest(c, "Computing NPS", "survey_id", surveyID)

	result, err := h.analyticsService.GetNPS(c.Request.Context(), surveyID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	// A survey without an eligible question yields a null metric, not an error.
	c.JSON(http.StatusOK, gin.H{"nps": result})
}

// GetCSAT returns the CSAT view for a survey
// @Summary Get survey CSAT
// @Description Computes the Customer Satisfaction score across qualifying questions
// @Tags analytics
// @Produce json
// @Param id path string true "Survey ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /surveys/{id}/analytics/csat [get]
func (h *AnalyticsHandler) GetCSAT(c *gin.Context) {
	surveyID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	h.LogRequest(c, "Computing CSAT", "survey_id", surveyID)

	result, err := h.analyticsService.GetCSAT(c.Request.Context(), surveyID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"csat": result})
}

// GetCSATTracking returns CSAT bucketed by period
// @Summary Get CSAT tracking
// @Description Buckets CSAT-classified answers by day, week, or month
// @Tags analytics
// @Produce json
// @Param id path string true "Survey ID"
// @Param group_by query string false "day, week, or month" default(day)
// @Param timezone query string false "IANA timezone identifier"
// @Param date_from query string false "Start date (2006-01-02 or RFC3339)"
// @Param date_to query string false "End date (2006-01-02 or RFC3339)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /surveys/{id}/analytics/csat/tracking [get]
func (h *AnalyticsHandler) GetCSATTracking(c *gin.Context) {
	surveyID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	req := &services.TrackingRequest{
		GroupBy:  c.DefaultQuery("group_by", "day"),
		Timezone: c.Query("timezone"),
	}

	from, ok := h.parseDateQuery(c, "date_from")
	if !ok {
		return
	}
	to, ok := h.parseDateQuery(c, "date_to")
	if !ok {
		return
	}
	req.DateFrom = from
	req.DateTo = to

	h.LogRequest(c, "Computing CSAT tracking", "survey_id", surveyID, "group_by", req.GroupBy)

	buckets, err := h.analyticsService.GetCSATTracking(c.Request.Context(), surveyID, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"group_by": req.GroupBy,
		"tracking": buckets,
	})
}

// GetHeatmap returns the 7x24 response-density matrix
// @Summary Get response heatmap
// @Description Builds the day-of-week by hour-of-day response matrix
// @Tags analytics
// @Produce json
// @Param id path string true "Survey ID"
// @Param timezone query string false "IANA timezone identifier"
// @Success 200 {object} models.Heatmap
// @Failure 404 {object} ErrorResponse
// @Router /surveys/{id}/analytics/heatmap [get]
func (h *AnalyticsHandler) GetHeatmap(c *gin.Context) {
	surveyID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	h.LogRequest(c, "Building heatmap", "survey_id", surveyID)

	heatmap, err := h.analyticsService.GetHeatmap(c.Request.Context(), surveyID, c.Query("timezone"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, heatmap)
}

// GetSummary returns every analytics view in one payload
// @Summary Get analytics summary
// @Description Bundles NPS, CSAT, daily tracking, and the heatmap
// @Tags analytics
// @Produce json
// @Param id path string true "Survey ID"
// @Success 200 {object} models.AnalyticsSummary
// @Failure 404 {object} ErrorResponse
// @Router /surveys/{id}/analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	surveyID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	h.LogRequest(c, "Computing analytics summary", "survey_id", surveyID)

	summary, err := h.analyticsService.GetSummary(c.Request.Context(), surveyID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ExportReport downloads the analytics summary as an xlsx workbook
// @Summary Export analytics report
// @Description Renders the full analytics summary as an Excel workbook
// @Tags analytics
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Survey ID"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Router /surveys/{id}/analytics/export [get]
func (h *AnalyticsHandler) ExportReport(c *gin.Context) {
	surveyID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	h.LogRequest(c, "Exporting analytics report", "survey_id", surveyID)

	data, err := h.exportService.ExportAnalyticsReport(c.Request.Context(), surveyID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+services.ReportFilename(surveyID)+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// InvalidateCache drops the cached answer snapshot for a survey
// @Summary Invalidate analytics cache
// @Description Drops the cached answer snapshot so the next view recomputes from fresh answers
// @Tags analytics
// @Produce json
// @Param id path string true "Survey ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /surveys/{id}/analytics/cache [delete]
func (h *AnalyticsHandler) InvalidateCache(c *gin.Context) {
	surveyID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	h.LogRequest(c, "Invalidating analytics cache", "survey_id", surveyID)

	if err := h.analyticsService.InvalidateSnapshot(c.Request.Context(), surveyID); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "analytics cache invalidated"})
}

// parseDateQuery accepts a plain date or an RFC3339 timestamp, writing the
// 400 response itself on malformed input.
func (h *AnalyticsHandler) parseDateQuery(c *gin.Context, param string) (*time.Time, bool) {
	raw := c.Query(param)
	if raw == "" {
		return nil, true
	}

	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, true
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Message: "Invalid " + param,
		Details: "must be 2006-01-02 or RFC3339",
	})
	return nil, false
}
