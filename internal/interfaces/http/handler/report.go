package handler

import (
	"time"

	"github.com/feedygotech/laundry-backend/internal/application/report"
	"github.com/gin-gonic/gin"
)

// defaultAnalysisWindow bounds the order analysis when no explicit
// start date is given
const defaultAnalysisWindow = 365 * 24 * time.Hour

// ReportHandler handles the reporting endpoints
type ReportHandler struct {
	BaseHandler
	analysis *report.AnalysisService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(analysis *report.AnalysisService) *ReportHandler {
	return &ReportHandler{analysis: analysis}
}

// OrderAnalysis returns order volume and revenue per month and status.
// An optional since=YYYY-MM-DD query parameter narrows the window.
func (h *ReportHandler) OrderAnalysis(c *gin.Context) {
	since := time.Now().Add(-defaultAnalysisWindow)
	if raw := c.Query("since"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			h.BadRequest(c, "Invalid since date, expected YYYY-MM-DD")
			return
		}
		since = parsed
	}

	rows, err := h.analysis.OrderAnalysis(c.Request.Context(), since)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}

// CustomerStatus classifies customers by order recency
func (h *ReportHandler) CustomerStatus(c *gin.Context) {
	rows, err := h.analysis.CustomerStatus(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}

// Workload counts washing works per type and status
func (h *ReportHandler) Workload(c *gin.Context) {
	rows, err := h.analysis.Workload(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}
