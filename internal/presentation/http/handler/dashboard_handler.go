package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tablewise/pos-api/internal/application/service"
	"github.com/tablewise/pos-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard and reporting HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetToday handles getting today's sales figures
func (h *DashboardHandler) GetToday(c *gin.Context) {
	summary, err := h.dashboardService.GetTodayDashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard retrieved successfully", summary)
}

// parseDateRange reads start_date/end_date query params as a [start, end)
// window. end_date is inclusive on the calendar day, so a day is added.
func parseDateRange(c *gin.Context) (time.Time, time.Time, bool) {
	startStr := c.Query("start_date")
	endStr := c.Query("end_date")
	if startStr == "" || endStr == "" {
		response.BadRequest(c, "start_date and end_date are required")
		return time.Time{}, time.Time{}, false
	}

	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		response.BadRequest(c, "Invalid start_date, expected YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		response.BadRequest(c, "Invalid end_date, expected YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	if end.Before(start) {
		response.BadRequest(c, "end_date must not be before start_date")
		return time.Time{}, time.Time{}, false
	}

	return start, end.Add(24 * time.Hour), true
}

// GetRangeSummary handles getting sales figures for a date range
func (h *DashboardHandler) GetRangeSummary(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	summary, err := h.dashboardService.GetRangeSummary(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Summary retrieved successfully", summary)
}

// GetSalesSummary handles getting the payment-mode sales breakdown
func (h *DashboardHandler) GetSalesSummary(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	summary, err := h.dashboardService.GetSalesSummary(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales summary retrieved successfully", summary)
}
