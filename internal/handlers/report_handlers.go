package handlers

import (
	"net/http"

	"estoque_facil_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the dashboard views. Everything here is derived
// from the current collections on each request.
type ReportHandler struct {
	reportService services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: rs}
}

// GetDashboardSummary returns the headline KPIs.
func (h *ReportHandler) GetDashboardSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.reportService.GetDashboardSummary())
}

// GetRevenueByDate returns the revenue chart series.
func (h *ReportHandler) GetRevenueByDate(c *gin.Context) {
	c.JSON(http.StatusOK, h.reportService.GetRevenueByDate())
}

// GetTopProducts returns the best-sellers ranking.
func (h *ReportHandler) GetTopProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.reportService.GetTopProducts())
}
