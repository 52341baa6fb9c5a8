package handlers

import (
	"net/http"

	"estoque_facil_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// CustomerHandler serves the per-customer statistics derived from the
// sale history. There is no customer entity to create or edit.
type CustomerHandler struct {
	reportService services.ReportService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(rs services.ReportService) *CustomerHandler {
	return &CustomerHandler{reportService: rs}
}

// GetCustomerStats lists customers sorted by total spent, optionally
// filtered by name through the q query parameter.
func (h *CustomerHandler) GetCustomerStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.reportService.GetCustomerStats(c.Query("q")))
}
