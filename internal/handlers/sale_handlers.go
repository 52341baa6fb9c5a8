package handlers

import (
	"errors"
	"net/http"

	"estoque_facil_backend/internal/services"
	"estoque_facil_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SaleHandler exposes the sales ledger. Sales are immutable: there is
// no update or delete route.
type SaleHandler struct {
	salesService services.SalesService
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(ss services.SalesService) *SaleHandler {
	return &SaleHandler{salesService: ss}
}

// RecordSale registers a new sale transaction.
func (h *SaleHandler) RecordSale(c *gin.Context) {
	var req services.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	sale, err := h.salesService.RecordSale(req)
	if err != nil {
		utils.LogError(err, "RecordSale: error from salesService")
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound,
				utils.ErrCodeNotFound, "Product not found.", err.Error()))
		case errors.Is(err, services.ErrInsufficientStock):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict,
				utils.ErrCodeInsufficientStock, "Insufficient stock for the requested quantity.", err.Error()))
		case errors.Is(err, services.ErrValidation):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest,
				utils.ErrCodeValidationFailed, "Input validation failed.", err.Error()))
		default:
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError,
				utils.ErrCodeInternalServerError, "Failed to record sale.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, sale)
}

// GetSales lists the ledger newest-first, optionally filtered by
// customer or product name through the q query parameter.
func (h *SaleHandler) GetSales(c *gin.Context) {
	sales, err := h.salesService.GetSales(c.Query("q"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError,
			utils.ErrCodeInternalServerError, "Failed to fetch sales.", err.Error()))
		return
	}
	c.JSON(http.StatusOK, sales)
}

// GetMaxPriceSold returns the highest price ever charged for a product,
// used by the sale form as a pricing hint.
func (h *SaleHandler) GetMaxPriceSold(c *gin.Context) {
	max := h.salesService.MaxPriceSold(c.Param("productId"))
	c.JSON(http.StatusOK, gin.H{"product_id": c.Param("productId"), "max_price_sold": max})
}
