package handlers

import (
	"errors"
	"net/http"

	"estoque_facil_backend/internal/models"
	"estoque_facil_backend/internal/services"
	"estoque_facil_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ProductHandler exposes the inventory operations.
type ProductHandler struct {
	inventoryService services.InventoryService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(is services.InventoryService) *ProductHandler {
	return &ProductHandler{inventoryService: is}
}

// CreateProduct handles creation of a new product.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	product, err := h.inventoryService.CreateProduct(req)
	if err != nil {
		respondInventoryError(c, err, "Failed to create product.")
		return
	}
	c.JSON(http.StatusCreated, product)
}

// GetProducts lists the catalog, optionally filtered by name or
// category through the q query parameter.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.inventoryService.GetProducts(c.Query("q"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError,
			utils.ErrCodeInternalServerError, "Failed to fetch products.", err.Error()))
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProductByID fetches a single product.
func (h *ProductHandler) GetProductByID(c *gin.Context) {
	product, err := h.inventoryService.GetProductByID(c.Param("id"))
	if err != nil {
		respondInventoryError(c, err, "Failed to fetch product.")
		return
	}
	c.JSON(http.StatusOK, product)
}

// UpdateProduct replaces a product verbatim with the request body.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	updated, err := h.inventoryService.UpdateProduct(c.Param("id"), product)
	if err != nil {
		respondInventoryError(c, err, "Failed to update product.")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteProduct removes a product. The confirmation dialog is the UI's
// responsibility; the API deletes unconditionally.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.inventoryService.DeleteProduct(c.Param("id")); err != nil {
		respondInventoryError(c, err, "Failed to delete product.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// RestockProduct registers an incoming shipment and recalculates the
// weighted-average cost.
func (h *ProductHandler) RestockProduct(c *gin.Context) {
	var req services.RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	product, err := h.inventoryService.Restock(c.Param("id"), req)
	if err != nil {
		respondInventoryError(c, err, "Failed to restock product.")
		return
	}
	c.JSON(http.StatusOK, product)
}

// respondInventoryError maps inventory service errors onto the API
// error envelope.
func respondInventoryError(c *gin.Context, err error, fallback string) {
	utils.LogError(err, fallback)
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound,
			utils.ErrCodeNotFound, "Product not found.", err.Error()))
	case errors.Is(err, services.ErrValidation):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest,
			utils.ErrCodeValidationFailed, "Input validation failed.", err.Error()))
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError,
			utils.ErrCodeInternalServerError, fallback, "Internal error"))
	}
}
