package router

import (
	"estoque_facil_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up the public authentication routes.
func SetupAuthRoutes(apiGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	authRoutes := apiGroup.Group("/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
	}
}

// SetupProductRoutes sets up the inventory routes.
func SetupProductRoutes(authenticatedGroup *gin.RouterGroup, productHandler *handlers.ProductHandler) {
	productRoutes := authenticatedGroup.Group("/products")
	{
		productRoutes.POST("", productHandler.CreateProduct)
		productRoutes.GET("", productHandler.GetProducts)
		productRoutes.GET("/:id", productHandler.GetProductByID)
		productRoutes.PUT("/:id", productHandler.UpdateProduct)
		productRoutes.DELETE("/:id", productHandler.DeleteProduct)
		productRoutes.POST("/:id/restock", productHandler.RestockProduct)
	}
}

// SetupSaleRoutes sets up the sales ledger routes.
func SetupSaleRoutes(authenticatedGroup *gin.RouterGroup, saleHandler *handlers.SaleHandler) {
	saleRoutes := authenticatedGroup.Group("/sales")
	{
		saleRoutes.POST("", saleHandler.RecordSale)
		saleRoutes.GET("", saleHandler.GetSales)
		saleRoutes.GET("/max-price/:productId", saleHandler.GetMaxPriceSold)
	}
}

// SetupReportRoutes sets up the dashboard report routes.
func SetupReportRoutes(authenticatedGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reportRoutes := authenticatedGroup.Group("/reports")
	{
		reportRoutes.GET("/summary", reportHandler.GetDashboardSummary)
		reportRoutes.GET("/revenue-by-date", reportHandler.GetRevenueByDate)
		reportRoutes.GET("/top-products", reportHandler.GetTopProducts)
	}
}

// SetupCustomerRoutes sets up the customer statistics routes.
func SetupCustomerRoutes(authenticatedGroup *gin.RouterGroup, customerHandler *handlers.CustomerHandler) {
	customerRoutes := authenticatedGroup.Group("/customers")
	{
		customerRoutes.GET("", customerHandler.GetCustomerStats)
	}
}

// SetupInsightRoutes sets up the AI insight routes.
func SetupInsightRoutes(authenticatedGroup *gin.RouterGroup, insightHandler *handlers.InsightHandler) {
	insightRoutes := authenticatedGroup.Group("/insights")
	{
		insightRoutes.GET("", insightHandler.GetInsights)
	}
}
