package router

import (
	"net/http"

	"estoque_facil_backend/internal/handlers"
	"estoque_facil_backend/internal/middleware"
	"estoque_facil_backend/internal/services"
	"estoque_facil_backend/internal/store"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, st *store.Store, insightService services.InsightService, authService services.AuthService) {
	// Initialize Services
	inventoryService := services.NewInventoryService(st)
	salesService := services.NewSalesService(st)
	reportService := services.NewReportService(st)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(inventoryService)
	saleHandler := handlers.NewSaleHandler(salesService)
	reportHandler := handlers.NewReportHandler(reportService)
	customerHandler := handlers.NewCustomerHandler(reportService)
	insightHandler := handlers.NewInsightHandler(insightService, st)

	// Degraded means a persistence write failed; the in-memory state is
	// still serving but is no longer mirrored durably.
	engine.GET("/healthz", func(c *gin.Context) {
		status := "ok"
		if st.Degraded() {
			status = "degraded"
		}
		c.JSON(http.StatusOK, gin.H{"status": status, "storage_degraded": st.Degraded()})
	})

	apiV1 := engine.Group("/api/v1")

	SetupAuthRoutes(apiV1, authHandler)

	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupProductRoutes(authenticated, productHandler)
		SetupSaleRoutes(authenticated, saleHandler)
		SetupReportRoutes(authenticated, reportHandler)
		SetupCustomerRoutes(authenticated, customerHandler)
		SetupInsightRoutes(authenticated, insightHandler)
	}
}
