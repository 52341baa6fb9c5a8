package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"estoque_facil_backend/internal/router"
	"estoque_facil_backend/internal/services"
	"estoque_facil_backend/internal/storage"
	"estoque_facil_backend/internal/store"
	"estoque_facil_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize Logger
	utils.InitLogger()

	// JWT configuration
	jwtSecret := utils.Getenv("JWT_SECRET", "")
	if jwtSecret == "" {
		jwtSecret = "dev-only-estoque-facil-jwt-secret"
		utils.LogWarn("JWT_SECRET not set, using insecure development secret")
	}
	ttlHours, err := strconv.Atoi(utils.Getenv("JWT_TTL_HOURS", "72"))
	if err != nil || ttlHours <= 0 {
		ttlHours = 72
	}
	utils.InitJWT(jwtSecret, time.Duration(ttlHours)*time.Hour)

	// Storage adapter: PostgreSQL when configured, in-memory otherwise.
	var adapter storage.Adapter
	if dbHost := utils.Getenv("DB_HOST", ""); dbHost != "" {
		pg, err := storage.OpenPostgres(
			dbHost,
			utils.Getenv("DB_PORT", "5432"),
			utils.Getenv("DB_USER", "estoque_user"),
			utils.Getenv("DB_PASSWORD", "estoque_password"),
			utils.Getenv("DB_NAME", "estoque_facil_db"),
			utils.Getenv("DB_SSLMODE", "disable"),
		)
		if err != nil {
			utils.LogError(err, "Failed to initialize PostgreSQL storage")
			log.Fatalf("Failed to initialize PostgreSQL storage: %v", err)
		}
		defer pg.Close()
		adapter = pg
		utils.LogInfo("PostgreSQL storage initialized", map[string]interface{}{"host": dbHost})
	} else {
		adapter = storage.NewMemory()
		utils.LogWarn("DB_HOST not set, data will not survive restarts")
	}

	// Load collections (seeding the sample dataset on first run).
	st, err := store.Open(context.Background(), adapter)
	if err != nil {
		utils.LogError(err, "Failed to open store")
		log.Fatalf("Failed to open store: %v", err)
	}

	// Single dashboard account.
	adminUser := utils.Getenv("ADMIN_USERNAME", "admin")
	adminPassword := utils.Getenv("ADMIN_PASSWORD", "")
	if adminPassword == "" {
		adminPassword = "admin123"
		utils.LogWarn("ADMIN_PASSWORD not set, using default dev credentials")
	}
	authService, err := services.NewAuthService(adminUser, adminPassword)
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}

	// AI insights collaborator: network-backed when a key is present,
	// no-op otherwise. No other code path depends on which is active.
	var insightService services.InsightService
	if apiKey := utils.Getenv("GEMINI_API_KEY", ""); apiKey != "" {
		model := utils.Getenv("GEMINI_MODEL", "gemini-2.5-flash")
		baseURL := utils.Getenv("GEMINI_BASE_URL", services.DefaultGeminiBaseURL)
		insightService = services.NewGeminiInsightService(apiKey, model, baseURL)
		utils.LogInfo("Gemini insights enabled", map[string]interface{}{"model": model})
	} else {
		insightService = services.NewNoopInsightService()
		utils.LogInfo("GEMINI_API_KEY not set, insights disabled")
	}

	engine := gin.Default()
	engine.Use(utils.GinLogger())

	// CORS configuration
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowCredentials = true
	engine.Use(cors.New(config))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Setup all application routes
	router.Setup(engine, st, insightService, authService)

	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Server starting", map[string]interface{}{"port": port})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
