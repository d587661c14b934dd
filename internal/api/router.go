package api

import (
	"ecoalerta/internal/api/handlers"
	"ecoalerta/internal/api/middleware"
	"ecoalerta/internal/core"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// RouterConfig holds dependencies for the API router
type RouterConfig struct {
	Profiles   core.ProfileStore
	Ledger     core.ReportLedger
	Calendar   core.Calendar
	Clock      core.Clock
	Language   core.Language
	Location   *time.Location
	APIKeyHash string // bcrypt hash; empty disables auth
	Logger     *slog.Logger
}

// NewRouter creates and configures the Gin router
func NewRouter(config RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Logging(logger))
	router.Use(middleware.NoiseFilter(logger))
	router.Use(middleware.ContentType())

	// Health check (no auth)
	healthHandler := handlers.NewHealthHandler()
	router.GET("/health", healthHandler.GetHealth)

	// API v1 routes
	v1 := router.Group("/v1")
	v1.Use(middleware.APIKeyAuth(config.APIKeyHash))
	{
		configHandler := handlers.NewConfigHandler(config.Profiles, logger)
		v1.GET("/config", configHandler.GetConfig)
		v1.PUT("/config", configHandler.UpdateConfig)

		collectionsHandler := handlers.NewCollectionsHandler(
			config.Profiles,
			config.Calendar,
			config.Clock,
			config.Language,
			config.Location,
			logger,
		)
		v1.GET("/collections/next", collectionsHandler.GetNext)
		v1.GET("/neighborhoods", collectionsHandler.ListNeighborhoods)

		reportsHandler := handlers.NewReportsHandler(config.Ledger, logger)
		v1.GET("/reports", reportsHandler.ListReports)
		v1.POST("/reports", reportsHandler.CreateReport)
		v1.GET("/reports/export", reportsHandler.ExportReports)
	}

	return router
}
