package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/masaar-cx/survey-analytics-service/internal/services"
	"github.com/masaar-cx/survey-analytics-service/internal/utils"
)

type HandlerManager struct {
	analyticsHandler *AnalyticsHandler
}

func NewHandlerManager(
	analyticsService services.AnalyticsService,
	exportService services.ReportExportService,
	validator *utils.Validator,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		analyticsHandler: NewAnalyticsHandler(analyticsService, exportService, validator, logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		analytics := v1.Group("/surveys/:id/analytics")
		{
			analytics.GET("/nps", hm.analyticsHandler.GetNPS)
			analytics.GET("/csat", hm.analyticsHandler.GetCSAT)
			analytics.GET("/csat/tracking", hm.analyticsHandler.GetCSATTracking)
			analytics.GET("/heatmap", hm.analyticsHandler.GetHeatmap)
			analytics.GET("/summary", hm.analyticsHandler.GetSummary)
			analytics.GET("/export", hm.analyticsHandler.ExportReport)
			analytics.DELETE("/cache", hm.analyticsHandler.InvalidateCache)
		}
	}
}

// NewRouter builds the gin engine with the shared middleware stack.
func NewRouter(logger utils.Logger, environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.RequestLoggerMiddleware(logger))
	return router
}
