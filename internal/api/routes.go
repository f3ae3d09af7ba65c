package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, handler *Handler) {
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(
		handler.metrics.Registry(), promhttp.HandlerOpts{})))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/discover", handler.Discover)

		classify := v1.Group("/classify")
		{
			classify.POST("", handler.Classify)
			classify.POST("/batch", handler.ClassifyBatch)
		}

		hist := v1.Group("/history")
		{
			hist.GET("/awards/:client", handler.AwardHistory)
			hist.GET("/repeat-patterns", handler.RepeatPatterns)
			hist.GET("/pre-announcements", handler.PreAnnouncements)
		}
	}
}
