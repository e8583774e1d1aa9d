package handler

import "github.com/gin-gonic/gin"

// SetupRoutes registers the public endpoints.
func SetupRoutes(router *gin.Engine, lookup *LookupHandler, metrics *MetricsHandler) {
	router.GET("/", lookup.Home)
	router.GET("/health", metrics.Health)
	router.GET("/ready", lookup.Ready)
	router.GET("/metrics", metrics.Prometheus)

	api := router.Group("/api")
	{
		api.GET("/student", lookup.Student)
		api.POST("/cache/invalidate", lookup.InvalidateCache)
	}
}
