package api

import (
	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/school-cluster/internal/telemetry"
)

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, handler *Handler, tp *telemetry.Provider) {
	// Info and health surface
	router.GET("/", handler.Root)
	router.GET("/health", handler.Health)
	router.GET("/test", handler.Test)

	// Prediction endpoints
	router.POST("/cluster", handler.Cluster)            // POST /cluster
	router.POST("/cluster-batch", handler.ClusterBatch) // POST /cluster-batch

	if tp != nil {
		router.GET("/metrics", gin.WrapH(tp.Handler()))
	}
}
