// Package api exposes the school cluster prediction HTTP surface.
package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/school-cluster/internal/classifier"
	"github.com/jonesrussell/school-cluster/internal/domain"
	"github.com/jonesrussell/school-cluster/internal/logger"
)

// sampleSchools is the fixture served by GET /test. It covers every rule
// bucket plus the default.
var sampleSchools = []domain.SchoolRecord{
	{Name: "CLARIN NATIONAL SCHOOL OF FISHERIES", Municipality: "CLARIN, BOHOL"},
	{Name: "TUBIGON WEST CENTRAL HIGH SCHOOL", Municipality: "TUBIGON, BOHOL"},
	{Name: "INABANGA HIGH SCHOOL", Municipality: "INABANGA, BOHOL"},
	{Name: "TEST SCHOOL", Municipality: "UNKNOWN LOCATION"},
}

// Handler handles HTTP requests for the prediction API.
type Handler struct {
	service *classifier.PredictionService
	batch   *classifier.BatchAggregator
	logger  logger.Logger
}

// NewHandler creates a new API handler.
func NewHandler(service *classifier.PredictionService, batch *classifier.BatchAggregator, log logger.Logger) *Handler {
	return &Handler{
		service: service,
		batch:   batch,
		logger:  log,
	}
}

// Root handles GET / with service info and the endpoint map.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Message:       "School Clustering API",
		Status:        "running",
		ModelLoaded:   h.service.ModelAvailable(),
		TotalClusters: domain.ClusterCount,
		Endpoints: map[string]string{
			"health":            "/health",
			"test":              "/test",
			"single_prediction": "POST /cluster",
			"batch_prediction":  "POST /cluster-batch",
			"metrics":           "/metrics",
		},
	})
}

// Health handles GET /health.
func (h *Handler) Health(c *gin.Context) {
	status := healthStatusDegraded
	if h.service.ModelAvailable() {
		status = healthStatusHealthy
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:      status,
		ModelLoaded: h.service.ModelAvailable(),
		Timestamp:   time.Now().Format(healthTimestampLayout),
		Clusters:    domain.ClusterTable(),
	})
}

// Test handles GET /test: runs the sample fixture through the service.
func (h *Handler) Test(c *gin.Context) {
	results := make([]domain.PredictionOutcome, 0, len(sampleSchools))
	for _, rec := range sampleSchools {
		results = append(results, h.service.Predict(c.Request.Context(), rec))
	}

	modelStatus := "rule_based_fallback"
	if h.service.ModelAvailable() {
		modelStatus = "loaded"
	}

	c.JSON(http.StatusOK, TestResponse{
		TestResults: results,
		ModelStatus: modelStatus,
		Message:     "Test completed successfully",
	})
}

// Cluster handles POST /cluster: single school prediction.
func (h *Handler) Cluster(c *gin.Context) {
	var rec domain.SchoolRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		h.logger.Warn("Invalid prediction request", logger.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body: " + err.Error(),
			"success": false,
		})
		return
	}

	c.JSON(http.StatusOK, h.service.Predict(c.Request.Context(), rec))
}

// ClusterBatch handles POST /cluster-batch: ordered batch prediction with
// summary statistics. An empty batch gets the divergent validation shape.
func (h *Handler) ClusterBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid batch request", logger.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body: " + err.Error(),
			"success": false,
		})
		return
	}

	result, err := h.batch.Run(c.Request.Context(), req.Schools)
	if err != nil {
		if errors.Is(err, classifier.ErrNoSchools) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "No schools provided",
				"success": false,
			})
			return
		}

		h.logger.Error("Batch prediction failed", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Batch prediction failed",
			"success": false,
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
