package api

import "github.com/jonesrussell/school-cluster/internal/domain"

// Health status values for the health endpoint. The service is degraded,
// not unhealthy, without the model: the rule fallback still serves.
const (
	healthStatusHealthy  = "healthy"
	healthStatusDegraded = "degraded"
)

// healthTimestampLayout matches the dashboard's expected format.
const healthTimestampLayout = "2006-01-02 15:04:05"

// BatchRequest is the inbound batch prediction request.
type BatchRequest struct {
	Schools []domain.SchoolRecord `json:"schools"`
}

// RootResponse is the service info response at GET /.
type RootResponse struct {
	Message       string            `json:"message"`
	Status        string            `json:"status"`
	ModelLoaded   bool              `json:"model_loaded"`
	TotalClusters int               `json:"total_clusters"`
	Endpoints     map[string]string `json:"endpoints"`
}

// HealthResponse reports availability and the static cluster table.
type HealthResponse struct {
	Status      string               `json:"status"`
	ModelLoaded bool                 `json:"model_loaded"`
	Timestamp   string               `json:"timestamp"`
	Clusters    []domain.ClusterInfo `json:"clusters"`
}

// TestResponse is the sample-data smoke test response.
type TestResponse struct {
	TestResults []domain.PredictionOutcome `json:"test_results"`
	ModelStatus string                     `json:"model_status"`
	Message     string                     `json:"message"`
}
