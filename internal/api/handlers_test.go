package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/school-cluster/internal/classifier"
	"github.com/jonesrussell/school-cluster/internal/domain"
	"github.com/jonesrussell/school-cluster/internal/logger"
)

// mockLogger implements logger.Logger for testing.
type mockLogger struct{}

func (m *mockLogger) Debug(string, ...logger.Field) {}
func (m *mockLogger) Info(string, ...logger.Field)  {}
func (m *mockLogger) Warn(string, ...logger.Field)  {}
func (m *mockLogger) Error(string, ...logger.Field) {}
func (m *mockLogger) Fatal(string, ...logger.Field) {}
func (m *mockLogger) With(...logger.Field) logger.Logger {
	return m
}
func (m *mockLogger) Sync() error { return nil }

// setupRouter builds a rules-only router: no model artifacts, no telemetry.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := &mockLogger{}
	service := classifier.NewPredictionService(nil, classifier.NewRuleClassifier(log), log, nil)
	batch := classifier.NewBatchAggregator(service, log, nil)
	handler := NewHandler(service, batch, log)

	router := gin.New()
	SetupRoutes(router, handler, nil)
	return router
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRoot(t *testing.T) {
	router := setupRouter(t)

	rec := performJSON(t, router, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RootResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "School Clustering API", resp.Message)
	assert.False(t, resp.ModelLoaded)
	assert.Equal(t, domain.ClusterCount, resp.TotalClusters)
	assert.Contains(t, resp.Endpoints, "single_prediction")
}

func TestHealth_DegradedWithoutModel(t *testing.T) {
	router := setupRouter(t)

	rec := performJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, healthStatusDegraded, resp.Status)
	assert.False(t, resp.ModelLoaded)
	require.Len(t, resp.Clusters, domain.ClusterCount)
	assert.Equal(t, "Inabanga Schools", resp.Clusters[0].Name)
	assert.Equal(t, "#0088FE", resp.Clusters[0].Color)
	assert.Equal(t, "Clarin Schools", resp.Clusters[1].Name)
	assert.Equal(t, "Tubigon Schools", resp.Clusters[2].Name)
}

func TestTestEndpoint(t *testing.T) {
	router := setupRouter(t)

	rec := performJSON(t, router, http.MethodGet, "/test", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp TestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "rule_based_fallback", resp.ModelStatus)
	require.Len(t, resp.TestResults, 4)
	for _, out := range resp.TestResults {
		assert.True(t, out.Success)
		require.NotNil(t, out.ClusterID)
	}
}

func TestCluster_Single(t *testing.T) {
	router := setupRouter(t)

	rec := performJSON(t, router, http.MethodPost, "/cluster", domain.SchoolRecord{
		Name:         "INABANGA HIGH SCHOOL",
		Municipality: "INABANGA, BOHOL",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var out domain.PredictionOutcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.True(t, out.Success)
	require.NotNil(t, out.ClusterID)
	assert.Equal(t, 0, *out.ClusterID)
	assert.Equal(t, "Inabanga Schools", out.ClusterName)
	assert.Equal(t, "#0088FE", out.ClusterColor)
	assert.Equal(t, domain.ModelUsedRuleBased, out.ModelUsed)
	assert.Equal(t, "INABANGA HIGH SCHOOL", out.School)
}

func TestCluster_EmptyFieldsDefaultToUnknown(t *testing.T) {
	router := setupRouter(t)

	rec := performJSON(t, router, http.MethodPost, "/cluster", map[string]string{})
	require.Equal(t, http.StatusOK, rec.Code)

	var out domain.PredictionOutcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.True(t, out.Success)
	assert.Equal(t, "Unknown", out.School)
	assert.Equal(t, "Unknown", out.Municipality)
}

func TestCluster_InvalidBody(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/cluster", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
}

func TestClusterBatch_Empty(t *testing.T) {
	router := setupRouter(t)

	rec := performJSON(t, router, http.MethodPost, "/cluster-batch", BatchRequest{Schools: []domain.SchoolRecord{}})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "No schools provided", resp["error"])
	assert.Equal(t, false, resp["success"])
}

func TestClusterBatch_Fixture(t *testing.T) {
	router := setupRouter(t)

	rec := performJSON(t, router, http.MethodPost, "/cluster-batch", BatchRequest{Schools: sampleSchools})
	require.Equal(t, http.StatusOK, rec.Code)

	var result domain.BatchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	require.Len(t, result.Results, 4)
	for i, out := range result.Results {
		assert.Equal(t, sampleSchools[i].Name, out.School, "order must match input")
		assert.True(t, out.Success)
	}

	summary := result.Summary
	assert.Equal(t, 4, summary.TotalSchools)
	assert.Equal(t, 4, summary.SuccessfulPredictions)
	assert.Equal(t, 0, summary.FailedPredictions)
	assert.Equal(t, domain.ModelUsedRuleBased, summary.ModelUsed)
	require.Len(t, summary.Clusters, domain.ClusterCount)

	counted := 0
	for _, breakdown := range summary.Clusters {
		counted += breakdown.Count
	}
	assert.Equal(t, summary.SuccessfulPredictions, counted)
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORSMiddleware([]string{"*"}))
	router.POST("/cluster", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/cluster", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware_DisallowedOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORSMiddleware([]string{"http://dashboard.local"}))
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
