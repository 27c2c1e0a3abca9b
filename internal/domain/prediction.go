package domain

import "time"

// ModelUsed records which prediction path produced an outcome.
type ModelUsed string

const (
	// ModelUsedML means the learned model classified the record.
	ModelUsedML ModelUsed = "ml"
	// ModelUsedRuleBased means the keyword fallback classified the record.
	ModelUsedRuleBased ModelUsed = "rule_based"
	// ModelUsedMLFailed is the internal status for a per-call model failure.
	// Outcomes never carry it: the failure falls back to rules and records
	// ModelUsedRuleBased.
	ModelUsedMLFailed ModelUsed = "ml_failed"
	// ModelUsedError marks an outcome produced by the defensive catch-all.
	ModelUsedError ModelUsed = "error"
)

// PredictionOutcome is the result of predicting a single school.
// Success=true implies a valid cluster id with name and color attached;
// success=false implies an error message and absent cluster fields.
type PredictionOutcome struct {
	School       string    `json:"school"`
	Municipality string    `json:"municipality"`
	ClusterID    *int      `json:"cluster_id,omitempty"`
	ClusterName  string    `json:"cluster_name,omitempty"`
	ClusterColor string    `json:"cluster_color,omitempty"`
	ModelUsed    ModelUsed `json:"model_used"`
	Success      bool      `json:"success"`
	Error        string    `json:"error,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// ClusterBreakdown is the per-cluster slice of a batch summary.
type ClusterBreakdown struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

// BatchSummary aggregates a processed batch.
// Counts and percentages cover successful outcomes only; ModelUsed is the
// coarse availability flag at the time the batch started, independent of
// what each record actually used.
type BatchSummary struct {
	TotalSchools          int                `json:"total_schools"`
	SuccessfulPredictions int                `json:"successful_predictions"`
	FailedPredictions     int                `json:"failed_predictions"`
	ProcessingTime        float64            `json:"processing_time"`
	Clusters              []ClusterBreakdown `json:"clusters"`
	DominantCluster       int                `json:"dominant_cluster"`
	DominantClusterName   string             `json:"dominant_cluster_name"`
	ModelUsed             ModelUsed          `json:"model_used"`
	Performance           string             `json:"performance"`
}

// BatchResult is the full batch response: outcomes in input order plus the
// aggregate summary.
type BatchResult struct {
	Results []PredictionOutcome `json:"results"`
	Summary BatchSummary        `json:"summary"`
}
