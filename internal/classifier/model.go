package classifier

import (
	"fmt"

	"github.com/jonesrussell/school-cluster/internal/domain"
	"github.com/jonesrussell/school-cluster/internal/logger"
	"github.com/jonesrussell/school-cluster/internal/mlmodel"
)

// ModelClassifier predicts clusters with the loaded TF-IDF vectorizer and
// k-means artifacts. A nil *ModelClassifier means the artifacts failed to
// load at startup and the service runs rules-only; that decision is made
// once, before traffic is served.
type ModelClassifier struct {
	artifacts *mlmodel.Artifacts
	logger    logger.Logger
}

// NewModelClassifier wraps loaded artifacts.
func NewModelClassifier(artifacts *mlmodel.Artifacts, log logger.Logger) *ModelClassifier {
	return &ModelClassifier{
		artifacts: artifacts,
		logger:    log,
	}
}

// Classify runs the record through the vectorizer and model. Every failure
// comes back as an error for the caller to fall back on; nothing panics
// and nothing is retried.
func (m *ModelClassifier) Classify(rec domain.SchoolRecord) (domain.Cluster, error) {
	text := Normalize(rec.Name + " | " + rec.Municipality)

	vec, err := m.artifacts.Vectorizer.Transform(text)
	if err != nil {
		return 0, fmt.Errorf("transform: %w", err)
	}

	id, err := m.artifacts.KMeans.Predict(vec)
	if err != nil {
		return 0, fmt.Errorf("predict: %w", err)
	}

	cluster := domain.Cluster(id)
	if !cluster.Valid() {
		return 0, fmt.Errorf("model returned out-of-range cluster %d", id)
	}

	return cluster, nil
}
