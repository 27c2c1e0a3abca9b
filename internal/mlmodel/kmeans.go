package mlmodel

import (
	"errors"
	"fmt"
)

// KMeans errors.
var (
	ErrNoCentroids       = errors.New("mlmodel: kmeans model has no centroids")
	ErrDimensionMismatch = errors.New("mlmodel: feature vector dimension does not match centroids")
)

// KMeans holds the trained cluster centroids, exported as JSON by the
// training pipeline.
type KMeans struct {
	Centroids [][]float64 `json:"centroids"`
}

// Validate checks the model invariants after load.
func (m *KMeans) Validate() error {
	if len(m.Centroids) == 0 {
		return ErrNoCentroids
	}
	dim := len(m.Centroids[0])
	for i, c := range m.Centroids {
		if len(c) != dim {
			return fmt.Errorf("mlmodel: centroid %d has %d dimensions, want %d", i, len(c), dim)
		}
	}
	return nil
}

// Clusters returns the number of clusters in the model.
func (m *KMeans) Clusters() int {
	return len(m.Centroids)
}

// Dimensions returns the expected feature vector length.
func (m *KMeans) Dimensions() int {
	if len(m.Centroids) == 0 {
		return 0
	}
	return len(m.Centroids[0])
}

// Predict returns the index of the centroid nearest to vec by squared
// Euclidean distance. Ties go to the lowest index.
func (m *KMeans) Predict(vec []float64) (int, error) {
	if len(m.Centroids) == 0 {
		return 0, ErrNoCentroids
	}
	if len(vec) != m.Dimensions() {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(vec), m.Dimensions())
	}

	best := 0
	bestDist := squaredDistance(vec, m.Centroids[0])
	for i := 1; i < len(m.Centroids); i++ {
		if d := squaredDistance(vec, m.Centroids[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}

	return best, nil
}

func squaredDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
