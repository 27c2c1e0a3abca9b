package classifier

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jonesrussell/school-cluster/internal/domain"
	"github.com/jonesrussell/school-cluster/internal/logger"
	"github.com/jonesrussell/school-cluster/internal/telemetry"
)

// ErrNoSchools is returned for an empty batch. The API maps it to the
// divergent validation response rather than a batch result.
var ErrNoSchools = errors.New("no schools provided")

// BatchAggregator runs the prediction service over an ordered batch and
// computes the summary statistics.
type BatchAggregator struct {
	service   *PredictionService
	logger    logger.Logger
	telemetry *telemetry.Provider
}

// NewBatchAggregator creates a batch aggregator over the given service.
func NewBatchAggregator(service *PredictionService, log logger.Logger, tp *telemetry.Provider) *BatchAggregator {
	return &BatchAggregator{
		service:   service,
		logger:    log,
		telemetry: tp,
	}
}

// Run processes records sequentially in input order. A single record's
// failure never aborts the rest of the batch; only an empty batch is an
// error.
func (b *BatchAggregator) Run(ctx context.Context, records []domain.SchoolRecord) (*domain.BatchResult, error) {
	if len(records) == 0 {
		return nil, ErrNoSchools
	}

	start := time.Now()

	// Availability is sampled once at batch start. Individual outcomes may
	// still differ when the model fails mid-batch.
	summaryModel := domain.ModelUsedRuleBased
	if b.service.ModelAvailable() {
		summaryModel = domain.ModelUsedML
	}

	results := make([]domain.PredictionOutcome, 0, len(records))
	var counts [domain.ClusterCount]int
	successful := 0

	for _, rec := range records {
		outcome := b.service.Predict(ctx, rec)
		results = append(results, outcome)

		if outcome.Success && outcome.ClusterID != nil {
			successful++
			counts[*outcome.ClusterID]++
		}
	}

	elapsed := time.Since(start)
	if b.telemetry != nil {
		b.telemetry.RecordBatch(ctx, len(records), elapsed)
	}

	b.logger.Info("batch processed",
		logger.Int("total", len(records)),
		logger.Int("successful", successful),
		logger.Duration("elapsed", elapsed))

	return &domain.BatchResult{
		Results: results,
		Summary: b.summarize(counts, len(records), successful, summaryModel, elapsed),
	}, nil
}

// summarize computes per-cluster breakdowns, the dominant cluster and the
// timing fields.
func (b *BatchAggregator) summarize(
	counts [domain.ClusterCount]int,
	total, successful int,
	summaryModel domain.ModelUsed,
	elapsed time.Duration,
) domain.BatchSummary {
	breakdown := make([]domain.ClusterBreakdown, 0, domain.ClusterCount)
	for _, c := range domain.Clusters() {
		count := counts[c]
		percentage := 0.0
		if successful > 0 {
			percentage = round1(100 * float64(count) / float64(successful))
		}
		breakdown = append(breakdown, domain.ClusterBreakdown{
			ID:         int(c),
			Name:       c.Name(),
			Count:      count,
			Percentage: percentage,
			Color:      c.Color(),
		})
	}

	dominant := dominantCluster(counts)

	return domain.BatchSummary{
		TotalSchools:          total,
		SuccessfulPredictions: successful,
		FailedPredictions:     total - successful,
		ProcessingTime:        round3(elapsed.Seconds()),
		Clusters:              breakdown,
		DominantCluster:       int(dominant),
		DominantClusterName:   dominant.Name(),
		ModelUsed:             summaryModel,
		Performance:           fmt.Sprintf("%.3fs for %d schools", elapsed.Seconds(), total),
	}
}

// dominantCluster returns the cluster with the highest count. Ties break
// toward the lowest id because iteration is in ascending id order and only
// a strictly greater count displaces the current maximum.
func dominantCluster(counts [domain.ClusterCount]int) domain.Cluster {
	dominant := domain.ClusterInabanga
	for _, c := range domain.Clusters() {
		if counts[c] > counts[dominant] {
			dominant = c
		}
	}
	return dominant
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
