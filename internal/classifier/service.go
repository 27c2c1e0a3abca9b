package classifier

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/jonesrussell/school-cluster/internal/domain"
	"github.com/jonesrussell/school-cluster/internal/logger"
	"github.com/jonesrussell/school-cluster/internal/telemetry"
)

const unknownField = "Unknown"

// PredictionService orchestrates model-first prediction with rule fallback.
// Predict is total: every input produces a well-formed outcome and no
// failure escapes to the caller.
type PredictionService struct {
	model     *ModelClassifier // nil when artifacts were not loaded
	rules     *RuleClassifier
	logger    logger.Logger
	telemetry *telemetry.Provider
	now       func() time.Time
}

// NewPredictionService wires the prediction pipeline. model may be nil;
// the service then runs rules-only for its whole lifetime.
func NewPredictionService(model *ModelClassifier, rules *RuleClassifier, log logger.Logger, tp *telemetry.Provider) *PredictionService {
	return &PredictionService{
		model:     model,
		rules:     rules,
		logger:    log,
		telemetry: tp,
		now:       time.Now,
	}
}

// ModelAvailable reports whether the learned model was loaded at startup.
// The flag is immutable for the process lifetime.
func (s *PredictionService) ModelAvailable() bool {
	return s.model != nil
}

// Predict classifies one school. Exactly one of {ml, rule_based, error} is
// recorded per call; ml_failed is internal and surfaces as rule_based.
func (s *PredictionService) Predict(ctx context.Context, rec domain.SchoolRecord) (outcome domain.PredictionOutcome) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("prediction panic recovered",
				logger.String("school", rec.Name),
				logger.String("municipality", rec.Municipality),
				logger.Any("panic", r))
			outcome = s.errorOutcome(rec, fmt.Sprintf("%v", r))
		}
		if s.telemetry != nil {
			s.telemetry.RecordPrediction(ctx, string(outcome.ModelUsed), outcome.Success, time.Since(start))
		}
	}()

	if s.telemetry != nil {
		var span trace.Span
		ctx, span = s.telemetry.StartSpan(ctx, "predict")
		defer span.End()
	}

	cluster, used := s.classify(ctx, rec)
	id := int(cluster)

	return domain.PredictionOutcome{
		School:       orUnknown(rec.Name),
		Municipality: orUnknown(rec.Municipality),
		ClusterID:    &id,
		ClusterName:  cluster.Name(),
		ClusterColor: cluster.Color(),
		ModelUsed:    used,
		Success:      true,
		Timestamp:    s.now(),
	}
}

// classify picks the prediction path. Model failures are absorbed here:
// they downgrade to the rule path and never become request failures.
func (s *PredictionService) classify(ctx context.Context, rec domain.SchoolRecord) (domain.Cluster, domain.ModelUsed) {
	if s.model != nil {
		cluster, err := s.model.Classify(rec)
		if err == nil {
			return cluster, domain.ModelUsedML
		}

		s.logger.Warn("ML prediction failed, using rules only",
			logger.String("school", rec.Name),
			logger.String("municipality", rec.Municipality),
			logger.String("status", string(domain.ModelUsedMLFailed)),
			logger.String("error_type", classifyErrorType(err.Error())),
			logger.Error(err))
		if s.telemetry != nil {
			s.telemetry.RecordModelFallback(ctx, classifyErrorType(err.Error()))
		}
	}

	return s.rules.Classify(rec), domain.ModelUsedRuleBased
}

// errorOutcome is the catch-all shape: no cluster fields, truncated error.
func (s *PredictionService) errorOutcome(rec domain.SchoolRecord, msg string) domain.PredictionOutcome {
	return domain.PredictionOutcome{
		School:       orUnknown(rec.Name),
		Municipality: orUnknown(rec.Municipality),
		ModelUsed:    domain.ModelUsedError,
		Success:      false,
		Error:        truncateError(msg),
		Timestamp:    s.now(),
	}
}

func orUnknown(v string) string {
	if v == "" {
		return unknownField
	}
	return v
}
