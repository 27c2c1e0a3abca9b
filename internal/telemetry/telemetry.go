// Package telemetry provides Prometheus metrics and tracing for the
// school-cluster service.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "school_cluster"

// Metrics holds all prediction Prometheus metrics.
type Metrics struct {
	PredictionsTotal   *prometheus.CounterVec
	PredictionDuration prometheus.Histogram
	ModelFallbacks     *prometheus.CounterVec
	BatchSize          prometheus.Histogram
	BatchDuration      prometheus.Histogram
	ModelLoaded        prometheus.Gauge
}

// Provider wraps telemetry providers.
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics.
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	return &Metrics{
		PredictionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "school_cluster_predictions_total",
			Help: "Total predictions by model path and success",
		}, []string{"model_used", "success"}),

		PredictionDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "school_cluster_prediction_duration_seconds",
			Help:    "Time to predict a single school",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),

		ModelFallbacks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "school_cluster_model_fallbacks_total",
			Help: "Per-call model failures that fell back to rules, by error type",
		}, []string{"error_type"}),

		BatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "school_cluster_batch_size",
			Help:    "Number of schools per batch",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),

		BatchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "school_cluster_batch_duration_seconds",
			Help:    "Time to process a whole batch",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		}),

		ModelLoaded: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "school_cluster_model_loaded",
			Help: "Whether the ML artifacts loaded at startup (1) or the service runs rules-only (0)",
		}),
	}
}

// RecordPrediction records metrics for a single prediction.
func (p *Provider) RecordPrediction(_ context.Context, modelUsed string, success bool, duration time.Duration) {
	successLabel := "false"
	if success {
		successLabel = "true"
	}
	p.Metrics.PredictionsTotal.WithLabelValues(modelUsed, successLabel).Inc()
	p.Metrics.PredictionDuration.Observe(duration.Seconds())
}

// RecordModelFallback records a per-call model failure that degraded to rules.
func (p *Provider) RecordModelFallback(_ context.Context, errorType string) {
	p.Metrics.ModelFallbacks.WithLabelValues(errorType).Inc()
}

// RecordBatch records batch processing metrics.
func (p *Provider) RecordBatch(_ context.Context, size int, duration time.Duration) {
	p.Metrics.BatchSize.Observe(float64(size))
	p.Metrics.BatchDuration.Observe(duration.Seconds())
}

// SetModelLoaded sets the model availability gauge. Written once at startup.
func (p *Provider) SetModelLoaded(loaded bool) {
	if loaded {
		p.Metrics.ModelLoaded.Set(1)
	} else {
		p.Metrics.ModelLoaded.Set(0)
	}
}

// StartSpan starts a new trace span.
// The caller is responsible for ending the span with span.End().
//
//nolint:spancheck // Caller is responsible for ending the span
func (p *Provider) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := p.Tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, span
}
