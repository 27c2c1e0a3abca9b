// Command httpd runs the school cluster prediction HTTP server.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/school-cluster/internal/api"
	"github.com/jonesrussell/school-cluster/internal/classifier"
	"github.com/jonesrussell/school-cluster/internal/config"
	"github.com/jonesrussell/school-cluster/internal/logger"
	"github.com/jonesrussell/school-cluster/internal/mlmodel"
	"github.com/jonesrussell/school-cluster/internal/telemetry"
)

const defaultConfigPath = "config.yml"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "httpd: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.GetConfigPath(defaultConfigPath))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.Must(logger.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Service.Debug,
	})
	defer func() { _ = log.Sync() }()

	log.Info("Starting school-cluster service",
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Service.Port),
		logger.Bool("debug", cfg.Service.Debug))

	tp := telemetry.NewProvider()

	model := loadModel(cfg, log, tp)
	rules := classifier.NewRuleClassifier(log)
	service := classifier.NewPredictionService(model, rules, log, tp)
	batch := classifier.NewBatchAggregator(service, log, tp)
	handler := api.NewHandler(service, batch, log)

	server := api.NewServer(cfg, log, func(router *gin.Engine) {
		api.SetupRoutes(router, handler, tp)
	})

	return server.RunWithGracefulShutdown(context.Background())
}

// loadModel attempts the one-time artifact load. Failure is not fatal: the
// service starts in rule-based fallback mode and stays there until restart.
func loadModel(cfg *config.Config, log logger.Logger, tp *telemetry.Provider) *classifier.ModelClassifier {
	start := time.Now()

	artifacts, err := mlmodel.Load(cfg.Model.Dir, cfg.Model.VectorizerFile, cfg.Model.KMeansFile)
	if err != nil {
		log.Warn("Could not load ML model, using rule-based fallback",
			logger.String("model_dir", cfg.Model.Dir),
			logger.Error(err))
		tp.SetModelLoaded(false)
		return nil
	}

	log.Info("ML model loaded",
		logger.Duration("load_time", time.Since(start)),
		logger.Int("clusters", artifacts.KMeans.Clusters()),
		logger.Int("features", artifacts.Vectorizer.Features()))
	tp.SetModelLoaded(true)

	return classifier.NewModelClassifier(artifacts, log)
}
