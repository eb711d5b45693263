// Package app assembles the storage, extraction and service layers shared by
// the server and the CLI.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jengzang/trails-backend-go/internal/config"
	"github.com/jengzang/trails-backend-go/internal/database"
	"github.com/jengzang/trails-backend-go/internal/extract"
	"github.com/jengzang/trails-backend-go/internal/observability"
	"github.com/jengzang/trails-backend-go/internal/repository"
	"github.com/jengzang/trails-backend-go/internal/search"
	"github.com/jengzang/trails-backend-go/internal/service"
)

// App holds the opened database and the services built on it
type App struct {
	DB      *sql.DB
	Service *service.TrailService
	Metrics *observability.Metrics
}

// SearchOptions maps the configured limits onto engine options
func SearchOptions(cfg *config.Config) search.Options {
	return search.Options{
		MaxResults:       cfg.MaxSearchResults,
		DisplayLimit:     cfg.TopResultsLimit,
		DescriptionLimit: cfg.DescriptionLimit,
		Capabilities:     cfg.Capabilities,
	}
}

// New opens the database, runs migrations and builds the trail service.
// Metrics are registered with reg when it is non-nil.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, reg prometheus.Registerer) (*App, error) {
	db, err := database.Open(ctx, database.Config{Path: cfg.DBPath}, logger)
	if err != nil {
		return nil, err
	}

	if err := database.NewMigrationManager(db, logger).RunMigrations(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	metrics := observability.NewMetrics(reg)
	opts := []service.Option{
		service.WithLogger(logger),
		service.WithMetrics(metrics),
	}

	if cfg.LLMEnabled() {
		extractor, err := extract.NewLLMExtractor(extract.LLMConfig{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
			Timeout: cfg.ExtractionTimeout,
		}, logger)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create extractor: %w", err)
		}
		opts = append(opts, service.WithExtractor(extractor))
		logger.Info("llm extraction enabled", "model", cfg.OpenAIModel)
	} else {
		logger.Info("llm extraction disabled, using keyword parser")
	}

	svc := service.NewTrailService(repository.NewTrailRepository(db), SearchOptions(cfg), opts...)

	return &App{DB: db, Service: svc, Metrics: metrics}, nil
}

// EnsureSeeded loads the bundled dataset when forced or when the catalog is empty
func (a *App) EnsureSeeded(ctx context.Context, force bool, logger *slog.Logger) error {
	health, err := a.Service.Health(ctx)
	if err != nil {
		return err
	}
	if !force && health.TrailsCount > 0 {
		a.Metrics.TrailsLoaded.Set(float64(health.TrailsCount))
		logger.Info("trail catalog loaded", "trails", health.TrailsCount)
		return nil
	}
	_, err = a.Service.Seed(ctx)
	return err
}

// Close releases the database
func (a *App) Close() error {
	return a.DB.Close()
}
