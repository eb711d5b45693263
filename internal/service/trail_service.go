package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/jengzang/trails-backend-go/internal/extract"
	"github.com/jengzang/trails-backend-go/internal/models"
	"github.com/jengzang/trails-backend-go/internal/observability"
	"github.com/jengzang/trails-backend-go/internal/repository"
	"github.com/jengzang/trails-backend-go/internal/search"
	"github.com/jengzang/trails-backend-go/internal/seed"
	"github.com/jengzang/trails-backend-go/internal/spatial"
)

// Browse limits
const (
	DefaultBrowseLimit = 50
	MaxBrowseLimit     = 100
)

// ErrTrailNotFound is returned by GetTrail for unknown ids
var ErrTrailNotFound = repository.ErrTrailNotFound

// TrailStore is the persistent trail catalog
type TrailStore interface {
	search.TrailSource
	GetTrailByID(ctx context.Context, id int64) (*models.Trail, error)
	Count(ctx context.Context) (int, error)
	ReplaceAll(ctx context.Context, trails []models.Trail) error
}

// TrailService handles business logic for trail search
type TrailService struct {
	store     TrailStore
	engine    *search.Engine
	extractor extract.Extractor // nil when no model is configured
	fallback  extract.Extractor
	metrics   *observability.Metrics
	clock     clockwork.Clock
	logger    *slog.Logger
}

// Option customizes a TrailService
type Option func(*TrailService)

// WithExtractor sets the primary extractor tried before the keyword parser
func WithExtractor(e extract.Extractor) Option {
	return func(s *TrailService) { s.extractor = e }
}

// WithMetrics records search and extraction metrics
func WithMetrics(m *observability.Metrics) Option {
	return func(s *TrailService) { s.metrics = m }
}

// WithClock replaces the wall clock used for trace timings
func WithClock(c clockwork.Clock) Option {
	return func(s *TrailService) { s.clock = c }
}

// WithLogger sets the service logger
func WithLogger(l *slog.Logger) Option {
	return func(s *TrailService) { s.logger = l }
}

// NewTrailService creates a new trail service
func NewTrailService(store TrailStore, opts search.Options, options ...Option) *TrailService {
	s := &TrailService{
		store:    store,
		fallback: extract.NewKeywordParser(),
		metrics:  observability.NewMetrics(nil),
		clock:    clockwork.NewRealClock(),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range options {
		opt(s)
	}
	s.engine = search.NewEngine(store, opts, s.logger)
	s.logger = s.logger.With("component", "trail-service")
	return s
}

// LLMEnabled reports whether a model-backed extractor is configured
func (s *TrailService) LLMEnabled() bool {
	return s.extractor != nil
}

// Search runs a structured search
func (s *TrailService) Search(ctx context.Context, filters models.Filters) (*models.SearchResponse, error) {
	start := s.clock.Now()
	resp, err := s.engine.Search(ctx, filters)
	s.observe(observability.KindSearch, start, resp, err)
	if err != nil {
		return nil, fmt.Errorf("failed to search trails: %w", err)
	}
	return resp, nil
}

// Chat extracts filters from a message, searches, and summarizes the result.
// A failing model falls back to the keyword parser.
func (s *TrailService) Chat(ctx context.Context, message, requestID string) (*models.ChatResponse, error) {
	start := s.clock.Now()
	logger := s.logger.With("request_id", requestID)

	extraction, extractErrs := s.extract(ctx, message, logger)

	resp, err := s.engine.Search(ctx, extraction.Filters)
	s.observe(observability.KindChat, start, resp, err)
	if err != nil {
		return nil, fmt.Errorf("failed to search trails: %w", err)
	}

	trace := models.ToolTrace{
		Tool:            "search_trails",
		DurationMs:      s.clock.Since(start).Milliseconds(),
		ResultCount:     resp.Count,
		ExtractedBy:     extraction.Source,
		SearchFilters:   resp.Filters,
		Warnings:        resp.Warnings,
		ProcessingSteps: extraction.Steps,
		Errors:          extractErrs,
		Success:         true,
	}

	logger.Info("chat search completed",
		"extracted_by", extraction.Source,
		"results", resp.Count,
		"duration_ms", trace.DurationMs,
	)

	return &models.ChatResponse{
		Content:       summarize(resp),
		Results:       resp.Results,
		ParsedFilters: resp.Filters,
		ToolTraces:    []models.ToolTrace{trace},
		RequestID:     requestID,
	}, nil
}

// Parse shows how a message would be interpreted without searching
func (s *TrailService) Parse(ctx context.Context, message string) (*models.ParseResponse, error) {
	extraction, _ := s.extract(ctx, message, s.logger)
	clean, warnings := extraction.Filters.Sanitize(s.engine.Options().Capabilities)
	return &models.ParseResponse{
		Extracted:   extraction.Filters,
		Sanitized:   clean,
		Warnings:    warnings,
		ExtractedBy: extraction.Source,
	}, nil
}

// extract tries the configured extractor and falls back to keywords.
// The returned strings describe any extractor failure.
func (s *TrailService) extract(ctx context.Context, message string, logger *slog.Logger) (*extract.Result, []string) {
	var errs []string
	if s.extractor != nil {
		res, err := s.extractor.Extract(ctx, message)
		if err == nil {
			s.metrics.Extractions.WithLabelValues(res.Source, "success").Inc()
			return res, nil
		}
		s.metrics.Extractions.WithLabelValues(extract.SourceLLM, "error").Inc()
		logger.Warn("extraction failed, using keyword parser", "err", err)
		errs = append(errs, err.Error())
	}

	// The keyword parser does not fail
	res, _ := s.fallback.Extract(ctx, message)
	s.metrics.Extractions.WithLabelValues(res.Source, "success").Inc()
	return res, errs
}

// Browse lists trails, optionally narrowed to an area
func (s *TrailService) Browse(ctx context.Context, filter models.BrowseFilter) (*models.TrailsResponse, error) {
	start := s.clock.Now()
	limit := ClampBrowseLimit(filter.Limit)

	trails, err := s.engine.Browse(ctx, filter.Area, limit)
	if err != nil {
		s.metrics.Searches.WithLabelValues(observability.KindBrowse, "error").Inc()
		return nil, fmt.Errorf("failed to browse trails: %w", err)
	}

	details := make([]models.TrailDetail, len(trails))
	for i, t := range trails {
		details[i] = toDetail(t)
	}

	s.metrics.Searches.WithLabelValues(observability.KindBrowse, outcome(len(details))).Inc()
	s.metrics.SearchResults.WithLabelValues(observability.KindBrowse).Observe(float64(len(details)))
	s.metrics.SearchDuration.WithLabelValues(observability.KindBrowse).Observe(s.clock.Since(start).Seconds())

	return &models.TrailsResponse{
		Data:  details,
		Count: len(details),
		Area:  strings.TrimSpace(filter.Area),
		Limit: limit,
	}, nil
}

// ClampBrowseLimit applies the default and bounds the browse page size
func ClampBrowseLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultBrowseLimit
	case limit > MaxBrowseLimit:
		return MaxBrowseLimit
	default:
		return limit
	}
}

// GetTrail retrieves a single trail with its full description
func (s *TrailService) GetTrail(ctx context.Context, id int64) (*models.TrailDetail, error) {
	t, err := s.store.GetTrailByID(ctx, id)
	if errors.Is(err, repository.ErrTrailNotFound) {
		return nil, ErrTrailNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trail: %w", err)
	}
	d := toDetail(*t)
	return &d, nil
}

// Seed replaces the catalog with the bundled dataset
func (s *TrailService) Seed(ctx context.Context) (*models.SeedResponse, error) {
	trails, err := seed.Trails()
	if err != nil {
		return nil, err
	}
	if err := s.store.ReplaceAll(ctx, trails); err != nil {
		return nil, fmt.Errorf("failed to seed trails: %w", err)
	}

	s.metrics.TrailsLoaded.Set(float64(len(trails)))
	s.logger.Info("database seeded", "trails", len(trails))

	return &models.SeedResponse{
		Message:     "Database seeded successfully",
		TrailsCount: len(trails),
	}, nil
}

// Health reports the catalog size
func (s *TrailService) Health(ctx context.Context) (*models.HealthResponse, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &models.HealthResponse{
		Status:      "ok",
		Message:     "Trail search API is running",
		TrailsCount: n,
		LLMEnabled:  s.LLMEnabled(),
	}, nil
}

func (s *TrailService) observe(kind string, start time.Time, resp *models.SearchResponse, err error) {
	s.metrics.SearchDuration.WithLabelValues(kind).Observe(s.clock.Since(start).Seconds())
	if err != nil {
		s.metrics.Searches.WithLabelValues(kind, "error").Inc()
		return
	}
	s.metrics.Searches.WithLabelValues(kind, outcome(resp.Count)).Inc()
	s.metrics.SearchResults.WithLabelValues(kind).Observe(float64(resp.Count))
	for _, w := range resp.Warnings {
		s.metrics.DroppedFilters.WithLabelValues(string(w.Field)).Inc()
	}
}

func toDetail(t models.Trail) models.TrailDetail {
	return models.TrailDetail{Trail: t, DistanceMiles: spatial.KmToMiles(t.DistanceKm)}
}

func outcome(n int) string {
	if n == 0 {
		return "empty"
	}
	return "ok"
}
