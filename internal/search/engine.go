// Package search resolves structured trail filters into ranked, explained
// results. It holds no process-wide state: trails come from an injected
// TrailSource on every call, and identical inputs give identical output.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jengzang/trails-backend-go/internal/models"
)

// ErrNoTrailSource is returned when the engine has no trail collection to read
var ErrNoTrailSource = errors.New("search: no trail source configured")

// TrailSource is the read-only trail collection searched on each call
type TrailSource interface {
	ListTrails(ctx context.Context) ([]models.Trail, error)
}

// StaticSource serves a fixed in-memory collection
type StaticSource []models.Trail

// ListTrails implements TrailSource
func (s StaticSource) ListTrails(context.Context) ([]models.Trail, error) {
	return s, nil
}

// Options tunes result sizes and the supported filter fields
type Options struct {
	MaxResults       int                 // cap after sorting, before the radius filter
	DisplayLimit     int                 // cap after formatting
	DescriptionLimit int                 // snippet length in characters
	Capabilities     models.Capabilities // nil enables every field
}

// DefaultOptions returns the stock limits
func DefaultOptions() Options {
	return Options{
		MaxResults:       20,
		DisplayLimit:     100,
		DescriptionLimit: 200,
	}
}

// Engine chains resolve, radius filter and formatting over a TrailSource
type Engine struct {
	source TrailSource
	opts   Options
	logger *slog.Logger
}

// NewEngine creates a search engine. A nil logger discards output.
func NewEngine(source TrailSource, opts Options, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{
		source: source,
		opts:   opts,
		logger: logger.With("component", "search"),
	}
}

// Options returns the engine's configuration
func (e *Engine) Options() Options {
	return e.opts
}

// Search runs a full structured search. Invalid filter values are dropped
// and reported in the response rather than failing the call.
func (e *Engine) Search(ctx context.Context, filters models.Filters) (*models.SearchResponse, error) {
	trails, err := e.load(ctx)
	if err != nil {
		return nil, err
	}

	clean, warnings := filters.Sanitize(e.opts.Capabilities)
	for _, w := range warnings {
		e.logger.Warn("filter dropped", "field", w.Field, "value", w.Value, "reason", w.Reason)
	}

	resolved := Resolve(clean, trails, e.opts.MaxResults)
	e.logger.Debug("resolved trails", "candidates", len(trails), "matched", len(resolved))

	matches := applyGeoFilter(resolved, clean)
	if clean.HasRadius() {
		e.logger.Debug("geographic filter applied",
			"radius_miles", *clean.RadiusMiles,
			"input", len(resolved),
			"output", len(matches),
		)
	}

	results := Format(matches, clean, e.opts.DescriptionLimit, e.opts.DisplayLimit)

	return &models.SearchResponse{
		Results:  results,
		Count:    len(results),
		Filters:  clean,
		Warnings: warnings,
	}, nil
}

// Browse lists trails without structured filters
func (e *Engine) Browse(ctx context.Context, area string, limit int) ([]models.Trail, error) {
	trails, err := e.load(ctx)
	if err != nil {
		return nil, err
	}
	out := Browse(trails, area, limit)
	e.logger.Debug("browsed trails", "area", area, "limit", limit, "returned", len(out))
	return out, nil
}

func (e *Engine) load(ctx context.Context) ([]models.Trail, error) {
	if e.source == nil {
		return nil, ErrNoTrailSource
	}
	trails, err := e.source.ListTrails(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load trails: %w", err)
	}
	return trails, nil
}
