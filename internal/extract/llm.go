package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/jengzang/trails-backend-go/internal/models"
)

const maxAttempts = 3

// maxElevationGainM bounds model-provided elevation caps; anything above is
// not a real trail constraint
const maxElevationGainM = 10000

// LLMConfig configures the OpenAI-compatible chat client
type LLMConfig struct {
	APIKey  string
	Model   string
	BaseURL string        // empty uses the OpenAI default
	Timeout time.Duration // per extraction; 0 disables
}

// LLMExtractor asks a chat model for search arguments in JSON mode
type LLMExtractor struct {
	client  llms.Model
	timeout time.Duration
	logger  *slog.Logger
}

// searchArgs mirrors the JSON object the model is prompted to return
type searchArgs struct {
	Location          string   `json:"location"`
	MaxDistanceMiles  *float64 `json:"max_distance_miles"`
	MinDistanceMiles  *float64 `json:"min_distance_miles"`
	MaxElevationGainM *float64 `json:"max_elevation_gain_m"`
	Difficulty        string   `json:"difficulty"`
	RouteType         string   `json:"route_type"`
	DogsAllowed       *bool    `json:"dogs_allowed"`
	Features          []string `json:"features"`
	RadiusMiles       *float64 `json:"radius_miles"`

	City   string `json:"city"`
	County string `json:"county"`
	State  string `json:"state"`
	Region string `json:"region"`

	ParkingAvailable *bool  `json:"parking_available"`
	ParkingType      string `json:"parking_type"`
	Restrooms        *bool  `json:"restrooms"`
	WaterAvailable   *bool  `json:"water_available"`
	PicnicAreas      *bool  `json:"picnic_areas"`
	CampingAvailable *bool  `json:"camping_available"`
	EntryFee         *bool  `json:"entry_fee"`
	PermitRequired   *bool  `json:"permit_required"`
	SeasonalAccess   string `json:"seasonal_access"`
	Accessibility    string `json:"accessibility"`
	SurfaceType      string `json:"surface_type"`
	TrailMarkers     *bool  `json:"trail_markers"`
	LoopTrail        *bool  `json:"loop_trail"`
	ManagingAgency   string `json:"managing_agency"`
}

// NewLLMExtractor creates an extractor backed by an OpenAI-compatible API
func NewLLMExtractor(cfg LLMConfig, logger *slog.Logger) (*LLMExtractor, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("extract: OpenAI API key is required")
	}

	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}
	client, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	return NewLLMExtractorWithModel(client, cfg.Timeout, logger), nil
}

// NewLLMExtractorWithModel wraps an existing model client
func NewLLMExtractorWithModel(client llms.Model, timeout time.Duration, logger *slog.Logger) *LLMExtractor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LLMExtractor{
		client:  client,
		timeout: timeout,
		logger:  logger.With("component", "llm-extractor"),
	}
}

// Extract implements Extractor
func (e *LLMExtractor) Extract(ctx context.Context, message string) (*Result, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	content := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, message),
	}

	// Retry only on malformed JSON; transport errors fail immediately
	var args searchArgs
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		response, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			e.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, fmt.Errorf("%w: %w", ErrExtractionFailed, err)
		}
		if len(response.Choices) < 1 {
			return nil, fmt.Errorf("%w: model returned no choices", ErrExtractionFailed)
		}

		text := stripCodeFences(response.Choices[0].Content)
		args = searchArgs{}
		if err := json.Unmarshal([]byte(text), &args); err != nil {
			lastErr = err
			e.logger.Warn("error parsing extraction response",
				"attempt", attempt+1,
				"response", text,
				"err", err)
			continue
		}

		lastErr = nil
		break
	}

	if lastErr != nil {
		e.logger.Error("failed to parse extraction response after retries", "err", lastErr)
		return nil, fmt.Errorf("%w: %w", ErrExtractionFailed, lastErr)
	}

	res := &Result{Source: SourceLLM}
	var notes []string
	res.Filters, notes = args.toFilters()
	if step := applyLocation(&res.Filters, args.Location, LocationRadiusMiles); step != "" {
		res.Steps = append(res.Steps, step)
	}
	for _, n := range notes {
		e.logger.Warn("extraction argument ignored", "detail", n)
	}
	res.Steps = append(res.Steps, notes...)
	res.Steps = append(res.Steps, fmt.Sprintf("model extracted %d fields", countFields(&res.Filters)))

	e.logger.Debug("extracted filters", "fields", countFields(&res.Filters))
	return res, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// toFilters copies the model arguments. Zero numbers count as absent.
// The returned notes describe arguments that could not be used.
func (a *searchArgs) toFilters() (models.Filters, []string) {
	var notes []string
	f := models.Filters{
		DistanceCapMiles: nonZero(a.MaxDistanceMiles),
		DistanceMinMiles: nonZero(a.MinDistanceMiles),
		Difficulty:       models.Difficulty(strings.ToLower(a.Difficulty)),
		RouteType:        models.RouteType(strings.ToLower(a.RouteType)),
		Features:         a.Features,
		DogsAllowed:      a.DogsAllowed,
		RadiusMiles:      nonZero(a.RadiusMiles),

		City:           a.City,
		County:         a.County,
		State:          a.State,
		Region:         a.Region,
		ManagingAgency: a.ManagingAgency,

		ParkingAvailable: a.ParkingAvailable,
		ParkingType:      a.ParkingType,
		Restrooms:        a.Restrooms,
		WaterAvailable:   a.WaterAvailable,
		PicnicAreas:      a.PicnicAreas,
		CampingAvailable: a.CampingAvailable,
		EntryFee:         a.EntryFee,
		PermitRequired:   a.PermitRequired,
		SeasonalAccess:   a.SeasonalAccess,
		Accessibility:    a.Accessibility,
		SurfaceType:      a.SurfaceType,
		TrailMarkers:     a.TrailMarkers,
		LoopTrail:        a.LoopTrail,
	}
	if v := nonZero(a.MaxElevationGainM); v != nil {
		if m, ok := elevationMeters(*v); ok {
			f.ElevationCapM = &m
		} else {
			notes = append(notes, fmt.Sprintf("max_elevation_gain_m %v out of range, ignored", *v))
		}
	}
	return f, notes
}

// elevationMeters rounds v to whole meters. Negative values pass through
// so sanitization reports them.
func elevationMeters(v float64) (int, bool) {
	r := math.Round(v)
	if math.IsNaN(r) || r > maxElevationGainM || r < -maxElevationGainM {
		return 0, false
	}
	return int(r), true
}

func nonZero(v *float64) *float64 {
	if v == nil || *v == 0 {
		return nil
	}
	return v
}
