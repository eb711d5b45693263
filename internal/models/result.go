package models

// TrailResult is one formatted, explained search hit
type TrailResult struct {
	ID                 int64      `json:"id"`
	Name               string     `json:"name"`
	DistanceMiles      float64    `json:"distanceMiles"`
	ElevationGainM     int        `json:"elevationGainM"`
	Difficulty         Difficulty `json:"difficulty"`
	DogsAllowed        bool       `json:"dogsAllowed"`
	RouteType          RouteType  `json:"routeType"`
	Features           []string   `json:"features"`
	Latitude           float64    `json:"latitude"`
	Longitude          float64    `json:"longitude"`
	DescriptionSnippet string     `json:"descriptionSnippet"`
	Score              float64    `json:"score"`
	Explanation        []string   `json:"explanation"`
	Why                string     `json:"why"`

	// Set only when a radius filter ran
	DistanceFromCenterMiles *float64 `json:"distanceFromCenterMiles,omitempty"`

	City    *string `json:"city,omitempty"`
	County  *string `json:"county,omitempty"`
	State   *string `json:"state,omitempty"`
	Region  *string `json:"region,omitempty"`
	Country *string `json:"country,omitempty"`

	Amenities
}

// SearchResponse is returned by the structured search path
type SearchResponse struct {
	Results  []TrailResult   `json:"results"`
	Count    int             `json:"count"`
	Filters  Filters         `json:"filters"`
	Warnings []FilterWarning `json:"warnings,omitempty"`
}

// ToolTrace records one search step for transparency in chat responses
type ToolTrace struct {
	Tool            string          `json:"tool"`
	DurationMs      int64           `json:"durationMs"`
	ResultCount     int             `json:"resultCount"`
	ExtractedBy     string          `json:"extractedBy"` // llm, keyword
	SearchFilters   Filters         `json:"searchFilters"`
	Warnings        []FilterWarning `json:"warnings,omitempty"`
	ProcessingSteps []string        `json:"processingSteps,omitempty"`
	Errors          []string        `json:"errors,omitempty"`
	Success         bool            `json:"success"`
}

// ChatRequest is the body of the conversational search endpoint
type ChatRequest struct {
	Message string `json:"message" binding:"required,max=1000"`
}

// ChatResponse answers a conversational search
type ChatResponse struct {
	Content       string        `json:"content"`
	Results       []TrailResult `json:"results"`
	ParsedFilters Filters       `json:"parsedFilters"`
	ToolTraces    []ToolTrace   `json:"toolTraces,omitempty"`
	RequestID     string        `json:"requestId,omitempty"`
}

// ParseResponse is returned by the debug parse endpoint
type ParseResponse struct {
	Extracted   Filters         `json:"extracted"`
	Sanitized   Filters         `json:"sanitized"`
	Warnings    []FilterWarning `json:"warnings,omitempty"`
	ExtractedBy string          `json:"extractedBy"`
}

// SeedResponse reports a reseed
type SeedResponse struct {
	Message     string `json:"message"`
	TrailsCount int    `json:"trailsCount"`
}

// HealthResponse reports service liveness and catalog size
type HealthResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	TrailsCount int    `json:"trailsCount"`
	LLMEnabled  bool   `json:"llmEnabled"`
}
