// Package extract turns a free-text trail request into structured filters.
//
// Two extractors are provided: LLMExtractor asks a chat model for the search
// arguments, and KeywordParser recognizes a handful of unambiguous phrases
// without any network access. Both return unsanitized filters; callers run
// models.Filters.Sanitize at the boundary.
package extract

import (
	"context"
	"errors"

	"github.com/jengzang/trails-backend-go/internal/models"
)

// ErrExtractionFailed wraps any failure to obtain filters from a model
var ErrExtractionFailed = errors.New("extract: filter extraction failed")

// Extraction sources reported in traces and metrics
const (
	SourceLLM     = "llm"
	SourceKeyword = "keyword"
)

// Result is the outcome of one extraction
type Result struct {
	Filters models.Filters
	Source  string
	Steps   []string // human readable processing notes
}

// Extractor produces search filters from a user message
type Extractor interface {
	Extract(ctx context.Context, message string) (*Result, error)
}
