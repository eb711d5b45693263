package search

import (
	"fmt"
	"strings"

	"github.com/jengzang/trails-backend-go/internal/models"
	"github.com/jengzang/trails-backend-go/internal/spatial"
)

const maxOtherFeatures = 3

// Explain builds the ordered justification clauses for one matched trail.
//
// Distance and elevation bounds are hard filters, so a matched trail is
// always within them and only the "within" annotation is produced.
func Explain(t models.Trail, f models.Filters) []string {
	var parts []string

	if t.Difficulty != "" {
		parts = append(parts, fmt.Sprintf("%s difficulty", t.Difficulty))
	}

	if t.DistanceKm > 0 {
		miles := spatial.KmToMiles(t.DistanceKm)
		text := fmt.Sprintf("%.1f miles distance", miles)
		if f.DistanceCapMiles != nil && miles <= *f.DistanceCapMiles {
			text += " (within your limit)"
		}
		parts = append(parts, text)
	}

	elevation := fmt.Sprintf("%dm elevation", t.ElevationGainM)
	if f.ElevationCapM != nil && t.ElevationGainM <= *f.ElevationCapM {
		elevation += " (within limit)"
	}
	parts = append(parts, elevation)

	var matching []string
	for _, feature := range f.Features {
		if t.HasFeature(feature) {
			matching = append(matching, feature)
		}
	}
	if len(matching) > 0 {
		parts = append(parts, "has "+strings.Join(matching, ", "))
	}

	// Skip the list entirely when it would overwhelm the summary
	var others []string
	for _, tag := range t.Features {
		if strings.TrimSpace(tag) != "" && !contains(f.Features, tag) {
			others = append(others, tag)
		}
	}
	if len(others) > 0 && len(others) <= maxOtherFeatures {
		parts = append(parts, "also features "+strings.Join(others, ", "))
	}

	if f.DogsAllowed != nil {
		switch {
		case t.DogsAllowed == *f.DogsAllowed && t.DogsAllowed:
			parts = append(parts, "dog-friendly")
		case t.DogsAllowed == *f.DogsAllowed:
			parts = append(parts, "no dogs required")
		case t.DogsAllowed:
			parts = append(parts, "dogs allowed (differs from preference)")
		default:
			parts = append(parts, "no dogs (differs from preference)")
		}
	}

	if t.RouteType != "" {
		text := t.RouteType.Label() + " trail"
		switch {
		case f.RouteType == "":
		case t.RouteType == f.RouteType:
			text += " (matches preference)"
		default:
			text += fmt.Sprintf(" (you preferred %s)", f.RouteType.Label())
		}
		parts = append(parts, text)
	}

	return parts
}

// Why joins explanation clauses into the one-line summary shown to users
func Why(parts []string) string {
	if len(parts) == 0 {
		return "Matches search criteria"
	}
	return "Matches: " + strings.Join(parts, ", ")
}

// TruncateDescription cuts s to limit characters and appends "..." when it
// was longer. The cut may split a word.
func TruncateDescription(s string, limit int) string {
	r := []rune(s)
	if limit <= 0 || len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
