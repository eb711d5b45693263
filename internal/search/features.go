package search

import (
	"strings"

	"github.com/jengzang/trails-backend-go/internal/models"
)

// ExpandFeature maps one requested feature to the tag variants that satisfy it.
// Category synonyms win; otherwise the singular/plural counterpart is added.
func ExpandFeature(term string) []string {
	switch term {
	case "view", "views":
		return []string{term, "overlook", "vista", "bluff"}
	case "scenic":
		return []string{term, "view", "views", "overlook", "vista", "bluff"}
	case "waterfall", "waterfalls":
		return []string{"waterfall", "waterfalls", "falls"}
	}

	switch {
	case strings.HasSuffix(term, "s") && len(term) > 3:
		return []string{term, strings.TrimSuffix(term, "s")}
	case !strings.HasSuffix(term, "s"):
		return []string{term, term + "s"}
	default:
		return []string{term}
	}
}

// ExpandFeatures flattens the variants of every requested feature, keeping
// first-seen order and dropping duplicates.
func ExpandFeatures(features []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, f := range features {
		for _, v := range ExpandFeature(f) {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

// matchesAnyVariant reports whether the trail's tag text contains any variant.
// Matching is a case-insensitive substring test over the comma-joined tags.
func matchesAnyVariant(t *models.Trail, variants []string) bool {
	text := strings.ToLower(t.FeatureText())
	for _, v := range variants {
		if strings.Contains(text, strings.ToLower(v)) {
			return true
		}
	}
	return false
}
