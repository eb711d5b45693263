package search

import (
	"strings"

	"github.com/jengzang/trails-backend-go/internal/models"
)

// Browse lists trails easy-to-hard then by distance, optionally narrowed to
// those mentioning area in their name, description, tags or place names.
func Browse(trails []models.Trail, area string, limit int) []models.Trail {
	needle := strings.ToLower(strings.TrimSpace(area))

	out := make([]models.Trail, 0, len(trails))
	for i := range trails {
		if needle == "" || mentionsArea(&trails[i], needle) {
			out = append(out, trails[i])
		}
	}

	sortTrails(out, difficultyRanks(""))

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func mentionsArea(t *models.Trail, needle string) bool {
	fields := []string{t.Name, t.Description, t.FeatureText()}
	for _, p := range []*string{t.City, t.County, t.State, t.Region} {
		if p != nil {
			fields = append(fields, *p)
		}
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
