package search

import (
	"github.com/jengzang/trails-backend-go/internal/models"
	"github.com/jengzang/trails-backend-go/internal/spatial"
)

// Format turns matches into explained results, capped at displayLimit
// (<= 0 means no cap).
func Format(matches []Match, f models.Filters, descriptionLimit, displayLimit int) []models.TrailResult {
	if displayLimit > 0 && len(matches) > displayLimit {
		matches = matches[:displayLimit]
	}

	results := make([]models.TrailResult, 0, len(matches))
	for _, m := range matches {
		t := m.Trail
		parts := Explain(t, f)
		results = append(results, models.TrailResult{
			ID:                      t.ID,
			Name:                    t.Name,
			DistanceMiles:           spatial.KmToMiles(t.DistanceKm),
			ElevationGainM:          t.ElevationGainM,
			Difficulty:              t.Difficulty,
			DogsAllowed:             t.DogsAllowed,
			RouteType:               t.RouteType,
			Features:                append([]string(nil), t.Features...),
			Latitude:                t.Latitude,
			Longitude:               t.Longitude,
			DescriptionSnippet:      TruncateDescription(t.Description, descriptionLimit),
			Score:                   1.0,
			Explanation:             parts,
			Why:                     Why(parts),
			DistanceFromCenterMiles: m.DistanceFromCenter,
			City:                    t.City,
			County:                  t.County,
			State:                   t.State,
			Region:                  t.Region,
			Country:                 t.Country,
			Amenities:               t.Amenities,
		})
	}
	return results
}
