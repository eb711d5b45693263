package search

import (
	"github.com/jengzang/trails-backend-go/internal/models"
	"github.com/jengzang/trails-backend-go/internal/spatial"
)

// Match is a resolved trail plus its distance from the search center, when a
// radius filter ran.
type Match struct {
	Trail              models.Trail
	DistanceFromCenter *float64
}

// FilterByRadius keeps the trails within radiusMiles of center (inclusive),
// preserving input order.
func FilterByRadius(trails []models.Trail, center spatial.Point, radiusMiles float64) []Match {
	out := make([]Match, 0, len(trails))
	for _, t := range trails {
		d, ok := spatial.WithinRadius(center, spatial.Point{Lat: t.Latitude, Lng: t.Longitude}, radiusMiles)
		if !ok {
			continue
		}
		dist := d
		out = append(out, Match{Trail: t, DistanceFromCenter: &dist})
	}
	return out
}

// applyGeoFilter runs FilterByRadius only when f carries a full radius
func applyGeoFilter(trails []models.Trail, f models.Filters) []Match {
	if !f.HasRadius() {
		out := make([]Match, len(trails))
		for i, t := range trails {
			out[i] = Match{Trail: t}
		}
		return out
	}
	center := spatial.Point{Lat: *f.CenterLat, Lng: *f.CenterLng}
	return FilterByRadius(trails, center, *f.RadiusMiles)
}
