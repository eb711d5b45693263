package extract

import (
	"fmt"
	"strings"

	"github.com/jengzang/trails-backend-go/internal/models"
)

// Chicago is the default search center
const (
	ChicagoLat = 41.8781
	ChicagoLng = -87.6298

	// LocationRadiusMiles applies when the model names Chicago without a radius
	LocationRadiusMiles = 50.0
	// KeywordRadiusMiles applies when the keyword parser detects Chicago (~60 km)
	KeywordRadiusMiles = 37.3
)

var midwestStates = []string{"wisconsin", "illinois", "michigan", "indiana", "iowa", "minnesota", "ohio", "missouri"}

// otherCities suppress the Chicago default in free text
var otherCities = []string{"milwaukee", "madison", "indianapolis", "detroit", "st. louis"}

func isState(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, state := range midwestStates {
		if s == state {
			return true
		}
	}
	return false
}

// applyLocation maps a general location onto f and describes what it did.
// A state name becomes a state filter; Chicago sets the center and, when
// no radius was given, defaultRadius.
func applyLocation(f *models.Filters, location string, defaultRadius float64) string {
	loc := strings.ToLower(strings.TrimSpace(location))
	switch {
	case loc == "":
		return ""
	case isState(loc):
		f.State = strings.TrimSpace(location)
		return fmt.Sprintf("location %q mapped to state filter", location)
	case strings.Contains(loc, "chicago"):
		lat, lng := ChicagoLat, ChicagoLng
		f.CenterLat, f.CenterLng = &lat, &lng
		if f.RadiusMiles == nil {
			r := defaultRadius
			f.RadiusMiles = &r
		}
		return fmt.Sprintf("location mapped to Chicago coordinates (%.4f, %.4f)", ChicagoLat, ChicagoLng)
	default:
		return fmt.Sprintf("general location %q noted but not mapped", location)
	}
}
