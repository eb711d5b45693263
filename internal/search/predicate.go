package search

import (
	"strings"

	"github.com/jengzang/trails-backend-go/internal/models"
	"github.com/jengzang/trails-backend-go/internal/spatial"
)

// predicate is a single test derived from one populated Filters field
type predicate struct {
	field models.FilterField
	test  func(t *models.Trail) bool
}

// buildPredicates returns one predicate per populated field of f.
// The feature list becomes a single OR-group over all variants.
func buildPredicates(f models.Filters) []predicate {
	var preds []predicate
	add := func(field models.FilterField, test func(t *models.Trail) bool) {
		preds = append(preds, predicate{field: field, test: test})
	}

	if f.DistanceCapMiles != nil {
		capKm := spatial.MilesToKm(*f.DistanceCapMiles)
		add(models.FieldDistanceCap, func(t *models.Trail) bool { return t.DistanceKm <= capKm })
	}
	if f.DistanceMinMiles != nil {
		minKm := spatial.MilesToKm(*f.DistanceMinMiles)
		add(models.FieldDistanceMin, func(t *models.Trail) bool { return t.DistanceKm >= minKm })
	}
	if f.ElevationCapM != nil {
		capM := *f.ElevationCapM
		add(models.FieldElevationCap, func(t *models.Trail) bool { return t.ElevationGainM <= capM })
	}
	if f.DogsAllowed != nil {
		want := *f.DogsAllowed
		add(models.FieldDogsAllowed, func(t *models.Trail) bool { return t.DogsAllowed == want })
	}
	if f.RouteType != "" {
		want := f.RouteType
		add(models.FieldRouteType, func(t *models.Trail) bool { return t.RouteType == want })
	}

	// Location
	addContains(add, models.FieldCity, f.City, func(t *models.Trail) *string { return t.City })
	addContains(add, models.FieldCounty, f.County, func(t *models.Trail) *string { return t.County })
	addContains(add, models.FieldState, f.State, func(t *models.Trail) *string { return t.State })
	addContains(add, models.FieldRegion, f.Region, func(t *models.Trail) *string { return t.Region })

	// Amenities
	addBool(add, models.FieldParkingAvailable, f.ParkingAvailable, func(t *models.Trail) *bool { return t.ParkingAvailable })
	addEqual(add, models.FieldParkingType, f.ParkingType, func(t *models.Trail) *string { return t.ParkingType })
	addBool(add, models.FieldRestrooms, f.Restrooms, func(t *models.Trail) *bool { return t.Restrooms })
	addBool(add, models.FieldWaterAvailable, f.WaterAvailable, func(t *models.Trail) *bool { return t.WaterAvailable })
	addBool(add, models.FieldPicnicAreas, f.PicnicAreas, func(t *models.Trail) *bool { return t.PicnicAreas })
	addBool(add, models.FieldCampingAvailable, f.CampingAvailable, func(t *models.Trail) *bool { return t.CampingAvailable })

	// Access and permits
	addBool(add, models.FieldEntryFee, f.EntryFee, func(t *models.Trail) *bool { return t.EntryFee })
	addBool(add, models.FieldPermitRequired, f.PermitRequired, func(t *models.Trail) *bool { return t.PermitRequired })
	addEqual(add, models.FieldSeasonalAccess, f.SeasonalAccess, func(t *models.Trail) *string { return t.SeasonalAccess })
	addEqual(add, models.FieldAccessibility, f.Accessibility, func(t *models.Trail) *string { return t.Accessibility })

	// Trail characteristics
	addEqual(add, models.FieldSurfaceType, f.SurfaceType, func(t *models.Trail) *string { return t.SurfaceType })
	addBool(add, models.FieldTrailMarkers, f.TrailMarkers, func(t *models.Trail) *bool { return t.TrailMarkers })
	addBool(add, models.FieldLoopTrail, f.LoopTrail, func(t *models.Trail) *bool { return t.LoopTrail })
	addContains(add, models.FieldManagingAgency, f.ManagingAgency, func(t *models.Trail) *string { return t.ManagingAgency })

	if f.Difficulty != "" {
		want := f.Difficulty
		add(models.FieldDifficulty, func(t *models.Trail) bool { return t.Difficulty == want })
	}

	if len(f.Features) > 0 {
		variants := ExpandFeatures(f.Features)
		add(models.FieldFeatures, func(t *models.Trail) bool { return matchesAnyVariant(t, variants) })
	}

	return preds
}

type addFunc func(field models.FilterField, test func(t *models.Trail) bool)

// addBool adds an equality test; an unknown trail value never matches
func addBool(add addFunc, field models.FilterField, want *bool, get func(t *models.Trail) *bool) {
	if want == nil {
		return
	}
	w := *want
	add(field, func(t *models.Trail) bool {
		v := get(t)
		return v != nil && *v == w
	})
}

func addEqual(add addFunc, field models.FilterField, want string, get func(t *models.Trail) *string) {
	if want == "" {
		return
	}
	add(field, func(t *models.Trail) bool {
		v := get(t)
		return v != nil && strings.EqualFold(*v, want)
	})
}

// addContains adds a case-insensitive substring test
func addContains(add addFunc, field models.FilterField, want string, get func(t *models.Trail) *string) {
	if want == "" {
		return
	}
	needle := strings.ToLower(want)
	add(field, func(t *models.Trail) bool {
		v := get(t)
		return v != nil && strings.Contains(strings.ToLower(*v), needle)
	})
}

// matchesAll reports whether t satisfies every predicate
func matchesAll(t *models.Trail, preds []predicate) bool {
	for _, p := range preds {
		if !p.test(t) {
			return false
		}
	}
	return true
}
