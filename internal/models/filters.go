package models

import (
	"fmt"
	"math"
	"strings"
)

// Filters is the structured search intent produced by the extractor.
// Every field is optional; a zero Filters matches every trail.
type Filters struct {
	DistanceCapMiles *float64   `json:"distanceCapMiles,omitempty"`
	DistanceMinMiles *float64   `json:"distanceMinMiles,omitempty"`
	ElevationCapM    *int       `json:"elevationCapM,omitempty"`
	Difficulty       Difficulty `json:"difficulty,omitempty"`
	RouteType        RouteType  `json:"routeType,omitempty"`
	Features         []string   `json:"features,omitempty"`
	DogsAllowed      *bool      `json:"dogsAllowed,omitempty"`

	// Radius search; applied only when all three are set
	RadiusMiles *float64 `json:"radiusMiles,omitempty"`
	CenterLat   *float64 `json:"centerLat,omitempty"`
	CenterLng   *float64 `json:"centerLng,omitempty"`

	// Location name filters (case-insensitive substring)
	City           string `json:"city,omitempty"`
	County         string `json:"county,omitempty"`
	State          string `json:"state,omitempty"`
	Region         string `json:"region,omitempty"`
	ManagingAgency string `json:"managingAgency,omitempty"`

	// Amenities
	ParkingAvailable *bool  `json:"parkingAvailable,omitempty"`
	ParkingType      string `json:"parkingType,omitempty"`
	Restrooms        *bool  `json:"restrooms,omitempty"`
	WaterAvailable   *bool  `json:"waterAvailable,omitempty"`
	PicnicAreas      *bool  `json:"picnicAreas,omitempty"`
	CampingAvailable *bool  `json:"campingAvailable,omitempty"`

	// Access and permits
	EntryFee       *bool  `json:"entryFee,omitempty"`
	PermitRequired *bool  `json:"permitRequired,omitempty"`
	SeasonalAccess string `json:"seasonalAccess,omitempty"`
	Accessibility  string `json:"accessibility,omitempty"`

	// Trail characteristics
	SurfaceType  string `json:"surfaceType,omitempty"`
	TrailMarkers *bool  `json:"trailMarkers,omitempty"`
	LoopTrail    *bool  `json:"loopTrail,omitempty"`
}

// HasRadius reports whether the geographic post-filter applies
func (f *Filters) HasRadius() bool {
	return f.RadiusMiles != nil && f.CenterLat != nil && f.CenterLng != nil
}

// FilterField names one optional Filters field
type FilterField string

const (
	FieldDistanceCap      FilterField = "distance_cap"
	FieldDistanceMin      FilterField = "distance_min"
	FieldElevationCap     FilterField = "elevation_cap"
	FieldDifficulty       FilterField = "difficulty"
	FieldRouteType        FilterField = "route_type"
	FieldFeatures         FilterField = "features"
	FieldDogsAllowed      FilterField = "dogs_allowed"
	FieldRadius           FilterField = "radius"
	FieldCity             FilterField = "city"
	FieldCounty           FilterField = "county"
	FieldState            FilterField = "state"
	FieldRegion           FilterField = "region"
	FieldManagingAgency   FilterField = "managing_agency"
	FieldParkingAvailable FilterField = "parking_available"
	FieldParkingType      FilterField = "parking_type"
	FieldRestrooms        FilterField = "restrooms"
	FieldWaterAvailable   FilterField = "water_available"
	FieldPicnicAreas      FilterField = "picnic_areas"
	FieldCampingAvailable FilterField = "camping_available"
	FieldEntryFee         FilterField = "entry_fee"
	FieldPermitRequired   FilterField = "permit_required"
	FieldSeasonalAccess   FilterField = "seasonal_access"
	FieldAccessibility    FilterField = "accessibility"
	FieldSurfaceType      FilterField = "surface_type"
	FieldTrailMarkers     FilterField = "trail_markers"
	FieldLoopTrail        FilterField = "loop_trail"
)

// AllFilterFields lists every optional field in declaration order
var AllFilterFields = []FilterField{
	FieldDistanceCap, FieldDistanceMin, FieldElevationCap, FieldDifficulty,
	FieldRouteType, FieldFeatures, FieldDogsAllowed, FieldRadius,
	FieldCity, FieldCounty, FieldState, FieldRegion, FieldManagingAgency,
	FieldParkingAvailable, FieldParkingType, FieldRestrooms, FieldWaterAvailable,
	FieldPicnicAreas, FieldCampingAvailable, FieldEntryFee, FieldPermitRequired,
	FieldSeasonalAccess, FieldAccessibility, FieldSurfaceType, FieldTrailMarkers,
	FieldLoopTrail,
}

// Capabilities is the set of filter fields a deployment supports.
// A nil Capabilities supports every field.
type Capabilities map[FilterField]bool

// AllCapabilities returns a set with every field enabled
func AllCapabilities() Capabilities {
	caps := make(Capabilities, len(AllFilterFields))
	for _, f := range AllFilterFields {
		caps[f] = true
	}
	return caps
}

// Without returns a copy of c with the named fields disabled
func (c Capabilities) Without(fields ...FilterField) Capabilities {
	out := AllCapabilities()
	if c != nil {
		out = make(Capabilities, len(c))
		for f, on := range c {
			out[f] = on
		}
	}
	for _, f := range fields {
		delete(out, f)
	}
	return out
}

// Supports reports whether field is enabled
func (c Capabilities) Supports(field FilterField) bool {
	if c == nil {
		return true
	}
	return c[field]
}

// ParseFilterField validates a field name from configuration
func ParseFilterField(s string) (FilterField, error) {
	name := FilterField(strings.ToLower(strings.TrimSpace(s)))
	for _, f := range AllFilterFields {
		if f == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown filter field %q", s)
}

// Allowed values for the enum-like amenity fields
var (
	ParkingTypes    = []string{"free", "paid", "limited", "street"}
	SeasonalAccess  = []string{"year-round", "seasonal", "summer", "winter"}
	Accessibilities = []string{"wheelchair", "stroller", "none"}
	SurfaceTypes    = []string{"paved", "gravel", "dirt", "boardwalk", "sand", "mixed"}
)

// FilterWarning describes a value dropped during sanitization
type FilterWarning struct {
	Field  FilterField `json:"field"`
	Value  string      `json:"value"`
	Reason string      `json:"reason"`
}

func (w FilterWarning) String() string {
	return fmt.Sprintf("%s=%s dropped: %s", w.Field, w.Value, w.Reason)
}

// Sanitize returns a copy of f with unsupported, out-of-range and unknown
// values removed. Dropped values are reported, never returned as errors.
func (f Filters) Sanitize(caps Capabilities) (Filters, []FilterWarning) {
	s := sanitizer{caps: caps}
	out := Filters{}

	out.DistanceCapMiles = s.positiveFloat(FieldDistanceCap, f.DistanceCapMiles)
	out.DistanceMinMiles = s.positiveFloat(FieldDistanceMin, f.DistanceMinMiles)
	if f.ElevationCapM != nil && s.supported(FieldElevationCap, fmt.Sprint(*f.ElevationCapM)) {
		if *f.ElevationCapM > 0 {
			v := *f.ElevationCapM
			out.ElevationCapM = &v
		} else {
			s.drop(FieldElevationCap, fmt.Sprint(*f.ElevationCapM), "must be positive")
		}
	}

	if f.Difficulty != "" && s.supported(FieldDifficulty, string(f.Difficulty)) {
		if d, ok := ParseDifficulty(string(f.Difficulty)); ok {
			out.Difficulty = d
		} else {
			s.drop(FieldDifficulty, string(f.Difficulty), "unknown difficulty")
		}
	}
	if f.RouteType != "" && s.supported(FieldRouteType, string(f.RouteType)) {
		if r, ok := ParseRouteType(string(f.RouteType)); ok {
			out.RouteType = r
		} else {
			s.drop(FieldRouteType, string(f.RouteType), "unknown route type")
		}
	}

	if len(f.Features) > 0 && s.supported(FieldFeatures, strings.Join(f.Features, ",")) {
		out.Features = normalizeFeatures(f.Features)
	}
	out.DogsAllowed = s.boolean(FieldDogsAllowed, f.DogsAllowed)

	if f.RadiusMiles != nil || f.CenterLat != nil || f.CenterLng != nil {
		out.RadiusMiles, out.CenterLat, out.CenterLng = s.radius(f.RadiusMiles, f.CenterLat, f.CenterLng)
	}

	out.City = s.text(FieldCity, f.City)
	out.County = s.text(FieldCounty, f.County)
	out.State = s.text(FieldState, f.State)
	out.Region = s.text(FieldRegion, f.Region)
	out.ManagingAgency = s.text(FieldManagingAgency, f.ManagingAgency)

	out.ParkingAvailable = s.boolean(FieldParkingAvailable, f.ParkingAvailable)
	out.ParkingType = s.enum(FieldParkingType, f.ParkingType, ParkingTypes)
	out.Restrooms = s.boolean(FieldRestrooms, f.Restrooms)
	out.WaterAvailable = s.boolean(FieldWaterAvailable, f.WaterAvailable)
	out.PicnicAreas = s.boolean(FieldPicnicAreas, f.PicnicAreas)
	out.CampingAvailable = s.boolean(FieldCampingAvailable, f.CampingAvailable)

	out.EntryFee = s.boolean(FieldEntryFee, f.EntryFee)
	out.PermitRequired = s.boolean(FieldPermitRequired, f.PermitRequired)
	out.SeasonalAccess = s.enum(FieldSeasonalAccess, f.SeasonalAccess, SeasonalAccess)
	out.Accessibility = s.enum(FieldAccessibility, f.Accessibility, Accessibilities)

	out.SurfaceType = s.enum(FieldSurfaceType, f.SurfaceType, SurfaceTypes)
	out.TrailMarkers = s.boolean(FieldTrailMarkers, f.TrailMarkers)
	out.LoopTrail = s.boolean(FieldLoopTrail, f.LoopTrail)

	return out, s.warnings
}

type sanitizer struct {
	caps     Capabilities
	warnings []FilterWarning
}

func (s *sanitizer) drop(field FilterField, value, reason string) {
	s.warnings = append(s.warnings, FilterWarning{Field: field, Value: value, Reason: reason})
}

func (s *sanitizer) supported(field FilterField, value string) bool {
	if s.caps.Supports(field) {
		return true
	}
	s.drop(field, value, "not supported by this deployment")
	return false
}

func (s *sanitizer) positiveFloat(field FilterField, v *float64) *float64 {
	if v == nil || !s.supported(field, fmt.Sprint(*v)) {
		return nil
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) || *v <= 0 {
		s.drop(field, fmt.Sprint(*v), "must be positive")
		return nil
	}
	out := *v
	return &out
}

func (s *sanitizer) boolean(field FilterField, v *bool) *bool {
	if v == nil || !s.supported(field, fmt.Sprint(*v)) {
		return nil
	}
	out := *v
	return &out
}

func (s *sanitizer) text(field FilterField, v string) string {
	v = strings.TrimSpace(v)
	if v == "" || !s.supported(field, v) {
		return ""
	}
	return v
}

func (s *sanitizer) enum(field FilterField, v string, allowed []string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" || !s.supported(field, v) {
		return ""
	}
	for _, a := range allowed {
		if a == v {
			return v
		}
	}
	s.drop(field, v, "unknown value")
	return ""
}

func (s *sanitizer) radius(radius, lat, lng *float64) (*float64, *float64, *float64) {
	value := fmt.Sprintf("%v@%v,%v", deref(radius), deref(lat), deref(lng))
	if !s.supported(FieldRadius, value) {
		return nil, nil, nil
	}
	switch {
	case radius == nil || lat == nil || lng == nil:
		s.drop(FieldRadius, value, "radius needs a center point and a distance")
	case math.IsNaN(*radius) || math.IsInf(*radius, 0) || *radius <= 0:
		s.drop(FieldRadius, value, "radius must be positive")
	case math.IsNaN(*lat) || *lat < -90 || *lat > 90:
		s.drop(FieldRadius, value, "center latitude out of range")
	case math.IsNaN(*lng) || *lng < -180 || *lng > 180:
		s.drop(FieldRadius, value, "center longitude out of range")
	default:
		r, la, ln := *radius, *lat, *lng
		return &r, &la, &ln
	}
	return nil, nil, nil
}

func deref(v *float64) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprint(*v)
}

func normalizeFeatures(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, f := range in {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// BrowseFilter represents query parameters for the browse listing
type BrowseFilter struct {
	Area  string `form:"area"`
	Limit int    `form:"limit"`
}
