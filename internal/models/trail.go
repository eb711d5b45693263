package models

import (
	"fmt"
	"strings"
)

// Difficulty is the effort rating of a trail
type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyModerate Difficulty = "moderate"
	DifficultyHard     Difficulty = "hard"
)

// ParseDifficulty normalizes s and reports whether it names a known difficulty
func ParseDifficulty(s string) (Difficulty, bool) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case DifficultyEasy, DifficultyModerate, DifficultyHard:
		return d, true
	}
	return "", false
}

// RouteType is the shape of a trail route
type RouteType string

const (
	RouteLoop       RouteType = "loop"
	RouteOutAndBack RouteType = "out_and_back"
)

// ParseRouteType accepts the spellings the seed data and the extractor produce
// ("out and back", "out-and-back", "out_and_back").
func ParseRouteType(s string) (RouteType, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	switch RouteType(norm) {
	case RouteLoop:
		return RouteLoop, true
	case RouteOutAndBack:
		return RouteOutAndBack, true
	}
	return "", false
}

// Label returns the human readable form used in explanations
func (r RouteType) Label() string {
	return strings.ReplaceAll(string(r), "_", " ")
}

// Trail is a single hiking trail. Records are loaded once and never mutated.
type Trail struct {
	ID             int64      `json:"id" yaml:"id" db:"id"`
	Name           string     `json:"name" yaml:"name" db:"name"`
	DistanceKm     float64    `json:"distanceKm" yaml:"distance_km" db:"distance_km"`
	ElevationGainM int        `json:"elevationGainM" yaml:"elevation_gain_m" db:"elevation_gain_m"`
	Difficulty     Difficulty `json:"difficulty" yaml:"difficulty" db:"difficulty"`
	DogsAllowed    bool       `json:"dogsAllowed" yaml:"dogs_allowed" db:"dogs_allowed"`
	RouteType      RouteType  `json:"routeType" yaml:"route_type" db:"route_type"`
	Features       []string   `json:"features" yaml:"features" db:"features"` // lowercase tags
	Latitude       float64    `json:"latitude" yaml:"latitude" db:"latitude"`
	Longitude      float64    `json:"longitude" yaml:"longitude" db:"longitude"`
	Description    string     `json:"description" yaml:"description" db:"description"`

	// Location
	City    *string `json:"city,omitempty" yaml:"city,omitempty" db:"city"`
	County  *string `json:"county,omitempty" yaml:"county,omitempty" db:"county"`
	State   *string `json:"state,omitempty" yaml:"state,omitempty" db:"state"`
	Region  *string `json:"region,omitempty" yaml:"region,omitempty" db:"region"`
	Country *string `json:"country,omitempty" yaml:"country,omitempty" db:"country"`

	Amenities `yaml:",inline"`
}

// Amenities holds the optional access and facility attributes of a trail.
// A nil field means the attribute is unknown.
type Amenities struct {
	ParkingAvailable *bool   `json:"parkingAvailable,omitempty" yaml:"parking_available,omitempty" db:"parking_available"`
	ParkingType      *string `json:"parkingType,omitempty" yaml:"parking_type,omitempty" db:"parking_type"` // free, paid, limited, street
	Restrooms        *bool   `json:"restrooms,omitempty" yaml:"restrooms,omitempty" db:"restrooms"`
	WaterAvailable   *bool   `json:"waterAvailable,omitempty" yaml:"water_available,omitempty" db:"water_available"`
	PicnicAreas      *bool   `json:"picnicAreas,omitempty" yaml:"picnic_areas,omitempty" db:"picnic_areas"`
	CampingAvailable *bool   `json:"campingAvailable,omitempty" yaml:"camping_available,omitempty" db:"camping_available"`

	EntryFee       *bool   `json:"entryFee,omitempty" yaml:"entry_fee,omitempty" db:"entry_fee"`
	PermitRequired *bool   `json:"permitRequired,omitempty" yaml:"permit_required,omitempty" db:"permit_required"`
	SeasonalAccess *string `json:"seasonalAccess,omitempty" yaml:"seasonal_access,omitempty" db:"seasonal_access"` // year-round, seasonal, summer, winter
	Accessibility  *string `json:"accessibility,omitempty" yaml:"accessibility,omitempty" db:"accessibility"`     // wheelchair, stroller, none

	SurfaceType  *string `json:"surfaceType,omitempty" yaml:"surface_type,omitempty" db:"surface_type"` // paved, gravel, dirt, boardwalk, sand, mixed
	TrailMarkers *bool   `json:"trailMarkers,omitempty" yaml:"trail_markers,omitempty" db:"trail_markers"`
	LoopTrail    *bool   `json:"loopTrail,omitempty" yaml:"loop_trail,omitempty" db:"loop_trail"`

	ManagingAgency *string `json:"managingAgency,omitempty" yaml:"managing_agency,omitempty" db:"managing_agency"`
	WebsiteURL     *string `json:"websiteUrl,omitempty" yaml:"website_url,omitempty" db:"website_url"`
	PhoneNumber    *string `json:"phoneNumber,omitempty" yaml:"phone_number,omitempty" db:"phone_number"`
}

// FeatureText is the comma-joined tag list the feature predicates match against
func (t *Trail) FeatureText() string {
	return strings.Join(t.Features, ",")
}

// HasFeature reports an exact tag match
func (t *Trail) HasFeature(tag string) bool {
	for _, f := range t.Features {
		if f == tag {
			return true
		}
	}
	return false
}

// TrailDetail is the full record returned by the detail lookup
type TrailDetail struct {
	Trail
	DistanceMiles float64 `json:"distanceMiles"`
}

// TrailsResponse represents a browse listing
type TrailsResponse struct {
	Data  []TrailDetail `json:"data"`
	Count int           `json:"count"`
	Area  string        `json:"area,omitempty"`
	Limit int           `json:"limit"`
}

// Validate checks the record invariants enforced at load time
func (t *Trail) Validate() error {
	if t.DistanceKm < 0 {
		return fmt.Errorf("trail %d: negative distance %v", t.ID, t.DistanceKm)
	}
	if t.ElevationGainM < 0 {
		return fmt.Errorf("trail %d: negative elevation gain %d", t.ID, t.ElevationGainM)
	}
	if _, ok := ParseDifficulty(string(t.Difficulty)); !ok {
		return fmt.Errorf("trail %d: unknown difficulty %q", t.ID, t.Difficulty)
	}
	if _, ok := ParseRouteType(string(t.RouteType)); !ok {
		return fmt.Errorf("trail %d: unknown route type %q", t.ID, t.RouteType)
	}
	if t.Latitude < -90 || t.Latitude > 90 {
		return fmt.Errorf("trail %d: latitude %v out of range", t.ID, t.Latitude)
	}
	if t.Longitude < -180 || t.Longitude > 180 {
		return fmt.Errorf("trail %d: longitude %v out of range", t.ID, t.Longitude)
	}
	return nil
}
