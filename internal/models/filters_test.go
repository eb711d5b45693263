package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestSanitizeKeepsValidValues(t *testing.T) {
	in := Filters{
		DistanceCapMiles: ptr(5.0),
		ElevationCapM:    ptr(300),
		Difficulty:       " Easy ",
		RouteType:        "out and back",
		Features:         []string{" Lake", "lake", "", "Forest"},
		DogsAllowed:      ptr(false),
		RadiusMiles:      ptr(25.0),
		CenterLat:        ptr(41.8781),
		CenterLng:        ptr(-87.6298),
		State:            "  Illinois ",
		ParkingType:      "Free",
		SurfaceType:      "gravel",
	}

	out, warnings := in.Sanitize(nil)
	assert.Empty(t, warnings)
	assert.Equal(t, 5.0, *out.DistanceCapMiles)
	assert.Equal(t, 300, *out.ElevationCapM)
	assert.Equal(t, DifficultyEasy, out.Difficulty)
	assert.Equal(t, RouteOutAndBack, out.RouteType)
	assert.Equal(t, []string{"lake", "forest"}, out.Features)
	assert.False(t, *out.DogsAllowed)
	assert.True(t, out.HasRadius())
	assert.Equal(t, "Illinois", out.State)
	assert.Equal(t, "free", out.ParkingType)
	assert.Equal(t, "gravel", out.SurfaceType)
}

func TestSanitizeDoesNotAliasInput(t *testing.T) {
	in := Filters{DistanceCapMiles: ptr(5.0)}
	out, _ := in.Sanitize(nil)
	*out.DistanceCapMiles = 9
	assert.Equal(t, 5.0, *in.DistanceCapMiles)
}

func TestSanitizeDropsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		in    Filters
		field FilterField
	}{
		{"zero distance cap", Filters{DistanceCapMiles: ptr(0.0)}, FieldDistanceCap},
		{"negative distance floor", Filters{DistanceMinMiles: ptr(-2.0)}, FieldDistanceMin},
		{"nan distance cap", Filters{DistanceCapMiles: ptr(math.NaN())}, FieldDistanceCap},
		{"zero elevation", Filters{ElevationCapM: ptr(0)}, FieldElevationCap},
		{"unknown difficulty", Filters{Difficulty: "extreme"}, FieldDifficulty},
		{"unknown route", Filters{RouteType: "lollipop"}, FieldRouteType},
		{"radius without center", Filters{RadiusMiles: ptr(10.0)}, FieldRadius},
		{"center without radius", Filters{CenterLat: ptr(41.0), CenterLng: ptr(-87.0)}, FieldRadius},
		{"negative radius", Filters{RadiusMiles: ptr(-1.0), CenterLat: ptr(41.0), CenterLng: ptr(-87.0)}, FieldRadius},
		{"latitude out of range", Filters{RadiusMiles: ptr(1.0), CenterLat: ptr(91.0), CenterLng: ptr(-87.0)}, FieldRadius},
		{"longitude out of range", Filters{RadiusMiles: ptr(1.0), CenterLat: ptr(41.0), CenterLng: ptr(-181.0)}, FieldRadius},
		{"unknown parking type", Filters{ParkingType: "valet"}, FieldParkingType},
		{"unknown surface", Filters{SurfaceType: "lava"}, FieldSurfaceType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, warnings := tt.in.Sanitize(nil)
			require.Len(t, warnings, 1)
			assert.Equal(t, tt.field, warnings[0].Field)
			assert.Equal(t, Filters{}, out)
		})
	}
}

func TestSanitizeCapabilities(t *testing.T) {
	caps := AllCapabilities().Without(FieldRadius, FieldDogsAllowed)
	in := Filters{
		DogsAllowed: ptr(true),
		RadiusMiles: ptr(10.0),
		CenterLat:   ptr(41.0),
		CenterLng:   ptr(-87.0),
		Difficulty:  DifficultyHard,
	}

	out, warnings := in.Sanitize(caps)
	require.Len(t, warnings, 2)
	assert.Equal(t, FieldDogsAllowed, warnings[0].Field)
	assert.Equal(t, FieldRadius, warnings[1].Field)
	assert.Nil(t, out.DogsAllowed)
	assert.False(t, out.HasRadius())
	assert.Equal(t, DifficultyHard, out.Difficulty)
}

func TestCapabilities(t *testing.T) {
	var all Capabilities
	assert.True(t, all.Supports(FieldLoopTrail))

	caps := all.Without(FieldLoopTrail)
	assert.False(t, caps.Supports(FieldLoopTrail))
	assert.True(t, caps.Supports(FieldCity))
	assert.Len(t, caps, len(AllFilterFields)-1)

	// Without copies
	narrower := caps.Without(FieldCity)
	assert.True(t, caps.Supports(FieldCity))
	assert.False(t, narrower.Supports(FieldCity))
}

func TestParseFilterField(t *testing.T) {
	f, err := ParseFilterField(" Surface_Type ")
	require.NoError(t, err)
	assert.Equal(t, FieldSurfaceType, f)

	_, err = ParseFilterField("color")
	assert.Error(t, err)
}

func TestFilterWarningString(t *testing.T) {
	w := FilterWarning{Field: FieldDifficulty, Value: "extreme", Reason: "unknown difficulty"}
	assert.Equal(t, "difficulty=extreme dropped: unknown difficulty", w.String())
}
