package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/trails-backend-go/internal/models"
	"github.com/jengzang/trails-backend-go/internal/spatial"
)

var chicago = spatial.Point{Lat: 41.8781, Lng: -87.6298}

func TestFilterByRadiusKeepsOrderAndDistance(t *testing.T) {
	resolved := Resolve(models.Filters{}, fixtureTrails(), 0)
	got := FilterByRadius(resolved, chicago, 25)

	var gotIDs []int64
	for _, m := range got {
		gotIDs = append(gotIDs, m.Trail.ID)
		require.NotNil(t, m.DistanceFromCenter)
		assert.LessOrEqual(t, *m.DistanceFromCenter, 25.0)
	}
	// Starved Rock and Devil's Lake are far outside 25 miles
	assert.Equal(t, []int64{4, 1, 7, 5}, gotIDs)
}

func TestFilterByRadiusIsInclusive(t *testing.T) {
	trail := models.Trail{ID: 1, Latitude: 41.9781, Longitude: -87.6298}
	d := spatial.DistanceMiles(chicago, spatial.Point{Lat: trail.Latitude, Lng: trail.Longitude})

	got := FilterByRadius([]models.Trail{trail}, chicago, d)
	require.Len(t, got, 1)
	assert.InDelta(t, d, *got[0].DistanceFromCenter, 1e-9)

	assert.Empty(t, FilterByRadius([]models.Trail{trail}, chicago, d-1e-6))
}

func TestApplyGeoFilterSkipsWithoutFullRadius(t *testing.T) {
	trails := fixtureTrails()
	got := applyGeoFilter(trails, models.Filters{RadiusMiles: ptr(1.0)})
	require.Len(t, got, len(trails))
	for _, m := range got {
		assert.Nil(t, m.DistanceFromCenter)
	}
}
