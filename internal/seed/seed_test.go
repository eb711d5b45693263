package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/trails-backend-go/internal/models"
)

func TestTrails(t *testing.T) {
	trails, err := Trails()
	require.NoError(t, err)
	require.Len(t, trails, 70)

	first := trails[0]
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, "Lakefront Trail Loop", first.Name)
	assert.Equal(t, models.DifficultyEasy, first.Difficulty)
	assert.Equal(t, models.RouteLoop, first.RouteType)
	assert.Equal(t, []string{"lake", "boardwalk", "urban"}, first.Features)
	require.NotNil(t, first.City)
	assert.Equal(t, "Chicago", *first.City)
	require.NotNil(t, first.ParkingType)
	assert.Equal(t, "free", *first.ParkingType)
	require.NotNil(t, first.EntryFee)
	assert.False(t, *first.EntryFee)

	var outAndBack int
	for _, tr := range trails {
		if tr.RouteType == models.RouteOutAndBack {
			outAndBack++
		}
	}
	assert.Positive(t, outAndBack)
}

func TestParseNormalizesRouteType(t *testing.T) {
	trails, err := Parse([]byte(`
- id: 9
  name: Test
  distance_km: 2
  difficulty: Moderate
  route_type: out and back
  latitude: 41
  longitude: -87
`))
	require.NoError(t, err)
	require.Len(t, trails, 1)
	assert.Equal(t, models.RouteOutAndBack, trails[0].RouteType)
	assert.Equal(t, models.DifficultyModerate, trails[0].Difficulty)
	assert.Nil(t, trails[0].City)
}

func TestParseRejectsBadRecords(t *testing.T) {
	tests := map[string]string{
		"duplicate id": `
- {id: 1, difficulty: easy, route_type: loop}
- {id: 1, difficulty: easy, route_type: loop}`,
		"bad difficulty": `- {id: 1, difficulty: brutal, route_type: loop}`,
		"negative distance": `- {id: 1, distance_km: -3, difficulty: easy, route_type: loop}`,
		"not a list":        `name: nope`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}
