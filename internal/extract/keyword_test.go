package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/trails-backend-go/internal/models"
)

func TestKeywordParser(t *testing.T) {
	p := NewKeywordParser()

	res, err := p.Extract(context.Background(), "Easy dog-friendly loop near Chicago under 5 miles with lake views")
	require.NoError(t, err)
	f := res.Filters

	assert.Equal(t, SourceKeyword, res.Source)
	assert.Equal(t, models.DifficultyEasy, f.Difficulty)
	assert.Equal(t, models.RouteLoop, f.RouteType)
	require.NotNil(t, f.DogsAllowed)
	assert.True(t, *f.DogsAllowed)
	require.NotNil(t, f.DistanceCapMiles)
	assert.Equal(t, 5.0, *f.DistanceCapMiles)
	assert.Equal(t, []string{"lake", "views"}, f.Features)

	require.True(t, f.HasRadius())
	assert.Equal(t, KeywordRadiusMiles, *f.RadiusMiles)
	assert.Equal(t, ChicagoLng, *f.CenterLng)
}

func TestKeywordParserOtherCitySuppressesChicago(t *testing.T) {
	res, err := NewKeywordParser().Extract(context.Background(), "between chicago and milwaukee")
	require.NoError(t, err)
	assert.False(t, res.Filters.HasRadius())
	assert.Nil(t, res.Filters.RadiusMiles)
}

func TestKeywordParserPhrases(t *testing.T) {
	tests := []struct {
		text  string
		check func(t *testing.T, f models.Filters)
	}{
		{"out and back hikes over 6.5 miles", func(t *testing.T, f models.Filters) {
			assert.Equal(t, models.RouteOutAndBack, f.RouteType)
			require.NotNil(t, f.DistanceMinMiles)
			assert.Equal(t, 6.5, *f.DistanceMinMiles)
			assert.Nil(t, f.DistanceCapMiles)
		}},
		{"waterfalls in Wisconsin", func(t *testing.T, f models.Filters) {
			assert.Equal(t, "Wisconsin", f.State)
			assert.Equal(t, []string{"waterfalls"}, f.Features)
		}},
		{"a hard canyon trail", func(t *testing.T, f models.Filters) {
			assert.Equal(t, models.DifficultyHard, f.Difficulty)
			assert.Equal(t, []string{"canyon"}, f.Features)
		}},
		{"no more than 3 miles", func(t *testing.T, f models.Filters) {
			require.NotNil(t, f.DistanceCapMiles)
			assert.Equal(t, 3.0, *f.DistanceCapMiles)
			assert.Nil(t, f.DistanceMinMiles)
		}},
		{"easy loop where no dogs are allowed", func(t *testing.T, f models.Filters) {
			require.NotNil(t, f.DogsAllowed)
			assert.False(t, *f.DogsAllowed)
			assert.Equal(t, models.RouteLoop, f.RouteType)
		}},
		{"trails without dogs near chicago", func(t *testing.T, f models.Filters) {
			require.NotNil(t, f.DogsAllowed)
			assert.False(t, *f.DogsAllowed)
			assert.True(t, f.HasRadius())
		}},
		{"dogs aren't allowed please", func(t *testing.T, f models.Filters) {
			require.NotNil(t, f.DogsAllowed)
			assert.False(t, *f.DogsAllowed)
		}},
		{"no more than 3 miles so I can bring my dog", func(t *testing.T, f models.Filters) {
			require.NotNil(t, f.DogsAllowed)
			assert.True(t, *f.DogsAllowed)
			require.NotNil(t, f.DistanceCapMiles)
			assert.Equal(t, 3.0, *f.DistanceCapMiles)
		}},
		{"something nice", func(t *testing.T, f models.Filters) {
			assert.Equal(t, models.Filters{}, f)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			res, err := NewKeywordParser().Extract(context.Background(), tt.text)
			require.NoError(t, err)
			tt.check(t, res.Filters)
		})
	}
}

func TestApplyLocation(t *testing.T) {
	var f models.Filters
	assert.Empty(t, applyLocation(&f, "  ", 50))
	assert.Contains(t, applyLocation(&f, "Denver", 50), "not mapped")
	assert.Equal(t, models.Filters{}, f)

	assert.Contains(t, applyLocation(&f, "Ohio", 50), "state")
	assert.Equal(t, "Ohio", f.State)
}
