package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/trails-backend-go/internal/database"
	"github.com/jengzang/trails-backend-go/internal/extract"
	"github.com/jengzang/trails-backend-go/internal/models"
	"github.com/jengzang/trails-backend-go/internal/observability"
	"github.com/jengzang/trails-backend-go/internal/repository"
	"github.com/jengzang/trails-backend-go/internal/search"
)

func ptr[T any](v T) *T { return &v }

// memStore is an in-memory TrailStore
type memStore struct {
	trails []models.Trail
	err    error
}

func (m *memStore) ListTrails(context.Context) ([]models.Trail, error) { return m.trails, m.err }

func (m *memStore) GetTrailByID(_ context.Context, id int64) (*models.Trail, error) {
	for i := range m.trails {
		if m.trails[i].ID == id {
			return &m.trails[i], nil
		}
	}
	return nil, repository.ErrTrailNotFound
}

func (m *memStore) Count(context.Context) (int, error) { return len(m.trails), m.err }

func (m *memStore) ReplaceAll(_ context.Context, trails []models.Trail) error {
	m.trails = append([]models.Trail(nil), trails...)
	return m.err
}

// stubExtractor returns a fixed result or error
type stubExtractor struct {
	res *extract.Result
	err error
}

func (s stubExtractor) Extract(context.Context, string) (*extract.Result, error) { return s.res, s.err }

func testTrails() []models.Trail {
	return []models.Trail{
		{ID: 1, Name: "Lakefront", DistanceKm: 3.2, Difficulty: models.DifficultyEasy, DogsAllowed: true,
			RouteType: models.RouteLoop, Features: []string{"lake"}, Latitude: 41.8819, Longitude: -87.6278,
			State: ptr("Illinois")},
		{ID: 2, Name: "Devil's Lake", DistanceKm: 12.4, ElevationGainM: 380, Difficulty: models.DifficultyHard,
			DogsAllowed: true, RouteType: models.RouteLoop, Features: []string{"lake", "bluff"},
			Latitude: 43.4221, Longitude: -89.7251, State: ptr("Wisconsin")},
		{ID: 3, Name: "Riverwalk", DistanceKm: 2.4, Difficulty: models.DifficultyEasy, DogsAllowed: false,
			RouteType: models.RouteOutAndBack, Features: []string{"river"}, Latitude: 41.8887, Longitude: -87.6233,
			State: ptr("Illinois")},
	}
}

func newTestService(t *testing.T, store TrailStore, opts ...Option) (*TrailService, *observability.Metrics) {
	t.Helper()
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	opts = append([]Option{WithMetrics(metrics), WithClock(clockwork.NewFakeClock())}, opts...)
	return NewTrailService(store, search.DefaultOptions(), opts...), metrics
}

func TestSearch(t *testing.T) {
	svc, metrics := newTestService(t, &memStore{trails: testTrails()})

	resp, err := svc.Search(context.Background(), models.Filters{
		Difficulty:  models.DifficultyEasy,
		DogsAllowed: ptr(true),
		RadiusMiles: ptr(5.0),
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "Lakefront", resp.Results[0].Name)
	assert.Contains(t, resp.Results[0].Explanation, "dog-friendly")

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Searches.WithLabelValues(observability.KindSearch, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.DroppedFilters.WithLabelValues(string(models.FieldRadius))))
}

func TestSearchStoreError(t *testing.T) {
	svc, metrics := newTestService(t, &memStore{err: errors.New("locked")})
	_, err := svc.Search(context.Background(), models.Filters{})
	assert.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Searches.WithLabelValues(observability.KindSearch, "error")))
}

func TestChatUsesExtractor(t *testing.T) {
	llm := stubExtractor{res: &extract.Result{
		Source:  extract.SourceLLM,
		Filters: models.Filters{State: "Wisconsin", Features: []string{"views"}},
		Steps:   []string{"model extracted 2 fields"},
	}}
	svc, metrics := newTestService(t, &memStore{trails: testTrails()}, WithExtractor(llm))
	require.True(t, svc.LLMEnabled())

	resp, err := svc.Chat(context.Background(), "scenic views in wisconsin", "req-1")
	require.NoError(t, err)

	assert.Equal(t, "Found 1 trail matching your criteria.", resp.Content)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, int64(2), resp.Results[0].ID)
	assert.Equal(t, "req-1", resp.RequestID)
	assert.Equal(t, "Wisconsin", resp.ParsedFilters.State)

	require.Len(t, resp.ToolTraces, 1)
	trace := resp.ToolTraces[0]
	assert.Equal(t, "search_trails", trace.Tool)
	assert.Equal(t, extract.SourceLLM, trace.ExtractedBy)
	assert.Equal(t, 1, trace.ResultCount)
	assert.True(t, trace.Success)
	assert.Empty(t, trace.Errors)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Extractions.WithLabelValues(extract.SourceLLM, "success")))
}

func TestChatFallsBackToKeywords(t *testing.T) {
	llm := stubExtractor{err: extract.ErrExtractionFailed}
	svc, metrics := newTestService(t, &memStore{trails: testTrails()}, WithExtractor(llm))

	resp, err := svc.Chat(context.Background(), "easy trails near Chicago", "req-2")
	require.NoError(t, err)

	trace := resp.ToolTraces[0]
	assert.Equal(t, extract.SourceKeyword, trace.ExtractedBy)
	require.Len(t, trace.Errors, 1)
	assert.Equal(t, "Found 2 trails matching your criteria.", resp.Content)
	assert.Equal(t, []int64{3, 1}, []int64{resp.Results[0].ID, resp.Results[1].ID})
	for _, r := range resp.Results {
		require.NotNil(t, r.DistanceFromCenterMiles)
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Extractions.WithLabelValues(extract.SourceLLM, "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Extractions.WithLabelValues(extract.SourceKeyword, "success")))
}

func TestChatNoResults(t *testing.T) {
	svc, _ := newTestService(t, &memStore{trails: testTrails()})
	require.False(t, svc.LLMEnabled())

	resp, err := svc.Chat(context.Background(), "hard canyon hikes", "")
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
	assert.Contains(t, resp.Content, "No trails found matching your search for trails hard difficulty, with features: canyon.")
	assert.Contains(t, resp.Content, "1. Try searching for moderate difficulty trails instead")
}

func TestParse(t *testing.T) {
	svc, _ := newTestService(t, &memStore{})
	resp, err := svc.Parse(context.Background(), "loop trails near chicago")
	require.NoError(t, err)
	assert.Equal(t, extract.SourceKeyword, resp.ExtractedBy)
	assert.Equal(t, models.RouteLoop, resp.Sanitized.RouteType)
	assert.True(t, resp.Sanitized.HasRadius())
	assert.Empty(t, resp.Warnings)
}

func TestBrowse(t *testing.T) {
	svc, _ := newTestService(t, &memStore{trails: testTrails()})

	resp, err := svc.Browse(context.Background(), models.BrowseFilter{Area: " illinois "})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "illinois", resp.Area)
	assert.Equal(t, DefaultBrowseLimit, resp.Limit)
	assert.InDelta(t, 1.49, resp.Data[0].DistanceMiles, 0.01)

	resp, err = svc.Browse(context.Background(), models.BrowseFilter{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Count)
}

func TestClampBrowseLimit(t *testing.T) {
	assert.Equal(t, 50, ClampBrowseLimit(0))
	assert.Equal(t, 50, ClampBrowseLimit(-3))
	assert.Equal(t, 7, ClampBrowseLimit(7))
	assert.Equal(t, 100, ClampBrowseLimit(500))
}

func TestGetTrail(t *testing.T) {
	svc, _ := newTestService(t, &memStore{trails: testTrails()})

	d, err := svc.GetTrail(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Devil's Lake", d.Name)
	assert.InDelta(t, 7.705, d.DistanceMiles, 0.001)

	_, err = svc.GetTrail(context.Background(), 42)
	assert.ErrorIs(t, err, ErrTrailNotFound)
}

func TestSeedAndHealthWithSQLite(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(ctx, database.Config{Path: ":memory:"}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.NewMigrationManager(db, nil).RunMigrations(ctx))

	svc, metrics := newTestService(t, repository.NewTrailRepository(db))

	health, err := svc.Health(ctx)
	require.NoError(t, err)
	assert.Zero(t, health.TrailsCount)

	seeded, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 70, seeded.TrailsCount)
	assert.Equal(t, 70.0, testutil.ToFloat64(metrics.TrailsLoaded))

	health, err = svc.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, 70, health.TrailsCount)
	assert.Equal(t, "ok", health.Status)

	resp, err := svc.Search(ctx, models.Filters{Difficulty: models.DifficultyEasy, DogsAllowed: ptr(true)})
	require.NoError(t, err)
	require.NotZero(t, resp.Count)
	assert.LessOrEqual(t, resp.Count, search.DefaultOptions().MaxResults)
	for _, r := range resp.Results {
		assert.Equal(t, models.DifficultyEasy, r.Difficulty)
		assert.True(t, r.DogsAllowed)
		assert.LessOrEqual(t, len([]rune(r.DescriptionSnippet)), 203)
	}
}

func TestChatTraceDuration(t *testing.T) {
	clock := clockwork.NewFakeClock()
	slow := slowExtractor{clock: clock, delay: 250 * time.Millisecond}
	svc, _ := newTestService(t, &memStore{trails: testTrails()}, WithExtractor(slow), WithClock(clock))

	resp, err := svc.Chat(context.Background(), "anything", "")
	require.NoError(t, err)
	assert.Equal(t, int64(250), resp.ToolTraces[0].DurationMs)
}

// slowExtractor advances a fake clock to simulate model latency
type slowExtractor struct {
	clock *clockwork.FakeClock
	delay time.Duration
}

func (s slowExtractor) Extract(context.Context, string) (*extract.Result, error) {
	s.clock.Advance(s.delay)
	return &extract.Result{Source: extract.SourceLLM}, nil
}
