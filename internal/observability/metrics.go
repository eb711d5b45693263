package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Search kinds used as metric labels
const (
	KindSearch = "search"
	KindChat   = "chat"
	KindBrowse = "browse"
)

// Metrics holds the Prometheus collectors for the trail search service.
type Metrics struct {
	Searches       *prometheus.CounterVec   // labels: kind={search,chat,browse}, outcome={ok,empty,error}
	SearchResults  *prometheus.HistogramVec // labels: kind
	SearchDuration *prometheus.HistogramVec // labels: kind
	Extractions    *prometheus.CounterVec   // labels: source={llm,keyword}, outcome={success,error}
	DroppedFilters *prometheus.CounterVec   // labels: field
	TrailsLoaded   prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
// Pass prometheus.NewRegistry() in tests to avoid duplicate registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "trails",
			Name:      "searches_total",
			Help:      "Searches served by kind and outcome.",
		}, []string{"kind", "outcome"}),
		SearchResults: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "trails",
			Name:      "search_results",
			Help:      "Number of trails returned per search.",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
		}, []string{"kind"}),
		SearchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "trails",
			Name:      "search_duration_seconds",
			Help:      "End-to-end search latency, extraction included.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}, []string{"kind"}),
		Extractions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "trails",
			Name:      "extractions_total",
			Help:      "Filter extractions by source and outcome.",
		}, []string{"source", "outcome"}),
		DroppedFilters: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "trails",
			Name:      "dropped_filters_total",
			Help:      "Filter values dropped during sanitization, by field.",
		}, []string{"field"}),
		TrailsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "trails",
			Name:      "catalog_size",
			Help:      "Number of trails in the catalog after the last seed.",
		}),
	}

	if reg != nil {
		reg.MustRegister(
			m.Searches,
			m.SearchResults,
			m.SearchDuration,
			m.Extractions,
			m.DroppedFilters,
			m.TrailsLoaded,
		)
	}

	return m
}
