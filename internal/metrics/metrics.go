package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the site's Prometheus collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	Requests       *prometheus.CounterVec
	RenderDuration *prometheus.HistogramVec
	LookupMisses   prometheus.Counter
	Searches       prometheus.Counter
	IndexedItems   prometheus.Gauge
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "apidocs_http_requests_total",
			Help: "Total number of HTTP requests by route and status code",
		}, []string{"route", "code"}),

		RenderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "apidocs_render_duration_seconds",
			Help:    "Time spent rendering documentation pages",
			Buckets: prometheus.DefBuckets,
		}, []string{"view"}),

		LookupMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "apidocs_lookup_misses_total",
			Help: "Total number of item lookups that resolved to nothing",
		}),

		Searches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "apidocs_searches_total",
			Help: "Total number of index searches",
		}),

		IndexedItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "apidocs_indexed_items",
			Help: "Number of items in the search index",
		}),
	}

	m.registry.MustRegister(
		m.Requests,
		m.RenderDuration,
		m.LookupMisses,
		m.Searches,
		m.IndexedItems,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
