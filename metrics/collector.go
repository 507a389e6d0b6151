// Package metrics exposes search engine counters to Prometheus.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ItamiOfficial/BytesPathfinder/pathfind"
)

// Collector translates pathfind run statistics into Prometheus series. It
// implements pathfind.Observer; attach it to searches with
// pathfind.WithObserver.
type Collector struct {
	searches  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	extracted *prometheus.HistogramVec
	relaxed   *prometheus.HistogramVec
}

// NewCollector registers the search metrics with reg and returns the
// collector. A nil reg falls back to the default registerer. Register at
// most one Collector per registry; a second registration panics.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Collector{
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pathfinder_searches_total",
			Help: "Completed searches by algorithm and outcome",
		}, []string{"algorithm", "found"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name: "pathfinder_search_duration_seconds",
			Help: "Wall time per search",
			// single-digit microseconds on toy graphs up to a good fraction
			// of a second on large worlds
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"algorithm"}),
		extracted: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pathfinder_search_extracted_nodes",
			Help:    "Nodes settled per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"algorithm"}),
		relaxed: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pathfinder_search_relaxed_edges",
			Help:    "Accepted cost improvements per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"algorithm"}),
	}
}

// ObserveSearch implements pathfind.Observer.
func (c *Collector) ObserveSearch(algorithm string, st pathfind.Stats) {
	c.searches.WithLabelValues(algorithm, strconv.FormatBool(st.Found)).Inc()
	c.duration.WithLabelValues(algorithm).Observe(st.Duration.Seconds())
	c.extracted.WithLabelValues(algorithm).Observe(float64(st.Extracted))
	c.relaxed.WithLabelValues(algorithm).Observe(float64(st.Relaxed))
}
