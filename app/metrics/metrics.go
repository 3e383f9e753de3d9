// Package metrics exposes Prometheus counters for feed conversions.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is implemented by Collector and used by the HTTP handlers.
type Recorder interface {
	RecordConversion(source, target string)
	RecordParseFailure()
	RecordLatency(duration time.Duration)
}

type Collector struct {
	conversions *prometheus.CounterVec
	parseFail   prometheus.Counter
	latency     prometheus.Histogram
}

var _ Recorder = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "syndication_conversions_total",
			Help: "Number of converted documents by source and target format",
		}, []string{"source", "target"}),
		parseFail: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "syndication_parse_fail_total",
			Help: "Number of documents recognized as neither Atom nor RSS",
		}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "syndication_conversion_latency_seconds",
			Help:    "Time spent parsing and serializing a document",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.conversions,
		c.parseFail,
		c.latency,
	)

	return c
}

func (c *Collector) RecordConversion(source, target string) {
	c.conversions.WithLabelValues(source, target).Inc()
}

func (c *Collector) RecordParseFailure() {
	c.parseFail.Inc()
}

func (c *Collector) RecordLatency(duration time.Duration) {
	c.latency.Observe(duration.Seconds())
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards everything. It is used when metrics are disabled.
type Nop struct{}

func (Nop) RecordConversion(string, string) {}
func (Nop) RecordParseFailure()             {}
func (Nop) RecordLatency(time.Duration)     {}
