// Package metrics holds the Prometheus collectors exported on /metrics.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Source labels for SourceFailed.
const (
	SourceDictionary  = "dictionary"
	SourceTranslation = "translation"
	SourceCache       = "cache"
)

// Metrics groups the application collectors.
type Metrics struct {
	lookups        *prometheus.CounterVec
	lookupDuration prometheus.Histogram
	sourceFailures *prometheus.CounterVec
	notionSaves    *prometheus.CounterVec
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wordmate_lookups_total",
				Help: "Total number of lookups by outcome",
			},
			[]string{"outcome"},
		),
		lookupDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "wordmate_lookup_duration_seconds",
				Help:    "Duration of complete lookups",
				Buckets: prometheus.DefBuckets,
			},
		),
		sourceFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wordmate_source_failures_total",
				Help: "Lookup sources that failed and were degraded",
			},
			[]string{"source"},
		),
		notionSaves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wordmate_notion_saves_total",
				Help: "Notion page creations by outcome",
			},
			[]string{"outcome"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wordmate_http_requests_total",
				Help: "HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wordmate_http_request_duration_seconds",
				Help:    "HTTP request latency by route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
	}

	reg.MustRegister(
		m.lookups,
		m.lookupDuration,
		m.sourceFailures,
		m.notionSaves,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

// ObserveLookup records a finished lookup.
func (m *Metrics) ObserveLookup(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(outcome).Inc()
	m.lookupDuration.Observe(d.Seconds())
}

// SourceFailed records a degraded lookup source.
func (m *Metrics) SourceFailed(source string) {
	if m == nil {
		return
	}
	m.sourceFailures.WithLabelValues(source).Inc()
}

// NotionSave records a Notion save attempt.
func (m *Metrics) NotionSave(outcome string) {
	if m == nil {
		return
	}
	m.notionSaves.WithLabelValues(outcome).Inc()
}

// ObserveHTTP records a served HTTP request.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(d.Seconds())
}
