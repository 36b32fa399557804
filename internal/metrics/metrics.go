// Package metrics exposes shortener counters in the Prometheus format.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	RedirectFound    = "found"
	RedirectNotFound = "not_found"
)

// Metrics owns its registry, so several instances can live in one process.
type Metrics struct {
	registry        *prometheus.Registry
	urlsCreated     prometheus.Counter
	redirects       *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		urlsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shortener_urls_created_total",
			Help: "Number of short URLs created.",
		}),
		redirects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shortener_redirects_total",
			Help: "Number of short URL lookups by result.",
		}, []string{"result"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "shortener_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "status"}),
	}
	m.registry.MustRegister(
		m.urlsCreated,
		m.redirects,
		m.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) URLCreated() {
	m.urlsCreated.Inc()
}

func (m *Metrics) Redirect(result string) {
	m.redirects.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveRequest(method string, status int, d time.Duration) {
	m.requestDuration.WithLabelValues(method, strconv.Itoa(status)).Observe(d.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
