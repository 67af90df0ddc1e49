package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	reykunyu "github.com/Willem3141/navi-reykunyu-sub001"
)

type metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	lookups  *prometheus.CounterVec
	reloads  *prometheus.CounterVec
}

func newMetrics(r *reykunyu.Reykunyu) *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reykunyu_http_requests_total",
			Help: "HTTP requests by route and status code.",
		}, []string{"route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "reykunyu_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reykunyu_lookup_words_total",
			Help: "Looked-up words by whether any entry was found.",
		}, []string{"outcome"}),
		reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reykunyu_dictionary_reloads_total",
			Help: "Dictionary reloads by result.",
		}, []string{"result"}),
	}
	entries := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "reykunyu_dictionary_entries",
		Help: "Number of entries in the current dictionary snapshot.",
	}, func() float64 {
		return float64(r.Dictionary().Len())
	})
	m.registry.MustRegister(m.requests, m.duration, m.lookups, m.reloads, entries)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *metrics) observeLookup(results []reykunyu.WordResults) {
	for _, res := range results {
		outcome := "found"
		if len(res.Results) == 0 {
			outcome = "empty"
		}
		m.lookups.WithLabelValues(outcome).Inc()
	}
}
