package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Web server metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "e2a_http_requests_total",
		Help: "Total HTTP requests by route, method, and status code",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "e2a_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"route", "method"})

	RateLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "e2a_rate_limit_hits_total",
		Help: "Total rate limit rejections",
	})
)

// Conversion metrics.
var (
	ConversionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "e2a_conversions_total",
		Help: "CSV conversions by result",
	}, []string{"result"})

	ConversionRows = promauto.NewCounter(prometheus.CounterOpts{
		Name: "e2a_conversion_rows_total",
		Help: "Total rows converted",
	})

	ConversionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "e2a_conversion_duration_seconds",
		Help:    "Duration of one CSV conversion",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	})

	KanaLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "e2a_kana_lookups_total",
		Help: "Kana resolutions by source (override_jp, override_en, partial, fallback, person_full)",
	}, []string{"source"})

	DictReloadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "e2a_dict_reloads_total",
		Help: "Dictionary hot reloads",
	})
)
