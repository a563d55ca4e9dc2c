package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup results used as label values on LookupsTotal.
const (
	ResultFound    = "found"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// Metrics holds the collectors recorded during a store lookup.
type Metrics struct {
	LookupsTotal   *prometheus.CounterVec
	APIErrors      prometheus.Counter
	RequestSeconds *prometheus.HistogramVec
	StoresScanned  prometheus.Counter
	NearestKm      prometheus.Gauge
}

// NewMetrics registers the lookup collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		LookupsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "storefinder_lookups_total",
			Help: "Total number of store lookups by result.",
		}, []string{"result"}),
		APIErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "storefinder_provider_api_errors_total",
			Help: "Total number of errors received from the geocoding provider API.",
		}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "storefinder_provider_request_duration_seconds",
			Help:    "Duration of requests to the geocoding provider API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		StoresScanned: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "storefinder_catalog_stores_scanned_total",
			Help: "Total number of catalog stores ranked.",
		}),
		NearestKm: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "storefinder_nearest_store_distance_kilometers",
			Help: "Distance to the store selected by the last lookup, in kilometers.",
		}),
	}
}

// WriteTextfile writes every metric gathered from g to path in the text exposition format,
// for collection by the node exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
