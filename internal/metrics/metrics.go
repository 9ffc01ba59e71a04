package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Invocation metrics
	HarvestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "harvester_invocations_total",
			Help: "Total number of harvest invocations",
		},
		[]string{"status"},
	)

	RecordsHarvested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "harvester_records_harvested_total",
			Help: "Total number of records annotated and stored",
		},
	)

	// Feed metrics
	FetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "harvester_fetch_duration_seconds",
			Help:    "Duration of feed fetches in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	FetchErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "harvester_fetch_errors_total",
			Help: "Total number of failed feed fetches",
		},
	)

	// Storage metrics
	UploadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "harvester_upload_duration_seconds",
			Help:    "Duration of object uploads in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	UploadBytesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "harvester_upload_bytes_total",
			Help: "Total bytes of serialized records uploaded",
		},
	)

	StorageErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "harvester_storage_errors_total",
			Help: "Total number of failed object uploads",
		},
	)
)
