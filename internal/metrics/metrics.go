package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_gallery_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "media_gallery_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "media_gallery_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	HTTPPanicsRecovered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "media_gallery_http_panics_recovered_total",
			Help: "Total number of handler panics converted to 500 responses",
		},
	)
)

// Cache metrics
var (
	CacheBuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_gallery_cache_builds_total",
			Help: "Total number of cache builds",
		},
		[]string{"trigger", "status"},
	)

	CacheBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "media_gallery_cache_build_duration_seconds",
			Help:    "Cache build duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	CacheBuildInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "media_gallery_cache_build_in_progress",
			Help: "Whether a cache build is currently running (1 = running)",
		},
	)

	CacheLastBuildTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "media_gallery_cache_last_build_timestamp",
			Help: "Unix timestamp of the last completed cache build",
		},
	)

	CacheStalenessChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_gallery_cache_staleness_checks_total",
			Help: "Total number of freshness evaluations by verdict",
		},
		[]string{"verdict"},
	)

	CacheRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "media_gallery_cache_records",
			Help: "Number of records in the current snapshot by kind",
		},
		[]string{"kind"},
	)

	CacheSnapshotLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_gallery_cache_snapshot_loads_total",
			Help: "Total number of durable snapshot load attempts",
		},
		[]string{"status"},
	)
)

// Scanner metrics
var (
	ScannerRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_gallery_scanner_runs_total",
			Help: "Total number of directory scans",
		},
		[]string{"status"},
	)

	ScannerFilesMatched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "media_gallery_scanner_files_matched_total",
			Help: "Total number of files matched by directory scans",
		},
	)

	ScannerDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "media_gallery_scanner_duration_seconds",
			Help:    "Directory scan duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)
)

// Probe metrics
var (
	ProbesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_gallery_probes_total",
			Help: "Total number of duration probes by status",
		},
		[]string{"status"},
	)

	ProbeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "media_gallery_probe_duration_seconds",
			Help:    "Duration probe execution time in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 15},
		},
	)
)

// Caption metrics
var (
	CaptionEntriesLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "media_gallery_caption_entries",
			Help: "Number of caption entries loaded in the last build",
		},
	)

	CaptionLinesSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "media_gallery_caption_lines_skipped_total",
			Help: "Total number of malformed caption lines discarded",
		},
	)
)

// Application info metric
var (
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "media_gallery_app_info",
			Help: "Application information",
		},
		[]string{"version", "commit", "go_version"},
	)
)

// SetAppInfo sets the application info metric.
func SetAppInfo(version, commit, goVersion string) {
	AppInfo.WithLabelValues(version, commit, goVersion).Set(1)
}
