package metrics

// InitializeMetrics pre-populates expected label combinations so every
// metric appears on the first Prometheus scrape.
// Call once at startup after registration.
func InitializeMetrics() {
	for _, trigger := range []string{"query", "manual", "warmup"} {
		for _, status := range []string{"success", "empty_fallback"} {
			CacheBuildsTotal.WithLabelValues(trigger, status)
		}
	}

	for _, verdict := range []string{"fresh", "cold_start", "expired", "count_drift", "captions_changed", "probe_error"} {
		CacheStalenessChecks.WithLabelValues(verdict)
	}

	for _, status := range []string{"success", "miss", "error"} {
		CacheSnapshotLoads.WithLabelValues(status)
	}

	for _, kind := range []string{"image", "video"} {
		CacheRecords.WithLabelValues(kind)
	}

	for _, status := range []string{"success", "fallback"} {
		ProbesTotal.WithLabelValues(status)
	}

	for _, status := range []string{"success", "degraded"} {
		ScannerRunsTotal.WithLabelValues(status)
	}
}
