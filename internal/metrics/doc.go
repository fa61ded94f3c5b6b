// Package metrics defines the Prometheus collectors exported by the
// media gallery service: HTTP request metrics, cache build and freshness
// metrics, scanner and duration-probe metrics.
package metrics
