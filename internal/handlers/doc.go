// Package handlers provides the HTTP handlers for the media gallery API:
// the filtered cache read surface, the manual rebuild trigger, health
// probes, version, and metrics.
package handlers
