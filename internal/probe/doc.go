// Package probe extracts video playback durations by invoking ffprobe.
// Probes are batched with bounded concurrency and never fail the cache
// build: any probe error degrades to a fixed fallback duration tagged as
// estimated.
package probe
