package gallery

import (
	"path/filepath"
	"time"
)

// Fixed placeholder assets substituted when a video's precomputed preview
// files are absent on disk.
const (
	DefaultThumbnail = "/assets/default-thumb.jpg"
	DefaultPreview   = "/assets/default-preview.webm"
)

// Public path prefixes for the byte-serving endpoints. Record urls are
// derived from these; the endpoints themselves serve raw files
// independent of cache state.
const (
	videoURLPrefix = "/videos"
	imageURLPrefix = "/images"
	thumbURLPrefix = "/thumbnails"
)

// DefaultMaxAge is the snapshot freshness threshold.
const DefaultMaxAge = time.Hour

// Config holds the directory layout and freshness tuning for the cache.
type Config struct {
	// VideoDir and ImageDir are the scanned media roots.
	VideoDir string
	ImageDir string
	// ThumbsDir holds precomputed preview assets under its preview/
	// subdirectory.
	ThumbsDir string
	// CacheDir receives the durable snapshot and the caption export.
	CacheDir string
	// CaptionsFile is the external tag index.
	CaptionsFile string
	// MaxAge is the snapshot freshness threshold (default one hour).
	MaxAge time.Duration
}

// previewDir is where per-video preview assets live on disk.
func (c Config) previewDir() string {
	return filepath.Join(c.ThumbsDir, "preview")
}

// SnapshotPath is the durable snapshot file.
func (c Config) SnapshotPath() string {
	return filepath.Join(c.CacheDir, "media-cache.json")
}

// ExportPath is the auxiliary id-to-caption export rewritten on every
// build for external maintenance tooling.
func (c Config) ExportPath() string {
	return filepath.Join(c.CacheDir, "captions.json")
}

// maxAge returns the configured threshold or the default.
func (c Config) maxAge() time.Duration {
	if c.MaxAge > 0 {
		return c.MaxAge
	}
	return DefaultMaxAge
}

// watchedDirs are the drift-fingerprint directories, in counts order.
func (c Config) watchedDirs() []string {
	return []string{c.VideoDir, c.ImageDir, c.ThumbsDir}
}
