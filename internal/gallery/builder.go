package gallery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"media-gallery/internal/captions"
	"media-gallery/internal/logging"
	"media-gallery/internal/mediatypes"
	"media-gallery/internal/metrics"
	"media-gallery/internal/probe"
	"media-gallery/internal/scanner"

	"github.com/google/uuid"
)

// DurationProber supplies video durations for a batch of file paths.
// *probe.Prober is the production implementation.
type DurationProber interface {
	Durations(ctx context.Context, paths []string) map[string]probe.Result
}

// Builder runs a full cache rebuild: scan, caption merge, identity
// assignment, duration probing, asset resolution, persistence.
type Builder struct {
	cfg    Config
	prober DurationProber
	store  *Store
}

// NewBuilder returns a Builder over the given layout.
func NewBuilder(cfg Config, prober DurationProber, store *Store) *Builder {
	return &Builder{cfg: cfg, prober: prober, store: store}
}

// Build produces a complete snapshot and mirrors it to durable storage.
// It never returns an error: an unrecoverable failure degrades to an
// empty snapshot so callers always receive something servable. Persist
// and export failures are warnings only.
func (b *Builder) Build(ctx context.Context, trigger string) *Snapshot {
	start := time.Now()
	buildID := uuid.NewString()

	metrics.CacheBuildInProgress.Set(1)
	defer metrics.CacheBuildInProgress.Set(0)

	logging.Info("build %s: starting (trigger: %s)", buildID, trigger)

	if err := b.ensureDirs(); err != nil {
		logging.Error("build %s: %v, serving empty snapshot", buildID, err)
		metrics.CacheBuildsTotal.WithLabelValues(trigger, "empty_fallback").Inc()
		return newEmptySnapshot()
	}

	videos := scanner.Scan(b.cfg.VideoDir, mediatypes.VideoExtensions)
	images := scanner.Scan(b.cfg.ImageDir, mediatypes.ImageExtensions)
	if videos.Degraded || images.Degraded {
		logging.Warn("build %s: degraded scan (video: %v, image: %v)",
			buildID, videos.Degraded, images.Degraded)
	}

	capIdx := captions.Load(b.cfg.CaptionsFile)

	items := assignIdentity(images.Entries, videos.Entries)

	durations := b.probeDurations(ctx, items)

	media := make([]Record, 0, len(items))
	imageCount, videoCount := 0, 0
	for _, it := range items {
		meta := Meta{
			ID:      strconv.Itoa(it.id),
			Name:    it.entry.Name,
			Created: it.entry.Created,
		}
		// Captions key by the positional id just assigned. Keeping the
		// caption file aligned with the rebuild order is an external
		// contract, not enforced here.
		if entry, ok := capIdx.Entries[it.id]; ok {
			meta.Captions = entry.Captions
			meta.Tags = entry.Tags
		}

		switch it.kind {
		case mediatypes.KindImage:
			meta.URL = imageURLPrefix + "/" + it.entry.RelPath
			media = append(media, &ImageRecord{Meta: meta})
			imageCount++
		case mediatypes.KindVideo:
			meta.URL = videoURLPrefix + "/" + it.entry.RelPath
			media = append(media, b.videoRecord(meta, it, durations))
			videoCount++
		}
	}

	snap := &Snapshot{
		BuildID:      buildID,
		Media:        media,
		Timestamp:    time.Now().UnixMilli(),
		Counts:       b.countWatched(buildID),
		CaptionMtime: capIdx.ModTime,
	}

	if err := b.store.Save(snap); err != nil {
		logging.Warn("build %s: persist failed: %v", buildID, err)
	}
	if err := b.store.WriteExport(snap); err != nil {
		logging.Warn("build %s: caption export failed: %v", buildID, err)
	}

	metrics.CacheBuildsTotal.WithLabelValues(trigger, "success").Inc()
	metrics.CacheBuildDuration.Observe(time.Since(start).Seconds())
	metrics.CacheLastBuildTimestamp.Set(float64(time.Now().Unix()))
	metrics.CacheRecords.WithLabelValues("image").Set(float64(imageCount))
	metrics.CacheRecords.WithLabelValues("video").Set(float64(videoCount))

	logging.Info("build %s: complete, %d images and %d videos in %v",
		buildID, imageCount, videoCount, time.Since(start))
	return snap
}

// ensureDirs creates the watched and cache directories when absent.
func (b *Builder) ensureDirs() error {
	dirs := []string{b.cfg.VideoDir, b.cfg.ImageDir, b.cfg.previewDir(), b.cfg.CacheDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// probeDurations runs the bounded-concurrency duration batch over every
// video in the scan result.
func (b *Builder) probeDurations(ctx context.Context, items []scanItem) map[string]probe.Result {
	var paths []string
	for _, it := range items {
		if it.kind == mediatypes.KindVideo {
			paths = append(paths, filepath.Join(b.cfg.VideoDir, filepath.FromSlash(it.entry.RelPath)))
		}
	}
	return b.prober.Durations(ctx, paths)
}

// videoRecord resolves a video's preview assets and duration. Missing
// assets substitute the fixed placeholders, never a build failure.
func (b *Builder) videoRecord(meta Meta, it scanItem, durations map[string]probe.Result) *VideoRecord {
	rec := &VideoRecord{
		Meta:      meta,
		FileType:  trimDot(it.entry.Ext),
		Thumbnail: DefaultThumbnail,
		Preview:   DefaultPreview,
	}

	thumbFile := it.entry.Name + "_thumb.jpg"
	if fileExists(filepath.Join(b.cfg.previewDir(), thumbFile)) {
		rec.Thumbnail = thumbURLPrefix + "/preview/" + thumbFile
	}

	previewFile := it.entry.Name + ".webm"
	if fileExists(filepath.Join(b.cfg.previewDir(), previewFile)) {
		rec.Preview = thumbURLPrefix + "/preview/" + previewFile
	}

	diskPath := filepath.Join(b.cfg.VideoDir, filepath.FromSlash(it.entry.RelPath))
	if res, ok := durations[diskPath]; ok {
		rec.Duration = res.Seconds
		rec.DurationEstimated = res.Fallback
	} else {
		rec.Duration = probe.FallbackSeconds
		rec.DurationEstimated = true
	}

	return rec
}

// countWatched captures the drift fingerprint. Count failures are logged
// and recorded as zero; the freshness oracle independently fails open on
// its own count errors.
func (b *Builder) countWatched(buildID string) []int {
	dirs := b.cfg.watchedDirs()
	counts := make([]int, len(dirs))
	for i, dir := range dirs {
		n, err := countFiles(dir)
		if err != nil {
			logging.Warn("build %s: count %s failed: %v", buildID, dir, err)
			continue
		}
		counts[i] = n
	}
	return counts
}

func trimDot(ext string) string {
	if len(ext) > 0 && ext[0] == '.' {
		return ext[1:]
	}
	return ext
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
