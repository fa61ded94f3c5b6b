package scanner

import (
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"media-gallery/internal/logging"
	"media-gallery/internal/metrics"
)

// Entry is one matched file from a directory scan.
type Entry struct {
	// RelPath is the path relative to the scan root, forward-slash normalized.
	RelPath string
	// Name is the base filename without extension.
	Name string
	// Ext is the lowercase extension including the leading dot.
	Ext string
	// Created is the filesystem creation time of the file.
	Created time.Time
}

// Result is the outcome of a scan. Degraded is set when the root itself
// could not be read and the entry list was forced empty; callers can then
// distinguish "directory is empty" from "directory is unreadable" without
// consulting the logs.
type Result struct {
	Entries  []Entry
	Degraded bool
}

// Scan recursively lists files under root whose extension appears in exts
// (case-insensitive). Unreadable subdirectories and per-file stat failures
// are logged and skipped; an unreadable root yields an empty, degraded
// result rather than an error.
func Scan(root string, exts map[string]bool) Result {
	start := time.Now()
	var res Result

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				// Root unreadable: fall back to an empty listing.
				return err
			}
			logging.Warn("scan: skipping %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(d.Name()))
		if !exts[ext] {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			logging.Warn("scan: failed to stat %s: %v", path, err)
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			logging.Warn("scan: failed to relativize %s: %v", path, err)
			return nil
		}

		res.Entries = append(res.Entries, Entry{
			RelPath: filepath.ToSlash(rel),
			Name:    strings.TrimSuffix(d.Name(), filepath.Ext(d.Name())),
			Ext:     ext,
			Created: createdTime(info),
		})
		return nil
	})

	if err != nil {
		logging.Warn("scan: root %s unreadable: %v", root, err)
		res = Result{Degraded: true}
		metrics.ScannerRunsTotal.WithLabelValues("degraded").Inc()
	} else {
		metrics.ScannerRunsTotal.WithLabelValues("success").Inc()
	}

	metrics.ScannerFilesMatched.Add(float64(len(res.Entries)))
	metrics.ScannerDuration.Observe(time.Since(start).Seconds())

	logging.Debug("scan: %s matched %d files in %v", root, len(res.Entries), time.Since(start))
	return res
}
