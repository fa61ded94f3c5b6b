package gallery

import (
	"os"

	"media-gallery/internal/captions"
	"media-gallery/internal/logging"
	"media-gallery/internal/metrics"
)

// Staleness verdict reasons, in evaluation order.
const (
	VerdictFresh           = "fresh"
	VerdictColdStart       = "cold_start"
	VerdictExpired         = "expired"
	VerdictCountDrift      = "count_drift"
	VerdictCaptionsChanged = "captions_changed"
	VerdictProbeError      = "probe_error"
)

// Verdict is the freshness oracle's decision about one snapshot.
type Verdict struct {
	Stale  bool
	Reason string
}

// Oracle decides whether a snapshot still reflects live filesystem state.
// Errors while probing that state count as stale: the oracle fails open
// toward rebuilding.
type Oracle struct {
	cfg   Config
	store *Store
}

// NewOracle returns an Oracle over the given layout.
func NewOracle(cfg Config, store *Store) *Oracle {
	return &Oracle{cfg: cfg, store: store}
}

// Evaluate applies the staleness rules in order: cold start, age,
// directory count drift, caption file modification. Detecting a caption
// change additionally deletes the durable snapshot file so the next
// access rebuilds from scratch instead of re-adopting stale state.
func (o *Oracle) Evaluate(snap *Snapshot) Verdict {
	v := o.evaluate(snap)
	metrics.CacheStalenessChecks.WithLabelValues(v.Reason).Inc()
	if v.Stale {
		logging.Debug("freshness: stale (%s)", v.Reason)
	}
	return v
}

func (o *Oracle) evaluate(snap *Snapshot) Verdict {
	if snap == nil {
		return Verdict{Stale: true, Reason: VerdictColdStart}
	}

	if snap.Age() > o.cfg.maxAge() {
		return Verdict{Stale: true, Reason: VerdictExpired}
	}

	if v, ok := o.checkCounts(snap); !ok {
		return v
	}

	if v, ok := o.checkCaptions(snap); !ok {
		return v
	}

	return Verdict{Reason: VerdictFresh}
}

// checkCounts compares live per-directory file counts against the
// snapshot's recorded fingerprint.
func (o *Oracle) checkCounts(snap *Snapshot) (Verdict, bool) {
	dirs := o.cfg.watchedDirs()
	if len(snap.Counts) != len(dirs) {
		return Verdict{Stale: true, Reason: VerdictCountDrift}, false
	}

	for i, dir := range dirs {
		n, err := countFiles(dir)
		if err != nil {
			logging.Warn("freshness: count %s failed: %v, treating as stale", dir, err)
			return Verdict{Stale: true, Reason: VerdictProbeError}, false
		}
		if n != snap.Counts[i] {
			logging.Debug("freshness: %s count %d != recorded %d", dir, n, snap.Counts[i])
			return Verdict{Stale: true, Reason: VerdictCountDrift}, false
		}
	}

	return Verdict{}, true
}

// checkCaptions compares the caption file's live mtime against the
// snapshot's recorded one.
func (o *Oracle) checkCaptions(snap *Snapshot) (Verdict, bool) {
	mtime, err := captions.ModTime(o.cfg.CaptionsFile)
	if err != nil {
		if os.IsNotExist(err) && snap.CaptionMtime.IsZero() {
			// Caption file never existed; nothing changed.
			return Verdict{}, true
		}
		logging.Warn("freshness: caption stat failed: %v, treating as stale", err)
		return Verdict{Stale: true, Reason: VerdictProbeError}, false
	}

	if mtime.After(snap.CaptionMtime) {
		// Invalidate the durable snapshot too: a rebuild triggered by a
		// caption change must not be short-circuited by re-adopting the
		// persisted copy.
		if err := o.store.Delete(); err != nil {
			logging.Warn("freshness: failed to delete stale snapshot file: %v", err)
		}
		return Verdict{Stale: true, Reason: VerdictCaptionsChanged}, false
	}

	return Verdict{}, true
}
