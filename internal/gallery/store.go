package gallery

import (
	"encoding/json"
	"fmt"
	"os"

	"media-gallery/internal/logging"
	"media-gallery/internal/metrics"
)

// Store persists snapshots to durable storage. There is no cross-process
// locking: concurrent processes race on the snapshot file and the last
// writer wins.
type Store struct {
	snapshotPath string
	exportPath   string
}

// NewStore returns a Store rooted at the configured cache directory.
func NewStore(cfg Config) *Store {
	return &Store{
		snapshotPath: cfg.SnapshotPath(),
		exportPath:   cfg.ExportPath(),
	}
}

// Load reads the persisted snapshot. A missing file is a cache miss, not
// an error: it returns (nil, nil).
func (s *Store) Load() (*Snapshot, error) {
	data, err := os.ReadFile(s.snapshotPath)
	if os.IsNotExist(err) {
		metrics.CacheSnapshotLoads.WithLabelValues("miss").Inc()
		return nil, nil
	}
	if err != nil {
		metrics.CacheSnapshotLoads.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("read snapshot %s: %w", s.snapshotPath, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		metrics.CacheSnapshotLoads.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("decode snapshot %s: %w", s.snapshotPath, err)
	}

	metrics.CacheSnapshotLoads.WithLabelValues("success").Inc()
	logging.Debug("store: loaded snapshot %s (%d records)", snap.BuildID, len(snap.Media))
	return &snap, nil
}

// Save overwrites the durable snapshot.
func (s *Store) Save(snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(s.snapshotPath, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", s.snapshotPath, err)
	}
	return nil
}

// WriteExport overwrites the auxiliary id-to-caption export consumed by
// external maintenance tooling. It is never read back by this service.
func (s *Store) WriteExport(snap *Snapshot) error {
	export := make(map[string]string, len(snap.Media))
	for _, rec := range snap.Media {
		export[rec.Common().ID] = rec.Common().Captions
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("encode caption export: %w", err)
	}
	if err := os.WriteFile(s.exportPath, data, 0o644); err != nil {
		return fmt.Errorf("write caption export %s: %w", s.exportPath, err)
	}
	return nil
}

// Delete removes the durable snapshot file. Used by the freshness oracle
// to force a clean rebuild after a caption change. A missing file is fine.
func (s *Store) Delete() error {
	err := os.Remove(s.snapshotPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete snapshot %s: %w", s.snapshotPath, err)
	}
	return nil
}
