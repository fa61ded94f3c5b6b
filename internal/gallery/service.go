package gallery

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"media-gallery/internal/logging"

	"golang.org/x/sync/singleflight"
)

// SnapshotBuilder produces complete snapshots. *Builder is the production
// implementation; tests substitute counting fakes.
type SnapshotBuilder interface {
	Build(ctx context.Context, trigger string) *Snapshot
}

// Service is the public read surface of the cache: one instance per
// process, constructed at startup. It owns the in-memory snapshot and
// guards rebuilds so that concurrent stale readers share a single
// in-flight rebuild instead of racing their own scans.
type Service struct {
	oracle  *Oracle
	builder SnapshotBuilder
	store   *Store

	mu   sync.RWMutex
	snap *Snapshot

	group    singleflight.Group
	building atomic.Bool
}

// QueryResult is a filtered view of the current snapshot. Empty reports
// that the snapshot itself had zero records, which callers surface as
// not-found; a filtered-to-empty Media on a non-empty snapshot is a
// normal result.
type QueryResult struct {
	Media []Record
	Empty bool
}

// Status summarizes cache state for health reporting.
type Status struct {
	Records   int       `json:"records"`
	BuildID   string    `json:"buildId,omitempty"`
	LastBuild time.Time `json:"lastBuild,omitempty"`
	Building  bool      `json:"building"`
}

// NewService wires the cache service from its collaborators.
func NewService(oracle *Oracle, builder SnapshotBuilder, store *Store) *Service {
	return &Service{
		oracle:  oracle,
		builder: builder,
		store:   store,
	}
}

// Query returns the current snapshot filtered by f, rebuilding first when
// the freshness oracle declares the snapshot stale.
func (s *Service) Query(ctx context.Context, f Filters) QueryResult {
	snap := s.current()

	if verdict := s.oracle.Evaluate(snap); verdict.Stale {
		snap = s.refresh(ctx, "query")
	}

	return QueryResult{
		Media: applyFilters(snap.Media, f),
		Empty: len(snap.Media) == 0,
	}
}

// Warm refreshes the snapshot if stale. Called in the background at
// startup so the first request usually finds a fresh snapshot.
func (s *Service) Warm(ctx context.Context) {
	if verdict := s.oracle.Evaluate(s.current()); verdict.Stale {
		s.refresh(ctx, "warmup")
	}
}

// ForceRebuild unconditionally rebuilds, bypassing the persisted
// snapshot. De-duplicated with in-flight refreshes.
func (s *Service) ForceRebuild(ctx context.Context) {
	s.group.Do("rebuild", func() (interface{}, error) {
		s.building.Store(true)
		defer s.building.Store(false)

		snap := s.builder.Build(ctx, "manual")
		s.swap(snap)
		return snap, nil
	})
}

// IsBuilding reports whether a rebuild is currently in flight.
func (s *Service) IsBuilding() bool {
	return s.building.Load()
}

// GetStatus returns a health summary of the cache.
func (s *Service) GetStatus() Status {
	snap := s.current()
	status := Status{Building: s.building.Load()}
	if snap != nil {
		status.Records = len(snap.Media)
		status.BuildID = snap.BuildID
		status.LastBuild = snap.BuiltAt()
	}
	return status
}

// current returns the in-memory snapshot, which may be nil before the
// first build.
func (s *Service) current() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// swap atomically replaces the in-memory snapshot. Only complete builds
// reach here; readers never observe a half-updated snapshot.
func (s *Service) swap(snap *Snapshot) {
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

// refresh obtains a current snapshot, de-duplicating concurrent callers
// onto one in-flight rebuild. It first tries to adopt the persisted
// snapshot; only when that too is stale does it run a full build.
func (s *Service) refresh(ctx context.Context, trigger string) *Snapshot {
	v, _, shared := s.group.Do("rebuild", func() (interface{}, error) {
		s.building.Store(true)
		defer s.building.Store(false)

		if persisted, err := s.store.Load(); err != nil {
			logging.Warn("cache: persisted snapshot unusable: %v", err)
		} else if persisted != nil {
			if verdict := s.oracle.Evaluate(persisted); !verdict.Stale {
				logging.Info("cache: adopted persisted snapshot %s (%d records)",
					persisted.BuildID, len(persisted.Media))
				s.swap(persisted)
				return persisted, nil
			}
		}

		snap := s.builder.Build(ctx, trigger)
		s.swap(snap)
		return snap, nil
	})

	if shared {
		logging.Debug("cache: joined in-flight rebuild")
	}
	return v.(*Snapshot)
}
