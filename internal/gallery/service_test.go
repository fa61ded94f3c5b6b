package gallery

import (
	"context"
	"sync"
	"testing"
	"time"

	"media-gallery/internal/mediatypes"
)

// fakeBuilder counts builds and returns snapshots the oracle will judge
// fresh for the given config.
type fakeBuilder struct {
	mu     sync.Mutex
	builds int
	cfg    Config
	media  []Record
	delay  time.Duration
	t      *testing.T
}

func (f *fakeBuilder) Build(_ context.Context, _ string) *Snapshot {
	f.mu.Lock()
	f.builds++
	f.mu.Unlock()
	time.Sleep(f.delay)
	return &Snapshot{
		BuildID:   "fake-build",
		Media:     f.media,
		Timestamp: time.Now().UnixMilli(),
		Counts:    liveCounts(f.t, f.cfg),
	}
}

func (f *fakeBuilder) buildCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.builds
}

func newTestService(t *testing.T, media []Record) (*Service, *fakeBuilder, Config) {
	t.Helper()
	cfg := testConfig(t)
	store := NewStore(cfg)
	fb := &fakeBuilder{cfg: cfg, media: media, t: t}
	return NewService(NewOracle(cfg, store), fb, store), fb, cfg
}

func TestQueryBuildsOnColdStart(t *testing.T) {
	svc, fb, _ := newTestService(t, []Record{video("1", 45)})

	result := svc.Query(context.Background(), Filters{})
	if fb.buildCount() != 1 {
		t.Fatalf("builds = %d, want 1", fb.buildCount())
	}
	if result.Empty {
		t.Error("result marked empty for populated snapshot")
	}
	if len(result.Media) != 1 {
		t.Errorf("got %d records, want 1", len(result.Media))
	}
}

func TestQueryFreshSnapshotSkipsBuilder(t *testing.T) {
	svc, fb, _ := newTestService(t, []Record{video("1", 45)})

	svc.Query(context.Background(), Filters{})
	svc.Query(context.Background(), Filters{})
	svc.Query(context.Background(), Filters{Kind: mediatypes.KindVideo})

	if fb.buildCount() != 1 {
		t.Errorf("builds = %d, want 1 (fresh snapshot must be reused)", fb.buildCount())
	}
}

func TestQueryEmptyVersusFilteredEmpty(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	result := svc.Query(context.Background(), Filters{})
	if !result.Empty {
		t.Error("zero-record snapshot not marked empty")
	}

	svc2, _, _ := newTestService(t, []Record{video("1", 45)})
	result = svc2.Query(context.Background(), Filters{Tag: "no-such-tag"})
	if result.Empty {
		t.Error("filtered-to-nothing result wrongly marked empty")
	}
	if len(result.Media) != 0 {
		t.Errorf("got %d records, want 0", len(result.Media))
	}
}

func TestQueryAdoptsPersistedSnapshot(t *testing.T) {
	svc, fb, cfg := newTestService(t, []Record{video("1", 45)})

	persisted := &Snapshot{
		BuildID:   "persisted",
		Media:     []Record{video("7", 90)},
		Timestamp: time.Now().UnixMilli(),
		Counts:    liveCounts(t, cfg),
	}
	if err := NewStore(cfg).Save(persisted); err != nil {
		t.Fatalf("save: %v", err)
	}

	result := svc.Query(context.Background(), Filters{})
	if fb.buildCount() != 0 {
		t.Errorf("builds = %d, want 0 (fresh persisted snapshot must be adopted)", fb.buildCount())
	}
	if len(result.Media) != 1 || result.Media[0].Common().ID != "7" {
		t.Errorf("got %v, want the persisted record", ids(result.Media))
	}
	if got := svc.GetStatus().BuildID; got != "persisted" {
		t.Errorf("BuildID = %q, want persisted", got)
	}
}

func TestForceRebuildBypassesFreshness(t *testing.T) {
	svc, fb, _ := newTestService(t, []Record{video("1", 45)})

	svc.Query(context.Background(), Filters{})
	svc.ForceRebuild(context.Background())

	if fb.buildCount() != 2 {
		t.Errorf("builds = %d, want 2", fb.buildCount())
	}
	if svc.IsBuilding() {
		t.Error("IsBuilding still true after rebuild returned")
	}
}

func TestConcurrentQueriesShareOneBuild(t *testing.T) {
	svc, fb, _ := newTestService(t, []Record{video("1", 45)})
	fb.delay = 50 * time.Millisecond

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.Query(context.Background(), Filters{})
		}()
	}
	wg.Wait()

	// All cold-start queries race into one singleflight rebuild; stragglers
	// that miss it find a fresh snapshot.
	if fb.buildCount() > 2 {
		t.Errorf("builds = %d, want at most 2 for concurrent cold start", fb.buildCount())
	}
}

func TestGetStatusBeforeFirstBuild(t *testing.T) {
	svc, _, _ := newTestService(t, nil)

	status := svc.GetStatus()
	if status.Records != 0 || status.Building || !status.LastBuild.IsZero() {
		t.Errorf("status = %+v, want zero state", status)
	}
}

func TestWarm(t *testing.T) {
	svc, fb, _ := newTestService(t, []Record{video("1", 45)})

	svc.Warm(context.Background())
	if fb.buildCount() != 1 {
		t.Fatalf("builds = %d, want 1", fb.buildCount())
	}

	svc.Warm(context.Background())
	if fb.buildCount() != 1 {
		t.Errorf("builds = %d, want 1 (second warm must no-op)", fb.buildCount())
	}
}
