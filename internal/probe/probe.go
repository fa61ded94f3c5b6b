package probe

import (
	"bytes"
	"context"
	"math"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"

	"media-gallery/internal/logging"
	"media-gallery/internal/metrics"
)

const (
	// FallbackSeconds is the duration reported when probing fails.
	FallbackSeconds = 10

	// DefaultTimeout bounds a single ffprobe invocation.
	DefaultTimeout = 15 * time.Second

	// maxWorkers caps the probe pool; each probe spawns a process.
	maxWorkers = 4
)

// Result is the outcome of one duration probe. Fallback is set when the
// probe failed and Seconds holds the fixed default, so callers can tell
// "genuinely ten seconds" from "probe failed, assuming ten seconds".
type Result struct {
	Seconds  int
	Fallback bool
}

// Prober extracts container durations from video files by invoking an
// external probing tool (ffprobe).
type Prober struct {
	// Binary is the probing tool name or path; overridable for tests.
	Binary string
	// Timeout bounds each invocation.
	Timeout time.Duration
	// Workers is the batch concurrency cap.
	Workers int
}

// New returns a Prober with the default binary, timeout, and worker count.
func New(workers int) *Prober {
	if workers < 1 {
		workers = 1
	}
	if workers > maxWorkers {
		workers = maxWorkers
	}
	return &Prober{
		Binary:  "ffprobe",
		Timeout: DefaultTimeout,
		Workers: workers,
	}
}

// Duration probes one video file. Any failure (tool missing, corrupt
// file, timeout) yields the fallback result with a warning; probing never
// fails the caller.
func (p *Prober) Duration(ctx context.Context, path string) Result {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, p.Binary,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		logging.Warn("probe: %s failed for %s: %v (%s)", p.Binary, path, err, strings.TrimSpace(stderr.String()))
		metrics.ProbesTotal.WithLabelValues("fallback").Inc()
		metrics.ProbeDuration.Observe(time.Since(start).Seconds())
		return Result{Seconds: FallbackSeconds, Fallback: true}
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(stdout.String()), 64)
	if err != nil {
		logging.Warn("probe: unparseable duration %q for %s: %v", stdout.String(), path, err)
		metrics.ProbesTotal.WithLabelValues("fallback").Inc()
		metrics.ProbeDuration.Observe(time.Since(start).Seconds())
		return Result{Seconds: FallbackSeconds, Fallback: true}
	}

	metrics.ProbesTotal.WithLabelValues("success").Inc()
	metrics.ProbeDuration.Observe(time.Since(start).Seconds())
	return Result{Seconds: int(math.Round(seconds))}
}

// Durations probes a batch of files with bounded concurrency and returns
// a result per path. Probing is process-spawning and expensive, so the
// fan-out is capped at the Prober's worker count.
func (p *Prober) Durations(ctx context.Context, paths []string) map[string]Result {
	results := make(map[string]Result, len(paths))
	if len(paths) == 0 {
		return results
	}

	workers := p.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	jobs := make(chan string)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				res := p.Duration(ctx, path)
				mu.Lock()
				results[path] = res
				mu.Unlock()
			}
		}()
	}

	for _, path := range paths {
		jobs <- path
	}
	close(jobs)
	wg.Wait()

	return results
}
