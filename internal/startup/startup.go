package startup

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"media-gallery/internal/logging"
)

// Build-time variables (injected via -ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
)

// BuildInfo contains version and build information.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// GetBuildInfo returns the current build information.
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// Config holds all application configuration.
type Config struct {
	VideoDir     string
	ImageDir     string
	ThumbsDir    string
	CacheDir     string
	CaptionsFile string
	Port         string

	CacheMaxAge  time.Duration
	ProbeTimeout time.Duration

	LogStaticFiles  bool
	LogHealthChecks bool
	MetricsEnabled  bool
}

// LoadConfig loads and validates configuration from environment variables.
func LoadConfig() (*Config, error) {
	printBanner()
	logSystemInfo()

	logging.Info("------------------------------------------------------------")
	logging.Info("CONFIGURATION")
	logging.Info("------------------------------------------------------------")

	videoDir := getEnv("VIDEO_DIR", "./public/videos")
	imageDir := getEnv("IMAGE_DIR", "./public/images")
	thumbsDir := getEnv("THUMBS_DIR", "./public/thumbnails")
	cacheDir := getEnv("CACHE_DIR", "./cache")
	captionsFile := getEnv("CAPTIONS_FILE", "./public/captions.txt")
	port := getEnv("PORT", "8080")
	maxAgeStr := getEnv("CACHE_MAX_AGE", "1h")
	probeTimeoutStr := getEnv("PROBE_TIMEOUT", "15s")
	logStaticFiles := getEnvBool("LOG_STATIC_FILES", false)
	logHealthChecks := getEnvBool("LOG_HEALTH_CHECKS", true)
	metricsEnabled := getEnvBool("METRICS_ENABLED", true)

	logging.Info("  VIDEO_DIR:        %s", videoDir)
	logging.Info("  IMAGE_DIR:        %s", imageDir)
	logging.Info("  THUMBS_DIR:       %s", thumbsDir)
	logging.Info("  CACHE_DIR:        %s", cacheDir)
	logging.Info("  CAPTIONS_FILE:    %s", captionsFile)
	logging.Info("  PORT:             %s", port)
	logging.Info("  CACHE_MAX_AGE:    %s", maxAgeStr)
	logging.Info("  PROBE_TIMEOUT:    %s", probeTimeoutStr)
	logging.Info("  METRICS_ENABLED:  %v", metricsEnabled)
	logging.Info("  LOG_LEVEL:        %s", logging.GetLevel())

	maxAge, err := time.ParseDuration(maxAgeStr)
	if err != nil || maxAge <= 0 {
		logging.Warn("  Invalid CACHE_MAX_AGE, using default: 1h")
		maxAge = time.Hour
	}

	probeTimeout, err := time.ParseDuration(probeTimeoutStr)
	if err != nil || probeTimeout <= 0 {
		logging.Warn("  Invalid PROBE_TIMEOUT, using default: 15s")
		probeTimeout = 15 * time.Second
	}

	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("DIRECTORY SETUP")
	logging.Info("------------------------------------------------------------")

	config := &Config{
		Port:            port,
		CacheMaxAge:     maxAge,
		ProbeTimeout:    probeTimeout,
		LogStaticFiles:  logStaticFiles,
		LogHealthChecks: logHealthChecks,
		MetricsEnabled:  metricsEnabled,
	}

	for _, dir := range []struct {
		name  string
		value string
		out   *string
	}{
		{"video", videoDir, &config.VideoDir},
		{"image", imageDir, &config.ImageDir},
		{"thumbnail", thumbsDir, &config.ThumbsDir},
		{"cache", cacheDir, &config.CacheDir},
	} {
		abs, err := filepath.Abs(dir.value)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s directory path: %w", dir.name, err)
		}
		*dir.out = abs
		logging.Info("  %s directory: %s", dir.name, abs)
	}

	config.CaptionsFile, err = filepath.Abs(captionsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve captions file path: %w", err)
	}

	// The cache directory must be writable; everything else is created
	// on demand by the builder.
	if err := os.MkdirAll(config.CacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("cache directory error: %w", err)
	}
	if err := testWriteAccess(config.CacheDir); err != nil {
		return nil, fmt.Errorf("cache directory is not writable: %w", err)
	}
	logging.Info("  [OK] Cache directory is writable")

	return config, nil
}

// LogProberInit logs duration prober initialization and checks ffprobe.
func LogProberInit(workers int) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("DURATION PROBER INITIALIZATION")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Probe workers: %d", workers)

	if _, err := exec.LookPath("ffprobe"); err != nil {
		logging.Warn("  ffprobe not found in PATH")
		logging.Warn("  Video durations will fall back to the default")
	} else {
		logging.Info("  [OK] ffprobe is available")
	}
}

// LogCacheInit logs cache service initialization.
func LogCacheInit(maxAge time.Duration) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("CACHE INITIALIZATION")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Freshness threshold: %v", maxAge)
	logging.Info("  Starting warm rebuild in background...")
}

// LogServerStarted logs successful server start.
func LogServerStarted(port string, startupDuration time.Duration) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("SERVER STARTED")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Startup time: %v", startupDuration)
	logging.Info("  Listening:    http://0.0.0.0:%s", port)
	logging.Info("")
	logging.Info("  Press Ctrl+C to stop the server")
	logging.Info("------------------------------------------------------------")
	logging.Info("")
}

// LogShutdownInitiated logs shutdown start.
func LogShutdownInitiated(signal string) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("SHUTDOWN INITIATED (received %s)", signal)
	logging.Info("------------------------------------------------------------")
}

// LogShutdownComplete logs shutdown completion.
func LogShutdownComplete() {
	logging.Info("  [OK] Shutdown complete")
}

// LogFatal logs a fatal error and exits.
func LogFatal(format string, args ...interface{}) {
	logging.Fatal(format, args...)
}

func printBanner() {
	banner := `
------------------------------------------------------------
    __  ___        ___          ______       ____
   /  |/  /__ ____/ (_)__ _    / ___/__ _   / / /__ ______ __
  / /|_/ / -_) __/ / / _ '/   / (_ / _ '/  / / / -_) __/ // /
 /_/  /_/\__/\_,_/_/_/\_,_/   \___/\_,_/  /_/_/\__/_/  \_, /
                                                      /___/
------------------------------------------------------------`
	fmt.Println(banner)
	logging.Info("  Version:    %s", Version)
	logging.Info("  Commit:     %s", Commit)
	logging.Info("  Build Time: %s", BuildTime)
	logging.Info("  Started:    %s", time.Now().Format(time.RFC1123))
	logging.Info("")
}

func logSystemInfo() {
	logging.Info("------------------------------------------------------------")
	logging.Info("SYSTEM INFORMATION")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Go version:      %s", runtime.Version())
	logging.Info("  OS/Arch:         %s/%s", runtime.GOOS, runtime.GOARCH)
	logging.Info("  CPUs available:  %d", runtime.NumCPU())
	logging.Info("  GOMAXPROCS:      %d", runtime.GOMAXPROCS(0))
	logging.Info("")
}

func testWriteAccess(dir string) error {
	testFile := filepath.Join(dir, ".write-test")
	if err := os.WriteFile(testFile, []byte("test"), 0o644); err != nil {
		return err
	}
	if err := os.Remove(testFile); err != nil {
		logging.Warn("failed to remove write test file %s: %v", testFile, err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		logging.Warn("Invalid boolean value for %s: %q, using default: %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}
