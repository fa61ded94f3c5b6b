package startup

import (
	"path/filepath"
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("STARTUP_TEST_KEY", "value")
	if got := getEnv("STARTUP_TEST_KEY", "fallback"); got != "value" {
		t.Errorf("getEnv = %q, want value", got)
	}
	if got := getEnv("STARTUP_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("getEnv = %q, want fallback", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value        string
		defaultValue bool
		want         bool
	}{
		{"true", false, true},
		{"false", true, false},
		{"1", false, true},
		{"0", true, false},
		{"", true, true},
		{"", false, false},
		{"banana", true, true},
		{"banana", false, false},
	}

	for _, tt := range tests {
		t.Setenv("STARTUP_TEST_BOOL", tt.value)
		if got := getEnvBool("STARTUP_TEST_BOOL", tt.defaultValue); got != tt.want {
			t.Errorf("getEnvBool(%q, %v) = %v, want %v", tt.value, tt.defaultValue, got, tt.want)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	root := t.TempDir()
	t.Setenv("VIDEO_DIR", filepath.Join(root, "videos"))
	t.Setenv("IMAGE_DIR", filepath.Join(root, "images"))
	t.Setenv("THUMBS_DIR", filepath.Join(root, "thumbnails"))
	t.Setenv("CACHE_DIR", filepath.Join(root, "cache"))
	t.Setenv("CAPTIONS_FILE", filepath.Join(root, "captions.txt"))
	t.Setenv("PORT", "9090")
	t.Setenv("CACHE_MAX_AGE", "30m")
	t.Setenv("PROBE_TIMEOUT", "5s")
	t.Setenv("METRICS_ENABLED", "false")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if config.Port != "9090" {
		t.Errorf("Port = %q, want 9090", config.Port)
	}
	if config.CacheMaxAge != 30*time.Minute {
		t.Errorf("CacheMaxAge = %v, want 30m", config.CacheMaxAge)
	}
	if config.ProbeTimeout != 5*time.Second {
		t.Errorf("ProbeTimeout = %v, want 5s", config.ProbeTimeout)
	}
	if config.MetricsEnabled {
		t.Error("MetricsEnabled = true, want false")
	}
	if !filepath.IsAbs(config.VideoDir) {
		t.Errorf("VideoDir = %q, not absolute", config.VideoDir)
	}
}

func TestLoadConfigInvalidDurationsFallBack(t *testing.T) {
	root := t.TempDir()
	t.Setenv("CACHE_DIR", filepath.Join(root, "cache"))
	t.Setenv("CACHE_MAX_AGE", "soon")
	t.Setenv("PROBE_TIMEOUT", "-3s")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.CacheMaxAge != time.Hour {
		t.Errorf("CacheMaxAge = %v, want default 1h", config.CacheMaxAge)
	}
	if config.ProbeTimeout != 15*time.Second {
		t.Errorf("ProbeTimeout = %v, want default 15s", config.ProbeTimeout)
	}
}

func TestGetBuildInfo(t *testing.T) {
	info := GetBuildInfo()
	if info.Version == "" || info.GoVersion == "" || info.OS == "" || info.Arch == "" {
		t.Errorf("incomplete build info: %+v", info)
	}
}
