package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"media-gallery/internal/gallery"
	"media-gallery/internal/handlers"
	"media-gallery/internal/logging"
	"media-gallery/internal/metrics"
	"media-gallery/internal/middleware"
	"media-gallery/internal/probe"
	"media-gallery/internal/startup"
	"media-gallery/internal/workers"
)

func main() {
	startTime := time.Now()

	config, err := startup.LoadConfig()
	if err != nil {
		startup.LogFatal("Configuration error: %v", err)
	}

	metrics.SetAppInfo(startup.Version, startup.Commit, runtime.Version())
	metrics.InitializeMetrics()

	probeWorkers := workers.ForIO(4)
	startup.LogProberInit(probeWorkers)
	prober := probe.New(probeWorkers)
	prober.Timeout = config.ProbeTimeout

	galleryConfig := gallery.Config{
		VideoDir:     config.VideoDir,
		ImageDir:     config.ImageDir,
		ThumbsDir:    config.ThumbsDir,
		CacheDir:     config.CacheDir,
		CaptionsFile: config.CaptionsFile,
		MaxAge:       config.CacheMaxAge,
	}

	store := gallery.NewStore(galleryConfig)
	oracle := gallery.NewOracle(galleryConfig, store)
	builder := gallery.NewBuilder(galleryConfig, prober, store)
	cache := gallery.NewService(oracle, builder, store)

	startup.LogCacheInit(config.CacheMaxAge)
	go cache.Warm(context.Background())

	h := handlers.New(cache)
	router := buildRouter(h, config)

	server := &http.Server{
		Addr:         ":" + config.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.ListenAndServe()
	}()

	startup.LogServerStarted(config.Port, time.Since(startTime))

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		startup.LogFatal("Server error: %v", err)
	case sig := <-shutdown:
		startup.LogShutdownInitiated(sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logging.Error("Graceful shutdown failed: %v", err)
			if err := server.Close(); err != nil {
				logging.Error("Forced close failed: %v", err)
			}
		}
		startup.LogShutdownComplete()
	}
}

func buildRouter(h *handlers.Handlers, config *startup.Config) *mux.Router {
	router := mux.NewRouter()

	router.Use(middleware.Recovery())
	loggingConfig := middleware.DefaultLoggingConfig()
	loggingConfig.LogStaticFiles = config.LogStaticFiles
	loggingConfig.LogHealthChecks = config.LogHealthChecks
	router.Use(middleware.Logger(loggingConfig))
	if config.MetricsEnabled {
		router.Use(middleware.Metrics(middleware.DefaultMetricsConfig()))
	}

	router.HandleFunc("/api/media", h.GetMedia).Methods("GET")
	router.HandleFunc("/api/rebuild", h.Rebuild).Methods("POST")

	router.HandleFunc("/health", h.HealthCheck).Methods("GET")
	router.HandleFunc("/livez", h.LivenessCheck).Methods("GET", "HEAD")
	router.HandleFunc("/readyz", h.ReadinessCheck).Methods("GET")
	router.HandleFunc("/version", h.GetVersion).Methods("GET")

	if config.MetricsEnabled {
		router.Handle("/metrics", h.MetricsHandler()).Methods("GET")
	}

	// Byte-serving endpoints. These read straight from disk and never
	// consult the cache, so a stale snapshot cannot block media delivery.
	serveDir(router, "/videos/", config.VideoDir)
	serveDir(router, "/images/", config.ImageDir)
	serveDir(router, "/thumbnails/", config.ThumbsDir)
	serveDir(router, "/assets/", "./assets")

	return router
}

func serveDir(router *mux.Router, prefix, dir string) {
	fs := http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))
	router.PathPrefix(prefix).Handler(fs).Methods("GET", "HEAD")
}
