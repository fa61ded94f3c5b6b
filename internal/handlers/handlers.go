package handlers

import (
	"time"

	"media-gallery/internal/gallery"
)

// Handlers bundles the HTTP handlers and their dependencies.
type Handlers struct {
	cache     *gallery.Service
	startTime time.Time
}

// New wires the handler set over the cache service.
func New(cache *gallery.Service) *Handlers {
	return &Handlers{
		cache:     cache,
		startTime: time.Now(),
	}
}
