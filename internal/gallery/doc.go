// Package gallery implements the media metadata cache: snapshot building
// from filesystem scans, positional identity assignment, caption merging,
// duration probing, freshness detection, durable persistence, and the
// filtered read surface consumed by the HTTP handlers.
//
// A Snapshot is immutable once built. The Service holds the current
// snapshot behind a RWMutex and de-duplicates rebuilds with singleflight,
// so concurrent stale readers await one scan rather than each starting
// their own.
package gallery
