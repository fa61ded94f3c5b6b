// Package scanner lists media files under a directory root, matching an
// extension filter and carrying filesystem creation timestamps. It is the
// read-only filesystem leaf of the cache build pipeline: scan failures
// degrade to empty results instead of propagating.
package scanner
