// Package workers computes worker pool sizes from the available CPU count.
// Duration probing spawns an external process per file, so its pool is
// sized here and capped to avoid process-spawn storms.
package workers
