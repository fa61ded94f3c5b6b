package gallery

import (
	"strings"

	"media-gallery/internal/mediatypes"
)

// Filters are the optional caller-supplied query filters. They compose as
// a logical AND. The zero value matches everything.
type Filters struct {
	// Kind restricts to one media kind when non-empty.
	Kind mediatypes.Kind
	// Tag is a case-insensitive substring matched against every tag.
	Tag string
	// Bucket restricts videos by duration class. It only applies to
	// video records: combined with Kind=image it is a no-op, and without
	// a kind filter it excludes images.
	Bucket mediatypes.DurationBucket
}

// applyFilters returns the records matching f, preserving order.
func applyFilters(media []Record, f Filters) []Record {
	out := make([]Record, 0, len(media))
	for _, rec := range media {
		if matches(rec, f) {
			out = append(out, rec)
		}
	}
	return out
}

func matches(rec Record, f Filters) bool {
	if f.Kind != "" && rec.Kind() != f.Kind {
		return false
	}

	if f.Tag != "" && !matchesTag(rec.Common().Tags, f.Tag) {
		return false
	}

	if f.Bucket != "" && f.Kind != mediatypes.KindImage {
		video, ok := rec.(*VideoRecord)
		if !ok {
			return false
		}
		if mediatypes.BucketFor(video.Duration) != f.Bucket {
			return false
		}
	}

	return true
}

func matchesTag(tags []string, query string) bool {
	query = strings.ToLower(query)
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
