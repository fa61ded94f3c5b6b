package gallery

import (
	"encoding/json"
	"fmt"
	"time"

	"media-gallery/internal/mediatypes"
)

// Meta carries the fields shared by both record kinds.
type Meta struct {
	// ID is the dense positional identifier rendered as text. It is
	// stable only within one snapshot: every rebuild reassigns ids from
	// the current creation-time ordering.
	ID string
	// Name is the base filename without extension.
	Name string
	// URL is the public byte-serving path for the file.
	URL string
	// Created is the filesystem creation time.
	Created time.Time
	// Captions is the comma-joined tag string (empty if none).
	Captions string
	// Tags is the ordered list of trimmed, non-empty tags.
	Tags []string
}

// Record is one gallery entry. Exactly two concrete types implement it:
// *ImageRecord and *VideoRecord. The split replaces a single struct with
// kind-conditional optional fields.
type Record interface {
	Kind() mediatypes.Kind
	Common() *Meta
	json.Marshaler
}

// ImageRecord is a scanned image.
type ImageRecord struct {
	Meta
}

// VideoRecord is a scanned video with its preview assets and probed
// duration.
type VideoRecord struct {
	Meta
	// FileType is the lowercase extension without the dot.
	FileType string
	// Thumbnail and Preview point at precomputed preview assets, or the
	// fixed placeholder paths when those assets are absent on disk.
	Thumbnail string
	Preview   string
	// Duration is the playback length in whole seconds.
	Duration int
	// DurationEstimated is set when the probe failed and Duration holds
	// the fixed fallback.
	DurationEstimated bool
}

// Kind implements Record.
func (r *ImageRecord) Kind() mediatypes.Kind { return mediatypes.KindImage }

// Common implements Record.
func (r *ImageRecord) Common() *Meta { return &r.Meta }

// MarshalJSON renders the flat wire shape.
func (r *ImageRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.wire())
}

// Kind implements Record.
func (r *VideoRecord) Kind() mediatypes.Kind { return mediatypes.KindVideo }

// Common implements Record.
func (r *VideoRecord) Common() *Meta { return &r.Meta }

// MarshalJSON renders the flat wire shape.
func (r *VideoRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.wire())
}

// wireRecord is the flat JSON shape shared by the HTTP response and the
// persisted snapshot. Video-only fields are omitted for images.
type wireRecord struct {
	ID                string   `json:"id"`
	Kind              string   `json:"kind"`
	Name              string   `json:"name"`
	URL               string   `json:"url"`
	FileType          string   `json:"fileType,omitempty"`
	Thumbnail         string   `json:"thumbnail,omitempty"`
	Preview           string   `json:"preview,omitempty"`
	Duration          int      `json:"duration,omitempty"`
	DurationEstimated bool     `json:"durationEstimated,omitempty"`
	CreatedAt         string   `json:"createdAt"`
	Captions          string   `json:"captions"`
	Tags              []string `json:"tags"`
}

func (r *ImageRecord) wire() wireRecord {
	return wireRecord{
		ID:        r.ID,
		Kind:      string(mediatypes.KindImage),
		Name:      r.Name,
		URL:       r.URL,
		CreatedAt: r.Created.UTC().Format(time.RFC3339Nano),
		Captions:  r.Captions,
		Tags:      tagsOrEmpty(r.Tags),
	}
}

func (r *VideoRecord) wire() wireRecord {
	return wireRecord{
		ID:                r.ID,
		Kind:              string(mediatypes.KindVideo),
		Name:              r.Name,
		URL:               r.URL,
		FileType:          r.FileType,
		Thumbnail:         r.Thumbnail,
		Preview:           r.Preview,
		Duration:          r.Duration,
		DurationEstimated: r.DurationEstimated,
		CreatedAt:         r.Created.UTC().Format(time.RFC3339Nano),
		Captions:          r.Captions,
		Tags:              tagsOrEmpty(r.Tags),
	}
}

// fromWire reconstructs the concrete record type from the persisted shape.
func fromWire(w wireRecord) (Record, error) {
	created, err := time.Parse(time.RFC3339Nano, w.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("record %s: bad createdAt %q: %w", w.ID, w.CreatedAt, err)
	}

	meta := Meta{
		ID:       w.ID,
		Name:     w.Name,
		URL:      w.URL,
		Created:  created,
		Captions: w.Captions,
		Tags:     w.Tags,
	}

	switch mediatypes.Kind(w.Kind) {
	case mediatypes.KindImage:
		return &ImageRecord{Meta: meta}, nil
	case mediatypes.KindVideo:
		return &VideoRecord{
			Meta:              meta,
			FileType:          w.FileType,
			Thumbnail:         w.Thumbnail,
			Preview:           w.Preview,
			Duration:          w.Duration,
			DurationEstimated: w.DurationEstimated,
		}, nil
	default:
		return nil, fmt.Errorf("record %s: unknown kind %q", w.ID, w.Kind)
	}
}

// tagsOrEmpty keeps the wire field a JSON array rather than null.
func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
