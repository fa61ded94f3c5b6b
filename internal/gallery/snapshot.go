package gallery

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Snapshot is one immutable, fully-built view of the media library at a
// point in time. It is held in memory for the process lifetime, mirrored
// to durable storage, and replaced wholesale whenever the freshness oracle
// declares it stale.
type Snapshot struct {
	// BuildID correlates log lines and metrics for one build.
	BuildID string
	// Media is the record list in identity-assignment order (newest first).
	Media []Record
	// Timestamp is the build time in epoch milliseconds.
	Timestamp int64
	// Counts holds the per-watched-directory file counts captured at
	// build time (video, image, thumbnail dirs, in that order). Used only
	// for drift detection, never exposed on the read surface.
	Counts []int
	// CaptionMtime is the caption file's modification time observed at
	// build time.
	CaptionMtime time.Time
}

// newEmptySnapshot is the build-failure fallback: zero media, current
// timestamp, no counts.
func newEmptySnapshot() *Snapshot {
	return &Snapshot{
		BuildID:   uuid.NewString(),
		Timestamp: time.Now().UnixMilli(),
	}
}

// BuiltAt returns the build time.
func (s *Snapshot) BuiltAt() time.Time {
	return time.UnixMilli(s.Timestamp)
}

// Age returns how long ago the snapshot was built.
func (s *Snapshot) Age() time.Duration {
	return time.Since(s.BuiltAt())
}

// wireSnapshot is the persisted JSON envelope. CaptionMtime is stored in
// epoch nanoseconds: millisecond truncation would make every reloaded
// snapshot look older than the live caption file.
type wireSnapshot struct {
	BuildID      string       `json:"buildId"`
	Media        []wireRecord `json:"media"`
	Timestamp    int64        `json:"timestamp"`
	Counts       []int        `json:"counts"`
	CaptionMtime int64        `json:"captionMtime"`
}

// MarshalJSON implements json.Marshaler.
func (s *Snapshot) MarshalJSON() ([]byte, error) {
	w := wireSnapshot{
		BuildID:   s.BuildID,
		Media:     make([]wireRecord, 0, len(s.Media)),
		Timestamp: s.Timestamp,
		Counts:    s.Counts,
	}
	if !s.CaptionMtime.IsZero() {
		w.CaptionMtime = s.CaptionMtime.UnixNano()
	}
	for _, rec := range s.Media {
		switch r := rec.(type) {
		case *ImageRecord:
			w.Media = append(w.Media, r.wire())
		case *VideoRecord:
			w.Media = append(w.Media, r.wire())
		}
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var w wireSnapshot
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	media := make([]Record, 0, len(w.Media))
	for _, wr := range w.Media {
		rec, err := fromWire(wr)
		if err != nil {
			return err
		}
		media = append(media, rec)
	}

	s.BuildID = w.BuildID
	s.Media = media
	s.Timestamp = w.Timestamp
	s.Counts = w.Counts
	if w.CaptionMtime != 0 {
		s.CaptionMtime = time.Unix(0, w.CaptionMtime)
	} else {
		s.CaptionMtime = time.Time{}
	}
	return nil
}
