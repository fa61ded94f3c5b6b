package gallery

import (
	"testing"

	"media-gallery/internal/mediatypes"
)

func image(id string, tags ...string) *ImageRecord {
	return &ImageRecord{Meta: Meta{ID: id, Tags: tags}}
}

func video(id string, duration int, tags ...string) *VideoRecord {
	return &VideoRecord{Meta: Meta{ID: id, Tags: tags}, Duration: duration}
}

func ids(media []Record) []string {
	out := make([]string, 0, len(media))
	for _, rec := range media {
		out = append(out, rec.Common().ID)
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApplyFilters(t *testing.T) {
	media := []Record{
		image("1", "sunset", "beach"),
		video("2", 45, "beach"),
		video("3", 120),
		video("4", 400, "Sunset Timelapse"),
		image("5"),
	}

	tests := []struct {
		name    string
		filters Filters
		want    []string
	}{
		{"no filters", Filters{}, []string{"1", "2", "3", "4", "5"}},
		{"kind image", Filters{Kind: mediatypes.KindImage}, []string{"1", "5"}},
		{"kind video", Filters{Kind: mediatypes.KindVideo}, []string{"2", "3", "4"}},
		{"tag exact", Filters{Tag: "beach"}, []string{"1", "2"}},
		{"tag substring case insensitive", Filters{Tag: "sunset"}, []string{"1", "4"}},
		{"tag no match", Filters{Tag: "mountain"}, nil},
		{"bucket short video", Filters{Kind: mediatypes.KindVideo, Bucket: mediatypes.BucketShort}, []string{"2"}},
		{"bucket medium video", Filters{Kind: mediatypes.KindVideo, Bucket: mediatypes.BucketMedium}, []string{"3"}},
		{"bucket long video", Filters{Kind: mediatypes.KindVideo, Bucket: mediatypes.BucketLong}, []string{"4"}},
		{"bucket without kind excludes images", Filters{Bucket: mediatypes.BucketShort}, []string{"2"}},
		{"bucket with kind image is ignored", Filters{Kind: mediatypes.KindImage, Bucket: mediatypes.BucketShort}, []string{"1", "5"}},
		{"kind and tag compose", Filters{Kind: mediatypes.KindVideo, Tag: "beach"}, []string{"2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(applyFilters(media, tt.filters))
			if !equalIDs(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyFiltersPreservesOrder(t *testing.T) {
	media := []Record{video("9", 10), video("3", 20), video("7", 30)}

	got := ids(applyFilters(media, Filters{Kind: mediatypes.KindVideo}))
	if !equalIDs(got, []string{"9", "3", "7"}) {
		t.Errorf("order changed: %v", got)
	}
}
