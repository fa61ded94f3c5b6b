package gallery

import (
	"testing"
	"time"

	"media-gallery/internal/mediatypes"
	"media-gallery/internal/scanner"
)

func entryAt(name string, created time.Time) scanner.Entry {
	return scanner.Entry{RelPath: name, Name: name, Created: created}
}

func TestAssignIdentityNewestFirst(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	images := []scanner.Entry{
		entryAt("old-image", base),
		entryAt("new-image", base.Add(2*time.Hour)),
	}
	videos := []scanner.Entry{
		entryAt("mid-video", base.Add(time.Hour)),
	}

	items := assignIdentity(images, videos)
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}

	wantOrder := []string{"new-image", "mid-video", "old-image"}
	for i, want := range wantOrder {
		if items[i].entry.Name != want {
			t.Errorf("position %d = %q, want %q", i, items[i].entry.Name, want)
		}
		if items[i].id != i+1 {
			t.Errorf("position %d id = %d, want %d", i, items[i].id, i+1)
		}
	}
}

func TestAssignIdentityTieBreakImagesFirst(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	images := []scanner.Entry{entryAt("image", created)}
	videos := []scanner.Entry{entryAt("video", created)}

	items := assignIdentity(images, videos)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].kind != mediatypes.KindImage {
		t.Errorf("first item kind = %q, want image on timestamp tie", items[0].kind)
	}
	if items[1].kind != mediatypes.KindVideo {
		t.Errorf("second item kind = %q, want video", items[1].kind)
	}
}

func TestAssignIdentityDenseIDs(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var images []scanner.Entry
	for i := 0; i < 5; i++ {
		images = append(images, entryAt("img", base.Add(time.Duration(i)*time.Minute)))
	}

	items := assignIdentity(images, nil)
	for i, it := range items {
		if it.id != i+1 {
			t.Fatalf("ids not dense: position %d has id %d", i, it.id)
		}
	}
}

func TestAssignIdentityEmpty(t *testing.T) {
	if items := assignIdentity(nil, nil); len(items) != 0 {
		t.Errorf("got %d items for empty input", len(items))
	}
}
