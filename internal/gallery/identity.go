package gallery

import (
	"sort"

	"media-gallery/internal/mediatypes"
	"media-gallery/internal/scanner"
)

// scanItem is one entry tagged with its kind, before identity assignment.
type scanItem struct {
	kind  mediatypes.Kind
	entry scanner.Entry
	id    int
}

// assignIdentity merges the image and video scan results into one list
// ordered newest-first by creation time and assigns each item a dense
// 1-based positional id. The sort is stable over the concatenation order,
// so equal timestamps keep images before videos. Ids are recomputed
// wholesale on every build: any timestamp change reshuffles them.
func assignIdentity(images, videos []scanner.Entry) []scanItem {
	items := make([]scanItem, 0, len(images)+len(videos))
	for _, e := range images {
		items = append(items, scanItem{kind: mediatypes.KindImage, entry: e})
	}
	for _, e := range videos {
		items = append(items, scanItem{kind: mediatypes.KindVideo, entry: e})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].entry.Created.After(items[j].entry.Created)
	})

	for i := range items {
		items[i].id = i + 1
	}

	return items
}
