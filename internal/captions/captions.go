package captions

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"time"

	"media-gallery/internal/logging"
	"media-gallery/internal/metrics"
)

// Entry holds the caption data attached to one media record.
type Entry struct {
	// Captions is the tag list rejoined with commas; a derived encoding
	// of Tags kept for the wire format, empty when there are no tags.
	Captions string
	// Tags is the ordered list of trimmed, non-empty tag strings.
	Tags []string
}

// Index is a parsed caption file. Missing is set when the file could not
// be opened and the index was forced empty.
type Index struct {
	Entries map[int]Entry
	ModTime time.Time
	Missing bool
}

// Load parses the line-oriented caption file at path. Each non-blank line
// is `<numeric-id>,<tag1>,<tag2>,...`; the first field keys the entry and
// the rest are tags. Malformed lines are discarded with a warning. A
// missing or unreadable file yields an empty index, never an error.
func Load(path string) Index {
	idx := Index{Entries: make(map[int]Entry)}

	info, err := os.Stat(path)
	if err == nil {
		idx.ModTime = info.ModTime()
	}

	f, err := os.Open(path)
	if err != nil {
		logging.Warn("captions: cannot open %s: %v", path, err)
		idx.Missing = true
		return idx
	}
	defer func() {
		if err := f.Close(); err != nil {
			logging.Warn("captions: failed to close %s: %v", path, err)
		}
	}()

	lineNo := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			logging.Warn("captions: line %d: bad id %q, skipping", lineNo, fields[0])
			metrics.CaptionLinesSkipped.Inc()
			continue
		}

		var tags []string
		for _, field := range fields[1:] {
			tag := strings.TrimSpace(field)
			if tag != "" {
				tags = append(tags, tag)
			}
		}

		idx.Entries[id] = Entry{
			Captions: strings.Join(tags, ","),
			Tags:     tags,
		}
	}

	if err := sc.Err(); err != nil {
		logging.Warn("captions: error reading %s: %v", path, err)
	}

	metrics.CaptionEntriesLoaded.Set(float64(len(idx.Entries)))
	logging.Debug("captions: loaded %d entries from %s", len(idx.Entries), path)
	return idx
}

// ModTime returns the caption file's current modification time, or the
// zero time when the file cannot be statted.
func ModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}
