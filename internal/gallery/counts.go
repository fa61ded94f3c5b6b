package gallery

import (
	"io/fs"
	"path/filepath"
)

// countFiles counts the regular files under dir, recursively. It is the
// cheap drift fingerprint: a changed count means the snapshot no longer
// reflects disk state.
func countFiles(dir string) (int, error) {
	count := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
