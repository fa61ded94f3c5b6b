//go:build !linux

package scanner

import (
	"os"
	"time"
)

// createdTime approximates creation time with the modification time on
// platforms without a portable ctime.
func createdTime(info os.FileInfo) time.Time {
	return info.ModTime()
}
