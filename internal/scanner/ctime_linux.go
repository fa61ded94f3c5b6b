//go:build linux

package scanner

import (
	"os"
	"syscall"
	"time"
)

// createdTime returns the inode change time, the closest thing Linux
// exposes to a creation timestamp. Falls back to mtime when the
// underlying stat type is unavailable.
func createdTime(info os.FileInfo) time.Time {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(stat.Ctim.Sec, stat.Ctim.Nsec)
	}
	return info.ModTime()
}
