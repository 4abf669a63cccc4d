package logging

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

// RotateIfOversized renames the log file to a timestamped archive once it
// grows past maxSizeMiB. A zero or negative limit disables rotation. The
// rename is serialized through a lock file next to the log so two processes
// sharing the same log directory cannot both archive the same file.
func RotateIfOversized(path string, maxSizeMiB int) error {
	if maxSizeMiB <= 0 || strings.TrimSpace(path) == "" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat log file %s: %w", path, err)
	}
	if info.Size() < int64(maxSizeMiB)*1024*1024 {
		return nil
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock log file %s: %w", path, err)
	}
	if !locked {
		// Another process is rotating right now; nothing left to do here.
		return nil
	}
	defer lock.Unlock() //nolint:errcheck

	// Re-check under the lock: the winner of a rotation race already moved
	// the file aside.
	info, err = os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat log file %s: %w", path, err)
	}
	if info.Size() < int64(maxSizeMiB)*1024*1024 {
		return nil
	}

	archived := archiveName(path, time.Now())
	if err := os.Rename(path, archived); err != nil {
		return fmt.Errorf("archive log file %s: %w", path, err)
	}
	return nil
}

// archiveName derives the timestamped sibling name for a rotated log file:
// lantern.log becomes lantern-20060102T150405.log.
func archiveName(path string, now time.Time) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	stamp := now.UTC().Format("20060102T150405")
	return filepath.Join(dir, stem+"-"+stamp+ext)
}
