// Package runlock guards an output directory against concurrent
// timewalker runs writing to the same path.
package runlock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"timewalker/internal/twerr"
)

// Lock holds an advisory, non-blocking exclusive lock on <dir>/.lock for
// the duration of one run invocation.
type Lock struct {
	fl *flock.Flock
}

// Acquire creates dir if needed and takes a non-blocking exclusive lock on
// its .lock file. It returns twerr.ErrInvariantViolation if another
// process already holds the lock.
func Acquire(dir string) (*Lock, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w: %v", twerr.ErrIO, err)
	}

	fl := flock.New(filepath.Join(dir, ".lock"))
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w: %v", twerr.ErrIO, err)
	}
	if !locked {
		return nil, fmt.Errorf("acquire run lock: %w: %s is in use by another run", twerr.ErrInvariantViolation, dir)
	}
	return &Lock{fl: fl}, nil
}

// Release drops the lock.
func (l *Lock) Release() error {
	return l.fl.Unlock()
}
