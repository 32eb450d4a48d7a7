// Package recorder implements the append-only raw byte log that backs
// ansi.bin: every byte read from a PTY master, in arrival order, with a
// monotonically increasing offset counter.
package recorder

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"timewalker/internal/twerr"
)

// Recorder persists a byte stream to disk while tracking its offset.
// All mutation is serialized under mu, and Offset reads the counter under
// the same mutex (see Registry.Mark's weak-consistency note in the
// keyframe package).
type Recorder struct {
	mu     sync.Mutex
	file   *os.File
	path   string
	offset int
	closed bool
}

// Open creates (or truncates) the file at path, creating its parent
// directory if absent.
func Open(path string) (*Recorder, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create recorder dir: %w: %v", twerr.ErrIO, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create recorder file: %w: %v", twerr.ErrIO, err)
	}
	return &Recorder{file: f, path: path}, nil
}

// Path returns the backing file path.
func (r *Recorder) Path() string {
	return r.path
}

// Offset returns the number of bytes appended so far.
func (r *Recorder) Offset() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.offset
}

// Append writes chunk to the file and returns the new offset. An empty
// chunk is a no-op that returns the current offset.
func (r *Recorder) Append(chunk []byte) (int, error) {
	if len(chunk) == 0 {
		return r.Offset(), nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return r.offset, fmt.Errorf("append to closed recorder: %w", twerr.ErrInvariantViolation)
	}
	if _, err := r.file.Write(chunk); err != nil {
		return r.offset, fmt.Errorf("write recorder chunk: %w: %v", twerr.ErrIO, err)
	}
	r.offset += len(chunk)
	return r.offset, nil
}

// Close flushes and closes the backing file. Idempotent.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	if err := r.file.Sync(); err != nil {
		_ = r.file.Close()
		return fmt.Errorf("sync recorder file: %w: %v", twerr.ErrIO, err)
	}
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("close recorder file: %w: %v", twerr.ErrIO, err)
	}
	return nil
}
