package pump

import (
	"fmt"
	"sync"
	"time"

	"testing"

	"timewalker/internal/outputbuffer"
	"timewalker/internal/recorder"
	"timewalker/internal/twerr"
)

type fakeSession struct {
	mu      sync.Mutex
	chunks  [][]byte
	idx     int
	running bool
}

func (f *fakeSession) Read(timeout time.Duration) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.idx >= len(f.chunks) {
		return nil, fmt.Errorf("read: %w", twerr.ErrTimeout)
	}
	chunk := f.chunks[f.idx]
	f.idx++
	return chunk, nil
}

func (f *fakeSession) IsRunning() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.running
}

func (f *fakeSession) stop() {
	f.mu.Lock()
	f.running = false
	f.mu.Unlock()
}

func TestPumpForwardsChunksInOrder(t *testing.T) {
	session := &fakeSession{chunks: [][]byte{[]byte("one"), []byte("two")}, running: true}
	rec, err := recorder.Open(t.TempDir() + "/ansi.bin")
	if err != nil {
		t.Fatalf("recorder.Open: %v", err)
	}
	defer rec.Close()
	buf := outputbuffer.New()

	p := New(session, rec, buf, 20*time.Millisecond)
	p.Start()

	if !buf.WaitUntil(func(s string) bool { return s == "onetwo" }, 2*time.Second) {
		t.Fatalf("expected buffer to accumulate both chunks, got %q", buf.AsText())
	}

	session.stop()
	p.Stop()
	if !p.Join(2 * time.Second) {
		t.Fatal("expected pump to finish after Stop")
	}

	if rec.Offset() != len("onetwo") {
		t.Fatalf("recorder offset = %d, want %d", rec.Offset(), len("onetwo"))
	}
}

func TestPumpStopIsIdempotent(t *testing.T) {
	session := &fakeSession{running: true}
	rec, err := recorder.Open(t.TempDir() + "/ansi.bin")
	if err != nil {
		t.Fatalf("recorder.Open: %v", err)
	}
	defer rec.Close()
	buf := outputbuffer.New()

	p := New(session, rec, buf, 10*time.Millisecond)
	p.Start()
	session.stop()
	p.Stop()
	p.Stop()
	if !p.Join(2 * time.Second) {
		t.Fatal("expected pump to finish")
	}
}
