package keyframe

import (
	"path/filepath"
	"testing"
	"time"
)

type fakeOffsetSource struct{ offset int }

func (f *fakeOffsetSource) Offset() int { return f.offset }

func TestMarkSnapshotsOffsetAndTimestamp(t *testing.T) {
	src := &fakeOffsetSource{offset: 10}
	reg := NewRegistry(src, filepath.Join(t.TempDir(), "keyframes.json"))
	reg.now = func() time.Time { return time.Unix(100, 0) }

	frame := reg.Mark("first")
	if frame.Label != "first" || frame.Offset != 10 || frame.Timestamp != 100 {
		t.Fatalf("unexpected frame: %+v", frame)
	}

	src.offset = 42
	frame = reg.Mark("second")
	if frame.Offset != 42 {
		t.Fatalf("frame.Offset = %d, want 42", frame.Offset)
	}

	records := reg.Records()
	if len(records) != 2 || records[0].Label != "first" || records[1].Label != "second" {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestFlushAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "keyframes.json")
	src := &fakeOffsetSource{offset: 5}
	reg := NewRegistry(src, path)
	reg.Mark("a")
	reg.Mark("b")

	if err := reg.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 2 || loaded[0].Label != "a" || loaded[1].Label != "b" {
		t.Fatalf("unexpected loaded frames: %+v", loaded)
	}
}

func TestClearEmptiesFrames(t *testing.T) {
	src := &fakeOffsetSource{}
	reg := NewRegistry(src, filepath.Join(t.TempDir(), "keyframes.json"))
	reg.Mark("a")
	reg.Clear()
	if len(reg.Records()) != 0 {
		t.Fatalf("expected no records after Clear, got %d", len(reg.Records()))
	}
}
