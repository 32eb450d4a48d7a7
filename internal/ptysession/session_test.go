package ptysession

import (
	"strings"
	"testing"
	"time"
)

func TestOpenRejectsEmptyCommand(t *testing.T) {
	_, err := Open(nil, DefaultSize, nil, "")
	if err == nil {
		t.Fatal("expected error for empty command")
	}
}

func TestWriteReadEcho(t *testing.T) {
	s, err := Open([]string{"/bin/sh", "-c", "cat"}, DefaultSize, nil, "")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if _, err := s.Write([]byte("ping\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	var collected strings.Builder
	for time.Now().Before(deadline) {
		chunk, err := s.Read(200 * time.Millisecond)
		if err != nil {
			continue
		}
		collected.Write(chunk)
		if strings.Contains(collected.String(), "ping") {
			break
		}
	}
	if !strings.Contains(collected.String(), "ping") {
		t.Fatalf("expected echoed output to contain %q, got %q", "ping", collected.String())
	}
}

func TestWaitReturnsExitStatus(t *testing.T) {
	s, err := Open([]string{"/bin/sh", "-c", "exit 0"}, DefaultSize, nil, "")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	status, err := s.Wait(2 * time.Second)
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if !status.Succeeded() {
		t.Fatalf("expected success, got %+v", status)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	s, err := Open([]string{"/bin/sh", "-c", "sleep 5"}, DefaultSize, nil, "")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
