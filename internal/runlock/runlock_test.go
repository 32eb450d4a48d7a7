package runlock

import (
	"path/filepath"
	"testing"
)

func TestAcquireBlocksSecondCaller(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")

	lock, err := Acquire(dir)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer lock.Release()

	if _, err := Acquire(dir); err == nil {
		t.Fatal("expected second Acquire on the same dir to fail")
	}
}

func TestReleaseAllowsReacquire(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")

	lock, err := Acquire(dir)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if err := lock.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}

	second, err := Acquire(dir)
	if err != nil {
		t.Fatalf("Acquire after release: %v", err)
	}
	defer second.Release()
}
