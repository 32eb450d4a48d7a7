package twcmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestRunCmdMissingScenarioReturnsError(t *testing.T) {
	cmd := newRunCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.json")})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for missing scenario file")
	}
}

func TestRunCmdInvalidScenarioReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.json")
	if err := os.WriteFile(path, []byte(`{"meta": {}}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cmd := newRunCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{path})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected schema validation error for scenario missing command/steps")
	}
}
