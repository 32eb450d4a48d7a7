package twcmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionCmdPrintsDisplayVersion(t *testing.T) {
	cmd := newVersionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.RunE(cmd, nil); err != nil {
		t.Fatalf("RunE: %v", err)
	}
	if !strings.HasPrefix(out.String(), "v") {
		t.Fatalf("expected version output to start with 'v', got %q", out.String())
	}
}
