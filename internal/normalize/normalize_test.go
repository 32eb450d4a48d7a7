package normalize

import (
	"strings"
	"testing"
)

func TestNormalizePassesCleanTextThrough(t *testing.T) {
	text, warns := Normalize([]byte("hello\r\nworld"), Capabilities{})
	if text != "hello\r\nworld" {
		t.Fatalf("text = %q", text)
	}
	if len(warns) != 0 {
		t.Fatalf("expected no warnings, got %+v", warns)
	}
}

func TestNormalizeIsIdempotentOnCleanInput(t *testing.T) {
	input := "plain output with no escapes\nsecond line"
	first, _ := Normalize([]byte(input), Capabilities{})
	second, _ := Normalize([]byte(first), Capabilities{})
	if first != second {
		t.Fatalf("normalize not idempotent: %q != %q", first, second)
	}
}

func TestNormalizeSuppressesDECPrivateWhenUnsupported(t *testing.T) {
	chunk := []byte("before\x1b[?25lafter")
	text, warns := Normalize(chunk, Capabilities{SupportsDECPrivate: false})
	if text != "beforeafter" {
		t.Fatalf("text = %q", text)
	}
	if len(warns) != 1 || warns[0].Kind != "dec-private" {
		t.Fatalf("unexpected warnings: %+v", warns)
	}
	if warns[0].Normalized == nil || *warns[0].Normalized != "" {
		t.Fatalf("expected Normalized to be a pointer to empty string, got %v", warns[0].Normalized)
	}
}

func TestNormalizePassesDECPrivateThroughWhenSupported(t *testing.T) {
	chunk := []byte("before\x1b[?25lafter")
	text, warns := Normalize(chunk, Capabilities{SupportsDECPrivate: true})
	if text != "before\x1b[?25lafter" {
		t.Fatalf("text = %q", text)
	}
	if len(warns) != 0 {
		t.Fatalf("expected no warnings, got %+v", warns)
	}
}

func TestNormalizeSuppressesOSCWhenDisallowed(t *testing.T) {
	chunk := []byte("x\x1b]0;title\x07y")
	text, warns := Normalize(chunk, Capabilities{AllowOSC: false})
	if text != "xy" {
		t.Fatalf("text = %q", text)
	}
	if len(warns) != 1 || warns[0].Kind != "osc-suppressed" {
		t.Fatalf("unexpected warnings: %+v", warns)
	}
	if !strings.Contains(warns[0].Original, "0;title") {
		t.Fatalf("Original = %q, want it to contain the OSC payload", warns[0].Original)
	}
}

func TestNormalizeDropsInvalidUTF8Bytes(t *testing.T) {
	chunk := []byte{'a', 0xff, 'b'}
	text, _ := Normalize(chunk, Capabilities{})
	if text != "ab" {
		t.Fatalf("text = %q, want %q", text, "ab")
	}
}
