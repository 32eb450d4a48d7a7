package vtreplay

import "testing"

func TestApplySGRBasicForeground(t *testing.T) {
	style := applySGR(sgrStyle{}, "\x1b[31m")
	if style.fg != ansi16[1] {
		t.Fatalf("fg = %q, want %q", style.fg, ansi16[1])
	}
}

func TestApplySGRBoldAndReset(t *testing.T) {
	style := applySGR(sgrStyle{}, "\x1b[1;31m")
	if !style.bold || style.fg != ansi16[1] {
		t.Fatalf("unexpected style: %+v", style)
	}
	style = applySGR(style, "\x1b[0m")
	if style.bold || style.fg != "" {
		t.Fatalf("expected reset style, got %+v", style)
	}
}

func TestApplySGRTruecolor(t *testing.T) {
	style := applySGR(sgrStyle{}, "\x1b[38;2;10;20;30m")
	if style.fg != "#0a141e" {
		t.Fatalf("fg = %q, want #0a141e", style.fg)
	}
}

func TestApplySGR256Color(t *testing.T) {
	style := applySGR(sgrStyle{}, "\x1b[48;5;15m")
	if style.bg != ansi16[15] {
		t.Fatalf("bg = %q, want %q", style.bg, ansi16[15])
	}
}
