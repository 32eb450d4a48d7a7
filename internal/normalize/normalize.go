// Package normalize rewrites or suppresses DEC-private and OSC escape
// sequences in a raw PTY byte chunk, per a TerminalCapabilities gate, and
// reports removed sequences as structured warnings.
package normalize

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Capabilities gates which escape sequence families pass through
// unmodified versus get deleted and reported as warnings.
type Capabilities struct {
	SupportsDECPrivate bool
	AllowOSC           bool
}

// Warning describes one removed (or, capability permitting, passed
// through) escape sequence. Normalize only emits a Warning for sequences
// it actually deleted.
type Warning struct {
	Kind       string  // "dec-private" or "osc-suppressed"
	Original   string  // human-readable escaped form of the removed sequence
	Normalized *string // always "" when present; nil when not applicable
	Message    *string
}

var (
	decPrivateRe = regexp.MustCompile(`\x1b\[\?[0-9;]*[hl]`)
	oscRe        = regexp.MustCompile(`(?s)\x1b\].*?(?:\x07|\x1b\\)`)
)

// Normalize decodes chunk as lossy UTF-8, then deletes or passes through
// DEC-private and OSC sequences per caps, returning the resulting text and
// one Warning per deleted occurrence. All other bytes pass unchanged.
func Normalize(chunk []byte, caps Capabilities) (string, []Warning) {
	text := decodeUTF8Ignore(chunk)
	var warnings []Warning

	text = decPrivateRe.ReplaceAllStringFunc(text, func(seq string) string {
		if caps.SupportsDECPrivate {
			return seq
		}
		warnings = append(warnings, Warning{Kind: "dec-private", Original: reprEscape(seq), Normalized: ptr("")})
		return ""
	})

	text = oscRe.ReplaceAllStringFunc(text, func(seq string) string {
		if caps.AllowOSC {
			return seq
		}
		warnings = append(warnings, Warning{Kind: "osc-suppressed", Original: reprEscape(seq), Normalized: ptr("")})
		return ""
	})

	return text, warnings
}

func ptr(s string) *string { return &s }

// decodeUTF8Ignore mirrors Python's bytes.decode("utf-8", errors="ignore"):
// invalid sequences are dropped rather than replaced with U+FFFD.
func decodeUTF8Ignore(chunk []byte) string {
	var b strings.Builder
	b.Grow(len(chunk))
	for len(chunk) > 0 {
		r, size := utf8.DecodeRune(chunk)
		if r == utf8.RuneError && size <= 1 {
			chunk = chunk[1:]
			continue
		}
		b.WriteRune(r)
		chunk = chunk[size:]
	}
	return b.String()
}

// reprEscape renders seq the way a human would quote it in a diagnostic
// message: JSON string quoting (minus the surrounding quotes) turns
// control bytes into -style escapes.
func reprEscape(seq string) string {
	data, _ := json.Marshal(seq)
	if len(data) >= 2 {
		return string(data[1 : len(data)-1])
	}
	return seq
}
