package vtreplay

import (
	"fmt"
	"strconv"
	"strings"
)

// sgrStyle is the decoded form of one SGR (Select Graphic Rendition)
// parameter sequence: a foreground/background color (as a CSS-ready hex
// string, when set) plus the bold/reverse flags CellStyle tracks.
type sgrStyle struct {
	fg      string
	bg      string
	bold    bool
	reverse bool
}

// ansi16 is the standard 16-color ANSI palette, indexed 0-15 (0-7 normal,
// 8-15 bright).
var ansi16 = [16]string{
	"#000000", "#d70000", "#5f8700", "#875f00",
	"#005faf", "#af005f", "#00afaf", "#e4e4e4",
	"#585858", "#ff5f5f", "#87ff5f", "#ffffaf",
	"#5fd7ff", "#ff87ff", "#5fffff", "#ffffff",
}

// applySGR parses a string that may contain one or more "\x1b[...m"
// sequences (as produced by a terminal emulator's Format.Render) and
// folds their parameters onto style, left to right, the same way a real
// terminal applies successive SGR sequences.
func applySGR(style sgrStyle, rendered string) sgrStyle {
	for _, seq := range extractSGRSequences(rendered) {
		style = applySGRParams(style, seq)
	}
	return style
}

// extractSGRSequences pulls the parameter text out of each "\x1b[<params>m"
// substring in s.
func extractSGRSequences(s string) []string {
	var out []string
	for {
		start := strings.Index(s, "\x1b[")
		if start < 0 {
			return out
		}
		s = s[start+2:]
		end := strings.IndexByte(s, 'm')
		if end < 0 {
			return out
		}
		out = append(out, s[:end])
		s = s[end+1:]
	}
}

func applySGRParams(style sgrStyle, params string) sgrStyle {
	codes := splitParams(params)
	for i := 0; i < len(codes); i++ {
		code := codes[i]
		switch {
		case code == 0:
			style = sgrStyle{}
		case code == 1:
			style.bold = true
		case code == 22:
			style.bold = false
		case code == 7:
			style.reverse = true
		case code == 27:
			style.reverse = false
		case code == 39:
			style.fg = ""
		case code == 49:
			style.bg = ""
		case code >= 30 && code <= 37:
			style.fg = ansi16[code-30]
		case code >= 90 && code <= 97:
			style.fg = ansi16[code-90+8]
		case code >= 40 && code <= 47:
			style.bg = ansi16[code-40]
		case code >= 100 && code <= 107:
			style.bg = ansi16[code-100+8]
		case code == 38 || code == 48:
			color, consumed := parseExtendedColor(codes[i+1:])
			if code == 38 {
				style.fg = color
			} else {
				style.bg = color
			}
			i += consumed
		}
	}
	return style
}

// parseExtendedColor handles the "5;N" (256-color) and "2;r;g;b"
// (truecolor) extended SGR color forms, returning the resolved hex color
// and how many additional codes it consumed.
func parseExtendedColor(rest []int) (string, int) {
	if len(rest) == 0 {
		return "", 0
	}
	switch rest[0] {
	case 5:
		if len(rest) < 2 {
			return "", 1
		}
		return colorFrom256(rest[1]), 2
	case 2:
		if len(rest) < 4 {
			return "", len(rest)
		}
		return fmt.Sprintf("#%02x%02x%02x", rest[1], rest[2], rest[3]), 4
	default:
		return "", 1
	}
}

func colorFrom256(n int) string {
	switch {
	case n < 16:
		return ansi16[n]
	case n < 232:
		n -= 16
		r := (n / 36) % 6
		g := (n / 6) % 6
		b := n % 6
		return fmt.Sprintf("#%02x%02x%02x", cube(r), cube(g), cube(b))
	default:
		level := 8 + (n-232)*10
		return fmt.Sprintf("#%02x%02x%02x", level, level, level)
	}
}

func cube(v int) int {
	if v == 0 {
		return 0
	}
	return 55 + v*40
}

func splitParams(params string) []int {
	if params == "" {
		return []int{0}
	}
	parts := strings.Split(params, ";")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			out = append(out, 0)
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}
