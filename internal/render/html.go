package render

import (
	"fmt"
	"html"
	"io"
	"strings"

	"timewalker/internal/vtreplay"
)

var defaultPalette = map[string]string{
	"default":    "#d0d0d0",
	"default_bg": "#1d1f21",
}

// HTMLRenderer renders ScreenState snapshots to standalone HTML documents,
// one <span> per cell with inline fg/bg/bold styling and a "cursor" class
// on the active cell.
type HTMLRenderer struct {
	palette map[string]string
}

// NewHTMLRenderer builds a renderer. Entries in palette override the
// built-in default/default_bg colors and introduce any named colors a
// ScreenState's cells reference directly (hex strings bypass the palette
// entirely).
func NewHTMLRenderer(palette map[string]string) *HTMLRenderer {
	merged := make(map[string]string, len(defaultPalette)+len(palette))
	for k, v := range defaultPalette {
		merged[k] = v
	}
	for k, v := range palette {
		merged[k] = v
	}
	return &HTMLRenderer{palette: merged}
}

// Render writes a complete HTML document for state to w.
func (r *HTMLRenderer) Render(w io.Writer, state vtreplay.ScreenState, title string) error {
	if title == "" {
		title = "Terminal Frame"
	}
	var body strings.Builder
	for rowIdx, row := range state.Grid {
		for colIdx, cell := range row {
			r.renderCell(&body, rowIdx, colIdx, cell, state)
		}
		body.WriteByte('\n')
	}

	_, err := fmt.Fprintf(w,
		"<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n"+
			"<title>%s</title>\n<style>\n"+
			"body { background: #1d1f21; color: #d0d0d0; font-family: 'Fira Code', 'Consolas', 'Menlo', monospace; }\n"+
			"pre { line-height: 1.2; font-size: 14px; margin: 16px; }\n"+
			".cursor { outline: 1px solid #ffb454; }\n"+
			"</style>\n</head>\n<body>\n<pre>\n%s</pre>\n</body>\n</html>\n",
		html.EscapeString(title), body.String())
	return err
}

func (r *HTMLRenderer) renderCell(buf *strings.Builder, rowIdx, colIdx int, cell vtreplay.Cell, state vtreplay.ScreenState) {
	char := "&nbsp;"
	if cell.Char != 0 && cell.Char != ' ' {
		char = html.EscapeString(string(cell.Char))
	}

	fg := r.resolve(cell.Style.Fg, "default")
	bg := r.resolve(cell.Style.Bg, "default_bg")
	if cell.Style.Reverse {
		fg, bg = bg, fg
	}

	styles := fmt.Sprintf("color: %s;background: %s;", fg, bg)
	if cell.Style.Bold {
		styles += "font-weight: bold;"
	}

	class := ""
	if rowIdx == state.CursorRow && colIdx == state.CursorCol {
		class = " class=\"cursor\""
	}

	fmt.Fprintf(buf, "<span%s style=\"%s\">%s</span>", class, styles, char)
}

func (r *HTMLRenderer) resolve(name, fallbackKey string) string {
	if name == "" {
		return r.palette[fallbackKey]
	}
	if strings.HasPrefix(name, "#") {
		return name
	}
	if v, ok := r.palette[name]; ok {
		return v
	}
	return r.palette[fallbackKey]
}
