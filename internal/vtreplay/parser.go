// Package vtreplay implements the ANSI Replay Parser: it feeds a recorded
// byte stream through a VT emulator and produces the sequence of
// ScreenState snapshots a keyframe correlator or renderer can consume.
package vtreplay

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vito/midterm"

	"timewalker/internal/normalize"
	"timewalker/internal/twerr"
)

const defaultChunkSize = 4096

// Options configures Parse.
type Options struct {
	Rows         int
	Cols         int
	Capabilities normalize.Capabilities
	ChunkSize    int
}

// Parser wraps a VT engine and replays a recorded ANSI byte stream against
// it, snapshotting state after every chunk that produces output.
type Parser struct {
	opts Options
	vt   *midterm.Terminal
}

// NewParser constructs a Parser with a freshly initialized VT engine sized
// rows x cols.
func NewParser(opts Options) *Parser {
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = defaultChunkSize
	}
	return &Parser{
		opts: opts,
		vt:   midterm.NewTerminal(opts.Rows, opts.Cols),
	}
}

// Parse reads path from the start, feeding it through the normalizer and
// the VT engine chunkSize bytes at a time, and returns every snapshot
// taken along the way together with any normalization warnings.
func (p *Parser) Parse(path string) (ReplayResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ReplayResult{}, fmt.Errorf("open recording: %w: %v", twerr.ErrIO, err)
	}
	defer f.Close()

	var result ReplayResult
	buf := make([]byte, p.opts.ChunkSize)
	offset := 0

	for {
		n, readErr := f.Read(buf)
		if n > 0 {
			raw := buf[:n]
			normalized, warns := normalize.Normalize(raw, p.opts.Capabilities)
			for _, w := range warns {
				result.Warnings = append(result.Warnings, ParseWarning{
					Offset: offset,
					Kind:   w.Kind,
					Detail: describeWarning(w),
				})
			}
			offset += n

			if normalized != "" {
				p.vt.Write([]byte(normalized))
				result.States = append(result.States, p.snapshot(offset))
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			return result, fmt.Errorf("read recording: %w: %v", twerr.ErrIO, readErr)
		}
	}

	return result, nil
}

func describeWarning(w normalize.Warning) string {
	if w.Message != nil {
		return *w.Message
	}
	return w.Original
}

// snapshot extracts a fixed rows x cols ScreenState anchored to the
// cursor's current row, the same bottom-anchored windowing a live
// terminal view uses when the VT engine's content has grown past the
// configured window.
func (p *Parser) snapshot(offset int) ScreenState {
	rows, cols := p.opts.Rows, p.opts.Cols

	startRow := p.vt.Cursor.Y - rows + 1
	if startRow < 0 {
		startRow = 0
	}

	grid := make([][]Cell, rows)
	for r := 0; r < rows; r++ {
		srcRow := startRow + r
		grid[r] = p.snapshotRow(srcRow, cols)
	}

	return ScreenState{
		Offset:    offset,
		Rows:      rows,
		Cols:      cols,
		Grid:      grid,
		CursorRow: p.vt.Cursor.Y - startRow,
		CursorCol: p.vt.Cursor.X,
	}
}

func (p *Parser) snapshotRow(srcRow, cols int) []Cell {
	cells := make([]Cell, cols)
	if srcRow < 0 || srcRow >= len(p.vt.Content) {
		return cells
	}
	line := p.vt.Content[srcRow]

	pos := 0
	var style sgrStyle
	for region := range p.vt.Format.Regions(srcRow) {
		style = applySGR(sgrStyle{}, region.F.Render())
		end := pos + region.Size
		for col := pos; col < end && col < cols; col++ {
			var ch rune
			if col < len(line) {
				ch = line[col]
			}
			cells[col] = Cell{Char: ch, Style: cellStyleFrom(style)}
		}
		pos = end
	}
	return cells
}

// cellStyleFrom stores the logical (unswapped) fg/bg plus the Reverse flag;
// the renderer swaps them once at render time. Swapping here too would
// cancel out and render reverse-video cells with their normal colors.
func cellStyleFrom(s sgrStyle) CellStyle {
	return CellStyle{Fg: s.fg, Bg: s.bg, Bold: s.bold, Reverse: s.reverse}
}
