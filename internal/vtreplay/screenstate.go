package vtreplay

// CellStyle is the rendering attributes attached to one grid cell.
type CellStyle struct {
	Fg      string `json:"fg,omitempty"`
	Bg      string `json:"bg,omitempty"`
	Bold    bool   `json:"bold,omitempty"`
	Reverse bool   `json:"reverse,omitempty"`
}

// Cell is one character cell in a ScreenState's grid.
type Cell struct {
	Char  rune      `json:"char"`
	Style CellStyle `json:"style"`
}

// ScreenState is a fixed rows x cols snapshot of terminal contents taken
// after some prefix of the recorded byte stream has been fed to the VT
// engine, tagged with the raw byte offset that produced it.
type ScreenState struct {
	Offset    int      `json:"offset"`
	Rows      int      `json:"rows"`
	Cols      int      `json:"cols"`
	Grid      [][]Cell `json:"grid"`
	CursorRow int      `json:"cursor_row"`
	CursorCol int      `json:"cursor_col"`
}

// TextLines renders the grid back to plain text, one string per row: the
// full row-wise concatenation of each cell's char, untrimmed, matching
// ScreenState's fixed rows x cols shape.
func (s ScreenState) TextLines() []string {
	lines := make([]string, len(s.Grid))
	for i, row := range s.Grid {
		runes := make([]rune, len(row))
		for j, cell := range row {
			if cell.Char == 0 {
				runes[j] = ' '
			} else {
				runes[j] = cell.Char
			}
		}
		lines[i] = string(runes)
	}
	return lines
}

// ParseWarning mirrors a normalize.Warning, surfaced alongside the states
// produced while parsing a recording.
type ParseWarning struct {
	Offset int    `json:"offset"`
	Kind   string `json:"kind"`
	Detail string `json:"detail"`
}

// ReplayResult is everything Parser.Parse produces: the full
// sequence of snapshots taken as the recording was fed to the VT engine,
// plus any warnings collected along the way.
type ReplayResult struct {
	States   []ScreenState
	Warnings []ParseWarning
}
