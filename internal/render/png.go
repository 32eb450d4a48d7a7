package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"timewalker/internal/vtreplay"
)

// PNGRenderer exports ScreenState snapshots as bitmap images using a fixed
// monospace face, one character cell per glyph.
type PNGRenderer struct {
	face       font.Face
	padding    int
	background color.Color
	foreground color.Color
}

// PNGOptions configures a PNGRenderer. A zero value uses the built-in
// 7x13 bitmap face with a 12px padding on a black background.
type PNGOptions struct {
	Padding    int
	Background color.Color
	Foreground color.Color
}

// NewPNGRenderer builds a renderer from opts, filling in defaults for any
// zero fields.
func NewPNGRenderer(opts PNGOptions) *PNGRenderer {
	if opts.Padding <= 0 {
		opts.Padding = 12
	}
	if opts.Background == nil {
		opts.Background = color.Black
	}
	if opts.Foreground == nil {
		opts.Foreground = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	}
	return &PNGRenderer{
		face:       basicfont.Face7x13,
		padding:    opts.Padding,
		background: opts.Background,
		foreground: opts.Foreground,
	}
}

// Render writes a PNG encoding of state to w: one line of text per row,
// each the full untrimmed width of state.TextLines(), laid out on a grid
// sized to the face's advance and line height.
func (r *PNGRenderer) Render(w io.Writer, state vtreplay.ScreenState) error {
	lines := state.TextLines()
	if len(lines) == 0 {
		lines = []string{""}
	}

	metrics := r.face.Metrics()
	lineHeight := metrics.Height.Ceil()
	advance := font.MeasureString(r.face, "M").Ceil()

	maxCols := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > maxCols {
			maxCols = n
		}
	}

	width := maxCols*advance + r.padding*2
	if width < 1+r.padding*2 {
		width = 1 + r.padding*2
	}
	height := len(lines)*lineHeight + r.padding*2

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(r.foreground),
		Face: r.face,
	}

	ascent := metrics.Ascent.Ceil()
	for i, line := range lines {
		y := r.padding + i*lineHeight + ascent
		drawer.Dot = fixed.Point26_6{
			X: fixed.I(r.padding),
			Y: fixed.I(y),
		}
		drawer.DrawString(line)
	}

	return png.Encode(w, img)
}
