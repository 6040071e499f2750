package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/iburimskiy/glyph-ripple/internal/config"
	"github.com/iburimskiy/glyph-ripple/internal/ripple"
)

// glowTint is how much of the glow colour bleeds into a cell background.
const glowTint = 0.25

// Surface maps the terminal onto virtual pixels: every cell is
// TermCellWidth x TermCellHeight, so the effect keeps the proportions it
// has in a window.
type Surface struct {
	screen tcell.Screen
	canvas *canvas
}

// NewSurface wraps an initialised screen. A nil screen gives a surface
// without a drawing context.
func NewSurface(screen tcell.Screen) *Surface {
	s := &Surface{screen: screen}
	if screen != nil {
		s.canvas = &canvas{screen: screen, background: fromRGBA(config.BackgroundColor)}
		s.resize()
	}
	return s
}

func (s *Surface) Size() (int, int) {
	if s.canvas == nil {
		return 0, 0
	}
	return s.canvas.cols * config.TermCellWidth, s.canvas.rows * config.TermCellHeight
}

func (s *Surface) Context() ripple.Context {
	if s.canvas == nil {
		return nil
	}
	return s.canvas
}

// resize picks up the current terminal size.
func (s *Surface) resize() {
	cols, rows := s.screen.Size()
	s.canvas.resize(cols, rows)
}

type cell struct {
	ch     rune
	fg, bg colorful.Color
	bold   bool
}

// canvas composites layers into a cell buffer and pushes it to the screen
// on Flush.
type canvas struct {
	screen     tcell.Screen
	background colorful.Color
	cols, rows int
	cells      []cell
}

func (c *canvas) resize(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	c.cells = make([]cell, c.cols*c.rows)
	c.Clear()
}

// MeasureText ignores the size: every run is one row high and one column
// per display cell wide.
func (c *canvas) MeasureText(s string, _ ripple.TextStyle) ripple.Extents {
	return ripple.Extents{
		Width:  float64(runewidth.StringWidth(s) * config.TermCellWidth),
		Ascent: config.TermCellHeight / config.GlyphRowPadding,
	}
}

func (c *canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{ch: ' ', fg: c.background, bg: c.background}
	}
}

func (c *canvas) FillText(s string, x, y float64, style ripple.TextStyle, layer ripple.Layer) {
	if layer.Alpha <= 0 {
		return
	}
	col, row := place(s, x, y, style)
	fg := fromRGBA(layer.Color)
	alpha := math.Min(layer.Alpha, 1)
	for _, r := range s {
		c.blend(col, row, r, fg, alpha, layer.Glow)
		col += max(runewidth.RuneWidth(r), 1)
	}
}

// SnapText is the cell box FillText writes s into.
func (c *canvas) SnapText(s string, x, y float64, style ripple.TextStyle) ripple.Rect {
	col, row := place(s, x, y, style)
	return ripple.Rect{
		X: float64(col * config.TermCellWidth),
		Y: float64(row * config.TermCellHeight),
		W: float64(runewidth.StringWidth(s) * config.TermCellWidth),
		H: config.TermCellHeight,
	}
}

// place finds the first cell of a run. Middle-aligned text goes to the row
// containing y.
func place(s string, x, y float64, style ripple.TextStyle) (col, row int) {
	if style.Align == ripple.AlignCenter {
		x -= float64(runewidth.StringWidth(s)*config.TermCellWidth) / 2
	}
	col = int(math.Round(x / config.TermCellWidth))
	if style.Baseline == ripple.BaselineMiddle {
		row = int(math.Floor(y / config.TermCellHeight))
	} else {
		row = int(math.Round(y / config.TermCellHeight))
	}
	return col, row
}

func (c *canvas) blend(col, row int, r rune, fg colorful.Color, alpha float64, glow ripple.Glow) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return
	}
	dst := &c.cells[row*c.cols+col]
	if dst.ch != r {
		// a different glyph starts over from the background
		dst.ch = r
		dst.fg = c.background
	}
	dst.fg = dst.fg.BlendRgb(fg, alpha).Clamped()
	if glow.Blur > 0 {
		dst.bold = true
		dst.bg = dst.bg.BlendRgb(fromRGBA(glow.Color), alpha*glowTint).Clamped()
	}
}

// Flush presents the buffer.
func (c *canvas) Flush() {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			cl := c.cells[row*c.cols+col]
			st := tcell.StyleDefault.
				Foreground(toColor(cl.fg)).
				Background(toColor(cl.bg)).
				Bold(cl.bold)
			c.screen.SetContent(col, row, cl.ch, nil, st)
		}
	}
	c.screen.Show()
}

func fromRGBA(rgba color.RGBA) colorful.Color {
	return colorful.Color{
		R: float64(rgba.R) / 255,
		G: float64(rgba.G) / 255,
		B: float64(rgba.B) / 255,
	}
}

func toColor(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
