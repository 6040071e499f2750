package ripple

import (
	"math"

	"github.com/iburimskiy/glyph-ripple/internal/config"
)

// Point is a position in surface coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box given by its top-left corner and size.
type Rect struct {
	X, Y, W, H float64
}

// Intersects reports whether the open interiors of r and o overlap.
// Boxes that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X+r.W > o.X && r.X < o.X+o.W && r.Y+r.H > o.Y && r.Y < o.Y+o.H
}

// Cell is one lattice position of the character grid.
type Cell struct {
	GridX, GridY int
	X, Y         float64
	Dist         float64 // to the surface center
}

// Pos is the top-left corner of the cell.
func (c Cell) Pos() Point { return Point{c.X, c.Y} }

// BuildGrid lays out cellW x cellH cells over a width x height surface,
// leaving out every cell whose box overlaps label. Cells are emitted
// column by column.
func BuildGrid(width, height int, cellW, cellH float64, label Rect) []Cell {
	if width <= 0 || height <= 0 || cellW <= 0 || cellH <= 0 {
		return nil
	}

	cols := int(math.Ceil(float64(width) / cellW))
	rows := int(math.Ceil(float64(height) / cellH))
	cx, cy := float64(width)/2, float64(height)/2

	cells := make([]Cell, 0, cols*rows)
	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			x := float64(i) * cellW
			y := float64(j) * cellH
			if (Rect{x, y, cellW, cellH}).Intersects(label) {
				continue
			}
			cells = append(cells, Cell{
				GridX: i,
				GridY: j,
				X:     x,
				Y:     y,
				Dist:  math.Hypot(x-cx, y-cy),
			})
		}
	}
	return cells
}

// Layout is everything derived from the surface size. It is rebuilt as a
// whole whenever the size changes.
type Layout struct {
	Width, Height int
	Center        Point
	LongSide      float64
	Step          float64 // radius growth per frame at speed 1

	LabelStyle TextStyle
	GlyphStyle TextStyle
	Label      Rect
	CellW      float64
	CellH      float64
	Cells      []Cell
}

// NewLayout measures the label and the reference glyph and builds the grid.
func NewLayout(m Measurer, width, height int, label string) Layout {
	l := Layout{
		Width:    width,
		Height:   height,
		Center:   Point{float64(width) / 2, float64(height) / 2},
		LongSide: math.Max(float64(width), float64(height)),
		LabelStyle: TextStyle{
			Size:     float64(height) * config.LabelSizeFraction,
			Align:    AlignCenter,
			Baseline: BaselineMiddle,
		},
		GlyphStyle: TextStyle{
			Size:     float64(height) * config.GlyphSizeFraction,
			Align:    AlignLeft,
			Baseline: BaselineTop,
		},
	}
	l.Step = l.LongSide / config.RadiusSteps

	le := m.MeasureText(label, l.LabelStyle)
	l.Label = Rect{
		X: l.Center.X - le.Width/2,
		Y: l.Center.Y - le.Height()/2,
		W: le.Width,
		H: le.Height(),
	}
	if sn, ok := m.(TextSnapper); ok {
		l.Label = sn.SnapText(label, l.Center.X, l.Center.Y, l.LabelStyle)
	}

	ge := m.MeasureText(config.ReferenceGlyph, l.GlyphStyle)
	l.CellW = ge.Width
	l.CellH = ge.Height() * config.GlyphRowPadding

	l.Cells = BuildGrid(width, height, l.CellW, l.CellH, l.Label)
	return l
}
