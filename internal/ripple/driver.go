package ripple

import (
	"context"

	"github.com/iburimskiy/glyph-ripple/internal/config"
)

// Driver owns all state of the effect and draws it one frame at a time.
// It is not safe for concurrent use; hosts call it from a single goroutine
// and apply input between frames.
type Driver struct {
	surface Surface
	ctx     Context
	preset  config.Preset
	label   string
	rng     Source

	ring       Ring
	layout     Layout
	pointer    Point
	hasPointer bool
	layers     []Layer

	// OnSweep, if set, is called each time the ring restarts from the center.
	OnSweep func(thickness float64)
}

// NewDriver checks the surface, measures it and builds the initial grid.
func NewDriver(s Surface, p config.Preset, label string, rng Source) (*Driver, error) {
	if s == nil {
		return nil, ErrMissingSurface
	}
	ctx := s.Context()
	if ctx == nil {
		return nil, ErrMissingDrawingContext
	}

	d := &Driver{
		surface: s,
		ctx:     ctx,
		preset:  p,
		label:   label,
		rng:     rng,
		ring:    NewRing(),
		layers:  make([]Layer, 0, 2+p.GlowLayers),
	}
	w, h := s.Size()
	d.layout = NewLayout(ctx, w, h, label)
	return d, nil
}

// Resize rebuilds the layout if the surface size changed and reports
// whether it did.
func (d *Driver) Resize(width, height int) bool {
	if width == d.layout.Width && height == d.layout.Height {
		return false
	}
	d.layout = NewLayout(d.ctx, width, height, d.label)
	return true
}

// SetPointer records the latest pointer position in surface coordinates.
func (d *Driver) SetPointer(x, y float64) {
	d.pointer = Point{x, y}
	d.hasPointer = true
}

// Pointer returns the last pointer position and whether one was seen yet.
func (d *Driver) Pointer() (Point, bool) { return d.pointer, d.hasPointer }

// SetSpeed changes the ring speed multiplier.
func (d *Driver) SetSpeed(speed float64) {
	d.ring.Speed = speed
}

// Ring returns a copy of the current ring state.
func (d *Driver) Ring() Ring { return d.ring }

// Layout is the current layout. It is replaced on resize.
func (d *Driver) Layout() *Layout { return &d.layout }

// Advance moves the ring one frame forward.
func (d *Driver) Advance() {
	if d.ring.Advance(d.layout.LongSide, d.rng) && d.OnSweep != nil {
		d.OnSweep(d.ring.Thickness)
	}
}

// Render draws the current state: the label first, then every cell layer.
func (d *Driver) Render() {
	l := &d.layout
	d.ctx.Clear()

	d.ctx.FillText(d.label, l.Center.X, l.Center.Y, l.LabelStyle, Layer{
		Color: config.GlyphColor,
		Alpha: 1,
		Glow:  Glow{Color: config.GlowColor, Blur: config.LabelGlowBlur},
	})

	for _, c := range l.Cells {
		pos := d.drawPos(c)

		var glyph rune
		glyph, d.layers = Shade(d.layers[:0], d.preset, c, d.ring)
		s := glyphText(glyph)
		for _, layer := range d.layers {
			d.ctx.FillText(s, pos.X, pos.Y, l.GlyphStyle, layer)
		}
	}

	if f, ok := d.ctx.(Flusher); ok {
		f.Flush()
	}
}

// drawPos is where a cell is painted this frame. Shading keeps using the
// cell's own distance to the center.
func (d *Driver) drawPos(c Cell) Point {
	pos := c.Pos()
	if d.preset.Attraction && d.hasPointer {
		pos = Attract(pos, d.pointer, config.AttractionRadius, config.AttractionStrength)
	}
	return Wave(pos, d.layout.Center, c.Dist, d.ring, d.preset.Wave)
}

// Frame advances and renders once.
func (d *Driver) Frame() {
	d.Advance()
	d.Render()
}

// Run draws frames until ctx is cancelled or the host stops scheduling them.
func (d *Driver) Run(ctx context.Context, host Host) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		d.Frame()
		if err := host.Wait(ctx); err != nil {
			return err
		}
	}
}
