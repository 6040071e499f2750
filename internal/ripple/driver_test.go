package ripple

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/glyph-ripple/internal/config"
)

func newTestDriver(t *testing.T, p config.Preset) (*Driver, *fakeSurface) {
	t.Helper()
	s := newFakeSurface(800, 600)
	d, err := NewDriver(s, p, "undefined", fixedSource(0.5))
	require.NoError(t, err)
	return d, s
}

func TestNewDriver_MissingSurface(t *testing.T) {
	_, err := NewDriver(nil, config.Ripple, "undefined", fixedSource(0))
	assert.ErrorIs(t, err, ErrMissingSurface)
}

func TestNewDriver_MissingContext(t *testing.T) {
	s := newFakeSurface(800, 600)
	s.noContext = true
	_, err := NewDriver(s, config.Ripple, "undefined", fixedSource(0))
	assert.ErrorIs(t, err, ErrMissingDrawingContext)
}

func TestNewDriver_InitialState(t *testing.T) {
	d, _ := newTestDriver(t, config.Ripple)
	assert.Equal(t, NewRing(), d.Ring())
	assert.Equal(t, 800, d.Layout().Width)
	assert.Equal(t, 600, d.Layout().Height)
	assert.NotEmpty(t, d.Layout().Cells)
}

func TestDriver_RenderAtZeroRadius(t *testing.T) {
	d, s := newTestDriver(t, config.Calm)
	d.Render()

	fills := s.ctx.fills
	require.Len(t, fills, 1+len(d.Layout().Cells), "label plus one base layer per cell")
	assert.Equal(t, 1, s.ctx.clears)
	assert.Equal(t, 1, s.ctx.flushes)

	label := fills[0]
	assert.Equal(t, "undefined", label.text)
	assert.Equal(t, 400.0, label.x)
	assert.Equal(t, 300.0, label.y)
	assert.Equal(t, d.Layout().LabelStyle, label.style)
	assert.Equal(t, 1.0, label.layer.Alpha)
	assert.Equal(t, config.LabelGlowBlur, label.layer.Glow.Blur)

	for i, c := range d.Layout().Cells {
		f := fills[i+1]
		assert.Equal(t, c.X, f.x)
		assert.Equal(t, c.Y, f.y)
		assert.Zero(t, f.layer.Glow)
	}
}

func TestDriver_FrameLayersMatchShade(t *testing.T) {
	d, s := newTestDriver(t, config.Calm)
	d.ring.Radius = 300
	d.ring.Frame = 41
	d.Frame()

	ring := d.Ring()
	want := 1
	for _, c := range d.Layout().Cells {
		_, layers := Shade(nil, config.Calm, c, ring)
		want += len(layers)
	}
	assert.Len(t, s.ctx.fills, want)
	assert.Equal(t, uint64(42), ring.Frame)
}

func TestDriver_AttractionMovesDrawPosition(t *testing.T) {
	d, s := newTestDriver(t, config.Ripple)
	d.ring.Radius = 0
	c := d.Layout().Cells[0]
	d.SetPointer(c.X+100, c.Y)
	d.Render()

	f := s.ctx.fills[1]
	assert.InDelta(t, c.X+(300-100)*0.05, f.x, 1e-9)
	assert.InDelta(t, c.Y, f.y, 1e-9)
	assert.Len(t, s.ctx.fills, 1+len(d.Layout().Cells))
}

func TestDriver_ShadesByCellDistance(t *testing.T) {
	center := Point{400, 300}
	c := Cell{GridX: 3, GridY: 2, X: center.X + 200, Y: center.Y, Dist: 200}

	t.Run("inside ring drawn outside", func(t *testing.T) {
		d, s := newTestDriver(t, config.Ripple)
		d.layout.Cells = []Cell{c}
		d.ring.Radius = 201
		// pointer beyond the cell pulls it away from the center
		d.SetPointer(c.X+100, c.Y)
		d.Render()

		fills := s.ctx.fills[1:]
		require.Len(t, fills, 2+config.Ripple.GlowLayers, "base, band and edge glows")
		assert.Greater(t, fills[0].x-center.X, d.ring.Radius, "drawn past the leading edge")
		assert.Equal(t, uint8(config.RingGreen), fills[1].layer.Color.G)
		for _, f := range fills[2:] {
			assert.Equal(t, config.Ripple.GlowBlur, f.layer.Glow.Blur)
		}
	})

	t.Run("outside ring drawn inside", func(t *testing.T) {
		d, s := newTestDriver(t, config.Ripple)
		d.layout.Cells = []Cell{c}
		d.ring.Radius = 199
		d.SetPointer(c.X-100, c.Y)
		d.Render()

		fills := s.ctx.fills[1:]
		require.Len(t, fills, 1, "base layer only")
		assert.InDelta(t, c.X-10, fills[0].x, 1e-9)
		assert.Less(t, fills[0].x-center.X, d.ring.Radius)
	})
}

func TestDriver_NoAttractionWithoutPointerOrPreset(t *testing.T) {
	d, s := newTestDriver(t, config.Ripple)
	_, ok := d.Pointer()
	assert.False(t, ok)
	d.Render()
	c := d.Layout().Cells[0]
	assert.Equal(t, c.X, s.ctx.fills[1].x)

	d, s = newTestDriver(t, config.Calm)
	d.SetPointer(c.X+100, c.Y)
	p, ok := d.Pointer()
	assert.True(t, ok)
	assert.Equal(t, Point{c.X + 100, c.Y}, p)
	d.Render()
	assert.Equal(t, c.X, s.ctx.fills[1].x)
}

func TestDriver_Resize(t *testing.T) {
	d, _ := newTestDriver(t, config.Ripple)
	before := len(d.Layout().Cells)

	assert.False(t, d.Resize(800, 600))
	assert.True(t, d.Resize(1600, 1200))
	l := d.Layout()
	assert.Equal(t, Point{800, 600}, l.Center)
	assert.Equal(t, 1600.0, l.LongSide)
	assert.InDelta(t, 3.2, l.Step, 1e-12)
	assert.Equal(t, before, len(l.Cells), "glyph size follows the surface height")
}

func TestDriver_OnSweep(t *testing.T) {
	d, _ := newTestDriver(t, config.Ripple)
	var got []float64
	d.OnSweep = func(thickness float64) { got = append(got, thickness) }

	d.Advance()
	assert.Empty(t, got)

	d.ring.Radius = 2000
	d.Advance()
	assert.Equal(t, []float64{200}, got)
	assert.InDelta(t, 1.6, d.Ring().Radius, 1e-12)
}

func TestDriver_SetSpeed(t *testing.T) {
	d, _ := newTestDriver(t, config.Ripple)
	d.SetSpeed(2.5)
	d.Advance()
	assert.InDelta(t, 4.0, d.Ring().Radius, 1e-12)
}

func TestDriver_RunStopsWithHost(t *testing.T) {
	d, s := newTestDriver(t, config.Ripple)
	h := &countingHost{n: 3}

	err := d.Run(context.Background(), h)
	assert.ErrorIs(t, err, errStop)
	assert.Equal(t, uint64(3), d.Ring().Frame)
	assert.Equal(t, 3, s.ctx.clears)
}

func TestDriver_RunCancelled(t *testing.T) {
	d, _ := newTestDriver(t, config.Ripple)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Run(ctx, &countingHost{n: 100})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, uint64(0), d.Ring().Frame)
}
