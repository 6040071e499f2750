package ripple

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/glyph-ripple/internal/config"
)

// ------------------------------------------------------------------------
// 1. Oscillators and glyph lookup
// ------------------------------------------------------------------------

func TestSignals_Formula(t *testing.T) {
	s1, s2 := Signals(12345, 3, 7)
	phase := float64(3 + 7*20)
	assert.InDelta(t, math.Sin(12345*0.0001+phase), s1, 1e-12)
	assert.InDelta(t, math.Sin(12345*0.0001+phase*130), s2, 1e-12)

	s1, s2 = Signals(0, 0, 0)
	assert.Equal(t, 0.0, s1)
	assert.Equal(t, 0.0, s2)
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, 94, GlyphCount())
	assert.Equal(t, 'A', Glyph(0))
	assert.Equal(t, ' ', Glyph(1), "index equal to the table length")
	assert.Equal(t, ' ', Glyph(-1))
	assert.Equal(t, Glyph(0.5), Glyph(-0.5))
	assert.Equal(t, '\\', Glyph(0.999))
}

// ------------------------------------------------------------------------
// 2. Zone rules
// ------------------------------------------------------------------------

func TestShade_Deterministic(t *testing.T) {
	ring := Ring{Radius: 420, Thickness: 150, Speed: 1, Frame: 987}
	for _, c := range BuildGrid(800, 600, 14.4, 36, Rect{}) {
		g1, l1 := Shade(nil, config.Ripple, c, ring)
		g2, l2 := Shade(nil, config.Ripple, c, ring)
		require.Equal(t, g1, g2)
		require.Equal(t, l1, l2)
	}
}

func TestShade_BaseLayer(t *testing.T) {
	c := Cell{GridX: 2, GridY: 5, Dist: 300}
	ring := Ring{Radius: 0, Thickness: 150, Frame: 77}
	_, s2 := Signals(77, 2, 5)

	_, layers := Shade(nil, config.Ripple, c, ring)
	require.Len(t, layers, 1)
	assert.Equal(t, config.GlyphColor, layers[0].Color)
	assert.Equal(t, math.Max(s2*0.15, 0.01), layers[0].Alpha)
	assert.Zero(t, layers[0].Glow)

	_, layers = Shade(nil, config.Calm, c, ring)
	assert.Equal(t, math.Max(s2*0.1, 0.01), layers[0].Alpha)
}

func TestShade_NothingInsideZeroRadius(t *testing.T) {
	ring := NewRing()
	ring.Radius = 0
	l := NewLayout(&fakeContext{}, 800, 600, "undefined")
	cells := append(l.Cells, Cell{GridX: 1, GridY: 1, Dist: 0})
	for _, c := range cells {
		_, layers := Shade(nil, config.Ripple, c, ring)
		assert.Len(t, layers, 1)
	}
}

func TestShade_Echo(t *testing.T) {
	ring := Ring{Radius: 500, Thickness: 100, Frame: 10}
	c := Cell{GridX: 4, GridY: 1, Dist: 370}
	_, s2 := Signals(10, 4, 1)

	_, layers := Shade(nil, config.Ripple, c, ring)
	require.Len(t, layers, 2)
	assert.Equal(t, config.GlyphColor, layers[1].Color)
	assert.Equal(t, math.Max(s2*0.3, 0.01), layers[1].Alpha)
	assert.Zero(t, layers[1].Glow)
}

func TestShade_EchoBandIsOpen(t *testing.T) {
	ring := Ring{Radius: 500, Thickness: 100}
	assert.False(t, InEcho(350, ring.Radius, ring.Thickness), "outer bound of the band")
	assert.False(t, InEcho(400, ring.Radius, ring.Thickness), "inner edge of the ring")
	assert.True(t, InEcho(350.5, ring.Radius, ring.Thickness))

	// exactly radius - 1.5t falls through to the coloured layer
	_, layers := Shade(nil, config.Ripple, Cell{GridX: 1, GridY: 2, Dist: 350}, ring)
	require.Len(t, layers, 2)
	assert.Equal(t, uint8(config.RingGreen), layers[1].Color.G)
	assert.Equal(t, uint8(config.RingBlue), layers[1].Color.B)
	assert.Equal(t, 0.0, layers[1].Alpha)
}

func TestShade_MainBand(t *testing.T) {
	ring := Ring{Radius: 500, Thickness: 100, Frame: 3}
	c := Cell{GridX: 9, GridY: 0, Dist: 450}
	_, s2 := Signals(3, 9, 0)

	_, layers := Shade(nil, config.Ripple, c, ring)
	require.Len(t, layers, 2)
	wantRed := math.Floor(255 * s2 * 0.5)
	if wantRed < 0 {
		wantRed = 0
	}
	assert.Equal(t, uint8(wantRed), layers[1].Color.R)
	assert.Equal(t, uint8(135), layers[1].Color.G)
	assert.Equal(t, uint8(245), layers[1].Color.B)
	assert.InDelta(t, 0.5, layers[1].Alpha, 1e-12)
	assert.Zero(t, layers[1].Glow)
}

func TestShade_LeadingEdgeGlow(t *testing.T) {
	ring := Ring{Radius: 500, Thickness: 100}
	c := Cell{Dist: 490}

	for _, p := range []config.Preset{config.Ripple, config.Calm} {
		_, layers := Shade(nil, p, c, ring)
		require.Len(t, layers, 2+p.GlowLayers, p.Name)
		for _, l := range layers[2:] {
			assert.Equal(t, config.GlyphColor, l.Color)
			assert.Equal(t, 1.0, l.Alpha)
			assert.Equal(t, Glow{Color: config.GlowColor, Blur: p.GlowBlur}, l.Glow)
		}
	}

	_, layers := Shade(nil, config.Ripple, Cell{Dist: 475}, ring)
	assert.Len(t, layers, 2, "exactly EdgeWidth behind the edge has no glow")
}

func TestShade_ReusesBuffer(t *testing.T) {
	buf := make([]Layer, 0, 8)
	_, layers := Shade(buf, config.Ripple, Cell{Dist: 490}, Ring{Radius: 500, Thickness: 100})
	assert.Same(t, &buf[:1][0], &layers[0])
}

// ------------------------------------------------------------------------
// 3. Opacity and colour helpers
// ------------------------------------------------------------------------

func TestOpacity_Boundaries(t *testing.T) {
	assert.Equal(t, 1.0, Opacity(500, 500, 150), "leading edge")
	assert.Equal(t, 0.0, Opacity(350, 500, 150), "inner edge")
	assert.Equal(t, 1.0, Opacity(510, 500, 150), "ahead of the ring")
	assert.Equal(t, 0.0, Opacity(100, 500, 150), "far behind the ring")
	assert.InDelta(t, 0.25, Opacity(387.5, 500, 150), 1e-12)
}

func TestChannel(t *testing.T) {
	assert.Equal(t, uint8(0), channel(-12))
	assert.Equal(t, uint8(127), channel(127))
	assert.Equal(t, uint8(255), channel(300))
}
