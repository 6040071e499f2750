package ripple

import (
	"image/color"
	"math"

	"github.com/iburimskiy/glyph-ripple/internal/config"
)

// Signals are the two per-cell oscillators. They are a pure function of
// the frame and the grid position, not randomness.
func Signals(frame uint64, gridX, gridY int) (s1, s2 float64) {
	t := float64(frame) * config.TimeScale
	phase := float64(gridX + gridY*config.RowPhase)
	return math.Sin(t + phase), math.Sin(t + phase*config.SecondPhase)
}

// Opacity is the linear falloff behind the leading edge of the ring:
// 1 at dist == radius, 0 at dist == radius - thickness.
func Opacity(dist, radius, thickness float64) float64 {
	return clamp01(1 - math.Max((radius-dist)/thickness, 0))
}

// InEcho reports whether dist lies in the faint band trailing the ring.
// Both ends are open.
func InEcho(dist, radius, thickness float64) bool {
	return dist < radius-thickness && dist > radius-thickness*config.EchoBand
}

// Shade computes the glyph and the ordered fill layers for one cell,
// appending the layers to dst.
func Shade(dst []Layer, p config.Preset, c Cell, ring Ring) (rune, []Layer) {
	s1, s2 := Signals(ring.Frame, c.GridX, c.GridY)
	glyph := Glyph(s1)

	dst = append(dst, Layer{
		Color: config.GlyphColor,
		Alpha: math.Max(s2*p.BaseAlpha, config.MinAlpha),
	})

	if c.Dist >= ring.Radius {
		return glyph, dst
	}

	if InEcho(c.Dist, ring.Radius, ring.Thickness) {
		dst = append(dst, Layer{
			Color: config.GlyphColor,
			Alpha: math.Max(s2*config.EchoAlpha, config.MinAlpha),
		})
		return glyph, dst
	}

	dst = append(dst, Layer{
		Color: color.RGBA{
			R: channel(math.Floor(255 * s2 * config.RingRedScale)),
			G: config.RingGreen,
			B: config.RingBlue,
			A: 255,
		},
		Alpha: Opacity(c.Dist, ring.Radius, ring.Thickness),
	})

	if c.Dist > ring.Radius-config.EdgeWidth {
		edge := Layer{
			Color: config.GlyphColor,
			Alpha: 1,
			Glow:  Glow{Color: config.GlowColor, Blur: p.GlowBlur},
		}
		for k := 0; k < p.GlowLayers; k++ {
			dst = append(dst, edge)
		}
	}
	return glyph, dst
}

// channel clamps a colour component the way CSS rgba() does.
func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
