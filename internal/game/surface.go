package game

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/iburimskiy/glyph-ripple/internal/config"
	"github.com/iburimskiy/glyph-ripple/internal/ripple"
)

// Halo sampling for glows: rings of offset copies drawn additively.
const (
	glowTaps   = 8
	glowRings  = 2
	glowSpread = 0.25 // fraction of the blur radius covered by the outer ring
	glowAlpha  = 0.35
)

// Surface is the game window as seen by the effect. Its context draws into
// whatever screen image the current Draw call was given.
type Surface struct {
	width, height int
	canvas        *canvas
}

// NewSurface prepares a surface of the given size. Without a usable font the
// surface has no drawing context.
func NewSurface(width, height int) *Surface {
	s := &Surface{width: width, height: height}
	f, err := loadFonts()
	if err != nil {
		log.Printf("no drawing context: %v", err)
		return s
	}
	s.canvas = &canvas{fonts: f}
	return s
}

func (s *Surface) Size() (int, int) { return s.width, s.height }

func (s *Surface) Context() ripple.Context {
	if s.canvas == nil {
		return nil
	}
	return s.canvas
}

func (s *Surface) resize(width, height int) {
	s.width, s.height = width, height
}

// setTarget points the context at this frame's screen.
func (s *Surface) setTarget(screen *ebiten.Image) {
	if s.canvas != nil {
		s.canvas.target = screen
	}
}

type canvas struct {
	fonts  *fonts
	target *ebiten.Image
	failed bool
}

func (c *canvas) MeasureText(s string, style ripple.TextStyle) ripple.Extents {
	e, err := c.fonts.measure(s, style.Size)
	if err != nil {
		c.reportOnce(err)
	}
	return e
}

func (c *canvas) Clear() {
	if c.target != nil {
		c.target.Fill(config.BackgroundColor)
	}
}

func (c *canvas) FillText(s string, x, y float64, style ripple.TextStyle, layer ripple.Layer) {
	if c.target == nil || layer.Alpha <= 0 {
		return
	}
	sf, err := c.fonts.face(style.Size)
	if err != nil {
		c.reportOnce(err)
		return
	}

	if layer.Glow.Blur > 0 {
		c.drawGlow(s, sf.draw, x, y, style, layer)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	setAlign(&op.LayoutOptions, style)
	op.ColorScale.ScaleWithColor(layer.Color)
	op.ColorScale.ScaleAlpha(float32(layer.Alpha))
	text.Draw(c.target, s, sf.draw, op)
}

// drawGlow approximates a blurred shadow with additive offset copies in the
// glow colour.
func (c *canvas) drawGlow(s string, face text.Face, x, y float64, style ripple.TextStyle, layer ripple.Layer) {
	spread := layer.Glow.Blur * glowSpread
	alpha := float32(layer.Alpha * glowAlpha / glowTaps)
	for r := 1; r <= glowRings; r++ {
		d := spread * float64(r) / glowRings
		for i := 0; i < glowTaps; i++ {
			a := 2 * math.Pi * float64(i) / glowTaps
			op := &text.DrawOptions{}
			op.GeoM.Translate(x+math.Cos(a)*d, y+math.Sin(a)*d)
			setAlign(&op.LayoutOptions, style)
			op.ColorScale.ScaleWithColor(layer.Glow.Color)
			op.ColorScale.ScaleAlpha(alpha / float32(r))
			op.Blend = ebiten.BlendLighter
			text.Draw(c.target, s, face, op)
		}
	}
}

func (c *canvas) reportOnce(err error) {
	if !c.failed {
		log.Printf("text: %v", err)
		c.failed = true
	}
}

func setAlign(lo *text.LayoutOptions, style ripple.TextStyle) {
	switch style.Align {
	case ripple.AlignCenter:
		lo.PrimaryAlign = text.AlignCenter
	default:
		lo.PrimaryAlign = text.AlignStart
	}
	switch style.Baseline {
	case ripple.BaselineMiddle:
		lo.SecondaryAlign = text.AlignCenter
	default:
		lo.SecondaryAlign = text.AlignStart
	}
}
