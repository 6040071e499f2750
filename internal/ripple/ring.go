package ripple

import "github.com/iburimskiy/glyph-ripple/internal/config"

// Source is a non-deterministic number source in [0, 1).
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Ring is the expanding annulus that decides which cells light up.
type Ring struct {
	Radius    float64
	Thickness float64
	Speed     float64
	Frame     uint64
}

// NewRing returns the ring as it is before the first frame.
func NewRing() Ring {
	return Ring{
		Thickness: config.InitialThickness,
		Speed:     config.InitialSpeed,
	}
}

// Exited reports whether the inner edge of the ring has left a surface
// whose longest side is longSide.
func (r Ring) Exited(longSide float64) bool {
	return r.Radius-r.Thickness > longSide
}

// Advance moves the ring one frame forward. When the ring has fully left
// the surface it restarts from the center with a fresh thickness drawn
// from rnd; reset reports that case.
func (r *Ring) Advance(longSide float64, rnd Source) (reset bool) {
	r.Frame++
	if r.Exited(longSide) {
		r.Thickness = config.ThicknessMin + rnd.Float64()*config.ThicknessSpan
		r.Radius = 0
		reset = true
	}
	r.Radius += longSide / config.RadiusSteps * r.Speed
	return reset
}
