package ripple

import "math"

// Attract pulls pos toward pointer when it is closer than radius. The pull
// grows linearly as the distance shrinks.
func Attract(pos, pointer Point, radius, strength float64) Point {
	d := math.Hypot(pos.X-pointer.X, pos.Y-pointer.Y)
	if d >= radius {
		return pos
	}
	angle := math.Atan2(pointer.Y-pos.Y, pointer.X-pos.X)
	pull := (radius - d) * strength
	return Point{
		X: pos.X + math.Cos(angle)*pull,
		Y: pos.Y + math.Sin(angle)*pull,
	}
}

// Wave pushes pos away from center while the cell is inside the ring band.
// The push follows half a sine period across the band, peaking at its middle.
// dist is the undisplaced distance of the cell to center.
func Wave(pos, center Point, dist float64, ring Ring, amplitude float64) Point {
	inner := ring.Radius - ring.Thickness
	if amplitude == 0 || dist >= ring.Radius || dist <= inner {
		return pos
	}
	angle := math.Atan2(center.Y-pos.Y, center.X-pos.X)
	push := math.Sin((dist-inner)/ring.Thickness*math.Pi) * amplitude
	return Point{
		X: pos.X - math.Cos(angle)*push,
		Y: pos.Y - math.Sin(angle)*push,
	}
}
