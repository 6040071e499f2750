package ripple

import (
	"context"
	"errors"
	"image/color"
)

var (
	// ErrMissingSurface means the host has no drawable surface at all.
	ErrMissingSurface = errors.New("ripple: no drawable surface")
	// ErrMissingDrawingContext means the surface exists but cannot be drawn on.
	ErrMissingDrawingContext = errors.New("ripple: surface has no drawing context")
)

// Align is the horizontal anchor of a text run.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Baseline is the vertical anchor of a text run.
type Baseline int

const (
	BaselineTop Baseline = iota
	BaselineMiddle
)

// TextStyle is passed explicitly with every measure and fill call,
// so nothing depends on what the previous call configured.
type TextStyle struct {
	Size     float64
	Align    Align
	Baseline Baseline
}

// Extents are the measured bounds of a text run.
type Extents struct {
	Width   float64
	Ascent  float64
	Descent float64
}

func (e Extents) Height() float64 { return e.Ascent + e.Descent }

// Glow is a blurred halo drawn under a glyph. Zero Blur means no glow.
type Glow struct {
	Color color.RGBA
	Blur  float64
}

// Layer is one fill of a glyph: an opaque colour, its alpha and an optional glow.
type Layer struct {
	Color color.RGBA
	Alpha float64
	Glow  Glow
}

// Measurer reports text extents for a given style.
type Measurer interface {
	MeasureText(s string, style TextStyle) Extents
}

// TextSnapper is implemented by contexts that can only place text on a
// coarse grid. SnapText returns the box a run drawn at (x, y) really covers.
type TextSnapper interface {
	SnapText(s string, x, y float64, style TextStyle) Rect
}

// Context is the 2D drawing capability of a surface.
type Context interface {
	Measurer
	Clear()
	FillText(s string, x, y float64, style TextStyle, layer Layer)
}

// Surface is a rectangular drawable area with integer pixel dimensions.
// Context returns nil when the surface cannot be drawn on.
type Surface interface {
	Size() (width, height int)
	Context() Context
}

// Flusher is implemented by contexts that buffer a frame and need an
// explicit call to present it.
type Flusher interface {
	Flush()
}

// Host is the frame scheduler. Wait blocks until the next frame is due,
// applying any input that arrived in between, and returns an error to stop.
type Host interface {
	Wait(ctx context.Context) error
}
