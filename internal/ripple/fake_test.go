package ripple

import (
	"context"
	"errors"
)

// fakeContext measures text as a monospace font with 0.6em advances and
// records every call.
type fakeContext struct {
	clears  int
	flushes int
	fills   []fill
}

type fill struct {
	text  string
	x, y  float64
	style TextStyle
	layer Layer
}

func (c *fakeContext) MeasureText(s string, style TextStyle) Extents {
	return Extents{
		Width:   float64(len(s)) * style.Size * 0.6,
		Ascent:  style.Size * 0.8,
		Descent: style.Size * 0.2,
	}
}

func (c *fakeContext) Clear() {
	c.clears++
	c.fills = c.fills[:0]
}

func (c *fakeContext) FillText(s string, x, y float64, style TextStyle, layer Layer) {
	c.fills = append(c.fills, fill{s, x, y, style, layer})
}

func (c *fakeContext) Flush() { c.flushes++ }

type fakeSurface struct {
	w, h      int
	ctx       *fakeContext
	noContext bool
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{w: w, h: h, ctx: &fakeContext{}}
}

func (s *fakeSurface) Size() (int, int) { return s.w, s.h }

func (s *fakeSurface) Context() Context {
	if s.noContext {
		return nil
	}
	return s.ctx
}

// fixedSource always returns the same value.
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

var errStop = errors.New("stop")

// countingHost lets n frames through and then stops.
type countingHost struct {
	n     int
	waits int
}

func (h *countingHost) Wait(ctx context.Context) error {
	h.waits++
	if h.waits >= h.n {
		return errStop
	}
	return ctx.Err()
}
