package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/iburimskiy/glyph-ripple/internal/ripple"
)

// maxFaces bounds the cache; sizes only change on resize.
const maxFaces = 8

type sizedFace struct {
	x    font.Face
	draw *text.GoXFace
}

// fonts hands out monospace faces per pixel size. The same x/image face is
// used for measuring and, wrapped, for drawing, so both always agree.
type fonts struct {
	mono  *opentype.Font
	faces map[float64]sizedFace
}

func loadFonts() (*fonts, error) {
	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse mono font: %w", err)
	}
	return &fonts{mono: f, faces: make(map[float64]sizedFace)}, nil
}

func (f *fonts) face(size float64) (sizedFace, error) {
	if sf, ok := f.faces[size]; ok {
		return sf, nil
	}
	x, err := opentype.NewFace(f.mono, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return sizedFace{}, fmt.Errorf("mono face %.1fpx: %w", size, err)
	}
	if len(f.faces) >= maxFaces {
		for k, old := range f.faces {
			_ = old.x.Close()
			delete(f.faces, k)
		}
	}
	sf := sizedFace{x: x, draw: text.NewGoXFace(x)}
	f.faces[size] = sf
	return sf, nil
}

// measure reports the advance width and the tight ink ascent and descent.
func (f *fonts) measure(s string, size float64) (ripple.Extents, error) {
	sf, err := f.face(size)
	if err != nil {
		return ripple.Extents{}, err
	}
	bounds, advance := font.BoundString(sf.x, s)
	return ripple.Extents{
		Width:   fixedToFloat(advance),
		Ascent:  -fixedToFloat(bounds.Min.Y),
		Descent: fixedToFloat(bounds.Max.Y),
	}, nil
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
