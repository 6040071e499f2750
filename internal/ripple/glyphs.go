package ripple

// glyphs is the lookup table for per-cell glyph selection. Order matters:
// the index is derived from a deterministic oscillator.
const glyphs = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789$+-*/=%\"'`!?:;,.|&<>()[]{}^#_~@\\"

// Glyph maps a signal in [-1, 1] onto the table. Anything that would land
// past the end of the table becomes a space.
func Glyph(signal float64) rune {
	if signal < 0 {
		signal = -signal
	}
	i := int(signal * float64(len(glyphs)))
	if i < 0 || i >= len(glyphs) {
		return ' '
	}
	return rune(glyphs[i])
}

// GlyphCount is the size of the lookup table.
func GlyphCount() int { return len(glyphs) }

var asciiText = func() (t [128]string) {
	for i := range t {
		t[i] = string(rune(i))
	}
	return t
}()

// glyphText avoids allocating a string per cell per frame.
func glyphText(r rune) string {
	if r >= 0 && int(r) < len(asciiText) {
		return asciiText[r]
	}
	return string(r)
}
