package config

import "image/color"

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Ring sweep
	InitialThickness = 150.0
	ThicknessMin     = 100.0
	ThicknessSpan    = 200.0
	InitialSpeed     = 1.0
	RadiusSteps      = 500.0 // frames for the ring to cover the long side at speed 1

	// Shading
	TimeScale          = 0.0001
	RowPhase           = 20
	SecondPhase        = 130
	MinAlpha           = 0.01
	EchoAlpha          = 0.3
	EchoBand           = 1.5
	EdgeWidth          = 25.0
	RingRedScale       = 0.5
	RingGreen          = 135
	RingBlue           = 245
	GlyphRowPadding    = 1.5
	ReferenceGlyph     = "A"
	DefaultLabel       = "undefined"
	LabelSizeFraction  = 0.10 // of surface height
	GlyphSizeFraction  = 0.04 // of surface height
	LabelGlowBlur      = 50.0
	AttractionRadius   = 300.0
	AttractionStrength = 0.05
	WaveAmplitude      = 15.0

	// Audio
	SampleRate      = 44100
	VisualRingSize  = 8192
	SmoothingFactor = 0.6
	ChimeDuration   = 0.9 // seconds
	ChimeVolume     = 0.2
	ReactiveGain    = 1.5

	// Terminal host
	TermCellWidth  = 8
	TermCellHeight = 16
	TermFPS        = 60
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	GlyphColor      = color.RGBA{255, 255, 255, 255}
	GlowColor       = color.RGBA{60, 135, 255, 255}
)

// Preset is one of the variants of the effect. They only differ in constants.
type Preset struct {
	Name       string
	BaseAlpha  float64
	GlowLayers int
	GlowBlur   float64
	Attraction bool
	Wave       float64
}

var (
	Ripple = Preset{
		Name:       "ripple",
		BaseAlpha:  0.15,
		GlowLayers: 3,
		GlowBlur:   40,
		Attraction: true,
		Wave:       WaveAmplitude,
	}
	Calm = Preset{
		Name:       "calm",
		BaseAlpha:  0.1,
		GlowLayers: 5,
		GlowBlur:   50,
	}

	Presets = map[string]Preset{
		Ripple.Name: Ripple,
		Calm.Name:   Calm,
	}
)
