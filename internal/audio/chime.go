package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"

	"github.com/iburimskiy/glyph-ripple/internal/config"
)

const (
	chimeDecay  = 5.0   // envelope falloff per second
	chimeAttack = 0.005 // seconds
)

// newChime returns a bell-like tone: a sine with its octave overtone under a
// short attack and an exponential decay. It ends after d.
func newChime(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	tone := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for ; n < len(samples) && pos < total; n++ {
			t := float64(pos) / float64(sr)
			env := math.Exp(-t * chimeDecay)
			if t < chimeAttack {
				env *= t / chimeAttack
			}
			v := env * (0.8*math.Sin(2*math.Pi*freq*t) + 0.2*math.Sin(4*math.Pi*freq*t))
			samples[n][0] = v
			samples[n][1] = v
			pos++
		}
		return n, true
	})
	return &effects.Gain{Streamer: tone, Gain: config.ChimeVolume - 1}
}

// chimeFrequency maps ring thickness onto a pitch: thin rings ring high,
// thick rings ring low, one octave apart.
func chimeFrequency(thickness float64) float64 {
	t := (thickness - config.ThicknessMin) / config.ThicknessSpan
	return 880 * math.Pow(2, -math.Min(math.Max(t, 0), 1))
}
