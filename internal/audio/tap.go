package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// Tap passes a stream through unchanged and keeps the mono mixdown of the
// most recent samples for metering. Stream runs on the speaker goroutine,
// Loudness on the frame goroutine.
type Tap struct {
	src beep.Streamer

	mu   sync.Mutex
	mono []float64
	next int
}

func NewTap(src beep.Streamer, size int) *Tap {
	return &Tap{src: src, mono: make([]float64, size)}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.src.Stream(samples)
	t.mu.Lock()
	for _, s := range samples[:n] {
		t.mono[t.next] = (s[0] + s[1]) / 2
		t.next = (t.next + 1) % len(t.mono)
	}
	t.mu.Unlock()
	return n, ok
}

func (t *Tap) Err() error { return t.src.Err() }

// Loudness is the RMS of the last n mono samples raised to 0.3, roughly in
// [0, 1].
func (t *Tap) Loudness(n int) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	n = min(n, len(t.mono))
	if n <= 0 {
		return 0
	}
	var sum float64
	for i, at := 0, t.next; i < n; i++ {
		at--
		if at < 0 {
			at = len(t.mono) - 1
		}
		sum += t.mono[at] * t.mono[at]
	}
	return math.Pow(math.Sqrt(sum/float64(n)), 0.3)
}
