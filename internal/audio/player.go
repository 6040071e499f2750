package audio

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/glyph-ripple/internal/config"
)

// levelWindow is about 46ms of audio at 44.1kHz.
const levelWindow = 2048

// ErrUnsupported is returned for files that are not wav, mp3 or flac.
var ErrUnsupported = errors.New("unsupported audio file")

// Player owns the speaker: an optional looping background track and the
// sweep chimes. A nil *Player is valid and silent.
type Player struct {
	sampleRate beep.SampleRate
	initDone   bool

	currentFile *os.File
	streamer    beep.StreamSeekCloser
	ctrl        *beep.Ctrl
	tap         *Tap
	paused      bool

	level float64
}

func NewPlayer() *Player {
	return &Player{sampleRate: beep.SampleRate(config.SampleRate)}
}

func (p *Player) init() error {
	if p.initDone {
		return nil
	}
	if err := speaker.Init(p.sampleRate, p.sampleRate.N(time.Second/20)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.initDone = true
	return nil
}

// Load replaces the background track with the file at path and starts
// looping it.
func (p *Player) Load(path string) error {
	if p == nil {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return fmt.Errorf("%w: %s", ErrUnsupported, ext)
	}
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if err := p.init(); err != nil {
		_ = streamer.Close()
		_ = f.Close()
		return err
	}

	p.stopTrack()

	// streamer -> loop -> resample -> tap -> ctrl
	var src beep.Streamer = beep.Loop(-1, streamer)
	if format.SampleRate != p.sampleRate {
		src = beep.Resample(4, format.SampleRate, p.sampleRate, src)
	}
	tap := NewTap(src, config.VisualRingSize)
	ctrl := &beep.Ctrl{Streamer: tap}

	speaker.Lock()
	p.currentFile = f
	p.streamer = streamer
	p.tap = tap
	p.ctrl = ctrl
	p.paused = false
	speaker.Unlock()

	length := format.SampleRate.D(streamer.Len()).Round(time.Second)
	log.Printf("playing %s (%s, %d Hz)", filepath.Base(path), length, format.SampleRate)
	speaker.Play(ctrl)
	return nil
}

func (p *Player) stopTrack() {
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Streamer = nil
	p.ctrl.Paused = true
	speaker.Unlock()

	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
	if p.currentFile != nil {
		_ = p.currentFile.Close()
		p.currentFile = nil
	}
	p.ctrl = nil
	p.tap = nil
	p.level = 0
}

// TogglePause pauses or resumes the background track.
func (p *Player) TogglePause() {
	if p == nil || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.paused = !p.paused
	p.ctrl.Paused = p.paused
	speaker.Unlock()
}

// Chime plays one bell tone pitched after the ring thickness.
func (p *Player) Chime(thickness float64) {
	if p == nil {
		return
	}
	if err := p.init(); err != nil {
		log.Printf("chime: %v", err)
		return
	}
	speaker.Play(newChime(p.sampleRate, chimeFrequency(thickness), time.Duration(config.ChimeDuration*float64(time.Second))))
}

// Level is the smoothed loudness of the background track, 0 when nothing
// plays. Call it once per frame.
func (p *Player) Level() float64 {
	if p == nil || p.tap == nil || p.paused {
		return 0
	}
	mag := p.tap.Loudness(levelWindow)
	p.level = config.SmoothingFactor*p.level + (1-config.SmoothingFactor)*mag
	return p.level
}

// Speed is the ring speed multiplier when the effect follows the music.
func (p *Player) Speed() float64 {
	return config.InitialSpeed + p.Level()*config.ReactiveGain
}

// Close stops all sound and releases the speaker.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.stopTrack()
	if p.initDone {
		speaker.Clear()
		speaker.Close()
		p.initDone = false
	}
}
