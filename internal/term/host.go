package term

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/glyph-ripple/internal/audio"
	"github.com/iburimskiy/glyph-ripple/internal/config"
	"github.com/iburimskiy/glyph-ripple/internal/ripple"
)

// ErrQuit is returned by Wait when the user asked to leave.
var ErrQuit = errors.New("quit")

// Host schedules frames at a fixed rate and turns terminal events into
// driver input between them.
type Host struct {
	screen   tcell.Screen
	surface  *Surface
	driver   *ripple.Driver
	player   *audio.Player
	reactive bool

	events chan tcell.Event
	done   chan struct{}
	ticker *time.Ticker
}

// NewHost builds the effect on an initialised screen and starts reading its
// events. Close stops the reader; the screen stays owned by the caller.
func NewHost(screen tcell.Screen, opts config.Options, player *audio.Player, rng ripple.Source) (*Host, error) {
	if screen == nil {
		return nil, fmt.Errorf("terminal host: %w", ripple.ErrMissingSurface)
	}
	surface := NewSurface(screen)
	driver, err := ripple.NewDriver(surface, opts.Preset, opts.Label, rng)
	if err != nil {
		return nil, fmt.Errorf("terminal host: %w", err)
	}
	if opts.Chime {
		driver.OnSweep = player.Chime
	}

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	h := &Host{
		screen:   screen,
		surface:  surface,
		driver:   driver,
		player:   player,
		reactive: opts.Reactive,
		events:   make(chan tcell.Event, 64),
		done:     make(chan struct{}),
		ticker:   time.NewTicker(time.Second / config.TermFPS),
	}
	go h.readEvents()
	return h, nil
}

func (h *Host) Driver() *ripple.Driver { return h.driver }

func (h *Host) readEvents() {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case h.events <- ev:
		case <-h.done:
			return
		}
	}
}

// Wait implements ripple.Host.
func (h *Host) Wait(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-h.events:
			if err := h.handle(ev); err != nil {
				return err
			}
		case <-h.ticker.C:
			if h.reactive {
				h.driver.SetSpeed(h.player.Speed())
			}
			return nil
		}
	}
}

func (h *Host) handle(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return ErrQuit
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return ErrQuit
			case ' ':
				h.player.TogglePause()
			}
		}

	case *tcell.EventResize:
		h.screen.Sync()
		h.surface.resize()
		w, hh := h.surface.Size()
		if h.driver.Resize(w, hh) {
			log.Printf("resized to %dx%d, %d cells", w, hh, len(h.driver.Layout().Cells))
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		h.driver.SetPointer(
			(float64(x)+0.5)*config.TermCellWidth,
			(float64(y)+0.5)*config.TermCellHeight,
		)
	}
	return nil
}

// Close stops the frame ticker and the event reader.
func (h *Host) Close() {
	h.ticker.Stop()
	close(h.done)
}

// Run takes over the terminal and draws until ctx is cancelled or the user
// quits.
func Run(ctx context.Context, opts config.Options, player *audio.Player, rng ripple.Source) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal host: %w: %v", ripple.ErrMissingSurface, err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal host: %w: %v", ripple.ErrMissingDrawingContext, err)
	}
	defer screen.Fini()

	h, err := NewHost(screen, opts, player, rng)
	if err != nil {
		return err
	}
	defer h.Close()

	err = h.driver.Run(ctx, h)
	if errors.Is(err, ErrQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
