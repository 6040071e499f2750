package game

import (
	"errors"
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/glyph-ripple/internal/audio"
	"github.com/iburimskiy/glyph-ripple/internal/config"
	"github.com/iburimskiy/glyph-ripple/internal/ripple"
)

// Game runs the effect in an ebiten window.
type Game struct {
	opts    config.Options
	surface *Surface
	driver  *ripple.Driver
	player  *audio.Player

	cursor image.Point

	lastErr error
}

// New builds the window surface and the effect on top of it.
func New(opts config.Options, player *audio.Player, rng ripple.Source) (*Game, error) {
	surface := NewSurface(opts.Width, opts.Height)
	driver, err := ripple.NewDriver(surface, opts.Preset, opts.Label, rng)
	if err != nil {
		return nil, fmt.Errorf("window host: %w", err)
	}
	if opts.Chime {
		driver.OnSweep = player.Chime
	}
	return &Game{
		opts:    opts,
		surface: surface,
		driver:  driver,
		player:  player,
	}, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.player.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		if err := g.openMusicDialog(); err != nil {
			g.lastErr = err
		}
	}

	// ebiten reports (0, 0) until the cursor first moves
	x, y := ebiten.CursorPosition()
	if p := image.Pt(x, y); p != g.cursor {
		g.cursor = p
		g.driver.SetPointer(float64(x), float64(y))
	}

	if g.opts.Reactive {
		g.driver.SetSpeed(g.player.Speed())
	}
	g.driver.Advance()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.setTarget(screen)
	g.driver.Render()
	g.surface.setTarget(nil)

	if g.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, "Error: "+g.lastErr.Error(), 12, 12)
	}
}

// Layout keeps the surface at the window size and rebuilds the grid when
// it changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.surface.Size()
	}
	g.surface.resize(outsideWidth, outsideHeight)
	if g.driver.Resize(outsideWidth, outsideHeight) {
		log.Printf("resized to %dx%d, %d cells", outsideWidth, outsideHeight, len(g.driver.Layout().Cells))
	}
	return outsideWidth, outsideHeight
}

func (g *Game) openMusicDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Audio File"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return g.player.Load(filename)
}

// Run opens the window and blocks until it is closed.
func Run(opts config.Options, player *audio.Player, rng ripple.Source) error {
	g, err := New(opts, player, rng)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Label + " - Esc/Q: Quit, Space: Pause music, O: Open music")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
