package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/glyph-ripple/internal/audio"
	"github.com/iburimskiy/glyph-ripple/internal/config"
	"github.com/iburimskiy/glyph-ripple/internal/game"
	"github.com/iburimskiy/glyph-ripple/internal/term"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log.SetPrefix("ripple: ")

	opts, err := config.Parse(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		log.Print(err)
		return 2
	}

	closeLog, err := setupLog(opts)
	if err != nil {
		log.Print(err)
		return 1
	}
	defer closeLog()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	player := audio.NewPlayer()
	defer player.Close()
	if opts.Music != "" {
		// the effect runs without sound when the track cannot be played
		if err := player.Load(opts.Music); err != nil {
			log.Printf("music: %v", err)
		}
	}

	switch opts.Host {
	case config.HostTerm:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		err = term.Run(ctx, opts, player, rng)
		stop()
	default:
		err = game.Run(opts, player, rng)
	}
	if err != nil {
		log.Printf("fatal: %v", err)
		if opts.Host == config.HostEbiten {
			_ = zenity.Error(err.Error(), zenity.Title("Glyph ripple"), zenity.ErrorIcon)
		}
		return 1
	}
	return 0
}

// setupLog sends logs to the -log file. The terminal host owns the screen,
// so without a file its logs are dropped.
func setupLog(opts config.Options) (func(), error) {
	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		log.SetOutput(f)
		return func() { _ = f.Close() }, nil
	}
	if opts.Host == config.HostTerm {
		log.SetOutput(io.Discard)
	}
	return func() {}, nil
}
