package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

const (
	HostEbiten = "ebiten"
	HostTerm   = "term"
)

// Options holds the command line choices. Label and size are fixed
// constants and only travel with the rest.
type Options struct {
	Host     string
	Preset   Preset
	Label    string
	Music    string
	Chime    bool
	Reactive bool
	LogFile  string
	Width    int
	Height   int
}

func (o *Options) validate() error {
	if o.Host != HostEbiten && o.Host != HostTerm {
		return fmt.Errorf("unknown host %q (want %s or %s)", o.Host, HostEbiten, HostTerm)
	}
	if o.Reactive && o.Music == "" && o.Host == HostTerm {
		return errors.New("-reactive needs -music in the terminal host")
	}
	return nil
}

// PresetNames returns the known preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse reads options from args (without the program name).
func Parse(args []string, output io.Writer) (Options, error) {
	fs := flag.NewFlagSet("glyph-ripple", flag.ContinueOnError)
	fs.SetOutput(output)

	var preset string
	opts := Options{
		Label:  DefaultLabel,
		Width:  WindowWidth,
		Height: WindowHeight,
	}
	fs.StringVar(&opts.Host, "host", HostEbiten, "where to draw: "+HostEbiten+" (window) or "+HostTerm+" (terminal)")
	fs.StringVar(&preset, "preset", Ripple.Name, "effect variant: "+strings.Join(PresetNames(), ", "))
	fs.StringVar(&opts.Music, "music", "", "optional wav/mp3/flac file to loop in the background")
	fs.BoolVar(&opts.Chime, "chime", false, "play a chime every time the ring restarts")
	fs.BoolVar(&opts.Reactive, "reactive", false, "let the music loudness push the ring speed")
	fs.StringVar(&opts.LogFile, "log", "", "write logs to this file instead of stderr")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}

	p, ok := Presets[preset]
	if !ok {
		return Options{}, fmt.Errorf("unknown preset %q (want one of %s)", preset, strings.Join(PresetNames(), ", "))
	}
	opts.Preset = p

	if err := opts.validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}
