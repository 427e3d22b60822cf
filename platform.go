package main

import (
	"log"
	"os"
	"time"

	"classic-snake/config"
	"classic-snake/game"
	"classic-snake/ui"
)

// options are the command-line choices that sit on top of the config file.
type options struct {
	backend  string
	seed     uint64
	frames   int
	snapshot string
	scale    int
	logPath  string
}

// applyOverrides puts the flags over cfg and returns the seed to play with.
// A seed of 0 in both places seeds from the clock.
func applyOverrides(cfg *config.Config, opts options, now func() time.Time) (uint64, error) {
	if opts.backend != "" {
		cfg.Backend = opts.backend
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	if cfg.Seed != 0 {
		return cfg.Seed, nil
	}
	return uint64(now().UnixNano()), nil
}

var newTerminal = ui.NewTerminal

// openPlatform opens the backend named by cfg. The release func undoes
// process-wide changes made for the platform and must run after the
// platform is closed.
func openPlatform(cfg *config.Config, opts options) (game.Platform, func(), error) {
	switch cfg.Backend {
	case config.BackendTerminal:
		term, err := newTerminal(cfg.CellSize)
		if err != nil {
			return nil, nil, err
		}

		// The terminal is the screen; keep log lines out of it.
		f, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			_ = term.Close()
			return nil, nil, err
		}
		prev := log.Writer()
		log.SetOutput(f)
		return term, func() {
			log.SetOutput(prev)
			if err := f.Close(); err != nil {
				log.Printf("close %s: %v", opts.logPath, err)
			}
		}, nil
	case config.BackendHeadless:
		c := ui.NewCanvas(cfg.ScreenWidth, cfg.ScreenHeight, opts.frames)
		if opts.snapshot != "" {
			c.SnapshotOnClose(opts.snapshot, opts.scale)
		}
		return c, func() {}, nil
	default:
		return ui.NewRenderer(cfg.ScreenWidth, cfg.ScreenHeight, cfg.Title), func() {}, nil
	}
}
