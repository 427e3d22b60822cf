package main

import (
	"context"
	"flag"
	"log"
	"time"

	"golang.org/x/exp/rand"

	"classic-snake/config"
	"classic-snake/game"
)

func main() {
	var opts options
	configPath := flag.String("config", config.DefaultPath, "Path to the JSON settings file (created with defaults if missing)")
	flag.StringVar(&opts.backend, "backend", "", "Platform to play on: window, terminal or headless (overrides the config)")
	flag.Uint64Var(&opts.seed, "seed", 0, "Random seed for food placement and reset direction (0 = config or clock)")
	flag.IntVar(&opts.frames, "frames", 300, "Frames to run before quitting on the headless backend")
	flag.StringVar(&opts.snapshot, "snapshot", "", "Write the last headless frame to this image file")
	flag.IntVar(&opts.scale, "scale", 1, "Enlarge the headless snapshot by this factor")
	flag.StringVar(&opts.logPath, "log", "snake.log", "Log file used while the terminal backend owns the screen")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	seed, err := applyOverrides(cfg, opts, time.Now)
	if err != nil {
		log.Fatalf("Bad settings: %v", err)
	}
	rng := rand.New(rand.NewSource(seed))

	platform, release, err := openPlatform(cfg, opts)
	if err != nil {
		log.Fatalf("Failed to open %s backend: %v", cfg.Backend, err)
	}

	g, err := game.NewGame(cfg, platform, rng)
	if err != nil {
		_ = platform.Close()
		release()
		log.Fatalf("Failed to start game: %v", err)
	}
	log.Printf("[%s] seed %d, backend %s", g.UUID, seed, cfg.Backend)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if updates, err := config.Watch(ctx, *configPath); err != nil {
		log.Printf("Config hot reload disabled: %v", err)
	} else {
		g.WatchConfig(updates)
	}

	err = g.Run()
	release()
	if err != nil {
		cancel()
		log.Fatalf("Game over: %v", err)
	}
}
