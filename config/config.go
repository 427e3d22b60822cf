package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"classic-snake/game/types"
)

// DefaultPath is where the game looks for its settings when no -config flag
// is given.
const DefaultPath = "config.json"

// Backend names accepted by Config.Backend.
const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
	BackendHeadless = "headless"
)

var ErrInvalidConfig = errors.New("invalid config")

// RGB is a colour as a JSON array, e.g. [150, 150, 255].
type RGB [3]uint8

func (c RGB) Color() types.Color {
	return types.Color{R: c[0], G: c[1], B: c[2]}
}

type Colors struct {
	Background RGB  `json:"background"`
	Border     RGB  `json:"border"`
	Food       RGB  `json:"food"`
	Snake      RGB  `json:"snake"`
	Head       *RGB `json:"head,omitempty"` // defaults to Snake
}

// Config holds the structure of the configuration
type Config struct {
	Title        string `json:"title"`
	ScreenWidth  int    `json:"screen_width"`
	ScreenHeight int    `json:"screen_height"`
	CellSize     int    `json:"cell_size"`
	TickRate     int    `json:"tick_rate"`
	Backend      string `json:"backend"`
	Seed         uint64 `json:"seed"` // 0 seeds from the clock
	Colors       Colors `json:"colors"`
}

// Default returns the settings of the classic game.
func Default() *Config {
	return &Config{
		Title:        "Snake",
		ScreenWidth:  640,
		ScreenHeight: 480,
		CellSize:     20,
		TickRate:     5,
		Backend:      BackendWindow,
		Colors: Colors{
			Background: RGB{150, 150, 255},
			Border:     RGB{93, 216, 228},
			Food:       RGB{150, 0, 150},
			Snake:      RGB{204, 255, 255},
		},
	}
}

// Load reads the config file at path over the defaults, so partial files
// are fine. A missing file is created from the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Clean(path))
	if errors.Is(err, os.ErrNotExist) {
		if err := Save(path, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path as indented JSON.
func Save(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size must be positive, got %d", ErrInvalidConfig, c.CellSize)
	}
	if c.ScreenWidth < c.CellSize || c.ScreenWidth%c.CellSize != 0 {
		return fmt.Errorf("%w: screen_width %d must be a positive multiple of cell_size %d",
			ErrInvalidConfig, c.ScreenWidth, c.CellSize)
	}
	if c.ScreenHeight < c.CellSize || c.ScreenHeight%c.CellSize != 0 {
		return fmt.Errorf("%w: screen_height %d must be a positive multiple of cell_size %d",
			ErrInvalidConfig, c.ScreenHeight, c.CellSize)
	}
	if c.TickRate < 1 || c.TickRate > 120 {
		return fmt.Errorf("%w: tick_rate must be within 1..120, got %d", ErrInvalidConfig, c.TickRate)
	}
	switch c.Backend {
	case BackendWindow, BackendTerminal, BackendHeadless:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, c.Backend)
	}
	return nil
}

func (c *Config) Grid() types.Grid {
	return types.NewGrid(c.ScreenWidth, c.ScreenHeight, c.CellSize)
}

func (c *Config) Palette() types.Palette {
	head := c.Colors.Snake
	if c.Colors.Head != nil {
		head = *c.Colors.Head
	}
	return types.Palette{
		Background: c.Colors.Background.Color(),
		Border:     c.Colors.Border.Color(),
		Food:       c.Colors.Food.Color(),
		Snake:      c.Colors.Snake.Color(),
		Head:       head.Color(),
	}
}
