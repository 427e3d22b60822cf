package game

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"classic-snake/config"
	"classic-snake/game/entity"
	"classic-snake/game/manager"
	"classic-snake/game/types"
)

// Platform is everything the game needs from the outside world: a surface
// to draw on, an input queue and a frame clock.
type Platform interface {
	entity.Canvas
	Clear(color types.Color)
	PollEvents() []types.Event
	Pace(ticksPerSecond int)
	Close() error
}

type Game struct {
	UUID     string
	Grid     types.Grid
	Palette  types.Palette
	TickRate int

	snake      *entity.Snake
	food       *entity.Food
	platform   Platform
	collisions *manager.CollisionManager
	state      *manager.StateManager
	reloads    <-chan *config.Config
	started    bool
	quit       bool
}

func NewGame(cfg *config.Config, platform Platform, rng types.Random) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gameUUID := uuid.New().String()
	grid := cfg.Grid()

	snake := entity.NewSnake(grid, rng)
	food, err := entity.NewFood(grid, rng, snake.Occupied())
	if err != nil {
		return nil, fmt.Errorf("place initial food: %w", err)
	}

	return &Game{
		UUID:       gameUUID,
		Grid:       grid,
		Palette:    cfg.Palette(),
		TickRate:   cfg.TickRate,
		snake:      snake,
		food:       food,
		platform:   platform,
		collisions: manager.NewCollisionManager(grid),
		state:      manager.NewStateManager(gameUUID),
	}, nil
}

// WatchConfig makes the game pick up palette and tick rate changes from
// updates at the start of each tick.
func (g *Game) WatchConfig(updates <-chan *config.Config) {
	g.reloads = updates
}

func (g *Game) Snake() *entity.Snake        { return g.snake }
func (g *Game) Food() *entity.Food          { return g.food }
func (g *Game) Stats() manager.SessionStats { return g.state.Stats() }
func (g *Game) Quit() bool                  { return g.quit }

// Run steps the game until the platform reports quit, then closes the
// platform.
func (g *Game) Run() error {
	log.Printf("[%s] starting %dx%d board at %d ticks/s",
		g.UUID, g.Grid.Columns(), g.Grid.Rows(), g.TickRate)

	var runErr error
	for {
		running, err := g.Step()
		if err != nil {
			runErr = err
			break
		}
		if !running {
			break
		}
	}

	if err := g.platform.Close(); err != nil && runErr == nil {
		runErr = fmt.Errorf("close platform: %w", err)
	}
	log.Printf("[%s] %s", g.UUID, g.state.Summary())
	return runErr
}

// Step runs one tick. It returns false once quit has been requested.
func (g *Game) Step() (bool, error) {
	if g.quit {
		return false, nil
	}
	if !g.started {
		g.platform.Clear(g.Palette.Background)
		g.started = true
	}

	g.applyReloads()

	for _, ev := range g.platform.PollEvents() {
		switch ev.Kind {
		case types.EventQuit:
			g.quit = true
			return false, nil
		case types.EventKeyDown:
			g.snake.SetPendingDirection(ev.Key.Direction())
		}
	}

	g.snake.ApplyPendingDirection()
	g.snake.Advance()
	g.state.RecordTick()

	switch hit := g.collisions.Check(g.snake, g.food); hit {
	case manager.FoodCollision:
		g.snake.Grow()
		g.state.RecordFood(g.snake.Length())
		if err := g.food.Place(g.snake.Occupied()); err != nil {
			return false, fmt.Errorf("tick %d: %w", g.state.Stats().Ticks, err)
		}
	case manager.SelfCollision:
		log.Printf("[%s] %s collision at %v, length %d", g.UUID, hit, g.snake.Head(), g.snake.Length())
		g.state.RecordReset(g.snake.Length())
		g.snake.Reset()
		if err := g.food.Place(g.snake.Occupied()); err != nil {
			return false, fmt.Errorf("tick %d: %w", g.state.Stats().Ticks, err)
		}
		g.platform.Clear(g.Palette.Background)
	}

	g.render()
	g.platform.Pace(g.TickRate)
	return true, nil
}

func (g *Game) render() {
	g.food.Draw(g.platform, g.Palette)
	g.snake.Draw(g.platform, g.Palette)
	if tail, ok := g.collisions.ShouldErase(g.snake, g.food); ok {
		bg := g.Palette.Background
		g.platform.DrawRect(tail, g.Grid.Tile(), bg, bg)
	}
}

func (g *Game) applyReloads() {
	if g.reloads == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-g.reloads:
			if !ok {
				g.reloads = nil
				return
			}
			g.reconfigure(cfg)
		default:
			return
		}
	}
}

func (g *Game) reconfigure(cfg *config.Config) {
	if cfg.Grid() != g.Grid {
		log.Printf("[%s] board size changes need a restart, keeping %dx%d",
			g.UUID, g.Grid.Width, g.Grid.Height)
	}
	if cfg.TickRate != g.TickRate {
		log.Printf("[%s] tick rate %d -> %d", g.UUID, g.TickRate, cfg.TickRate)
		g.TickRate = cfg.TickRate
	}
	if palette := cfg.Palette(); palette != g.Palette {
		log.Printf("[%s] palette reloaded", g.UUID)
		g.Palette = palette
		g.platform.Clear(palette.Background)
	}
}
