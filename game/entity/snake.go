package entity

import (
	"classic-snake/game/types"
)

// Snake is the player body. positions[0] is the head.
type Snake struct {
	positions   []types.Cell
	direction   types.Direction
	pending     types.Direction
	length      int
	lastRemoved *types.Cell

	grid types.Grid
	rng  types.Random
}

// NewSnake places a one-cell snake at the board centre moving up.
func NewSnake(grid types.Grid, rng types.Random) *Snake {
	return &Snake{
		positions: []types.Cell{grid.Center()},
		direction: types.Up,
		length:    1,
		grid:      grid,
		rng:       rng,
	}
}

// SetPendingDirection buffers d for the next tick. Reversals are dropped.
func (s *Snake) SetPendingDirection(d types.Direction) {
	if d == types.None || d.IsOpposite(s.direction) {
		return
	}
	s.pending = d
}

// ApplyPendingDirection commits the buffered direction, if any.
func (s *Snake) ApplyPendingDirection() {
	if s.pending == types.None {
		return
	}
	if !s.pending.IsOpposite(s.direction) {
		s.direction = s.pending
	}
	s.pending = types.None
}

// Advance moves the head one cell and drops the tail unless the snake is
// still growing into its length.
func (s *Snake) Advance() {
	head := s.grid.Wrap(s.Head(), s.direction)
	s.positions = append([]types.Cell{head}, s.positions...)

	if len(s.positions) > s.length {
		last := s.positions[len(s.positions)-1]
		s.positions = s.positions[:len(s.positions)-1]
		s.lastRemoved = &last
	} else {
		s.lastRemoved = nil
	}
}

func (s *Snake) Head() types.Cell {
	return s.positions[0]
}

// HasSelfCollision reports whether the head overlaps the rest of the body.
func (s *Snake) HasSelfCollision() bool {
	head := s.Head()
	for _, p := range s.positions[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// Grow lengthens the snake by one cell on the next Advance.
func (s *Snake) Grow() {
	s.length++
}

// Reset shrinks the snake back to a single centre cell heading in a random
// direction.
func (s *Snake) Reset() {
	s.length = 1
	s.positions = []types.Cell{s.grid.Center()}
	s.direction = types.Directions[s.rng.Intn(len(types.Directions))]
	s.pending = types.None
	s.lastRemoved = nil
}

func (s *Snake) Positions() []types.Cell {
	out := make([]types.Cell, len(s.positions))
	copy(out, s.positions)
	return out
}

func (s *Snake) Direction() types.Direction { return s.direction }
func (s *Snake) Pending() types.Direction   { return s.pending }
func (s *Snake) Length() int                { return s.length }

// LastRemoved returns the tail cell vacated by the latest Advance.
func (s *Snake) LastRemoved() (types.Cell, bool) {
	if s.lastRemoved == nil {
		return types.Cell{}, false
	}
	return *s.lastRemoved, true
}

// Occupied returns the body as a set, the form food placement expects.
func (s *Snake) Occupied() map[types.Cell]struct{} {
	set := make(map[types.Cell]struct{}, len(s.positions))
	for _, p := range s.positions {
		set[p] = struct{}{}
	}
	return set
}

func (s *Snake) Occupies(c types.Cell) bool {
	for _, p := range s.positions {
		if p == c {
			return true
		}
	}
	return false
}

func (s *Snake) Draw(c Canvas, p types.Palette) {
	tile := s.grid.Tile()
	for i := len(s.positions) - 1; i >= 0; i-- {
		fill := p.Snake
		if i == 0 {
			fill = p.Head
		}
		c.DrawRect(s.positions[i], tile, fill, p.Border)
	}
}
