package entity

import (
	"errors"

	"classic-snake/game/types"
)

// ErrBoardFull is returned when food has nowhere left to go.
var ErrBoardFull = errors.New("no free cell left for food")

type Food struct {
	position types.Cell
	grid     types.Grid
	rng      types.Random
}

func NewFood(grid types.Grid, rng types.Random, occupied map[types.Cell]struct{}) (*Food, error) {
	f := &Food{grid: grid, rng: rng}
	if err := f.Place(occupied); err != nil {
		return nil, err
	}
	return f, nil
}

// Place moves the food to a cell chosen uniformly among the cells not in
// occupied. The position is left untouched when the board is full.
func (f *Food) Place(occupied map[types.Cell]struct{}) error {
	cells := f.grid.Cells()
	free := cells[:0]
	for _, c := range cells {
		if _, taken := occupied[c]; !taken {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return ErrBoardFull
	}

	f.position = free[f.rng.Intn(len(free))]
	return nil
}

func (f *Food) Position() types.Cell {
	return f.position
}

func (f *Food) Draw(c Canvas, p types.Palette) {
	c.DrawRect(f.position, f.grid.Tile(), p.Food, p.Border)
}
