package manager

import (
	"classic-snake/game/entity"
	"classic-snake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	FoodCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case FoodCollision:
		return "food"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Cell, food types.Cell) bool {
	return pos == food
}

// IsSelfCollision checks whether the snake's head ran into its own body.
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake) bool {
	return snake.HasSelfCollision()
}

// Check classifies the snake's current head position. Food wins over self
// collision; both cannot happen on the same cell.
func (cm *CollisionManager) Check(snake *entity.Snake, food *entity.Food) CollisionType {
	if cm.IsFoodCollision(snake.Head(), food.Position()) {
		return FoodCollision
	}
	if cm.IsSelfCollision(snake) {
		return SelfCollision
	}
	return NoCollision
}

// ShouldErase reports whether the tile vacated this tick can be painted with
// the background. A vacated tile the head or the food moved onto stays.
func (cm *CollisionManager) ShouldErase(snake *entity.Snake, food *entity.Food) (types.Cell, bool) {
	tail, ok := snake.LastRemoved()
	if !ok || !cm.grid.Contains(tail) {
		return types.Cell{}, false
	}
	if snake.Occupies(tail) || cm.IsFoodCollision(tail, food.Position()) {
		return types.Cell{}, false
	}
	return tail, true
}
