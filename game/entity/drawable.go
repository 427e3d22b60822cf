package entity

import "classic-snake/game/types"

// Canvas is the part of a platform entities paint on.
type Canvas interface {
	DrawRect(topLeft types.Cell, size types.Size, fill, border types.Color)
}

// Drawable is implemented by everything that appears on the board.
type Drawable interface {
	Draw(c Canvas, p types.Palette)
}
