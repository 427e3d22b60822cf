package types

// Cell is a grid-aligned position in pixels. Both coordinates are multiples
// of the grid cell size.
type Cell struct {
	X, Y int
}

// Size is a rectangle extent in pixels.
type Size struct {
	W, H int
}

type Color struct {
	R, G, B uint8
}

// Palette holds every colour the game paints with.
type Palette struct {
	Background Color
	Border     Color
	Food       Color
	Snake      Color
	Head       Color
}

// Random is the source of every random choice in the game.
// *golang.org/x/exp/rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}

// Grid represents the playing field dimensions
type Grid struct {
	Width    int // pixels
	Height   int // pixels
	CellSize int
}

func NewGrid(width, height, cellSize int) Grid {
	return Grid{
		Width:    width,
		Height:   height,
		CellSize: cellSize,
	}
}

func (g Grid) Columns() int {
	return g.Width / g.CellSize
}

func (g Grid) Rows() int {
	return g.Height / g.CellSize
}

// Tile is the pixel extent of one cell.
func (g Grid) Tile() Size {
	return Size{W: g.CellSize, H: g.CellSize}
}

// CellCount is the number of cells on the board.
func (g Grid) CellCount() int {
	return g.Columns() * g.Rows()
}

// Contains reports whether c is an aligned cell inside the board.
func (g Grid) Contains(c Cell) bool {
	if c.X < 0 || c.Y < 0 || c.X >= g.Columns()*g.CellSize || c.Y >= g.Rows()*g.CellSize {
		return false
	}
	return c.X%g.CellSize == 0 && c.Y%g.CellSize == 0
}

// Center returns the board centre aligned down to the grid.
func (g Grid) Center() Cell {
	return Cell{
		X: g.Columns() / 2 * g.CellSize,
		Y: g.Rows() / 2 * g.CellSize,
	}
}

// Wrap moves c one cell in direction d. Leaving one edge re-enters from the
// opposite edge.
func (g Grid) Wrap(c Cell, d Direction) Cell {
	delta := d.Delta()
	return Cell{
		X: mod(c.X+delta.X*g.CellSize, g.Width),
		Y: mod(c.Y+delta.Y*g.CellSize, g.Height),
	}
}

// Cells enumerates the whole board row by row.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.CellCount())
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Columns(); x++ {
			cells = append(cells, Cell{X: x * g.CellSize, Y: y * g.CellSize})
		}
	}
	return cells
}

func mod(a, n int) int {
	return (a%n + n) % n
}
