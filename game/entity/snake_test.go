package entity

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classic-snake/game/types"
)

// fixedRand always picks the same index, clamped to n.
type fixedRand struct {
	index int
	calls int
}

func (r *fixedRand) Intn(n int) int {
	r.calls++
	if r.index >= n {
		return n - 1
	}
	return r.index
}

type rectCall struct {
	At     types.Cell
	Size   types.Size
	Fill   types.Color
	Border types.Color
}

type recordingCanvas struct {
	rects []rectCall
}

func (c *recordingCanvas) DrawRect(at types.Cell, size types.Size, fill, border types.Color) {
	c.rects = append(c.rects, rectCall{At: at, Size: size, Fill: fill, Border: border})
}

var testGrid = types.NewGrid(640, 480, 20)

func TestNewSnakeStartsAtCenterMovingUp(t *testing.T) {
	s := NewSnake(testGrid, &fixedRand{})

	assert.Equal(t, types.Cell{X: 320, Y: 240}, s.Head())
	assert.Equal(t, types.Up, s.Direction())
	assert.Equal(t, types.None, s.Pending())
	assert.Equal(t, 1, s.Length())
	_, removed := s.LastRemoved()
	assert.False(t, removed)
}

func TestPendingDirectionAcceptsNonOpposite(t *testing.T) {
	for _, current := range types.Directions {
		for _, d := range types.Directions {
			if d == current.Opposite() {
				continue
			}
			s := NewSnake(testGrid, &fixedRand{})
			s.direction = current

			s.SetPendingDirection(d)
			s.ApplyPendingDirection()

			assert.Equal(t, d, s.Direction(), "current=%s requested=%s", current, d)
			assert.Equal(t, types.None, s.Pending())
		}
	}
}

func TestPendingDirectionRejectsOpposite(t *testing.T) {
	for _, current := range types.Directions {
		s := NewSnake(testGrid, &fixedRand{})
		s.direction = current

		s.SetPendingDirection(current.Opposite())
		assert.Equal(t, types.None, s.Pending())

		s.ApplyPendingDirection()
		assert.Equal(t, current, s.Direction())
	}
}

func TestPendingDirectionLastAcceptedWins(t *testing.T) {
	s := NewSnake(testGrid, &fixedRand{})

	s.SetPendingDirection(types.Left)
	s.SetPendingDirection(types.Down) // opposite of Up, dropped
	s.SetPendingDirection(types.Right)
	s.ApplyPendingDirection()

	assert.Equal(t, types.Right, s.Direction())
}

func TestApplyPendingRechecksOpposite(t *testing.T) {
	s := NewSnake(testGrid, &fixedRand{})
	s.pending = types.Down

	s.ApplyPendingDirection()

	assert.Equal(t, types.Up, s.Direction())
	assert.Equal(t, types.None, s.Pending())
}

func TestAdvanceKeepsLength(t *testing.T) {
	s := NewSnake(testGrid, &fixedRand{})
	s.length = 3
	s.Advance()
	s.Advance()
	require.Len(t, s.Positions(), 3)

	for i := 0; i < 20; i++ {
		s.Advance()
		assert.Len(t, s.Positions(), s.Length())
		_, removed := s.LastRemoved()
		assert.True(t, removed)
	}
}

func TestAdvanceRecordsVacatedTail(t *testing.T) {
	s := NewSnake(testGrid, &fixedRand{})

	s.Advance()

	assert.Equal(t, types.Cell{X: 320, Y: 220}, s.Head())
	tail, ok := s.LastRemoved()
	require.True(t, ok)
	assert.Equal(t, types.Cell{X: 320, Y: 240}, tail)
}

func TestAdvanceWrapsAllEdges(t *testing.T) {
	tests := []struct {
		dir  types.Direction
		from types.Cell
		want types.Cell
	}{
		{types.Right, types.Cell{X: 620, Y: 100}, types.Cell{X: 0, Y: 100}},
		{types.Left, types.Cell{X: 0, Y: 100}, types.Cell{X: 620, Y: 100}},
		{types.Up, types.Cell{X: 100, Y: 0}, types.Cell{X: 100, Y: 460}},
		{types.Down, types.Cell{X: 100, Y: 460}, types.Cell{X: 100, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			s := NewSnake(testGrid, &fixedRand{})
			s.positions = []types.Cell{tt.from}
			s.direction = tt.dir

			s.Advance()

			assert.Equal(t, tt.want, s.Head())
		})
	}
}

func TestGrowKeepsTailForOneTick(t *testing.T) {
	s := NewSnake(testGrid, &fixedRand{})
	s.Advance()

	s.Grow()
	s.Advance()

	assert.Equal(t, 2, s.Length())
	assert.Len(t, s.Positions(), 2)
	_, removed := s.LastRemoved()
	assert.False(t, removed, "growth tick must not pop the tail")

	s.Advance()
	_, removed = s.LastRemoved()
	assert.True(t, removed)
	assert.Len(t, s.Positions(), 2)
}

func TestSelfCollisionAndReset(t *testing.T) {
	rng := &fixedRand{index: 2}
	s := NewSnake(testGrid, rng)
	s.positions = []types.Cell{{X: 100, Y: 100}, {X: 120, Y: 100}, {X: 100, Y: 100}}
	s.length = 3
	s.pending = types.Left
	last := types.Cell{X: 140, Y: 100}
	s.lastRemoved = &last

	require.True(t, s.HasSelfCollision())

	s.Reset()

	assert.Equal(t, 1, s.Length())
	if diff := cmp.Diff([]types.Cell{testGrid.Center()}, s.Positions()); diff != "" {
		t.Errorf("positions after reset (-want +got):\n%s", diff)
	}
	assert.Equal(t, types.Directions[2], s.Direction())
	assert.Equal(t, types.None, s.Pending())
	_, removed := s.LastRemoved()
	assert.False(t, removed)
	assert.False(t, s.HasSelfCollision())
	assert.Equal(t, 1, rng.calls)
}

func TestTightLoopCollides(t *testing.T) {
	s := NewSnake(testGrid, &fixedRand{})
	s.length = 5
	for _, d := range []types.Direction{types.Up, types.Up, types.Right, types.Down, types.Left} {
		s.SetPendingDirection(d)
		s.ApplyPendingDirection()
		s.Advance()
	}
	assert.True(t, s.HasSelfCollision())
}

func TestOccupied(t *testing.T) {
	s := NewSnake(testGrid, &fixedRand{})
	s.length = 3
	s.Advance()
	s.Advance()

	occupied := s.Occupied()
	assert.Len(t, occupied, 3)
	for _, p := range s.Positions() {
		assert.Contains(t, occupied, p)
		assert.True(t, s.Occupies(p))
	}
	assert.False(t, s.Occupies(types.Cell{X: 0, Y: 0}))
}

func TestSnakeDrawHeadLast(t *testing.T) {
	palette := types.Palette{
		Border: types.Color{R: 1},
		Snake:  types.Color{G: 2},
		Head:   types.Color{B: 3},
	}
	s := NewSnake(testGrid, &fixedRand{})
	s.length = 2
	s.Advance()

	c := &recordingCanvas{}
	s.Draw(c, palette)

	want := []rectCall{
		{At: types.Cell{X: 320, Y: 240}, Size: types.Size{W: 20, H: 20}, Fill: palette.Snake, Border: palette.Border},
		{At: types.Cell{X: 320, Y: 220}, Size: types.Size{W: 20, H: 20}, Fill: palette.Head, Border: palette.Border},
	}
	if diff := cmp.Diff(want, c.rects); diff != "" {
		t.Errorf("draw calls (-want +got):\n%s", diff)
	}
}

func TestPositionsReturnsCopy(t *testing.T) {
	s := NewSnake(testGrid, &fixedRand{})
	p := s.Positions()
	p[0] = types.Cell{X: 0, Y: 0}
	assert.Equal(t, testGrid.Center(), s.Head())
}
