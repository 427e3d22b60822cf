package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"classic-snake/game/types"
)

// Terminal plays the game in a text terminal. One board cell is two
// columns wide and one row high so cells come out roughly square.
type Terminal struct {
	screen   tcell.Screen
	cellSize int
	pacer    *Pacer
}

// NewTerminal takes over the terminal behind a new tcell screen.
func NewTerminal(cellSize int) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewTerminalOn(screen, cellSize)
}

// NewTerminalOn initialises screen and draws on it.
func NewTerminalOn(screen tcell.Screen, cellSize int) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	return &Terminal{
		screen:   screen,
		cellSize: cellSize,
		pacer:    NewPacer(),
	}, nil
}

// Origin maps a board cell to its terminal column and row.
func (t *Terminal) Origin(c types.Cell) (col, row int) {
	return c.X / t.cellSize * 2, c.Y / t.cellSize
}

func (t *Terminal) DrawRect(topLeft types.Cell, size types.Size, fill, border types.Color) {
	style := tcell.StyleDefault.Background(toTcell(fill)).Foreground(toTcell(border))
	left, right := '[', ']'
	if border == fill {
		left, right = ' ', ' '
	}

	col, row := t.Origin(topLeft)
	cols := size.W / t.cellSize * 2
	rows := size.H / t.cellSize
	for y := row; y < row+rows; y++ {
		for x := col; x < col+cols; x += 2 {
			t.screen.SetContent(x, y, left, nil, style)
			t.screen.SetContent(x+1, y, right, nil, style)
		}
	}
}

func (t *Terminal) Clear(color types.Color) {
	t.screen.Fill(' ', tcell.StyleDefault.Background(toTcell(color)))
}

func (t *Terminal) PollEvents() []types.Event {
	var events []types.Event
	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if e, ok := terminalKey(ev); ok {
				events = append(events, e)
			}
		case *tcell.EventResize:
			t.screen.Sync()
		case nil:
			// Screen finalized.
			return append(events, types.QuitEvent())
		}
	}
	return events
}

func (t *Terminal) Pace(ticksPerSecond int) {
	t.screen.Show()
	t.pacer.Wait(ticksPerSecond)
}

func (t *Terminal) Close() error {
	t.screen.Fini()
	return nil
}

func terminalKey(ev *tcell.EventKey) (types.Event, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return types.KeyEvent(types.KeyUp), true
	case tcell.KeyDown:
		return types.KeyEvent(types.KeyDown), true
	case tcell.KeyLeft:
		return types.KeyEvent(types.KeyLeft), true
	case tcell.KeyRight:
		return types.KeyEvent(types.KeyRight), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return types.QuitEvent(), true
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return types.QuitEvent(), true
		}
	}
	return types.Event{}, false
}

func toTcell(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
