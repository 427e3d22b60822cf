package types

// Key is a directional key reported by a platform.
type Key int

const (
	KeyUp Key = iota + 1
	KeyDown
	KeyLeft
	KeyRight
)

// Direction maps an arrow key to the direction it steers.
func (k Key) Direction() Direction {
	switch k {
	case KeyUp:
		return Up
	case KeyDown:
		return Down
	case KeyLeft:
		return Left
	case KeyRight:
		return Right
	default:
		return None
	}
}

type EventKind int

const (
	EventQuit EventKind = iota + 1
	EventKeyDown
)

// Event is one input event drained from a platform.
type Event struct {
	Kind EventKind
	Key  Key
}

func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

func KeyEvent(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}
