package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type EventKind int

const (
	EventQuit EventKind = iota
	EventPress
)

// Event is one input occurrence for the current frame.
type Event struct {
	Kind   EventKind
	Button ebiten.MouseButton
	X, Y   float64
}

// EventSource yields the events that happened since the previous frame.
type EventSource interface {
	Poll() []Event
}

var pollButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// EbitenInput reads window, keyboard, mouse and touch state from ebiten.
// The window close request is only reported when closing is handled by the
// game (ebiten.SetWindowClosingHandled).
type EbitenInput struct {
	touches []ebiten.TouchID
}

func (in *EbitenInput) Poll() []Event {
	var events []Event

	if ebiten.IsWindowBeingClosed() ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		events = append(events, Event{Kind: EventQuit})
	}

	for _, b := range pollButtons {
		if !inpututil.IsMouseButtonJustPressed(b) {
			continue
		}
		x, y := ebiten.CursorPosition()
		events = append(events, Event{Kind: EventPress, Button: b, X: float64(x), Y: float64(y)})
	}

	// A tap acts as a primary press.
	in.touches = inpututil.AppendJustPressedTouchIDs(in.touches[:0])
	for _, id := range in.touches {
		x, y := ebiten.TouchPosition(id)
		events = append(events, Event{Kind: EventPress, Button: ebiten.MouseButtonLeft, X: float64(x), Y: float64(y)})
	}

	return events
}
