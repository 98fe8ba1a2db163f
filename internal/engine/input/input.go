// Package input handles SDL2 input events and held-key state.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/aquarium/internal/game/control"
)

// EventType is the kind of a processed event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Repeat bool
	Width  int
	Height int
}

// Input collects the events of a frame and answers held-key queries through
// the bound actions.
type Input struct {
	events   []Event
	bindings Bindings
	state    func() []uint8
}

// New creates an input handler using the given key bindings.
func New(b Bindings) *Input {
	return &Input{
		events:   make([]Event, 0, 16),
		bindings: b,
		state:    sdl.GetKeyboardState,
	}
}

// Update polls SDL events and converts them to game events.
// Returns true if the window was closed.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			ev := Event{Key: e.Keysym.Scancode, Repeat: e.Repeat != 0}
			if e.Type == sdl.KEYDOWN {
				ev.Type = EventKeyDown
			} else {
				ev.Type = EventKeyUp
			}
			i.events = append(i.events, ev)
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a key went down this frame. Auto-repeat does not
// count as a press.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && !e.Repeat && e.Key == scancode {
			return true
		}
	}
	return false
}

// Pressed reports whether the key bound to a went down this frame.
func (i *Input) Pressed(a control.Action) bool {
	sc, ok := i.bindings[a]
	return ok && i.IsKeyPressed(sc)
}

// IsKeyDown reports whether the key bound to a is held. It implements
// control.Input.
func (i *Input) IsKeyDown(a control.Action) bool {
	sc, ok := i.bindings[a]
	if !ok {
		return false
	}
	state := i.state()
	return int(sc) < len(state) && state[sc] != 0
}
