package input

import (
	"strings"
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/aquarium/internal/config"
	"github.com/Faultbox/aquarium/internal/game/control"
)

var fakeKeys = map[string]sdl.Scancode{
	"W": sdl.SCANCODE_W, "S": sdl.SCANCODE_S, "A": sdl.SCANCODE_A, "D": sdl.SCANCODE_D,
	"Space": sdl.SCANCODE_SPACE, "Left Shift": sdl.SCANCODE_LSHIFT,
	"Q": sdl.SCANCODE_Q, "E": sdl.SCANCODE_E,
	"Return": sdl.SCANCODE_RETURN, "F12": sdl.SCANCODE_F12, "Escape": sdl.SCANCODE_ESCAPE,
}

func fakeLookup(name string) sdl.Scancode {
	return fakeKeys[name]
}

func TestResolveDefaults(t *testing.T) {
	b, err := Resolve(Names(config.Default().Controls), fakeLookup)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(b) != int(control.ActionCount) {
		t.Errorf("len(bindings) = %d, want %d", len(b), control.ActionCount)
	}
	if b[control.Mouth] != sdl.SCANCODE_RETURN {
		t.Errorf("mouth bound to %d, want RETURN", b[control.Mouth])
	}
}

func TestResolveUnknownKeys(t *testing.T) {
	c := config.Default().Controls
	c.Forward = "Banana"
	c.Quit = "Kiwi"
	c.TurnLeft = ""

	b, err := Resolve(Names(c), fakeLookup)
	if err == nil {
		t.Fatal("expected error for unknown keys")
	}
	for _, want := range []string{`forward: unknown key "Banana"`, `quit: unknown key "Kiwi"`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
	if _, ok := b[control.TurnLeft]; ok {
		t.Error("empty name should leave the action unbound")
	}
	if b[control.Back] != sdl.SCANCODE_S {
		t.Error("valid bindings should survive other failures")
	}
}

func TestIsKeyDown(t *testing.T) {
	state := make([]uint8, sdl.NUM_SCANCODES)
	in := New(Bindings{control.Forward: sdl.SCANCODE_W, control.Up: sdl.SCANCODE_SPACE})
	in.state = func() []uint8 { return state }

	if in.IsKeyDown(control.Forward) {
		t.Error("forward should be up")
	}
	state[sdl.SCANCODE_W] = 1
	if !in.IsKeyDown(control.Forward) {
		t.Error("forward should be down")
	}
	if in.IsKeyDown(control.Back) {
		t.Error("unbound action should never be down")
	}

	var _ control.Input = in
}

func TestPressedIgnoresRepeat(t *testing.T) {
	in := New(Bindings{control.Mouth: sdl.SCANCODE_RETURN})
	in.events = append(in.events, Event{Type: EventKeyDown, Key: sdl.SCANCODE_RETURN, Repeat: true})
	if in.Pressed(control.Mouth) {
		t.Error("auto-repeat should not count as a press")
	}
	in.events = append(in.events, Event{Type: EventKeyDown, Key: sdl.SCANCODE_RETURN})
	if !in.Pressed(control.Mouth) {
		t.Error("expected mouth press")
	}
	if in.Pressed(control.Quit) {
		t.Error("unbound action should never be pressed")
	}
}
