package input

import (
	"errors"
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/aquarium/internal/config"
	"github.com/Faultbox/aquarium/internal/game/control"
)

// Bindings maps actions to physical keys.
type Bindings map[control.Action]sdl.Scancode

// Names returns the key name configured for every action.
func Names(c config.ControlsConfig) map[control.Action]string {
	return map[control.Action]string{
		control.Forward:    c.Forward,
		control.Back:       c.Back,
		control.Left:       c.Left,
		control.Right:      c.Right,
		control.Up:         c.Up,
		control.Down:       c.Down,
		control.TurnLeft:   c.TurnLeft,
		control.TurnRight:  c.TurnRight,
		control.Mouth:      c.Mouth,
		control.Screenshot: c.Screenshot,
		control.Quit:       c.Quit,
	}
}

// Resolve turns key names into scancodes with lookup, which is normally
// sdl.GetScancodeFromName. Empty names leave the action unbound. Every
// unknown name is reported.
func Resolve(names map[control.Action]string, lookup func(string) sdl.Scancode) (Bindings, error) {
	b := make(Bindings, len(names))
	var errs []error
	for a := control.Action(0); a < control.ActionCount; a++ {
		name, ok := names[a]
		if !ok || name == "" {
			continue
		}
		sc := lookup(name)
		if sc == sdl.SCANCODE_UNKNOWN {
			errs = append(errs, fmt.Errorf("%s: unknown key %q", a, name))
			continue
		}
		b[a] = sc
	}
	return b, errors.Join(errs...)
}

// FromConfig resolves the configured controls with SDL's key names.
func FromConfig(c config.ControlsConfig) (Bindings, error) {
	return Resolve(Names(c), sdl.GetScancodeFromName)
}
