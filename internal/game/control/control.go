// Package control names the player actions and the key-state source the
// game reads them from.
package control

import "fmt"

// Action is a bindable player action.
type Action uint8

const (
	Forward Action = iota
	Back
	Left
	Right
	Up
	Down
	TurnLeft
	TurnRight
	Mouth
	Screenshot
	Quit

	ActionCount
)

var actionNames = [ActionCount]string{
	Forward:    "forward",
	Back:       "back",
	Left:       "left",
	Right:      "right",
	Up:         "up",
	Down:       "down",
	TurnLeft:   "turn_left",
	TurnRight:  "turn_right",
	Mouth:      "mouth",
	Screenshot: "screenshot",
	Quit:       "quit",
}

func (a Action) String() string {
	if a < ActionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// ParseAction returns the action with the given name.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name {
			return Action(a), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// Input reports sustained key-down state.
type Input interface {
	IsKeyDown(a Action) bool
}

// Keys is a fixed key-down set. It is used for scripted input.
type Keys map[Action]bool

// IsKeyDown implements Input.
func (k Keys) IsKeyDown(a Action) bool {
	return k[a]
}

// None is an Input with no key held.
var None Input = Keys(nil)
