package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/aquarium/internal/game/control"
	"github.com/Faultbox/aquarium/internal/game/scene"
)

// script is a scripted headless session.
type script struct {
	frames  int
	dt      float64
	keys    control.Keys
	mouthAt map[int]bool
}

func parseScript(frames int, fps float64, keys, mouthAt string) (*script, error) {
	if frames < 0 {
		return nil, fmt.Errorf("frames must not be negative, got %d", frames)
	}
	if fps <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %g", fps)
	}
	s := &script{
		frames:  frames,
		dt:      1 / fps,
		keys:    control.Keys{},
		mouthAt: map[int]bool{},
	}

	for _, name := range splitList(keys) {
		a, err := control.ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("keys: %w", err)
		}
		s.keys[a] = true
	}
	for _, f := range splitList(mouthAt) {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("mouth-at: invalid frame %q", f)
		}
		s.mouthAt[n] = true
	}
	return s, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// run steps st through the script. Mouth presses are delivered before the
// update of their frame, like key events in the interactive loop.
func (s *script) run(st *scene.State) {
	for f := 0; f < s.frames; f++ {
		if s.mouthAt[f] {
			st.ToggleMouth()
		}
		st.Update(s.dt)
	}
}
