package scene

import (
	"github.com/Faultbox/aquarium/internal/engine/mesh"
	"github.com/Faultbox/aquarium/pkg/transform"
)

// Render returns this frame's draw list: tank base, seaweed, school fish,
// then the player. It does not modify the scene.
func (s *State) Render() []DrawCommand {
	return s.RenderInto(nil)
}

// RenderInto appends the draw list to dst[:0] and returns it, so a caller can
// reuse one buffer across frames.
func (s *State) RenderInto(dst []DrawCommand) []DrawCommand {
	dst = append(dst[:0], s.base)

	t := s.clock.Now()
	for _, c := range s.seaweed {
		s.weedParts = c.Parts(s.weedParts[:0], t)
		for _, p := range s.weedParts {
			dst = append(dst, DrawCommand{Part: "seaweed", Mesh: mesh.Base, Transform: p.Transform, Color: p.Color})
		}
	}

	for i := range s.school.Fish {
		f := &s.school.Fish[i]
		m := transform.At(f.Position).RotateY(f.HeadingAngle()).Leaf(f.Scale)
		dst = append(dst, DrawCommand{Part: "school", Mesh: f.Kind, Transform: m, Color: f.Color})
	}

	s.playerParts = s.player.Rig(s.playerParts[:0])
	for _, p := range s.playerParts {
		dst = append(dst, DrawCommand{Part: p.Name, Mesh: mesh.Base, Transform: p.Transform, Color: p.Color})
	}
	return dst
}
