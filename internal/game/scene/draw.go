package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/aquarium/internal/engine/mesh"
)

// DrawCommand asks the renderer to draw Mesh with Transform in Color.
type DrawCommand struct {
	Part      string     `yaml:"part"`
	Mesh      mesh.ID    `yaml:"mesh"`
	Transform mgl32.Mat4 `yaml:"transform,flow"`
	Color     mgl32.Vec3 `yaml:"color,flow"`
}

// Position returns the translation of the command's transform.
func (c DrawCommand) Position() mgl32.Vec3 {
	return c.Transform.Col(3).Vec3()
}
