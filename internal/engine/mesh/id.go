package mesh

import "fmt"

// ID names one of the drawable meshes the scene can reference.
type ID uint8

// Mesh IDs. Base is the unit cube used for the tank floor and every
// box-shaped part of the seaweed and the player rig.
const (
	Base ID = iota
	Fish1
	Fish2
	Fish3

	// Count is the number of mesh IDs.
	Count
)

var idNames = [Count]string{
	Base:  "base",
	Fish1: "fish1",
	Fish2: "fish2",
	Fish3: "fish3",
}

// String returns the config name of the mesh.
func (id ID) String() string {
	if id < Count {
		return idNames[id]
	}
	return fmt.Sprintf("mesh(%d)", uint8(id))
}

// ParseID resolves a config name to a mesh ID.
func ParseID(name string) (ID, error) {
	for i, n := range idNames {
		if n == name {
			return ID(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mesh %q", name)
}

// IsFish reports whether id is one of the school fish meshes.
func (id ID) IsFish() bool {
	return id >= Fish1 && id <= Fish3
}

// MarshalYAML encodes the ID by name.
func (id ID) MarshalYAML() (interface{}, error) {
	return id.String(), nil
}
