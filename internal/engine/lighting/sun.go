// Package lighting describes the scene light.
package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Sun is a directional light placed by compass angles.
type Sun struct {
	Longitude float32 // degrees around +Y, 0 points at +Z
	Latitude  float32 // degrees above the horizon
	Color     mgl32.Vec3
	Ambient   float32 // fraction of Color applied to unlit faces
}

// ToSun returns the unit vector pointing from the scene towards the sun.
func (s Sun) ToSun() mgl32.Vec3 {
	return SunDirection(s.Longitude, s.Latitude)
}

// Direction returns the direction the light travels in.
func (s Sun) Direction() mgl32.Vec3 {
	return s.ToSun().Mul(-1)
}

// SunDirection converts longitude/latitude in degrees to a unit vector
// pointing towards the sun.
func SunDirection(longitude, latitude float32) mgl32.Vec3 {
	lon := float64(mgl32.DegToRad(longitude))
	lat := float64(mgl32.DegToRad(latitude))
	return mgl32.Vec3{
		float32(math.Cos(lat) * math.Sin(lon)),
		float32(math.Sin(lat)),
		float32(math.Cos(lat) * math.Cos(lon)),
	}
}
