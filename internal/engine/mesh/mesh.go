// Package mesh provides the geometry the aquarium draws: a unit cube and
// three procedural fish bodies. Meshes are plain vertex/index arrays ready
// for GPU upload; nothing here touches OpenGL.
package mesh

import (
	gomath "math"
)

// Vertex is a mesh vertex with position and normal.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Mesh holds vertices and triangle indices.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Bounds is the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Build returns the geometry for id.
func Build(id ID) *Mesh {
	switch id {
	case Base:
		return Cube()
	case Fish1:
		return Fish(SlenderProfile)
	case Fish2:
		return Fish(DeepProfile)
	case Fish3:
		return Fish(RoundProfile)
	}
	return nil
}

// Cube returns a unit cube centred on the origin with per-face normals.
func Cube() *Mesh {
	faces := []struct {
		normal [3]float32
		u, v   [3]float32
	}{
		{[3]float32{1, 0, 0}, [3]float32{0, 0, -1}, [3]float32{0, 1, 0}},
		{[3]float32{-1, 0, 0}, [3]float32{0, 0, 1}, [3]float32{0, 1, 0}},
		{[3]float32{0, 1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, -1}},
		{[3]float32{0, -1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, 1}},
		{[3]float32{0, 0, 1}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}},
		{[3]float32{0, 0, -1}, [3]float32{-1, 0, 0}, [3]float32{0, 1, 0}},
	}

	m := &Mesh{}
	for _, f := range faces {
		base := uint32(len(m.Vertices))
		for _, c := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
			var p [3]float32
			for k := 0; k < 3; k++ {
				p[k] = 0.5*f.normal[k] + 0.5*c[0]*f.u[k] + 0.5*c[1]*f.v[k]
			}
			m.Vertices = append(m.Vertices, Vertex{Position: p, Normal: f.normal})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	m.Bounds = computeBounds(m.Vertices)
	return m
}

// Profile shapes a procedural fish. The body runs along +X from TailX to 1.
type Profile struct {
	Height     float32 // body half-height at its widest
	Width      float32 // body half-width at its widest
	TailX      float32 // x of the tail root
	TailHeight float32 // half-height of the tail fin
	TailLength float32
	Rings      int // slices along the body
	Sides      int // vertices per slice
}

// Built-in fish profiles.
var (
	SlenderProfile = Profile{Height: 0.35, Width: 0.22, TailX: -0.8, TailHeight: 0.45, TailLength: 0.35, Rings: 10, Sides: 12}
	DeepProfile    = Profile{Height: 0.6, Width: 0.18, TailX: -0.7, TailHeight: 0.55, TailLength: 0.3, Rings: 10, Sides: 12}
	RoundProfile   = Profile{Height: 0.5, Width: 0.45, TailX: -0.6, TailHeight: 0.3, TailLength: 0.25, Rings: 10, Sides: 12}
)

// Fish builds a flat-shaded fish body facing +X with a vertical tail fin.
func Fish(p Profile) *Mesh {
	if p.Rings < 2 {
		p.Rings = 2
	}
	if p.Sides < 3 {
		p.Sides = 3
	}

	ring := func(i, j int) [3]float32 {
		u := float64(i) / float64(p.Rings)
		x := float32(float64(p.TailX) + u*float64(1-p.TailX))
		r := float32(gomath.Pow(gomath.Sin(gomath.Pi*u), 0.8))
		phi := 2 * gomath.Pi * float64(j%p.Sides) / float64(p.Sides)
		return [3]float32{
			x,
			p.Height * r * float32(gomath.Cos(phi)),
			p.Width * r * float32(gomath.Sin(phi)),
		}
	}

	b := &builder{}
	for i := 0; i < p.Rings; i++ {
		for j := 0; j < p.Sides; j++ {
			a, bb, c, d := ring(i, j), ring(i+1, j), ring(i+1, j+1), ring(i, j+1)
			b.outward(a, bb, c)
			b.outward(a, c, d)
		}
	}

	// Tail fin, visible from both sides.
	root := [3]float32{p.TailX + 0.05, 0, 0}
	top := [3]float32{p.TailX - p.TailLength, p.TailHeight, 0}
	bottom := [3]float32{p.TailX - p.TailLength, -p.TailHeight, 0}
	b.triangle(root, top, bottom)
	b.triangle(root, bottom, top)

	m := &Mesh{Vertices: b.vertices, Indices: b.indices}
	m.Bounds = computeBounds(m.Vertices)
	return m
}

type builder struct {
	vertices []Vertex
	indices  []uint32
}

// triangle appends a face with a flat normal. Degenerate faces are dropped.
func (b *builder) triangle(p0, p1, p2 [3]float32) bool {
	n, ok := faceNormal(p0, p1, p2)
	if !ok {
		return false
	}
	base := uint32(len(b.vertices))
	b.vertices = append(b.vertices,
		Vertex{Position: p0, Normal: n},
		Vertex{Position: p1, Normal: n},
		Vertex{Position: p2, Normal: n},
	)
	b.indices = append(b.indices, base, base+1, base+2)
	return true
}

// outward appends a body face wound so its normal points away from the X axis.
func (b *builder) outward(p0, p1, p2 [3]float32) {
	n, ok := faceNormal(p0, p1, p2)
	if !ok {
		return
	}
	cy := (p0[1] + p1[1] + p2[1]) / 3
	cz := (p0[2] + p1[2] + p2[2]) / 3
	if n[1]*cy+n[2]*cz < 0 {
		p1, p2 = p2, p1
	}
	b.triangle(p0, p1, p2)
}

func faceNormal(p0, p1, p2 [3]float32) ([3]float32, bool) {
	e1 := [3]float32{p1[0] - p0[0], p1[1] - p0[1], p1[2] - p0[2]}
	e2 := [3]float32{p2[0] - p0[0], p2[1] - p0[1], p2[2] - p0[2]}
	n := [3]float32{
		e1[1]*e2[2] - e1[2]*e2[1],
		e1[2]*e2[0] - e1[0]*e2[2],
		e1[0]*e2[1] - e1[1]*e2[0],
	}
	l := float32(gomath.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])))
	if l < 1e-7 {
		return [3]float32{}, false
	}
	return [3]float32{n[0] / l, n[1] / l, n[2] / l}, true
}

func computeBounds(vs []Vertex) Bounds {
	bounds := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
	for _, v := range vs {
		for k := 0; k < 3; k++ {
			if v.Position[k] < bounds.Min[k] {
				bounds.Min[k] = v.Position[k]
			}
			if v.Position[k] > bounds.Max[k] {
				bounds.Max[k] = v.Position[k]
			}
		}
	}
	return bounds
}
