// Package renderer draws the aquarium draw list with OpenGL.
package renderer

import (
	_ "embed"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/aquarium/internal/engine/framebuffer"
	"github.com/Faultbox/aquarium/internal/engine/lighting"
	"github.com/Faultbox/aquarium/internal/engine/mesh"
	"github.com/Faultbox/aquarium/internal/engine/shader"
	"github.com/Faultbox/aquarium/internal/game/scene"
	"github.com/Faultbox/aquarium/internal/logger"
)

//go:embed shaders/lambert.vert
var vertexSource string

//go:embed shaders/lambert.frag
var fragmentSource string

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Background mgl32.Vec3
	Light      lighting.Sun
}

// gpuMesh is a mesh uploaded to the GPU.
type gpuMesh struct {
	vao, vbo, ebo uint32
	count         int32
}

// Renderer owns the GL state needed to draw the scene.
type Renderer struct {
	config  Config
	program *shader.Program
	meshes  [mesh.Count]gpuMesh
	log     *zap.Logger
}

// New initializes OpenGL, compiles the shader and uploads every mesh.
// It must be called after the GL context exists.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.ClearColor(cfg.Background[0], cfg.Background[1], cfg.Background[2], 1)

	var err error
	r.program, err = shader.Compile(vertexSource, fragmentSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	for id := mesh.ID(0); id < mesh.Count; id++ {
		m := mesh.Build(id)
		if m == nil {
			r.Close()
			return nil, fmt.Errorf("no geometry for mesh %s", id)
		}
		r.meshes[id] = upload(m)
		r.log.Debug("mesh uploaded",
			zap.Stringer("mesh", id),
			zap.Int("vertices", len(m.Vertices)),
			zap.Int("indices", len(m.Indices)))
	}

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

func upload(m *mesh.Mesh) gpuMesh {
	var g gpuMesh
	g.count = int32(len(m.Indices))

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	stride := int32(unsafe.Sizeof(mesh.Vertex{}))
	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(stride), gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, unsafe.Offsetof(mesh.Vertex{}.Position))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, unsafe.Offsetof(mesh.Vertex{}.Normal))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return g
}

// Close frees GPU resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for i := range r.meshes {
		g := &r.meshes[i]
		if g.vao != 0 {
			gl.DeleteVertexArrays(1, &g.vao)
		}
		if g.vbo != 0 {
			gl.DeleteBuffers(1, &g.vbo)
		}
		if g.ebo != 0 {
			gl.DeleteBuffers(1, &g.ebo)
		}
		*g = gpuMesh{}
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles a framebuffer size change.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Draw clears the frame and draws every command in order.
func (r *Renderer) Draw(cmds []scene.DrawCommand, view, projection mgl32.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.program.Use()
	r.program.SetMat4("view", view)
	r.program.SetMat4("projection", projection)
	light := r.config.Light
	r.program.SetVec3("lightDir", light.Direction())
	r.program.SetVec3("lightColor", light.Color)
	gl.Uniform1f(r.program.Uniform("ambient"), light.Ambient)

	bound := mesh.Count
	for _, c := range cmds {
		if c.Mesh >= mesh.Count {
			continue
		}
		if c.Mesh != bound {
			gl.BindVertexArray(r.meshes[c.Mesh].vao)
			bound = c.Mesh
		}
		r.program.SetMat4("model", c.Transform)
		r.program.SetVec3("objectColor", c.Color)
		gl.DrawElements(gl.TRIANGLES, r.meshes[c.Mesh].count, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
}

// ReadPixels returns the current framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// Capture draws cmds into an offscreen target scale times the viewport size
// and returns its pixels as bottom-up RGBA rows. With scale <= 1 it reads
// the frame already on screen instead.
func (r *Renderer) Capture(cmds []scene.DrawCommand, view, projection mgl32.Mat4, scale int) ([]byte, int, int, error) {
	if scale <= 1 {
		pixels, w, h := r.ReadPixels()
		return pixels, w, h, nil
	}

	w, h := framebuffer.ScaledSize(r.config.Width, r.config.Height, scale)
	fb, err := framebuffer.New(w, h)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("offscreen capture: %w", err)
	}
	defer fb.Destroy()

	restore := fb.Bind()
	r.Draw(cmds, view, projection)
	pixels := fb.ReadPixels()
	restore()

	r.log.Debug("offscreen capture", zap.Int("width", w), zap.Int("height", h))
	return pixels, w, h, nil
}
