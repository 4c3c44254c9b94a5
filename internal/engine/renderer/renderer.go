// Package renderer provides OpenGL rendering of the solved scene.
package renderer

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/lumenbox/radiosity/internal/engine/shader"
	"github.com/lumenbox/radiosity/internal/logger"
	"github.com/lumenbox/radiosity/internal/scene"
	vmath "github.com/lumenbox/radiosity/pkg/math"
)

const vertexShaderSource = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

uniform mat4 uProj;
uniform mat4 uView;

out vec3 vertexColor;

void main() {
	gl_Position = uProj * uView * vec4(aPos, 1.0);
	vertexColor = aColor;
}
`

const fragmentShaderSource = `
#version 410 core

in vec3 vertexColor;
out vec4 FragColor;

void main() {
	FragColor = vec4(vertexColor, 1.0);
}
`

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer draws the solved scene with per-vertex interpolated colour.
type Renderer struct {
	config Config

	program uint32
	locProj int32
	locView int32

	vao         uint32
	vbo         uint32
	vertexCount int32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// Log OpenGL info
	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	// Element normals point away from the lit side, so a lit face seen
	// from inside the room winds clockwise. Culling then removes the
	// walls between the camera and the interior.
	gl.Enable(gl.CULL_FACE)
	gl.FrontFace(gl.CW)
	gl.CullFace(gl.BACK)
	gl.ClearColor(0, 0, 0, 1)

	var err error
	r.program, err = shader.CompileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.locProj = shader.GetUniform(r.program, "uProj")
	r.locView = shader.GetUniform(r.program, "uView")

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// SetGeometry uploads the display quads. Each quad becomes two
// triangles with interpolated corner colours.
func (r *Renderer) SetGeometry(vertices []vmath.Vec3, quads []scene.GouraudQuad) {
	// Two triangles per quad, six floats per vertex.
	data := make([]float32, 0, len(quads)*6*6)
	corners := [6]int{0, 1, 2, 0, 2, 3}

	for _, q := range quads {
		for _, c := range corners {
			pos := vertices[q.V[c]]
			col := q.Colours[c]
			data = append(data,
				float32(pos.X), float32(pos.Y), float32(pos.Z),
				float32(col.R), float32(col.G), float32(col.B),
			)
		}
	}

	if r.vao == 0 {
		gl.GenVertexArrays(1, &r.vao)
		gl.GenBuffers(1, &r.vbo)
	}

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, nil)
	gl.EnableVertexAttribArray(0)

	// Color attribute (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.vertexCount = int32(len(data) / 6)
	logger.Debug("geometry uploaded",
		zap.Int("quads", len(quads)),
		zap.Int32("vertices", r.vertexCount),
	)
}

// Draw renders one frame with the given camera matrices.
func (r *Renderer) Draw(view, proj vmath.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	if r.vertexCount == 0 {
		return
	}

	gl.UseProgram(r.program)
	viewF := view.Float32()
	projF := proj.Float32()
	gl.UniformMatrix4fv(r.locView, 1, false, &viewF[0])
	gl.UniformMatrix4fv(r.locProj, 1, false, &projF[0])

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, r.vertexCount)
	gl.BindVertexArray(0)
}

// ReadPixels reads the current frame as RGBA bytes, bottom row first.
func (r *Renderer) ReadPixels() []byte {
	pixels := make([]byte, r.config.Width*r.config.Height*4)
	gl.ReadPixels(0, 0, int32(r.config.Width), int32(r.config.Height),
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels
}

// Size returns the current framebuffer size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}
