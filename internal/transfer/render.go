package transfer

import (
	"fmt"
	gomath "math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/lumenbox/radiosity/internal/engine/framebuffer"
	"github.com/lumenbox/radiosity/internal/engine/shader"
	"github.com/lumenbox/radiosity/internal/engine/window"
	"github.com/lumenbox/radiosity/internal/logger"
	"github.com/lumenbox/radiosity/internal/scene"
	vmath "github.com/lumenbox/radiosity/pkg/math"
)

// Near and far planes for the 90 degree hemicube frustum. The demo
// geometry spans a couple of units, so a close near plane keeps
// neighbouring elements from clipping without exhausting depth
// precision.
const (
	hemicubeNear = 0.01
	hemicubeFar  = 100.0
)

const renderVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

uniform mat4 uProj;
uniform mat4 uView;

flat out vec3 vColor;

void main() {
	gl_Position = uProj * uView * vec4(aPos, 1.0);
	vColor = aColor;
}
`

const renderFragmentShader = `
#version 410 core

flat in vec3 vColor;
out vec4 FragColor;

void main() {
	FragColor = vec4(vColor, 1.0);
}
`

// Render estimates transfer coefficients by rasterizing the scene from
// each element's viewpoint onto the six faces of a cube map, with every
// element drawn in a flat identifier colour. It owns a hidden window's
// OpenGL context and an offscreen framebuffer for its whole lifetime;
// Close releases both.
type Render struct {
	scene *scene.Scene
	res   int

	win *window.Window
	fb  *framebuffer.Framebuffer

	program     uint32
	vao, vbo    uint32
	vertexCount int32
	locProj     int32
	locView     int32

	proj vmath.Mat4

	// Lazily built weight tables.
	subtend []float64
	forward []float64
	side    []float64
}

// NewRender creates a hemicube calculator rendering at res x res per
// face. Construction acquires the rasterization context; failure to do
// so is fatal for this variant, never silent.
func NewRender(s *scene.Scene, res int) (*Render, error) {
	if n := len(s.Quads); n > MaxElements {
		return nil, fmt.Errorf("scene has %d elements, identifier colours support at most %d", n, MaxElements)
	}

	r := &Render{
		scene: s,
		res:   res,
		proj:  vmath.Frustum(-hemicubeNear, hemicubeNear, -hemicubeNear, hemicubeNear, hemicubeNear, hemicubeFar),
	}

	var err error
	r.win, err = window.New(window.Config{
		Title:  "transfer",
		Width:  res,
		Height: res,
		Hidden: true,
	})
	if err != nil {
		return nil, fmt.Errorf("transfer context: %w", err)
	}

	if err := gl.Init(); err != nil {
		r.win.Close()
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	r.fb, err = framebuffer.New(int32(res), int32(res))
	if err != nil {
		r.win.Close()
		return nil, err
	}

	r.program, err = shader.CompileProgram(renderVertexShader, renderFragmentShader)
	if err != nil {
		r.fb.Destroy()
		r.win.Close()
		return nil, fmt.Errorf("transfer shader: %w", err)
	}
	r.locProj = shader.GetUniform(r.program, "uProj")
	r.locView = shader.GetUniform(r.program, "uView")

	r.uploadGeometry()

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	// Quads are wound so their normal points away from the lit side;
	// seen from the lit side that winding is clockwise.
	gl.FrontFace(gl.CW)

	logger.Info("hemicube calculator ready",
		zap.Int("elements", len(s.Quads)),
		zap.Int("resolution", res),
	)
	return r, nil
}

// uploadGeometry builds the static VBO: two triangles per quad, each
// vertex carrying the quad's identifier colour.
func (r *Render) uploadGeometry() {
	quads := r.scene.Quads
	verts := make([]float32, 0, len(quads)*6*6)
	for i, q := range quads {
		cr, cg, cb := IndexColour(i)
		colour := [3]float32{float32(cr) / 255, float32(cg) / 255, float32(cb) / 255}
		for _, k := range [6]int{0, 1, 2, 0, 2, 3} {
			p := r.scene.Vertices[q.V[k]]
			verts = append(verts,
				float32(p.X), float32(p.Y), float32(p.Z),
				colour[0], colour[1], colour[2],
			)
		}
	}
	r.vertexCount = int32(len(verts) / 6)

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// Cube map face rotations, applied in camera space before the view
// transform. The side rotations land the forward-facing half of each
// face in the bottom half of the framebuffer, which is the start of the
// data read back.
var (
	faceFront = vmath.Identity()
	faceBack  = vmath.RotateY(gomath.Pi)
	faceRight = vmath.RotateZ(gomath.Pi / 2).Mul(vmath.RotateY(gomath.Pi / 2))
	faceLeft  = vmath.RotateZ(-gomath.Pi / 2).Mul(vmath.RotateY(-gomath.Pi / 2))
	faceUp    = vmath.RotateX(-gomath.Pi / 2)
	faceDown  = vmath.RotateZ(gomath.Pi).Mul(vmath.RotateX(gomath.Pi / 2))
)

// calcFace renders one cube map face and folds the visible elements
// into sums with the given per-pixel weights.
func (r *Render) calcFace(face vmath.Mat4, view Viewpoint, weights, sums []float64) {
	viewMat := face.Mul(vmath.LookAt(view.Eye, view.LookAt, view.Up))

	r.fb.Bind()
	r.fb.Clear(0, 0, 0, 1)

	gl.UseProgram(r.program)
	proj := r.proj.Float32()
	gl.UniformMatrix4fv(r.locProj, 1, false, &proj[0])
	vm := viewMat.Float32()
	gl.UniformMatrix4fv(r.locView, 1, false, &vm[0])

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, r.vertexCount)
	gl.BindVertexArray(0)

	pixels := r.fb.ReadPixels()
	accumulate(pixels, weights, sums)
}

// CalcSubtended renders all six cube map faces with solid angle
// weights: the full sphere of directions around the viewpoint.
func (r *Render) CalcSubtended(view Viewpoint) []float64 {
	if r.subtend == nil {
		r.subtend = subtendWeights(r.res)
	}
	sums := make([]float64, len(r.scene.Quads))

	for _, face := range []vmath.Mat4{faceFront, faceBack, faceRight, faceLeft, faceUp, faceDown} {
		r.calcFace(face, view, r.subtend, sums)
	}
	return sums
}

// CalcLight renders the forward face and the forward half of the four
// side faces with cosine-weighted tables: the hemisphere above the
// element's plane. The back face receives no light and is skipped.
func (r *Render) CalcLight(view Viewpoint) []float64 {
	if r.forward == nil {
		r.forward = forwardLightWeights(r.res)
		r.side = sideLightWeights(r.res)
	}
	sums := make([]float64, len(r.scene.Quads))

	r.calcFace(faceFront, view, r.forward, sums)

	// Restrict the side faces to the half actually summed. Purely an
	// optimization: the excluded pixels carry no weight.
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(0, 0, int32(r.res), int32(r.res/2))
	r.calcFace(faceRight, view, r.side, sums)
	r.calcFace(faceLeft, view, r.side, sums)
	r.calcFace(faceUp, view, r.side, sums)
	r.calcFace(faceDown, view, r.side, sums)
	gl.Disable(gl.SCISSOR_TEST)

	return sums
}

// CalcAllLights builds the full transfer matrix, one hemicube render
// per element. The GL context serializes the work; progress is logged
// since this is the dominant cost of scene setup.
func (r *Render) CalcAllLights() []float64 {
	n := len(r.scene.Quads)
	transfers := make([]float64, n*n)

	for i, q := range r.scene.Quads {
		view := ElementViewpoint(r.scene, q)
		row := r.CalcLight(view)
		copy(transfers[i*n:(i+1)*n], row)

		if (i+1)%64 == 0 || i+1 == n {
			logger.Info("transfer progress",
				zap.Int("done", i+1),
				zap.Int("total", n),
			)
		}
	}

	zeroDiagonal(transfers, n)
	return transfers
}

// Close releases the framebuffer, GL objects and the hidden context.
func (r *Render) Close() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
	if r.fb != nil {
		r.fb.Destroy()
		r.fb = nil
	}
	if r.win != nil {
		r.win.Close()
		r.win = nil
	}
}
