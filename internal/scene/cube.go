package scene

import (
	gomath "math"

	vmath "github.com/lumenbox/radiosity/pkg/math"
)

// The demo scene: a closed cube room spanning [-1,1] on each axis, lit
// by a patch of ceiling, with a smaller mirrored cube floating inside.

// DefaultReflectance is the base material reflectance for demo surfaces.
const DefaultReflectance = 0.7

var cubeVertices = []vmath.Vec3{
	{X: -1, Y: -1, Z: -1},
	{X: 1, Y: -1, Z: -1},
	{X: 1, Y: 1, Z: -1},
	{X: -1, Y: 1, Z: -1},
	{X: -1, Y: -1, Z: 1},
	{X: 1, Y: -1, Z: 1},
	{X: 1, Y: 1, Z: 1},
	{X: -1, Y: 1, Z: 1},
}

// cubeFaces is the prototype cube, wound so each face's normal points
// out of the cube volume (away from the lit interior).
var cubeFaces = [6][4]int{
	{0, 1, 5, 4}, // floor
	{3, 7, 6, 2}, // ceiling
	{0, 3, 2, 1}, // back
	{4, 5, 6, 7}, // front
	{0, 4, 7, 3}, // left
	{1, 2, 6, 5}, // right
}

func baseQuad(corners [4]int) Quad {
	return Quad{
		V:              corners,
		MaterialColour: Colour{DefaultReflectance, DefaultReflectance, DefaultReflectance},
	}
}

// NewCubeRoom builds just the enclosing room, each face subdivided into
// an n x n grid of elements.
func NewCubeRoom(n int) *Scene {
	s := &Scene{
		Vertices: append([]vmath.Vec3(nil), cubeVertices...),
	}
	for _, corners := range cubeFaces {
		s.Subdivide(baseQuad(corners), n, n)
	}
	return s
}

// NewCubeDemo builds the demo scene: the room plus the tilted inner
// mirror cube, with lighting applied. The inner cube uses n/2 x n/2
// grids, being smaller.
func NewCubeDemo(n int) *Scene {
	s := NewCubeRoom(n)

	// The inner cube reuses the prototype's corner vertices, which the
	// subdivided room no longer references, so transforming them in
	// place is safe.
	inner := make([]Quad, len(cubeFaces))
	for i, corners := range cubeFaces {
		inner[i] = baseQuad(corners)
	}
	s.Scale(0.4, inner)
	Flip(inner)
	s.Rotate(vmath.Vec3{X: 1}, gomath.Pi/3, inner)
	s.Rotate(vmath.Vec3{Z: 1}, gomath.Pi/6, inner)
	s.Translate(vmath.Vec3{Y: -0.25}, inner)
	for i := range inner {
		inner[i].IsSpecular = true
		s.Subdivide(inner[i], n/2, n/2)
	}

	s.applyCubeLighting()
	return s
}

// applyCubeLighting places a square emitter in the centre of the
// ceiling and tints the left wall red and the right wall blue.
func (s *Scene) applyCubeLighting() {
	for i := range s.Quads {
		q := &s.Quads[i]
		c := q.Centre(s.Vertices)

		// The emitter is the central patch of the ceiling.
		if gomath.Abs(c.X) < 0.5 && gomath.Abs(c.Z) < 0.5 && c.Y > 0.9 {
			q.MaterialColour = Colour{2, 2, 2}
			q.ScreenColour = Colour{2, 2, 2}
			q.IsEmitter = true
		}

		if c.X < -0.999 {
			q.MaterialColour = q.MaterialColour.Mul(Colour{1, 0.5, 0.5})
		} else if c.X > 0.999 {
			q.MaterialColour = q.MaterialColour.Mul(Colour{0.5, 0.5, 1})
		}
	}
}
