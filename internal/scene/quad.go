package scene

import (
	gomath "math"

	vmath "github.com/lumenbox/radiosity/pkg/math"
)

// Quad is a planar quadrilateral surface element. Corners are indices
// into the owning Scene's vertex list, wound so the quad's normal
// points away from the side that receives light.
type Quad struct {
	V [4]int

	// MaterialColour is the multiplicative reflectance, fixed at setup.
	MaterialColour Colour
	// ScreenColour is the current radiance estimate, updated every
	// solver iteration.
	ScreenColour Colour

	// IsEmitter marks a constant light source: its radiance is pinned
	// each iteration regardless of incoming light.
	IsEmitter bool
	// IsSpecular marks the quad as a reflector for the highlight pass.
	IsSpecular bool
}

// Scene owns the geometry the solver works on. Vertices and quads are
// built once; only the quads' ScreenColour mutates afterwards.
type Scene struct {
	Vertices []vmath.Vec3
	Quads    []Quad
	Subdivs  []SubdivInfo
}

// Centre returns the quad's centroid.
func (q Quad) Centre(vs []vmath.Vec3) vmath.Vec3 {
	sum := vs[q.V[0]].Add(vs[q.V[1]]).Add(vs[q.V[2]]).Add(vs[q.V[3]])
	return sum.Scale(0.25)
}

// Normal returns the quad's unnormalized normal, pointing away from
// the lit side. Its length is the parallelogram area, so it doubles as
// an area-weighted direction.
func (q Quad) Normal(vs []vmath.Vec3) vmath.Vec3 {
	e1 := vs[q.V[1]].Sub(vs[q.V[0]])
	e2 := vs[q.V[3]].Sub(vs[q.V[0]])
	return e1.Cross(e2)
}

// Area returns the quad's geometric area.
func (q Quad) Area(vs []vmath.Vec3) float64 {
	return q.Normal(vs).Length()
}

// Occupied reports whether p lies within margin of any surface element.
// Used to keep the camera from walking through walls: a point counts as
// occupied when it is close to a quad's plane and within the quad's
// extent around its centre.
func (s *Scene) Occupied(p vmath.Vec3, margin float64) bool {
	for _, q := range s.Quads {
		c := q.Centre(s.Vertices)
		d := p.Sub(c)

		n := q.Normal(s.Vertices).Normalize()
		if gomath.Abs(d.Dot(n)) > margin {
			continue
		}

		reach := s.Vertices[q.V[0]].Sub(c).Length() + margin
		if d.Length() <= reach {
			return true
		}
	}
	return false
}
