package scene

import (
	gomath "math"

	vmath "github.com/lumenbox/radiosity/pkg/math"
)

// The transforms below operate in place on the vertices referenced by a
// set of quads. Vertices shared with quads outside the set would move
// too, so callers transform geometry before subdividing it.

// referencedVertices collects the unique vertex indices used by quads.
func referencedVertices(quads []Quad) []int {
	seen := make(map[int]bool)
	var out []int
	for _, q := range quads {
		for _, vi := range q.V {
			if !seen[vi] {
				seen[vi] = true
				out = append(out, vi)
			}
		}
	}
	return out
}

// Scale scales the quads' vertices about the origin.
func (s *Scene) Scale(factor float64, quads []Quad) {
	for _, vi := range referencedVertices(quads) {
		s.Vertices[vi] = s.Vertices[vi].Scale(factor)
	}
}

// Translate moves the quads' vertices by delta.
func (s *Scene) Translate(delta vmath.Vec3, quads []Quad) {
	for _, vi := range referencedVertices(quads) {
		s.Vertices[vi] = s.Vertices[vi].Add(delta)
	}
}

// Rotate rotates the quads' vertices about an axis through the origin
// (Rodrigues' formula, angle in radians).
func (s *Scene) Rotate(axis vmath.Vec3, angle float64, quads []Quad) {
	k := axis.Normalize()
	c, sn := gomath.Cos(angle), gomath.Sin(angle)
	for _, vi := range referencedVertices(quads) {
		v := s.Vertices[vi]
		s.Vertices[vi] = v.Scale(c).
			Add(k.Cross(v).Scale(sn)).
			Add(k.Scale(k.Dot(v) * (1 - c)))
	}
}

// Flip reverses each quad's winding, inverting its normal.
func Flip(quads []Quad) {
	for i := range quads {
		quads[i].V[1], quads[i].V[3] = quads[i].V[3], quads[i].V[1]
	}
}
