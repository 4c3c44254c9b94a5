// Package transfer computes the pairwise light transfer coefficients
// ("form factors") between surface elements. Two interchangeable
// calculators exist: an analytic point-to-patch approximation and a
// hemicube estimator that rasterizes the scene from each element's
// viewpoint on an offscreen OpenGL context.
package transfer

import (
	"github.com/lumenbox/radiosity/internal/scene"
	vmath "github.com/lumenbox/radiosity/pkg/math"
)

// Viewpoint is an ephemeral sampling camera used while estimating
// transfer coefficients.
type Viewpoint struct {
	Eye    vmath.Vec3
	LookAt vmath.Vec3
	Up     vmath.Vec3
}

// Calculator is the transfer coefficient capability. CalcAllLights
// returns the row-major n x n matrix T where T[i*n+j] is the fraction
// of radiance leaving element j that arrives at element i. Self terms
// are zero.
type Calculator interface {
	// CalcSubtended returns the solid angle each element subtends from
	// the viewpoint, in the six-sided unit cube convention (the full
	// sphere integrates to 6).
	CalcSubtended(view Viewpoint) []float64

	// CalcLight returns the light transport weight of each element as
	// seen from the viewpoint (cosine-weighted, hemisphere sums to 1).
	CalcLight(view Viewpoint) []float64

	// CalcAllLights runs CalcLight once per element to build the full
	// transfer matrix.
	CalcAllLights() []float64
}

// ElementViewpoint builds the sampling camera for a quad: eye at its
// centroid, looking through the surface into the lit half-space, up
// picked perpendicular to the normal.
func ElementViewpoint(s *scene.Scene, q scene.Quad) Viewpoint {
	eye := q.Centre(s.Vertices)
	normal := q.Normal(s.Vertices)
	return Viewpoint{
		Eye:    eye,
		LookAt: eye.Sub(normal),
		Up:     normal.Perp(),
	}
}

// zeroDiagonal enforces T[i][i] = 0: an element never illuminates
// itself.
func zeroDiagonal(transfers []float64, n int) {
	for i := 0; i < n; i++ {
		transfers[i*n+i] = 0
	}
}
