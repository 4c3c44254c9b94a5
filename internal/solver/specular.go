package solver

import (
	gomath "math"

	"github.com/lumenbox/radiosity/internal/scene"
	vmath "github.com/lumenbox/radiosity/pkg/math"
)

// Phong highlight defaults, matching the look of the demo scene.
const (
	DefaultSpecularPower  = 32.0
	DefaultSpecularFactor = 0.02
)

// ComputeSpecularity adds a single-bounce Phong highlight from every
// emitter onto every specular element. It runs once, after the diffuse
// solve, and is additive: non-specular elements pass through untouched,
// and the highlight is not filtered by the receiver's reflectance.
func ComputeSpecularity(s *scene.Scene, cameraPos vmath.Vec3, power, factor float64) {
	n := len(s.Quads)
	updated := make([]scene.Colour, n)

	for i := 0; i < n; i++ {
		updated[i] = s.Quads[i].ScreenColour
		if !s.Quads[i].IsSpecular {
			continue
		}

		centre := s.Quads[i].Centre(s.Vertices)
		normal := s.Quads[i].Normal(s.Vertices).Normalize()
		view := centre.Sub(cameraPos).Normalize()

		var incoming scene.Colour
		for j := 0; j < n; j++ {
			if i == j || !s.Quads[j].IsEmitter {
				continue
			}

			light := centre.Sub(s.Quads[j].Centre(s.Vertices)).Normalize()
			reflected := normal.Scale(2 * normal.Dot(light)).Sub(light).Normalize()

			specular := gomath.Pow(gomath.Max(reflected.Dot(view), 0), power)
			incoming = incoming.Add(scene.White.Scale(specular * factor))
		}
		updated[i] = updated[i].Add(incoming)
	}

	for i := 0; i < n; i++ {
		s.Quads[i].ScreenColour = updated[i]
	}
}
