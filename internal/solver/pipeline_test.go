package solver

import (
	gomath "math"
	"testing"

	"github.com/lumenbox/radiosity/internal/scene"
	"github.com/lumenbox/radiosity/internal/transfer"
	vmath "github.com/lumenbox/radiosity/pkg/math"
)

// A closed grey box lit by a patch of ceiling: the walls must settle
// below the emitter's own radiance.
func TestGreyBoxConverges(t *testing.T) {
	s := scene.NewCubeRoom(8)
	for i := range s.Quads {
		q := &s.Quads[i]
		c := q.Centre(s.Vertices)
		if gomath.Abs(c.X) < 0.5 && gomath.Abs(c.Z) < 0.5 && c.Y > 0.9 {
			q.MaterialColour = scene.White
			q.ScreenColour = scene.White
			q.IsEmitter = true
			continue
		}
		q.MaterialColour = scene.Colour{R: 0.5, G: 0.5, B: 0.5}
	}

	transfers := transfer.NewAnalytic(s).CalcAllLights()
	res := Solve(s, transfers, DefaultConfig())

	if !res.Converged {
		t.Fatalf("solve did not converge in %d iterations", res.Iterations)
	}
	for i, q := range s.Quads {
		if q.IsEmitter {
			continue
		}
		if m := q.ScreenColour.MaxChannel(); m >= 1 {
			t.Errorf("wall %d brighter than the emitter: %v", i, q.ScreenColour)
		}
	}
}

// Runs the full diffuse pipeline on a small cube demo: analytic
// transfers, iterative solve, highlight pass and normalisation.
func TestCubeDemoPipeline(t *testing.T) {
	if testing.Short() {
		t.Skip("full pipeline is slow")
	}

	s := scene.NewCubeDemo(8)
	transfers := transfer.NewAnalytic(s).CalcAllLights()

	res := Solve(s, transfers, DefaultConfig())
	if !res.Converged {
		t.Fatalf("solve did not converge in %d iterations", res.Iterations)
	}
	if res.Iterations < 2 {
		t.Errorf("iterations = %d, want at least 2", res.Iterations)
	}
	if res.TotalLight <= 0 {
		t.Errorf("total light = %v, want positive", res.TotalLight)
	}

	// Only emitters carry over-bright colour before normalisation.
	for i, q := range s.Quads {
		if q.IsEmitter {
			if q.ScreenColour != (scene.Colour{R: 2, G: 2, B: 2}) {
				t.Fatalf("emitter %d colour = %v", i, q.ScreenColour)
			}
			continue
		}
		if m := q.ScreenColour.MaxChannel(); m < 0 || m >= 2 {
			t.Errorf("element %d channel out of range: %v", i, q.ScreenColour)
		}
	}

	camera := vmath.Vec3{X: 0, Y: 0, Z: -3}
	ComputeSpecularity(s, camera, DefaultSpecularPower, DefaultSpecularFactor)
	NormaliseBrightness(s, camera)

	// The brightest visible non-emitter either got scaled to the target
	// or already exceeded it.
	max := 0.0
	for _, q := range s.Quads {
		if q.IsEmitter || !facesCamera(s, q, camera) {
			continue
		}
		if m := q.ScreenColour.MaxChannel(); m > max {
			max = m
		}
	}
	if max < normalizeTarget-1e-9 || max >= 2 {
		t.Errorf("brightest visible non-emitter channel after normalisation = %v", max)
	}
}
