// Package solver propagates radiance through the transfer matrix until
// the total light in the scene settles, then applies the one-shot
// specular and normalization passes.
package solver

import (
	gomath "math"

	"go.uber.org/zap"

	"github.com/lumenbox/radiosity/internal/logger"
	"github.com/lumenbox/radiosity/internal/scene"
)

// Config controls the convergence loop.
type Config struct {
	// ConvergenceTarget is the relative change in total scene light
	// below which the solve stops.
	ConvergenceTarget float64

	// MaxIterations caps the loop; 0 disables the cap.
	MaxIterations int
}

// DefaultConfig returns the standard solver settings.
func DefaultConfig() Config {
	return Config{
		ConvergenceTarget: 0.001,
		MaxIterations:     1000,
	}
}

// Result reports how a solve went.
type Result struct {
	Iterations int
	TotalLight float64
	Converged  bool
}

// Iterate runs one solver pass: every element's new radiance is
// computed from the previous pass's values (double buffered, no
// read-after-write inside a pass) and committed at the end.
//
// Emitters receive a fixed full-intensity white regardless of the
// matrix; everything else sums the radiance arriving through its row of
// transfer coefficients. Either way the incoming light is filtered by
// the element's reflectance.
func Iterate(s *scene.Scene, transfers []float64) {
	n := len(s.Quads)
	updated := make([]scene.Colour, n)

	for i := 0; i < n; i++ {
		var incoming scene.Colour
		if s.Quads[i].IsEmitter {
			incoming = scene.White
		} else {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				incoming = incoming.Add(s.Quads[j].ScreenColour.Scale(transfers[i*n+j]))
			}
		}
		updated[i] = incoming.Mul(s.Quads[i].MaterialColour)
	}

	for i := 0; i < n; i++ {
		s.Quads[i].ScreenColour = updated[i]
	}
}

// TotalLight measures the scene's light as the area-weighted sum of
// each element's grey radiance.
func TotalLight(s *scene.Scene) float64 {
	total := 0.0
	for _, q := range s.Quads {
		total += q.ScreenColour.Grey() * q.Area(s.Vertices)
	}
	return total
}

// Solve iterates until the relative change in total light drops below
// the convergence target. The previous total starts at zero, so at
// least two iterations always run.
func Solve(s *scene.Scene, transfers []float64, cfg Config) Result {
	light := 0.0
	iterations := 0

	for {
		Iterate(s, transfers)
		iterations++

		newLight := TotalLight(s)
		var relChange float64
		switch {
		case newLight != 0:
			relChange = gomath.Abs(light/newLight - 1)
		case light == 0:
			// A sceneful of darkness has nothing left to converge.
			relChange = 0
		default:
			relChange = 1
		}
		light = newLight

		logger.Debug("solver iteration",
			zap.Int("iteration", iterations),
			zap.Float64("totalLight", light),
			zap.Float64("relChange", relChange),
		)

		if relChange <= cfg.ConvergenceTarget {
			return Result{Iterations: iterations, TotalLight: light, Converged: true}
		}
		if cfg.MaxIterations > 0 && iterations >= cfg.MaxIterations {
			logger.Warn("solver did not converge",
				zap.Int("iterations", iterations),
				zap.Float64("totalLight", light),
				zap.Float64("relChange", relChange),
			)
			return Result{Iterations: iterations, TotalLight: light, Converged: false}
		}
	}
}
