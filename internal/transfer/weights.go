package transfer

import gomath "math"

// Per-pixel weight tables for the hemicube estimator. Each table maps a
// pixel of one cube-map face (the z=1 plane, x and y spanning (-1, 1))
// to the solid angle it subtends from the face centre, optionally
// scaled by the cosine toward the element's normal.
//
// With dA the pixel footprint and r^2 = 1 + x^2 + y^2:
//
//	solid angle       dw   = dA / r^3
//	cosine to normal  front: 1/r     side: |y|/r
//
// Subtend tables are scaled by 1.5/pi so the six faces together
// integrate to 6 (the unit cube convention the analytic calculator
// shares); light tables by 1/pi so the forward face plus the four half
// side faces integrate to 1 over the hemisphere.

// subtendWeights returns the res x res solid angle table used for all
// six faces of CalcSubtended.
func subtendWeights(res int) []float64 {
	weights := make([]float64, res*res)
	dA := (2.0 / float64(res)) * (2.0 / float64(res))
	for py := 0; py < res; py++ {
		y := pixelCentre(py, res)
		for px := 0; px < res; px++ {
			x := pixelCentre(px, res)
			r2 := 1 + x*x + y*y
			weights[py*res+px] = 1.5 * dA / (gomath.Pi * r2 * gomath.Sqrt(r2))
		}
	}
	return weights
}

// forwardLightWeights returns the res x res cosine-weighted table for
// the face looking along the element's normal.
func forwardLightWeights(res int) []float64 {
	weights := make([]float64, res*res)
	dA := (2.0 / float64(res)) * (2.0 / float64(res))
	for py := 0; py < res; py++ {
		y := pixelCentre(py, res)
		for px := 0; px < res; px++ {
			x := pixelCentre(px, res)
			r2 := 1 + x*x + y*y
			weights[py*res+px] = dA / (gomath.Pi * r2 * r2)
		}
	}
	return weights
}

// sideLightWeights returns the res x (res/2) table for the bottom half
// of a side face, which is where the forward-facing directions land
// after the side view rotations. The top half is never rendered (the
// scissor region excludes it), so no zero entries are stored.
func sideLightWeights(res int) []float64 {
	rows := res / 2
	weights := make([]float64, res*rows)
	dA := (2.0 / float64(res)) * (2.0 / float64(res))
	for py := 0; py < rows; py++ {
		y := pixelCentre(py, res) // y in (-1, 0): the forward half
		for px := 0; px < res; px++ {
			x := pixelCentre(px, res)
			r2 := 1 + x*x + y*y
			weights[py*res+px] = dA * (-y) / (gomath.Pi * r2 * r2)
		}
	}
	return weights
}

// pixelCentre maps pixel index p of a res-wide face to the centre of
// its footprint in (-1, 1).
func pixelCentre(p, res int) float64 {
	return (2*float64(p)+1)/float64(res) - 1
}
