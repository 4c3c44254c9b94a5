package solver

import (
	"github.com/lumenbox/radiosity/internal/scene"
	vmath "github.com/lumenbox/radiosity/pkg/math"
)

// normalizeTarget is the channel value the brightest visible
// non-emitter is scaled up to.
const normalizeTarget = 1.0

// facesCamera reports whether the camera sits on the quad's lit side.
func facesCamera(s *scene.Scene, q scene.Quad, cameraPos vmath.Vec3) bool {
	toQuad := q.Centre(s.Vertices).Sub(cameraPos)
	return toQuad.Dot(q.Normal(s.Vertices)) > 0
}

// NormaliseBrightness scales every non-emitter's colour so that the
// brightest channel among those facing the camera reaches the target.
// Scenes already at or above target are left alone: scaling down would
// dim an image that is already correct.
func NormaliseBrightness(s *scene.Scene, cameraPos vmath.Vec3) {
	max := 0.0
	for _, q := range s.Quads {
		if q.IsEmitter || !facesCamera(s, q, cameraPos) {
			continue
		}
		if m := q.ScreenColour.MaxChannel(); m > max {
			max = m
		}
	}

	if max >= normalizeTarget || max == 0 {
		return
	}

	scale := normalizeTarget / max
	for i := range s.Quads {
		if !s.Quads[i].IsEmitter {
			s.Quads[i].ScreenColour = s.Quads[i].ScreenColour.Scale(scale)
		}
	}
}
