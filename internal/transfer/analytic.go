package transfer

import (
	gomath "math"
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/lumenbox/radiosity/internal/logger"
	"github.com/lumenbox/radiosity/internal/scene"
	vmath "github.com/lumenbox/radiosity/pkg/math"
)

// coincidentEps guards the inverse square law: element pairs closer
// than this contribute nothing to each other instead of blowing up.
const coincidentEps = 1e-9

// Analytic approximates transfer coefficients by treating every element
// as a point at its centroid with a flat normal. No occlusion, no GL
// dependency, full double precision.
type Analytic struct {
	scene *scene.Scene
}

// NewAnalytic creates an analytic calculator over the scene.
func NewAnalytic(s *scene.Scene) *Analytic {
	return &Analytic{scene: s}
}

// CalcSubtended returns the solid angle each element subtends from the
// viewpoint, normalized to the six-sided unit cube convention.
func (a *Analytic) CalcSubtended(view Viewpoint) []float64 {
	weights := make([]float64, len(a.scene.Quads))
	for i, q := range a.scene.Quads {
		weights[i] = a.quadSubtended(view, q)
	}
	return weights
}

func (a *Analytic) quadSubtended(view Viewpoint, q scene.Quad) float64 {
	dir := q.Centre(a.scene.Vertices).Sub(view.Eye)
	l := dir.Length()
	if l < coincidentEps {
		return 0
	}
	r2 := 1 / (l * l)

	// Area scaled by the angle the source presents to the viewpoint.
	// The normal is unnormalized, so its length carries the area.
	dir = dir.Scale(1 / l)
	area := gomath.Max(0, q.Normal(a.scene.Vertices).Dot(dir))

	return 1.5 * r2 * area / gomath.Pi
}

// CalcLight returns the light transport weight of each element as seen
// from the viewpoint: the subtended term with an extra cosine for the
// receiver's viewing angle.
func (a *Analytic) CalcLight(view Viewpoint) []float64 {
	weights := make([]float64, len(a.scene.Quads))
	look := view.LookAt.Sub(view.Eye).Normalize()
	for i, q := range a.scene.Quads {
		weights[i] = a.quadLight(view, look, q)
	}
	return weights
}

func (a *Analytic) quadLight(view Viewpoint, look vmath.Vec3, q scene.Quad) float64 {
	dir := q.Centre(a.scene.Vertices).Sub(view.Eye)
	l := dir.Length()
	if l < coincidentEps {
		return 0
	}
	r2 := 1 / (l * l)

	dir = dir.Scale(1 / l)
	area := gomath.Max(0, q.Normal(a.scene.Vertices).Dot(dir))
	cosCamAngle := gomath.Max(0, look.Dot(dir))

	return cosCamAngle * r2 * area / gomath.Pi
}

// CalcAllLights builds the full transfer matrix. Rows are independent,
// so they are computed in parallel across the available CPUs; the
// matrix is write-once and disjoint per row, so the final join is the
// only synchronization needed.
func (a *Analytic) CalcAllLights() []float64 {
	n := len(a.scene.Quads)
	transfers := make([]float64, n*n)

	workers := runtime.NumCPU()
	rows := make(chan int)
	var wg sync.WaitGroup
	var done int64
	var mu sync.Mutex

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range rows {
				view := ElementViewpoint(a.scene, a.scene.Quads[i])
				row := a.CalcLight(view)
				copy(transfers[i*n:(i+1)*n], row)

				mu.Lock()
				done++
				if done%256 == 0 {
					logger.Debug("transfer rows computed",
						zap.Int64("done", done),
						zap.Int("total", n),
					)
				}
				mu.Unlock()
			}
		}()
	}

	for i := 0; i < n; i++ {
		rows <- i
	}
	close(rows)
	wg.Wait()

	zeroDiagonal(transfers, n)
	return transfers
}
