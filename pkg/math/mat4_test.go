package math

import (
	gomath "math"
	"testing"
)

func vecNear(a, b Vec3, eps float64) bool {
	return gomath.Abs(a.X-b.X) < eps && gomath.Abs(a.Y-b.Y) < eps && gomath.Abs(a.Z-b.Z) < eps
}

func TestIdentityTransform(t *testing.T) {
	p := Vec3{1, -2, 3}
	got := Identity().TransformPoint(p)
	if got != p {
		t.Errorf("Identity().TransformPoint(%v) = %v", p, got)
	}
}

func TestMulIdentity(t *testing.T) {
	m := RotateY(0.7).Mul(RotateX(-0.3))
	got := m.Mul(Identity())
	if got != m {
		t.Errorf("m * I != m")
	}
}

func TestRotateX(t *testing.T) {
	// Rotating +Y by 90 degrees around X gives +Z.
	got := RotateX(gomath.Pi / 2).TransformPoint(Vec3{0, 1, 0})
	if !vecNear(got, Vec3{0, 0, 1}, 1e-12) {
		t.Errorf("RotateX(pi/2) * +Y = %v, want +Z", got)
	}
}

func TestRotateY(t *testing.T) {
	// Rotating +Z by 90 degrees around Y gives +X.
	got := RotateY(gomath.Pi / 2).TransformPoint(Vec3{0, 0, 1})
	if !vecNear(got, Vec3{1, 0, 0}, 1e-12) {
		t.Errorf("RotateY(pi/2) * +Z = %v, want +X", got)
	}
}

func TestLookAtOrigin(t *testing.T) {
	// Camera at -Z looking at origin: origin maps onto the -Z view axis.
	view := LookAt(Vec3{0, 0, -3}, Vec3{}, Vec3{0, 1, 0})
	got := view.TransformPoint(Vec3{})
	if !vecNear(got, Vec3{0, 0, -3}, 1e-12) {
		t.Errorf("LookAt view of origin = %v, want {0 0 -3}", got)
	}
}

func TestLookAtEyeMapsToViewOrigin(t *testing.T) {
	eye := Vec3{1, 2, 3}
	view := LookAt(eye, Vec3{0, 0, 0}, Vec3{0, 1, 0})
	got := view.TransformPoint(eye)
	if !vecNear(got, Vec3{}, 1e-12) {
		t.Errorf("view transform of eye = %v, want origin", got)
	}
}

func TestFrustumMatchesPerspective(t *testing.T) {
	// A symmetric 90 degree frustum equals Perspective(pi/2, 1, ...).
	n, f := 0.001, 100.0
	fr := Frustum(-n, n, -n, n, n, f)
	pe := Perspective(gomath.Pi/2, 1, n, f)
	for i := range fr {
		if gomath.Abs(fr[i]-pe[i]) > 1e-9 {
			t.Fatalf("element %d: frustum %v != perspective %v", i, fr[i], pe[i])
		}
	}
}
