package scene

import (
	gomath "math"
	"testing"

	vmath "github.com/lumenbox/radiosity/pkg/math"
)

// unitQuadScene builds a scene holding one unit quad in the XY plane.
func unitQuadScene() (*Scene, Quad) {
	s := &Scene{
		Vertices: []vmath.Vec3{
			{X: 0, Y: 0},
			{X: 1, Y: 0},
			{X: 1, Y: 1},
			{X: 0, Y: 1},
		},
	}
	q := Quad{V: [4]int{0, 1, 2, 3}}
	return s, q
}

func TestQuadCentre(t *testing.T) {
	s, q := unitQuadScene()
	got := q.Centre(s.Vertices)
	want := vmath.Vec3{X: 0.5, Y: 0.5}
	if got != want {
		t.Errorf("Centre() = %v, want %v", got, want)
	}
}

func TestQuadNormalAndArea(t *testing.T) {
	s, q := unitQuadScene()
	n := q.Normal(s.Vertices)
	if (n != vmath.Vec3{Z: 1}) {
		t.Errorf("Normal() = %v, want {0 0 1}", n)
	}
	if a := q.Area(s.Vertices); a != 1 {
		t.Errorf("Area() = %v, want 1", a)
	}
}

func TestFlipInvertsNormal(t *testing.T) {
	s, q := unitQuadScene()
	quads := []Quad{q}
	Flip(quads)
	n := quads[0].Normal(s.Vertices)
	if (n != vmath.Vec3{Z: -1}) {
		t.Errorf("flipped Normal() = %v, want {0 0 -1}", n)
	}
}

func TestSubdivideCountsAndArea(t *testing.T) {
	s, q := unitQuadScene()
	info := s.Subdivide(q, 4, 4)

	if len(s.Quads) != 16 {
		t.Fatalf("got %d subquads, want 16", len(s.Quads))
	}
	if got := len(s.Vertices); got != 4+25 {
		t.Errorf("got %d vertices, want 29", got)
	}
	if info.N != 4 || info.M != 4 {
		t.Errorf("info grid = %dx%d, want 4x4", info.N, info.M)
	}

	total := 0.0
	for _, sq := range s.Quads {
		a := sq.Area(s.Vertices)
		if gomath.Abs(a-1.0/16) > 1e-12 {
			t.Errorf("subquad area = %v, want 1/16", a)
		}
		total += a
	}
	if gomath.Abs(total-1) > 1e-12 {
		t.Errorf("total subdivided area = %v, want 1", total)
	}
}

func TestSubdivideInheritsAttributes(t *testing.T) {
	s, q := unitQuadScene()
	q.IsSpecular = true
	q.MaterialColour = Colour{0.5, 0.25, 0.125}
	s.Subdivide(q, 2, 2)
	for i, sq := range s.Quads {
		if !sq.IsSpecular || sq.MaterialColour != q.MaterialColour {
			t.Errorf("subquad %d did not inherit attributes: %+v", i, sq)
		}
	}
}

func TestRotatePreservesLength(t *testing.T) {
	s, q := unitQuadScene()
	quads := []Quad{q}
	lengths := make([]float64, len(s.Vertices))
	for i, v := range s.Vertices {
		lengths[i] = v.Length()
	}
	s.Rotate(vmath.Vec3{X: 1, Y: 2, Z: 3}, 1.1, quads)
	for i, v := range s.Vertices {
		// Rotation about the origin preserves distance from it.
		if gomath.Abs(v.Length()-lengths[i]) > 1e-12 {
			t.Errorf("vertex %d length changed: %v -> %v", i, lengths[i], v.Length())
		}
	}
	if gomath.Abs(quads[0].Area(s.Vertices)-1) > 1e-12 {
		t.Errorf("area changed under rotation: %v", quads[0].Area(s.Vertices))
	}
}

func TestOccupied(t *testing.T) {
	s := NewCubeRoom(8)

	tests := []struct {
		name string
		p    vmath.Vec3
		want bool
	}{
		{"room centre", vmath.Vec3{}, false},
		{"touching near wall", vmath.Vec3{Z: -1.01}, true},
		{"touching floor", vmath.Vec3{Y: -0.97}, true},
		{"approaching from outside", vmath.Vec3{Z: -1.04}, true},
		{"well outside", vmath.Vec3{Z: -2}, false},
	}
	for _, tt := range tests {
		if got := s.Occupied(tt.p, 0.05); got != tt.want {
			t.Errorf("%s: Occupied(%v) = %v, want %v", tt.name, tt.p, got, tt.want)
		}
	}
}

func TestCubeDemoCounts(t *testing.T) {
	n := 8
	s := NewCubeDemo(n)
	want := 6*n*n + 6*(n/2)*(n/2)
	if len(s.Quads) != want {
		t.Errorf("NewCubeDemo(%d) has %d quads, want %d", n, len(s.Quads), want)
	}
	if len(s.Subdivs) != 12 {
		t.Errorf("got %d subdivision records, want 12", len(s.Subdivs))
	}
}

func TestCubeDemoEmitterPlacement(t *testing.T) {
	s := NewCubeDemo(8)
	emitters := 0
	for _, q := range s.Quads {
		c := q.Centre(s.Vertices)
		if q.IsEmitter {
			emitters++
			if !(gomath.Abs(c.X) < 0.5 && gomath.Abs(c.Z) < 0.5 && c.Y > 0.9) {
				t.Errorf("emitter at %v outside the ceiling centre", c)
			}
			if q.ScreenColour != (Colour{2, 2, 2}) {
				t.Errorf("emitter initial colour = %v", q.ScreenColour)
			}
		} else if gomath.Abs(c.X) < 0.5 && gomath.Abs(c.Z) < 0.5 && c.Y > 0.9 {
			t.Errorf("ceiling centre quad at %v not an emitter", c)
		}
	}
	if emitters == 0 {
		t.Fatal("no emitters placed")
	}
}

func TestCubeDemoWallTints(t *testing.T) {
	s := NewCubeDemo(4)
	for _, q := range s.Quads {
		c := q.Centre(s.Vertices)
		switch {
		case c.X < -0.999:
			want := Colour{DefaultReflectance, DefaultReflectance * 0.5, DefaultReflectance * 0.5}
			if q.MaterialColour != want {
				t.Errorf("left wall material = %v, want %v", q.MaterialColour, want)
			}
		case c.X > 0.999:
			want := Colour{DefaultReflectance * 0.5, DefaultReflectance * 0.5, DefaultReflectance}
			if q.MaterialColour != want {
				t.Errorf("right wall material = %v, want %v", q.MaterialColour, want)
			}
		}
	}
}

func TestCubeDemoInnerCubeSpecular(t *testing.T) {
	s := NewCubeDemo(8)
	specular := 0
	for _, q := range s.Quads {
		if q.IsSpecular {
			specular++
			// Inner cube is scaled by 0.4 and nudged down; all its
			// elements stay well inside the room.
			c := q.Centre(s.Vertices)
			if gomath.Abs(c.X) > 0.9 || gomath.Abs(c.Y) > 0.9 || gomath.Abs(c.Z) > 0.9 {
				t.Errorf("specular quad centre %v outside inner region", c)
			}
		}
	}
	if want := 6 * 4 * 4; specular != want {
		t.Errorf("got %d specular quads, want %d", specular, want)
	}
}

func TestGouraudUniformColour(t *testing.T) {
	s, q := unitQuadScene()
	s.Subdivide(q, 3, 3)
	for i := range s.Quads {
		s.Quads[i].ScreenColour = Colour{0.25, 0.5, 0.75}
	}
	gs := s.GenerateGouraudQuads()
	if len(gs) != 9 {
		t.Fatalf("got %d gouraud quads, want 9", len(gs))
	}
	for _, g := range gs {
		for _, c := range g.Colours {
			if c != (Colour{0.25, 0.5, 0.75}) {
				t.Errorf("averaging a uniform scene changed colour: %v", c)
			}
		}
	}
}

func TestFlatQuadsKeepElementColour(t *testing.T) {
	s, q := unitQuadScene()
	s.Subdivide(q, 2, 2)
	for i := range s.Quads {
		s.Quads[i].ScreenColour = Colour{R: float64(i) * 0.1}
	}

	fs := s.GenerateFlatQuads()
	if len(fs) != len(s.Quads) {
		t.Fatalf("got %d flat quads, want %d", len(fs), len(s.Quads))
	}
	for i, f := range fs {
		if f.V != s.Quads[i].V {
			t.Errorf("quad %d corners changed: %v", i, f.V)
		}
		for _, c := range f.Colours {
			if c != s.Quads[i].ScreenColour {
				t.Errorf("quad %d corner colour = %v, want %v", i, c, s.Quads[i].ScreenColour)
			}
		}
	}
}

func TestGouraudCornerAveraging(t *testing.T) {
	s, q := unitQuadScene()
	s.Subdivide(q, 2, 1)
	s.Quads[0].ScreenColour = Colour{1, 0, 0}
	s.Quads[1].ScreenColour = Colour{0, 0, 1}
	gs := s.GenerateGouraudQuads()

	// The shared edge between the two cells averages both colours.
	shared := gs[0].Colours[1]
	want := Colour{0.5, 0, 0.5}
	if shared != want {
		t.Errorf("shared edge colour = %v, want %v", shared, want)
	}
	// The outer corner sees only its own cell.
	if gs[0].Colours[0] != (Colour{1, 0, 0}) {
		t.Errorf("outer corner colour = %v, want {1 0 0}", gs[0].Colours[0])
	}
}
