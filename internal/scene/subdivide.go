package scene

// SubdivInfo records how one base quad was split into an n x m grid of
// subquads. It keeps the grid structure so Gouraud vertex colours can be
// reconstructed from the solved per-subquad radiance.
type SubdivInfo struct {
	N, M int

	// vertexStart is the first of the (N+1)*(M+1) grid vertices,
	// laid out row-major, row stride N+1.
	vertexStart int
	// quadStart is the first of the N*M subquads, row-major, stride N.
	quadStart int
}

// Subdivide splits base into an n x m grid of subquads appended to the
// scene, bilinearly interpolating the corners. The subquads inherit the
// base quad's material, emitter and specular attributes.
func (s *Scene) Subdivide(base Quad, n, m int) SubdivInfo {
	info := SubdivInfo{
		N:           n,
		M:           m,
		vertexStart: len(s.Vertices),
		quadStart:   len(s.Quads),
	}

	v0 := s.Vertices[base.V[0]]
	v1 := s.Vertices[base.V[1]]
	v2 := s.Vertices[base.V[2]]
	v3 := s.Vertices[base.V[3]]

	for j := 0; j <= m; j++ {
		w := float64(j) / float64(m)
		for i := 0; i <= n; i++ {
			u := float64(i) / float64(n)
			p := v0.Scale((1 - u) * (1 - w)).
				Add(v1.Scale(u * (1 - w))).
				Add(v2.Scale(u * w)).
				Add(v3.Scale((1 - u) * w))
			s.Vertices = append(s.Vertices, p)
		}
	}

	vertexAt := func(i, j int) int {
		return info.vertexStart + j*(n+1) + i
	}
	for j := 0; j < m; j++ {
		for i := 0; i < n; i++ {
			q := base
			q.V = [4]int{
				vertexAt(i, j),
				vertexAt(i+1, j),
				vertexAt(i+1, j+1),
				vertexAt(i, j+1),
			}
			s.Quads = append(s.Quads, q)
		}
	}

	s.Subdivs = append(s.Subdivs, info)
	return info
}

// GouraudQuad is a display quad carrying one colour per corner.
type GouraudQuad struct {
	V       [4]int
	Colours [4]Colour
}

// quadAt returns the subquad grid cell (i, j).
func (info SubdivInfo) quadAt(s *Scene, i, j int) Quad {
	return s.Quads[info.quadStart+j*info.N+i]
}

// vertexColour averages the screen colours of the subquads adjacent to
// grid vertex (i, j): one cell at the corners, two along the edges, four
// in the interior.
func (info SubdivInfo) vertexColour(s *Scene, i, j int) Colour {
	var sum Colour
	count := 0
	for dj := j - 1; dj <= j; dj++ {
		if dj < 0 || dj >= info.M {
			continue
		}
		for di := i - 1; di <= i; di++ {
			if di < 0 || di >= info.N {
				continue
			}
			sum = sum.Add(info.quadAt(s, di, dj).ScreenColour)
			count++
		}
	}
	if count == 0 {
		return Colour{}
	}
	return sum.Scale(1 / float64(count))
}

// GenerateGouraudQuads appends smooth-shaded display quads for this
// subdivision, one per subquad, with corner colours averaged from the
// neighbouring subquads.
func (info SubdivInfo) GenerateGouraudQuads(s *Scene, out []GouraudQuad) []GouraudQuad {
	vertexAt := func(i, j int) int {
		return info.vertexStart + j*(info.N+1) + i
	}
	for j := 0; j < info.M; j++ {
		for i := 0; i < info.N; i++ {
			out = append(out, GouraudQuad{
				V: [4]int{
					vertexAt(i, j),
					vertexAt(i+1, j),
					vertexAt(i+1, j+1),
					vertexAt(i, j+1),
				},
				Colours: [4]Colour{
					info.vertexColour(s, i, j),
					info.vertexColour(s, i+1, j),
					info.vertexColour(s, i+1, j+1),
					info.vertexColour(s, i, j+1),
				},
			})
		}
	}
	return out
}

// GenerateGouraudQuads builds the full smooth-shaded display list for
// every subdivided base quad in the scene.
func (s *Scene) GenerateGouraudQuads() []GouraudQuad {
	var out []GouraudQuad
	for _, info := range s.Subdivs {
		out = info.GenerateGouraudQuads(s, out)
	}
	return out
}

// GenerateFlatQuads builds a display list with each element drawn in
// its own solved colour, no corner averaging. Useful for inspecting
// per-element radiance directly.
func (s *Scene) GenerateFlatQuads() []GouraudQuad {
	out := make([]GouraudQuad, len(s.Quads))
	for i, q := range s.Quads {
		out[i] = GouraudQuad{
			V:       q.V,
			Colours: [4]Colour{q.ScreenColour, q.ScreenColour, q.ScreenColour, q.ScreenColour},
		}
	}
	return out
}
