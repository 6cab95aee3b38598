package sketch

// BeginShape starts recording vertices for a custom polygon, clearing
// any previously recorded vertices.
func (s *Sketch) BeginShape() {
	s.vertices = s.vertices[:0]
}

// Vertex appends a point to the shape being recorded.
func (s *Sketch) Vertex(x, y float64) {
	s.vertices = append(s.vertices, Point{X: x, Y: y})
}

// EndShape draws the recorded vertices as a single filled and stroked
// polygon, then clears the buffer. With no recorded vertices it is a
// no-op, so a stray second EndShape draws nothing.
func (s *Sketch) EndShape() {
	if len(s.vertices) > 0 {
		s.surface.FillPolygon(s.vertices)
		s.surface.StrokePolygon(s.vertices)
	}
	s.vertices = s.vertices[:0]
}

// WithShape records a shape inside fn and guarantees the closing
// EndShape runs even if fn panics.
func (s *Sketch) WithShape(fn func()) {
	s.BeginShape()
	defer s.EndShape()
	fn()
}

// clearVertices drops any leftover open shape buffer. The animation
// loop calls this after every frame.
func (s *Sketch) clearVertices() {
	s.vertices = s.vertices[:0]
}
