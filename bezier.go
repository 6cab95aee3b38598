package sketch

// Bezier draws a stroked cubic curve from (x1, y1) to (x4, y4) with
// control points (x2, y2) and (x3, y3).
func (s *Sketch) Bezier(x1, y1, x2, y2, x3, y3, x4, y4 float64) error {
	s.surface.BeginPath()
	s.surface.MoveTo(x1, y1)
	s.surface.BezierCurveTo(x2, y2, x3, y3, x4, y4)
	return s.surface.Stroke()
}

// BezierPoint evaluates one coordinate of a cubic curve at parameter t
// in [0, 1], given anchor coordinates a and d and control coordinates
// b and c.
func BezierPoint(a, b, c, d, t float64) float64 {
	mt := 1 - t
	return mt*mt*mt*a +
		3*mt*mt*t*b +
		3*mt*t*t*c +
		t*t*t*d
}

// BezierTangent evaluates one coordinate of the unnormalized derivative
// of a cubic curve at parameter t in [0, 1].
func BezierTangent(a, b, c, d, t float64) float64 {
	mt := 1 - t
	return 3*d*t*t -
		3*c*t*t +
		6*c*mt*t -
		6*b*mt*t +
		3*b*mt*mt -
		3*a*mt*mt
}
