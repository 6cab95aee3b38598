package sketch

import (
	"image"
	"math"
)

// Angle constants in radians.
const (
	Pi        = math.Pi
	HalfPi    = math.Pi / 2
	QuarterPi = math.Pi / 4
	TwoPi     = 2 * math.Pi
)

// kappa is the control-point offset factor for the 4-segment cubic
// approximation of an ellipse.
const kappa = 0.5522847498

// arcEpsilon is the smallest drawable angle; subdivision stops below it.
const arcEpsilon = 0.00001

// Line draws a line between two points using the stroke color and
// stroke weight.
func (s *Sketch) Line(x1, y1, x2, y2 float64) {
	s.surface.StrokeLine(x1, y1, x2, y2)
}

// Rect draws a rectangle with its top-left corner at (x, y).
func (s *Sketch) Rect(x, y, w, h float64) {
	s.surface.FillRect(x, y, w, h)
	s.surface.StrokeRect(x, y, w, h)
}

// Square draws a square with its top-left corner at (x, y).
func (s *Sketch) Square(x, y, size float64) {
	s.Rect(x, y, size, size)
}

// Triangle draws a triangle through three points.
func (s *Sketch) Triangle(x1, y1, x2, y2, x3, y3 float64) {
	s.BeginShape()
	s.Vertex(x1, y1)
	s.Vertex(x2, y2)
	s.Vertex(x3, y3)
	s.EndShape()
}

// Quad draws a quadrilateral through four points.
func (s *Sketch) Quad(x1, y1, x2, y2, x3, y3, x4, y4 float64) {
	s.BeginShape()
	s.Vertex(x1, y1)
	s.Vertex(x2, y2)
	s.Vertex(x3, y3)
	s.Vertex(x4, y4)
	s.EndShape()
}

// Circle draws a circle of diameter d centered at (x, y) through the
// surface's circle primitive. Compare Ellipse, which always decomposes
// into cubic segments.
func (s *Sketch) Circle(x, y, d float64) {
	r := d * 0.5
	s.surface.FillCircle(x, y, r)
	s.surface.StrokeCircle(x, y, r)
}

// Ellipse draws an ellipse centered at (x, y) as four cubic segments.
func (s *Sketch) Ellipse(x, y, w, h float64) error {
	cx := x - w*0.5
	cy := y - h*0.5

	ox := w * 0.5 * kappa // control point offset horizontal
	oy := h * 0.5 * kappa // control point offset vertical
	xe := cx + w
	ye := cy + h
	xm := cx + w*0.5
	ym := cy + h*0.5

	s.surface.BeginPath()
	s.surface.MoveTo(cx, ym)
	s.surface.BezierCurveTo(cx, ym-oy, xm-ox, cy, xm, cy)
	s.surface.BezierCurveTo(xm+ox, cy, xe, ym-oy, xe, ym)
	s.surface.BezierCurveTo(xe, ym+oy, xm+ox, ye, xm, ye)
	s.surface.BezierCurveTo(xm-ox, ye, cx, ym+oy, cx, ym)
	if err := s.surface.Fill(); err != nil {
		return err
	}
	return s.surface.Stroke()
}

// arcCurve holds the waypoints of one sub-arc converted to a cubic
// segment, on the unit circle.
type arcCurve struct {
	ax, ay float64
	bx, by float64
	cx, cy float64
	dx, dy float64
}

// acuteArcToBezier converts a sub-arc of at most a quarter turn,
// starting at angle start and spanning size radians, into a single
// cubic segment on the unit circle.
func acuteArcToBezier(start, size float64) arcCurve {
	alpha := size * 0.5
	cosAlpha := math.Cos(alpha)
	sinAlpha := math.Sin(alpha)
	cotAlpha := 1 / math.Tan(alpha)
	// This is how far the arc needs to be rotated.
	phi := start + alpha
	cosPhi := math.Cos(phi)
	sinPhi := math.Sin(phi)
	lambda := (4.0 - cosAlpha) / 3
	mu := sinAlpha + (cosAlpha-lambda)*cotAlpha

	return arcCurve{
		ax: math.Cos(start),
		ay: math.Sin(start),
		bx: lambda*cosPhi + mu*sinPhi,
		by: lambda*sinPhi - mu*cosPhi,
		cx: lambda*cosPhi - mu*sinPhi,
		cy: lambda*sinPhi + mu*cosPhi,
		dx: math.Cos(start + size),
		dy: math.Sin(start + size),
	}
}

// Arc draws a section of an ellipse centered at (x, y), clockwise from
// start to stop (radians). The path is closed back through the center,
// so open arcs render as pie slices.
func (s *Sketch) Arc(x, y, w, h, start, stop float64) error {
	rx := w * 0.5
	ry := h * 0.5

	var curves []arcCurve
	for stop-start >= arcEpsilon {
		size := math.Min(stop-start, HalfPi)
		curves = append(curves, acuteArcToBezier(start, size))
		start += size
	}

	s.surface.BeginPath()
	for i, c := range curves {
		if i == 0 {
			s.surface.MoveTo(x+c.ax*rx, y+c.ay*ry)
		}
		s.surface.BezierCurveTo(
			x+c.bx*rx, y+c.by*ry,
			x+c.cx*rx, y+c.cy*ry,
			x+c.dx*rx, y+c.dy*ry,
		)
	}
	s.surface.LineTo(x, y)
	s.surface.ClosePath()
	if err := s.surface.Fill(); err != nil {
		return err
	}
	return s.surface.Stroke()
}

// DrawPoint draws a single point as a filled dot of radius half the
// stroke weight. The dot always takes the stroke color, never the fill
// color; the fill style is restored afterwards.
func (s *Sketch) DrawPoint(x, y float64) error {
	s.surface.SetFillStyle(s.strokeStyle)
	s.surface.BeginPath()
	err := s.arcPath(x, y, s.lineWidth*0.5)
	s.surface.SetFillStyle(s.fillStyle)
	return err
}

// arcPath fills a full circular arc of radius r at (x, y) using the
// current fill style.
func (s *Sketch) arcPath(x, y, r float64) error {
	start := 0.0
	for TwoPi-start >= arcEpsilon {
		size := math.Min(TwoPi-start, HalfPi)
		c := acuteArcToBezier(start, size)
		if start == 0 {
			s.surface.MoveTo(x+c.ax*r, y+c.ay*r)
		}
		s.surface.BezierCurveTo(
			x+c.bx*r, y+c.by*r,
			x+c.cx*r, y+c.cy*r,
			x+c.dx*r, y+c.dy*r,
		)
		start += size
	}
	s.surface.ClosePath()
	return s.surface.Fill()
}

// Image draws another bitmap into this sketch at (x, y). Width and
// height of zero or less default to the source's natural size.
func (s *Sketch) Image(img image.Image, x, y, w, h float64) {
	if img == nil {
		return
	}
	b := img.Bounds()
	if w <= 0 {
		w = float64(b.Dx())
	}
	if h <= 0 {
		h = float64(b.Dy())
	}
	s.surface.DrawImage(img, x, y, w, h)
}

// Text draws a string at (x, y) using the current font, alignment and
// baseline.
//
// If a fill color was never explicitly set, a default text fill is
// substituted for this call only; the general-purpose fill default is
// tuned for shapes, not legible glyphs. Symmetrically, when a stroke
// color is set but the stroke weight never was, a thinner default text
// weight applies for the outline pass only.
func (s *Sketch) Text(text string, x, y float64) {
	if s.fillSet {
		s.surface.FillText(text, x, y)
	} else {
		s.surface.SetFillStyle(defaultTextFill)
		s.surface.FillText(text, x, y)
		s.surface.SetFillStyle(defaultFill)
	}

	if s.strokeSet {
		if s.weightSet {
			s.surface.StrokeText(text, x, y)
		} else {
			s.surface.SetLineWidth(defaultTextWeight)
			s.surface.StrokeText(text, x, y)
			s.surface.SetLineWidth(defaultStrokeWeight)
		}
	}
}
