package turtle

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/gosketch/sketch"
)

// Turtle is a virtual robot drawing on a screen. It carries a position
// and a unit orientation vector in turtle space, pen and fill state,
// and its own pen layer that the screen composites.
type Turtle struct {
	screen *Screen
	pen    *sketch.Sketch

	position sketch.Point
	orient   sketch.Point

	drawing   bool
	penColor  sketch.Color
	penSize   float64
	speed     int
	visible   bool
	fillColor sketch.Color

	// fillPath is non-nil while a fill is being recorded; every move
	// appends its endpoint.
	fillPath []sketch.Point

	poly         []sketch.Point
	creatingPoly bool

	colorMode    float64
	shape        string
	stretchWid   float64
	stretchLen   float64
	shearFactor  float64
	tilt         float64 // radians
	outlineWidth float64

	// Angle measurement state. fullcircle is the number of units in a
	// full turn, degreesPerAU converts one unit to degrees.
	fullcircle   float64
	degreesPerAU float64
	angleOffset  float64
	angleOrient  float64
}

// New creates a turtle on the registry's current screen, in its
// initial state at the origin.
func New(reg *Registry) *Turtle {
	scr := reg.Current()
	t := &Turtle{
		screen: scr,
		pen:    sketch.NewSketch(scr.width, scr.height),
	}
	t.Reset()
	scr.addTurtle(t)
	return t
}

// Screen returns the screen the turtle draws on.
func (t *Turtle) Screen() *Screen { return t.screen }

// Reset returns the turtle to its initial state and clears its
// drawings.
func (t *Turtle) Reset() {
	t.drawing = true
	t.penColor = sketch.Black
	t.penSize = 1
	_ = t.pen.Stroke(t.penColor)
	t.pen.StrokeWeight(t.penSize)
	t.speed = 3
	t.visible = true
	t.fillColor = sketch.Black
	t.fillPath = nil
	t.pen.NoFill()
	t.poly = nil
	t.creatingPoly = false
	t.position = sketch.Point{}
	t.colorMode = sketch.Scale1
	t.shape = "classic"
	t.stretchWid, t.stretchLen = 1, 1
	t.shearFactor = 0
	t.tilt = 0
	t.outlineWidth = 1
	t.orient = sketch.Pt(1, 0)
	t.angleOrient = 1
	t.Degrees()
	t.Clear()
}

// Clear deletes the turtle's drawings without moving it. Other
// turtles' drawings are not affected.
func (t *Turtle) Clear() {
	t.pen.Clear()
	t.update()
}

// toScreen maps a turtle-space point (center origin, y up) to pen
// layer pixels (top-left origin, y down).
func (t *Turtle) toScreen(p sketch.Point) (float64, float64) {
	x := float64(t.screen.width)*0.5 + p.X*t.screen.xscale
	y := float64(t.screen.height)*0.5 - p.Y*t.screen.yscale
	return x, y
}

// update redraws the screen and pauses for the animation delay, when
// tracing is on.
func (t *Turtle) update() {
	if t.screen.tracing == 1 {
		t.screen.update()
		t.screen.wait(t.screen.delay)
	}
}

// ========================================
//                 Motion
// ========================================

// moveTo moves the pen to end, drawing a line when the pen is down.
// All movement goes through here. With a nonzero speed and tracing on,
// a tween subdivides the move into hops, each redrawing the segment
// from the start so far and pausing, which animates the line.
func (t *Turtle) moveTo(end sketch.Point) {
	start := t.position
	if t.speed != 0 && t.screen.tracing == 1 {
		diff := end.Sub(start)
		dist := math.Hypot(diff.X*t.screen.xscale, diff.Y*t.screen.yscale)
		nhops := 1 + int(dist/(3*math.Pow(1.1, float64(t.speed))*float64(t.speed)))
		tween := gween.New(0, 1, float32(nhops), ease.Linear)
		for n := 0; n < nhops; n++ {
			frac, _ := tween.Update(1)
			t.position = start.Lerp(end, float64(frac))
			if t.drawing {
				x1, y1 := t.toScreen(start)
				x2, y2 := t.toScreen(t.position)
				t.pen.Line(x1, y1, x2, y2)
			}
			t.update()
		}
	} else if t.drawing {
		x1, y1 := t.toScreen(start)
		x2, y2 := t.toScreen(end)
		t.pen.Line(x1, y1, x2, y2)
	}
	if t.fillPath != nil {
		t.fillPath = append(t.fillPath, end)
	}
	if t.creatingPoly {
		t.poly = append(t.poly, end)
	}
	t.position = end
	t.update()
}

func (t *Turtle) advance(distance float64) {
	t.moveTo(t.position.Add(t.orient.Mul(distance)))
}

// Forward moves the turtle by distance in the direction it is headed.
// Negative distances move it backward.
func (t *Turtle) Forward(distance float64) {
	t.advance(distance)
}

// Backward moves the turtle opposite to its heading without changing
// the heading.
func (t *Turtle) Backward(distance float64) {
	t.advance(-distance)
}

// rotate turns the turtle counterclockwise by angle units.
func (t *Turtle) rotate(angle float64) {
	deg := angle * t.degreesPerAU
	t.orient = t.orient.Rotate(deg * math.Pi / 180)
	t.update()
}

// Left turns the turtle counterclockwise by angle units.
func (t *Turtle) Left(angle float64) {
	t.rotate(angle)
}

// Right turns the turtle clockwise by angle units.
func (t *Turtle) Right(angle float64) {
	t.rotate(-angle)
}

// Goto moves the turtle to an absolute position, drawing a line when
// the pen is down. The heading does not change.
func (t *Turtle) Goto(x, y float64) {
	t.moveTo(sketch.Pt(x, y))
}

// SetX moves the turtle so its x coordinate becomes x.
func (t *Turtle) SetX(x float64) {
	t.moveTo(sketch.Pt(x, t.position.Y))
}

// SetY moves the turtle so its y coordinate becomes y.
func (t *Turtle) SetY(y float64) {
	t.moveTo(sketch.Pt(t.position.X, y))
}

// SetHeading turns the turtle to the given absolute heading by the
// shortest rotation.
func (t *Turtle) SetHeading(to float64) {
	angle := (to - t.Heading()) * t.angleOrient
	half := t.fullcircle / 2
	angle = pymod(angle+half, t.fullcircle) - half
	t.rotate(angle)
}

// Home moves the turtle to the origin and sets its heading to 0.
func (t *Turtle) Home() {
	t.Goto(0, 0)
	t.SetHeading(0)
}

// Circle draws a circle of the given radius as a chord walk. The
// center is radius units to the turtle's left, so a positive radius
// turns counterclockwise and a negative one clockwise. extent is the
// swept angle in the current units; 0 means a full circle. The heading
// changes by exactly extent. steps fixes the number of chords; 0 picks
// a default that grows with the radius.
func (t *Turtle) Circle(radius, extent float64, steps int) {
	if extent == 0 {
		extent = t.fullcircle
	}
	if steps <= 0 {
		frac := math.Abs(extent) / t.fullcircle
		steps = 1 + int(math.Min(11+math.Abs(radius)/6, 59)*frac)
	}
	w := extent / float64(steps)
	w2 := 0.5 * w
	l := 2 * radius * math.Sin(w2*math.Pi/180*t.degreesPerAU)
	if radius < 0 {
		l, w, w2 = -l, -w, -w2
	}
	t.rotate(w2)
	for i := 0; i < steps; i++ {
		t.advance(l)
		t.rotate(w)
	}
	t.rotate(-w2)
}

// ========================================
//              Measurement
// ========================================

// Position returns the turtle's location in turtle space.
func (t *Turtle) Position() sketch.Point { return t.position }

// Xcor returns the turtle's x coordinate.
func (t *Turtle) Xcor() float64 { return t.position.X }

// Ycor returns the turtle's y coordinate.
func (t *Turtle) Ycor() float64 { return t.position.Y }

// Heading returns the turtle's heading in the current angle units,
// always in [0, fullcircle).
func (t *Turtle) Heading() float64 {
	result := pymod(round10(math.Atan2(t.orient.Y, t.orient.X)*180/math.Pi), 360)
	result /= t.degreesPerAU
	return pymod(t.angleOffset+t.angleOrient*result, t.fullcircle)
}

// Towards returns the heading from the turtle's position toward the
// point (x, y), in the current angle units.
func (t *Turtle) Towards(x, y float64) float64 {
	d := sketch.Pt(x, y).Sub(t.position)
	result := pymod(round10(math.Atan2(d.Y, d.X)*180/math.Pi), 360)
	result /= t.degreesPerAU
	return pymod(t.angleOffset+t.angleOrient*result, t.fullcircle)
}

// Distance returns the distance from the turtle to (x, y) in turtle
// steps.
func (t *Turtle) Distance(x, y float64) float64 {
	return t.position.Distance(sketch.Pt(x, y))
}

// setDegreesPerAU sets the number of angle units in a full circle.
func (t *Turtle) setDegreesPerAU(fullcircle float64) {
	t.fullcircle = fullcircle
	t.degreesPerAU = 360 / fullcircle
	t.angleOffset = 0
}

// Degrees sets angle measurement units to degrees. An optional
// fullcircle argument sets a different number of units per full turn,
// such as 400 for gradians.
func (t *Turtle) Degrees(fullcircle ...float64) {
	fc := 360.0
	if len(fullcircle) > 0 && fullcircle[0] != 0 {
		fc = fullcircle[0]
	}
	t.setDegreesPerAU(fc)
}

// Radians sets angle measurement units to radians.
func (t *Turtle) Radians() {
	t.setDegreesPerAU(2 * math.Pi)
}

// FullCircle returns the number of angle units in a full turn.
func (t *Turtle) FullCircle() float64 { return t.fullcircle }

// round10 rounds to 10 decimal places, absorbing atan2 noise so axis
// aligned headings come out exact.
func round10(v float64) float64 {
	return math.Round(v*1e10) / 1e10
}

// pymod is the floored modulo: the result always takes the sign of m.
func pymod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r != 0 && (r < 0) != (m < 0) {
		r += m
	}
	return r
}
