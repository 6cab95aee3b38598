package turtle

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/gosketch/sketch"
)

// speedNames maps the classic speed keywords to their numeric values.
var speedNames = map[string]int{
	"fastest": 0,
	"fast":    10,
	"normal":  6,
	"slow":    3,
	"slowest": 1,
}

// ========================================
//               Pen control
// ========================================

// PenDown lowers the pen so subsequent moves draw.
func (t *Turtle) PenDown() { t.drawing = true }

// PenUp lifts the pen so subsequent moves do not draw.
func (t *Turtle) PenUp() { t.drawing = false }

// IsDown reports whether the pen is down.
func (t *Turtle) IsDown() bool { return t.drawing }

// PenSize returns the line thickness.
func (t *Turtle) PenSize() float64 { return t.penSize }

// SetPenSize sets the line thickness. Non-positive values are ignored.
func (t *Turtle) SetPenSize(size float64) {
	if size <= 0 {
		return
	}
	t.penSize = size
	t.pen.StrokeWeight(size)
}

// SetSpeed sets the animation speed. Accepted values are the integers
// 1 (slowest) through 10 (fastest), 0 for no animation at all, or one
// of the strings "fastest", "fast", "normal", "slow", "slowest".
// Numbers outside 0.5..10.5 select 0.
func (t *Turtle) SetSpeed(speed any) error {
	switch v := speed.(type) {
	case string:
		n, ok := speedNames[v]
		if !ok {
			return fmt.Errorf("%w: unknown speed %q", sketch.ErrInvalidArgument, v)
		}
		t.speed = n
	case int:
		t.speed = clampSpeed(float64(v))
	case float64:
		t.speed = clampSpeed(v)
	default:
		return fmt.Errorf("%w: bad speed argument %v", sketch.ErrInvalidArgument, speed)
	}
	return nil
}

// Speed returns the animation speed.
func (t *Turtle) Speed() int { return t.speed }

func clampSpeed(v float64) int {
	if v > 0.5 && v < 10.5 {
		return int(math.Round(v))
	}
	return 0
}

// ========================================
//                 Color
// ========================================

// ColorMode returns the scale used for numeric color components.
func (t *Turtle) ColorMode() float64 { return t.colorMode }

// SetColorMode sets the scale for numeric color components to Scale1
// or Scale255. Other values leave the mode unchanged.
func (t *Turtle) SetColorMode(mode float64) {
	if mode == sketch.Scale1 || mode == sketch.Scale255 {
		t.colorMode = mode
	}
}

// resolveColor interprets a color specification: a named color string,
// a sketch.Color, or three numeric components on the current color
// mode scale.
func (t *Turtle) resolveColor(args ...any) (sketch.Color, error) {
	switch len(args) {
	case 1:
		switch v := args[0].(type) {
		case string:
			c, ok := colornames.Map[strings.ToLower(v)]
			if !ok {
				return sketch.Color{}, fmt.Errorf("%w: bad color string %q", sketch.ErrInvalidColor, v)
			}
			return sketch.Color{R: c.R, G: c.G, B: c.B, A: c.A}, nil
		case sketch.Color:
			return v, nil
		case []float64:
			if len(v) == 3 {
				return t.tripleColor(v[0], v[1], v[2])
			}
		}
	case 3:
		r, okr := toFloat(args[0])
		g, okg := toFloat(args[1])
		b, okb := toFloat(args[2])
		if okr && okg && okb {
			return t.tripleColor(r, g, b)
		}
	}
	return sketch.Color{}, fmt.Errorf("%w: bad color arguments %v", sketch.ErrInvalidColor, args)
}

// tripleColor builds a color from three components, scaling 0..1 input
// up when the color mode is Scale1.
func (t *Turtle) tripleColor(r, g, b float64) (sketch.Color, error) {
	if t.colorMode == sketch.Scale1 {
		r = math.Round(255 * r)
		g = math.Round(255 * g)
		b = math.Round(255 * b)
	}
	for _, v := range [3]float64{r, g, b} {
		if v < 0 || v > 255 || math.IsNaN(v) {
			return sketch.Color{}, fmt.Errorf("%w: bad color sequence (%v, %v, %v)", sketch.ErrInvalidColor, r, g, b)
		}
	}
	return sketch.RGB(uint8(math.Round(r)), uint8(math.Round(g)), uint8(math.Round(b))), nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}

// PenColor returns the pen color.
func (t *Turtle) PenColor() sketch.Color { return t.penColor }

// FillColor returns the fill color.
func (t *Turtle) FillColor() sketch.Color { return t.fillColor }

// SetPenColor sets the color lines are drawn with.
func (t *Turtle) SetPenColor(args ...any) error {
	c, err := t.resolveColor(args...)
	if err != nil {
		return err
	}
	t.penColor = c
	_ = t.pen.Stroke(c)
	t.pen.StrokeWeight(t.penSize)
	t.update()
	return nil
}

// SetFillColor sets the color shapes are filled with.
func (t *Turtle) SetFillColor(args ...any) error {
	c, err := t.resolveColor(args...)
	if err != nil {
		return err
	}
	t.fillColor = c
	_ = t.pen.Fill(c)
	t.update()
	return nil
}

// SetColor sets pen and fill color together. One specification sets
// both to the same color; two set the pen and fill color respectively;
// three numeric components set both on the current color mode scale.
func (t *Turtle) SetColor(args ...any) error {
	switch len(args) {
	case 1, 3:
		if err := t.SetPenColor(args...); err != nil {
			return err
		}
		return t.SetFillColor(args...)
	case 2:
		if err := t.SetPenColor(args[0]); err != nil {
			return err
		}
		return t.SetFillColor(args[1])
	}
	return fmt.Errorf("%w: bad color arguments %v", sketch.ErrInvalidColor, args)
}

// BgColor returns the screen background color.
func (t *Turtle) BgColor() sketch.Color { return t.screen.bg }

// SetBgColor sets the screen background color.
func (t *Turtle) SetBgColor(args ...any) error {
	c, err := t.resolveColor(args...)
	if err != nil {
		return err
	}
	t.screen.bg = c
	t.update()
	return nil
}

// ========================================
//                Filling
// ========================================

// Filling reports whether a fill is being recorded.
func (t *Turtle) Filling() bool { return t.fillPath != nil }

// BeginFill starts recording moves for a filled shape.
func (t *Turtle) BeginFill() {
	t.fillPath = []sketch.Point{t.position}
}

// EndFill closes the shape recorded since BeginFill and fills it with
// the fill color, outlined with the pen color. Shapes with fewer than
// three vertices are dropped.
func (t *Turtle) EndFill() {
	if t.fillPath == nil {
		return
	}
	if len(t.fillPath) > 2 {
		pts := make([]sketch.Point, len(t.fillPath))
		for i, p := range t.fillPath {
			x, y := t.toScreen(p)
			pts[i] = sketch.Pt(x, y)
		}
		surf := t.pen.Surface()
		surf.Save()
		surf.SetFillStyle(t.fillColor)
		surf.SetStrokeStyle(t.penColor)
		surf.SetLineWidth(t.penSize)
		surf.FillPolygon(pts)
		surf.StrokePolygon(pts)
		surf.Restore()
	}
	t.fillPath = nil
	t.update()
}

// Fill records the moves made by fn as a filled shape. The closing
// EndFill runs even if fn panics.
func (t *Turtle) Fill(fn func()) {
	t.BeginFill()
	defer t.EndFill()
	fn()
}

// ========================================
//            Polygon recording
// ========================================

// BeginPoly starts recording the turtle's positions as polygon
// vertices, beginning with the current position.
func (t *Turtle) BeginPoly() {
	t.poly = []sketch.Point{t.position}
	t.creatingPoly = true
}

// EndPoly stops recording polygon vertices.
func (t *Turtle) EndPoly() {
	t.creatingPoly = false
}

// Poly returns the most recently recorded polygon.
func (t *Turtle) Poly() []sketch.Point {
	out := make([]sketch.Point, len(t.poly))
	copy(out, t.poly)
	return out
}

// RecordPoly records the positions visited by fn and returns them as
// polygon vertices.
func (t *Turtle) RecordPoly(fn func()) []sketch.Point {
	t.BeginPoly()
	defer t.EndPoly()
	fn()
	return t.Poly()
}

// ========================================
//              Pen drawings
// ========================================

// Dot draws a filled circle at the current position. A non-positive
// size uses penSize+4 or 2*penSize, whichever is larger. The optional
// color specification defaults to the pen color.
func (t *Turtle) Dot(size float64, color ...any) error {
	if size <= 0 {
		size = t.penSize + math.Max(t.penSize, 4)
	}
	col := t.penColor
	if len(color) > 0 {
		c, err := t.resolveColor(color...)
		if err != nil {
			return err
		}
		col = c
	}
	x, y := t.toScreen(t.position)
	surf := t.pen.Surface()
	surf.Save()
	surf.SetStrokeStyle(sketch.Transparent)
	surf.SetFillStyle(col)
	surf.FillCircle(x, y, size/2)
	surf.Restore()
	t.update()
	return nil
}

// Stamp draws a copy of the turtle's cursor onto the pen layer at the
// current position. Unlike the live cursor, the stamp ignores tilt.
func (t *Turtle) Stamp() {
	pts := t.cursorPolygon(t.Heading())
	surf := t.pen.Surface()
	surf.Save()
	surf.SetStrokeStyle(t.penColor)
	surf.SetLineWidth(2)
	surf.SetFillStyle(t.fillColor)
	surf.FillPolygon(pts)
	surf.StrokePolygon(pts)
	surf.Restore()
	t.update()
}

// Write draws text at the turtle's position in the pen color. The zero
// FontSpec selects 8px Arial, an empty align selects left alignment.
func (t *Turtle) Write(text string, align sketch.TextAlign, font sketch.FontSpec) error {
	if align == "" {
		align = sketch.AlignLeft
	}
	if font == (sketch.FontSpec{}) {
		font = sketch.FontSpec{Family: "Arial", Size: 8, Style: sketch.StyleNormal}
	}
	switch align {
	case sketch.AlignLeft, sketch.AlignCenter, sketch.AlignRight:
	default:
		return fmt.Errorf("%w: bad text alignment %q", sketch.ErrInvalidArgument, align)
	}
	switch font.Style {
	case sketch.StyleNormal, sketch.StyleItalic, sketch.StyleBold, sketch.StyleBoldItalic:
	default:
		return fmt.Errorf("%w: bad font style %q", sketch.ErrInvalidArgument, font.Style)
	}
	if font.Size <= 0 || math.IsNaN(font.Size) {
		return fmt.Errorf("%w: bad font size %v", sketch.ErrInvalidArgument, font.Size)
	}
	x, y := t.toScreen(t.position)
	surf := t.pen.Surface()
	surf.Save()
	surf.SetFillStyle(t.penColor)
	surf.SetFont(font)
	surf.SetTextAlign(align)
	surf.FillText(text, x, y)
	surf.Restore()
	t.update()
	return nil
}

// ========================================
//              Cursor state
// ========================================

// Shape returns the name of the cursor shape.
func (t *Turtle) Shape() string { return t.shape }

// SetShape sets the cursor shape to one of the names in Shapes.
func (t *Turtle) SetShape(name string) error {
	if _, ok := shapes[name]; !ok {
		return fmt.Errorf("%w: no shape named %q", sketch.ErrInvalidShape, name)
	}
	t.shape = name
	t.update()
	return nil
}

// StretchFactor returns the cursor stretch factors perpendicular to
// and along the heading.
func (t *Turtle) StretchFactor() (wid, length float64) {
	return t.stretchWid, t.stretchLen
}

// ShapeSize stretches the cursor by wid perpendicular to the heading
// and by length along it.
func (t *Turtle) ShapeSize(wid, length float64) error {
	if wid == 0 || length == 0 {
		return fmt.Errorf("%w: stretch factors must not be zero", sketch.ErrInvalidArgument)
	}
	t.stretchWid = wid
	t.stretchLen = length
	t.update()
	return nil
}

// ShearFactor returns the cursor shear factor.
func (t *Turtle) ShearFactor() float64 { return t.shearFactor }

// SetShearFactor sets the cursor shear factor, the tangent of the
// shear angle along the heading.
func (t *Turtle) SetShearFactor(shear float64) {
	t.shearFactor = shear
	t.update()
}

// TiltAngle returns the angle between the cursor orientation and the
// heading, in the current angle units.
func (t *Turtle) TiltAngle() float64 {
	tilt := -t.tilt * 180 / math.Pi * t.angleOrient
	return pymod(tilt/t.degreesPerAU, t.fullcircle)
}

// SetTiltAngle rotates the cursor to the given angle relative to the
// heading, regardless of its current tilt. Movement is unaffected.
func (t *Turtle) SetTiltAngle(angle float64) {
	tilt := -angle * t.degreesPerAU * t.angleOrient
	t.tilt = pymod(tilt*math.Pi/180, 2*math.Pi)
	t.update()
}

// Tilt rotates the cursor by angle from its current tilt.
func (t *Turtle) Tilt(angle float64) {
	t.SetTiltAngle(angle + t.TiltAngle())
}

// ShowTurtle makes the cursor visible.
func (t *Turtle) ShowTurtle() {
	t.visible = true
	t.update()
}

// HideTurtle makes the cursor invisible. Drawing is noticeably faster
// with the cursor hidden.
func (t *Turtle) HideTurtle() {
	t.visible = false
	t.update()
}

// IsVisible reports whether the cursor is visible.
func (t *Turtle) IsVisible() bool { return t.visible }

// cursorPolygon returns the cursor outline in pen layer pixels: the
// shape polygon stretched by the shape size, rotated to angle (in
// degrees, 0 pointing up along the heading convention) and placed at
// the turtle's position.
func (t *Turtle) cursorPolygon(angle float64) []sketch.Point {
	sx, sy := t.toScreen(t.position)
	theta := angle*math.Pi/180 - math.Pi/2
	vs := shapes[t.shape]
	pts := make([]sketch.Point, len(vs))
	for i, v := range vs {
		p := sketch.Pt(t.stretchWid*v.X, t.stretchLen*v.Y).Rotate(theta)
		pts[i] = sketch.Pt(sx+p.X, sy-p.Y)
	}
	return pts
}
