package sketch

import (
	"io"
	"math"
	"time"
)

// Default style values. Fill and stroke defaults are tuned for shapes;
// text drawing substitutes its own defaults when a style was never
// explicitly set (see Text).
var (
	defaultFill   = White
	defaultStroke = Black
)

const (
	defaultStrokeWeight = 1.0
	defaultTextWeight   = 0.3
	defaultFontFamily   = "sans-serif"
	defaultFontSize     = 12.0
)

var defaultTextFill = Black

// Sketch is a drawing context in the Processing style: persistent
// bitmap, style state with explicit-set tracking, an affine transform
// mirrored onto the surface, a vertex recorder for custom polygons, and
// a cooperative animation loop.
//
// A Sketch is single-threaded; all methods must be called from one
// goroutine.
type Sketch struct {
	surface Surface
	width   int
	height  int
	density int

	// Transform state. matrix is observable/inspectable only; the
	// surface does the actual coordinate mapping and is kept in sync
	// with every mutation.
	matrix Matrix
	stack  []Matrix

	// Style state.
	colorMode    float64
	fillStyle    Color
	strokeStyle  Color
	lineWidth    float64
	fillSet      bool
	strokeSet    bool
	weightSet    bool
	font         FontSpec
	textAlign    TextAlign
	textBaseline TextBaseline

	// Shape recorder.
	vertices []Point

	// Animation clock.
	frameCount int
	looping    bool
	startTime  time.Time
	sleep      func(time.Duration)
}

// NewSketch creates a sketch with the given logical dimensions.
func NewSketch(width, height int, opts ...Option) *Sketch {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	surface := options.surface
	if surface == nil {
		surface = newCanvasSurface(width*options.density, height*options.density)
	}

	s := &Sketch{
		surface: surface,
		width:   width,
		height:  height,
		density: options.density,
		sleep:   time.Sleep,
	}
	s.initStyle()
	s.initTransform()
	return s
}

// Width returns the logical width of the sketch.
func (s *Sketch) Width() int { return s.width }

// Height returns the logical height of the sketch.
func (s *Sketch) Height() int { return s.height }

// Surface returns the drawing surface collaborator.
func (s *Sketch) Surface() Surface { return s.surface }

func (s *Sketch) initStyle() {
	s.colorMode = Scale255
	s.fillStyle = defaultFill
	s.strokeStyle = defaultStroke
	s.lineWidth = defaultStrokeWeight
	s.fillSet = false
	s.strokeSet = false
	s.weightSet = false
	s.font = FontSpec{Family: defaultFontFamily, Size: defaultFontSize, Style: StyleNormal}
	s.textAlign = AlignLeft
	s.textBaseline = BaselineAlphabetic

	s.surface.SetFillStyle(s.fillStyle)
	s.surface.SetStrokeStyle(s.strokeStyle)
	s.surface.SetLineWidth(s.lineWidth)
	s.surface.SetFont(s.font)
	s.surface.SetTextAlign(s.textAlign)
	s.surface.SetTextBaseline(s.textBaseline)
}

func (s *Sketch) initTransform() {
	d := float64(s.density)
	s.matrix = Scale(d, d)
	s.surface.Scale(d, d)
}

// ========================================
//                 Color
// ========================================

// ColorMode sets the numeric color scale to Scale1 or Scale255. Any
// other value leaves the mode unchanged.
func (s *Sketch) ColorMode(mode float64) {
	if mode == Scale1 || mode == Scale255 {
		s.colorMode = mode
	}
}

// CurrentColorMode returns the active color scale.
func (s *Sketch) CurrentColorMode() float64 { return s.colorMode }

// Fill sets the color used to fill shapes. Arguments follow
// ResolveColor: grayscale, grayscale+alpha, RGB, RGBA, a CSS color
// string, or a Color.
func (s *Sketch) Fill(args ...any) error {
	if len(args) == 0 {
		return nil
	}
	c, err := ResolveColor(s.colorMode, args...)
	if err != nil {
		return err
	}
	s.fillSet = true
	s.fillStyle = c
	s.surface.SetFillStyle(c)
	return nil
}

// NoFill disables filling shapes.
func (s *Sketch) NoFill() {
	s.fillSet = true
	s.fillStyle = Transparent
	s.surface.SetFillStyle(Transparent)
}

// Stroke sets the color used to draw points, lines, and outlines.
func (s *Sketch) Stroke(args ...any) error {
	if len(args) == 0 {
		return nil
	}
	c, err := ResolveColor(s.colorMode, args...)
	if err != nil {
		return err
	}
	s.strokeSet = true
	s.strokeStyle = c
	s.surface.SetStrokeStyle(c)
	return nil
}

// NoStroke disables drawing points, lines, and outlines.
func (s *Sketch) NoStroke() {
	s.strokeSet = true
	s.strokeStyle = Transparent
	s.surface.SetStrokeStyle(Transparent)
}

// StrokeWeight sets the width of points, lines, and outlines.
func (s *Sketch) StrokeWeight(weight float64) {
	s.weightSet = true
	s.lineWidth = weight
	s.surface.SetLineWidth(weight)
}

// Background fills the entire surface with the resolved color,
// ignoring the current transform. Fill, stroke and line width are
// restored afterwards.
func (s *Sketch) Background(args ...any) error {
	if len(args) == 0 {
		return nil
	}
	c, err := ResolveColor(s.colorMode, args...)
	if err != nil {
		return err
	}

	s.surface.Save()
	s.surface.ResetTransform()
	d := float64(s.density)
	s.surface.Scale(d, d)
	s.surface.SetFillStyle(c)
	s.surface.SetStrokeStyle(c)
	s.surface.SetLineWidth(1)
	w := float64(s.width)
	h := float64(s.height)
	s.surface.FillRect(0, 0, w, h)
	s.surface.StrokeRect(0, 0, w, h)
	s.surface.SetFillStyle(s.fillStyle)
	s.surface.SetStrokeStyle(s.strokeStyle)
	s.surface.SetLineWidth(s.lineWidth)
	s.surface.Restore()
	return nil
}

// ========================================
//                Structure
// ========================================

// Clear wipes all drawings from the surface.
func (s *Sketch) Clear() {
	s.surface.Clear()
}

// Reset clears the surface and restores default styles and transform.
func (s *Sketch) Reset() {
	s.Clear()
	s.surface.ResetTransform()
	s.initStyle()
	s.initTransform()
}

// EncodePNG writes the current bitmap as PNG.
func (s *Sketch) EncodePNG(w io.Writer) error {
	return encodePNG(w, s.surface.Image())
}

// ========================================
//                Transform
// ========================================

// applyOp composes op onto the running matrix and mirrors it onto the
// surface. Each successive op acts in the coordinate frame established
// by all prior ops.
func (s *Sketch) applyOp(op Matrix) {
	s.matrix = s.matrix.Multiply(op)
	s.surface.Transform(op)
}

// Translate moves the coordinate origin.
func (s *Sketch) Translate(x, y float64) {
	s.applyOp(Translate(x, y))
}

// Rotate rotates the coordinate system (angle in radians).
func (s *Sketch) Rotate(angle float64) {
	s.applyOp(Rotate(angle))
}

// Scale scales the coordinate system.
func (s *Sketch) Scale(x, y float64) {
	s.applyOp(Scale(x, y))
}

// ScaleUniform scales both axes by the same factor.
func (s *Sketch) ScaleUniform(v float64) {
	s.Scale(v, v)
}

// ShearX shears the coordinate system along the x-axis by the given
// angle in radians.
func (s *Sketch) ShearX(angle float64) {
	s.ApplyMatrix(1, 0, math.Tan(angle), 1, 0, 0)
}

// ShearY shears the coordinate system along the y-axis by the given
// angle in radians.
func (s *Sketch) ShearY(angle float64) {
	s.ApplyMatrix(1, math.Tan(angle), 0, 1, 0, 0)
}

// ApplyMatrix composes an explicit 2x3 affine transform, in canvas
// (a, b, c, d, e, f) component order.
func (s *Sketch) ApplyMatrix(a, b, c, d, e, f float64) {
	s.applyOp(Affine(a, b, c, d, e, f))
}

// ResetMatrix restores the transform to its initial state (identity
// plus the pixel density scale).
func (s *Sketch) ResetMatrix() {
	s.surface.ResetTransform()
	s.matrix = Identity()
	s.initTransform()
}

// Matrix returns the current observable transform matrix.
func (s *Sketch) Matrix() Matrix { return s.matrix }

// Push saves the current transform onto a stack.
func (s *Sketch) Push() {
	s.stack = append(s.stack, s.matrix)
	s.surface.Save()
}

// Pop restores the most recently pushed transform.
func (s *Sketch) Pop() {
	if len(s.stack) == 0 {
		return
	}
	s.matrix = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.surface.Restore()
}

// ========================================
//               Typography
// ========================================

// TextFont sets the font family.
func (s *Sketch) TextFont(family string) {
	s.font.Family = family
	s.surface.SetFont(s.font)
}

// TextSize sets the font size in pixels.
func (s *Sketch) TextSize(size float64) error {
	if size <= 0 || math.IsNaN(size) {
		return errInvalidf("font size must be positive, got %v", size)
	}
	s.font.Size = size
	s.surface.SetFont(s.font)
	return nil
}

// TextStyle sets the font style: StyleNormal, StyleItalic, StyleBold,
// or StyleBoldItalic.
func (s *Sketch) TextStyle(style FontStyle) error {
	switch style {
	case StyleNormal, StyleItalic, StyleBold, StyleBoldItalic:
		s.font.Style = style
		s.surface.SetFont(s.font)
		return nil
	}
	return errInvalidf("invalid font style %q", style)
}

// TextAlign sets the horizontal text alignment, and optionally the
// vertical baseline when one is given.
func (s *Sketch) TextAlign(horizontal TextAlign, vertical ...TextBaseline) error {
	switch horizontal {
	case AlignLeft, AlignCenter, AlignRight:
		s.textAlign = horizontal
		s.surface.SetTextAlign(horizontal)
	default:
		return errInvalidf("invalid text alignment %q", horizontal)
	}
	if len(vertical) == 0 {
		return nil
	}
	switch vertical[0] {
	case BaselineTop, BaselineMiddle, BaselineBottom, BaselineAlphabetic:
		s.textBaseline = vertical[0]
		s.surface.SetTextBaseline(vertical[0])
		return nil
	}
	return errInvalidf("invalid text baseline %q", vertical[0])
}
