package sketch

import "image"

// TextAlign selects horizontal text alignment.
type TextAlign string

// Horizontal alignment keywords.
const (
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
	AlignRight  TextAlign = "right"
)

// TextBaseline selects vertical text alignment.
type TextBaseline string

// Vertical alignment keywords.
const (
	BaselineAlphabetic TextBaseline = "alphabetic"
	BaselineTop        TextBaseline = "top"
	BaselineMiddle     TextBaseline = "middle"
	BaselineBottom     TextBaseline = "bottom"
)

// FontStyle selects the rendered face variant.
type FontStyle string

// Font style keywords.
const (
	StyleNormal     FontStyle = "normal"
	StyleItalic     FontStyle = "italic"
	StyleBold       FontStyle = "bold"
	StyleBoldItalic FontStyle = "bolditalic"
)

// FontSpec describes the font used for text drawing.
type FontSpec struct {
	Family string
	Size   float64
	Style  FontStyle
}

// Surface is the rasterizing collaborator every drawing operation is
// expressed against. It mirrors a canvas-style 2D context: style
// setters, direct primitives, a path builder, transform state, text and
// image blitting. NewSketch wires in the built-in software surface;
// hosts with their own renderer implement Surface and inject it with
// WithSurface.
//
// A Surface is owned by a single Sketch and is not safe for concurrent
// use.
type Surface interface {
	Width() int
	Height() int

	// Style state.
	SetFillStyle(c Color)
	SetStrokeStyle(c Color)
	SetLineWidth(w float64)
	SetFont(f FontSpec)
	SetTextAlign(h TextAlign)
	SetTextBaseline(v TextBaseline)

	// Direct primitives, drawn immediately under the current transform.
	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)
	FillCircle(x, y, r float64)
	StrokeCircle(x, y, r float64)
	StrokeLine(x1, y1, x2, y2 float64)
	FillPolygon(points []Point)
	StrokePolygon(points []Point)

	// Path builder. Coordinates are transformed as they are appended.
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	BezierCurveTo(cx1, cy1, cx2, cy2, x, y float64)
	ClosePath()
	Fill() error
	Stroke() error

	// Transform state, composed exactly like the Sketch's own matrix so
	// the two agree at all times.
	Translate(x, y float64)
	Rotate(angle float64)
	Scale(x, y float64)
	Transform(m Matrix)
	ResetTransform()
	Save()
	Restore()

	// Text.
	FillText(s string, x, y float64)
	StrokeText(s string, x, y float64)

	// DrawImage blits src at (x, y) scaled to w x h in the current
	// coordinate space.
	DrawImage(src image.Image, x, y, w, h float64)

	// Batch coalesces the draw calls issued by fn into one visible
	// update. The error from fn is returned unchanged.
	Batch(fn func() error) error

	// Image returns the current bitmap.
	Image() image.Image

	// Clear wipes all drawings to transparent.
	Clear()
}
