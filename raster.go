package sketch

import (
	"image"
	"image/draw"
	"iter"
	"log/slog"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
	"honnef.co/go/curve"

	"github.com/gosketch/sketch/text"
)

// strokeTolerance bounds the error of stroke expansion, in device
// pixels.
const strokeTolerance = 0.1

// drawState is the full saveable state of a canvasSurface.
type drawState struct {
	matrix    Matrix
	fill      Color
	stroke    Color
	lineWidth float64
	font      FontSpec
	align     TextAlign
	baseline  TextBaseline
}

func defaultDrawState() drawState {
	return drawState{
		matrix:    Identity(),
		fill:      Black,
		stroke:    Black,
		lineWidth: 1,
		font:      FontSpec{Family: defaultFontFamily, Size: defaultFontSize, Style: StyleNormal},
		align:     AlignLeft,
		baseline:  BaselineAlphabetic,
	}
}

// canvasSurface is the built-in software Surface. Paths are flattened
// to device space as they are built, filled with the x/image scanline
// rasterizer, and strokes are expanded to fill outlines first. Pixels
// land in a Pixmap; view aliases its buffer so the standard draw
// machinery can composite into it directly.
type canvasSurface struct {
	width  int
	height int
	pixmap *Pixmap
	view   *image.NRGBA

	state drawState
	stack []drawState
	path  curve.BezPath

	fonts *text.Collection
}

var _ Surface = (*canvasSurface)(nil)

func newCanvasSurface(width, height int) *canvasSurface {
	pm := NewPixmap(width, height)
	return &canvasSurface{
		width:  width,
		height: height,
		pixmap: pm,
		view: &image.NRGBA{
			Pix:    pm.Data(),
			Stride: width * 4,
			Rect:   image.Rect(0, 0, width, height),
		},
		state: defaultDrawState(),
		fonts: text.NewCollection(),
	}
}

func (c *canvasSurface) Width() int  { return c.width }
func (c *canvasSurface) Height() int { return c.height }

// Fonts returns the font collection used for text drawing, so hosts
// can register their own families.
func (c *canvasSurface) Fonts() *text.Collection { return c.fonts }

func (c *canvasSurface) SetFillStyle(col Color)         { c.state.fill = col }
func (c *canvasSurface) SetStrokeStyle(col Color)       { c.state.stroke = col }
func (c *canvasSurface) SetLineWidth(w float64)         { c.state.lineWidth = w }
func (c *canvasSurface) SetFont(f FontSpec)             { c.state.font = f }
func (c *canvasSurface) SetTextAlign(h TextAlign)       { c.state.align = h }
func (c *canvasSurface) SetTextBaseline(v TextBaseline) { c.state.baseline = v }

// tp maps a user-space coordinate to device space.
func (c *canvasSurface) tp(x, y float64) curve.Point {
	p := c.state.matrix.TransformPoint(Point{X: x, Y: y})
	return curve.Pt(p.X, p.Y)
}

func (c *canvasSurface) rectPath(x, y, w, h float64) curve.BezPath {
	var p curve.BezPath
	p.MoveTo(c.tp(x, y))
	p.LineTo(c.tp(x+w, y))
	p.LineTo(c.tp(x+w, y+h))
	p.LineTo(c.tp(x, y+h))
	p.ClosePath()
	return p
}

func (c *canvasSurface) ellipsePath(x, y, rx, ry float64) curve.BezPath {
	ox := rx * kappa
	oy := ry * kappa

	var p curve.BezPath
	p.MoveTo(c.tp(x-rx, y))
	p.CubicTo(c.tp(x-rx, y-oy), c.tp(x-ox, y-ry), c.tp(x, y-ry))
	p.CubicTo(c.tp(x+ox, y-ry), c.tp(x+rx, y-oy), c.tp(x+rx, y))
	p.CubicTo(c.tp(x+rx, y+oy), c.tp(x+ox, y+ry), c.tp(x, y+ry))
	p.CubicTo(c.tp(x-ox, y+ry), c.tp(x-rx, y+oy), c.tp(x-rx, y))
	p.ClosePath()
	return p
}

func (c *canvasSurface) polygonPath(points []Point) curve.BezPath {
	var p curve.BezPath
	for i, pt := range points {
		if i == 0 {
			p.MoveTo(c.tp(pt.X, pt.Y))
		} else {
			p.LineTo(c.tp(pt.X, pt.Y))
		}
	}
	p.ClosePath()
	return p
}

func (c *canvasSurface) FillRect(x, y, w, h float64) {
	c.rasterize(c.rectPath(x, y, w, h).Elements(), c.state.fill)
}

func (c *canvasSurface) StrokeRect(x, y, w, h float64) {
	c.strokeElems(c.rectPath(x, y, w, h).Elements())
}

func (c *canvasSurface) FillCircle(x, y, r float64) {
	c.rasterize(c.ellipsePath(x, y, r, r).Elements(), c.state.fill)
}

func (c *canvasSurface) StrokeCircle(x, y, r float64) {
	c.strokeElems(c.ellipsePath(x, y, r, r).Elements())
}

func (c *canvasSurface) StrokeLine(x1, y1, x2, y2 float64) {
	var p curve.BezPath
	p.MoveTo(c.tp(x1, y1))
	p.LineTo(c.tp(x2, y2))
	c.strokeElems(p.Elements())
}

func (c *canvasSurface) FillPolygon(points []Point) {
	if len(points) < 3 {
		return
	}
	c.rasterize(c.polygonPath(points).Elements(), c.state.fill)
}

func (c *canvasSurface) StrokePolygon(points []Point) {
	if len(points) < 2 {
		return
	}
	c.strokeElems(c.polygonPath(points).Elements())
}

func (c *canvasSurface) BeginPath() {
	c.path = c.path[:0]
}

func (c *canvasSurface) MoveTo(x, y float64) {
	c.path.MoveTo(c.tp(x, y))
}

func (c *canvasSurface) LineTo(x, y float64) {
	c.path.LineTo(c.tp(x, y))
}

func (c *canvasSurface) BezierCurveTo(cx1, cy1, cx2, cy2, x, y float64) {
	c.path.CubicTo(c.tp(cx1, cy1), c.tp(cx2, cy2), c.tp(x, y))
}

func (c *canvasSurface) ClosePath() {
	c.path.ClosePath()
}

// Fill paints the current path with the fill color. The path survives,
// so a fill can be followed by a stroke of the same outline.
func (c *canvasSurface) Fill() error {
	c.rasterize(c.path.Elements(), c.state.fill)
	return nil
}

// Stroke outlines the current path with the stroke color and weight.
func (c *canvasSurface) Stroke() error {
	c.strokeElems(c.path.Elements())
	return nil
}

func (c *canvasSurface) Translate(x, y float64) {
	c.Transform(Translate(x, y))
}

func (c *canvasSurface) Rotate(angle float64) {
	c.Transform(Rotate(angle))
}

func (c *canvasSurface) Scale(x, y float64) {
	c.Transform(Scale(x, y))
}

func (c *canvasSurface) Transform(m Matrix) {
	c.state.matrix = c.state.matrix.Multiply(m)
}

func (c *canvasSurface) ResetTransform() {
	c.state.matrix = Identity()
}

func (c *canvasSurface) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *canvasSurface) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *canvasSurface) FillText(s string, x, y float64) {
	p, err := c.textPath(s, x, y)
	if err != nil {
		Logger().Warn("text layout failed", slog.String("text", s), slog.Any("error", err))
		return
	}
	c.rasterize(p.Elements(), c.state.fill)
}

func (c *canvasSurface) StrokeText(s string, x, y float64) {
	p, err := c.textPath(s, x, y)
	if err != nil {
		Logger().Warn("text layout failed", slog.String("text", s), slog.Any("error", err))
		return
	}
	c.strokeElems(p.Elements())
}

// textPath shapes s and converts every glyph outline into one device
// space path, honoring the current transform, alignment and baseline.
func (c *canvasSurface) textPath(s string, x, y float64) (curve.BezPath, error) {
	spec := c.state.font
	face, err := c.fonts.Face(spec.Family, text.Style(spec.Style), spec.Size)
	if err != nil {
		return nil, err
	}
	lay, err := face.Layout(s)
	if err != nil {
		return nil, err
	}
	metrics, err := face.Metrics()
	if err != nil {
		return nil, err
	}

	var dx, dy float64
	switch c.state.align {
	case AlignCenter:
		dx = -lay.Advance / 2
	case AlignRight:
		dx = -lay.Advance
	}
	switch c.state.baseline {
	case BaselineTop:
		dy = metrics.Ascent
	case BaselineMiddle:
		dy = (metrics.Ascent - metrics.Descent) / 2
	case BaselineBottom:
		dy = -metrics.Descent
	}

	var path curve.BezPath
	for _, g := range lay.Glyphs {
		if len(g.Segments) == 0 {
			continue
		}
		ox := x + dx + g.X
		oy := y + dy + g.Y
		pt := func(p text.OutlinePoint) curve.Point {
			return c.tp(ox+p.X, oy+p.Y)
		}

		open := false
		for _, seg := range g.Segments {
			switch seg.Op {
			case text.OutlineOpMoveTo:
				if open {
					path.ClosePath()
				}
				path.MoveTo(pt(seg.Points[0]))
				open = true
			case text.OutlineOpLineTo:
				path.LineTo(pt(seg.Points[0]))
			case text.OutlineOpQuadTo:
				path.QuadTo(pt(seg.Points[0]), pt(seg.Points[1]))
			case text.OutlineOpCubicTo:
				path.CubicTo(pt(seg.Points[0]), pt(seg.Points[1]), pt(seg.Points[2]))
			}
		}
		if open {
			path.ClosePath()
		}
	}
	return path, nil
}

func (c *canvasSurface) DrawImage(src image.Image, x, y, w, h float64) {
	if src == nil {
		return
	}
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || w <= 0 || h <= 0 {
		return
	}

	m := c.state.matrix.
		Multiply(Translate(x, y)).
		Multiply(Scale(w/float64(b.Dx()), h/float64(b.Dy())))
	aff := f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
	xdraw.ApproxBiLinear.Transform(c.view, aff, src, b, xdraw.Over, nil)
}

// Batch runs fn directly. The software surface draws immediately into
// its own buffer, so there is nothing to coalesce; the method exists
// for surfaces that flush to a display.
func (c *canvasSurface) Batch(fn func() error) error {
	return fn()
}

func (c *canvasSurface) Image() image.Image {
	return c.pixmap
}

func (c *canvasSurface) Clear() {
	c.pixmap.ClearTo(Transparent)
}

// rasterize scan-fills a device-space path with a solid color.
func (c *canvasSurface) rasterize(elems iter.Seq[curve.PathElement], col Color) {
	if col.A == 0 {
		return
	}
	r := vector.NewRasterizer(c.width, c.height)
	r.DrawOp = draw.Over
	for el := range elems {
		switch el.Kind {
		case curve.MoveToKind:
			r.MoveTo(float32(el.P0.X), float32(el.P0.Y))
		case curve.LineToKind:
			r.LineTo(float32(el.P0.X), float32(el.P0.Y))
		case curve.QuadToKind:
			r.QuadTo(
				float32(el.P0.X), float32(el.P0.Y),
				float32(el.P1.X), float32(el.P1.Y),
			)
		case curve.CubicToKind:
			r.CubeTo(
				float32(el.P0.X), float32(el.P0.Y),
				float32(el.P1.X), float32(el.P1.Y),
				float32(el.P2.X), float32(el.P2.Y),
			)
		case curve.ClosePathKind:
			r.ClosePath()
		}
	}
	r.Draw(c.view, c.view.Bounds(), image.NewUniform(col.NRGBA()), image.Point{})
}

// strokeElems expands a device-space path into its stroke outline and
// fills that with the stroke color. The width is the user-space line
// width scaled by the current transform.
func (c *canvasSurface) strokeElems(elems iter.Seq[curve.PathElement]) {
	if c.state.stroke.A == 0 || c.state.lineWidth <= 0 {
		return
	}
	style := curve.DefaultStroke.
		WithWidth(c.state.lineWidth * c.state.matrix.ScaleFactor()).
		WithCaps(curve.ButtCap).
		WithJoin(curve.MiterJoin).
		WithMiterLimit(10)
	c.rasterize(curve.StrokePath(elems, style, curve.StrokeOpts{}, strokeTolerance), c.state.stroke)
}
