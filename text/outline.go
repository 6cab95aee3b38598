package text

import (
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// OutlinePoint represents a point in a glyph outline, in pixels with
// the y axis growing downward and the origin on the baseline.
type OutlinePoint struct {
	X, Y float64
}

// OutlineOp is the type of path operation.
type OutlineOp uint8

const (
	// OutlineOpMoveTo moves to a new point without drawing.
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic bezier curve.
	OutlineOpQuadTo

	// OutlineOpCubicTo draws a cubic bezier curve.
	OutlineOpCubicTo
)

// OutlineSegment represents a segment of a glyph outline.
type OutlineSegment struct {
	Op OutlineOp

	// Points contains the control and end points for this segment.
	// - MoveTo, LineTo: Points[0] is the target point
	// - QuadTo: Points[0] is control, Points[1] is target
	// - CubicTo: Points[0], Points[1] are controls, Points[2] is target
	Points [3]OutlinePoint
}

// extractOutline loads the outline for one glyph at the given pixel
// size. Glyphs without an outline, like the space, yield nil segments.
// Callers must hold s.mu, which guards the shared sfnt buffer.
func (s *FontSource) extractOutline(gid sfnt.GlyphIndex, size float64) ([]OutlineSegment, error) {
	ppem := fixed.Int26_6(size * 64)

	segments, err := s.outline.LoadGlyph(&s.buf, gid, ppem, nil)
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, nil
	}

	out := make([]OutlineSegment, 0, len(segments))
	for _, seg := range segments {
		o := OutlineSegment{}
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			o.Op = OutlineOpMoveTo
			o.Points[0] = fixedPointToOutline(seg.Args[0])
		case sfnt.SegmentOpLineTo:
			o.Op = OutlineOpLineTo
			o.Points[0] = fixedPointToOutline(seg.Args[0])
		case sfnt.SegmentOpQuadTo:
			o.Op = OutlineOpQuadTo
			o.Points[0] = fixedPointToOutline(seg.Args[0])
			o.Points[1] = fixedPointToOutline(seg.Args[1])
		case sfnt.SegmentOpCubeTo:
			o.Op = OutlineOpCubicTo
			o.Points[0] = fixedPointToOutline(seg.Args[0])
			o.Points[1] = fixedPointToOutline(seg.Args[1])
			o.Points[2] = fixedPointToOutline(seg.Args[2])
		}
		out = append(out, o)
	}
	return out, nil
}

func fixedPointToOutline(p fixed.Point26_6) OutlinePoint {
	return OutlinePoint{
		X: float64(p.X) / 64.0,
		Y: float64(p.Y) / 64.0,
	}
}
