package text

import (
	"errors"
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Face is a FontSource at one concrete size. Faces are cheap values;
// the heavy state stays on the source.
type Face struct {
	source *FontSource
	size   float64
}

// Size returns the face size in pixels per em.
func (f *Face) Size() float64 { return f.size }

// Source returns the FontSource the face was created from.
func (f *Face) Source() *FontSource { return f.source }

// Metrics describes the vertical extent of the face, in pixels.
// Ascent and Descent are both positive distances from the baseline.
type Metrics struct {
	Ascent  float64
	Descent float64
	Height  float64
}

// Metrics returns the face metrics.
func (f *Face) Metrics() (Metrics, error) {
	s := f.source
	s.copyCheck()
	ppem := fixed.Int26_6(f.size * 64)

	s.mu.Lock()
	m, err := s.outline.Metrics(&s.buf, ppem, font.HintingNone)
	s.mu.Unlock()
	if err != nil {
		return Metrics{}, fmt.Errorf("text: font metrics: %w", err)
	}
	return Metrics{
		Ascent:  fixedToFloat(m.Ascent),
		Descent: fixedToFloat(m.Descent),
		Height:  fixedToFloat(m.Height),
	}, nil
}

// Glyph is one positioned glyph in a layout. The offset is relative to
// the layout origin on the baseline; outline coordinates are relative
// to the glyph's own origin, y growing downward.
type Glyph struct {
	X, Y     float64
	Segments []OutlineSegment
}

// Layout is a shaped string ready to rasterize.
type Layout struct {
	Glyphs []Glyph

	// Advance is the total horizontal advance of the string.
	Advance float64
}

// Layout shapes s and attaches glyph outlines. The string is split
// into bidirectional runs first, so mixed-direction text comes out in
// visual order. Glyphs without an outline, like spaces, still advance
// the pen but carry no segments.
func (f *Face) Layout(s string) (Layout, error) {
	src := f.source
	src.copyCheck()

	var lay Layout
	var pen float64
	for _, seg := range segmentText(s) {
		for _, g := range shapeRun(src.shaped, seg, f.size) {
			src.mu.Lock()
			segments, err := src.extractOutline(sfnt.GlyphIndex(g.gid), f.size)
			src.mu.Unlock()
			if err != nil && !errors.Is(err, sfnt.ErrNotFound) {
				return Layout{}, fmt.Errorf("text: glyph %d outline: %w", g.gid, err)
			}
			lay.Glyphs = append(lay.Glyphs, Glyph{
				X:        pen + g.xOffset,
				Y:        -g.yOffset,
				Segments: segments,
			})
			pen += g.xAdvance
		}
	}
	lay.Advance = pen
	return lay, nil
}
