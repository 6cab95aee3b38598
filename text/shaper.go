package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper has internal
// mutable state and is not safe for concurrent use, but reusing one
// across sequential calls avoids reallocating its buffers.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// shapedGlyph is one glyph produced by shaping, positioned relative to
// the start of its run. Offsets and advances are in pixels.
type shapedGlyph struct {
	gid      uint32
	xOffset  float64
	yOffset  float64
	xAdvance float64
}

// shapeRun shapes one directional run at the given pixel size and
// returns the glyphs in visual order. gtfont.Face is not safe for
// concurrent use, so each call builds its own lightweight face around
// the shared thread-safe Font.
func shapeRun(f *gtfont.Font, seg segment, size float64) []shapedGlyph {
	runes := []rune(seg.text)
	if len(runes) == 0 {
		return nil
	}

	dir := di.DirectionLTR
	if seg.rtl {
		dir = di.DirectionRTL
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      gtfont.NewFace(f),
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	shaper := shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := shaper.Shape(input)
	shaperPool.Put(shaper)

	glyphs := make([]shapedGlyph, len(output.Glyphs))
	for i, g := range output.Glyphs {
		glyphs[i] = shapedGlyph{
			gid:      uint32(g.GlyphID),
			xOffset:  fixedToFloat(g.XOffset),
			yOffset:  fixedToFloat(g.YOffset),
			xAdvance: fixedToFloat(g.Advance),
		}
	}
	return glyphs
}

// detectScript returns the script of the first non-space rune. Mixed
// scripts within one directional run keep the first script; splitting
// runs per script is left to the shaper's cluster handling.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
