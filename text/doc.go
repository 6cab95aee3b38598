// Package text turns strings into positioned glyph outlines.
//
// A FontSource wraps one parsed font file and hands out Face values at
// concrete sizes. Face.Layout shapes a string with HarfBuzz (through
// go-text/typesetting), splits it into bidirectional runs first, and
// attaches the vector outline of every glyph, extracted with x/image's
// sfnt loader. Callers rasterize the outlines themselves; the package
// never touches pixels.
//
// A Collection maps family names and style variants to sources and
// falls back to the embedded Go fonts for families it does not know.
package text
