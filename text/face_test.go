package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func regularFace(t *testing.T, size float64) *Face {
	t.Helper()
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	face, err := src.Face(size)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	return face
}

func TestFaceMetrics(t *testing.T) {
	face := regularFace(t, 32)
	m, err := face.Metrics()
	if err != nil {
		t.Fatalf("Metrics: %v", err)
	}
	if m.Ascent <= 0 || m.Descent <= 0 || m.Height <= 0 {
		t.Errorf("Metrics = %+v, want all positive", m)
	}
	if m.Ascent >= 64 {
		t.Errorf("Ascent = %v, implausible for a 32px face", m.Ascent)
	}
}

func TestFaceLayout(t *testing.T) {
	face := regularFace(t, 24)
	lay, err := face.Layout("Hello")
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if len(lay.Glyphs) != 5 {
		t.Fatalf("got %d glyphs, want 5", len(lay.Glyphs))
	}
	if lay.Advance <= 0 {
		t.Errorf("Advance = %v, want positive", lay.Advance)
	}
	for i := 1; i < len(lay.Glyphs); i++ {
		if lay.Glyphs[i].X <= lay.Glyphs[i-1].X {
			t.Errorf("glyph %d at x=%v does not advance past glyph %d at x=%v",
				i, lay.Glyphs[i].X, i-1, lay.Glyphs[i-1].X)
		}
	}
	for i, g := range lay.Glyphs {
		if len(g.Segments) == 0 {
			t.Errorf("glyph %d has no outline", i)
		}
	}
}

func TestFaceLayoutEmpty(t *testing.T) {
	face := regularFace(t, 24)
	lay, err := face.Layout("")
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if len(lay.Glyphs) != 0 || lay.Advance != 0 {
		t.Errorf("Layout(\"\") = %d glyphs, advance %v", len(lay.Glyphs), lay.Advance)
	}
}

func TestFaceLayoutSpaceHasNoOutline(t *testing.T) {
	face := regularFace(t, 24)
	lay, err := face.Layout("a b")
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if len(lay.Glyphs) != 3 {
		t.Fatalf("got %d glyphs, want 3", len(lay.Glyphs))
	}
	if len(lay.Glyphs[1].Segments) != 0 {
		t.Error("space glyph has an outline")
	}
}

func TestFaceLayoutScalesWithSize(t *testing.T) {
	small, err := regularFace(t, 12).Layout("width")
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	large, err := regularFace(t, 48).Layout("width")
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if large.Advance <= small.Advance*2 {
		t.Errorf("advance at 48px (%v) not proportionally larger than at 12px (%v)",
			large.Advance, small.Advance)
	}
}
