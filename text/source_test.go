package text

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestNewFontSourceEmptyData(t *testing.T) {
	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewFontSource([]byte{}); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(empty) = %v, want ErrEmptyFontData", err)
	}
}

func TestNewFontSourceGarbage(t *testing.T) {
	if _, err := NewFontSource([]byte("not a font")); err == nil {
		t.Error("NewFontSource with garbage data succeeded")
	}
}

func TestFontSourceName(t *testing.T) {
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	if got := src.Name(); got == "" || got == "Unknown Font" {
		t.Errorf("Name() = %q, want the family name from the font", got)
	}
}

func TestFontSourceFaceSize(t *testing.T) {
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	if _, err := src.Face(0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Face(0) = %v, want ErrInvalidSize", err)
	}
	if _, err := src.Face(-5); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Face(-5) = %v, want ErrInvalidSize", err)
	}
	face, err := src.Face(16)
	if err != nil {
		t.Fatalf("Face(16): %v", err)
	}
	if face.Size() != 16 {
		t.Errorf("Size() = %v, want 16", face.Size())
	}
	if face.Source() != src {
		t.Error("Source() does not return the creating source")
	}
}

func TestNewFontSourceCopiesData(t *testing.T) {
	data := make([]byte, len(goregular.TTF))
	copy(data, goregular.TTF)
	src, err := NewFontSource(data)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	for i := range data {
		data[i] = 0
	}
	face, err := src.Face(16)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	if _, err := face.Layout("x"); err != nil {
		t.Errorf("Layout after clobbering caller's slice: %v", err)
	}
}
