package sketch

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func TestPixmapSetGetPixel(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.SetPixel(1, 2, RGB(10, 20, 30))

	if got := pm.GetPixel(1, 2); got != RGB(10, 20, 30) {
		t.Errorf("GetPixel(1, 2) = %v, want (10, 20, 30)", got)
	}
	if got := pm.GetPixel(0, 0); got != Transparent {
		t.Errorf("GetPixel(0, 0) = %v, want transparent", got)
	}
}

func TestPixmapBoundsChecks(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetPixel(-1, 0, White) // must not panic
	pm.SetPixel(2, 0, White)
	pm.SetPixel(0, 2, White)

	if got := pm.GetPixel(-1, 0); got != Transparent {
		t.Errorf("out-of-bounds GetPixel = %v, want transparent", got)
	}
	if got := pm.GetPixel(5, 5); got != Transparent {
		t.Errorf("out-of-bounds GetPixel = %v, want transparent", got)
	}
}

func TestPixmapClearTo(t *testing.T) {
	pm := NewPixmap(3, 3)
	pm.ClearTo(RGB(1, 2, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := pm.GetPixel(x, y); got != RGB(1, 2, 3) {
				t.Fatalf("pixel (%d, %d) = %v after ClearTo", x, y, got)
			}
		}
	}
}

func TestPixmapImageRoundtrip(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetPixel(0, 0, RGB(255, 0, 0))
	pm.SetPixel(1, 1, Color{0, 0, 255, 128})

	back := FromImage(pm.ToImage())
	if got := back.GetPixel(0, 0); got != RGB(255, 0, 0) {
		t.Errorf("roundtrip pixel (0, 0) = %v", got)
	}
	if got := back.GetPixel(1, 1); got != (Color{0, 0, 255, 128}) {
		t.Errorf("roundtrip pixel (1, 1) = %v", got)
	}
}

func TestPixmapImplementsImage(t *testing.T) {
	var _ image.Image = NewPixmap(1, 1)

	pm := NewPixmap(3, 2)
	if pm.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds() = %v", pm.Bounds())
	}
}

func TestPixmapEncodePNG(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.ClearTo(RGB(0, 128, 255))

	var buf bytes.Buffer
	if err := pm.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds() != pm.Bounds() {
		t.Errorf("decoded bounds %v, want %v", img.Bounds(), pm.Bounds())
	}
	if got := FromColor(img.At(2, 2)); got != RGB(0, 128, 255) {
		t.Errorf("decoded pixel = %v, want (0, 128, 255)", got)
	}
}
