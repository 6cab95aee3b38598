package sketch

import (
	"errors"
	"image/color"
	"testing"
)

func TestResolveColor(t *testing.T) {
	tests := []struct {
		name    string
		mode    float64
		args    []any
		want    Color
		wantErr bool
	}{
		{"grayscale 255", Scale255, []any{51.0}, Gray(51), false},
		{"grayscale int", Scale255, []any{51}, Gray(51), false},
		{"grayscale 1.0 scale", Scale1, []any{0.2}, Gray(51), false},
		{"gray with alpha", Scale255, []any{0.0, 128.0}, Color{0, 0, 0, 128}, false},
		{"rgb", Scale255, []any{255.0, 128.0, 0.0}, Color{255, 128, 0, 255}, false},
		{"rgb unit scale", Scale1, []any{1.0, 0.5, 0.0}, Color{255, 128, 0, 255}, false},
		{"rgba", Scale255, []any{10.0, 20.0, 30.0, 40.0}, Color{10, 20, 30, 40}, false},
		{"named string", Scale255, []any{"tomato"}, Color{255, 99, 71, 255}, false},
		{"hex string", Scale255, []any{"#ff8000"}, Color{255, 128, 0, 255}, false},
		{"short hex", Scale255, []any{"#f80"}, Color{255, 136, 0, 255}, false},
		{"rgb functional", Scale255, []any{"rgb(255, 128, 0)"}, Color{255, 128, 0, 255}, false},
		{"rgba functional", Scale255, []any{"rgba(255, 0, 0, 0.5)"}, Color{255, 0, 0, 128}, false},
		{"color passthrough", Scale255, []any{RGB(1, 2, 3)}, RGB(1, 2, 3), false},
		{"float slice", Scale255, []any{[]float64{255, 128, 0}}, Color{255, 128, 0, 255}, false},
		{"int slice", Scale255, []any{[]int{255, 128, 0}}, Color{255, 128, 0, 255}, false},
		{"out of range", Scale255, []any{300.0}, Transparent, true},
		{"negative", Scale255, []any{-1.0, 0.0, 0.0}, Transparent, true},
		{"bad alpha", Scale255, []any{0.0, 0.0, 0.0, 300.0}, Transparent, true},
		{"unknown name", Scale255, []any{"notacolor"}, Transparent, true},
		{"bad hex", Scale255, []any{"#xyz"}, Transparent, true},
		{"too many args", Scale255, []any{1.0, 2.0, 3.0, 4.0, 5.0}, Transparent, true},
		{"non-numeric arg", Scale255, []any{struct{}{}}, Transparent, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveColor(tt.mode, tt.args...)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ResolveColor(%v) = %v, want error", tt.args, got)
				}
				if !errors.Is(err, ErrInvalidColor) {
					t.Errorf("error %v does not wrap ErrInvalidColor", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveColor(%v) error: %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("ResolveColor(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestParseColorEmpty(t *testing.T) {
	got, err := ParseColor("")
	if err != nil || got != Transparent {
		t.Errorf("ParseColor(\"\") = %v, %v, want transparent, nil", got, err)
	}
}

func TestColorHex(t *testing.T) {
	if got := RGB(255, 128, 0).Hex(); got != "#ff8000" {
		t.Errorf("Hex() = %q, want #ff8000", got)
	}
	if got := (Color{255, 128, 0, 64}).Hex(); got != "#ff800040" {
		t.Errorf("Hex() = %q, want #ff800040", got)
	}
}

func TestFromColorRoundtrip(t *testing.T) {
	want := Color{200, 100, 50, 255}
	got := FromColor(color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	if got != want {
		t.Errorf("FromColor = %v, want %v", got, want)
	}
}
