package sketch

import (
	"math"
	"testing"
)

func TestPointRotate(t *testing.T) {
	tests := []struct {
		name  string
		p     Point
		angle float64
		want  Point
	}{
		{"quarter turn", Pt(1, 0), math.Pi / 2, Pt(0, 1)},
		{"half turn", Pt(1, 0), math.Pi, Pt(-1, 0)},
		{"negative quarter", Pt(0, 1), -math.Pi / 2, Pt(1, 0)},
		{"full turn", Pt(3, 4), 2 * math.Pi, Pt(3, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Rotate(tt.angle)
			if !pointsClose(got, tt.want) {
				t.Errorf("%v.Rotate(%v) = %v, want %v", tt.p, tt.angle, got, tt.want)
			}
		})
	}
}

func TestPointLerp(t *testing.T) {
	p, q := Pt(0, 0), Pt(10, 20)
	if got := p.Lerp(q, 0); !pointsClose(got, p) {
		t.Errorf("Lerp(0) = %v, want %v", got, p)
	}
	if got := p.Lerp(q, 1); !pointsClose(got, q) {
		t.Errorf("Lerp(1) = %v, want %v", got, q)
	}
	if got := p.Lerp(q, 0.5); !pointsClose(got, Pt(5, 10)) {
		t.Errorf("Lerp(0.5) = %v, want (5, 10)", got)
	}
}

func TestPointNormalize(t *testing.T) {
	got := Pt(3, 4).Normalize()
	if math.Abs(got.Length()-1) > epsilon {
		t.Errorf("Normalize length = %v, want 1", got.Length())
	}
	if got := Pt(0, 0).Normalize(); got != (Point{}) {
		t.Errorf("Normalize of zero vector = %v, want zero", got)
	}
}

func TestPointDistance(t *testing.T) {
	if got := Pt(0, 0).Distance(Pt(3, 4)); math.Abs(got-5) > epsilon {
		t.Errorf("Distance = %v, want 5", got)
	}
}
